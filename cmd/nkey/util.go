package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bluesky-social/nkey/eckey"
	"github.com/bluesky-social/nkey/nkey"

	"github.com/urfave/cli/v2"
)

const stdIOPath = "-"

func getFileOrStdin(path string) (io.ReadCloser, error) {
	if path == stdIOPath {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return file, nil
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// reads the key from --key, or failing that --key-file
func loadKey(cctx *cli.Context) (nkey.Key, error) {
	s := cctx.String("key")
	if s == "" && cctx.String("key-file") != "" {
		f, err := getFileOrStdin(cctx.String("key-file"))
		if err != nil {
			return nil, err
		}
		defer f.Close()
		b, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("reading key file: %w", err)
		}
		s = string(b)
	}
	if s == "" {
		return nil, fmt.Errorf("need to provide a key with --key or --key-file")
	}
	k, err := parseKey(s)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded key", "type", k.Type(), "fingerprint", k.Fingerprint(), "private", k.HasPrivate())
	return k, nil
}

// accepts record JSON, a DID key, or a public or private multibase string
func parseKey(s string) (nkey.Key, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "{"):
		return nkey.FromRecordJSON([]byte(s))
	case strings.HasPrefix(s, "did:key:"):
		return eckey.ParsePublicDIDKey(s)
	}
	if k, err := eckey.ParsePrivateMultibase(s); err == nil {
		return k, nil
	}
	if k, err := eckey.ParsePublicMultibase(s); err == nil {
		return k, nil
	}
	return nil, fmt.Errorf("%w: unknown key encoding", nkey.ErrInvalidInput)
}

func printJSON(w io.Writer, val any) error {
	b, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(b))
	return nil
}
