package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bluesky-social/nkey/nkey"

	"github.com/urfave/cli/v2"
)

var ErrSignatureInvalid = errors.New("signature did not verify")

var cmdSign = &cli.Command{
	Name:      "sign",
	Usage:     "signs a hex-encoded message (at most 32 bytes, eg a SHA-256 digest)",
	ArgsUsage: `<message-hex>`,
	Flags:     keyFlags,
	Action:    runSign,
}

var cmdVerify = &cli.Command{
	Name:      "verify",
	Usage:     "checks a hex-encoded signature over a hex-encoded message",
	ArgsUsage: `<message-hex> <signature-hex>`,
	Flags:     keyFlags,
	Action:    runVerify,
}

func runSign(cctx *cli.Context) error {
	if cctx.Args().Len() != 1 {
		return fmt.Errorf("expected a single message argument")
	}
	msg, err := hex.DecodeString(cctx.Args().First())
	if err != nil {
		return fmt.Errorf("decoding message hex: %w", err)
	}
	k, err := loadKey(cctx)
	if err != nil {
		return err
	}
	sig, err := k.Sign(msg)
	if err != nil {
		return err
	}
	slog.Debug("signed message", "fingerprint", k.Fingerprint(), "len", len(msg))
	fmt.Fprintln(cctx.App.Writer, sig)
	return nil
}

func runVerify(cctx *cli.Context) error {
	if cctx.Args().Len() != 2 {
		return fmt.Errorf("expected message and signature arguments")
	}
	msg, err := hex.DecodeString(cctx.Args().Get(0))
	if err != nil {
		return fmt.Errorf("decoding message hex: %w", err)
	}
	k, err := loadKey(cctx)
	if err != nil {
		return err
	}
	ok, err := k.Verify(msg, nkey.Hex(cctx.Args().Get(1)))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cctx.App.Writer, "invalid")
		return ErrSignatureInvalid
	}
	fmt.Fprintln(cctx.App.Writer, "valid")
	return nil
}
