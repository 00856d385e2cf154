package main

import (
	"fmt"
	"log/slog"

	"github.com/bluesky-social/nkey/eckey"
	"github.com/bluesky-social/nkey/nkey"

	"github.com/urfave/cli/v2"
)

var cmdGenerate = &cli.Command{
	Name:  "generate",
	Usage: "outputs a new key",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "type",
			Aliases: []string{"t"},
			Usage:   "registered key type",
			Value:   eckey.TypeName,
		},
		&cli.BoolFlag{
			Name:  "private",
			Usage: "include the private key in output; save this securely",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "output format: record, multibase, or jwk",
			Value:   "record",
		},
	},
	Action: runGenerate,
}

var cmdInspect = &cli.Command{
	Name:      "inspect",
	Usage:     "parses and outputs metadata about a public or private key",
	ArgsUsage: `<key>`,
	Flags:     keyFlags,
	Action:    runInspect,
}

var cmdTypes = &cli.Command{
	Name:   "types",
	Usage:  "lists registered key types",
	Action: runTypes,
}

func runGenerate(cctx *cli.Context) error {
	w := cctx.App.Writer
	k, err := nkey.Generate(cctx.String("type"))
	if err != nil {
		return err
	}
	slog.Info("generated key", "type", k.Type(), "fingerprint", k.Fingerprint())

	switch cctx.String("format") {
	case "", "record":
		rec, err := k.Record(cctx.Bool("private"))
		if err != nil {
			return err
		}
		return printJSON(w, rec)
	case "multibase":
		ec, ok := k.(*eckey.KeyPair)
		if !ok {
			return fmt.Errorf("multibase format not supported for key type: %s", k.Type())
		}
		if !cctx.Bool("private") {
			fmt.Fprintln(w, ec.DIDKey())
			return nil
		}
		signer, err := ec.Signer()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, signer.Multibase())
		return nil
	case "jwk":
		ec, ok := k.(*eckey.KeyPair)
		if !ok {
			return fmt.Errorf("JWK format not supported for key type: %s", k.Type())
		}
		if cctx.Bool("private") {
			return fmt.Errorf("JWK output only includes the public key")
		}
		jwk, err := ec.JWK()
		if err != nil {
			return err
		}
		return printJSON(w, jwk)
	default:
		return fmt.Errorf("unknown output format: %s", cctx.String("format"))
	}
}

func runInspect(cctx *cli.Context) error {
	w := cctx.App.Writer
	var k nkey.Key
	var err error
	if s := cctx.Args().First(); s != "" {
		k, err = parseKey(s)
	} else {
		k, err = loadKey(cctx)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Type: %s\n", k.Type())
	if ec, ok := k.(*eckey.KeyPair); ok {
		fmt.Fprintf(w, "Curve: %s\n", ec.Curve())
	}
	fmt.Fprintf(w, "Private: %t\n", k.HasPrivate())
	fmt.Fprintf(w, "Fingerprint: %s\n", k.Fingerprint())
	fmt.Fprintf(w, "Public Key: %s\n", k.PublicKeyHex())
	if ec, ok := k.(*eckey.KeyPair); ok {
		fmt.Fprintf(w, "DID Key: %s\n", ec.DIDKey())
	}
	return nil
}

func runTypes(cctx *cli.Context) error {
	for _, name := range nkey.Types() {
		fmt.Fprintln(cctx.App.Writer, name)
	}
	return nil
}
