package main

import (
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}

var keyFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "key",
		Aliases: []string{"k"},
		Usage:   "key as record JSON, multibase, or DID key",
		EnvVars: []string{"NKEY_KEY"},
	},
	&cli.StringFlag{
		Name:      "key-file",
		Usage:     "path to file containing the key ('-' for stdin)",
		TakesFile: true,
	},
}

func newApp() *cli.App {
	app := cli.App{
		Name:    "nkey",
		Usage:   "generate, inspect, and use signing keys",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				EnvVars: []string{"NKEY_LOG_LEVEL", "GO_LOG_LEVEL", "LOG_LEVEL"},
			},
		},
		Before: func(cctx *cli.Context) error {
			configLogger(cctx, os.Stderr)
			return nil
		},
	}
	app.Commands = []*cli.Command{
		cmdGenerate,
		cmdInspect,
		cmdSign,
		cmdVerify,
		cmdTypes,
	}
	return &app
}

func run(args []string) error {
	return newApp().Run(args)
}
