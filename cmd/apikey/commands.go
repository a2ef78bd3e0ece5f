package main

import (
	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/allowlist"
	"github.com/urfave/cli/v3"
)

func newApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "apikey",
		Usage: "Manage the API key allow-list used by the payment API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to the allow-list file",
				Value:   allowlist.DefaultPath,
				Sources: cli.EnvVars("PA_ALLOW_LIST_PATH"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Disable logging",
			},
		},
		Writer: r.output,
		Commands: []*cli.Command{
			generateCommand(r),
			addCommand(r),
			checkCommand(r),
			listCommand(r),
		},
	}
}

func generateCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Print a new random API key",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "length",
				Aliases: []string{"l"},
				Usage:   "Number of characters in the key",
				Value:   entity.DefaultAPIKeyLength,
			},
			&cli.BoolFlag{
				Name:  "add",
				Usage: "Also store the key in the allow-list",
			},
		},
		Action: r.Generate,
	}
}

func addCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Store a key in the allow-list",
		ArgsUsage: "<key>",
		Action:    r.Add,
	}
}

func checkCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Report whether a key is allowed",
		ArgsUsage: "<key>",
		Action:    r.Check,
	}
}

func listCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "list",
		Usage:  "Print every allowed key",
		Action: r.List,
	}
}
