package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/halvard/ansuz/internal"
	pkgconfig "github.com/halvard/ansuz/pkg/config"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the corpus read-only over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("ANSUZ_CONFIG_FILE"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := internal.NewDefaultConfig()
			if err := pkgconfig.LoadIfPresent(cmd.String("config"), cfg); err != nil {
				return fmt.Errorf("failed to parse config: %w", err)
			}
			// The global --dir flag wins over the config file.
			if cmd.IsSet("dir") {
				cfg.Corpus.Path = cmd.String("dir")
			}

			if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
				return fmt.Errorf("app run error: %w", err)
			}
			return nil
		},
	}
}
