// ABOUTME: Main entry point for the portfolio API
// ABOUTME: Defines the serve, check and posts commands

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"portfolio-api/pkg/config"
	"portfolio-api/pkg/featureflags"
)

const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitUsageError   = 2
	ExitUpstreamDown = 3
)

func main() {
	app := &cli.App{
		Name:    "portfolio-api",
		Usage:   "JSON API for portfolio content, blog posts and the chat assistant",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
				EnvVars: []string{"CONFIG_FILE"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP server",
				Action: serve,
			},
			{
				Name:   "check",
				Usage:  "Fetch articles and projects bypassing the cache and print a report",
				Action: check,
			},
			{
				Name:  "posts",
				Usage: "Fetch blog posts through the feed proxies and print them as JSON",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "username",
						Aliases: []string{"u"},
						Usage:   "Feed username (defaults to MEDIUM_USERNAME)",
					},
				},
				Action: listPosts,
			},
		},
		Action: serve,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitGeneralError)
	}
}

// loadApplication reads and validates configuration, then wires the application
func loadApplication(c *cli.Context) (*application, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, cli.Exit(err.Error(), ExitUsageError)
	}
	if err := cfg.Validate(); err != nil {
		return nil, cli.Exit(fmt.Sprintf("Invalid configuration: %v", err), ExitUsageError)
	}

	flags := featureflags.NewEnvManager("FEATURE_", featureflags.DefaultStates)

	app, err := newApplication(cfg, flags)
	if err != nil {
		return nil, cli.Exit(err.Error(), ExitGeneralError)
	}
	return app, nil
}
