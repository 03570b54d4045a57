package main

import (
	"os"

	"github.com/oarkflow/log"
	"github.com/urfave/cli/v2"

	"github.com/oarkflow/lambda"
	"github.com/oarkflow/lambda/pkg/config"
	"github.com/oarkflow/lambda/pkg/repl"
	"github.com/oarkflow/lambda/pkg/server"
)

func main() {
	logger := &log.DefaultLogger

	app := &cli.App{
		Name:  "lambda",
		Usage: "untyped lambda calculus interpreter",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML configuration file",
			},
		},
		Action: func(c *cli.Context) error {
			return runREPL(c, logger)
		},
		Commands: []*cli.Command{
			{
				Name:  "repl",
				Usage: "Start the interactive statement loop",
				Action: func(c *cli.Context) error {
					return runREPL(c, logger)
				},
			},
			{
				Name:  "run",
				Usage: "Load a definitions file and run it as a session",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the definitions file (.lam)",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					return runFile(c, logger)
				},
			},
			{
				Name:  "serve",
				Usage: "Start the evaluation HTTP server",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "port",
						Usage: "Port to listen on (overrides config)",
					},
				},
				Action: runServer,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("lambda exited with error")
		os.Exit(1)
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.Load(path)
	}
	return config.Default(), nil
}

// newEnvironment builds the session environment with the configured prelude
// files already loaded.
func newEnvironment(cfg *config.Config, logger *log.Logger) (*lambda.Environment, error) {
	env := lambda.NewEnvironment()
	for _, path := range cfg.Prelude {
		if err := lambda.LoadFile(path, env, logger); err != nil {
			return nil, err
		}
	}
	return env, nil
}

func runREPL(c *cli.Context, logger *log.Logger) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	env, err := newEnvironment(cfg, logger)
	if err != nil {
		return err
	}
	return repl.New(cfg, env, logger).Run()
}

func runFile(c *cli.Context, logger *log.Logger) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	env, err := newEnvironment(cfg, logger)
	if err != nil {
		return err
	}
	path := c.String("file")
	if err := lambda.LoadFile(path, env, logger); err != nil {
		return err
	}
	logger.Info().Str("file", path).Int("definitions", env.Len()).Msg("file loaded")
	return nil
}

func runServer(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if port := c.Int("port"); port != 0 {
		cfg.Server.Port = port
	}
	return server.New(cfg).Start()
}
