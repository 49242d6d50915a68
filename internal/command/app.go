// Package command implements the sigtoken command-line tool.
//
// It uses urfave/cli/v2 for command parsing. Settings come from SIGTOKEN_*
// environment variables and .env files (see pkg/config); flags override them.
package command

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/sigtoken"
	"github.com/dmitrymomot/sigtoken/pkg/config"
	"github.com/dmitrymomot/sigtoken/pkg/logger"
)

// Build information, set via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

const stateKey = "state"

// state is built once in Before and shared by every command.
type state struct {
	cfg   config.Config
	log   *slog.Logger
	cache *sigtoken.KeyCache
}

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "sigtoken",
		Usage:   "Sign and verify compact Ed25519 tokens",
		Version: fmt.Sprintf("%s (commit: %s)", Version, Commit),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			SignCommand(),
			VerifyCommand(),
			DecodeCommand(),
			KeypairCommand(),
		},
		Before: setup,
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "env-file",
			Usage: "Load settings from `FILE` (repeatable); ./.env is used when omitted",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: text, json, yaml",
		},
	}
}

func setup(c *cli.Context) error {
	cfg, err := config.Load(c.StringSlice("env-file")...)
	if err != nil {
		return err
	}

	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.LogFormat = c.String("log-format")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return err
	}

	st := &state{
		cfg: cfg,
		log: logger.New(
			logger.WithLevel(level),
			logger.WithFormat(format),
			logger.WithOutput(c.App.ErrWriter),
		),
	}
	if cfg.KeyCacheSize > 0 {
		st.cache = sigtoken.NewKeyCache(cfg.KeyCacheSize)
	}

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]any)
	}
	c.App.Metadata[stateKey] = st
	return nil
}

func getState(c *cli.Context) *state {
	if st, ok := c.App.Metadata[stateKey].(*state); ok {
		return st
	}
	return &state{log: logger.New(logger.WithOutput(c.App.ErrWriter))}
}

// options returns sigtoken options shared by every command.
func (s *state) options() []sigtoken.Option {
	opts := []sigtoken.Option{sigtoken.WithLogger(s.log)}
	if s.cache != nil {
		opts = append(opts, sigtoken.WithKeyCache(s.cache))
	}
	return opts
}
