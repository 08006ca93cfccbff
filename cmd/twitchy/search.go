package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/twitchy/internal/config"
	"github.com/pdiddy/twitchy/internal/helix"
	"github.com/pdiddy/twitchy/internal/logging"
	"github.com/pdiddy/twitchy/internal/search"
)

func runSearch(cmd *cobra.Command, _ []string) error {
	v := config.New()
	envFile, err := config.LoadDotenv(v)
	if err != nil {
		return err
	}

	cfg := config.Helix(v)
	log := logging.New(logging.Config{
		Level:   cfg.LogLevel,
		Output:  cmd.ErrOrStderr(),
		Console: true,
	})
	if envFile != "" {
		log.Debug().Str("path", envFile).Msg("loaded env file")
	}

	creds, err := config.Credentials(v)
	if err != nil {
		return err
	}

	client := helix.NewClient(creds, cfg, logging.WithComponent(log, "helix"))
	return search.Run(cmd.Context(), client, cmd.OutOrStdout())
}
