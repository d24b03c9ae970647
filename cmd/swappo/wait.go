package main

import (
	"github.com/spf13/cobra"

	"github.com/swappo/swappo-toolkit/internal/config"
	"github.com/swappo/swappo-toolkit/internal/verifier"
)

func newWaitCommand(c *cli, defaults *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wait",
		Short: "Block until every Swappo service reports healthy",
		Long: `Polls GET /health on auth, catalog, chat, matchmaking and notifications in
that order. Each service gets a fixed number of attempts at a fixed interval; the
first service that never answers 200 fails the command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := verifier.DefaultReadinessOptions()
			opts.MaxAttempts = c.cfg.Readiness.MaxAttempts
			opts.Interval = c.cfg.Readiness.Interval
			opts.ProbeTimeout = c.cfg.Readiness.ProbeTimeout
			opts.Progress = cmd.OutOrStdout()

			return verifier.WaitForServices(cmd.Context(), c.cfg.Endpoints(), opts)
		},
	}

	flags := cmd.Flags()
	flags.String("auth-url", defaults.Services.AuthURL, "Auth service base URL")
	flags.String("catalog-url", defaults.Services.CatalogURL, "Catalog service base URL")
	flags.String("chat-url", defaults.Services.ChatURL, "Chat service base URL")
	flags.String("matchmaking-url", defaults.Services.MatchmakingURL, "Matchmaking service base URL")
	flags.String("notifications-url", defaults.Services.NotificationsURL, "Notifications service base URL")
	flags.Int("max-attempts", defaults.Readiness.MaxAttempts, "Health probes per service before giving up")
	flags.Duration("interval", defaults.Readiness.Interval, "Delay between two probes of the same service")
	flags.Duration("probe-timeout", defaults.Readiness.ProbeTimeout, "Timeout of a single health probe")
	c.bind(flags, map[string]string{
		"services.auth_url":          "auth-url",
		"services.catalog_url":       "catalog-url",
		"services.chat_url":          "chat-url",
		"services.matchmaking_url":   "matchmaking-url",
		"services.notifications_url": "notifications-url",
		"readiness.max_attempts":     "max-attempts",
		"readiness.interval":         "interval",
		"readiness.probe_timeout":    "probe-timeout",
	})

	return cmd
}
