package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/swappo/swappo-toolkit/internal/config"
	"github.com/swappo/swappo-toolkit/internal/logger"
)

// cli carries the state shared by every subcommand once the root pre-run has loaded it.
type cli struct {
	v          *viper.Viper
	cfg        *config.Configuration
	syncLogger func()
}

func newRootCommand() *cobra.Command {
	c := &cli{v: viper.New()}
	defaults := config.NewConfigurationWithOptionsAndDefaults()

	root := &cobra.Command{
		Use:           "swappo",
		Short:         "Operational toolkit for the Swappo platform",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.load(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.syncLogger != nil {
				c.syncLogger()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.String("log-format", defaults.LogFormat, "Log format: console or json")
	flags.String("log-level", defaults.LogLevel, "Log level: debug, info, warn, error")
	c.bind(flags, map[string]string{
		"log_format": "log-format",
		"log_level":  "log-level",
	})

	root.AddCommand(
		newWaitCommand(c, defaults),
		newShippingCommand(c, defaults),
		newCatalogCommand(c, defaults),
	)
	return root
}

// bind maps configuration keys to flags. Binding errors only happen for nil
// flags, which is a programming error.
func (c *cli) bind(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := c.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", name, err))
		}
	}
}

func (c *cli) load(cmd *cobra.Command) error {
	if err := config.BindEnv(c.v); err != nil {
		return err
	}
	cfg, err := config.Load(c.v)
	if err != nil {
		return err
	}

	sync, err := logger.Setup(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.syncLogger = sync

	zap.S().Named(cmd.Name()).Debugw("configuration loaded",
		"server", cfg.Server.DebugMap(),
		"services", cfg.Services.DebugMap(),
		"readiness", cfg.Readiness.DebugMap(),
		"shipping", cfg.Shipping.DebugMap(),
		"catalog", cfg.Catalog.DebugMap(),
		"log_format", cfg.LogFormat,
		"log_level", cfg.LogLevel,
	)
	return nil
}
