package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/swappo/swappo-toolkit/internal/config"
	"github.com/swappo/swappo-toolkit/internal/services"
	"github.com/swappo/swappo-toolkit/pkg/catalog"
)

func newCatalogCommand(c *cli, defaults *config.Configuration) *cobra.Command {
	cat := &cobra.Command{
		Use:   "catalog",
		Short: "Catalog gRPC diagnostics",
	}

	smoke := &cobra.Command{
		Use:   "smoke",
		Short: "Call ValidateItems, GetItem and GetItems once against the catalog gRPC service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := zap.S().Named("catalog_smoke")

			client, err := catalog.NewClient(c.cfg.Catalog.GRPCAddr, catalog.WithTimeout(c.cfg.Catalog.RPCTimeout))
			if err != nil {
				log.Errorw("catalog gRPC test failed", "error", err)
				return err
			}
			defer client.Close()

			if err := services.NewCatalogSmoke(client, cmd.OutOrStdout()).Run(cmd.Context()); err != nil {
				log.Errorw("catalog gRPC test failed", "addr", c.cfg.Catalog.GRPCAddr, "error", err)
				return err
			}
			return nil
		},
	}

	flags := smoke.Flags()
	flags.String("grpc-addr", defaults.Catalog.GRPCAddr, "Catalog gRPC address (host:port)")
	flags.Duration("timeout", defaults.Catalog.RPCTimeout, "Timeout of a single RPC")
	c.bind(flags, map[string]string{
		"catalog.grpc_addr": "grpc-addr",
		"catalog.timeout":   "timeout",
	})

	cat.AddCommand(smoke)
	return cat
}
