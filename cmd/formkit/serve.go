package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/pkg/api"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve validity checks over HTTP",
		Long: `Start the HTTP service. POST an HTML document or a control snapshot to
/v1/validity to receive a validity report as JSON, as an HTML fragment, or as a
DataStar server-sent event. Prometheus metrics are exposed on /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := a.logger("")
			if err != nil {
				return err
			}
			cfg := a.cfg.HTTP
			if addr != "" {
				cfg.Addr = addr
			}
			router := api.NewRouter(
				api.WithLogger(log),
				api.WithMaxBodyBytes(cfg.MaxBodyBytes),
			)
			return api.NewServer(cfg, log).Run(cmd.Context(), router)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}
