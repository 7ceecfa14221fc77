package root

import (
	"github.com/spf13/cobra"

	"hunterline/internal/api"
	"hunterline/internal/engine"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP/JSON API until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTPAddr = addr
			}
			logger := commandLogger(cfg, cmd.ErrOrStderr(), false)

			stores, cleanup, err := openStores(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			svc := engine.NewService(stores, engine.WithLogger(logger))
			logger.Info("hunterline starting", "version", Version, "store", cfg.Store, "addr", cfg.HTTPAddr)
			return api.NewServer(svc, logger).ListenAndServe(ctx, cfg.HTTPAddr, cfg.ShutdownTimeout)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, overrides HL_HTTP_ADDR")
	return cmd
}
