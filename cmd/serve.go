package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wversluys/fetcharr/config"
	"github.com/wversluys/fetcharr/pkg/logger"
	"github.com/wversluys/fetcharr/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the fetcharr server",
	Long:  `start the fetcharr server`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatalw("failed to read configurations", "error", err)
		}

		m, err := newManager(ctx, cfg)
		if err != nil {
			log.Fatalw("failed to set up", "error", err)
		}

		store, err := newStorage(ctx, cfg)
		if err != nil {
			log.Fatalw("failed to open storage", "error", err)
		}

		s := server.New(log, m, store, cfg.Catalog.FilePath)
		if err := s.Serve(cfg.Server.Port); err != nil {
			log.Fatalw("failed to serve", "error", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
