package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wversluys/fetcharr/config"
	"github.com/wversluys/fetcharr/pkg/catalog"
	"github.com/wversluys/fetcharr/pkg/logger"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "synchronize the library with the catalog once",
	Long:  `synchronize the library with the catalog once`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatalw("failed to read configurations", "error", err)
		}

		cat, err := catalog.Load(ctx, cfg.Catalog.FilePath)
		if err != nil {
			log.Fatalw("failed to load catalog", "error", err)
		}

		m, err := newManager(ctx, cfg)
		if err != nil {
			log.Fatalw("failed to set up", "error", err)
		}

		summary := m.Run(ctx, cat)
		if summary.Failed > 0 || summary.EntryFailures > 0 {
			log.Warnw("run finished with failures", "failed", summary.Failed, "entry_failures", summary.EntryFailures)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
