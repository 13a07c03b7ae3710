package cmd

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wversluys/fetcharr/config"
	"github.com/wversluys/fetcharr/pkg/logger"
)

// grabsCmd represents the grabs command
var grabsCmd = &cobra.Command{
	Use:   "grabs",
	Short: "list the releases handed to the download client",
	Long:  `list the releases handed to the download client`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatalw("failed to read configurations", "error", err)
		}

		store, err := newStorage(ctx, cfg)
		if err != nil {
			log.Fatalw("failed to open storage", "error", err)
		}

		grabs, err := store.ListGrabs(ctx, 0, 0)
		if err != nil {
			log.Fatalw("failed to list grabs", "error", err)
		}

		for _, grab := range grabs {
			when := ""
			if grab.GrabbedAt != nil {
				when = humanize.Time(*grab.GrabbedAt)
			}
			fmt.Printf("%-10s %-60s %s\n", grab.State, grab.ReleaseName, when)
		}
	},
}

func init() {
	rootCmd.AddCommand(grabsCmd)
}
