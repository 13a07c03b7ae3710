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

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "search the torrent index",
	Long:  `search the torrent index`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatalw("failed to read configurations", "error", err)
		}

		searcher := newSearcher(cfg)
		candidates, err := searcher.Search(ctx, args[0])
		if err != nil {
			log.Fatalw("search failed", "error", err)
		}

		for _, c := range candidates {
			fmt.Printf("%-80s  %4d seeders  %3d files  %s\n", c.Name, c.Seeders, c.FileCount, humanize.Bytes(c.Size))
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
