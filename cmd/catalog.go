package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wversluys/fetcharr/config"
	"github.com/wversluys/fetcharr/pkg/catalog"
	"github.com/wversluys/fetcharr/pkg/logger"
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "inspect and edit the catalog of wanted media",
	Long:  `inspect and edit the catalog of wanted media`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "list the catalog",
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		cat := loadCatalog(ctx)
		for _, item := range cat.Items() {
			line := fmt.Sprintf("%-8s %s", item.Kind, item.Title)
			if item.Year > 0 {
				line = fmt.Sprintf("%s (%d)", line, item.Year)
			}
			if item.ImdbID != "" {
				line = fmt.Sprintf("%s [%s]", line, item.ImdbID)
			}
			fmt.Println(line)
		}
	},
}

var catalogAddSeriesCmd = &cobra.Command{
	Use:   "add-series <title> <imdb-id>",
	Short: "add a series to the catalog",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		seasons, err := cmd.Flags().GetIntSlice("season")
		if err != nil {
			log.Fatalw("failed to read seasons flag", "error", err)
		}

		cat := loadCatalog(ctx)
		cat.Series = append(cat.Series, catalog.MediaItem{
			Kind:    catalog.KindSeries,
			Title:   args[0],
			ImdbID:  args[1],
			Seasons: seasons,
		})
		saveCatalog(cat)
	},
}

var catalogAddFilmCmd = &cobra.Command{
	Use:   "add-film <title> <year>",
	Short: "add a film to the catalog",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		year, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatalw("year must be a number", "year", args[1])
		}

		imdbID, err := cmd.Flags().GetString("imdb-id")
		if err != nil {
			log.Fatalw("failed to read imdb-id flag", "error", err)
		}

		cat := loadCatalog(ctx)
		cat.Films = append(cat.Films, catalog.MediaItem{
			Kind:   catalog.KindFilm,
			Title:  args[0],
			Year:   year,
			ImdbID: imdbID,
		})
		saveCatalog(cat)
	},
}

func loadCatalog(ctx context.Context) catalog.Catalog {
	log := logger.Get()

	cfg, err := config.New(viper.GetViper())
	if err != nil {
		log.Fatalw("failed to read configurations", "error", err)
	}

	cat, err := catalog.Load(ctx, cfg.Catalog.FilePath)
	if err != nil {
		log.Fatalw("failed to load catalog", "error", err)
	}
	return cat
}

func saveCatalog(cat catalog.Catalog) {
	log := logger.Get()

	cfg, err := config.New(viper.GetViper())
	if err != nil {
		log.Fatalw("failed to read configurations", "error", err)
	}

	if err := catalog.Save(cfg.Catalog.FilePath, cat); err != nil {
		log.Fatalw("failed to save catalog", "error", err)
	}
}

func init() {
	catalogAddSeriesCmd.Flags().IntSlice("season", nil, "restrict to specific seasons, repeatable")
	catalogAddFilmCmd.Flags().String("imdb-id", "", "imdb id of the film")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogAddSeriesCmd)
	catalogCmd.AddCommand(catalogAddFilmCmd)
	rootCmd.AddCommand(catalogCmd)
}
