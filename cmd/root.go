package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fetcharr",
	Short: "fetcharr keeps a media library in sync with a catalog of wanted series and films",
	Long:  `fetcharr keeps a media library in sync with a catalog of wanted series and films`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
}

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("FETCHARR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("metadata.scheme", "https")
	viper.SetDefault("metadata.host", "api.imdbapi.dev")
	viper.SetDefault("metadata.backoff", time.Second)
	viper.SetDefault("metadata.maxRetries", 5)

	viper.SetDefault("index.scheme", "https")
	viper.SetDefault("index.host", "apibay.org")
	viper.SetDefault("index.cacheTTL", 5*time.Minute)
	viper.SetDefault("index.backoff", time.Second)
	viper.SetDefault("index.maxRetries", 5)

	viper.SetDefault("library.kodiDB", "")

	viper.SetDefault("storage.filePath", "fetcharr.sqlite")

	viper.SetDefault("downloads.implementation", "qbittorrent")
	viper.SetDefault("downloads.scheme", "http")
	viper.SetDefault("downloads.host", "localhost")
	viper.SetDefault("downloads.port", 8080)
	viper.SetDefault("downloads.savePath", "/downloads")

	viper.SetDefault("catalog.filePath", "catalog.json")

	viper.SetDefault("server.port", 8080)
}
