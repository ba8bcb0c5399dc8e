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
	Use:   "costar",
	Short: "compare two actors' movie ratings",
	Long: `costar compares the average IMDb ratings of two actors:
movies they starred in together versus movies they made apart.
Dataset files are downloaded once and cached locally.`,
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

const defaultDownloadTimeout = time.Minute * 5

func initConfig() {
	// the config file is optional; everything has a default
	if _, err := os.Stat(cfgFile); err == nil {
		viper.SetConfigFile(cfgFile)
	}

	viper.SetEnvPrefix("COSTAR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("dataset.dir", "imdb_data")
	viper.SetDefault("dataset.baseURL", "https://datasets.imdbws.com/")
	viper.SetDefault("dataset.timeout", defaultDownloadTimeout)

	viper.SetDefault("actors.a", "Bill Murray")
	viper.SetDefault("actors.b", "Owen Wilson")
}
