package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kylegrant/costar/config"
	"github.com/kylegrant/costar/pkg/fsio"
	"github.com/kylegrant/costar/pkg/httpz"
	"github.com/kylegrant/costar/pkg/imdb"
	"github.com/kylegrant/costar/pkg/logger"
)

// fetchCmd pre-warms the dataset cache without running a comparison
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "download any missing dataset files",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatalf("failed to read configuration: %v", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		zlog := logger.Get()
		ctx = logger.WithCtx(ctx, zlog)

		cache := imdb.NewCache(
			cfg.Dataset.Dir,
			cfg.Dataset.BaseURL,
			httpz.NewClient(httpz.WithTimeout(cfg.Dataset.Timeout)),
			&fsio.DatasetFileSystem{},
		)
		if _, err := cache.Ensure(ctx); err != nil {
			zlog.Fatalf("failed to prepare datasets: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
