package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kylegrant/costar/config"
	"github.com/kylegrant/costar/pkg/costar"
	"github.com/kylegrant/costar/pkg/fsio"
	"github.com/kylegrant/costar/pkg/httpz"
	"github.com/kylegrant/costar/pkg/imdb"
	"github.com/kylegrant/costar/pkg/logger"
)

var (
	actorA string
	actorB string
)

// compareCmd runs the full pipeline and prints the report
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "compare two actors' average movie ratings",
	Long: `Resolve both actors in the cached IMDb datasets, split their movie
filmographies into shared and solo sets, and report the average rating of each.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatalf("failed to read configuration: %v", err)
		}

		if actorA != "" {
			cfg.Actors.A = actorA
		}
		if actorB != "" {
			cfg.Actors.B = actorB
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
		paths, err := cache.Ensure(ctx)
		if err != nil {
			zlog.Fatalf("failed to prepare datasets: %v", err)
		}

		tables, err := costar.LoadTables(ctx, paths)
		if err != nil {
			zlog.Fatalf("failed to load datasets: %v", err)
		}

		comparison, err := costar.Compare(ctx, tables, cfg.Actors.A, cfg.Actors.B)
		if err != nil {
			zlog.Fatalf("comparison failed: %v", err)
		}

		fmt.Println(comparison.Render())
	},
}

func init() {
	compareCmd.Flags().StringVar(&actorA, "actor-a", "", "first actor's display name")
	compareCmd.Flags().StringVar(&actorB, "actor-b", "", "second actor's display name")

	rootCmd.AddCommand(compareCmd)
}
