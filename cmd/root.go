package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/config"
	"github.com/quizdeck/quizdeck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizdeck",
	Short: "Terminal quiz player for course question banks",
	Long: `quizdeck plays multiple-choice and descriptive quizzes from course catalogs
and remembers the questions you got wrong so you can review them later.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

// ExecuteContext runs the root command with ctx, cancelled on interrupt.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	f := rootCmd.PersistentFlags()
	f.String("db", "", "Path to SQLite database file (overrides QUIZDECK_DB env var)")
	f.String("catalog-dir", "", "Directory of .json/.xlsx catalogs (default: bundled samples)")
	f.String("store", "", "Storage backend: sqlite, redis or memory")
	f.String("redis-url", "", "Redis URL for --store=redis")
	f.Duration("auto-advance", 0, "Move past answer feedback after this delay (0 waits)")
	f.Bool("persist-review-misses", false, "Record misses made during review quizzes")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUIZDECK_DB (env or .env), then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// flagOverrides copies explicitly set persistent flags over env settings.
func flagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("catalog-dir") {
		cfg.CatalogDir, _ = flags.GetString("catalog-dir")
	}
	if flags.Changed("store") {
		cfg.Store, _ = flags.GetString("store")
	}
	if flags.Changed("redis-url") {
		cfg.RedisURL, _ = flags.GetString("redis-url")
	}
	if flags.Changed("auto-advance") {
		cfg.AutoAdvance, _ = flags.GetDuration("auto-advance")
	}
	if flags.Changed("persist-review-misses") {
		cfg.PersistReviewMisses, _ = flags.GetBool("persist-review-misses")
	}
}
