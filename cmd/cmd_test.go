package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizdeck/quizdeck/internal/config"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("QUIZDECK_LOG_FILE", filepath.Join(dir, "quizdeck.log"))
	t.Setenv("QUIZDECK_DB", filepath.Join(dir, "quizdeck.db"))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestCoursesListsEmbeddedCatalogs(t *testing.T) {
	out := execute(t, "courses", "--store", "memory")
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "QUESTIONS")
	assert.Greater(t, len(strings.Split(strings.TrimSpace(out), "\n")), 1)
}

func TestStatsAndResetOnSQLite(t *testing.T) {
	out := execute(t, "stats", "--store", "sqlite")
	assert.Contains(t, out, "TO REVIEW")

	out = execute(t, "reset", "--store", "sqlite")
	assert.Contains(t, out, "Cleared 0 course(s).")
}

func TestVersion(t *testing.T) {
	out := execute(t, "version")
	assert.Equal(t, "quizdeck (devel)\n", out)
}

func TestFlagOverrides(t *testing.T) {
	cmd := rootCmd
	require.NoError(t, cmd.ParseFlags([]string{"--store", "redis", "--auto-advance", "2s", "--persist-review-misses"}))
	t.Cleanup(func() {
		cmd.Flags().Set("store", config.StoreSQLite)
		cmd.Flags().Set("auto-advance", "0s")
		cmd.Flags().Set("persist-review-misses", "false")
	})

	cfg := &config.Config{Store: config.StoreSQLite, RedisURL: "redis://env"}
	flagOverrides(cmd, cfg)

	assert.Equal(t, config.StoreRedis, cfg.Store)
	assert.Equal(t, "redis://env", cfg.RedisURL)
	assert.Equal(t, 2*time.Second, cfg.AutoAdvance)
	assert.True(t, cfg.PersistReviewMisses)
}
