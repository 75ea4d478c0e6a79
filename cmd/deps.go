package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/catalog"
	"github.com/quizdeck/quizdeck/internal/config"
	"github.com/quizdeck/quizdeck/internal/logger"
	"github.com/quizdeck/quizdeck/internal/store"
)

// deps are the opened resources shared by every subcommand.
type deps struct {
	cfg       *config.Config
	log       zerolog.Logger
	library   *catalog.Library
	keys      store.Keys
	mistakes  *store.MistakeStore
	snapshots store.SnapshotRepo

	closers []io.Closer
}

// Close releases the store and the log file.
func (d *deps) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		errs = append(errs, d.closers[i].Close())
	}
	return errors.Join(errs...)
}

// openDeps loads configuration, opens the log file and the configured store
// backend, and loads the course catalogs.
func openDeps(ctx context.Context, cmd *cobra.Command) (*deps, error) {
	cfg := config.Load()
	flagOverrides(cmd, cfg)
	cfg.Store = strings.ToLower(cfg.Store)
	if !config.ValidStore(cfg.Store) {
		return nil, fmt.Errorf("unknown store %q: must be sqlite, redis or memory", cfg.Store)
	}

	d := &deps{cfg: cfg}

	logPath := cfg.LogFile
	if logPath == "" {
		dir, err := store.DataDir()
		if err != nil {
			return nil, fmt.Errorf("resolve data dir: %w", err)
		}
		logPath = filepath.Join(dir, "quizdeck.log")
	}
	logFile, err := logger.OpenFile(logPath)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	d.closers = append(d.closers, logFile)
	d.log = logger.Setup(logFile, cfg.LogLevel, cfg.LogFormat)

	kv, err := d.openKV(ctx, cmd)
	if err != nil {
		d.Close()
		return nil, err
	}

	d.keys = store.NewKeys(cfg.KeyPrefix)
	d.mistakes = store.NewMistakeStore(kv, d.keys, d.log)
	d.snapshots = store.NewSnapshotRepo(kv, d.keys, d.log)

	if cfg.CatalogDir != "" {
		d.library, err = catalog.LoadDir(cfg.CatalogDir, d.log)
	} else {
		d.library, err = catalog.LoadEmbedded()
	}
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("load catalogs: %w", err)
	}

	d.log.Info().
		Str("store", cfg.Store).
		Int("courses", d.library.Len()).
		Msg("quizdeck started")
	return d, nil
}

func (d *deps) openKV(ctx context.Context, cmd *cobra.Command) (store.KV, error) {
	switch d.cfg.Store {
	case config.StoreRedis:
		rdb, err := store.OpenRedis(ctx, d.cfg.RedisURL, d.log)
		if err != nil {
			return nil, fmt.Errorf("open redis: %w", err)
		}
		d.closers = append(d.closers, rdb)
		return store.NewRedisKV(rdb, ""), nil

	case config.StoreMemory:
		return store.NewMemoryKV(), nil
	}

	dbPath, err := resolveDBPath(cmd, d.cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	d.closers = append(d.closers, st)
	d.log.Debug().Str("path", dbPath).Msg("sqlite store opened")
	return st.KV(), nil
}
