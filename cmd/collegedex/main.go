// Command collegedex is the entry point for the college directory CLI.
package main

import (
	"fmt"
	"os"

	"github.com/collegedex/collegedex-cli/internal/adapters/driven/config/file"
	"github.com/collegedex/collegedex-cli/internal/adapters/driven/provider/httpapi"
	"github.com/collegedex/collegedex-cli/internal/adapters/driven/storage/sqlite"
	"github.com/collegedex/collegedex-cli/internal/adapters/driving/cli"
	"github.com/collegedex/collegedex-cli/internal/cache"
	"github.com/collegedex/collegedex-cli/internal/core/ports/driven"
	"github.com/collegedex/collegedex-cli/internal/core/services"
	"github.com/collegedex/collegedex-cli/internal/logger"
	"github.com/collegedex/collegedex-cli/internal/watcher"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	c := cache.New()
	if capacity := cfg.GetInt(file.KeyCacheCapacity); capacity > 0 {
		c = cache.NewWithCapacity(capacity)
	}

	var store driven.EntityStore
	var w *watcher.Watcher

	// A configured API endpoint takes priority over the local database.
	if endpoint := cfg.GetString(file.KeyAPIEndpoint); endpoint != "" {
		store = httpapi.NewClient(endpoint)
	} else {
		sqlStore, err := sqlite.NewStore(cfg.GetString(file.KeyDataDir))
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		store = sqlStore

		// Invalidate cached snapshots when another process rewrites
		// the database file.
		w, err = watcher.New(sqlStore.Path(), c)
		if err != nil {
			logger.Warn("file watcher unavailable: %v", err)
		}
	}
	defer func() {
		if w != nil {
			if err := w.Close(); err != nil {
				logger.Warn("closing watcher: %v", err)
			}
		}
		if err := store.Close(); err != nil {
			logger.Warn("closing store: %v", err)
		}
	}()

	suggest := services.NewSuggestService(store, c)
	filter := services.NewFilterService(store, c)

	cli.SetServices(suggest, filter)
	cli.SetStore(store, c)
	cli.SetDefaultSuggestLimit(cfg.GetInt(file.KeyMaxSuggestions))

	return cli.Execute()
}
