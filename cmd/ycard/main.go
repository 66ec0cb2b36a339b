// Command ycard validates, compares and stores yCard contact lists.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/ycard/internal/adapters/driven/config/file"
	yamlparser "github.com/custodia-labs/ycard/internal/adapters/driven/parser/yaml"
	"github.com/custodia-labs/ycard/internal/adapters/driven/schema"
	"github.com/custodia-labs/ycard/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/ycard/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/ycard/internal/adapters/driving/cli"
	"github.com/custodia-labs/ycard/internal/core/domain"
	"github.com/custodia-labs/ycard/internal/core/ports/driven"
	"github.com/custodia-labs/ycard/internal/core/services"
	"github.com/custodia-labs/ycard/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	code := run(ctx)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context) int {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if settings.Logging.Verbose {
		logger.SetVerbose(true)
	}

	store, closeStore := openRecordStore(settings.Storage)
	defer closeStore()

	verifier, err := schema.NewVerifier()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	persist := services.NewPersistenceService(store, verifier)
	cli.SetServices(cli.Services{
		Sessions: services.NewSessionManager(yamlparser.NewParser(), persist),
		Records:  persist,
		Settings: settingsService,
	})
	cli.SetVersion(version)

	if err := cli.Execute(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "\nInterrupted")
			return 130
		}
		return 1
	}
	return 0
}

// openRecordStore returns the configured backend. The SQLite database is
// opened on first use.
func openRecordStore(cfg domain.StorageSettings) (driven.RecordStore, func()) {
	if cfg.Backend == domain.StorageMemory {
		logger.Debug("storage: memory")
		return memory.NewRecordStore(), func() {}
	}

	store := sqlite.NewLazyStore(cfg.DataDir)
	return store, func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing record store: %v", err)
		}
	}
}
