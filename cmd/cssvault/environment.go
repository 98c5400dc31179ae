package main

import (
	"fmt"
	"os"

	"github.com/dvdvault/cssvault/internal/core"
	"github.com/dvdvault/cssvault/internal/keystore"
	"go.uber.org/zap"
)

// loadEnvironment builds the config, logger, and key store shared by every
// subcommand that needs persisted state.
func loadEnvironment() (*core.Config, *zap.SugaredLogger, *keystore.Store) {
	cfg := core.LoadConfig(ConfigFlag)

	logger, err := core.NewLogger(cfg)
	if err != nil {
		fmt.Println("error building logger:", err)
		os.Exit(1)
	}

	store, err := keystore.Open(cfg.KeyStore.Driver, cfg.KeyStore.DSN)
	if err != nil {
		logger.Fatalw("error opening key store", "error", err)
	}

	return cfg, logger, store
}
