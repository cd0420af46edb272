package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/atlasfreight/exportdesk/internal/config"
	"github.com/atlasfreight/exportdesk/internal/service"
	"github.com/atlasfreight/exportdesk/internal/storage"
	"github.com/atlasfreight/exportdesk/internal/weather"
	"github.com/spf13/viper"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = filepath.Join(config.DefaultDataDir(), "exportdesk.db")
	}

	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// monitoredPorts resolves the configured port set, falling back to the
// defaults when none are configured.
func monitoredPorts() []weather.Port {
	ids := viper.GetStringSlice("weather.ports")
	if len(ids) == 0 {
		return weather.DefaultPorts
	}

	ports := make([]weather.Port, 0, len(ids))
	for _, id := range ids {
		if port := weather.PortByID(weather.DefaultPorts, id); port != nil {
			ports = append(ports, *port)
		}
	}

	if len(ports) == 0 {
		return weather.DefaultPorts
	}

	return ports
}
