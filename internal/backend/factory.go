package backend

import (
	"context"
	"fmt"

	"budget/internal/config"
	"budget/internal/log"
	"budget/internal/storage"
	"budget/internal/store/file"
	"budget/internal/store/memory"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *log.Logger
}

// NewFactory creates a new store factory
func NewFactory(logger *log.Logger) Factory {
	if logger == nil {
		logger = log.Discard()
	}
	return &DefaultFactory{
		logger: logger.WithComponent(log.ComponentBackend),
	}
}

// CreateStore implements Factory.CreateStore
func (f *DefaultFactory) CreateStore(ctx context.Context, config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SQLiteBackend:
		return f.createSQLiteStore(ctx, config)
	case FileBackend:
		return f.createFileStore(ctx, config)
	default:
		f.logger.DebugContext(ctx, "Initialized memory store", log.FieldBackend, config.Type)
		return &Result{Store: memory.New()}, nil
	}
}

func (f *DefaultFactory) createSQLiteStore(ctx context.Context, config Config) (*Result, error) {
	repo, err := storage.NewSQLiteStore(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite store: %w", err)
	}

	f.logger.DebugContext(ctx, "Initialized SQLite store",
		log.FieldBackend, config.Type, log.FieldDBPath, config.SQLiteDBPath)

	return &Result{
		Store:   repo,
		Cleanup: repo.Close,
	}, nil
}

func (f *DefaultFactory) createFileStore(ctx context.Context, config Config) (*Result, error) {
	dataDir := config.DataDirectory
	if dataDir == "" {
		dataDir = "data" // Default directory
	}

	s, err := file.New(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file store: %w", err)
	}

	f.logger.DebugContext(ctx, "Initialized file store",
		log.FieldBackend, config.Type, log.FieldDataDir, dataDir)

	return &Result{Store: s}, nil
}

// ConfigFromAppConfig converts application config to backend config
func ConfigFromAppConfig(appConfig *config.Config) Config {
	return Config{
		Type:          Type(appConfig.StoreBackend),
		DataDirectory: appConfig.StoreDir,
		SQLiteDBPath:  appConfig.SQLiteDBPath,
	}
}
