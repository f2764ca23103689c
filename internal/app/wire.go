package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jthurston/EmbCalc/internal/domain"
	quotesvc "github.com/jthurston/EmbCalc/internal/services/quote"
	settingssvc "github.com/jthurston/EmbCalc/internal/services/settings"
	"github.com/jthurston/EmbCalc/internal/store"
)

// Wire bundles the store and high-level services for the CLI.
type Wire struct {
	Config   *Config
	Settings domain.SettingsService
	Quotes   domain.QuoteService
	Log      *zap.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg *Config) (*Wire, error) {
	if err := os.MkdirAll(cfg.Home, 0o755); err != nil {
		return nil, fmt.Errorf("create app dir: %w", err)
	}

	log, err := newLogger(cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	settingsStore := store.NewSettingsFileStore(cfg.Home, log)
	settingsSvc := settingssvc.New(settingsStore, log)
	quoteSvc := quotesvc.New(settingsSvc, log)

	return &Wire{
		Config:   cfg,
		Settings: settingsSvc,
		Quotes:   quoteSvc,
		Log:      log,
	}, nil
}

// Close flushes any buffered log output.
func (w *Wire) Close() {
	_ = w.Log.Sync()
}

// newLogger builds a development logger under --verbose, otherwise a
// production logger that only surfaces warnings on stderr.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	c.OutputPaths = []string{"stderr"}
	return c.Build()
}
