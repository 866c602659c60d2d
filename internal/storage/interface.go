package storage

import (
	"errors"

	"github.com/julianstephens/quotewiz/internal/constants"
	"github.com/julianstephens/quotewiz/internal/migration"
	"github.com/julianstephens/quotewiz/internal/models"
)

// ErrNotInitialized is returned by stores whose backing database was never
// created with init.
var ErrNotInitialized = errors.New("storage not initialized, run '" + constants.AppName + " init' first")

// Provider persists quotewiz settings. Submitted quotes are never stored.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Diagnostics
	Ping() error
	MigrationRunner() (*migration.Runner, error)

	// Utils
	GetConfigPath() string
}
