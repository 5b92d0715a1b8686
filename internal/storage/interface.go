package storage

import (
	stderrors "errors"
	"fmt"
	"path/filepath"

	"github.com/julianstephens/nybbler/internal/constants"
	"github.com/julianstephens/nybbler/internal/models"
)

// ErrNotFound is returned by Load when no pet has been saved yet.
var ErrNotFound = stderrors.New("no saved pet")

// Provider reads and writes the single pet record.
// Load and Save failures other than ErrNotFound are *errors.PersistenceError.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Record
	Load() (models.Pet, error)
	Save(models.Pet) error
	Exists() (bool, error)

	// Verify checks that the file at path holds a readable record for this backend.
	Verify(path string) error

	// Utils
	GetConfigPath() string
}

// New returns the provider for the named backend, saving under dataDir.
func New(backend, dataDir string) (Provider, error) {
	switch backend {
	case "", constants.StoreJSON:
		return NewJSONStore(filepath.Join(dataDir, constants.JSONSaveFile)), nil
	case constants.StoreSQLite:
		return NewSQLiteStore(filepath.Join(dataDir, constants.SQLiteSaveFile)), nil
	default:
		return nil, fmt.Errorf("unknown store %q (want %s or %s)", backend, constants.StoreJSON, constants.StoreSQLite)
	}
}
