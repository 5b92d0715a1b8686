package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/nybbler/internal/errors"
	"github.com/julianstephens/nybbler/internal/models"
)

type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return errors.Persistence("init", filepath.Dir(s.path), fmt.Errorf("failed to create data directory: %w", err))
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Exists() (bool, error) {
	_, err := os.Stat(s.path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Persistence("load", s.path, err)
}

func (s *JSONStore) Load() (models.Pet, error) {
	return readJSONPet(s.path)
}

func (s *JSONStore) Verify(path string) error {
	_, err := readJSONPet(path)
	return err
}

func readJSONPet(path string) (models.Pet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Pet{}, ErrNotFound
		}
		return models.Pet{}, errors.Persistence("load", path, fmt.Errorf("failed to read save file: %w", err))
	}

	var pet models.Pet
	if err := json.Unmarshal(data, &pet); err != nil {
		return models.Pet{}, errors.Persistence("load", path, fmt.Errorf("failed to parse save file: %w", err))
	}
	if err := pet.Validate(); err != nil {
		return models.Pet{}, errors.Persistence("load", path, fmt.Errorf("invalid save file: %w", err))
	}

	return pet, nil
}

func (s *JSONStore) Save(pet models.Pet) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return errors.Persistence("save", s.path, fmt.Errorf("failed to create data directory: %w", err))
	}

	data, err := json.MarshalIndent(pet, "", "  ")
	if err != nil {
		return errors.Persistence("save", s.path, fmt.Errorf("failed to serialize pet: %w", err))
	}

	if err := writeFileAtomic(s.path, data, 0600); err != nil {
		return errors.Persistence("save", s.path, fmt.Errorf("failed to write save file: %w", err))
	}

	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

// writeFileAtomic writes data to a temporary file next to path and renames it
// into place, so readers see either the old content or the new, never a mix.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpPath)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
