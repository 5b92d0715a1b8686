package storage

import (
	"database/sql"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/nybbler/internal/errors"
	"github.com/julianstephens/nybbler/internal/models"
)

const petSchema = `
CREATE TABLE IF NOT EXISTS pet (
	id           INTEGER PRIMARY KEY CHECK (id = 1),
	name         TEXT NOT NULL,
	character    TEXT NOT NULL,
	hunger       REAL NOT NULL,
	happiness    REAL NOT NULL,
	energy       REAL NOT NULL,
	health       REAL NOT NULL,
	born_at      TEXT NOT NULL,
	last_updated TEXT NOT NULL
)`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return errors.Persistence("init", filepath.Dir(s.path), fmt.Errorf("failed to create data directory: %w", err))
	}
	if err := s.open(); err != nil {
		return errors.Persistence("init", s.path, err)
	}
	if _, err := s.db.Exec(petSchema); err != nil {
		return errors.Persistence("init", s.path, fmt.Errorf("failed to create schema: %w", err))
	}
	return nil
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) Exists() (bool, error) {
	_, err := os.Stat(s.path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Persistence("load", s.path, err)
}

func (s *SQLiteStore) Load() (models.Pet, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return models.Pet{}, ErrNotFound
	}
	if err := s.open(); err != nil {
		return models.Pet{}, errors.Persistence("load", s.path, err)
	}
	return readSQLitePet(s.db, s.path)
}

func (s *SQLiteStore) Verify(path string) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Persistence("verify", path, err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return errors.Persistence("verify", path, err)
	}
	defer db.Close()

	_, err = readSQLitePet(db, path)
	return err
}

func readSQLitePet(db *sql.DB, path string) (models.Pet, error) {
	exists, err := tableExists(db, "pet")
	if err != nil {
		return models.Pet{}, errors.Persistence("load", path, fmt.Errorf("failed to read database: %w", err))
	}
	if !exists {
		return models.Pet{}, ErrNotFound
	}

	var (
		pet                 models.Pet
		character           string
		bornAt, lastUpdated string
	)
	row := db.QueryRow(`SELECT name, character, hunger, happiness, energy, health, born_at, last_updated FROM pet WHERE id = 1`)
	err = row.Scan(&pet.Name, &character, &pet.Hunger, &pet.Happiness, &pet.Energy, &pet.Health, &bornAt, &lastUpdated)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return models.Pet{}, ErrNotFound
		}
		return models.Pet{}, errors.Persistence("load", path, fmt.Errorf("failed to read pet: %w", err))
	}
	pet.Character = models.Character(character)

	if pet.BornAt, err = time.Parse(time.RFC3339Nano, bornAt); err != nil {
		return models.Pet{}, errors.Persistence("load", path, fmt.Errorf("invalid born_at: %w", err))
	}
	if pet.LastUpdated, err = time.Parse(time.RFC3339Nano, lastUpdated); err != nil {
		return models.Pet{}, errors.Persistence("load", path, fmt.Errorf("invalid last_updated: %w", err))
	}
	if err := pet.Validate(); err != nil {
		return models.Pet{}, errors.Persistence("load", path, fmt.Errorf("invalid pet record: %w", err))
	}

	return pet, nil
}

func (s *SQLiteStore) Save(pet models.Pet) error {
	if s.db == nil {
		if err := s.Init(); err != nil {
			return err
		}
	} else if _, err := s.db.Exec(petSchema); err != nil {
		return errors.Persistence("save", s.path, fmt.Errorf("failed to create schema: %w", err))
	}

	tx, err := s.db.Begin()
	if err != nil {
		return errors.Persistence("save", s.path, fmt.Errorf("failed to begin transaction: %w", err))
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO pet (id, name, character, hunger, happiness, energy, health, born_at, last_updated)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			character = excluded.character,
			hunger = excluded.hunger,
			happiness = excluded.happiness,
			energy = excluded.energy,
			health = excluded.health,
			born_at = excluded.born_at,
			last_updated = excluded.last_updated`,
		pet.Name, string(pet.Character), pet.Hunger, pet.Happiness, pet.Energy, pet.Health,
		pet.BornAt.Format(time.RFC3339Nano), pet.LastUpdated.Format(time.RFC3339Nano),
	)
	if err != nil {
		return errors.Persistence("save", s.path, fmt.Errorf("failed to write pet: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return errors.Persistence("save", s.path, fmt.Errorf("failed to commit: %w", err))
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// tableExists checks if a table exists in the SQLite database.
// The check is case-insensitive to match SQLite's behavior.
func tableExists(db *sql.DB, tableName string) (bool, error) {
	var count int
	row := db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name COLLATE NOCASE = ?", tableName)
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
