package cli

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/julianstephens/nybbler/internal/backup"
	"github.com/julianstephens/nybbler/internal/config"
	"github.com/julianstephens/nybbler/internal/game"
	"github.com/julianstephens/nybbler/internal/logger"
	"github.com/julianstephens/nybbler/internal/models"
	"github.com/julianstephens/nybbler/internal/storage"
)

// ErrNoPet is returned by commands that need an existing pet.
var ErrNoPet = stderrors.New("no pet yet - run 'nybbler adopt' or start 'nybbler tui'")

type Context struct {
	Store      storage.Provider
	Config     *config.Config
	ConfigPath string
	DataDir    string
	Clock      func() time.Time
}

func (c *Context) Rules() models.Rules {
	if c.Config == nil {
		return models.DefaultRules()
	}
	return c.Config.Rules
}

func (c *Context) Now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock()
}

// NewGame returns a game manager over the context's store and rules.
func (c *Context) NewGame() *game.Manager {
	opts := []game.Option{}
	if c.Clock != nil {
		opts = append(opts, game.WithClock(c.Clock))
	}
	return game.New(c.Store, c.Rules(), opts...)
}

// LoadGame loads the saved pet, failing with ErrNoPet when there is none.
func (c *Context) LoadGame() (*game.Manager, error) {
	g := c.NewGame()
	if _, err := g.Load(nil); err != nil {
		if stderrors.Is(err, storage.ErrNotFound) {
			return nil, ErrNoPet
		}
		return nil, err
	}
	return g, nil
}

// Backups returns the backup manager for the current save file.
func (c *Context) Backups() *backup.Manager {
	return backup.NewManager(c.Store.GetConfigPath(), c.Store.Verify)
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	_, err := c.Backups().CreateBackup()
	if err != nil {
		// Log warning but don't interrupt the session
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// SaveGame writes the pet back to the store.
func (c *Context) SaveGame(g *game.Manager) error {
	if err := g.Save(); err != nil {
		return fmt.Errorf("failed to save %s: %w", g.Pet().Name, err)
	}
	return nil
}
