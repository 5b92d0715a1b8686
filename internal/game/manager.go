package game

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/julianstephens/nybbler/internal/errors"
	"github.com/julianstephens/nybbler/internal/logger"
	"github.com/julianstephens/nybbler/internal/models"
	"github.com/julianstephens/nybbler/internal/storage"
)

// Adoption carries the details needed to create a new pet.
type Adoption struct {
	Name      string
	Character models.Character
}

// AdoptFunc is asked for a name and character when there is no pet to load.
type AdoptFunc func() (Adoption, error)

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// Manager owns the live pet between load and save. Every mutation brings the
// pet's stats up to date with wall time before LastUpdated is advanced.
type Manager struct {
	store  storage.Provider
	rules  models.Rules
	now    func() time.Time
	pet    models.Pet
	loaded bool
}

func New(store storage.Provider, rules models.Rules, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		rules: rules,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load reads the saved pet and applies the decay accumulated since it was last
// updated. When nothing is saved yet, adopt is called and a baseline pet is
// created; created reports that case. A damaged save is returned as a
// *errors.PersistenceError and leaves the Manager without a pet.
func (m *Manager) Load(adopt AdoptFunc) (created bool, err error) {
	pet, err := m.store.Load()
	switch {
	case err == nil:
		m.pet = pet
		m.loaded = true
		m.catchUp()
		logger.Debug("Loaded pet", "name", pet.Name, "last_updated", pet.LastUpdated)
		return false, nil
	case stderrors.Is(err, storage.ErrNotFound):
		if err := m.adopt(adopt); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, err
	}
}

// StartOver replaces the current pet with a newly adopted one.
func (m *Manager) StartOver(adopt AdoptFunc) error {
	return m.adopt(adopt)
}

func (m *Manager) adopt(adopt AdoptFunc) error {
	if adopt == nil {
		return storage.ErrNotFound
	}
	a, err := adopt()
	if err != nil {
		return err
	}
	if a.Name == "" {
		return errors.Input("", "pet name cannot be empty")
	}
	if a.Character == "" {
		a.Character = models.RandomCharacter()
	}

	m.pet = m.rules.NewPet(a.Name, a.Character, m.now())
	m.loaded = true
	logger.Info("Adopted pet", "name", a.Name, "character", a.Character)
	return nil
}

// Do applies a care action followed by the decay since the last update.
func (m *Manager) Do(a models.Action) models.Pet {
	m.rules.Apply(&m.pet, a)
	m.catchUp()
	logger.Debug("Applied action", "action", a, "mood", m.Mood())
	return m.pet
}

// Tick applies decay up to now without any action.
func (m *Manager) Tick() models.Pet {
	m.catchUp()
	return m.pet
}

// Save brings the pet up to date and writes it to the store.
func (m *Manager) Save() error {
	if !m.loaded {
		return fmt.Errorf("no pet to save")
	}
	m.catchUp()
	if err := m.store.Save(m.pet); err != nil {
		return err
	}
	logger.Debug("Saved pet", "name", m.pet.Name, "path", m.store.GetConfigPath())
	return nil
}

// catchUp decays the pet from LastUpdated to now. A clock that moved backwards
// leaves stats untouched but still resets LastUpdated.
func (m *Manager) catchUp() {
	now := m.now()
	m.rules.ApplyDecay(&m.pet, now.Sub(m.pet.LastUpdated))
	m.pet.LastUpdated = now
}

// Pet returns a copy of the live pet.
func (m *Manager) Pet() models.Pet {
	return m.pet
}

func (m *Manager) Mood() models.Mood {
	return m.rules.Mood(m.pet)
}

func (m *Manager) Rules() models.Rules {
	return m.rules
}

func (m *Manager) Now() time.Time {
	return m.now()
}

// Forecast projects the pet's stats with no care at each hour from 0 to hours.
// The live pet is not changed.
func (m *Manager) Forecast(hours int) []models.Pet {
	if hours < 0 {
		hours = 0
	}
	points := make([]models.Pet, 0, hours+1)
	p := m.pet
	points = append(points, p)
	for i := 1; i <= hours; i++ {
		m.rules.ApplyDecay(&p, time.Hour)
		points = append(points, p)
	}
	return points
}
