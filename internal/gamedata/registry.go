package gamedata

import (
	"errors"
	"fmt"
)

// LevelRegistry holds validated level definitions in menu order.
type LevelRegistry struct {
	levels []LevelDef
	byID   map[string]int
}

// NewLevelRegistry creates a registry from level definitions.
// Every level is validated and IDs must be unique.
func NewLevelRegistry(levels []LevelDef) (*LevelRegistry, error) {
	registry := &LevelRegistry{
		byID: make(map[string]int, len(levels)),
	}
	for _, l := range levels {
		if err := registry.add(l); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// LoadLevelRegistry loads and creates a registry from the embedded levels.json.
func LoadLevelRegistry() (*LevelRegistry, error) {
	levels, err := LoadLevels()
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, errors.New("no levels loaded from levels.json")
	}
	return NewLevelRegistry(levels)
}

// MustLoadLevelRegistry loads a registry, panicking on error.
func MustLoadLevelRegistry() *LevelRegistry {
	registry, err := LoadLevelRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

func (r *LevelRegistry) add(l LevelDef) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if _, dup := r.byID[l.ID]; dup {
		return fmt.Errorf("%w: duplicate id %q", ErrInvalidLevel, l.ID)
	}
	r.byID[l.ID] = len(r.levels)
	r.levels = append(r.levels, l)
	return nil
}

// Merge adds user-defined levels. A level whose ID already exists replaces
// the existing definition in place; new IDs are appended.
func (r *LevelRegistry) Merge(levels []LevelDef) error {
	for _, l := range levels {
		if i, ok := r.byID[l.ID]; ok {
			if err := l.Validate(); err != nil {
				return err
			}
			r.levels[i] = l
			continue
		}
		if err := r.add(l); err != nil {
			return err
		}
	}
	return nil
}

// GetByID returns the level definition with the given ID, or nil if not found.
func (r *LevelRegistry) GetByID(id string) *LevelDef {
	i, ok := r.byID[id]
	if !ok {
		return nil
	}
	return &r.levels[i]
}

// All returns all level definitions in menu order.
func (r *LevelRegistry) All() []LevelDef {
	return r.levels
}

// Count returns the number of levels in the registry.
func (r *LevelRegistry) Count() int {
	return len(r.levels)
}
