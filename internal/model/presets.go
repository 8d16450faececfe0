package model

import "github.com/google/uuid"

// Preset is a reusable named bin size.
type Preset struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// NewPreset creates a Preset with a generated ID.
func NewPreset(name string, width, height int) Preset {
	return Preset{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Width:  width,
		Height: height,
	}
}

// PresetStore holds the user's saved bin presets.
type PresetStore struct {
	Presets []Preset `json:"presets"`
}

// DefaultPresets returns a store populated with common board sizes.
func DefaultPresets() PresetStore {
	return PresetStore{
		Presets: []Preset{
			NewPreset("Full board 2440x1220 (8'x4')", 2440, 1220),
			NewPreset("Half board 1220x1220", 1220, 1220),
			NewPreset("Quarter board 1220x610 (4'x2')", 1220, 610),
			NewPreset("Acrylic 600x400", 600, 400),
			NewPreset("Plate 600x300", 600, 300),
		},
	}
}

// FindByName returns a pointer to the first preset with the given name, or nil.
func (s *PresetStore) FindByName(name string) *Preset {
	for i := range s.Presets {
		if s.Presets[i].Name == name {
			return &s.Presets[i]
		}
	}
	return nil
}

// FindByID returns a pointer to the preset with the given ID, or nil.
func (s *PresetStore) FindByID(id string) *Preset {
	for i := range s.Presets {
		if s.Presets[i].ID == id {
			return &s.Presets[i]
		}
	}
	return nil
}

// Names returns the preset names in store order.
func (s *PresetStore) Names() []string {
	names := make([]string, len(s.Presets))
	for i, p := range s.Presets {
		names[i] = p.Name
	}
	return names
}
