package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/nhansendev/RectanglePack/internal/model"
)

// DefaultPresetsPath returns the default file path for the bin preset store.
// This is located at ~/.sheetpack/presets.json.
func DefaultPresetsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".sheetpack", "presets.json"), nil
}

// SavePresets writes the preset store to the specified JSON file.
// It creates parent directories if they do not exist.
func SavePresets(path string, store model.PresetStore) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPresets reads the preset store from the specified JSON file.
// If the file does not exist, it returns the default presets and saves them.
func LoadPresets(path string) (model.PresetStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			store := model.DefaultPresets()
			if saveErr := SavePresets(path, store); saveErr != nil {
				return store, saveErr
			}
			return store, nil
		}
		return model.PresetStore{}, err
	}
	var store model.PresetStore
	if err := json.Unmarshal(data, &store); err != nil {
		return model.PresetStore{}, err
	}
	if store.Presets == nil {
		store.Presets = []model.Preset{}
	}
	return store, nil
}

// LoadOrCreatePresets loads the preset store from the default path.
// If the file does not exist, it creates one with the default bin sizes.
func LoadOrCreatePresets() (model.PresetStore, string, error) {
	path, err := DefaultPresetsPath()
	if err != nil {
		return model.DefaultPresets(), "", err
	}
	store, err := LoadPresets(path)
	return store, path, err
}
