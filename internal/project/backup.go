package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nhansendev/RectanglePack/internal/model"
)

// SettingsBackup is the top-level structure for import/export of all local
// application data.
type SettingsBackup struct {
	Version   string            `json:"version"`
	CreatedAt string            `json:"created_at"`
	Config    model.AppConfig   `json:"config"`
	Presets   model.PresetStore `json:"presets"`
}

// ExportSettings exports the app config and bin presets to a single JSON
// file at the specified path.
func ExportSettings(exportPath string, config model.AppConfig, presets model.PresetStore) error {
	backup := SettingsBackup{
		Version:   "1.0.0",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    config,
		Presets:   presets,
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	dir := filepath.Dir(exportPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	if err := os.WriteFile(exportPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// ImportSettings reads a settings backup file and returns the contained data.
// The caller is responsible for applying the imported config and presets.
func ImportSettings(importPath string) (SettingsBackup, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return SettingsBackup{}, fmt.Errorf("failed to read settings file: %w", err)
	}
	var backup SettingsBackup
	if err := json.Unmarshal(data, &backup); err != nil {
		return SettingsBackup{}, fmt.Errorf("failed to parse settings file: %w", err)
	}
	if backup.Version == "" {
		return SettingsBackup{}, fmt.Errorf("invalid settings file: missing version field")
	}
	if backup.Config.RecentJobs == nil {
		backup.Config.RecentJobs = []string{}
	}
	if backup.Presets.Presets == nil {
		backup.Presets.Presets = []model.Preset{}
	}
	return backup, nil
}
