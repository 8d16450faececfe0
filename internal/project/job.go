package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nhansendev/RectanglePack/internal/model"
)

// SaveJob writes a job to the given path as indented JSON, creating parent
// directories as needed. The format version is stamped if missing.
func SaveJob(path string, job model.Job) error {
	if job.Version == "" {
		job.Version = model.JobVersion
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadJob reads a job from the given path.
func LoadJob(path string) (model.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Job{}, err
	}
	var job model.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return model.Job{}, fmt.Errorf("failed to parse job file: %w", err)
	}
	if job.Version == "" {
		return model.Job{}, fmt.Errorf("invalid job file: missing version field")
	}
	if job.Items == nil {
		job.Items = []model.Item{}
	}
	return job, nil
}

// SaveResult writes an allocation result to the given path as indented JSON
// for downstream consumers.
func SaveResult(path string, result model.Result) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
