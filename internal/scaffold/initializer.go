package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dyluth/blockkit/internal/config"
	"github.com/dyluth/blockkit/internal/payload"
	"github.com/dyluth/blockkit/pkg/blockkit"
)

//go:embed templates/*
var templatesFS embed.FS

// ExamplePayload is the sample payload written next to the config file.
const ExamplePayload = "payloads/example.yaml"

// FileInfo represents a file to be created during initialization
type FileInfo struct {
	Path        string
	Content     []byte
	Permissions os.FileMode
}

// Initialize writes a starter config and example payload into dir and returns
// the created paths. If force is true, existing files are overwritten.
func Initialize(dir string, force bool) ([]string, error) {
	if !force {
		if err := CheckExisting(dir); err != nil {
			return nil, err
		}
	}

	files, err := getTemplateFiles()
	if err != nil {
		return nil, err
	}

	created := make([]string, 0, len(files))
	for _, file := range files {
		path := filepath.Join(dir, file.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory for %s: %w", file.Path, err)
		}
		if err := os.WriteFile(path, file.Content, file.Permissions); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", file.Path, err)
		}
		created = append(created, file.Path)
	}

	if err := validateCreatedFiles(dir); err != nil {
		return nil, err
	}

	return created, nil
}

// getTemplateFiles maps embedded templates to their destination paths
func getTemplateFiles() ([]FileInfo, error) {
	mapping := []struct {
		template string
		dest     string
	}{
		{"templates/blockkit.yml", config.DefaultPath},
		{"templates/example.yaml", ExamplePayload},
	}

	files := make([]FileInfo, 0, len(mapping))
	for _, m := range mapping {
		content, err := templatesFS.ReadFile(m.template)
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", m.template, err)
		}
		files = append(files, FileInfo{Path: m.dest, Content: content, Permissions: 0644})
	}

	return files, nil
}

// validateCreatedFiles re-reads everything written so a broken template never ships
func validateCreatedFiles(dir string) error {
	if _, err := config.Load(filepath.Join(dir, config.DefaultPath)); err != nil {
		return fmt.Errorf("generated %s is invalid: %w", config.DefaultPath, err)
	}

	data, err := payload.ReadFile(filepath.Join(dir, ExamplePayload), nil)
	if err != nil {
		return err
	}
	if _, err := blockkit.ParseMessage(data); err != nil {
		return fmt.Errorf("generated %s is invalid: %w", ExamplePayload, err)
	}

	return nil
}
