package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/WojciechSzmit/wcag/internal/domain"
)

// FileName is the configuration file looked up in a directory.
const FileName = ".wcag.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .wcag.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads the configuration at path. A directory is searched for
// .wcag.yaml and yields DefaultConfig when the file is absent; an explicit
// *.yaml or *.yml path must exist. Unset fields are filled with defaults.
func (l *YAMLLoader) Load(path string) (domain.AnalyzerConfig, error) {
	file, explicit := resolve(path)

	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return domain.DefaultConfig(), nil
		}
		return domain.AnalyzerConfig{}, fmt.Errorf("reading %s: %w", file, err)
	}

	var cfg domain.AnalyzerConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return domain.AnalyzerConfig{}, fmt.Errorf("parsing %s: %w", filepath.Base(file), err)
	}

	// Validate before merging so typos in the user's raw input surface.
	if err := cfg.Validate(); err != nil {
		return domain.AnalyzerConfig{}, fmt.Errorf("invalid %s: %w", filepath.Base(file), err)
	}

	return cfg.WithDefaults(), nil
}

func resolve(path string) (file string, explicit bool) {
	if path == "" {
		path = "."
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		if info, err := os.Stat(path); err != nil || !info.IsDir() {
			return path, true
		}
	}
	return filepath.Join(path, FileName), false
}

// Marshal renders cfg as the YAML written by `wcag init`.
func Marshal(cfg domain.AnalyzerConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}
