// Package config provides configuration loading functionality.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/fitcoach/start-frontend/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	localDir     string // Directory holding .start-frontend.toml (the invoking directory)
	globalAppDir string // Path to global app directory (e.g., ~/.config/start-frontend)
}

// NewLoader creates a new Loader.
func NewLoader(localDir string) *Loader {
	return &Loader{
		localDir:     localDir,
		globalAppDir: DefaultGlobalAppDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global app directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(localDir, globalAppDir string) *Loader {
	return &Loader{
		localDir:     localDir,
		globalAppDir: globalAppDir,
	}
}

// DefaultGlobalAppDir returns the default global app directory.
// It returns an empty string when no home directory can be determined.
func DefaultGlobalAppDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalAppDir(configHome)
}

// Load returns the merged configuration (defaults <- global <- local).
func (l *Loader) Load() (*domain.Config, error) {
	return l.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadWithOptions returns the merged configuration with options to ignore sources.
func (l *Loader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if !opts.IgnoreGlobal && l.globalAppDir != "" {
		global, err := loadFile(domain.GlobalConfigPath(l.globalAppDir))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if global != nil {
			base = base.Merge(global)
		}
	}

	if !opts.IgnoreLocal && l.localDir != "" {
		local, err := loadFile(domain.LocalConfigPath(l.localDir))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if local != nil {
			base = base.Merge(local)
		}
	}

	return base, nil
}

// loadFile loads a configuration from a file.
// Unknown keys do not fail the load; they are reported in Config.Warnings.
func loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg domain.Config
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	err = dec.Decode(&cfg)

	var strict *toml.StrictMissingError
	switch {
	case err == nil:
		return &cfg, nil
	case errors.As(err, &strict):
		cfg = domain.Config{}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		cfg.Warnings = unknownKeyWarnings(path, strict)
		return &cfg, nil
	default:
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
}

func unknownKeyWarnings(path string, strict *toml.StrictMissingError) []string {
	warnings := make([]string, 0, len(strict.Errors))
	for _, e := range strict.Errors {
		warnings = append(warnings, fmt.Sprintf("unknown key in %s: %s", filepath.Base(path), strings.Join(e.Key(), ".")))
	}
	sort.Strings(warnings)
	return warnings
}
