package config

import (
	"os"

	"github.com/fitcoach/start-frontend/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	localDir     string // Directory holding .start-frontend.toml
	globalAppDir string // Path to global app directory
}

// NewManager creates a new Manager.
func NewManager(localDir string) *Manager {
	return &Manager{
		localDir:     localDir,
		globalAppDir: DefaultGlobalAppDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global app directory.
// This is useful for testing.
func NewManagerWithGlobalDir(localDir, globalAppDir string) *Manager {
	return &Manager{
		localDir:     localDir,
		globalAppDir: globalAppDir,
	}
}

// GlobalConfigInfo returns information about the global config file.
func (m *Manager) GlobalConfigInfo() domain.ConfigInfo {
	if m.globalAppDir == "" {
		return domain.ConfigInfo{}
	}
	return configInfo(domain.GlobalConfigPath(m.globalAppDir))
}

// LocalConfigInfo returns information about the local config file.
func (m *Manager) LocalConfigInfo() domain.ConfigInfo {
	return configInfo(domain.LocalConfigPath(m.localDir))
}

// configInfo reads a config file and returns its info.
func configInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitGlobalConfig creates the global config file with the default template.
func (m *Manager) InitGlobalConfig() error {
	if m.globalAppDir == "" {
		return domain.ErrNoConfigDir
	}
	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(m.globalAppDir, 0o700); err != nil {
		return err
	}
	return initConfig(domain.GlobalConfigPath(m.globalAppDir))
}

// InitLocalConfig creates the local config file with the default template.
func (m *Manager) InitLocalConfig() error {
	return initConfig(domain.LocalConfigPath(m.localDir))
}

// initConfig creates a config file with default template.
func initConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return domain.ErrConfigExists
	}
	return os.WriteFile(path, []byte(domain.RenderConfigTemplate()), 0o600)
}
