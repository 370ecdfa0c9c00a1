// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/fitcoach/start-frontend/internal/domain"
)

// MockWorkDir is a test double for domain.WorkDir.
// Fields are ordered to minimize memory padding.
type MockWorkDir struct {
	ChdirErr  error
	GetwdErr  error
	Current   string
	Resolved  map[string]string // Maps a requested dir to what Getwd reports afterwards
	Missing   map[string]bool   // Dirs IsDir reports as absent; all others exist
	ChdirArgs []string
}

// NewMockWorkDir creates a MockWorkDir starting in dir.
func NewMockWorkDir(dir string) *MockWorkDir {
	return &MockWorkDir{
		Current:  dir,
		Resolved: make(map[string]string),
		Missing:  make(map[string]bool),
	}
}

// Ensure MockWorkDir implements domain.WorkDir interface.
var _ domain.WorkDir = (*MockWorkDir)(nil)

// Chdir records the call and switches Current unless ChdirErr is set.
func (m *MockWorkDir) Chdir(dir string) error {
	m.ChdirArgs = append(m.ChdirArgs, dir)
	if m.ChdirErr != nil {
		return m.ChdirErr
	}
	if resolved, ok := m.Resolved[dir]; ok {
		m.Current = resolved
	} else {
		m.Current = dir
	}
	return nil
}

// Getwd returns Current or the configured error.
func (m *MockWorkDir) Getwd() (string, error) {
	if m.GetwdErr != nil {
		return "", m.GetwdErr
	}
	return m.Current, nil
}

// IsDir reports every directory as present unless it is listed in Missing.
func (m *MockWorkDir) IsDir(dir string) bool {
	return !m.Missing[dir]
}

// MockCommandExecutor is a test double for domain.CommandExecutor.
// Fields are ordered to minimize memory padding.
type MockCommandExecutor struct {
	RunErr      error
	ExecuteErr  error
	Outputs     map[string]string // Execute output keyed by ExecCommand.String()
	RunCmds     []*domain.ExecCommand
	ExecuteCmds []*domain.ExecCommand
	// RunHook, when set, is called during Run with the stdio the child would get.
	RunHook func(cmd *domain.ExecCommand, stdio domain.Stdio)
}

// NewMockCommandExecutor creates a new MockCommandExecutor.
func NewMockCommandExecutor() *MockCommandExecutor {
	return &MockCommandExecutor{
		Outputs: make(map[string]string),
	}
}

// Ensure MockCommandExecutor implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*MockCommandExecutor)(nil)

// Execute records the command and returns the configured output.
func (m *MockCommandExecutor) Execute(_ context.Context, cmd *domain.ExecCommand) ([]byte, error) {
	m.ExecuteCmds = append(m.ExecuteCmds, cmd)
	if m.ExecuteErr != nil {
		return nil, m.ExecuteErr
	}
	out, ok := m.Outputs[cmd.String()]
	if !ok {
		return nil, fmt.Errorf("exec: %q: executable file not found in $PATH", cmd.Program)
	}
	return []byte(out), nil
}

// Run records the command and returns RunErr.
func (m *MockCommandExecutor) Run(_ context.Context, cmd *domain.ExecCommand, stdio domain.Stdio) error {
	m.RunCmds = append(m.RunCmds, cmd)
	if m.RunHook != nil {
		m.RunHook(cmd, stdio)
	}
	return m.RunErr
}

// MockProjectInspector is a test double for domain.ProjectInspector.
type MockProjectInspector struct {
	Project    *domain.Project
	InspectErr error
	Dirs       []string
}

// Ensure MockProjectInspector implements domain.ProjectInspector interface.
var _ domain.ProjectInspector = (*MockProjectInspector)(nil)

// Inspect returns the configured project with Dir set to dir.
func (m *MockProjectInspector) Inspect(dir string) (*domain.Project, error) {
	m.Dirs = append(m.Dirs, dir)
	if m.InspectErr != nil {
		return nil, m.InspectErr
	}
	if m.Project == nil {
		return &domain.Project{
			Dir:            dir,
			PackageManager: domain.DefaultPackageManager,
			DetectedFrom:   "default",
		}, nil
	}
	p := *m.Project
	p.Dir = dir
	return &p, nil
}

// MockRepoInspector is a test double for domain.RepoInspector.
type MockRepoInspector struct {
	Info *domain.RepoInfo
	Err  error
}

// Ensure MockRepoInspector implements domain.RepoInspector interface.
var _ domain.RepoInspector = (*MockRepoInspector)(nil)

// Describe returns the configured info or error.
func (m *MockRepoInspector) Describe(_ string) (*domain.RepoInfo, error) {
	return m.Info, m.Err
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config      *domain.Config
	LoadErr     error
	LastOptions domain.LoadConfigOptions
	Calls       int
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	return m.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadWithOptions records the options and returns the configured config.
func (m *MockConfigLoader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	m.LastOptions = opts
	m.Calls++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitLocalErr     error
	InitGlobalErr    error
	LocalInfo        domain.ConfigInfo
	GlobalInfo       domain.ConfigInfo
	InitLocalCalled  bool
	InitGlobalCalled bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		LocalInfo: domain.ConfigInfo{
			Path:   "/work/.start-frontend.toml",
			Exists: false,
		},
		GlobalInfo: domain.ConfigInfo{
			Path:   "/home/test/.config/start-frontend/config.toml",
			Exists: false,
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GlobalConfigInfo returns the configured global info.
func (m *MockConfigManager) GlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalInfo
}

// LocalConfigInfo returns the configured local info.
func (m *MockConfigManager) LocalConfigInfo() domain.ConfigInfo {
	return m.LocalInfo
}

// InitGlobalConfig records the call and returns the configured error.
func (m *MockConfigManager) InitGlobalConfig() error {
	m.InitGlobalCalled = true
	return m.InitGlobalErr
}

// InitLocalConfig records the call and returns the configured error.
func (m *MockConfigManager) InitLocalConfig() error {
	m.InitLocalCalled = true
	return m.InitLocalErr
}

// LogEntry is a single entry captured by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger captures log entries in memory.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) add(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.add("debug", category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.add("info", category, msg) }

// Warn records a warn entry.
func (m *MockLogger) Warn(category, msg string) { m.add("warn", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.add("error", category, msg) }

// HasEntry reports whether an entry at level contains substr.
func (m *MockLogger) HasEntry(level, substr string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Entries {
		if e.Level == level && strings.Contains(e.Msg, substr) {
			return true
		}
	}
	return false
}
