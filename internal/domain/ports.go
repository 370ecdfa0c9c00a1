package domain

import (
	"context"
	"fmt"
	"io"
)

// CommandExecutor runs external commands.
type CommandExecutor interface {
	// Execute runs the command and returns its combined output.
	Execute(ctx context.Context, cmd *ExecCommand) ([]byte, error)

	// Run runs the command with the given stdio and blocks until it exits.
	// A non-nil *ExitError means the process started and exited unsuccessfully.
	Run(ctx context.Context, cmd *ExecCommand, stdio Stdio) error
}

// Stdio holds the streams attached to a child process.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// ExitError reports a child that started but did not exit cleanly.
type ExitError struct {
	Err  error
	Code int
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WorkDir controls the working directory of the current process.
type WorkDir interface {
	// Chdir changes the process working directory.
	Chdir(dir string) error

	// Getwd returns the process working directory.
	Getwd() (string, error)

	// IsDir reports whether dir exists and is a directory.
	IsDir(dir string) bool
}

// ProjectInspector reads frontend project metadata.
type ProjectInspector interface {
	// Inspect reads package.json and lockfiles in dir.
	// A missing package.json is not an error.
	Inspect(dir string) (*Project, error)
}

// RepoInspector describes the git repository containing a directory.
type RepoInspector interface {
	// Describe returns nil without error when dir is not inside a repository.
	Describe(dir string) (*RepoInfo, error)
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults + global + local).
	Load() (*Config, error)

	// LoadWithOptions returns the merged configuration with sources excluded.
	LoadWithOptions(opts LoadConfigOptions) (*Config, error)
}

// LoadConfigOptions selects which config sources to skip.
type LoadConfigOptions struct {
	IgnoreGlobal bool
	IgnoreLocal  bool
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GlobalConfigInfo returns information about the global config file.
	GlobalConfigInfo() ConfigInfo

	// LocalConfigInfo returns information about the local config file.
	LocalConfigInfo() ConfigInfo

	// InitGlobalConfig creates the global config file from the template.
	InitGlobalConfig() error

	// InitLocalConfig creates the local config file from the template.
	InitLocalConfig() error
}

// ConfigInfo describes a config file.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Logger writes launcher events.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards all log entries.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}
