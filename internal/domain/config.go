package domain

import (
	"bytes"
	_ "embed"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string       `toml:"-"`
	Frontend FrontendConfig `toml:"frontend"`
	Log      LogConfig      `toml:"log"`
	Launcher LauncherConfig `toml:"launcher"`
}

// FrontendConfig holds the project and dev server settings from [frontend] section.
type FrontendConfig struct {
	Env            map[string]string `toml:"env,omitempty"`             // Extra environment for the dev server
	Dir            string            `toml:"dir,omitempty"`             // Project root
	Script         string            `toml:"script,omitempty"`          // package.json script to run
	PackageManager string            `toml:"package_manager,omitempty"` // npm, yarn, pnpm, bun; empty = detect
	Args           []string          `toml:"args,omitempty"`            // Extra arguments for the script
}

// LauncherConfig holds launcher behavior from [launcher] section.
type LauncherConfig struct {
	// ExitZeroOnError keeps the exit status at 0 when the launch fails.
	ExitZeroOnError bool `toml:"exit_zero_on_error,omitempty"`
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
}

// Default configuration values.
const (
	DefaultTargetDir = "C:/university/fitness-coach-fe"
	DefaultScript    = "dev"
	DefaultLogLevel  = "info"
)

// Directory and file names for start-frontend.
const (
	AppDirName      = "start-frontend"       // Directory name under the user config home
	ConfigFileName  = "config.toml"          // Global config file name
	LocalConfigName = ".start-frontend.toml" // Config file name in the invoking directory
	LogFileName     = "start-frontend.log"   // Log file name under <app dir>/logs
	LogsDirName     = "logs"                 // Log directory name under the app dir
)

// GlobalAppDir returns the global application directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalAppDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path for an application directory.
func GlobalConfigPath(appDir string) string {
	return filepath.Join(appDir, ConfigFileName)
}

// LocalConfigPath returns the local config path in dir.
func LocalConfigPath(dir string) string {
	return filepath.Join(dir, LocalConfigName)
}

// LogPath returns the log file path for an application directory.
func LogPath(appDir string) string {
	return filepath.Join(appDir, LogsDirName, LogFileName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Frontend: FrontendConfig{
			Dir:    DefaultTargetDir,
			Script: DefaultScript,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Merge returns a new Config where non-empty values of override replace those of c.
// Env maps are merged key by key; Args replaces as a whole.
func (c *Config) Merge(override *Config) *Config {
	res := &Config{
		Frontend: c.Frontend,
		Log:      c.Log,
		Launcher: c.Launcher,
		Warnings: append(append([]string{}, c.Warnings...), override.Warnings...),
	}
	if len(c.Frontend.Env) > 0 || len(override.Frontend.Env) > 0 {
		res.Frontend.Env = make(map[string]string, len(c.Frontend.Env)+len(override.Frontend.Env))
		for k, v := range c.Frontend.Env {
			res.Frontend.Env[k] = v
		}
		for k, v := range override.Frontend.Env {
			res.Frontend.Env[k] = v
		}
	}
	if len(c.Frontend.Args) > 0 {
		res.Frontend.Args = append([]string{}, c.Frontend.Args...)
	}

	o := override
	if o.Frontend.Dir != "" {
		res.Frontend.Dir = o.Frontend.Dir
	}
	if o.Frontend.Script != "" {
		res.Frontend.Script = o.Frontend.Script
	}
	if o.Frontend.PackageManager != "" {
		res.Frontend.PackageManager = o.Frontend.PackageManager
	}
	if len(o.Frontend.Args) > 0 {
		res.Frontend.Args = append([]string{}, o.Frontend.Args...)
	}
	if o.Log.Level != "" {
		res.Log.Level = o.Log.Level
	}
	if o.Launcher.ExitZeroOnError {
		res.Launcher.ExitZeroOnError = true
	}
	return res
}

// RenderConfigTemplate renders the commented config file written by "config init".
func RenderConfigTemplate() string {
	tmpl := template.Must(template.New("config").Parse(configTemplateContent))
	var buf bytes.Buffer
	data := struct {
		Dir      string
		Script   string
		LogLevel string
	}{
		Dir:      DefaultTargetDir,
		Script:   DefaultScript,
		LogLevel: DefaultLogLevel,
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		// The template is embedded and static.
		panic(err)
	}
	return buf.String()
}
