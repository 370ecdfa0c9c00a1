// Package app provides the dependency injection container for the application.
package app

import (
	"sync"

	"github.com/fitcoach/start-frontend/internal/domain"
	"github.com/fitcoach/start-frontend/internal/infra/config"
	"github.com/fitcoach/start-frontend/internal/infra/executor"
	"github.com/fitcoach/start-frontend/internal/infra/gitinfo"
	"github.com/fitcoach/start-frontend/internal/infra/logging"
	"github.com/fitcoach/start-frontend/internal/infra/project"
	"github.com/fitcoach/start-frontend/internal/infra/workdir"
	"github.com/fitcoach/start-frontend/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	Cwd          string // Directory the launcher was invoked from
	GlobalAppDir string // Global config directory (empty if no home directory)
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	WorkDir       domain.WorkDir
	Executor      domain.CommandExecutor
	Projects      domain.ProjectInspector
	Repos         domain.RepoInspector
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Configuration
	Config Config

	appConfig     *domain.Config
	appConfigErr  error
	appConfigOnce sync.Once
}

// New creates a new Container rooted at the given directory.
// The local config file is looked up in dir.
func New(dir string) *Container {
	cfg := Config{
		Cwd:          dir,
		GlobalAppDir: config.DefaultGlobalAppDir(),
	}

	configLoader := config.NewLoaderWithGlobalDir(cfg.Cwd, cfg.GlobalAppDir)
	configManager := config.NewManagerWithGlobalDir(cfg.Cwd, cfg.GlobalAppDir)

	c := &Container{
		WorkDir:       workdir.New(),
		Executor:      executor.NewClient(),
		Projects:      project.NewInspector(),
		Repos:         gitinfo.NewClient(),
		ConfigLoader:  configLoader,
		ConfigManager: configManager,
		Config:        cfg,
	}

	// Broken config files are reported by the commands; the logger falls back to defaults.
	level := domain.DefaultLogLevel
	if appConfig, err := c.LoadConfig(); err == nil && appConfig.Log.Level != "" {
		level = appConfig.Log.Level
	}
	c.Logger = logging.New(cfg.GlobalAppDir, logging.ParseLevel(level))

	return c
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	cfg Config,
	workDir domain.WorkDir,
	exec domain.CommandExecutor,
	projects domain.ProjectInspector,
	repos domain.RepoInspector,
	loader domain.ConfigLoader,
	manager domain.ConfigManager,
	logger domain.Logger,
) *Container {
	return &Container{
		WorkDir:       workDir,
		Executor:      exec,
		Projects:      projects,
		Repos:         repos,
		ConfigLoader:  loader,
		ConfigManager: manager,
		Logger:        logger,
		Config:        cfg,
	}
}

// LoadConfig returns the merged configuration.
// The files are read on the first call only; later calls share the result.
func (c *Container) LoadConfig() (*domain.Config, error) {
	c.appConfigOnce.Do(func() {
		c.appConfig, c.appConfigErr = c.ConfigLoader.Load()
	})
	return c.appConfig, c.appConfigErr
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if closer, ok := c.Logger.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// UseCase factory methods

// StartFrontendUseCase returns a new StartFrontend use case.
func (c *Container) StartFrontendUseCase() *usecase.StartFrontend {
	return usecase.NewStartFrontend(c.WorkDir, c.Executor, c.Projects, c.Repos, c.Logger)
}

// ShowInfoUseCase returns a new ShowInfo use case.
func (c *Container) ShowInfoUseCase() *usecase.ShowInfo {
	return usecase.NewShowInfo(c.WorkDir, c.Executor, c.Projects, c.Repos)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}
