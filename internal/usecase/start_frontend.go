package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitcoach/start-frontend/internal/domain"
)

// StatusPrefix starts the line reporting where the dev server runs.
const StatusPrefix = "Starting frontend from: "

// Log categories.
const (
	logCategoryLaunch = "launch"
	logCategoryRepo   = "repo"
)

// StartFrontendInput contains the parameters for launching the dev server.
// Fields are ordered to minimize memory padding.
type StartFrontendInput struct {
	Stdio    domain.Stdio          // Streams inherited by the dev server; status goes to Stdio.Out
	Frontend domain.FrontendConfig // Effective target dir, script, package manager, args, env
}

// StartFrontendOutput contains the result of a launch.
type StartFrontendOutput struct {
	WorkDir  string // Working directory after the change
	Command  string // Command line that was spawned
	ExitCode int    // Exit status of the dev server
}

// StartFrontend is the use case for launching the frontend dev server.
type StartFrontend struct {
	workDir  domain.WorkDir
	executor domain.CommandExecutor
	projects domain.ProjectInspector
	repos    domain.RepoInspector
	logger   domain.Logger
}

// NewStartFrontend creates a new StartFrontend use case.
func NewStartFrontend(
	workDir domain.WorkDir,
	executor domain.CommandExecutor,
	projects domain.ProjectInspector,
	repos domain.RepoInspector,
	logger domain.Logger,
) *StartFrontend {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &StartFrontend{
		workDir:  workDir,
		executor: executor,
		projects: projects,
		repos:    repos,
		logger:   logger,
	}
}

// Execute changes into the target directory, reports it, and runs the dev server until it exits.
// Failures to change directory or to spawn the server are returned as *domain.LaunchError.
// An unsuccessful exit of the server is reported in the output, not as an error.
func (uc *StartFrontend) Execute(ctx context.Context, in StartFrontendInput) (*StartFrontendOutput, error) {
	fc := in.Frontend
	uc.logger.Info(logCategoryLaunch, fmt.Sprintf("target: %s", fc.Dir))

	if err := uc.workDir.Chdir(fc.Dir); err != nil {
		uc.logger.Error(logCategoryLaunch, err.Error())
		return nil, domain.NewLaunchError(err)
	}
	cwd, err := uc.workDir.Getwd()
	if err != nil {
		uc.logger.Error(logCategoryLaunch, err.Error())
		return nil, domain.NewLaunchError(err)
	}

	if in.Stdio.Out != nil {
		_, _ = fmt.Fprintf(in.Stdio.Out, "%s%s\n", StatusPrefix, cwd)
	}

	pm, err := uc.resolvePackageManager(cwd, fc)
	if err != nil {
		uc.logger.Error(logCategoryLaunch, err.Error())
		return nil, domain.NewLaunchError(err)
	}
	uc.logRepo(cwd)

	cmd := domain.DevCommand(pm, cwd, fc)
	out := &StartFrontendOutput{
		WorkDir: cwd,
		Command: cmd.String(),
	}
	uc.logger.Info(logCategoryLaunch, fmt.Sprintf("spawn: %s (dir %s)", out.Command, cwd))

	if err := uc.executor.Run(ctx, cmd, in.Stdio); err != nil {
		var exitErr *domain.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.Code
			uc.logger.Info(logCategoryLaunch, fmt.Sprintf("dev server exited with status %d", exitErr.Code))
			return out, nil
		}
		uc.logger.Error(logCategoryLaunch, err.Error())
		return nil, domain.NewLaunchError(err)
	}

	uc.logger.Info(logCategoryLaunch, "dev server exited")
	return out, nil
}

// resolvePackageManager honors an explicit setting, else the project's detected manager.
// Project problems are logged, not fatal: the package manager reports them itself.
func (uc *StartFrontend) resolvePackageManager(dir string, fc domain.FrontendConfig) (domain.PackageManager, error) {
	project, err := uc.projects.Inspect(dir)
	if err != nil {
		uc.logger.Warn(logCategoryLaunch, fmt.Sprintf("inspect project: %v", err))
	}
	switch {
	case project == nil:
	case !project.HasPackageJSON:
		uc.logger.Warn(logCategoryLaunch, fmt.Sprintf("no package.json in %s", dir))
	case !project.HasScript(fc.Script):
		uc.logger.Warn(logCategoryLaunch, fmt.Sprintf("package.json has no %q script", fc.Script))
	}

	if fc.PackageManager != "" {
		return domain.ParsePackageManager(fc.PackageManager)
	}
	if project != nil && project.PackageManager != "" {
		uc.logger.Debug(logCategoryLaunch, fmt.Sprintf("package manager %s (from %s)", project.PackageManager, project.DetectedFrom))
		return project.PackageManager, nil
	}
	return domain.DefaultPackageManager, nil
}

func (uc *StartFrontend) logRepo(dir string) {
	if uc.repos == nil {
		return
	}
	info, err := uc.repos.Describe(dir)
	if err != nil {
		uc.logger.Debug(logCategoryRepo, err.Error())
		return
	}
	if info == nil {
		return
	}
	uc.logger.Debug(logCategoryRepo, fmt.Sprintf("branch %q at %s", info.Branch, info.Head))
}
