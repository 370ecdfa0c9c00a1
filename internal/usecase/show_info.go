package usecase

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/fitcoach/start-frontend/internal/domain"
)

// VersionNotFound is reported when the package manager cannot be run.
const VersionNotFound = "not found"

// ShowInfoInput contains the input for the ShowInfo use case.
type ShowInfoInput struct {
	Frontend domain.FrontendConfig
}

// ShowInfoOutput describes what a launch would do.
// Fields are ordered to minimize memory padding.
type ShowInfoOutput struct {
	Project        *domain.Project  `yaml:"-"`
	Repo           *domain.RepoInfo `yaml:"-"`
	Dir            string           `yaml:"dir"`
	Command        string           `yaml:"command"`
	PackageManager string           `yaml:"package_manager"`
	DetectedFrom   string           `yaml:"detected_from"`
	Version        string           `yaml:"package_manager_version"`
	Script         string           `yaml:"script"`
	Exists         bool             `yaml:"exists"`
	HasScript      bool             `yaml:"has_script"`
}

// ShowInfo inspects the target project without launching anything.
type ShowInfo struct {
	workDir  domain.WorkDir
	executor domain.CommandExecutor
	projects domain.ProjectInspector
	repos    domain.RepoInspector
}

// NewShowInfo creates a new ShowInfo use case.
func NewShowInfo(
	workDir domain.WorkDir,
	executor domain.CommandExecutor,
	projects domain.ProjectInspector,
	repos domain.RepoInspector,
) *ShowInfo {
	return &ShowInfo{
		workDir:  workDir,
		executor: executor,
		projects: projects,
		repos:    repos,
	}
}

// Execute collects project, repository and package manager details for the target.
// It never changes the working directory.
func (uc *ShowInfo) Execute(ctx context.Context, in ShowInfoInput) (*ShowInfoOutput, error) {
	fc := in.Frontend
	dir := filepath.Clean(fc.Dir)
	if !filepath.IsAbs(dir) {
		cwd, err := uc.workDir.Getwd()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(cwd, dir)
	}

	out := &ShowInfoOutput{
		Dir:    dir,
		Script: fc.Script,
		Exists: uc.workDir.IsDir(dir),
	}
	if !out.Exists {
		return out, nil
	}

	project, err := uc.projects.Inspect(dir)
	if err != nil {
		return nil, err
	}
	out.Project = project
	out.HasScript = project.HasScript(fc.Script)

	pm := project.PackageManager
	out.DetectedFrom = project.DetectedFrom
	if fc.PackageManager != "" {
		pm, err = domain.ParsePackageManager(fc.PackageManager)
		if err != nil {
			return nil, err
		}
		out.DetectedFrom = "config"
	}
	out.PackageManager = string(pm)
	out.Command = domain.DevCommand(pm, dir, fc).String()
	out.Version = uc.packageManagerVersion(ctx, pm, dir)

	if uc.repos != nil {
		repo, err := uc.repos.Describe(dir)
		if err != nil {
			return nil, err
		}
		out.Repo = repo
	}

	return out, nil
}

func (uc *ShowInfo) packageManagerVersion(ctx context.Context, pm domain.PackageManager, dir string) string {
	output, err := uc.executor.Execute(ctx, domain.NewCommand(pm.Executable(), []string{"--version"}, dir))
	if err != nil {
		return VersionNotFound
	}
	return strings.TrimSpace(string(output))
}
