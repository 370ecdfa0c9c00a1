package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/fitcoach/start-frontend/internal/domain"
	"github.com/fitcoach/start-frontend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type infoFixture struct {
	workDir  *testutil.MockWorkDir
	executor *testutil.MockCommandExecutor
	projects *testutil.MockProjectInspector
	repos    *testutil.MockRepoInspector
	uc       *ShowInfo
}

func newInfoFixture() *infoFixture {
	f := &infoFixture{
		workDir:  testutil.NewMockWorkDir("/home/dev"),
		executor: testutil.NewMockCommandExecutor(),
		projects: &testutil.MockProjectInspector{},
		repos:    &testutil.MockRepoInspector{},
	}
	f.uc = NewShowInfo(f.workDir, f.executor, f.projects, f.repos)
	return f
}

func newShowInfo() (*ShowInfo, *testutil.MockCommandExecutor, *testutil.MockProjectInspector, *testutil.MockRepoInspector) {
	f := newInfoFixture()
	return f.uc, f.executor, f.projects, f.repos
}

func TestShowInfo_Execute(t *testing.T) {
	uc, executor, projects, repos := newShowInfo()
	dir := t.TempDir()
	projects.Project = &domain.Project{
		HasPackageJSON: true,
		Name:           "fitness-coach-fe",
		Scripts:        map[string]string{"dev": "next dev"},
		PackageManager: domain.PackageManagerPNPM,
		DetectedFrom:   "pnpm-lock.yaml",
	}
	repos.Info = &domain.RepoInfo{Root: dir, Branch: "main", Head: "abc1234"}
	executor.Outputs["pnpm --version"] = "9.1.0\n"

	out, err := uc.Execute(context.Background(), ShowInfoInput{Frontend: frontendAt(dir)})

	require.NoError(t, err)
	assert.Equal(t, dir, out.Dir)
	assert.True(t, out.Exists)
	assert.True(t, out.HasScript)
	assert.Equal(t, "pnpm", out.PackageManager)
	assert.Equal(t, "pnpm-lock.yaml", out.DetectedFrom)
	assert.Equal(t, "9.1.0", out.Version)
	assert.Equal(t, "pnpm run dev", out.Command)
	assert.Equal(t, "main", out.Repo.Branch)
	assert.Equal(t, "fitness-coach-fe", out.Project.Name)
	require.Len(t, executor.ExecuteCmds, 1)
	assert.Equal(t, dir, executor.ExecuteCmds[0].Dir)
}

func TestShowInfo_Execute_MissingDirectory(t *testing.T) {
	f := newInfoFixture()
	dir := filepath.Join(t.TempDir(), "missing-dir")
	f.workDir.Missing[dir] = true

	out, err := f.uc.Execute(context.Background(), ShowInfoInput{Frontend: frontendAt(dir)})

	require.NoError(t, err)
	assert.False(t, out.Exists)
	assert.Empty(t, out.Command)
	assert.Empty(t, f.projects.Dirs, "missing dir must not be inspected")
	assert.Empty(t, f.executor.ExecuteCmds)
}

func TestShowInfo_Execute_RelativeDirectory(t *testing.T) {
	f := newInfoFixture()

	out, err := f.uc.Execute(context.Background(), ShowInfoInput{Frontend: frontendAt("../web")})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/dev", "../web"), out.Dir)
	assert.Equal(t, []string{out.Dir}, f.projects.Dirs)
	assert.Empty(t, f.workDir.ChdirArgs, "info never changes directory")
}

func TestShowInfo_Execute_GetwdError(t *testing.T) {
	f := newInfoFixture()
	f.workDir.GetwdErr = errors.New("get current directory: permission denied")

	_, err := f.uc.Execute(context.Background(), ShowInfoInput{Frontend: frontendAt("web")})

	assert.ErrorContains(t, err, "permission denied")
}

func TestShowInfo_Execute_PackageManagerNotFound(t *testing.T) {
	uc, _, _, _ := newShowInfo()

	out, err := uc.Execute(context.Background(), ShowInfoInput{Frontend: frontendAt(t.TempDir())})

	require.NoError(t, err)
	assert.Equal(t, VersionNotFound, out.Version)
	assert.False(t, out.HasScript)
}

func TestShowInfo_Execute_ConfiguredPackageManager(t *testing.T) {
	uc, executor, _, _ := newShowInfo()
	executor.Outputs["yarn --version"] = "1.22.22"
	fc := frontendAt(t.TempDir())
	fc.PackageManager = "yarn"

	out, err := uc.Execute(context.Background(), ShowInfoInput{Frontend: fc})

	require.NoError(t, err)
	assert.Equal(t, "yarn", out.PackageManager)
	assert.Equal(t, "config", out.DetectedFrom)
	assert.Equal(t, "1.22.22", out.Version)
}

func TestShowInfo_Execute_Errors(t *testing.T) {
	t.Run("unknown package manager", func(t *testing.T) {
		uc, _, _, _ := newShowInfo()
		fc := frontendAt(t.TempDir())
		fc.PackageManager = "deno"

		_, err := uc.Execute(context.Background(), ShowInfoInput{Frontend: fc})
		assert.ErrorIs(t, err, domain.ErrUnknownPackageManager)
	})

	t.Run("inspect error", func(t *testing.T) {
		uc, _, projects, _ := newShowInfo()
		projects.InspectErr = errors.New("parse package.json")

		_, err := uc.Execute(context.Background(), ShowInfoInput{Frontend: frontendAt(t.TempDir())})
		assert.Error(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		uc, _, _, repos := newShowInfo()
		repos.Err = assert.AnError

		_, err := uc.Execute(context.Background(), ShowInfoInput{Frontend: frontendAt(t.TempDir())})
		assert.ErrorIs(t, err, assert.AnError)
	})
}
