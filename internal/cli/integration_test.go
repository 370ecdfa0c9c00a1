package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/fitcoach/start-frontend/internal/app"
	"github.com/fitcoach/start-frontend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNPM puts an npm executable on PATH that records its arguments and working
// directory in the file named by $FAKE_NPM_LOG, then exits with $FAKE_NPM_EXIT.
func fakeNPM(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	bin := t.TempDir()
	script := `#!/bin/sh
if [ -n "$FAKE_NPM_LOG" ]; then
  echo "args=$*" >> "$FAKE_NPM_LOG"
  echo "pwd=$(pwd -P)" >> "$FAKE_NPM_LOG"
  echo "port=$PORT" >> "$FAKE_NPM_LOG"
fi
exit "${FAKE_NPM_EXIT:-0}"
`
	require.NoError(t, os.WriteFile(filepath.Join(bin, "npm"), []byte(script), 0o755))
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	logPath := filepath.Join(t.TempDir(), "npm.log")
	t.Setenv("FAKE_NPM_LOG", logPath)
	t.Setenv("FAKE_NPM_EXIT", "0")
	return logPath
}

// frontendProject creates a project with a no-op dev script.
func frontendProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	pkg := `{"name":"fitness-coach-fe","scripts":{"dev":"true"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(pkg), 0o644))
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	return resolved
}

// launch runs the root command in-process with real infrastructure.
func launch(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cwd := t.TempDir()
	chdir(t, cwd)

	c := app.New(cwd)
	t.Cleanup(func() { _ = c.Close() })

	root := NewRootCommand(c, "test-version")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	code = HandleError(&errOut, root.Execute())
	return out.String(), errOut.String(), code
}

func TestIntegration_LaunchSucceeds(t *testing.T) {
	logPath := fakeNPM(t)
	project := frontendProject(t)

	stdout, stderr, code := launch(t, "--dir", project)

	assert.Equal(t, 0, code)
	assert.Equal(t, "Starting frontend from: "+project+"\n", stdout)
	assert.Empty(t, stderr)

	log, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(log), "args=run dev\n")
	assert.Contains(t, string(log), "pwd="+project+"\n")
}

func TestIntegration_ChangesProcessDirectory(t *testing.T) {
	fakeNPM(t)
	project := frontendProject(t)

	_, _, code := launch(t, "--dir", project)
	require.Equal(t, 0, code)

	wd, err := os.Getwd()
	require.NoError(t, err)
	resolved, err := filepath.EvalSymlinks(wd)
	require.NoError(t, err)
	assert.Equal(t, project, resolved)
}

func TestIntegration_SequentialRunsMatch(t *testing.T) {
	fakeNPM(t)
	project := frontendProject(t)

	first, _, _ := launch(t, "--dir", project)
	second, _, _ := launch(t, "--dir", project)

	assert.Equal(t, first, second)
}

func TestIntegration_MissingDirectory(t *testing.T) {
	logPath := fakeNPM(t)
	missing := filepath.Join(t.TempDir(), "missing-dir")

	stdout, stderr, code := launch(t, "--dir", missing)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	lines := strings.Split(strings.TrimRight(stderr, "\n"), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "Error starting frontend: "))
	assert.NoFileExists(t, logPath, "no child may be spawned")
}

func TestIntegration_CommandNotFound(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	t.Setenv("PATH", t.TempDir())
	project := frontendProject(t)

	stdout, stderr, code := launch(t, "--dir", project)

	assert.Equal(t, 1, code)
	assert.Equal(t, "Starting frontend from: "+project+"\n", stdout)
	assert.True(t, strings.HasPrefix(stderr, "Error starting frontend: "), stderr)
	assert.Contains(t, stderr, "npm")
}

func TestIntegration_DevServerExitCode(t *testing.T) {
	fakeNPM(t)
	t.Setenv("FAKE_NPM_EXIT", "3")
	project := frontendProject(t)

	stdout, stderr, code := launch(t, "--dir", project)

	assert.Equal(t, 3, code)
	assert.Contains(t, stdout, "Starting frontend from: ")
	assert.Empty(t, stderr)
}

func TestIntegration_LocalConfig(t *testing.T) {
	logPath := fakeNPM(t)
	project := frontendProject(t)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cwd := t.TempDir()
	chdir(t, cwd)
	cfg := "[frontend]\ndir = \"" + filepath.ToSlash(project) + "\"\nargs = [\"--port\", \"3001\"]\n\n[frontend.env]\nPORT = \"3001\"\n"
	require.NoError(t, os.WriteFile(domain.LocalConfigPath(cwd), []byte(cfg), 0o600))

	c := app.New(cwd)
	t.Cleanup(func() { _ = c.Close() })
	root := NewRootCommand(c, "test-version")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(nil)

	require.NoError(t, root.Execute())
	assert.Equal(t, "Starting frontend from: "+project+"\n", out.String())

	log, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(log), "args=run dev -- --port 3001\n")
	assert.Contains(t, string(log), "port=3001\n")
}

func TestIntegration_WritesLogFile(t *testing.T) {
	fakeNPM(t)
	project := frontendProject(t)
	configHome := t.TempDir()

	t.Setenv("XDG_CONFIG_HOME", configHome)
	cwd := t.TempDir()
	chdir(t, cwd)
	c := app.New(cwd)
	root := NewRootCommand(c, "test-version")
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--dir", project})
	require.NoError(t, root.Execute())
	require.NoError(t, c.Close())

	content, err := os.ReadFile(domain.LogPath(domain.GlobalAppDir(configHome)))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO] [launch] spawn: npm run dev")
}
