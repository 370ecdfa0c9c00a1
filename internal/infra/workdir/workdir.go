// Package workdir changes and reports the working directory of the current process.
package workdir

import (
	"fmt"
	"os"

	"github.com/fitcoach/start-frontend/internal/domain"
)

// Process implements domain.WorkDir for the running process.
type Process struct{}

// New creates a new Process.
func New() *Process {
	return &Process{}
}

// Ensure Process implements domain.WorkDir interface.
var _ domain.WorkDir = (*Process)(nil)

// Chdir changes the working directory of the whole process.
func (p *Process) Chdir(dir string) error {
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("change directory: %w", err)
	}
	return nil
}

// IsDir reports whether dir exists and is a directory.
func (p *Process) IsDir(dir string) bool {
	st, err := os.Stat(dir)
	return err == nil && st.IsDir()
}

// Getwd returns the working directory of the process.
func (p *Process) Getwd() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get current directory: %w", err)
	}
	return wd, nil
}
