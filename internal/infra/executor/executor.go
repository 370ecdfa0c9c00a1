// Package executor provides command execution functionality.
package executor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/fitcoach/start-frontend/internal/domain"
)

// DefaultWaitDelay is how long a cancelled child gets to exit after the interrupt.
const DefaultWaitDelay = 10 * time.Second

// Client implements domain.CommandExecutor interface.
type Client struct {
	waitDelay time.Duration
}

// NewClient creates a new command executor client.
func NewClient() *Client {
	return &Client{waitDelay: DefaultWaitDelay}
}

// NewClientWithWaitDelay creates a client with a custom grace period after cancellation.
func NewClientWithWaitDelay(d time.Duration) *Client {
	return &Client{waitDelay: d}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// Execute runs the command and returns its combined output.
func (c *Client) Execute(ctx context.Context, cmd *domain.ExecCommand) ([]byte, error) {
	execCmd, err := c.build(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return execCmd.CombinedOutput()
}

// Run starts the command with the given stdio and waits for it to exit.
// Start failures are returned as is; unsuccessful exits as *domain.ExitError.
func (c *Client) Run(ctx context.Context, cmd *domain.ExecCommand, stdio domain.Stdio) error {
	execCmd, err := c.build(ctx, cmd)
	if err != nil {
		return err
	}
	execCmd.Stdin = stdio.In
	execCmd.Stdout = stdio.Out
	execCmd.Stderr = stdio.Err

	if err := execCmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", cmd.Program, err)
	}

	if err := execCmd.Wait(); err != nil {
		code := 1
		if execCmd.ProcessState != nil && execCmd.ProcessState.ExitCode() > 0 {
			code = execCmd.ProcessState.ExitCode()
		}
		return &domain.ExitError{Err: err, Code: code}
	}
	return nil
}

func (c *Client) build(ctx context.Context, cmd *domain.ExecCommand) (*exec.Cmd, error) {
	if cmd == nil || cmd.Program == "" {
		return nil, domain.ErrEmptyCommand
	}

	// #nosec G204 - cmd.Program and cmd.Args come from configuration owned by the user
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	if len(cmd.Env) > 0 {
		execCmd.Env = append(os.Environ(), cmd.Env...)
	}
	execCmd.Cancel = func() error {
		return interrupt(execCmd.Process)
	}
	execCmd.WaitDelay = c.waitDelay
	return execCmd, nil
}

// interrupt asks the process to stop. Windows has no interrupt signal for child processes.
func interrupt(p *os.Process) error {
	if runtime.GOOS == "windows" {
		return p.Kill()
	}
	err := p.Signal(os.Interrupt)
	if errors.Is(err, os.ErrProcessDone) {
		return nil
	}
	return err
}
