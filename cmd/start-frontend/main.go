// Package main is the entry point for the start-frontend CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fitcoach/start-frontend/internal/app"
	"github.com/fitcoach/start-frontend/internal/cli"
	"github.com/fitcoach/start-frontend/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cwd, err := os.Getwd()
	if err != nil {
		return cli.HandleError(stderr, domain.NewLaunchError(fmt.Errorf("get current directory: %w", err)))
	}

	// Create dependency injection container
	container := app.New(cwd)
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return cli.HandleError(stderr, rootCmd.ExecuteContext(ctx))
}
