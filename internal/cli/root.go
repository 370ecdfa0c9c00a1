// Package cli provides the command-line interface for start-frontend.
package cli

import (
	"fmt"

	"github.com/fitcoach/start-frontend/internal/app"
	"github.com/fitcoach/start-frontend/internal/domain"
	"github.com/fitcoach/start-frontend/internal/usecase"
	"github.com/spf13/cobra"
)

// frontendFlags holds command-line overrides for the [frontend] section.
type frontendFlags struct {
	dir            string
	script         string
	packageManager string
}

// apply returns fc with the flags that were set on cmd replacing config values.
func (f *frontendFlags) apply(cmd *cobra.Command, fc domain.FrontendConfig) domain.FrontendConfig {
	flags := cmd.Flags()
	if flags.Changed("dir") {
		fc.Dir = f.dir
	}
	if flags.Changed("script") {
		fc.Script = f.script
	}
	if flags.Changed("package-manager") {
		fc.PackageManager = f.packageManager
	}
	return fc
}

// NewRootCommand creates the root command for start-frontend.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var ff frontendFlags

	root := &cobra.Command{
		Use:   "start-frontend [flags] [-- script args...]",
		Short: "Start the frontend dev server",
		Long: `start-frontend changes into the frontend project directory, reports it,
and runs the project's dev script until the dev server exits.

The project directory, script and package manager come from the config files
(see "start-frontend config show") and can be overridden with flags.
Arguments after "--" are passed to the script.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		Args:          scriptArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}
			// Template output must work even with broken config files.
			if cmd.Name() == "template" {
				return nil
			}

			cfg, err := c.LoadConfig()
			if err != nil {
				// Reported by the command itself
				return nil
			}

			st := newStyles(cmd.ErrOrStderr())
			for _, w := range cfg.Warnings {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), st.Warning.Render("Warning: "+w))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.LoadConfig()
			if err != nil {
				return launchFailure(cfg, domain.NewLaunchError(fmt.Errorf("load config: %w", err)))
			}

			fc := ff.apply(cmd, cfg.Frontend)
			if len(args) > 0 {
				fc.Args = args
			}

			uc := c.StartFrontendUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.StartFrontendInput{
				Frontend: fc,
				Stdio: domain.Stdio{
					In:  cmd.InOrStdin(),
					Out: cmd.OutOrStdout(),
					Err: cmd.ErrOrStderr(),
				},
			})
			if err != nil {
				return launchFailure(cfg, err)
			}
			if out.ExitCode != 0 && !cfg.Launcher.ExitZeroOnError {
				return &ExitError{Code: out.ExitCode}
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&ff.dir, "dir", "d", "", "Frontend project directory")
	root.PersistentFlags().StringVarP(&ff.script, "script", "s", "", "package.json script to run")
	root.PersistentFlags().StringVarP(&ff.packageManager, "package-manager", "p", "", "Package manager (npm, yarn, pnpm, bun)")

	root.AddCommand(
		newInfoCommand(c, &ff),
		newConfigCommand(c),
	)

	return root
}

// scriptArgs accepts positional arguments only after "--".
// Anything before it is a mistyped subcommand, not a script argument.
func scriptArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || cmd.ArgsLenAtDash() == 0 {
		return nil
	}
	return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
}

// launchFailure wraps a launch error with the configured exit status.
func launchFailure(cfg *domain.Config, err error) error {
	code := 1
	if cfg != nil && cfg.Launcher.ExitZeroOnError {
		code = 0
	}
	return &ExitError{Err: err, Code: code}
}
