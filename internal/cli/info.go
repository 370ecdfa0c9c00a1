package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fitcoach/start-frontend/internal/app"
	"github.com/fitcoach/start-frontend/internal/domain"
	"github.com/fitcoach/start-frontend/internal/usecase"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats for the info command.
const (
	outputText = "text"
	outputYAML = "yaml"
)

// infoDocument is the YAML form of the info command output.
type infoDocument struct {
	usecase.ShowInfoOutput `yaml:",inline"`

	Repository *repoDocument `yaml:"repository,omitempty"`
	Name       string        `yaml:"name,omitempty"`
	Version    string        `yaml:"version,omitempty"`
	Scripts    []string      `yaml:"scripts,omitempty"`
}

type repoDocument struct {
	Root   string `yaml:"root"`
	Branch string `yaml:"branch,omitempty"`
	Head   string `yaml:"head,omitempty"`
}

// newInfoCommand creates the info command.
func newInfoCommand(c *app.Container, ff *frontendFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show what would be launched",
		Long: `Show the frontend project, the detected package manager and the command
that would be run, without changing directory or starting anything.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output != outputText && output != outputYAML {
				return fmt.Errorf("invalid output format %q: use %s or %s", output, outputText, outputYAML)
			}

			cfg, err := c.LoadConfig()
			if err != nil {
				return err
			}

			uc := c.ShowInfoUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowInfoInput{
				Frontend: ff.apply(cmd, cfg.Frontend),
			})
			if err != nil {
				return err
			}

			if output == outputYAML {
				return writeInfoYAML(cmd.OutOrStdout(), out)
			}
			writeInfoText(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format (text, yaml)")

	return cmd
}

func writeInfoYAML(w io.Writer, out *usecase.ShowInfoOutput) error {
	doc := infoDocument{ShowInfoOutput: *out}
	if out.Project != nil {
		doc.Name = out.Project.Name
		doc.Version = out.Project.Version
		doc.Scripts = out.Project.ScriptNames()
	}
	if out.Repo != nil {
		doc.Repository = &repoDocument{
			Root:   out.Repo.Root,
			Branch: out.Repo.Branch,
			Head:   out.Repo.Head,
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode info: %w", err)
	}
	return enc.Close()
}

func writeInfoText(w io.Writer, out *usecase.ShowInfoOutput) {
	st := newStyles(w)
	line := func(label, value string) {
		_, _ = fmt.Fprintf(w, "%s %s\n", st.Label.Render(fmt.Sprintf("%-16s", label+":")), value)
	}

	if !out.Exists {
		line("Directory", out.Dir+" "+st.Error.Render("(not found)"))
		return
	}
	line("Directory", out.Dir)

	if p := out.Project; p != nil && p.Name != "" {
		name := p.Name
		if p.Version != "" {
			name += "@" + p.Version
		}
		line("Project", name)
	}

	line("Package manager", fmt.Sprintf("%s %s", out.PackageManager, st.Muted.Render("("+out.DetectedFrom+")")))
	if out.Version == usecase.VersionNotFound {
		line("Version", st.Error.Render(out.Version))
	} else {
		line("Version", out.Version)
	}

	switch {
	case out.Project == nil || !out.Project.HasPackageJSON:
		line("Script", out.Script+" "+st.Warning.Render("(no package.json)"))
	case out.HasScript:
		line("Script", out.Script+" "+st.Success.Render("(defined)"))
	default:
		line("Script", out.Script+" "+st.Warning.Render("(missing)"))
		if names := out.Project.ScriptNames(); len(names) > 0 {
			line("Available", strings.Join(names, ", "))
		}
	}
	line("Command", out.Command)
	line("Repository", formatRepo(out.Repo))
}

func formatRepo(r *domain.RepoInfo) string {
	if r == nil {
		return "none"
	}
	switch {
	case r.Branch != "" && r.Head != "":
		return fmt.Sprintf("%s (%s @ %s)", r.Root, r.Branch, r.Head)
	case r.Head != "":
		return fmt.Sprintf("%s (detached @ %s)", r.Root, r.Head)
	case r.Branch != "":
		return fmt.Sprintf("%s (%s, no commits)", r.Root, r.Branch)
	default:
		return r.Root
	}
}
