package domain

import (
	"fmt"
	"sort"
	"strings"
)

// PackageManager identifies the Node tool used to run project scripts.
type PackageManager string

// Supported package managers.
const (
	PackageManagerNPM  PackageManager = "npm"
	PackageManagerYarn PackageManager = "yarn"
	PackageManagerPNPM PackageManager = "pnpm"
	PackageManagerBun  PackageManager = "bun"
)

// DefaultPackageManager is used when nothing in the project points elsewhere.
const DefaultPackageManager = PackageManagerNPM

// Lockfile maps a lockfile name to the package manager that writes it.
type Lockfile struct {
	Name    string
	Manager PackageManager
}

// Lockfiles lists known lockfiles in detection order.
// package-lock.json comes last so a stray npm lockfile does not shadow another manager.
var Lockfiles = []Lockfile{
	{Name: "pnpm-lock.yaml", Manager: PackageManagerPNPM},
	{Name: "yarn.lock", Manager: PackageManagerYarn},
	{Name: "bun.lockb", Manager: PackageManagerBun},
	{Name: "bun.lock", Manager: PackageManagerBun},
	{Name: "package-lock.json", Manager: PackageManagerNPM},
}

// ParsePackageManager parses a package manager name.
// It accepts the corepack form "name@version" used by the packageManager field.
func ParsePackageManager(s string) (PackageManager, error) {
	name, _, _ := strings.Cut(strings.TrimSpace(s), "@")
	switch pm := PackageManager(strings.ToLower(name)); pm {
	case PackageManagerNPM, PackageManagerYarn, PackageManagerPNPM, PackageManagerBun:
		return pm, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPackageManager, s)
}

// Executable returns the program name to invoke.
func (pm PackageManager) Executable() string {
	return string(pm)
}

// RunArgs returns the arguments that run script with extra arguments.
// npm swallows flags unless they follow "--"; the other managers pass them through.
func (pm PackageManager) RunArgs(script string, extra []string) []string {
	args := []string{"run", script}
	if len(extra) == 0 {
		return args
	}
	if pm == PackageManagerNPM {
		args = append(args, "--")
	}
	return append(args, extra...)
}

// Project describes a frontend project directory.
// Fields are ordered to minimize memory padding.
type Project struct {
	Scripts        map[string]string // "scripts" table from package.json
	Dir            string
	Name           string
	Version        string
	PackageManager PackageManager
	DetectedFrom   string // package.json, a lockfile name, or "default"
	HasPackageJSON bool
}

// HasScript reports whether package.json defines the named script.
func (p *Project) HasScript(name string) bool {
	if p == nil {
		return false
	}
	_, ok := p.Scripts[name]
	return ok
}

// ScriptNames returns the script names in sorted order.
func (p *Project) ScriptNames() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.Scripts))
	for name := range p.Scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DevCommand builds the command that starts the dev server for a project.
func DevCommand(pm PackageManager, dir string, fc FrontendConfig) *ExecCommand {
	cmd := NewCommand(pm.Executable(), pm.RunArgs(fc.Script, fc.Args), dir)
	cmd.Env = EnvList(fc.Env)
	return cmd
}

// EnvList converts an environment map into sorted KEY=VALUE pairs.
func EnvList(env map[string]string) []string {
	if len(env) == 0 {
		return nil
	}
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+env[k])
	}
	return out
}

// RepoInfo describes the git repository containing a project.
type RepoInfo struct {
	Root   string
	Branch string // Empty when HEAD is detached
	Head   string // Abbreviated commit hash
}
