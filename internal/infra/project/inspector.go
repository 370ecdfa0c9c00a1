// Package project reads frontend project metadata from package.json and lockfiles.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fitcoach/start-frontend/internal/domain"
)

// PackageJSONName is the manifest file name.
const PackageJSONName = "package.json"

// Detection sources reported in domain.Project.DetectedFrom.
const (
	SourcePackageJSON = "package.json"
	SourceDefault     = "default"
)

// packageJSON is the subset of package.json the launcher reads.
type packageJSON struct {
	Scripts        map[string]string `json:"scripts"`
	Name           string            `json:"name"`
	Version        string            `json:"version"`
	PackageManager string            `json:"packageManager"`
}

// Inspector implements domain.ProjectInspector.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Ensure Inspector implements domain.ProjectInspector.
var _ domain.ProjectInspector = (*Inspector)(nil)

// Inspect reads the project in dir.
func (i *Inspector) Inspect(dir string) (*domain.Project, error) {
	p := &domain.Project{
		Dir:     dir,
		Scripts: map[string]string{},
	}

	manifest, err := readPackageJSON(filepath.Join(dir, PackageJSONName))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		p.HasPackageJSON = true
		p.Name = manifest.Name
		p.Version = manifest.Version
		if manifest.Scripts != nil {
			p.Scripts = manifest.Scripts
		}
	}

	p.PackageManager, p.DetectedFrom = detect(dir, manifest)
	return p, nil
}

func readPackageJSON(path string) (*packageJSON, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m packageJSON
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &m, nil
}

// detect picks the package manager: packageManager field, then lockfiles, then npm.
func detect(dir string, manifest *packageJSON) (domain.PackageManager, string) {
	if manifest != nil && manifest.PackageManager != "" {
		if pm, err := domain.ParsePackageManager(manifest.PackageManager); err == nil {
			return pm, SourcePackageJSON
		}
	}
	for _, lf := range domain.Lockfiles {
		if _, err := os.Stat(filepath.Join(dir, lf.Name)); err == nil {
			return lf.Manager, lf.Name
		}
	}
	return domain.DefaultPackageManager, SourceDefault
}
