package compiler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ManifestName is the project file Compile looks for.
const ManifestName = "velocity.toml"

// Manifest is the optional project configuration, discovered by walking up
// from the source file. Every field has a working zero value; a missing
// manifest means plain defaults.
type Manifest struct {
	Build BuildConfig `toml:"build"`
	Run   RunConfig   `toml:"run"`
}

// BuildConfig shapes where and how generated Go files are written.
type BuildConfig struct {
	// OutputDir receives the generated files; a relative path resolves
	// against the manifest's directory.
	OutputDir string `toml:"output_dir"`

	// Package overrides the emitted package clause, "main" by default.
	Package string `toml:"package"`

	// Format, when set false, keeps the emitter's raw layout instead of
	// running the output through go/format.
	Format *bool `toml:"format"`
}

// RunConfig shapes program execution.
type RunConfig struct {
	// Args are appended to the program's argument list on every run.
	Args []string `toml:"args"`
}

// FindManifest walks from dir up to the filesystem root and returns the
// first velocity.toml it meets.
func FindManifest(dir string) (string, bool) {
	for {
		path := filepath.Join(dir, ManifestName)
		if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
			return path, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// ReadManifest parses the manifest at path.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return &m, nil
}

// applyManifest folds m into the configuration; dir anchors relative paths.
func (c *config) applyManifest(m *Manifest, dir string) {
	if m.Build.OutputDir != "" {
		c.outputDir = m.Build.OutputDir
		if !filepath.IsAbs(c.outputDir) {
			c.outputDir = filepath.Join(dir, m.Build.OutputDir)
		}
	}
	if m.Build.Package != "" {
		c.pkg = m.Build.Package
	}
	if m.Build.Format != nil {
		c.format = *m.Build.Format
	}
	c.runArgs = append(c.runArgs, m.Run.Args...)
}
