package compiler

import (
	"io"
	"os"
	"path/filepath"
)

// config collects the knobs one compilation honors. Defaults come first,
// then the project manifest, then explicit options, later writers winning.
type config struct {
	outputDir string
	pkg       string
	format    bool
	runArgs   []string
	stdout    io.Writer
	stderr    io.Writer
}

// Option configures a compilation before it starts.
type Option func(*config)

// WithOutputDir writes generated files into dir instead of next to their
// sources.
func WithOutputDir(dir string) Option {
	return func(c *config) { c.outputDir = dir }
}

// WithPackageName overrides the package clause of the generated files.
func WithPackageName(name string) Option {
	return func(c *config) { c.pkg = name }
}

// WithNoFormat writes the emitter's raw layout instead of running the
// output through go/format.
func WithNoFormat() Option {
	return func(c *config) { c.format = false }
}

// WithRunArgs appends arguments passed to the program on Run.
func WithRunArgs(args ...string) Option {
	return func(c *config) { c.runArgs = append(c.runArgs, args...) }
}

// WithStdout redirects the running program's standard output.
func WithStdout(w io.Writer) Option {
	return func(c *config) { c.stdout = w }
}

// WithStderr redirects the running program's standard error.
func WithStderr(w io.Writer) Option {
	return func(c *config) { c.stderr = w }
}

// newConfig builds the effective configuration for a compilation of src.
func newConfig(src string, opts []Option) (*config, error) {
	cfg := &config{
		format: true,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	if dir, err := filepath.Abs(filepath.Dir(src)); err == nil {
		if path, ok := FindManifest(dir); ok {
			m, err := ReadManifest(path)
			if err != nil {
				return nil, err
			}
			cfg.applyManifest(m, filepath.Dir(path))
		}
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.pkg == "" {
		cfg.pkg = "main"
	}
	return cfg, nil
}
