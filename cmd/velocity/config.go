package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/velocity-lang/velocity/compiler"
)

// loadUserConfig reads the optional per-user configuration from
// $XDG_CONFIG_HOME/velocity/config.toml (~/.config when XDG is unset).
// A missing file is the normal case; an unreadable one is warned about
// and ignored so a broken config never blocks a build.
func loadUserConfig() *viper.Viper {
	v := viper.New()
	v.SetDefault("build.output_dir", "")
	v.SetDefault("ui.color", true)
	v.SetDefault("watch.debounce_ms", 300)

	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return v
		}
		dir = filepath.Join(home, ".config")
	}
	v.AddConfigPath(filepath.Join(dir, "velocity"))
	v.SetConfigName("config")
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			logger.Warn("ignoring user config", "err", err)
		}
	} else {
		logger.Debug("loaded user config", "file", v.ConfigFileUsed())
	}
	return v
}

// fallbackOutputDir resolves the build.output_dir preference for src. The
// project manifest is the stronger source, so a velocity.toml that sets its
// own output_dir silences the preference entirely. A relative preference
// lands next to the program being built, since a global config cannot name
// a sensible process-relative place.
func fallbackOutputDir(src string) string {
	dir := userCfg.GetString("build.output_dir")
	if dir == "" {
		return ""
	}
	srcDir, err := filepath.Abs(filepath.Dir(src))
	if err != nil {
		return dir
	}
	if path, ok := compiler.FindManifest(srcDir); ok {
		if m, err := compiler.ReadManifest(path); err == nil && m.Build.OutputDir != "" {
			return ""
		}
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(srcDir, dir)
	}
	return dir
}
