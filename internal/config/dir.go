// Package config provides configuration and logging setup for journey2md.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the configuration directory and environment prefix.
const AppName = "journey2md"

// Dir returns the journey2md configuration directory.
//
// Resolution:
//   - $JOURNEY2MD_CONFIG_HOME if set
//   - $XDG_CONFIG_HOME/journey2md if set
//   - %AppData%/journey2md on Windows
//   - ~/.config/journey2md elsewhere
func Dir() string {
	if dir := os.Getenv("JOURNEY2MD_CONFIG_HOME"); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppName)
}

// EnvFiles returns the env files to load, highest priority first.
// Variables already present in the environment always win.
func EnvFiles() []string {
	files := []string{".env.local", ".env"}
	if dir := Dir(); dir != "" {
		files = append(files, filepath.Join(dir, "env"))
	}
	return files
}
