// Package config resolves the expoui configuration directory and file.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the expoui configuration directory.
//
// Resolution:
//   - $EXPOUI_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/expoui if set (respects XDG on any platform)
//   - %AppData%/expoui on Windows
//   - ~/.config/expoui on macOS and Linux
func Dir() string {
	if dir := os.Getenv("EXPOUI_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "expoui")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "expoui")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "expoui")
}

// Path returns the default config file location, or "" if no directory
// could be resolved.
func Path() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}
