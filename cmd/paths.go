package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	consts "github.com/khanhnv2901/arch-health/internal/shared/constants"
)

// getDataDir returns the directory holding run history, following the XDG
// Base Directory specification: $XDG_DATA_HOME/arch-health or
// ~/.local/share/arch-health.
func getDataDir() (string, error) {
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, consts.AppName), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", consts.AppName), nil
}

// getHistoryFilePath returns the path of the run history file.
func getHistoryFilePath() (string, error) {
	dataDir, err := getDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, consts.HistoryFileName), nil
}

// configSearchPaths lists candidate config files in priority order: the user
// config directory first, then the working directory.
func configSearchPaths() []string {
	var paths []string
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, consts.AppName, "config.toml"))
	}
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, consts.LocalConfigName))
	}
	return paths
}

// findConfigFile returns the first existing config file, or "" when none exists.
func findConfigFile() string {
	for _, path := range configSearchPaths() {
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}
