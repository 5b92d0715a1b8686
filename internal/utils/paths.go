package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/julianstephens/nybbler/internal/constants"
)

// Hooks for tests.
var (
	userHomeDirFunc   = os.UserHomeDir
	userConfigDirFunc = os.UserConfigDir
	getenvFunc        = os.Getenv
	goos              = runtime.GOOS
)

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := userHomeDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// DataDir returns the platform user-data directory for the application:
// $XDG_DATA_HOME/nybbler, ~/.local/share/nybbler on Linux and the BSDs,
// and the OS config directory (Application Support, AppData) elsewhere.
func DataDir() (string, error) {
	if xdg := getenvFunc("XDG_DATA_HOME"); xdg != "" && filepath.IsAbs(xdg) {
		return filepath.Join(xdg, constants.AppName), nil
	}

	switch goos {
	case "darwin", "windows", "ios", "plan9":
		dir, err := userConfigDirFunc()
		if err != nil {
			return "", fmt.Errorf("failed to resolve data directory: %w", err)
		}
		return filepath.Join(dir, constants.AppName), nil
	default:
		home, err := userHomeDirFunc()
		if err != nil {
			return "", fmt.Errorf("failed to resolve data directory: %w", err)
		}
		return filepath.Join(home, ".local", "share", constants.AppName), nil
	}
}

// ConfigPath returns the default location of the optional YAML config file.
func ConfigPath() (string, error) {
	dir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(dir, constants.AppName, constants.ConfigFileName), nil
}
