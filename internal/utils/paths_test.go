package utils

import (
	"errors"
	"path/filepath"
	"testing"
)

func stubPaths(t *testing.T, env map[string]string, os string) {
	t.Helper()
	origHome, origConfig, origEnv, origOS := userHomeDirFunc, userConfigDirFunc, getenvFunc, goos
	t.Cleanup(func() {
		userHomeDirFunc, userConfigDirFunc, getenvFunc, goos = origHome, origConfig, origEnv, origOS
	})

	userHomeDirFunc = func() (string, error) { return "/home/rex", nil }
	userConfigDirFunc = func() (string, error) { return "/home/rex/.config", nil }
	getenvFunc = func(k string) string { return env[k] }
	goos = os
}

func TestDataDir(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		os   string
		want string
	}{
		{"linux default", nil, "linux", "/home/rex/.local/share/nybbler"},
		{"xdg override", map[string]string{"XDG_DATA_HOME": "/srv/data"}, "linux", "/srv/data/nybbler"},
		{"relative xdg ignored", map[string]string{"XDG_DATA_HOME": "data"}, "linux", "/home/rex/.local/share/nybbler"},
		{"darwin uses config dir", nil, "darwin", "/home/rex/.config/nybbler"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubPaths(t, tt.env, tt.os)
			got, err := DataDir()
			if err != nil {
				t.Fatalf("DataDir() error: %v", err)
			}
			if got != filepath.FromSlash(tt.want) {
				t.Errorf("DataDir() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDataDirHomeError(t *testing.T) {
	stubPaths(t, nil, "linux")
	userHomeDirFunc = func() (string, error) { return "", errors.New("no home") }

	if _, err := DataDir(); err == nil {
		t.Error("DataDir() = nil error, want error")
	}
}

func TestExpandHome(t *testing.T) {
	stubPaths(t, nil, "linux")

	tests := map[string]string{
		"~":              "/home/rex",
		"~/saves":        "/home/rex/saves",
		"/abs/path":      "/abs/path",
		"relative/~/dir": "relative/~/dir",
	}
	for in, want := range tests {
		got, err := ExpandHome(in)
		if err != nil {
			t.Fatalf("ExpandHome(%q) error: %v", in, err)
		}
		if got != filepath.FromSlash(want) && got != want {
			t.Errorf("ExpandHome(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestConfigPath(t *testing.T) {
	stubPaths(t, nil, "linux")
	got, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath() error: %v", err)
	}
	if got != filepath.Join("/home/rex/.config", "nybbler", "config.yaml") {
		t.Errorf("ConfigPath() = %s", got)
	}
}
