package util

import (
	"path/filepath"
	"testing"
)

func TestGetXDGConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := GetXDGConfigDir()
	if err != nil {
		t.Fatalf("GetXDGConfigDir: %v", err)
	}
	if want := filepath.Join("/tmp/xdg", "aidash"); dir != want {
		t.Errorf("expected %s, got %s", want, dir)
	}
}

func TestGetXDGConfigDir_HomeFallback(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/tester")
	dir, err := GetXDGConfigDir()
	if err != nil {
		t.Fatalf("GetXDGConfigDir: %v", err)
	}
	if want := filepath.Join("/home/tester", ".config", "aidash"); dir != want {
		t.Errorf("expected %s, got %s", want, dir)
	}
}
