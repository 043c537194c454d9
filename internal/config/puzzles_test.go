package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "puzzles.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	return path
}

func TestLoadPuzzlesConfig_Success(t *testing.T) {
	path := writeConfig(t, `day02:
  bag:
    red: 20
    blue: 1
`)

	cfg, err := LoadPuzzlesConfig(path)
	if err != nil {
		t.Fatalf("LoadPuzzlesConfig() failed: %v", err)
	}

	bag := cfg.Day02.Bag
	if *bag.Red != 20 {
		t.Errorf("Expected red=20, got %d", *bag.Red)
	}
	if *bag.Green != 13 {
		t.Errorf("Expected green=13 (default), got %d", *bag.Green)
	}
	if *bag.Blue != 1 {
		t.Errorf("Expected blue=1, got %d", *bag.Blue)
	}
}

func TestLoadPuzzlesConfig_ZeroIsKept(t *testing.T) {
	path := writeConfig(t, "day02:\n  bag:\n    red: 0\n")

	cfg, err := LoadPuzzlesConfig(path)
	if err != nil {
		t.Fatalf("LoadPuzzlesConfig() failed: %v", err)
	}
	if *cfg.Day02.Bag.Red != 0 {
		t.Errorf("Expected an explicit red=0 to be kept, got %d", *cfg.Day02.Bag.Red)
	}
}

func TestLoadPuzzlesConfig_MissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadPuzzlesConfig("")
	if err != nil {
		t.Fatalf("Expected defaults when %s is absent, got: %v", DefaultPuzzlesConfigPath, err)
	}
	if *cfg.Day02.Bag.Red != 12 || *cfg.Day02.Bag.Green != 13 || *cfg.Day02.Bag.Blue != 14 {
		t.Errorf("Unexpected default bag: %d/%d/%d", *cfg.Day02.Bag.Red, *cfg.Day02.Bag.Green, *cfg.Day02.Bag.Blue)
	}
}

func TestLoadPuzzlesConfig_FileNotFound(t *testing.T) {
	_, err := LoadPuzzlesConfig("/nonexistent/path/puzzles.yaml")
	if err == nil {
		t.Fatal("Expected error for nonexistent config file")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("Expected 'failed to read config file' error, got: %v", err)
	}
}

func TestLoadPuzzlesConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "day02:\n  bag: [red\n")

	_, err := LoadPuzzlesConfig(path)
	if err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse YAML") {
		t.Errorf("Expected 'failed to parse YAML' error, got: %v", err)
	}
}

func TestValidate_NegativeCount(t *testing.T) {
	path := writeConfig(t, "day02:\n  bag:\n    green: -1\n")

	_, err := LoadPuzzlesConfig(path)
	if err == nil {
		t.Fatal("Expected validation error for a negative count")
	}
	if !strings.Contains(err.Error(), "negative green count") {
		t.Errorf("Expected 'negative green count' error, got: %v", err)
	}
}

func TestLoadPuzzlesConfig_ShippedFile(t *testing.T) {
	cfg, err := LoadPuzzlesConfig(filepath.Join("..", "..", DefaultPuzzlesConfigPath))
	if err != nil {
		t.Fatalf("LoadPuzzlesConfig() failed on the shipped file: %v", err)
	}
	if *cfg.Day02.Bag.Blue != 14 {
		t.Errorf("Expected blue=14, got %d", *cfg.Day02.Bag.Blue)
	}
}
