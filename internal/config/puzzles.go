package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.yaml.in/yaml/v3"
)

const DefaultPuzzlesConfigPath = "configs/puzzles.yaml"

// PuzzlesConfig holds the few puzzle constants that can be tuned without
// recompiling.
type PuzzlesConfig struct {
	Day02 Day02Config `yaml:"day02"`
}

type Day02Config struct {
	Bag BagConfig `yaml:"bag"`
}

// BagConfig is the number of cubes of each colour in the bag. Nil means the
// puzzle default.
type BagConfig struct {
	Red   *int `yaml:"red"`
	Green *int `yaml:"green"`
	Blue  *int `yaml:"blue"`
}

// LoadPuzzlesConfig reads the YAML file at path. An empty path falls back to
// DefaultPuzzlesConfigPath, and a missing default file yields the defaults.
func LoadPuzzlesConfig(path string) (*PuzzlesConfig, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPuzzlesConfigPath
	}

	var cfg PuzzlesConfig

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
		}
	case !explicit && errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *PuzzlesConfig) {
	bag := &cfg.Day02.Bag
	if bag.Red == nil {
		bag.Red = intPtr(12)
	}
	if bag.Green == nil {
		bag.Green = intPtr(13)
	}
	if bag.Blue == nil {
		bag.Blue = intPtr(14)
	}
}

func (c *PuzzlesConfig) Validate() error {
	bag := c.Day02.Bag
	for colour, n := range map[string]*int{"red": bag.Red, "green": bag.Green, "blue": bag.Blue} {
		if n != nil && *n < 0 {
			return fmt.Errorf("day02 bag: negative %s count %d", colour, *n)
		}
	}

	return nil
}

func intPtr(n int) *int {
	return &n
}
