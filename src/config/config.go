package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/eriklarko/logic-solver/src/truthtable"
	"gopkg.in/yaml.v3"
)

const DefaultPath = ".logic-solver.yaml"

type Config struct {
	// fail-fast or collect, see truthtable.FailurePolicy
	FailurePolicy string `yaml:"failure-policy"`
	// truth tables grow as 2^n, refuse to build them for more variables than this
	MaxVariables int  `yaml:"max-variables"`
	ShowTree     bool `yaml:"show-tree"`

	// where the config was read from, and where Write puts it
	Path string `yaml:"-"`
}

func Default() *Config {
	return &Config{
		FailurePolicy: truthtable.FailFast.String(),
		MaxVariables:  16,
		ShowTree:      true,
		Path:          DefaultPath,
	}
}

// LoadConfig reads the config at path. Keys missing from the file keep their
// default values. If the file does not exist the returned error matches
// fs.ErrNotExist.
func LoadConfig(path string) (*Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		// best effort, only used to make error messages easier to follow
		absPath = path
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config %s: %w", absPath, err)
	}
	defer file.Close()

	config := Default()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config %s: %w", absPath, err)
	}
	config.Path = path

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", absPath, err)
	}

	return config, nil
}

func (c *Config) Validate() error {
	if _, err := c.Policy(); err != nil {
		return err
	}
	if c.MaxVariables <= 0 || c.MaxVariables > truthtable.MaxNames {
		return fmt.Errorf("max-variables must be between 1 and %d, got %d", truthtable.MaxNames, c.MaxVariables)
	}
	return nil
}

func (c *Config) Policy() (truthtable.FailurePolicy, error) {
	return truthtable.ParseFailurePolicy(c.FailurePolicy)
}

func (c *Config) Write() error {
	content, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.Path, content, 0644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", c.Path, err)
	}
	// WriteFile keeps the mode of files that already exist
	if err := os.Chmod(c.Path, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", c.Path, err)
	}

	return nil
}
