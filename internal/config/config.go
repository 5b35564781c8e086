// Package config loads the todo configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fmizzell/todo"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// AppName is the configuration directory name
	AppName = "todo"

	// FileName is the configuration file name inside the config directory
	FileName = "config.yaml"

	// DefaultDir is where tasks are stored when nothing else is configured.
	// Relative paths resolve against the working directory.
	DefaultDir = "todos"
)

// Config holds the settings for a todo invocation
type Config struct {
	// Dir is the storage directory holding the task files
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Dir: DefaultDir,
	}
}

// DefaultPath returns $HOME/.config/todo/config.yaml, or config.yaml in the
// working directory if the home directory is unknown
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(home, ".config", AppName, FileName)
}

// Load returns the defaults overlaid with the YAML file at path.
// An empty path means DefaultPath, which is allowed to be missing.
// An explicit path must exist. Failures to reach the file wrap todo.ErrIO;
// a file that is not valid YAML does not.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("%w: failed to read config %s: %w", todo.ErrIO, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: config %s is a directory", todo.ErrIO, path)
	}

	if err := loadFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if cfg.Dir == "" {
		cfg.Dir = DefaultDir
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

// Marshal renders cfg as YAML
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteDefault writes the default configuration to path, creating parent
// directories. An existing file is left alone and reported as an error.
func WriteDefault(path string) error {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: failed to create config directory: %w", todo.ErrIO, err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("config already exists: %s", path)
		}
		return fmt.Errorf("%w: failed to create config: %w", todo.ErrIO, err)
	}
	defer file.Close()

	if _, err := file.Write(append([]byte("# todo configuration\n"), data...)); err != nil {
		return fmt.Errorf("%w: failed to write config: %w", todo.ErrIO, err)
	}
	return nil
}
