package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config controls where the downstream installer comes from and how it is
// invoked. The source variants disagreed on both the repository URL and the
// delegate argument shape, so neither is hard-coded.
type Config struct {
	Repo     RepoConfig     `yaml:"repo"`
	Delegate DelegateConfig `yaml:"delegate"`
	LogFile  string         `yaml:"log_file"`
}

type RepoConfig struct {
	URL      string `yaml:"url"`
	CloneDir string `yaml:"clone_dir"`
}

type DelegateConfig struct {
	// Script is the installer entrypoint looked up inside a checkout.
	Script string `yaml:"script"`
	// Args are passed verbatim; some installer versions expect a literal
	// "install" token, others take no arguments.
	Args []string `yaml:"args"`
}

func Default() Config {
	return Config{
		Repo: RepoConfig{
			URL:      "https://github.com/ripap/ripap.git",
			CloneDir: "ripap",
		},
		Delegate: DelegateConfig{
			Script: "install.py",
			Args:   []string{"install"},
		},
		LogFile: "setup.log",
	}
}

// DefaultPath returns the user config location, or "" when the home
// directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ripsetup", "config.yaml")
}

// Load reads the config file at path, layered over defaults. A missing file
// is not an error; the defaults are returned unchanged.
func Load(fs afero.Fs, path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
