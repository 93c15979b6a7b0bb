package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EndpointEnv overrides the configured endpoint when set, which keeps CI and
// self-hosted setups out of the config file.
const EndpointEnv = "WANDBOX_ENDPOINT"

const DefaultEndpoint = "https://wandbox.org"

// Config is the optional YAML configuration of the command line tools. The
// zero value talks to the public wandbox instance with nothing excluded.
type Config struct {
	// Endpoint is the base URL of the wandbox instance.
	Endpoint string `yaml:"endpoint"`

	// ExcludedCompilers and ExcludedLanguages are dropped from the catalog
	// before any target resolution happens. Useful when the instance
	// advertises compilers that are known to be broken.
	ExcludedCompilers []string `yaml:"excluded_compilers"`
	ExcludedLanguages []string `yaml:"excluded_languages"`

	// DefaultOptions maps a language name onto the compiler options applied
	// when the caller supplies none, e.g. "c++" -> ["-Wall"].
	DefaultOptions map[string][]string `yaml:"default_options"`
}

// Load reads the configuration file at path. A missing file is not an error
// when the path is empty; defaults apply instead. The endpoint environment
// variable wins over both the file and the default.
func Load(path string) (*Config, error) {
	config := &Config{Endpoint: DefaultEndpoint}

	if path != "" {
		data, err := os.ReadFile(path)

		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config file %s", path)
		}

		if config.Endpoint == "" {
			config.Endpoint = DefaultEndpoint
		}
	}

	if endpoint := os.Getenv(EndpointEnv); endpoint != "" {
		config.Endpoint = endpoint
	}

	return config, nil
}

// OptionsFor returns the configured default options of a language, nil when
// none are configured.
func (c *Config) OptionsFor(language string) []string {
	if c.DefaultOptions == nil {
		return nil
	}

	return c.DefaultOptions[language]
}
