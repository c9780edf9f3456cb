package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env-default:"warn"`
	LogFormat string `yaml:"log-format" env-default:"json"`
}

// MustLoad - load all configurations in config.yml file. A missing file leaves the defaults in place.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		// no env tags are declared, so this only applies env-default values
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to apply defaults: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return config, nil
}
