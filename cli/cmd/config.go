package cmd

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

const configFilename = "mk.yaml"

// Config carries defaults that flags override.
type Config struct {
	Printer string `yaml:"printer"`
	Input   string `yaml:"input"`
}

// LoadConfig reads mk.yaml from the working directory. A missing file is
// fine; the zero config means the built-in defaults.
func LoadConfig() (Config, error) {
	var result Config
	data, err := os.ReadFile(configFilename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return result, nil
		}
		return result, err
	}
	if err := yaml.Unmarshal(data, &result); err != nil {
		return result, err
	}
	return result, nil
}
