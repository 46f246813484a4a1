package main

import (
	"fmt"
)

// Config is the optional config file for the find command. Flags and
// environment variables take precedence over it.
type Config struct {
	originalFilepath string
	Endpoint         string `json:"endpoint" yaml:"endpoint"`
	APIKey           string `json:"api_key" yaml:"api_key"`
}

func loadConfig(configFilepath string) (*Config, error) {
	var config Config
	if isJSONFile(configFilepath) {
		if err := loadFromJSON(configFilepath, &config); err != nil {
			return nil, err
		}
	} else if isYAMLFile(configFilepath) {
		if err := loadFromYAML(configFilepath, &config); err != nil {
			return nil, err
		}
	} else {
		return nil, fmt.Errorf("config file %q must be JSON or YAML", configFilepath)
	}
	config.originalFilepath = configFilepath
	return &config, nil
}

func (c *Config) ConfigFilepath() string {
	return c.originalFilepath
}

func (c *Config) Validate() error {
	if c.Endpoint != "" && !isRemoteWeb(c.Endpoint) {
		return fmt.Errorf("config file %q: endpoint %q must be an HTTP(S) URL", c.originalFilepath, c.Endpoint)
	}
	return nil
}

// isRemoteWeb returns true if the URI is a remote web URI (HTTP or HTTPS).
func isRemoteWeb(u string) bool {
	// http:// or https://
	return len(u) > 7 && u[:7] == "http://" || len(u) > 8 && u[:8] == "https://"
}
