package main

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var fasterJson = jsoniter.ConfigCompatibleWithStandardLibrary

// exists checks whether a file or directory exists.
func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		// file does not exist
		return false, nil
	}
	// other error
	return false, err
}

// isJSONFile checks whether a path is a JSON file.
func isJSONFile(filepath string) bool {
	return len(filepath) > 5 && filepath[len(filepath)-5:] == ".json"
}

// isYAMLFile checks whether a path is a YAML file.
func isYAMLFile(filepath string) bool {
	return (len(filepath) > 5 && filepath[len(filepath)-5:] == ".yaml") ||
		(len(filepath) > 4 && filepath[len(filepath)-4:] == ".yml")
}

// loadFromJSON loads a JSON file into dst (which must be a pointer).
func loadFromJSON(configFilepath string, dst any) error {
	file, err := os.Open(configFilepath)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()
	return fasterJson.NewDecoder(file).Decode(dst)
}

// loadFromYAML loads a YAML file into dst (which must be a pointer).
func loadFromYAML(configFilepath string, dst any) error {
	file, err := os.Open(configFilepath)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	return yaml.NewDecoder(file).Decode(dst)
}
