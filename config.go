package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the server and client commands.
type Config struct {
	// Listen is the address the API server binds to.
	Listen string `yaml:"listen"`
	// DBPath is the sqlite database location.
	DBPath string `yaml:"db_path"`
	// APIURL is the base URL client commands talk to.
	APIURL string `yaml:"api_url"`
}

// LoadConfigFromFile loads configuration from a YAML file.
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// LoadConfig loads configuration with the following precedence
// (highest to lowest):
// 1. Command-line flags
// 2. Environment variables
// 3. Config file
// 4. Defaults
func LoadConfig(configFile, listenFlag, dbPathFlag, apiURLFlag string) (*Config, error) {
	var config Config

	// Step 1: load from config file if provided
	if configFile != "" {
		fileConfig, err := LoadConfigFromFile(configFile)
		if err != nil {
			return nil, err
		}
		config = *fileConfig
	}

	// Step 2: override with environment variables
	if listen := os.Getenv("QUICKCAL_LISTEN"); listen != "" {
		config.Listen = listen
	}
	if dbPath := os.Getenv("QUICKCAL_DB_PATH"); dbPath != "" {
		config.DBPath = dbPath
	}
	if apiURL := os.Getenv("QUICKCAL_API_URL"); apiURL != "" {
		config.APIURL = apiURL
	}

	// Step 3: override with command-line flags (highest priority)
	if listenFlag != "" {
		config.Listen = listenFlag
	}
	if dbPathFlag != "" {
		config.DBPath = dbPathFlag
	}
	if apiURLFlag != "" {
		config.APIURL = apiURLFlag
	}

	// Step 4: apply defaults
	if config.Listen == "" {
		config.Listen = ":3001"
	}
	if config.DBPath == "" {
		config.DBPath = filepath.Join(os.Getenv("HOME"), ".local", "share", "quickcal", "events.db")
	}
	if config.APIURL == "" {
		config.APIURL = "http://localhost:3001"
	}

	return &config, nil
}
