// Package config loads server settings from an optional YAML file with
// environment variable overrides. A .env file is honored when present.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all settings for the insight server.
type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`

	GitHub struct {
		ClientID     string `yaml:"clientId"`
		ClientSecret string `yaml:"clientSecret"`
	} `yaml:"github"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"cors"`
}

// Load reads the YAML file at path (missing file is fine), then applies
// environment variables on top. Environment always wins.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// Env-only configuration is supported.
		default:
			return nil, err
		}
	}

	cfg.Server.Host = getEnvOrDefault("HOST", cfg.Server.Host)
	cfg.Server.Port = getEnvIntOrDefault("PORT", cfg.Server.Port)
	cfg.Database.Path = getEnvOrDefault("DATABASE_PATH", cfg.Database.Path)
	cfg.GitHub.ClientID = getEnvOrDefault("GITHUB_CLIENT_ID", cfg.GitHub.ClientID)
	cfg.GitHub.ClientSecret = getEnvOrDefault("GITHUB_CLIENT_SECRET", cfg.GitHub.ClientSecret)

	return cfg, nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 5000
	cfg.Database.Path = "insight.db"
	cfg.CORS.AllowedOrigins = []string{"*"}
	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
