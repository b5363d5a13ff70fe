/*
 * Copyright 2025 Google LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Database DatabaseConfig
	DataDir  string // directory holding the scraped CSV files
	Listen   string // HTTP API listen address
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Dialect  string
	Path     string // database file path (sqlite)
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

var globalConfig *Config

// GetConfig returns a default configuration. Configuration will be set by flags in root.go
func GetConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Dialect: "sqlite",
			Path:    "database/mlb_history.db",
			Host:    "localhost",
			SSLMode: "disable",
		},
		DataDir: "data",
		Listen:  ":8080",
	}
}

// SetConfig sets the global configuration.
func SetConfig(cfg *Config) {
	globalConfig = cfg
}

// LoadEnv loads a .env file if one exists and applies known overrides.
// Missing files are not an error.
func LoadEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ALMANAC_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("ALMANAC_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("ALMANAC_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("ALMANAC_LISTEN"); v != "" {
		cfg.Listen = v
	}
}
