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
package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/ballparkdata/almanac/internal/config"
	"github.com/ballparkdata/almanac/internal/database"
	_ "github.com/ballparkdata/almanac/internal/database/mysql"
	_ "github.com/ballparkdata/almanac/internal/database/postgres"
	_ "github.com/ballparkdata/almanac/internal/database/sqlite"
	"github.com/spf13/cobra"
)

var (
	// Database connection flags
	dialect  string
	dbPath   string
	host     string
	port     int
	username string
	password string
	dbName   string

	dataDir string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "almanacdb",
	Short: "A tool to collect and query historical baseball statistics",
	Long: `almanacdb collects historical baseball statistics from
baseball-almanac.com, loads them into a relational database, and exposes
freeform and predefined queries over the result.`,
	PersistentPreRunE: initFlagsAndConfig,
}

// initFlagsAndConfig initializes application configuration using command flags.
func initFlagsAndConfig(cmd *cobra.Command, args []string) error {
	cfg = config.GetConfig()
	config.LoadEnv(cfg)

	if cmd != nil {
		if dialect != "" {
			cfg.Database.Dialect = dialect
		}
		if dbPath != "" {
			cfg.Database.Path = dbPath
		}
		if host != "" {
			cfg.Database.Host = host
		}
		if port != 0 {
			cfg.Database.Port = port
		}
		if username != "" {
			cfg.Database.User = username
		}
		if password != "" {
			cfg.Database.Password = password
		}
		if dbName != "" {
			cfg.Database.DBName = dbName
		}
		if dataDir != "" {
			cfg.DataDir = dataDir
		}
	}

	config.SetConfig(cfg)
	return nil
}

func validateDialect(dialect string) error {
	supportedDialects := []string{"sqlite", "postgres", "mysql"}
	isValidDialect := false
	for _, supportedDialect := range supportedDialects {
		if dialect == supportedDialect {
			isValidDialect = true
			break
		}
	}
	if !isValidDialect {
		return fmt.Errorf("unsupported dialect: %s (only %s are supported)", dialect, strings.Join(supportedDialects, ", "))
	}
	return nil
}

func setupDatabase() (*database.DB, error) {
	if err := validateDialect(cfg.Database.Dialect); err != nil {
		return nil, err
	}
	db, err := database.New(cfg.Database)
	if err != nil {
		log.Println("ERROR: Failed to connect to database:", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Database connection flags
	rootCmd.PersistentFlags().StringVar(&dialect, "dialect", "", "Database dialect (sqlite, postgres, mysql), defaults to sqlite")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (sqlite dialect), defaults to database/mlb_history.db")
	rootCmd.PersistentFlags().StringVar(&host, "host", "", "Database host (postgres/mysql)")
	rootCmd.PersistentFlags().IntVar(&port, "port", 0, "Database port (postgres/mysql)")
	rootCmd.PersistentFlags().StringVar(&username, "username", "", "Database username (postgres/mysql)")
	rootCmd.PersistentFlags().StringVar(&password, "password", "", "Database password (postgres/mysql)")
	rootCmd.PersistentFlags().StringVar(&dbName, "database", "", "Database name (postgres/mysql)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding scraped CSV files, defaults to data")

	// Add subcommands
	rootCmd.AddCommand(scrapeCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(serveCmd)
}
