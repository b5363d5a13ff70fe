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
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/ballparkdata/almanac/internal/config"
	"github.com/ballparkdata/almanac/internal/database"
	"github.com/ballparkdata/almanac/internal/dataset"
)

// sqliteHandler implements database.DialectHandler for the file-backed SQLite
// store.
type sqliteHandler struct{}

var _ database.DialectHandler = (*sqliteHandler)(nil)

func (h sqliteHandler) CreatePool(cfg config.DatabaseConfig) (*sql.DB, error) {
	path := cfg.Path
	if path == "" {
		return nil, fmt.Errorf("sqlite dialect requires a database path")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)
	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	// The store assumes a single writer; additional connections only contend
	// for the file lock.
	pool.SetMaxOpenConns(1)
	return pool, nil
}

// QuoteIdentifier for SQLite
func (h sqliteHandler) QuoteIdentifier(name string) string {
	name = strings.Replace(name, `"`, `""`, -1)
	return fmt.Sprintf(`"%s"`, name)
}

func (h sqliteHandler) Placeholder(position int) string {
	return "?"
}

func (h sqliteHandler) ColumnType(t dataset.Type) string {
	switch t {
	case dataset.TypeInteger:
		return "INTEGER"
	case dataset.TypeReal:
		return "REAL"
	default:
		return "TEXT"
	}
}

func (h sqliteHandler) AutoIncrementPrimaryKey(name string) string {
	return fmt.Sprintf("%s INTEGER PRIMARY KEY AUTOINCREMENT", h.QuoteIdentifier(name))
}

// ListTables for SQLite
func (h sqliteHandler) ListTables(db *database.DB) ([]string, error) {
	query := `
		SELECT name
		FROM sqlite_master
		WHERE type = 'table'
		AND name NOT LIKE 'sqlite_%'
		ORDER BY name;`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return nil, fmt.Errorf("error scanning table name: %w", err)
		}
		tables = append(tables, tableName)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating table rows: %w", err)
	}

	return tables, nil
}

// ListColumns for SQLite
func (h sqliteHandler) ListColumns(db *database.DB, tableName string) ([]database.ColumnInfo, error) {
	query := `SELECT name, type FROM pragma_table_info(?) ORDER BY cid;`

	rows, err := db.Query(query, tableName)
	if err != nil {
		return nil, fmt.Errorf("error querying columns for table %s: %w", tableName, err)
	}
	defer rows.Close()

	var columns []database.ColumnInfo
	for rows.Next() {
		var col database.ColumnInfo
		if err := rows.Scan(&col.Name, &col.DataType); err != nil {
			return nil, fmt.Errorf("error scanning column info: %w", err)
		}
		columns = append(columns, col)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating column rows: %w", err)
	}

	return columns, nil
}

// SetSessionReadOnly makes the connection reject any statement that writes to
// the database file.
func (h sqliteHandler) SetSessionReadOnly(ctx context.Context, conn *sql.Conn) error {
	_, err := conn.ExecContext(ctx, "PRAGMA query_only = ON;")
	return err
}

func (h sqliteHandler) SetSessionReadWrite(ctx context.Context, conn *sql.Conn) error {
	_, err := conn.ExecContext(ctx, "PRAGMA query_only = OFF;")
	return err
}

func init() {
	database.RegisterDialectHandler("sqlite", sqliteHandler{})
}
