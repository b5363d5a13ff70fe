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
package importer

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/ballparkdata/almanac/internal/database"
	"github.com/ballparkdata/almanac/internal/dataset"
)

// surrogateKey is the implicit autoincrement row identifier added to every
// table. A dataset column that sanitizes to the same name is suffixed out of
// the way.
const surrogateKey = "id"

// NormalizeAndLoad converts the dataset into a typed table and persists it.
// An existing table with the same name is dropped and recreated, so loading
// the same source twice yields the same table. The whole load runs in one
// transaction; nothing is committed on failure.
func NormalizeAndLoad(ctx context.Context, db *database.DB, ds dataset.Dataset) (*database.TableHandle, error) {
	if strings.TrimSpace(ds.Name) == "" {
		return nil, &ErrValidation{Msg: "dataset name must not be empty"}
	}
	tableName := dataset.SanitizeIdentifier(ds.Name)
	if tableName == "col_" {
		return nil, &ErrValidation{Msg: fmt.Sprintf("dataset name %q does not contain any identifier characters", ds.Name)}
	}

	columns, err := ds.Normalize()
	if err != nil {
		return nil, &ErrValidation{Msg: "failed to normalize dataset", Err: err}
	}
	reserveSurrogate(columns)

	handler := db.Handler
	quotedTable := handler.QuoteIdentifier(tableName)

	defs := make([]string, 0, len(columns)+1)
	defs = append(defs, handler.AutoIncrementPrimaryKey(surrogateKey))
	for _, col := range columns {
		def := fmt.Sprintf("%s %s", handler.QuoteIdentifier(col.Name), handler.ColumnType(col.Type))
		if !col.Nullable {
			def += " NOT NULL"
		}
		defs = append(defs, def)
	}
	createStmt := fmt.Sprintf("CREATE TABLE %s (%s)", quotedTable, strings.Join(defs, ", "))

	tx, err := db.BeginTx(ctx)
	if err != nil {
		return nil, &ErrStorage{Msg: "failed to begin transaction", Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", quotedTable)); err != nil {
		return nil, &ErrStorage{Msg: fmt.Sprintf("failed to drop existing table %s", tableName), Err: err}
	}
	if _, err := tx.ExecContext(ctx, createStmt); err != nil {
		return nil, &ErrStorage{Msg: fmt.Sprintf("failed to create table %s", tableName), Err: err}
	}

	if len(ds.Rows) > 0 {
		names := make([]string, len(columns))
		marks := make([]string, len(columns))
		for i, col := range columns {
			names[i] = handler.QuoteIdentifier(col.Name)
			marks[i] = handler.Placeholder(i + 1)
		}
		insertStmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			quotedTable, strings.Join(names, ", "), strings.Join(marks, ", "))

		stmt, err := tx.PrepareContext(ctx, insertStmt)
		if err != nil {
			return nil, &ErrStorage{Msg: fmt.Sprintf("failed to prepare insert for table %s", tableName), Err: err}
		}
		defer stmt.Close()

		for i := range ds.Rows {
			values := ds.TypedRow(i, columns)
			args := make([]any, len(values))
			for j, v := range values {
				args[j] = v.SQL()
			}
			if _, err := stmt.ExecContext(ctx, args...); err != nil {
				return nil, &ErrStorage{Msg: fmt.Sprintf("failed to insert row %d into table %s", i+1, tableName), Err: err}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, &ErrStorage{Msg: fmt.Sprintf("failed to commit load of table %s", tableName), Err: err}
	}

	handle := &database.TableHandle{Name: tableName}
	handle.Columns = append(handle.Columns, database.ColumnInfo{Name: surrogateKey, DataType: handler.ColumnType(dataset.TypeInteger)})
	for _, col := range columns {
		handle.Columns = append(handle.Columns, database.ColumnInfo{Name: col.Name, DataType: handler.ColumnType(col.Type)})
	}
	return handle, nil
}

// reserveSurrogate renames any dataset column that collides with the
// surrogate key, using the same numeric suffixing as header collisions.
func reserveSurrogate(columns []dataset.Column) {
	used := make(map[string]bool, len(columns)+1)
	used[surrogateKey] = true
	for i := range columns {
		name := columns[i].Name
		for n := 2; used[name]; n++ {
			name = fmt.Sprintf("%s_%d", columns[i].Name, n)
		}
		used[name] = true
		columns[i].Name = name
	}
}

// ImportDir loads every *.csv file in dir as its own table, named after the
// file. A file that fails to load is reported and skipped; the remaining
// files are still imported.
func ImportDir(ctx context.Context, db *database.DB, dir string) (int, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return 0, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	if len(paths) == 0 {
		log.Printf("INFO: No CSV files found in %s.", dir)
		return 0, nil
	}

	imported := 0
	for _, path := range paths {
		ds, err := dataset.ReadCSVFile(path)
		if err != nil {
			log.Printf("ERROR: Failed to read %s: %v", path, err)
			continue
		}
		handle, err := NormalizeAndLoad(ctx, db, ds)
		if err != nil {
			log.Printf("ERROR: Failed to import %s: %v", path, err)
			continue
		}
		log.Printf("INFO: Imported %d records from %s to table %s", len(ds.Rows), path, handle.Name)
		imported++
	}
	return imported, nil
}
