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
package queryservice

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/ballparkdata/almanac/internal/database"
	"github.com/ballparkdata/almanac/internal/dataset"
)

// Service executes read queries against the persisted store.
type Service struct {
	db *database.DB
}

func NewService(db *database.DB) *Service {
	return &Service{db: db}
}

// Result is the tabular output of a query: ordered column names plus rows of
// typed scalars.
type Result struct {
	Columns []string
	Rows    [][]dataset.Value
}

// The deny-list is advisory only; string matching cannot catch every mutation
// path. The SQLite dialect additionally pins the session to query_only so the
// store itself rejects writes.
var mutatingKeyword = regexp.MustCompile(`(?i)\b(insert|update|delete|drop|alter|create)\b`)

// CheckReadOnly rejects query text containing a mutating keyword as a
// standalone token.
func CheckReadOnly(query string) error {
	if m := mutatingKeyword.FindString(query); m != "" {
		return &ErrForbiddenOperation{Keyword: m}
	}
	return nil
}

// ListTables returns every persisted table with its column schema.
func (s *Service) ListTables(ctx context.Context) ([]database.TableHandle, error) {
	names, err := s.db.ListTables()
	if err != nil {
		return nil, &ErrQuerySyntax{Msg: "failed to list tables", Err: err}
	}

	handles := make([]database.TableHandle, 0, len(names))
	for _, name := range names {
		columns, err := s.db.ListColumns(name)
		if err != nil {
			return nil, &ErrQuerySyntax{Msg: "failed to list columns for " + name, Err: err}
		}
		handles = append(handles, database.TableHandle{Name: name, Columns: columns})
	}
	return handles, nil
}

// RunQuery executes freeform query text, constrained to read-only statements.
func (s *Service) RunQuery(ctx context.Context, query string) (*Result, error) {
	if err := CheckReadOnly(query); err != nil {
		return nil, err
	}

	conn, err := s.db.Pool.Conn(ctx)
	if err != nil {
		return nil, &ErrQuerySyntax{Msg: "failed to acquire connection", Err: err}
	}
	defer conn.Close()

	handler := s.db.Handler
	if err := handler.SetSessionReadOnly(ctx, conn); err != nil {
		return nil, &ErrQuerySyntax{Msg: "failed to enter read-only mode", Err: err}
	}
	defer func() {
		if err := handler.SetSessionReadWrite(context.WithoutCancel(ctx), conn); err != nil {
			log.Printf("WARN: Failed to restore read-write session: %v", err)
		}
	}()

	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, &ErrQuerySyntax{Msg: "query failed", Err: err}
	}
	defer rows.Close()

	return collectResult(rows)
}

// RunPredefined executes one of the enumerated parameterized queries. All
// parameters are bound, never concatenated into the query text.
func (s *Service) RunPredefined(ctx context.Context, id string, params map[string]string) (*Result, error) {
	q, ok := Lookup(id)
	if !ok {
		return nil, &ErrUnknownQuery{ID: id}
	}

	args, err := q.bindArgs(params)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, q.sqlFor(s.db.Handler), args...)
	if err != nil {
		return nil, &ErrQuerySyntax{Msg: "predefined query " + id + " failed", Err: err}
	}
	defer rows.Close()

	return collectResult(rows)
}

func collectResult(rows *sql.Rows) (*Result, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, &ErrQuerySyntax{Msg: "failed to read result schema", Err: err}
	}

	result := &Result{Columns: columns}
	for rows.Next() {
		raw := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, &ErrQuerySyntax{Msg: "failed to scan result row", Err: err}
		}

		values := make([]dataset.Value, len(columns))
		for i, cell := range raw {
			values[i] = valueOf(cell)
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, &ErrQuerySyntax{Msg: "failed to iterate result rows", Err: err}
	}
	return result, nil
}

// valueOf maps a driver scan value onto the typed scalar variant.
func valueOf(cell any) dataset.Value {
	switch v := cell.(type) {
	case nil:
		return dataset.Null()
	case int64:
		return dataset.Integer(v)
	case float64:
		return dataset.Real(v)
	case bool:
		if v {
			return dataset.Integer(1)
		}
		return dataset.Integer(0)
	case []byte:
		return dataset.Text(string(v))
	case string:
		return dataset.Text(v)
	case time.Time:
		return dataset.Text(v.Format(time.RFC3339))
	default:
		return dataset.Text(fmt.Sprint(v))
	}
}
