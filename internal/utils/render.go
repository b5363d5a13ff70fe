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
package utils

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ballparkdata/almanac/internal/database"
	"github.com/ballparkdata/almanac/internal/dataset"
)

// RenderResult writes a query result as an ASCII table. Null cells render
// empty.
func RenderResult(w io.Writer, columns []string, rows [][]dataset.Value) {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	header := table.Row{}
	for _, col := range columns {
		header = append(header, col)
	}
	t.AppendHeader(header)

	for _, row := range rows {
		r := table.Row{}
		for _, v := range row {
			if v.IsNull() {
				r = append(r, "")
			} else {
				r = append(r, v.String())
			}
		}
		t.AppendRow(r)
	}
	t.Render()
}

// RenderTables writes the table listing with one row per column, grouped by
// table name.
func RenderTables(w io.Writer, handles []database.TableHandle) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Table", "Column", "Type"})
	for _, handle := range handles {
		for _, col := range handle.Columns {
			t.AppendRow(table.Row{handle.Name, col.Name, col.DataType})
		}
		t.AppendSeparator()
	}
	t.Render()
}
