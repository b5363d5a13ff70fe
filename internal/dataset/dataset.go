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
package dataset

import (
	"fmt"
	"strconv"
)

// Type is the inferred storage type of a column.
type Type int

const (
	TypeText Type = iota
	TypeInteger
	TypeReal
)

func (t Type) String() string {
	switch t {
	case TypeInteger:
		return "integer"
	case TypeReal:
		return "real"
	default:
		return "text"
	}
}

// Kind discriminates the variants of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindText
	KindInteger
	KindReal
)

// Value is a typed scalar cell. The zero Value is null.
type Value struct {
	Kind Kind
	Text string
	Int  int64
	Real float64
}

func Null() Value           { return Value{Kind: KindNull} }
func Text(s string) Value   { return Value{Kind: KindText, Text: s} }
func Integer(i int64) Value { return Value{Kind: KindInteger, Int: i} }
func Real(f float64) Value  { return Value{Kind: KindReal, Real: f} }

func (v Value) IsNull() bool { return v.Kind == KindNull }

// SQL returns the value in a form accepted by database/sql parameter binding.
func (v Value) SQL() any {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindInteger:
		return v.Int
	case KindReal:
		return v.Real
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case KindReal:
		return strconv.FormatFloat(v.Real, 'g', -1, 64)
	default:
		return ""
	}
}

// Column describes a single dataset column after normalization.
type Column struct {
	Name     string // sanitized identifier
	RawLabel string // header label as it appeared in the source
	Type     Type
	Nullable bool // true if any row is missing a value for this column
}

// Dataset is a named collection of tabular records destined for one table.
// Rows hold raw string cells as parsed from the source; an empty string is a
// missing value. Rows shorter than the header are padded with missing values.
type Dataset struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// New builds a Dataset, normalizing every row to the header width.
func New(name string, headers []string, rows [][]string) Dataset {
	normalized := make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) < len(headers) {
			padded := make([]string, len(headers))
			copy(padded, row)
			row = padded
		} else if len(row) > len(headers) {
			row = row[:len(headers)]
		}
		normalized = append(normalized, row)
	}
	return Dataset{Name: name, Headers: headers, Rows: normalized}
}

// Normalize produces the ordered column definitions for the dataset: sanitized
// unique identifiers plus inferred types and nullability.
func (d Dataset) Normalize() ([]Column, error) {
	if len(d.Headers) == 0 {
		return nil, fmt.Errorf("dataset %q has no columns", d.Name)
	}
	names := SanitizeIdentifiers(d.Headers)
	columns := make([]Column, len(d.Headers))
	for i, label := range d.Headers {
		typ, nullable := inferColumn(d.Rows, i)
		columns[i] = Column{
			Name:     names[i],
			RawLabel: label,
			Type:     typ,
			Nullable: nullable,
		}
	}
	return columns, nil
}

// TypedRow converts the raw cells of row i into typed scalars according to the
// given column definitions. Empty cells become null.
func (d Dataset) TypedRow(i int, columns []Column) []Value {
	row := d.Rows[i]
	values := make([]Value, len(columns))
	for j, col := range columns {
		if j >= len(row) || row[j] == "" {
			values[j] = Null()
			continue
		}
		values[j] = coerce(row[j], col.Type)
	}
	return values
}

func coerce(raw string, typ Type) Value {
	switch typ {
	case TypeInteger:
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return Integer(n)
		}
	case TypeReal:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return Real(f)
		}
	}
	return Text(raw)
}
