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
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ballparkdata/almanac/internal/database"
)

// ParamKind is the declared type of a predefined query parameter.
type ParamKind int

const (
	ParamInt ParamKind = iota
	ParamString
)

func (k ParamKind) String() string {
	if k == ParamInt {
		return "int"
	}
	return "string"
}

// ParamSpec declares one bound parameter of a predefined query.
type ParamSpec struct {
	Name     string
	Kind     ParamKind
	Required bool
	Default  string // used when not required and absent
	Min, Max int64  // inclusive bounds, ints only
}

// Predefined is a fixed parameterized query exposed for safe common analyses.
// Text uses ? markers which are rewritten to the dialect's placeholders at
// execution time; Params lists the bound values in marker order.
type Predefined struct {
	ID          string
	Description string
	Text        string
	Params      []ParamSpec
}

const yearMin, yearMax = 1871, 2100

var yearRangeParams = []ParamSpec{
	{Name: "start_year", Kind: ParamInt, Required: true, Min: yearMin, Max: yearMax},
	{Name: "end_year", Kind: ParamInt, Required: true, Min: yearMin, Max: yearMax},
}

var registry = map[string]Predefined{
	"champions_by_year_range": {
		ID:          "champions_by_year_range",
		Description: "World Series champions within a year range",
		Text:        "SELECT * FROM world_series_champions WHERE year BETWEEN ? AND ? ORDER BY year",
		Params:      yearRangeParams,
	},
	"mvp_by_team": {
		ID:          "mvp_by_team",
		Description: "AL MVP winners for a team",
		Text:        "SELECT * FROM al_mvp_winners WHERE team = ? ORDER BY year",
		Params: []ParamSpec{
			{Name: "team", Kind: ParamString, Required: true},
		},
	},
	"standings_by_team": {
		ID:          "standings_by_team",
		Description: "Season standings for a team",
		Text:        "SELECT * FROM team_standings WHERE team = ? ORDER BY year",
		Params: []ParamSpec{
			{Name: "team", Kind: ParamString, Required: true},
		},
	},
	"standings_by_year_range": {
		ID:          "standings_by_year_range",
		Description: "Team standings within a year range",
		Text:        "SELECT * FROM team_standings WHERE year BETWEEN ? AND ? ORDER BY year, wp DESC",
		Params:      yearRangeParams,
	},
	"top_hitting_leaders": {
		ID:          "top_hitting_leaders",
		Description: "Hitting leaders by batting average",
		Text:        "SELECT * FROM hitting_leaders ORDER BY avg DESC LIMIT ?",
		Params: []ParamSpec{
			{Name: "limit", Kind: ParamInt, Default: "10", Min: 1, Max: 100},
		},
	},
	"top_pitching_leaders": {
		ID:          "top_pitching_leaders",
		Description: "Pitching leaders by earned run average",
		Text:        "SELECT * FROM pitching_leaders ORDER BY era ASC LIMIT ?",
		Params: []ParamSpec{
			{Name: "limit", Kind: ParamInt, Default: "10", Min: 1, Max: 100},
		},
	},
	"champions_with_standings": {
		ID:          "champions_with_standings",
		Description: "World Series champions joined with their season standings",
		Text: "SELECT c.year, c.world_series_champion, t.wins, t.losses, t.wp " +
			"FROM world_series_champions c " +
			"JOIN team_standings t ON c.year = t.year AND c.world_series_champion = t.team " +
			"WHERE c.year BETWEEN ? AND ? ORDER BY c.year DESC",
		Params: yearRangeParams,
	},
}

// Lookup returns the predefined query for id.
func Lookup(id string) (Predefined, bool) {
	q, ok := registry[id]
	return q, ok
}

// All returns the predefined queries sorted by id.
func All() []Predefined {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	queries := make([]Predefined, 0, len(ids))
	for _, id := range ids {
		queries = append(queries, registry[id])
	}
	return queries
}

// bindArgs validates params against the query's declared specs and returns
// the bound values in marker order.
func (q Predefined) bindArgs(params map[string]string) ([]any, error) {
	declared := make(map[string]bool, len(q.Params))
	for _, spec := range q.Params {
		declared[spec.Name] = true
	}
	for name := range params {
		if !declared[name] {
			return nil, &ErrValidation{Msg: fmt.Sprintf("unknown parameter %q for query %s", name, q.ID)}
		}
	}

	args := make([]any, 0, len(q.Params))
	ints := make(map[string]int64)
	for _, spec := range q.Params {
		raw, ok := params[spec.Name]
		if !ok || raw == "" {
			if spec.Required {
				return nil, &ErrValidation{Msg: fmt.Sprintf("missing required parameter %q for query %s", spec.Name, q.ID)}
			}
			raw = spec.Default
		}

		switch spec.Kind {
		case ParamInt:
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, &ErrValidation{Msg: fmt.Sprintf("parameter %q must be an integer", spec.Name), Err: err}
			}
			if spec.Min != 0 || spec.Max != 0 {
				if n < spec.Min || n > spec.Max {
					return nil, &ErrValidation{Msg: fmt.Sprintf("parameter %q must be between %d and %d", spec.Name, spec.Min, spec.Max)}
				}
			}
			ints[spec.Name] = n
			args = append(args, n)
		default:
			if strings.TrimSpace(raw) == "" {
				return nil, &ErrValidation{Msg: fmt.Sprintf("parameter %q must not be empty", spec.Name)}
			}
			args = append(args, raw)
		}
	}

	if start, ok := ints["start_year"]; ok {
		if end, ok := ints["end_year"]; ok && start > end {
			return nil, &ErrValidation{Msg: "start_year must not be greater than end_year"}
		}
	}

	return args, nil
}

// sqlFor rewrites the ? markers into the dialect's bind placeholders.
func (q Predefined) sqlFor(handler database.DialectHandler) string {
	parts := strings.Split(q.Text, "?")
	var b strings.Builder
	b.WriteString(parts[0])
	for i, part := range parts[1:] {
		b.WriteString(handler.Placeholder(i + 1))
		b.WriteString(part)
	}
	return b.String()
}
