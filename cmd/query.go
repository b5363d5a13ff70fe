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
	"os"
	"strings"

	"github.com/ballparkdata/almanac/internal/queryservice"
	"github.com/ballparkdata/almanac/internal/utils"
	"github.com/spf13/cobra"
)

var (
	predefinedID string
	queryParams  []string
)

var queryCmd = &cobra.Command{
	Use:     "query [sql]",
	Short:   "Run a read-only query against the statistics database",
	Long:    `Executes freeform read-only SQL, or one of the predefined parameterized queries when --id is given. Use "query --list" to enumerate the predefined set.`,
	Example: `./almanacdb query "SELECT * FROM world_series_champions ORDER BY year DESC"
./almanacdb query --id champions_by_year_range --param start_year=1990 --param end_year=2000`,
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	listOnly, _ := cmd.Flags().GetBool("list")
	if listOnly {
		for _, q := range queryservice.All() {
			var params []string
			for _, p := range q.Params {
				params = append(params, fmt.Sprintf("%s (%s)", p.Name, p.Kind))
			}
			fmt.Printf("%s: %s\n", q.ID, q.Description)
			if len(params) > 0 {
				fmt.Printf("    params: %s\n", strings.Join(params, ", "))
			}
		}
		return nil
	}

	if predefinedID == "" && len(args) == 0 {
		return fmt.Errorf("provide query text, or --id for a predefined query")
	}

	db, err := setupDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	service := queryservice.NewService(db)
	ctx := cmd.Context()

	var result *queryservice.Result
	if predefinedID != "" {
		params, err := parseParams(queryParams)
		if err != nil {
			return err
		}
		result, err = service.RunPredefined(ctx, predefinedID, params)
		if err != nil {
			return err
		}
	} else {
		result, err = service.RunQuery(ctx, args[0])
		if err != nil {
			return err
		}
	}

	utils.RenderResult(os.Stdout, result.Columns, result.Rows)
	fmt.Printf("Query returned %d rows.\n", len(result.Rows))
	return nil
}

// parseParams converts repeated --param name=value flags into a map.
func parseParams(pairs []string) (map[string]string, error) {
	params := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid --param %q, expected name=value", pair)
		}
		params[name] = value
	}
	return params, nil
}

func init() {
	queryCmd.Flags().StringVar(&predefinedID, "id", "", "Predefined query id to run instead of freeform SQL")
	queryCmd.Flags().StringArrayVar(&queryParams, "param", nil, "Predefined query parameter as name=value (repeatable)")
	queryCmd.Flags().Bool("list", false, "List the predefined queries and exit")
}
