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

	"github.com/ballparkdata/almanac/internal/queryservice"
	"github.com/ballparkdata/almanac/internal/utils"
	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:     "tables",
	Short:   "List the tables in the statistics database",
	Long:    `Lists every user table in the database along with its columns and their declared types.`,
	Example: `./almanacdb tables`,
	RunE:    runTables,
}

func runTables(cmd *cobra.Command, args []string) error {
	db, err := setupDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	service := queryservice.NewService(db)
	tables, err := service.ListTables(cmd.Context())
	if err != nil {
		return err
	}
	if len(tables) == 0 {
		fmt.Println("No tables found. Run the import command first.")
		return nil
	}
	utils.RenderTables(os.Stdout, tables)
	return nil
}
