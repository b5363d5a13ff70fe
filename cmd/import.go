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

	"github.com/ballparkdata/almanac/internal/dataset"
	"github.com/ballparkdata/almanac/internal/importer"
	"github.com/spf13/cobra"
)

var importName string

var importCmd = &cobra.Command{
	Use:     "import [file.csv]",
	Short:   "Import CSV files into the statistics database",
	Long:    `Imports every CSV file in the data directory, or a single named file, into the database. Each file becomes its own table; re-importing replaces the table in full.`,
	Example: `./almanacdb import
./almanacdb import data/world_series_champions.csv --name world_series_champions`,
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	db, err := setupDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := cmd.Context()

	if len(args) == 0 {
		log.Println("INFO: Starting import from", cfg.DataDir)
		imported, err := importer.ImportDir(ctx, db, cfg.DataDir)
		if err != nil {
			return err
		}
		fmt.Printf("Database import complete! %d table(s) imported.\n", imported)
		return nil
	}

	ds, err := dataset.ReadCSVFile(args[0])
	if err != nil {
		return err
	}
	if importName != "" {
		ds.Name = importName
	}

	handle, err := importer.NormalizeAndLoad(ctx, db, ds)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d records from %s to table %s\n", len(ds.Rows), args[0], handle.Name)

	fmt.Printf("Table structure for %s:\n", handle.Name)
	for _, col := range handle.Columns {
		fmt.Printf("  %s (%s)\n", col.Name, col.DataType)
	}
	return nil
}

func init() {
	importCmd.Flags().StringVar(&importName, "name", "", "Override the dataset name derived from the file name")
}
