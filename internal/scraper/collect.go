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
package scraper

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/ballparkdata/almanac/internal/dataset"
)

// Collect runs a full collection pass: scrapes the American League standings
// for the year range and writes each dataset as a CSV file under dataDir,
// ready for import. It returns the number of files written.
func Collect(ctx context.Context, client *Client, dataDir string, startYear, endYear int) (int, error) {
	if startYear > endYear {
		return 0, fmt.Errorf("start year %d is after end year %d", startYear, endYear)
	}

	standings, err := client.StandingsDataset(ctx, startYear, endYear)
	if err != nil {
		return 0, fmt.Errorf("failed to scrape team standings: %w", err)
	}

	datasets := []dataset.Dataset{
		standings,
		ChampionsDataset(),
		MVPWinnersDataset(),
	}
	for i, ds := range datasets {
		path := filepath.Join(dataDir, ds.Name+".csv")
		if err := dataset.WriteCSVFile(ds, path); err != nil {
			return i, fmt.Errorf("failed to write %s: %w", path, err)
		}
		log.Printf("INFO: Saved %d records to %s", len(ds.Rows), path)
	}
	return len(datasets), nil
}
