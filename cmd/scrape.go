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

	"github.com/ballparkdata/almanac/internal/scraper"
	"github.com/spf13/cobra"
)

var (
	scrapeStartYear int
	scrapeEndYear   int
	scrapeBaseURL   string
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape historical statistics and write them as CSV files",
	Long:  `Scrapes American League team standings from Baseball Almanac for the requested year range and writes them, along with the World Series champion and AL MVP reference tables, as CSV files in the data directory.`,
	Example: `./almanacdb scrape
./almanacdb scrape --start-year 1990 --end-year 2000`,
	RunE: runScrape,
}

func runScrape(cmd *cobra.Command, args []string) error {
	client := scraper.NewClient(scrapeBaseURL)
	written, err := scraper.Collect(cmd.Context(), client, cfg.DataDir, scrapeStartYear, scrapeEndYear)
	if err != nil {
		return err
	}
	fmt.Printf("Scrape complete! %d CSV file(s) written to %s.\n", written, cfg.DataDir)
	return nil
}

func init() {
	scrapeCmd.Flags().IntVar(&scrapeStartYear, "start-year", 1975, "First season to scrape")
	scrapeCmd.Flags().IntVar(&scrapeEndYear, "end-year", 2025, "Last season to scrape")
	scrapeCmd.Flags().StringVar(&scrapeBaseURL, "base-url", scraper.DefaultBaseURL, "Base URL of the almanac site")
}
