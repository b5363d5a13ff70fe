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
	"bytes"
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/ballparkdata/almanac/internal/dataset"
)

const DefaultBaseURL = "https://www.baseball-almanac.com"

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// StandingsHeaders is the column layout of the scraped standings dataset.
var StandingsHeaders = []string{"Year", "Division", "Team", "Wins", "Losses", "Ties", "WP", "GB", "Payroll"}

// YearLink points at one American League season page.
type YearLink struct {
	Year int
	URL  string
}

// Client fetches and parses baseball-almanac.com stat pages.
type Client struct {
	http  *resty.Client
	retry RetryOptions
}

func NewClient(baseURL string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("User-Agent", userAgent)
	return &Client{
		http:  httpClient,
		retry: DefaultRetryOptions,
	}
}

// fetchDocument retrieves url and parses it, retrying transport failures with
// backoff.
func (c *Client) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	return withRetry(ctx, c.retry, func(ctx context.Context) (*goquery.Document, error) {
		resp, err := c.http.R().SetContext(ctx).Get(url)
		if err != nil {
			return nil, &ErrFetch{URL: url, Err: err}
		}
		if resp.StatusCode() != 200 {
			return nil, &ErrFetch{URL: url, Err: fmt.Errorf("unexpected status %d", resp.StatusCode())}
		}
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
		if err != nil {
			return nil, &ErrParse{URL: url, Msg: err.Error()}
		}
		return doc, nil
	})
}

// YearLinks collects the American League season links from the year menu
// page, restricted to [startYear, endYear]. The American League section is
// the first stat-table block on the page; its season links are 4-digit years
// pointing at yr<year>a.shtml pages.
func (c *Client) YearLinks(ctx context.Context, startYear, endYear int) ([]YearLink, error) {
	doc, err := c.fetchDocument(ctx, "/yearmenu.shtml")
	if err != nil {
		return nil, err
	}

	section := doc.Find("div.ba-table").First()
	if section.Length() == 0 {
		return nil, &ErrParse{URL: "/yearmenu.shtml", Msg: "could not find American League section"}
	}

	var links []YearLink
	section.Find("a").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		href, exists := s.Attr("href")
		if !exists || len(text) != 4 {
			return
		}
		year, err := strconv.Atoi(text)
		if err != nil {
			return
		}
		if !strings.Contains(href, "yr") || !strings.HasSuffix(href, "a.shtml") {
			return
		}
		if year >= startYear && year <= endYear {
			links = append(links, YearLink{Year: year, URL: href})
		}
	})

	sort.Slice(links, func(i, j int) bool { return links[i].Year < links[j].Year })
	log.Printf("INFO: Found %d American League year links from %d to %d", len(links), startYear, endYear)
	return links, nil
}

// StandingsForYear extracts the team standings rows from one season page.
// National League pages and pages without a standings table yield no rows;
// the caller decides whether to skip or fail.
func (c *Client) StandingsForYear(ctx context.Context, link YearLink) ([][]string, error) {
	doc, err := c.fetchDocument(ctx, link.URL)
	if err != nil {
		return nil, err
	}

	if strings.Contains(doc.Find("title").Text(), "National League") {
		log.Printf("INFO: Detected National League page for %d, skipping...", link.Year)
		return nil, nil
	}

	var table *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, t *goquery.Selection) bool {
		firstRow := t.Find("tr").First()
		if strings.Contains(firstRow.Text(), "Team Standings") {
			table = t
			return false
		}
		return true
	})
	if table == nil {
		return nil, &ErrParse{URL: link.URL, Msg: fmt.Sprintf("could not find team standings table for %d", link.Year)}
	}

	var rows [][]string
	currentDivision := ""
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(td.Text()))
		})
		if len(cells) == 0 {
			return
		}
		switch cells[0] {
		case "East", "Central", "West":
			currentDivision = cells[0]
			return
		}
		if strings.Contains(cells[0], "Team [Click for roster]") {
			return
		}
		if len(cells) == 7 && currentDivision != "" {
			rows = append(rows, []string{
				strconv.Itoa(link.Year),
				currentDivision,
				cells[0],
				normalizeNumber(cells[1]),
				normalizeNumber(cells[2]),
				normalizeNumber(cells[3]),
				normalizeNumber(cells[4]),
				normalizeNumber(cells[5]),
				normalizeNumber(cells[6]),
			})
		}
	})

	log.Printf("INFO: Extracted %d team records for %d", len(rows), link.Year)
	return rows, nil
}

// StandingsDataset scrapes standings for every American League season in the
// range into one dataset. Seasons that fail to parse are skipped with a
// warning, matching the page-by-page tolerance of the collection run.
func (c *Client) StandingsDataset(ctx context.Context, startYear, endYear int) (dataset.Dataset, error) {
	links, err := c.YearLinks(ctx, startYear, endYear)
	if err != nil {
		return dataset.Dataset{}, err
	}
	if len(links) == 0 {
		return dataset.Dataset{}, &ErrParse{URL: "/yearmenu.shtml", Msg: "no year links found"}
	}

	var rows [][]string
	for _, link := range links {
		yearRows, err := c.StandingsForYear(ctx, link)
		if err != nil {
			if _, cancelled := err.(*ErrCancelled); cancelled {
				return dataset.Dataset{}, err
			}
			log.Printf("WARN: No standings data for %d: %v", link.Year, err)
			continue
		}
		rows = append(rows, yearRows...)
	}

	return dataset.New("team_standings", StandingsHeaders, rows), nil
}

// normalizeNumber strips currency formatting and placeholder dashes so the
// importer can infer numeric types, and folds the half-game glyph used in
// games-behind columns.
func normalizeNumber(s string) string {
	s = strings.TrimSpace(s)
	switch s {
	case "-", "--", "—", "":
		return ""
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "½", ".5")
	return strings.TrimSpace(s)
}
