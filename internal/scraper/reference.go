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
	"strconv"

	"github.com/ballparkdata/almanac/internal/dataset"
)

// The champion and MVP tables are curated rather than scraped: the almanac
// spreads them across per-year pages, and the set is small and append-only.

type champion struct {
	year   int
	team   string
	league string
}

var worldSeriesChampions = []champion{
	{1975, "Cincinnati Reds", "NL"},
	{1976, "Cincinnati Reds", "NL"},
	{1977, "New York Yankees", "AL"},
	{1978, "New York Yankees", "AL"},
	{1979, "Pittsburgh Pirates", "NL"},
	{1980, "Philadelphia Phillies", "NL"},
	{1981, "Los Angeles Dodgers", "NL"},
	{1982, "St. Louis Cardinals", "NL"},
	{1983, "Baltimore Orioles", "AL"},
	{1984, "Detroit Tigers", "AL"},
	{1985, "Kansas City Royals", "AL"},
	{1986, "New York Mets", "NL"},
	{1987, "Minnesota Twins", "AL"},
	{1988, "Los Angeles Dodgers", "NL"},
	{1989, "Oakland Athletics", "AL"},
	{1990, "Cincinnati Reds", "NL"},
	{1991, "Minnesota Twins", "AL"},
	{1992, "Toronto Blue Jays", "AL"},
	{1993, "Toronto Blue Jays", "AL"},
	{1994, "No World Series", "Strike"},
	{1995, "Atlanta Braves", "NL"},
	{1996, "New York Yankees", "AL"},
	{1997, "Florida Marlins", "NL"},
	{1998, "New York Yankees", "AL"},
	{1999, "New York Yankees", "AL"},
	{2000, "New York Yankees", "AL"},
	{2001, "Arizona Diamondbacks", "NL"},
	{2002, "Anaheim Angels", "AL"},
	{2003, "Florida Marlins", "NL"},
	{2004, "Boston Red Sox", "AL"},
	{2005, "Chicago White Sox", "AL"},
	{2006, "St. Louis Cardinals", "NL"},
	{2007, "Boston Red Sox", "AL"},
	{2008, "Philadelphia Phillies", "NL"},
	{2009, "New York Yankees", "AL"},
	{2010, "San Francisco Giants", "NL"},
	{2011, "St. Louis Cardinals", "NL"},
	{2012, "San Francisco Giants", "NL"},
	{2013, "Boston Red Sox", "AL"},
	{2014, "San Francisco Giants", "NL"},
	{2015, "Kansas City Royals", "AL"},
	{2016, "Chicago Cubs", "NL"},
	{2017, "Houston Astros", "AL"},
	{2018, "Boston Red Sox", "AL"},
	{2019, "Washington Nationals", "NL"},
	{2020, "Los Angeles Dodgers", "NL"},
	{2021, "Atlanta Braves", "NL"},
	{2022, "Houston Astros", "AL"},
	{2023, "Texas Rangers", "AL"},
	{2024, "Los Angeles Dodgers", "NL"},
	{2025, "TBD", "TBD"},
}

type mvpWinner struct {
	year     int
	player   string
	team     string
	position string
}

var alMVPWinners = []mvpWinner{
	{1975, "Fred Lynn", "Boston Red Sox", "OF"},
	{1976, "Thurman Munson", "New York Yankees", "C"},
	{1977, "Rod Carew", "Minnesota Twins", "1B"},
	{1978, "Jim Rice", "Boston Red Sox", "OF"},
	{1979, "Don Baylor", "California Angels", "DH"},
	{1980, "George Brett", "Kansas City Royals", "3B"},
	{1981, "Rollie Fingers", "Milwaukee Brewers", "P"},
	{1982, "Robin Yount", "Milwaukee Brewers", "SS"},
	{1983, "Cal Ripken Jr.", "Baltimore Orioles", "SS"},
	{1984, "Willie Hernandez", "Detroit Tigers", "P"},
	{1985, "Don Mattingly", "New York Yankees", "1B"},
	{1986, "Roger Clemens", "Boston Red Sox", "P"},
	{1987, "George Bell", "Toronto Blue Jays", "OF"},
	{1988, "Jose Canseco", "Oakland Athletics", "OF"},
	{1989, "Robin Yount", "Milwaukee Brewers", "OF"},
	{1990, "Rickey Henderson", "Oakland Athletics", "OF"},
	{1991, "Cal Ripken Jr.", "Baltimore Orioles", "SS"},
	{1992, "Dennis Eckersley", "Oakland Athletics", "P"},
	{1993, "Frank Thomas", "Chicago White Sox", "1B"},
	{1994, "Frank Thomas", "Chicago White Sox", "1B"},
	{1995, "Mo Vaughn", "Boston Red Sox", "1B"},
	{1996, "Juan Gonzalez", "Texas Rangers", "OF"},
	{1997, "Ken Griffey Jr.", "Seattle Mariners", "OF"},
	{1998, "Juan Gonzalez", "Texas Rangers", "OF"},
	{1999, "Ivan Rodriguez", "Texas Rangers", "C"},
	{2000, "Jason Giambi", "Oakland Athletics", "1B"},
	{2001, "Ichiro Suzuki", "Seattle Mariners", "OF"},
	{2002, "Miguel Tejada", "Oakland Athletics", "SS"},
	{2003, "Alex Rodriguez", "Texas Rangers", "SS"},
	{2004, "Vladimir Guerrero", "Anaheim Angels", "OF"},
	{2005, "Alex Rodriguez", "New York Yankees", "3B"},
	{2006, "Justin Morneau", "Minnesota Twins", "1B"},
	{2007, "Alex Rodriguez", "New York Yankees", "3B"},
	{2008, "Dustin Pedroia", "Boston Red Sox", "2B"},
	{2009, "Joe Mauer", "Minnesota Twins", "C"},
	{2010, "Josh Hamilton", "Texas Rangers", "OF"},
	{2011, "Justin Verlander", "Detroit Tigers", "P"},
	{2012, "Miguel Cabrera", "Detroit Tigers", "3B"},
	{2013, "Miguel Cabrera", "Detroit Tigers", "1B"},
	{2014, "Mike Trout", "Los Angeles Angels", "OF"},
	{2015, "Josh Donaldson", "Toronto Blue Jays", "3B"},
	{2016, "Mike Trout", "Los Angeles Angels", "OF"},
	{2017, "Jose Altuve", "Houston Astros", "2B"},
	{2018, "Mookie Betts", "Boston Red Sox", "OF"},
	{2019, "Mike Trout", "Los Angeles Angels", "OF"},
	{2020, "Jose Abreu", "Chicago White Sox", "1B"},
	{2021, "Shohei Ohtani", "Los Angeles Angels", "DH/P"},
	{2022, "Aaron Judge", "New York Yankees", "OF"},
	{2023, "Corey Seager", "Texas Rangers", "SS"},
	{2024, "Aaron Judge", "New York Yankees", "OF"},
	{2025, "TBD", "TBD", "TBD"},
}

// ChampionsDataset returns the World Series champions table.
func ChampionsDataset() dataset.Dataset {
	rows := make([][]string, 0, len(worldSeriesChampions))
	for _, c := range worldSeriesChampions {
		rows = append(rows, []string{strconv.Itoa(c.year), c.team, c.league})
	}
	return dataset.New("world_series_champions", []string{"Year", "World Series Champion", "League"}, rows)
}

// MVPWinnersDataset returns the American League MVP table.
func MVPWinnersDataset() dataset.Dataset {
	rows := make([][]string, 0, len(alMVPWinners))
	for _, m := range alMVPWinners {
		rows = append(rows, []string{strconv.Itoa(m.year), m.player, m.team, m.position})
	}
	return dataset.New("al_mvp_winners", []string{"Year", "AL MVP Winner", "Team", "Position"}, rows)
}
