// Package seasons holds the fixed season list and the season-to-champion
// lookup. Both are immutable after process start; accessors return copies so
// callers can never mutate the canonical tables.
package seasons

// Covered range: the ten seasons of the modern three-point era tracked by
// the dashboard, oldest first.
var list = [...]string{
	"2014-15", "2015-16", "2016-17", "2017-18", "2018-19",
	"2019-20", "2020-21", "2021-22", "2022-23", "2023-24",
}

var champions = map[string]string{
	"2014-15": "Golden State Warriors",
	"2015-16": "Cleveland Cavaliers",
	"2016-17": "Golden State Warriors",
	"2017-18": "Golden State Warriors",
	"2018-19": "Toronto Raptors",
	"2019-20": "Los Angeles Lakers",
	"2020-21": "Milwaukee Bucks",
	"2021-22": "Golden State Warriors",
	"2022-23": "Denver Nuggets",
	"2023-24": "Boston Celtics",
}

// All returns the season identifiers in chronological order.
func All() []string {
	out := make([]string, len(list))
	copy(out, list[:])
	return out
}

// Latest returns the most recent season in the fixed set.
func Latest() string {
	return list[len(list)-1]
}

// Valid reports whether s is one of the tracked seasons.
func Valid(s string) bool {
	for _, season := range list {
		if season == s {
			return true
		}
	}
	return false
}

// Champions returns a copy of the full season-to-champion lookup.
func Champions() map[string]string {
	out := make(map[string]string, len(champions))
	for season, team := range champions {
		out[season] = team
	}
	return out
}
