package lineup

import "sort"

// Group is one position bucket of a team sheet.
type Group struct {
	Category Category
	Entries  []Entry
}

// ForTeam keeps the entries of one team, preserving order.
func ForTeam(entries []Entry, teamID int64) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, item := range entries {
		if item.TeamID == teamID {
			out = append(out, item)
		}
	}
	return out
}

// SplitStarters separates the starting eleven from the bench.
func SplitStarters(entries []Entry) (starters, bench []Entry) {
	for _, item := range entries {
		if item.IsStarter() {
			starters = append(starters, item)
			continue
		}
		bench = append(bench, item)
	}
	return starters, bench
}

// GroupByPosition partitions entries into position buckets in pitch order.
// Empty buckets are omitted and input order is kept inside a bucket.
func GroupByPosition(entries []Entry) []Group {
	buckets := make(map[Category][]Entry, len(Categories))
	for _, item := range entries {
		category := item.Category()
		buckets[category] = append(buckets[category], item)
	}

	out := make([]Group, 0, len(buckets))
	for _, category := range Categories {
		if len(buckets[category]) == 0 {
			continue
		}
		out = append(out, Group{Category: category, Entries: buckets[category]})
	}
	return out
}

// Formation lays the starters out as pitch rows, attackers first and the
// goalkeeper last. Each row is ordered by entry id.
func Formation(starters []Entry) [][]Entry {
	rows := make([][]Entry, 0, len(Categories))
	for i := len(Categories) - 1; i >= 0; i-- {
		row := make([]Entry, 0)
		for _, item := range starters {
			if item.Category() == Categories[i] {
				row = append(row, item)
			}
		}
		sort.SliceStable(row, func(a, b int) bool { return row[a].ID < row[b].ID })
		rows = append(rows, row)
	}
	return rows
}

// Matchup pairs the first home and away player of a category.
type Matchup struct {
	Category Category
	Home     *Entry
	Away     *Entry
}

var matchupCategories = []Category{Goalkeeper, Attacker, Defender}

// KeyMatchups returns one matchup per category where either side has a player.
func KeyMatchups(entries []Entry, homeTeamID, awayTeamID int64) []Matchup {
	out := make([]Matchup, 0, len(matchupCategories))
	for _, category := range matchupCategories {
		home := firstOf(entries, homeTeamID, category)
		away := firstOf(entries, awayTeamID, category)
		if home == nil && away == nil {
			continue
		}
		out = append(out, Matchup{Category: category, Home: home, Away: away})
	}
	return out
}

func firstOf(entries []Entry, teamID int64, category Category) *Entry {
	for i := range entries {
		if entries[i].TeamID == teamID && entries[i].Category() == category {
			item := entries[i]
			return &item
		}
	}
	return nil
}
