package player

import (
	"sort"
	"strings"
	"time"
)

const (
	historyDateLayout    = "2006-01-02"
	historyDisplayLayout = "Jan 2006"
	presentLabel         = "Present"
)

// Stat returns the value of the detail with the given type id.
func (s SeasonStats) Stat(typeID int64) (float64, bool) {
	return lookupStat(s.Details, typeID)
}

func lookupStat(details []StatDetail, typeID int64) (float64, bool) {
	for _, item := range details {
		if item.TypeID == typeID {
			return item.Value.Float64(), true
		}
	}
	return 0, false
}

// BestSeason picks the season with the most appearances. It is a proxy for
// the most relevant season, the API has no current flag on these rows.
// Ties keep the earliest entry.
func BestSeason(stats []SeasonStats) (SeasonStats, bool) {
	if len(stats) == 0 {
		return SeasonStats{}, false
	}
	best := 0
	bestApps, _ := stats[0].Stat(StatAppearances)
	for i := 1; i < len(stats); i++ {
		apps, _ := stats[i].Stat(StatAppearances)
		if apps > bestApps {
			best = i
			bestApps = apps
		}
	}
	return stats[best], true
}

// Headline is the goals/assists/appearances summary shown on a profile.
type Headline struct {
	SeasonID    int64
	Goals       *int
	Assists     *int
	Appearances *int
}

func (d Detail) Headline() (Headline, bool) {
	season, ok := BestSeason(d.Statistics)
	if !ok {
		return Headline{}, false
	}
	return Headline{
		SeasonID:    season.SeasonID,
		Goals:       statPtr(season, StatGoals),
		Assists:     statPtr(season, StatAssists),
		Appearances: statPtr(season, StatAppearances),
	}, true
}

func statPtr(season SeasonStats, typeID int64) *int {
	value, ok := season.Stat(typeID)
	if !ok {
		return nil
	}
	out := int(value)
	return &out
}

// CareerHistory returns the tenures sorted by start date, newest first.
func (d Detail) CareerHistory() []TeamHistory {
	out := make([]TeamHistory, len(d.Teams))
	copy(out, d.Teams)
	sort.SliceStable(out, func(i, j int) bool {
		return derefString(out[i].Start) > derefString(out[j].Start)
	})
	return out
}

func (h TeamHistory) IsCurrent() bool {
	return h.End == nil
}

// FormattedPeriod renders "Jan 2020 - Present" style ranges.
func (h TeamHistory) FormattedPeriod() string {
	start := formatHistoryDate(h.Start)
	end := presentLabel
	if h.End != nil {
		end = formatHistoryDate(h.End)
	}
	return start + " - " + end
}

func formatHistoryDate(raw *string) string {
	if raw == nil {
		return ""
	}
	value := strings.TrimSpace(*raw)
	parsed, err := time.Parse(historyDateLayout, value)
	if err != nil {
		return value
	}
	return parsed.Format(historyDisplayLayout)
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
