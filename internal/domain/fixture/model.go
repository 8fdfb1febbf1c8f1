package fixture

import (
	"errors"
	"strings"
	"time"

	"github.com/riskibarqy/flashgoal/internal/domain/league"
	"github.com/riskibarqy/flashgoal/internal/domain/lineup"
	"github.com/riskibarqy/flashgoal/internal/domain/team"
)

// StartLayout is the upstream format of starting_at.
const StartLayout = "2006-01-02 15:04:05"

const (
	defaultHomeName = "Home"
	defaultAwayName = "Away"
)

var (
	ErrMissingID       = errors.New("fixture id is required")
	ErrMissingLeagueID = errors.New("fixture league id is required")
)

// Fixture is one scheduled or played match with its optional includes.
type Fixture struct {
	ID                  int64              `json:"id"`
	Name                string             `json:"name"`
	StartingAt          string             `json:"starting_at"`
	StartingAtTimestamp *int64             `json:"starting_at_timestamp"`
	ResultInfo          *string            `json:"result_info"`
	LeagueID            int64              `json:"league_id"`
	SeasonID            int64              `json:"season_id"`
	StateID             *int64             `json:"state_id"`
	Participants        []team.Participant `json:"participants"`
	Venue               *team.Venue        `json:"venue"`
	Scores              []ScoreEntry       `json:"scores"`
	Statistics          []Statistic        `json:"statistics"`
	Lineups             []lineup.Entry     `json:"lineups"`
	Events              []Event            `json:"events"`
}

func (f Fixture) Validate() error {
	if f.ID <= 0 {
		return ErrMissingID
	}
	if f.LeagueID <= 0 {
		return ErrMissingLeagueID
	}
	return nil
}

// StartTime parses starting_at, preferring the unix timestamp when present.
func (f Fixture) StartTime(loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	if f.StartingAtTimestamp != nil && *f.StartingAtTimestamp > 0 {
		return time.Unix(*f.StartingAtTimestamp, 0).In(loc), true
	}
	value := strings.TrimSpace(f.StartingAt)
	if value == "" {
		return time.Time{}, false
	}
	parsed, err := time.ParseInLocation(StartLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return parsed.In(loc), true
}

func (f Fixture) Home() (team.Participant, bool) {
	for _, item := range f.Participants {
		if item.IsHome() {
			return item, true
		}
	}
	return team.Participant{}, false
}

func (f Fixture) Away() (team.Participant, bool) {
	for _, item := range f.Participants {
		if item.IsAway() {
			return item, true
		}
	}
	return team.Participant{}, false
}

func (f Fixture) HomeTeamID() (int64, bool) {
	home, ok := f.Home()
	return home.ID, ok
}

func (f Fixture) AwayTeamID() (int64, bool) {
	away, ok := f.Away()
	return away.ID, ok
}

func (f Fixture) HomeTeamName() string {
	if home, ok := f.Home(); ok && home.Name != "" {
		return home.Name
	}
	return defaultHomeName
}

func (f Fixture) AwayTeamName() string {
	if away, ok := f.Away(); ok && away.Name != "" {
		return away.Name
	}
	return defaultAwayName
}

// FilterByLeagues keeps the fixtures whose league is allowed, preserving order.
func FilterByLeagues(items []Fixture, allow league.AllowList) []Fixture {
	out := make([]Fixture, 0, len(items))
	for _, item := range items {
		if allow.Contains(item.LeagueID) {
			out = append(out, item)
		}
	}
	return out
}
