package player

import (
	"github.com/riskibarqy/flashgoal/internal/domain/statvalue"
	"github.com/riskibarqy/flashgoal/internal/domain/team"
)

// SportMonks statistic type ids used on the player profile.
const (
	StatGoals       int64 = 52
	StatAssists     int64 = 79
	StatAppearances int64 = 321
)

// Player is the minimal player reference returned by search and embedded in
// lineups and events.
type Player struct {
	ID         int64  `json:"id"`
	Name       string `json:"display_name"`
	CommonName string `json:"common_name"`
	ImagePath  string `json:"image_path"`
}

// Detail is a full player profile.
type Detail struct {
	ID          int64         `json:"id"`
	Name        string        `json:"display_name"`
	CommonName  string        `json:"common_name"`
	ImagePath   string        `json:"image_path"`
	DateOfBirth string        `json:"date_of_birth"`
	Height      *int          `json:"height"`
	Weight      *int          `json:"weight"`
	Nationality *Country      `json:"nationality"`
	Position    *Position     `json:"position"`
	Statistics  []SeasonStats `json:"statistics"`
	Teams       []TeamHistory `json:"teams"`
}

type Country struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ImagePath string `json:"image_path"`
}

type Position struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// SeasonStats holds one season's aggregated statistics for a player.
type SeasonStats struct {
	ID       int64        `json:"id"`
	SeasonID int64        `json:"season_id"`
	TeamID   int64        `json:"team_id"`
	Details  []StatDetail `json:"details"`
}

// StatDetail is one typed value. The value arrives as a number or as an
// object with a total, see statvalue.Decode.
type StatDetail struct {
	ID     int64           `json:"id"`
	TypeID int64           `json:"type_id"`
	Value  statvalue.Value `json:"value"`
	Type   *StatType       `json:"type"`
}

type StatType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// TeamHistory is one tenure at a club. A nil End means the tenure is current.
type TeamHistory struct {
	ID     int64       `json:"id"`
	TeamID int64       `json:"team_id"`
	Team   *team.Short `json:"team"`
	Start  *string     `json:"start"`
	End    *string     `json:"end"`
}
