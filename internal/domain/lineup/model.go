package lineup

import (
	"github.com/riskibarqy/flashgoal/internal/domain/player"
	"github.com/riskibarqy/flashgoal/internal/domain/statvalue"
)

// StarterTypeID marks a lineup entry as part of the starting eleven.
const StarterTypeID int64 = 11

// Entry is one player's inclusion in a fixture.
type Entry struct {
	ID         int64          `json:"id"`
	FixtureID  int64          `json:"fixture_id"`
	TeamID     int64          `json:"team_id"`
	PlayerID   int64          `json:"player_id"`
	PlayerName string         `json:"player_name"`
	JerseyNo   *int           `json:"jersey_number"`
	Player     *player.Player `json:"player"`
	PositionID *int64         `json:"position_id"`
	TypeID     *int64         `json:"type_id"`
	Details    []Detail       `json:"details"`
}

// Detail is a per-player match statistic attached to a lineup entry.
type Detail struct {
	ID     int64             `json:"id"`
	TypeID int64             `json:"type_id"`
	Data   statvalue.Wrapped `json:"data"`
	Type   *player.StatType  `json:"type"`
}

func (e Entry) Category() Category {
	return CategoryOf(e.PositionID)
}

func (e Entry) IsStarter() bool {
	return e.TypeID != nil && *e.TypeID == StarterTypeID
}

// DisplayName prefers the embedded player and falls back to the flat name.
func (e Entry) DisplayName() string {
	if e.Player != nil && e.Player.Name != "" {
		return e.Player.Name
	}
	return e.PlayerName
}
