package leaguestanding

import (
	"github.com/riskibarqy/flashgoal/internal/domain/statvalue"
	"github.com/riskibarqy/flashgoal/internal/domain/team"
)

// Detail type ids of the overall table columns.
const (
	TypePlayed         int64 = 129
	TypeWon            int64 = 130
	TypeDrawn          int64 = 131
	TypeLost           int64 = 132
	TypeGoalsFor       int64 = 133
	TypeGoalsAgainst   int64 = 134
	TypeGoalDifference int64 = 179
)

// Standing is one table row for a season.
type Standing struct {
	ID            int64             `json:"id"`
	ParticipantID int64             `json:"participant_id"`
	LeagueID      int64             `json:"league_id"`
	SeasonID      int64             `json:"season_id"`
	StageID       *int64            `json:"stage_id"`
	GroupID       *int64            `json:"group_id"`
	Position      int               `json:"position"`
	Result        string            `json:"result"`
	Points        int               `json:"points"`
	Details       []Detail          `json:"details"`
	Participant   *team.Participant `json:"participant"`
}

// Detail is one typed metric of a standing row.
type Detail struct {
	ID          int64           `json:"id"`
	TypeID      int64           `json:"type_id"`
	Value       statvalue.Value `json:"value"`
	Description string          `json:"description"`
	Type        *DetailType     `json:"type"`
}

type DetailType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// Columns is the played/won/drawn/lost view of a row.
type Columns struct {
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
}

// Detail returns the integer value of the first detail with typeID, 0 if absent.
func (s Standing) Detail(typeID int64) int {
	for _, item := range s.Details {
		if item.TypeID == typeID {
			return int(item.Value.Float64())
		}
	}
	return 0
}

func (s Standing) Columns() Columns {
	return Columns{
		Played:         s.Detail(TypePlayed),
		Won:            s.Detail(TypeWon),
		Drawn:          s.Detail(TypeDrawn),
		Lost:           s.Detail(TypeLost),
		GoalsFor:       s.Detail(TypeGoalsFor),
		GoalsAgainst:   s.Detail(TypeGoalsAgainst),
		GoalDifference: s.Detail(TypeGoalDifference),
	}
}

func (s Standing) TeamName() string {
	if s.Participant == nil {
		return ""
	}
	return s.Participant.Name
}
