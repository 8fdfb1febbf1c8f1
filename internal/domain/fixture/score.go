package fixture

import "strings"

// CurrentScoreDescription marks the live or final scoreline.
const CurrentScoreDescription = "CURRENT"

type ScoreEntry struct {
	ID            int64      `json:"id"`
	TypeID        *int64     `json:"type_id"`
	ParticipantID *int64     `json:"participant_id"`
	Description   string     `json:"description"`
	Score         ScoreValue `json:"score"`
}

type ScoreValue struct {
	Goals       *int   `json:"goals"`
	Participant string `json:"participant"`
}

// Scoreline holds the current goals per side, nil when not reported.
type Scoreline struct {
	Home *int
	Away *int
}

func (s Scoreline) Known() bool {
	return s.Home != nil && s.Away != nil
}

func (f Fixture) CurrentScore() Scoreline {
	return Scoreline{
		Home: currentGoals(f.Scores, "home"),
		Away: currentGoals(f.Scores, "away"),
	}
}

func currentGoals(scores []ScoreEntry, side string) *int {
	for _, item := range scores {
		if item.Description != CurrentScoreDescription {
			continue
		}
		if !strings.EqualFold(item.Score.Participant, side) {
			continue
		}
		return item.Score.Goals
	}
	return nil
}
