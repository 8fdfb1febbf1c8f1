package httpapi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riskibarqy/flashgoal/internal/domain/fixture"
	"github.com/riskibarqy/flashgoal/internal/domain/leaguestanding"
	"github.com/riskibarqy/flashgoal/internal/domain/team"
)

func TestStandingToDTO_TeamName(t *testing.T) {
	withTeam := standingToDTO(leaguestanding.Standing{
		ParticipantID: 53,
		Position:      1,
		Participant:   &team.Participant{ID: 53, Name: "Celtic", ShortCode: "CEL"},
	})
	assert.Equal(t, teamDTO{ID: 53, Name: "Celtic", ShortCode: "CEL"}, withTeam.Team)

	withoutTeam := standingToDTO(leaguestanding.Standing{ParticipantID: 62, Position: 2})
	assert.Equal(t, teamDTO{ID: 62}, withoutTeam.Team)
}

func TestEventToDTO_CardColourOnlyForCards(t *testing.T) {
	home := int64(53)

	card := eventToDTO(fixture.Event{ParticipantID: &home, Type: &fixture.EventType{Name: "Yellowcard"}}, 53, 62)
	assert.Equal(t, "card", card.Category)
	assert.Equal(t, "yellow", card.CardColour)
	assert.Equal(t, team.LocationHome, card.Side)

	other := eventToDTO(fixture.Event{Type: &fixture.EventType{Name: "Shot Red Zone"}}, 53, 62)
	assert.Equal(t, "other", other.Category)
	assert.Empty(t, other.CardColour)
	assert.Empty(t, other.Side)
}
