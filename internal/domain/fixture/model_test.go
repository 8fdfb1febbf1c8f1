package fixture

import (
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/flashgoal/internal/domain/league"
	"github.com/riskibarqy/flashgoal/internal/domain/statvalue"
)

func id(v int64) *int64 { return &v }

func intPtr(v int) *int { return &v }

const fixturePayload = `{
	"id": 19134453,
	"name": "Celtic vs Rangers",
	"starting_at": "2025-03-01 12:30:00",
	"result_info": "Celtic won after full-time.",
	"league_id": 501,
	"participants": [
		{"id": 62, "name": "Rangers", "meta": {"location": "away"}},
		{"id": 53, "name": "Celtic", "meta": {"location": "home"}}
	],
	"scores": [
		{"id": 1, "description": "1ST_HALF", "score": {"goals": 1, "participant": "home"}},
		{"id": 2, "description": "CURRENT", "score": {"goals": 3, "participant": "home"}},
		{"id": 3, "description": "CURRENT", "score": {"goals": 2, "participant": "away"}}
	],
	"statistics": [
		{"type_id": 45, "participant_id": 62, "type": {"name": "Ball Possession %"}, "data": {"value": 41.5}},
		{"type_id": 45, "participant_id": 53, "type": {"name": "Ball Possession %"}, "data": {"value": 58.5}},
		{"type_id": 42, "entity_id": 53, "type": {"code": "shots-total"}, "data": {"value": 17}},
		{"type_id": 99, "type": {}, "data": {"value": 1}}
	]
}`

func TestFixture_DecodeAndHelpers(t *testing.T) {
	t.Parallel()

	var first, second Fixture
	require.NoError(t, sonic.Unmarshal([]byte(fixturePayload), &first))
	require.NoError(t, sonic.Unmarshal([]byte(fixturePayload), &second))
	assert.Equal(t, first, second)

	require.NoError(t, first.Validate())
	assert.Equal(t, "Celtic", first.HomeTeamName())
	assert.Equal(t, "Rangers", first.AwayTeamName())

	score := first.CurrentScore()
	require.True(t, score.Known())
	assert.Equal(t, 3, *score.Home)
	assert.Equal(t, 2, *score.Away)

	start, ok := first.StartTime(time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC), start)

	pairs := first.PairStatistics()
	require.Len(t, pairs, 2)
	assert.Equal(t, StatPair{Name: "Ball Possession %", Home: 58.5, Away: 41.5}, pairs[0])
	assert.Equal(t, StatPair{Name: "shots-total", Home: 17, Away: 0}, pairs[1])
}

func TestFixture_DefaultsWithoutParticipants(t *testing.T) {
	t.Parallel()

	item := Fixture{ID: 1}
	assert.Equal(t, "Home", item.HomeTeamName())
	assert.Equal(t, "Away", item.AwayTeamName())
	assert.False(t, item.CurrentScore().Known())
	assert.ErrorIs(t, item.Validate(), ErrMissingLeagueID)
	assert.ErrorIs(t, Fixture{LeagueID: 501}.Validate(), ErrMissingID)
}

func TestPairStatistics_PositionalFallback(t *testing.T) {
	t.Parallel()

	stats := []Statistic{
		{TypeID: 84, Type: &StatType{Name: "Yellowcards"}, Data: wrapped(2)},
		{TypeID: 84, Type: &StatType{Name: "Yellowcards"}, Data: wrapped(4)},
	}
	pairs := PairStatistics(stats, 53, 62)
	require.Len(t, pairs, 1)
	assert.Equal(t, 2.0, pairs[0].Home)
	assert.Equal(t, 4.0, pairs[0].Away)

	item := Fixture{Statistics: stats}
	pairs = item.PairStatistics()
	require.Len(t, pairs, 1)
	assert.Equal(t, 2.0, pairs[0].Home)
}

func TestPairStatistics_SumMatchesMatchedEntries(t *testing.T) {
	t.Parallel()

	stats := []Statistic{
		{EntityID: id(62), Type: &StatType{Name: "Corners"}, Data: wrapped(3)},
		{EntityID: id(53), Type: &StatType{Name: "Corners"}, Data: wrapped(8)},
	}
	pairs := PairStatistics(stats, 53, 62)
	require.Len(t, pairs, 1)
	assert.Equal(t, 11.0, pairs[0].Home+pairs[0].Away)
	assert.Equal(t, 8.0, pairs[0].Home)
}

func wrapped(v float64) statvalue.Wrapped {
	return statvalue.Wrapped{Value: statvalue.Value(v)}
}

func TestStatistic_TeamID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(5), Statistic{EntityID: id(5), ParticipantID: id(6)}.TeamID())
	assert.Equal(t, int64(6), Statistic{ParticipantID: id(6)}.TeamID())
	assert.Equal(t, int64(0), Statistic{}.TeamID())
}

func TestFilterByLeagues(t *testing.T) {
	t.Parallel()

	allow := league.DefaultAllowList()
	tests := []struct {
		name  string
		input []Fixture
		want  []int64
	}{
		{name: "empty", input: nil, want: []int64{}},
		{name: "all excluded", input: []Fixture{{ID: 1, LeagueID: 999}, {ID: 2, LeagueID: 8}}, want: []int64{}},
		{
			name:  "mixed keeps order",
			input: []Fixture{{ID: 1, LeagueID: 271}, {ID: 2, LeagueID: 999}, {ID: 3, LeagueID: 501}, {ID: 4, LeagueID: 271}},
			want:  []int64{1, 3, 4},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := FilterByLeagues(tc.input, allow)
			ids := make([]int64, 0, len(got))
			for _, item := range got {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestEvent_Derivations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		event     Event
		time      string
		important bool
		category  EventCategory
		colour    CardColour
	}{
		{name: "goal", event: Event{Minute: intPtr(23), Type: &EventType{Name: "Goal"}}, time: "23'", important: true, category: EventGoal},
		{name: "stoppage penalty", event: Event{Minute: intPtr(90), ExtraMinute: intPtr(4), Type: &EventType{Name: "Penalty"}}, time: "90+4'", important: true, category: EventGoal},
		{name: "yellow card", event: Event{Minute: intPtr(55), ExtraMinute: intPtr(0), Type: &EventType{Name: "Yellowcard"}}, time: "55'", important: true, category: EventCard, colour: CardYellow},
		{name: "red card", event: Event{Minute: intPtr(70), Type: &EventType{Name: "Redcard"}}, time: "70'", important: true, category: EventCard, colour: CardRed},
		{name: "substitution", event: Event{Minute: intPtr(60), Type: &EventType{Name: "Substitution"}}, time: "60'", important: true, category: EventSubstitution},
		{name: "var check", event: Event{Type: &EventType{Name: "VAR"}}, time: "0'", category: EventOther},
		{name: "no type", event: Event{Minute: intPtr(1)}, time: "1'", category: EventOther},
		{name: "non card named red", event: Event{Minute: intPtr(12), Type: &EventType{Name: "Shot Red Zone"}}, time: "12'", category: EventOther},
		{name: "penalty after yellow", event: Event{Minute: intPtr(40), Type: &EventType{Name: "Penalty Yellow Team"}}, time: "40'", important: true, category: EventGoal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.time, tc.event.DisplayTime())
			assert.Equal(t, tc.important, tc.event.IsImportant())
			assert.Equal(t, tc.category, tc.event.Category())
			assert.Equal(t, tc.colour, tc.event.CardColour())
		})
	}

	item := Fixture{Events: []Event{tests[0].event, tests[5].event, tests[2].event}}
	assert.Len(t, item.ImportantEvents(), 2)
}
