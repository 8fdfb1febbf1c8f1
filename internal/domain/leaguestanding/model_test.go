package leaguestanding

import (
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStanding_Columns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		want    Columns
	}{
		{
			name: "full row",
			payload: `{"id":1,"participant_id":53,"position":1,"points":70,"details":[
				{"type_id":129,"value":28},{"type_id":130,"value":22},{"type_id":131,"value":4},
				{"type_id":132,"value":2},{"type_id":133,"value":70},{"type_id":134,"value":18},{"type_id":179,"value":52}]}`,
			want: Columns{Played: 28, Won: 22, Drawn: 4, Lost: 2, GoalsFor: 70, GoalsAgainst: 18, GoalDifference: 52},
		},
		{
			name:    "drawn missing",
			payload: `{"id":2,"details":[{"type_id":129,"value":10},{"type_id":130,"value":7},{"type_id":132,"value":3}]}`,
			want:    Columns{Played: 10, Won: 7, Lost: 3},
		},
		{
			name:    "no details",
			payload: `{"id":3}`,
			want:    Columns{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var row Standing
			require.NoError(t, sonic.Unmarshal([]byte(tc.payload), &row))
			assert.Equal(t, tc.want, row.Columns())
		})
	}
}

func TestStanding_TeamName(t *testing.T) {
	t.Parallel()

	var row Standing
	require.NoError(t, sonic.Unmarshal([]byte(`{"id":1,"participant":{"id":53,"name":"Celtic"}}`), &row))
	assert.Equal(t, "Celtic", row.TeamName())
	assert.Equal(t, "", Standing{}.TeamName())
}
