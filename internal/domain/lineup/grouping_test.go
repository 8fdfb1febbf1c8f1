package lineup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v int64) *int64 { return &v }

func TestCategoryOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		positionID *int64
		want       Category
	}{
		{name: "goalkeeper", positionID: ptr(24), want: Goalkeeper},
		{name: "defender", positionID: ptr(25), want: Defender},
		{name: "detailed defender", positionID: ptr(30), want: Defender},
		{name: "attacker", positionID: ptr(27), want: Attacker},
		{name: "detailed attacker", positionID: ptr(41), want: Attacker},
		{name: "midfielder", positionID: ptr(26), want: Midfielder},
		{name: "unknown id", positionID: ptr(999), want: Midfielder},
		{name: "missing id", positionID: nil, want: Midfielder},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, CategoryOf(tc.positionID))
		})
	}
}

func sampleEntries() []Entry {
	return []Entry{
		{ID: 5, TeamID: 1, PositionID: ptr(27), TypeID: ptr(11)},
		{ID: 2, TeamID: 1, PositionID: ptr(24), TypeID: ptr(11)},
		{ID: 9, TeamID: 1, PositionID: ptr(25), TypeID: ptr(11)},
		{ID: 3, TeamID: 1, PositionID: ptr(25), TypeID: ptr(11)},
		{ID: 7, TeamID: 1, PositionID: nil, TypeID: ptr(12)},
		{ID: 4, TeamID: 2, PositionID: ptr(24), TypeID: ptr(11)},
		{ID: 8, TeamID: 2, PositionID: ptr(26), TypeID: nil},
	}
}

func TestGroupByPosition_Partitions(t *testing.T) {
	t.Parallel()

	entries := sampleEntries()
	groups := GroupByPosition(entries)

	seen := map[int64]int{}
	total := 0
	for _, group := range groups {
		for _, item := range group.Entries {
			assert.Equal(t, group.Category, item.Category())
			seen[item.ID]++
			total++
		}
	}
	assert.Equal(t, len(entries), total)
	for _, item := range entries {
		assert.Equal(t, 1, seen[item.ID], "entry %d", item.ID)
	}

	require.Len(t, groups, 4)
	assert.Equal(t, Goalkeeper, groups[0].Category)
	assert.Equal(t, Attacker, groups[3].Category)
	assert.Empty(t, GroupByPosition(nil))
}

func TestSplitStarters(t *testing.T) {
	t.Parallel()

	starters, bench := SplitStarters(ForTeam(sampleEntries(), 1))
	assert.Len(t, starters, 4)
	require.Len(t, bench, 1)
	assert.Equal(t, int64(7), bench[0].ID)

	_, bench = SplitStarters(ForTeam(sampleEntries(), 2))
	require.Len(t, bench, 1)
	assert.Equal(t, int64(8), bench[0].ID)
}

func TestFormation_RowsOrdered(t *testing.T) {
	t.Parallel()

	starters, _ := SplitStarters(ForTeam(sampleEntries(), 1))
	rows := Formation(starters)
	require.Len(t, rows, 4)

	require.Len(t, rows[0], 1)
	assert.Equal(t, Attacker, rows[0][0].Category())
	assert.Empty(t, rows[1])
	require.Len(t, rows[2], 2)
	assert.Equal(t, int64(3), rows[2][0].ID)
	assert.Equal(t, int64(9), rows[2][1].ID)
	require.Len(t, rows[3], 1)
	assert.Equal(t, Goalkeeper, rows[3][0].Category())
}

func TestKeyMatchups(t *testing.T) {
	t.Parallel()

	matchups := KeyMatchups(sampleEntries(), 1, 2)
	require.Len(t, matchups, 3)

	assert.Equal(t, Goalkeeper, matchups[0].Category)
	require.NotNil(t, matchups[0].Home)
	require.NotNil(t, matchups[0].Away)
	assert.Equal(t, int64(2), matchups[0].Home.ID)
	assert.Equal(t, int64(4), matchups[0].Away.ID)

	assert.Equal(t, Attacker, matchups[1].Category)
	assert.Nil(t, matchups[1].Away)

	assert.Equal(t, Defender, matchups[2].Category)
	assert.Equal(t, int64(9), matchups[2].Home.ID)
}
