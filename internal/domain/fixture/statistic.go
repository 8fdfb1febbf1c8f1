package fixture

import (
	"sort"

	"github.com/riskibarqy/flashgoal/internal/domain/statvalue"
)

// Statistic is one metric for one team in a fixture.
type Statistic struct {
	ID            int64             `json:"id"`
	TypeID        int64             `json:"type_id"`
	FixtureID     int64             `json:"fixture_id"`
	EntityID      *int64            `json:"entity_id"`
	ParticipantID *int64            `json:"participant_id"`
	Location      string            `json:"location"`
	Type          *StatType         `json:"type"`
	Data          statvalue.Wrapped `json:"data"`
}

type StatType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// TeamID resolves the owning team from entity_id then participant_id.
// It is 0 when both are absent.
func (s Statistic) TeamID() int64 {
	if s.EntityID != nil {
		return *s.EntityID
	}
	if s.ParticipantID != nil {
		return *s.ParticipantID
	}
	return 0
}

// Name is the type name, then the type code. Empty when neither is known.
func (s Statistic) Name() string {
	if s.Type == nil {
		return ""
	}
	if s.Type.Name != "" {
		return s.Type.Name
	}
	return s.Type.Code
}

func (s Statistic) Value() float64 {
	return s.Data.Value.Float64()
}

// StatPair is one metric split into home and away values.
type StatPair struct {
	Name string
	Home float64
	Away float64
}

const unresolvedTeamID int64 = -1

// PairStatistics groups statistics by name and assigns each group to the
// home and away team. Groups with no id match fall back to list order, first
// entry home and second away. Unnamed statistics are dropped. The result is
// sorted by name.
func (f Fixture) PairStatistics() []StatPair {
	homeID, ok := f.HomeTeamID()
	if !ok {
		homeID = unresolvedTeamID
	}
	awayID, ok := f.AwayTeamID()
	if !ok {
		awayID = unresolvedTeamID
	}
	return PairStatistics(f.Statistics, homeID, awayID)
}

func PairStatistics(stats []Statistic, homeID, awayID int64) []StatPair {
	order := make([]string, 0)
	grouped := make(map[string][]Statistic)
	for _, item := range stats {
		name := item.Name()
		if name == "" {
			continue
		}
		if _, ok := grouped[name]; !ok {
			order = append(order, name)
		}
		grouped[name] = append(grouped[name], item)
	}

	out := make([]StatPair, 0, len(order))
	for _, name := range order {
		out = append(out, pairGroup(name, grouped[name], homeID, awayID))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func pairGroup(name string, group []Statistic, homeID, awayID int64) StatPair {
	pair := StatPair{Name: name}
	home := findByTeam(group, homeID)
	away := findByTeam(group, awayID)
	if home != nil || away != nil {
		if home != nil {
			pair.Home = home.Value()
		}
		if away != nil {
			pair.Away = away.Value()
		}
		return pair
	}

	// No id matched, assume home then away.
	if len(group) > 0 {
		pair.Home = group[0].Value()
	}
	if len(group) > 1 {
		pair.Away = group[1].Value()
	}
	return pair
}

func findByTeam(group []Statistic, teamID int64) *Statistic {
	for i := range group {
		if group[i].TeamID() == teamID {
			return &group[i]
		}
	}
	return nil
}
