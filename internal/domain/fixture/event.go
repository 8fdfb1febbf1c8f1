package fixture

import (
	"strconv"
	"strings"

	"github.com/riskibarqy/flashgoal/internal/domain/player"
)

// Event is a timestamped match occurrence such as a goal or a card.
type Event struct {
	ID            int64          `json:"id"`
	TypeID        int64          `json:"type_id"`
	ParticipantID *int64         `json:"participant_id"`
	PlayerID      *int64         `json:"player_id"`
	PlayerName    string         `json:"player_name"`
	Minute        *int           `json:"minute"`
	ExtraMinute   *int           `json:"extra_minute"`
	Type          *EventType     `json:"type"`
	Player        *player.Player `json:"player"`
}

type EventType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type EventCategory string

const (
	EventGoal         EventCategory = "goal"
	EventCard         EventCategory = "card"
	EventSubstitution EventCategory = "substitution"
	EventOther        EventCategory = "other"
)

type CardColour string

const (
	CardNone   CardColour = ""
	CardYellow CardColour = "yellow"
	CardRed    CardColour = "red"
)

var importantKeywords = []string{"goal", "card", "substitution", "penalty"}

func (e Event) Name() string {
	if e.Type == nil {
		return ""
	}
	return e.Type.Name
}

// DisplayTime renders 45' or 45+2' when stoppage time is present.
func (e Event) DisplayTime() string {
	minute := 0
	if e.Minute != nil {
		minute = *e.Minute
	}
	if e.ExtraMinute != nil && *e.ExtraMinute > 0 {
		return strconv.Itoa(minute) + "+" + strconv.Itoa(*e.ExtraMinute) + "'"
	}
	return strconv.Itoa(minute) + "'"
}

func (e Event) IsImportant() bool {
	name := strings.ToLower(e.Name())
	for _, keyword := range importantKeywords {
		if strings.Contains(name, keyword) {
			return true
		}
	}
	return false
}

func (e Event) Category() EventCategory {
	name := strings.ToLower(e.Name())
	switch {
	case strings.Contains(name, "goal"), strings.Contains(name, "penalty"):
		return EventGoal
	case strings.Contains(name, "card"):
		return EventCard
	case strings.Contains(name, "substitution"):
		return EventSubstitution
	default:
		return EventOther
	}
}

// CardColour is CardNone for anything that is not a card event.
func (e Event) CardColour() CardColour {
	if e.Category() != EventCard {
		return CardNone
	}
	name := strings.ToLower(e.Name())
	switch {
	case strings.Contains(name, "yellow"):
		return CardYellow
	case strings.Contains(name, "red"):
		return CardRed
	default:
		return CardNone
	}
}

// ImportantEvents keeps goals, cards, substitutions and penalties in order.
func (f Fixture) ImportantEvents() []Event {
	out := make([]Event, 0, len(f.Events))
	for _, item := range f.Events {
		if item.IsImportant() {
			out = append(out, item)
		}
	}
	return out
}
