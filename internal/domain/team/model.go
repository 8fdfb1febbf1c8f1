package team

import "strings"

const (
	LocationHome = "home"
	LocationAway = "away"
)

// Participant is a team taking part in a fixture or holding a standing row.
type Participant struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	ShortCode string          `json:"short_code"`
	ImagePath string          `json:"image_path"`
	Meta      ParticipantMeta `json:"meta"`
}

// ParticipantMeta carries fixture specific participant data.
type ParticipantMeta struct {
	Location string `json:"location"`
	Winner   *bool  `json:"winner"`
	Position *int   `json:"position"`
}

func (p Participant) IsHome() bool {
	return strings.EqualFold(strings.TrimSpace(p.Meta.Location), LocationHome)
}

func (p Participant) IsAway() bool {
	return strings.EqualFold(strings.TrimSpace(p.Meta.Location), LocationAway)
}

// Venue is the stadium a fixture is played at.
type Venue struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CityName  string `json:"city_name"`
	Capacity  *int   `json:"capacity"`
	ImagePath string `json:"image_path"`
}

// Short is the compact team reference embedded in player career history.
type Short struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortCode string `json:"short_code"`
	ImagePath string `json:"image_path"`
}
