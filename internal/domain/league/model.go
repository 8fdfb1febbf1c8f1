package league

const (
	ScottishPremiershipID int64 = 501
	DanishSuperligaID     int64 = 271
)

// SupportedIDs lists the competitions the app displays, in display order.
func SupportedIDs() []int64 {
	return []int64{ScottishPremiershipID, DanishSuperligaID}
}

// League is a competition as returned by the leagues endpoint.
type League struct {
	ID            int64        `json:"id"`
	SportID       int64        `json:"sport_id"`
	CountryID     int64        `json:"country_id"`
	Name          string       `json:"name"`
	ShortCode     string       `json:"short_code"`
	ImagePath     string       `json:"image_path"`
	Type          string       `json:"type"`
	CurrentSeason *SeasonShort `json:"currentseason"`
}

// SeasonShort is the minimal season reference used to resolve the current season.
type SeasonShort struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	IsCurrent bool   `json:"is_current"`
}

// CurrentSeasonID returns the id of the nested current season, if present.
func (l League) CurrentSeasonID() (int64, bool) {
	if l.CurrentSeason == nil || l.CurrentSeason.ID <= 0 {
		return 0, false
	}
	return l.CurrentSeason.ID, true
}

// AllowList is an immutable set of league ids.
type AllowList struct {
	ids   map[int64]struct{}
	order []int64
}

func NewAllowList(ids ...int64) AllowList {
	out := AllowList{
		ids:   make(map[int64]struct{}, len(ids)),
		order: make([]int64, 0, len(ids)),
	}
	for _, id := range ids {
		if _, ok := out.ids[id]; ok {
			continue
		}
		out.ids[id] = struct{}{}
		out.order = append(out.order, id)
	}
	return out
}

// DefaultAllowList is the Scottish Premiership and the Danish Superliga.
func DefaultAllowList() AllowList {
	return NewAllowList(SupportedIDs()...)
}

func (a AllowList) Contains(id int64) bool {
	_, ok := a.ids[id]
	return ok
}

func (a AllowList) IDs() []int64 {
	out := make([]int64, len(a.order))
	copy(out, a.order)
	return out
}

func (a AllowList) Len() int {
	return len(a.order)
}
