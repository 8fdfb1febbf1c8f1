package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/flashgoal/internal/domain/fixture"
	"github.com/riskibarqy/flashgoal/internal/domain/league"
	"github.com/riskibarqy/flashgoal/internal/usecase"
)

type dateRangeParams struct {
	From string `validate:"required,datetime=2006-01-02"`
	To   string `validate:"required,datetime=2006-01-02"`
}

func (h *Handler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtures")
	defer span.End()

	date, err := h.queryDate(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.football.FetchFixtures(ctx, date)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed", "date", date.Format(usecase.DateLayout), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, h.groupByLeague(ctx, items))
}

func (h *Handler) ListFixturesRange(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixturesRange")
	defer span.End()

	params := dateRangeParams{
		From: strings.TrimSpace(r.URL.Query().Get("from")),
		To:   strings.TrimSpace(r.URL.Query().Get("to")),
	}
	if err := h.validate(ctx, params); err != nil {
		writeError(ctx, w, err)
		return
	}

	from, err := h.parseDate(params.From)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	to, err := h.parseDate(params.To)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.football.FetchFixturesRange(ctx, from, to)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures range failed", "from", params.From, "to", params.To, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, h.groupByLeague(ctx, items))
}

func (h *Handler) GetFixtureDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixtureDetail")
	defer span.End()

	fixtureID, err := h.pathID(ctx, r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	date, err := h.queryDate(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.football.FetchFixtures(ctx, date)
	if err != nil {
		h.logger.WarnContext(ctx, "get fixture detail failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	for _, item := range items {
		if item.ID == fixtureID {
			writeSuccess(ctx, w, http.StatusOK, fixtureToDetailDTO(item, h.football.Location()))
			return
		}
	}

	writeError(ctx, w, fmt.Errorf("%w: fixture %d on %s", usecase.ErrNotFound, fixtureID, date.Format(usecase.DateLayout)))
}

func (h *Handler) queryDate(r *http.Request) (time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("date"))
	if raw == "" {
		return h.today(), nil
	}
	return h.parseDate(raw)
}

// groupByLeague buckets fixtures in allow list order. League names are
// best effort: a failed lookup leaves only the id.
func (h *Handler) groupByLeague(ctx context.Context, items []fixture.Fixture) []leagueFixturesDTO {
	buckets := make(map[int64][]fixtureSummaryDTO)
	for _, item := range items {
		buckets[item.LeagueID] = append(buckets[item.LeagueID], fixtureToSummaryDTO(item, h.football.Location()))
	}

	ids := make([]int64, 0, len(buckets))
	for _, id := range h.football.SupportedLeagues().IDs() {
		if _, ok := buckets[id]; ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return []leagueFixturesDTO{}
	}

	names := make(map[int64]league.League, len(ids))
	leagues, err := h.football.FetchLeagues(ctx, ids...)
	if err != nil {
		h.logger.WarnContext(ctx, "league names unavailable for fixtures", "error", err)
	}
	for _, item := range leagues {
		names[item.ID] = item
	}

	out := make([]leagueFixturesDTO, 0, len(ids))
	for _, id := range ids {
		meta, ok := names[id]
		if !ok {
			meta = league.League{ID: id}
		}
		out = append(out, leagueFixturesDTO{League: leagueToDTO(meta), Fixtures: buckets[id]})
	}
	return out
}
