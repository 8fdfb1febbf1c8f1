package httpapi

import (
	"context"
	"net/http"
	"sort"

	"github.com/riskibarqy/flashgoal/internal/domain/leaguestanding"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.football.FetchLeagues(ctx, h.football.SupportedLeagues().IDs()...)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, item := range leagues {
		items = append(items, leagueToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	leagueID, err := h.pathID(ctx, r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.football.FetchLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(item))
}

func (h *Handler) ListLeagueStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueStandings")
	defer span.End()

	leagueID, err := h.pathID(ctx, r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	seasonID, err := h.football.FetchCurrentSeasonID(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve current season failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out, err := h.standingsTable(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list league standings failed", "league_id", leagueID, "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}
	out.LeagueID = leagueID

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListSeasonStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonStandings")
	defer span.End()

	seasonID, err := h.pathID(ctx, r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out, err := h.standingsTable(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list season standings failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) standingsTable(ctx context.Context, seasonID int64) (standingsDTO, error) {
	rows, err := h.football.FetchStandings(ctx, seasonID)
	if err != nil {
		return standingsDTO{}, err
	}

	sorted := make([]leaguestanding.Standing, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	out := standingsDTO{SeasonID: seasonID, Rows: make([]standingRowDTO, 0, len(sorted))}
	for _, item := range sorted {
		if out.LeagueID == 0 {
			out.LeagueID = item.LeagueID
		}
		out.Rows = append(out.Rows, standingToDTO(item))
	}
	return out, nil
}
