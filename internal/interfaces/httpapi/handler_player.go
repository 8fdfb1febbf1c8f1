package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/flashgoal/internal/usecase"
)

type searchParams struct {
	Query   string `validate:"max=100"`
	Session string `validate:"omitempty,max=128,printascii"`
}

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	params := searchParams{
		Query:   r.URL.Query().Get("q"),
		Session: strings.TrimSpace(r.Header.Get(sessionHeader)),
	}
	if err := h.validate(ctx, params); err != nil {
		writeError(ctx, w, err)
		return
	}

	searcher := h.sessions.GetOrCreate(ctx, params.Session, func() *usecase.PlayerSearcher {
		return usecase.NewPlayerSearcher(h.football, h.searchCfg)
	})

	players, err := searcher.Search(ctx, params.Query)
	if err != nil {
		h.logger.DebugContext(ctx, "player search ended", "session", params.Session, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, item := range players {
		items = append(items, playerToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayerDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerDetail")
	defer span.End()

	playerID, err := h.pathID(ctx, r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.football.FetchPlayerDetail(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player detail failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerDetailToDTO(item))
}
