package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/flashgoal/internal/platform/cache"
	"github.com/riskibarqy/flashgoal/internal/platform/logging"
	"github.com/riskibarqy/flashgoal/internal/usecase"
)

const sessionHeader = "X-Session-ID"

type HandlerConfig struct {
	Search     usecase.PlayerSearcherConfig
	SessionTTL time.Duration
	Logger     *logging.Logger
}

type Handler struct {
	football  *usecase.FootballRepository
	sessions  *cache.Store[*usecase.PlayerSearcher]
	searchCfg usecase.PlayerSearcherConfig
	logger    *logging.Logger
	validator *validator.Validate
	now       func() time.Time
}

func NewHandler(football *usecase.FootballRepository, cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		football:  football,
		sessions:  cache.NewStore[*usecase.PlayerSearcher](cfg.SessionTTL),
		searchCfg: cfg.Search,
		logger:    logger,
		validator: validator.New(),
		now:       time.Now,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

// PurgeSessions drops idle search sessions.
func (h *Handler) PurgeSessions(ctx context.Context) int {
	return h.sessions.Purge(ctx)
}

func (h *Handler) validate(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: %s", usecase.ErrInvalidInput, describeValidation(err))
	}
	return nil
}

func describeValidation(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err.Error()
	}
	parts := make([]string, 0, len(errs))
	for _, item := range errs {
		parts = append(parts, strings.ToLower(item.Field())+" failed "+item.Tag())
	}
	return strings.Join(parts, ", ")
}

type idParam struct {
	ID int64 `validate:"gt=0"`
}

func (h *Handler) pathID(ctx context.Context, r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	if err := h.validate(ctx, idParam{ID: value}); err != nil {
		return 0, fmt.Errorf("%w: %s must be greater than zero", usecase.ErrInvalidInput, name)
	}
	return value, nil
}

// parseDate reads a yyyy-MM-dd value in the repository timezone.
func (h *Handler) parseDate(raw string) (time.Time, error) {
	parsed, err := time.ParseInLocation(usecase.DateLayout, strings.TrimSpace(raw), h.football.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must use %s", usecase.ErrInvalidInput, usecase.DateLayout)
	}
	return parsed, nil
}

func (h *Handler) today() time.Time {
	return h.now().In(h.football.Location())
}
