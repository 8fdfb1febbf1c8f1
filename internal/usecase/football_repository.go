package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/flashgoal/internal/domain/fixture"
	"github.com/riskibarqy/flashgoal/internal/domain/league"
	"github.com/riskibarqy/flashgoal/internal/domain/leaguestanding"
	"github.com/riskibarqy/flashgoal/internal/domain/player"
	"github.com/riskibarqy/flashgoal/internal/platform/logging"
)

// DateLayout is the calendar date format used in fixture endpoints.
const DateLayout = "2006-01-02"

const (
	defaultRangeWorkers = 4
	defaultMaxRangeDays = 14
)

var (
	leagueIncludes   = []string{"currentSeason"}
	fixtureIncludes  = []string{"participants", "scores", "venue", "statistics.type", "lineups.player", "lineups.details.type", "events.type", "events.player"}
	standingIncludes = []string{"participant", "details.type"}
	playerIncludes   = []string{"nationality", "position", "statistics.details.type", "teams.team"}
)

type FootballRepositoryConfig struct {
	SupportedLeagues league.AllowList
	Location         *time.Location
	RangeWorkers     int
	MaxRangeDays     int
	Logger           *logging.Logger
}

// FootballRepository exposes the football read operations over a DataSource.
type FootballRepository struct {
	source       DataSource
	supported    league.AllowList
	location     *time.Location
	rangeWorkers int
	maxRangeDays int
	logger       *logging.Logger
}

func NewFootballRepository(source DataSource, cfg FootballRepositoryConfig) *FootballRepository {
	supported := cfg.SupportedLeagues
	if supported.Len() == 0 {
		supported = league.DefaultAllowList()
	}
	location := cfg.Location
	if location == nil {
		location = time.UTC
	}
	workers := cfg.RangeWorkers
	if workers <= 0 {
		workers = defaultRangeWorkers
	}
	maxDays := cfg.MaxRangeDays
	if maxDays <= 0 {
		maxDays = defaultMaxRangeDays
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &FootballRepository{
		source:       source,
		supported:    supported,
		location:     location,
		rangeWorkers: workers,
		maxRangeDays: maxDays,
		logger:       logger,
	}
}

func (r *FootballRepository) SupportedLeagues() league.AllowList {
	return r.supported
}

func (r *FootballRepository) Location() *time.Location {
	return r.location
}

func (r *FootballRepository) FetchLeague(ctx context.Context, leagueID int64) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FootballRepository.FetchLeague", attribute.Int64("league.id", leagueID))
	defer span.End()

	if leagueID <= 0 {
		return league.League{}, fmt.Errorf("%w: league id must be greater than zero", ErrInvalidInput)
	}

	var out envelope[league.League]
	req := APIRequest{Endpoint: "leagues/" + strconv.FormatInt(leagueID, 10), Includes: leagueIncludes}
	if err := r.source.Fetch(ctx, req, &out); err != nil {
		recordSpanError(span, err)
		return league.League{}, fmt.Errorf("fetch league id=%d: %w", leagueID, err)
	}
	if out.Data.ID == 0 {
		return league.League{}, fmt.Errorf("%w: league=%d", ErrNotFound, leagueID)
	}
	return out.Data, nil
}

func (r *FootballRepository) FetchCurrentSeasonID(ctx context.Context, leagueID int64) (int64, error) {
	item, err := r.FetchLeague(ctx, leagueID)
	if err != nil {
		return 0, err
	}
	seasonID, ok := item.CurrentSeasonID()
	if !ok {
		return 0, fmt.Errorf("%w: league=%d", ErrNoActiveSeason, leagueID)
	}
	return seasonID, nil
}

// FetchLeagues looks the leagues up in parallel. Results keep the input order.
func (r *FootballRepository) FetchLeagues(ctx context.Context, leagueIDs ...int64) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FootballRepository.FetchLeagues", attribute.Int("league.count", len(leagueIDs)))
	defer span.End()

	results := make([]league.League, len(leagueIDs))
	errs := make([]error, len(leagueIDs))

	var wg conc.WaitGroup
	for i, leagueID := range leagueIDs {
		wg.Go(func() {
			results[i], errs[i] = r.FetchLeague(ctx, leagueID)
		})
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			recordSpanError(span, err)
			return nil, err
		}
	}
	return results, nil
}

// FetchFixtures returns the fixtures of one calendar day in supported leagues.
func (r *FootballRepository) FetchFixtures(ctx context.Context, date time.Time) ([]fixture.Fixture, error) {
	day := date.In(r.location).Format(DateLayout)
	ctx, span := startUsecaseSpan(ctx, "usecase.FootballRepository.FetchFixtures", attribute.String("fixture.date", day))
	defer span.End()

	var out envelope[[]fixture.Fixture]
	req := APIRequest{Endpoint: "fixtures/date/" + day, Includes: fixtureIncludes}
	if err := r.source.Fetch(ctx, req, &out); err != nil {
		recordSpanError(span, err)
		return nil, fmt.Errorf("fetch fixtures date=%s: %w", day, err)
	}

	items := make([]fixture.Fixture, 0, len(out.Data))
	for _, item := range out.Data {
		if err := item.Validate(); err != nil {
			r.logger.WarnContext(ctx, "skip invalid fixture", "date", day, "fixture_id", item.ID, "error", err)
			continue
		}
		items = append(items, item)
	}
	return fixture.FilterByLeagues(items, r.supported), nil
}

// FetchFixturesRange fetches every day in [from, to] on a bounded worker pool
// and concatenates the days in date order.
func (r *FootballRepository) FetchFixturesRange(ctx context.Context, from, to time.Time) ([]fixture.Fixture, error) {
	days, err := r.calendarDays(from, to)
	if err != nil {
		return nil, err
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.FootballRepository.FetchFixturesRange", attribute.Int("fixture.days", len(days)))
	defer span.End()

	workerCount := r.rangeWorkers
	if workerCount > len(days) {
		workerCount = len(days)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	perDay := make([][]fixture.Fixture, len(days))
	errs := make([]error, len(days))

	var workers sync.WaitGroup
	for i, day := range days {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			perDay[i], errs[i] = r.FetchFixtures(ctx, day)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit fixture day to worker pool: %w", err)
		}
	}
	workers.Wait()

	out := make([]fixture.Fixture, 0)
	for i := range days {
		if errs[i] != nil {
			recordSpanError(span, errs[i])
			return nil, errs[i]
		}
		out = append(out, perDay[i]...)
	}
	return out, nil
}

func (r *FootballRepository) calendarDays(from, to time.Time) ([]time.Time, error) {
	start := civilDay(from.In(r.location))
	end := civilDay(to.In(r.location))
	if end.Before(start) {
		return nil, fmt.Errorf("%w: range end is before start", ErrInvalidInput)
	}

	days := make([]time.Time, 0, r.maxRangeDays)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if len(days) == r.maxRangeDays {
			return nil, fmt.Errorf("%w: range exceeds %d days", ErrInvalidInput, r.maxRangeDays)
		}
		days = append(days, day)
	}
	return days, nil
}

func civilDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (r *FootballRepository) FetchStandings(ctx context.Context, seasonID int64) ([]leaguestanding.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FootballRepository.FetchStandings", attribute.Int64("season.id", seasonID))
	defer span.End()

	if seasonID <= 0 {
		return nil, fmt.Errorf("%w: season id must be greater than zero", ErrInvalidInput)
	}

	var out envelope[[]leaguestanding.Standing]
	req := APIRequest{Endpoint: "standings/seasons/" + strconv.FormatInt(seasonID, 10), Includes: standingIncludes}
	if err := r.source.Fetch(ctx, req, &out); err != nil {
		recordSpanError(span, err)
		return nil, fmt.Errorf("fetch standings season=%d: %w", seasonID, err)
	}
	if out.Data == nil {
		return []leaguestanding.Standing{}, nil
	}
	return out.Data, nil
}

// SearchPlayers runs one upstream name search. Debounce and minimum length
// are applied by PlayerSearcher.
func (r *FootballRepository) SearchPlayers(ctx context.Context, query string) ([]player.Player, error) {
	query = strings.TrimSpace(query)
	ctx, span := startUsecaseSpan(ctx, "usecase.FootballRepository.SearchPlayers")
	defer span.End()

	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrInvalidInput)
	}

	var out envelope[[]player.Player]
	req := APIRequest{Endpoint: "players/search/" + url.PathEscape(query)}
	if err := r.source.Fetch(ctx, req, &out); err != nil {
		recordSpanError(span, err)
		return nil, fmt.Errorf("search players: %w", err)
	}
	if out.Data == nil {
		return []player.Player{}, nil
	}
	return out.Data, nil
}

func (r *FootballRepository) FetchPlayerDetail(ctx context.Context, playerID int64) (player.Detail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FootballRepository.FetchPlayerDetail", attribute.Int64("player.id", playerID))
	defer span.End()

	if playerID <= 0 {
		return player.Detail{}, fmt.Errorf("%w: player id must be greater than zero", ErrInvalidInput)
	}

	var out envelope[player.Detail]
	req := APIRequest{Endpoint: "players/" + strconv.FormatInt(playerID, 10), Includes: playerIncludes}
	if err := r.source.Fetch(ctx, req, &out); err != nil {
		recordSpanError(span, err)
		return player.Detail{}, fmt.Errorf("fetch player id=%d: %w", playerID, err)
	}
	if out.Data.ID == 0 {
		return player.Detail{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}
	return out.Data, nil
}
