package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/riskibarqy/flashgoal/internal/domain/player"
)

const (
	defaultSearchDebounce       = 500 * time.Millisecond
	defaultSearchMinQueryLength = 3
)

type PlayerFinder interface {
	SearchPlayers(ctx context.Context, query string) ([]player.Player, error)
}

type PlayerSearcherConfig struct {
	Debounce       time.Duration
	MinQueryLength int
}

// PlayerSearcher debounces player searches with a single latest-wins slot.
// A new Search cancels the one still waiting or in flight.
type PlayerSearcher struct {
	finder    PlayerFinder
	debounce  time.Duration
	minLength int

	mu      sync.Mutex
	seq     uint64
	pending context.CancelCauseFunc
}

func NewPlayerSearcher(finder PlayerFinder, cfg PlayerSearcherConfig) *PlayerSearcher {
	debounce := cfg.Debounce
	if debounce < 0 {
		debounce = defaultSearchDebounce
	}
	minLength := cfg.MinQueryLength
	if minLength <= 0 {
		minLength = defaultSearchMinQueryLength
	}
	return &PlayerSearcher{
		finder:    finder,
		debounce:  debounce,
		minLength: minLength,
	}
}

// Search returns an empty result for short queries without calling upstream.
// Otherwise it waits for the debounce delay and searches unless a newer call
// supersedes it, in which case ErrSearchSuperseded is returned.
func (s *PlayerSearcher) Search(ctx context.Context, query string) ([]player.Player, error) {
	query = strings.TrimSpace(query)

	searchCtx, token := s.replacePending(ctx)
	defer s.release(token)

	if utf8.RuneCountInString(query) < s.minLength {
		return []player.Player{}, nil
	}

	timer := time.NewTimer(s.debounce)
	defer timer.Stop()

	select {
	case <-searchCtx.Done():
		return nil, searchError(searchCtx)
	case <-timer.C:
	}

	items, err := s.finder.SearchPlayers(searchCtx, query)
	if err != nil {
		if searchCtx.Err() != nil {
			return nil, searchError(searchCtx)
		}
		return nil, err
	}
	return items, nil
}

func (s *PlayerSearcher) replacePending(ctx context.Context) (context.Context, uint64) {
	searchCtx, cancel := context.WithCancelCause(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		s.pending(ErrSearchSuperseded)
	}
	s.seq++
	s.pending = cancel
	return searchCtx, s.seq
}

func (s *PlayerSearcher) release(token uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq != token || s.pending == nil {
		return
	}
	s.pending(nil)
	s.pending = nil
}

func searchError(ctx context.Context) error {
	cause := context.Cause(ctx)
	if errors.Is(cause, ErrSearchSuperseded) {
		return ErrSearchSuperseded
	}
	if cause != nil {
		return cause
	}
	return ctx.Err()
}
