package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/flashgoal/internal/domain/player"
	usecasemock "github.com/riskibarqy/flashgoal/internal/mocks/usecase"
	"github.com/riskibarqy/flashgoal/internal/usecase"
)

func TestPlayerSearcher_ShortQueryNeverCallsUpstream(t *testing.T) {
	t.Parallel()

	finder := usecasemock.NewPlayerFinder(t)
	searcher := usecase.NewPlayerSearcher(finder, usecase.PlayerSearcherConfig{Debounce: time.Hour, MinQueryLength: 3})

	for _, query := range []string{"", "k", "ky", "  ky  "} {
		got, err := searcher.Search(context.Background(), query)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
	finder.AssertNotCalled(t, "SearchPlayers", mock.Anything, mock.Anything)
}

func TestPlayerSearcher_SearchesAfterDebounce(t *testing.T) {
	t.Parallel()

	finder := usecasemock.NewPlayerFinder(t)
	searcher := usecase.NewPlayerSearcher(finder, usecase.PlayerSearcherConfig{Debounce: 10 * time.Millisecond})

	finder.On("SearchPlayers", mock.Anything, "kyo").
		Return([]player.Player{{ID: 1, Name: "Kyogo Furuhashi"}}, nil).
		Once()

	got, err := searcher.Search(context.Background(), " kyo ")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestPlayerSearcher_LatestWins(t *testing.T) {
	t.Parallel()

	finder := usecasemock.NewPlayerFinder(t)
	searcher := usecase.NewPlayerSearcher(finder, usecase.PlayerSearcherConfig{Debounce: 200 * time.Millisecond})

	finder.On("SearchPlayers", mock.Anything, "kyogo").
		Return([]player.Player{{ID: 1}}, nil).
		Once()

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = searcher.Search(context.Background(), "kyo")
	}()

	time.Sleep(50 * time.Millisecond)
	got, err := searcher.Search(context.Background(), "kyogo")
	wg.Wait()

	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.ErrorIs(t, firstErr, usecase.ErrSearchSuperseded)
	finder.AssertNotCalled(t, "SearchPlayers", mock.Anything, "kyo")
}

func TestPlayerSearcher_ShortQueryCancelsPending(t *testing.T) {
	t.Parallel()

	finder := usecasemock.NewPlayerFinder(t)
	searcher := usecase.NewPlayerSearcher(finder, usecase.PlayerSearcherConfig{Debounce: 200 * time.Millisecond})

	done := make(chan error, 1)
	go func() {
		_, err := searcher.Search(context.Background(), "celtic")
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	got, err := searcher.Search(context.Background(), "ce")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.ErrorIs(t, <-done, usecase.ErrSearchSuperseded)
}

func TestPlayerSearcher_CallerCancellation(t *testing.T) {
	t.Parallel()

	finder := usecasemock.NewPlayerFinder(t)
	searcher := usecase.NewPlayerSearcher(finder, usecase.PlayerSearcherConfig{Debounce: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := searcher.Search(ctx, "celtic")
	assert.ErrorIs(t, err, context.Canceled)
}
