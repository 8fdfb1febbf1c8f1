package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrNoActiveSeason is returned when a league carries no current season.
	ErrNoActiveSeason = fmt.Errorf("%w: league has no active season", ErrNotFound)
	// ErrSearchSuperseded is returned to a search replaced by a newer query.
	ErrSearchSuperseded = errors.New("search superseded by a newer query")
)
