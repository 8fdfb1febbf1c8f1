package usecase

import "context"

// APIRequest describes one upstream GET call.
type APIRequest struct {
	// Endpoint is relative to the upstream base URL, e.g. "leagues/501".
	Endpoint string
	// Includes are relation expansions, sent joined by ";".
	Includes []string
	// Filters are extra query parameters.
	Filters map[string]string
}

// DataSource issues an APIRequest and decodes the JSON body into target.
type DataSource interface {
	Fetch(ctx context.Context, req APIRequest, target any) error
}

type envelope[T any] struct {
	Data T `json:"data"`
}
