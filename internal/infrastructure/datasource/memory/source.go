package memory

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/flashgoal/internal/domain/player"
	"github.com/riskibarqy/flashgoal/internal/usecase"
)

const (
	seedDir            = "seed"
	seedPathSeparator  = "__"
	playerIndexKey     = "players"
	playerSearchPrefix = "players/search/"
	fixtureDatePrefix  = "fixtures/date/"
)

//go:embed seed/*.json
var seedFS embed.FS

var emptyResult = []byte(`{"message":"No result(s) found matching your request."}`)

// Source serves canned upstream payloads keyed by endpoint. It is read-only
// after construction. Unknown fixture dates answer like the upstream API
// does, without a data field.
type Source struct {
	payloads map[string][]byte
}

var _ usecase.DataSource = (*Source)(nil)

func NewSource(payloads map[string][]byte) *Source {
	items := make(map[string][]byte, len(payloads))
	for endpoint, payload := range payloads {
		items[normalizeEndpoint(endpoint)] = payload
	}
	return &Source{payloads: items}
}

// NewSeededSource loads the embedded seed payloads. A file name maps to an
// endpoint with "__" standing for "/", e.g. leagues__501.json.
func NewSeededSource() (*Source, error) {
	entries, err := fs.ReadDir(seedFS, seedDir)
	if err != nil {
		return nil, fmt.Errorf("read seed dir: %w", err)
	}

	payloads := make(map[string][]byte, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".json" {
			continue
		}
		raw, err := fs.ReadFile(seedFS, path.Join(seedDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read seed %s: %w", entry.Name(), err)
		}
		endpoint := strings.ReplaceAll(strings.TrimSuffix(entry.Name(), ".json"), seedPathSeparator, "/")
		payloads[endpoint] = raw
	}
	return NewSource(payloads), nil
}

func (s *Source) Fetch(ctx context.Context, req usecase.APIRequest, target any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	endpoint := normalizeEndpoint(req.Endpoint)
	if endpoint == "" {
		return fmt.Errorf("%w: endpoint is required", usecase.ErrInvalidInput)
	}

	payload, ok := s.payloads[endpoint]
	index := s.payloads[playerIndexKey]

	if !ok {
		switch {
		case strings.HasPrefix(endpoint, playerSearchPrefix):
			result, err := searchIndex(index, strings.TrimPrefix(endpoint, playerSearchPrefix))
			if err != nil {
				return err
			}
			payload = result
		case strings.HasPrefix(endpoint, fixtureDatePrefix):
			payload = emptyResult
		default:
			return fmt.Errorf("%w: endpoint=%s", usecase.ErrNotFound, endpoint)
		}
	}

	if err := sonic.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("%w: decode seeded payload endpoint=%s: %v", usecase.ErrDependencyUnavailable, endpoint, err)
	}
	return nil
}

func searchIndex(index []byte, escapedQuery string) ([]byte, error) {
	query, err := url.PathUnescape(escapedQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: search query: %v", usecase.ErrInvalidInput, err)
	}
	query = strings.ToLower(strings.TrimSpace(query))

	var all struct {
		Data []player.Player `json:"data"`
	}
	if len(index) > 0 {
		if err := sonic.Unmarshal(index, &all); err != nil {
			return nil, fmt.Errorf("%w: decode player index: %v", usecase.ErrDependencyUnavailable, err)
		}
	}

	matched := make([]player.Player, 0)
	for _, item := range all.Data {
		if strings.Contains(strings.ToLower(item.Name), query) || strings.Contains(strings.ToLower(item.CommonName), query) {
			matched = append(matched, item)
		}
	}
	return sonic.Marshal(struct {
		Data []player.Player `json:"data"`
	}{Data: matched})
}

func normalizeEndpoint(endpoint string) string {
	return strings.Trim(strings.TrimSpace(endpoint), "/")
}
