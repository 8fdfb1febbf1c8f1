package sportmonks

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/flashgoal/internal/usecase"
)

var (
	// ErrInvalidRequest is returned when no URL can be built for a request.
	ErrInvalidRequest = fmt.Errorf("%w: sportmonks request could not be built", usecase.ErrInvalidInput)
	// ErrUnknown covers transport failures and anything else unclassified.
	ErrUnknown = fmt.Errorf("%w: sportmonks request failed", usecase.ErrDependencyUnavailable)
	// ErrResponseTooLarge is a body past the configured size cap. It is never decoded.
	ErrResponseTooLarge = fmt.Errorf("%w: response too large", ErrUnknown)
)

// HTTPError is a response with a status outside 2xx.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("sportmonks status=%d body=%s", e.StatusCode, abbreviateBody(e.Body))
}

// Is maps 404 to usecase.ErrNotFound and every other status to
// usecase.ErrDependencyUnavailable.
func (e *HTTPError) Is(target error) bool {
	switch target {
	case usecase.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case usecase.ErrDependencyUnavailable:
		return e.StatusCode != http.StatusNotFound
	default:
		return false
	}
}

// DecodeError is a body that does not match the expected shape.
type DecodeError struct {
	Endpoint string
	Cause    error
}

func (e *DecodeError) Error() string {
	cause := "<nil>"
	if e.Cause != nil {
		cause = abbreviate(e.Cause.Error())
	}
	return fmt.Sprintf("sportmonks decode endpoint=%s: %s", e.Endpoint, cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

func (e *DecodeError) Is(target error) bool {
	return target == usecase.ErrDependencyUnavailable
}
