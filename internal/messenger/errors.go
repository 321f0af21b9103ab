package messenger

import (
	"errors"
	"fmt"
)

// ErrNoAccessToken — the page access token is not configured; the send
// attempt fails before any network call is made.
var ErrNoAccessToken = errors.New("page access token is not set")

// DispatchError — the platform send API refused the message or the call
// failed in transit. Detail carries the provider's error description.
type DispatchError struct {
	StatusCode int
	Detail     string
}

func (e *DispatchError) Error() string {
	if e.StatusCode == 0 {
		return "graph api send failed: " + e.Detail
	}
	return fmt.Sprintf("graph api error: status=%d %s", e.StatusCode, e.Detail)
}
