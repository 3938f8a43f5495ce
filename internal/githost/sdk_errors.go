package githost

import (
	"errors"
	"fmt"

	"github.com/imroc/req/v3"
)

var (
	ErrRepositoryNotFound = errors.New("githost: repository not found")
	ErrTreeUnavailable    = errors.New("githost: tree unavailable")
	ErrRefNotFound        = errors.New("githost: ref not found")
	ErrRefConflict        = errors.New("githost: ref update rejected")
	ErrBlobCreateFailed   = errors.New("githost: blob create failed")
	ErrTreeCreateFailed   = errors.New("githost: tree create failed")
	ErrCommitCreateFailed = errors.New("githost: commit create failed")
)

// APIError is the error body the host returns on non-success statuses.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	DocURL  string `json:"documentation_url,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: HTTP %d - %s", e.Status, e.Message)
}

// handleAPIError is a helper that handles the common error pattern
func handleAPIError(resp *req.Response, requestErr error, operation string) error {
	if requestErr != nil {
		return fmt.Errorf("http request error: %s: %w", operation, requestErr)
	}

	// got a response, but api returned an error
	if resp.IsErrorState() {
		if apiErr, ok := resp.ErrorResult().(*APIError); ok && apiErr != nil {
			apiErr.Status = resp.GetStatusCode()
			return fmt.Errorf("%s: %w", operation, apiErr)
		}
		return fmt.Errorf("%s: api error: HTTP %d", operation, resp.GetStatusCode())
	}

	return nil
}
