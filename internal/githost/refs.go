package githost

import (
	"context"
	"fmt"
	"net/http"

	"github.com/imroc/req/v3"
)

const (
	refGetPath    = "/repos/{owner}/{repo}/git/ref/heads/{branch}"
	refUpdatePath = "/repos/{owner}/{repo}/git/refs/heads/{branch}"
)

type RefsAPI struct {
	client *req.Client
}

func newRefsAPI(client *req.Client) *RefsAPI {
	return &RefsAPI{
		client: client,
	}
}

// Get resolves a branch to its tip commit sha.
func (r *RefsAPI) Get(ctx context.Context, owner, name, branch string) (ref *Ref, err error) {
	resp, reqErr := r.client.R().
		SetContext(ctx).
		SetPathParam("owner", owner).
		SetPathParam("repo", name).
		SetPathParam("branch", branch).
		SetSuccessResult(&ref).
		SetErrorResult(&APIError{}).
		Get(refGetPath)

	if reqErr == nil && resp.GetStatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s/%s heads/%s", ErrRefNotFound, owner, name, branch)
	}

	if err := handleAPIError(resp, reqErr, "get ref"); err != nil {
		return nil, err
	}

	if ref == nil {
		return nil, fmt.Errorf("get ref: heads/%s: empty response", branch)
	}

	return ref, nil
}

// Update advances a branch to sha as a non-forcing fast-forward. The
// host rejects the update when the branch tip moved since expectedTip
// was read, because sha no longer descends from the current tip. That
// rejection surfaces as ErrRefConflict and is never retried here.
func (r *RefsAPI) Update(ctx context.Context, owner, name, branch, sha, expectedTip string) error {
	resp, reqErr := r.client.R().
		SetContext(ctx).
		SetPathParam("owner", owner).
		SetPathParam("repo", name).
		SetPathParam("branch", branch).
		SetBody(&updateRefRequest{
			SHA:   sha,
			Force: false,
		}).
		SetErrorResult(&APIError{}).
		Patch(refUpdatePath)

	if reqErr == nil {
		switch resp.GetStatusCode() {
		case http.StatusConflict, http.StatusUnprocessableEntity:
			return fmt.Errorf("%w: heads/%s moved from %s", ErrRefConflict, branch, expectedTip)
		}
	}

	return handleAPIError(resp, reqErr, "update ref")
}
