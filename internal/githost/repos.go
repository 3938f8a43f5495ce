package githost

import (
	"context"
	"fmt"
	"net/http"

	"github.com/imroc/req/v3"
)

const repoPath = "/repos/{owner}/{repo}"

type ReposAPI struct {
	client *req.Client
}

func newReposAPI(client *req.Client) *ReposAPI {
	return &ReposAPI{
		client: client,
	}
}

// Get fetches repository metadata, including the default branch name.
// This doubles as the existence check before an import.
func (r *ReposAPI) Get(ctx context.Context, owner, name string) (repo *Repository, err error) {
	resp, reqErr := r.client.R().
		SetContext(ctx).
		SetPathParam("owner", owner).
		SetPathParam("repo", name).
		SetSuccessResult(&repo).
		SetErrorResult(&APIError{}).
		Get(repoPath)

	if reqErr == nil && resp.GetStatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s/%s", ErrRepositoryNotFound, owner, name)
	}

	if err := handleAPIError(resp, reqErr, "get repository"); err != nil {
		return nil, err
	}

	if repo == nil {
		return nil, fmt.Errorf("get repository: %s/%s: empty response", owner, name)
	}

	return repo, nil
}
