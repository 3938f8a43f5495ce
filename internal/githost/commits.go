package githost

import (
	"context"
	"fmt"

	"github.com/imroc/req/v3"
)

const (
	commitGetPath    = "/repos/{owner}/{repo}/git/commits/{sha}"
	commitCreatePath = "/repos/{owner}/{repo}/git/commits"
)

type CommitsAPI struct {
	client *req.Client
}

func newCommitsAPI(client *req.Client) *CommitsAPI {
	return &CommitsAPI{
		client: client,
	}
}

// Get fetches a commit object. The sync engine uses it to resolve a
// branch tip to its base tree.
func (c *CommitsAPI) Get(ctx context.Context, owner, name, sha string) (commit *Commit, err error) {
	resp, reqErr := c.client.R().
		SetContext(ctx).
		SetPathParam("owner", owner).
		SetPathParam("repo", name).
		SetPathParam("sha", sha).
		SetSuccessResult(&commit).
		SetErrorResult(&APIError{}).
		Get(commitGetPath)

	if err := handleAPIError(resp, reqErr, "get commit"); err != nil {
		return nil, err
	}

	if commit == nil {
		return nil, fmt.Errorf("get commit: %s: empty response", sha)
	}

	return commit, nil
}

// Create writes a new commit object pointing at tree, with parent as
// its sole parent. Linear history only - merge commits are never
// produced by this engine.
func (c *CommitsAPI) Create(ctx context.Context, owner, name, message, tree, parent string) (string, error) {
	var ref *ObjectRef

	resp, reqErr := c.client.R().
		SetContext(ctx).
		SetPathParam("owner", owner).
		SetPathParam("repo", name).
		SetBody(&createCommitRequest{
			Message: message,
			Tree:    tree,
			Parents: []string{parent},
		}).
		SetSuccessResult(&ref).
		SetErrorResult(&APIError{}).
		Post(commitCreatePath)

	if err := handleAPIError(resp, reqErr, "create commit"); err != nil {
		return "", fmt.Errorf("%w: %w", ErrCommitCreateFailed, err)
	}

	if ref == nil {
		return "", fmt.Errorf("%w: empty response", ErrCommitCreateFailed)
	}

	return ref.SHA, nil
}
