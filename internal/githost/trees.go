package githost

import (
	"context"
	"fmt"

	"github.com/imroc/req/v3"
)

const (
	treeGetPath    = "/repos/{owner}/{repo}/git/trees/{ref}"
	treeCreatePath = "/repos/{owner}/{repo}/git/trees"
)

type TreesAPI struct {
	client *req.Client
}

func newTreesAPI(client *req.Client) *TreesAPI {
	return &TreesAPI{
		client: client,
	}
}

// Get fetches the tree for a ref. With recursive set, the returned
// listing is flat and covers the entire file tree in one call. A
// truncated listing is reported as ErrTreeUnavailable - it is a
// capacity limit of the host, not a transient condition.
func (t *TreesAPI) Get(ctx context.Context, owner, name, ref string, recursive bool) (tree *Tree, err error) {
	r := t.client.R().
		SetContext(ctx).
		SetPathParam("owner", owner).
		SetPathParam("repo", name).
		SetPathParam("ref", ref).
		SetSuccessResult(&tree).
		SetErrorResult(&APIError{})

	if recursive {
		r.SetQueryParam("recursive", "1")
	}

	resp, reqErr := r.Get(treeGetPath)

	if reqErr == nil && resp.IsErrorState() {
		return nil, fmt.Errorf("%w: %s/%s@%s: HTTP %d", ErrTreeUnavailable, owner, name, ref, resp.GetStatusCode())
	}

	if err := handleAPIError(resp, reqErr, "get tree"); err != nil {
		return nil, err
	}

	if tree == nil {
		return nil, fmt.Errorf("%w: %s/%s@%s: empty response", ErrTreeUnavailable, owner, name, ref)
	}

	if tree.Truncated {
		return nil, fmt.Errorf("%w: %s/%s@%s: listing truncated by host", ErrTreeUnavailable, owner, name, ref)
	}

	return tree, nil
}

// Create writes a new tree object layered on baseTree. The returned sha
// addresses the tree and feeds the subsequent commit creation.
func (t *TreesAPI) Create(ctx context.Context, owner, name, baseTree string, entries []NewTreeEntry) (string, error) {
	var ref *ObjectRef

	resp, reqErr := t.client.R().
		SetContext(ctx).
		SetPathParam("owner", owner).
		SetPathParam("repo", name).
		SetBody(&createTreeRequest{
			BaseTree: baseTree,
			Tree:     entries,
		}).
		SetSuccessResult(&ref).
		SetErrorResult(&APIError{}).
		Post(treeCreatePath)

	if err := handleAPIError(resp, reqErr, "create tree"); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTreeCreateFailed, err)
	}

	if ref == nil {
		return "", fmt.Errorf("%w: empty response", ErrTreeCreateFailed)
	}

	return ref.SHA, nil
}
