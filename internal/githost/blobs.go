package githost

import (
	"context"
	"fmt"

	"github.com/imroc/req/v3"
)

const blobCreatePath = "/repos/{owner}/{repo}/git/blobs"

type BlobsAPI struct {
	client *req.Client
}

func newBlobsAPI(client *req.Client) *BlobsAPI {
	return &BlobsAPI{
		client: client,
	}
}

// Fetch retrieves one blob's encoded payload from the absolute object
// URL handed out by a tree listing.
func (b *BlobsAPI) Fetch(ctx context.Context, url string) (blob *Blob, err error) {
	resp, reqErr := b.client.R().
		SetContext(ctx).
		SetSuccessResult(&blob).
		SetErrorResult(&APIError{}).
		Get(url)

	if err := handleAPIError(resp, reqErr, "fetch blob"); err != nil {
		return nil, err
	}

	if blob == nil {
		return nil, fmt.Errorf("fetch blob: %s: empty response", url)
	}

	return blob, nil
}

// Create uploads raw content as a new blob object. The host performs
// the base64 encoding; the body declares the content utf-8. Identical
// content yields the identical sha - blob creation is idempotent.
func (b *BlobsAPI) Create(ctx context.Context, owner, name, content string) (string, error) {
	var ref *ObjectRef

	resp, reqErr := b.client.R().
		SetContext(ctx).
		SetPathParam("owner", owner).
		SetPathParam("repo", name).
		SetBody(&createBlobRequest{
			Content:  content,
			Encoding: "utf-8",
		}).
		SetSuccessResult(&ref).
		SetErrorResult(&APIError{}).
		Post(blobCreatePath)

	if err := handleAPIError(resp, reqErr, "create blob"); err != nil {
		return "", fmt.Errorf("%w: %w", ErrBlobCreateFailed, err)
	}

	if ref == nil {
		return "", fmt.Errorf("%w: empty response", ErrBlobCreateFailed)
	}

	return ref.SHA, nil
}
