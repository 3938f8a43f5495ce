package githost

import (
	"github.com/imroc/req/v3"
)

// Client is the entrypoint for the Git-hosting REST API. One configured
// HTTP client is shared by all resource-scoped APIs.
//
// Retries are intentionally not configured: a failed synchronization step
// must be surfaced to the caller, which re-runs the whole sequence against
// a freshly resolved branch tip.
type Client struct {
	http    *req.Client
	baseURL string

	Repos   *ReposAPI
	Blobs   *BlobsAPI
	Trees   *TreesAPI
	Commits *CommitsAPI
	Refs    *RefsAPI
}

// New creates a new Client for the given API base URL.
func New(baseURL string) *Client {
	http := req.C().
		SetBaseURL(baseURL).
		SetUserAgent(UserAgent).
		SetCommonHeader(HeaderAccept, MediaTypeJSON).
		SetCommonHeader(HeaderAPIVersion, APIVersion).
		SetJsonMarshal(jsonMarshal).
		SetJsonUnmarshal(jsonUnmarshal)

	return &Client{
		http:    http,
		baseURL: baseURL,
		Repos:   newReposAPI(http),
		Blobs:   newBlobsAPI(http),
		Trees:   newTreesAPI(http),
		Commits: newCommitsAPI(http),
		Refs:    newRefsAPI(http),
	}
}

// SetToken sets the bearer credential used for subsequent requests.
// Read operations against public repositories work without one.
func (c *Client) SetToken(token string) *Client {
	if token != "" {
		c.http.SetCommonBearerAuthToken(token)
	}
	return c
}

// Close terminates idle connections held by the underlying client.
func (c *Client) Close() {
	c.http.GetClient().CloseIdleConnections()
}
