package githost

import (
	"fmt"
	"runtime"

	"github.com/forgeline/reposync/internal/version"
)

const (
	HeaderAccept     = "Accept"
	HeaderAPIVersion = "X-GitHub-Api-Version"

	// MediaTypeJSON is the versioned JSON media type sent on every request.
	MediaTypeJSON = "application/vnd.github+json"
	APIVersion    = "2022-11-28"

	// DefaultBaseURL targets the public GitHub API. Self-hosted forges
	// expose the same surface under their own base URL.
	DefaultBaseURL = "https://api.github.com"
)

var UserAgent = fmt.Sprintf("RepoSync/%s (%s/%s)", version.Version, runtime.GOOS, runtime.GOARCH)

// Object kinds as reported by tree listings.
const (
	ObjectBlob = "blob"
	ObjectTree = "tree"
)

// ModeFile is the regular-file mode tagged on every tree entry this
// engine creates.
const ModeFile = "100644"

// Repository is the metadata subset the sync engine needs.
type Repository struct {
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	DefaultBranch string `json:"default_branch"`
	Private       bool   `json:"private"`
}

// TreeEntry is one object reference from a recursive tree listing.
// Size is nil for entries the host reports no size for (subtrees).
type TreeEntry struct {
	Path string `json:"path"`
	Mode string `json:"mode"`
	Type string `json:"type"`
	SHA  string `json:"sha"`
	Size *int64 `json:"size,omitempty"`
	URL  string `json:"url"`
}

// Tree is a recursive tree listing. Truncated is set when the host
// declined to return the full listing.
type Tree struct {
	SHA       string      `json:"sha"`
	Tree      []TreeEntry `json:"tree"`
	Truncated bool        `json:"truncated"`
}

// Blob carries one object's encoded payload.
type Blob struct {
	SHA      string `json:"sha"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
	Size     int64  `json:"size"`
}

// ObjectRef is a bare content-hash reference returned by object creation
// calls and embedded in commit bodies.
type ObjectRef struct {
	SHA string `json:"sha"`
	URL string `json:"url,omitempty"`
}

// Commit is a commit object as returned by the commits endpoint.
type Commit struct {
	SHA     string      `json:"sha"`
	Message string      `json:"message"`
	Tree    ObjectRef   `json:"tree"`
	Parents []ObjectRef `json:"parents"`
}

// Ref is a branch reference pointing at its tip commit.
type Ref struct {
	Ref    string `json:"ref"`
	Object struct {
		Type string `json:"type"`
		SHA  string `json:"sha"`
	} `json:"object"`
}

// NewTreeEntry is one entry of a tree creation request.
type NewTreeEntry struct {
	Path string `json:"path"`
	Mode string `json:"mode"`
	Type string `json:"type"`
	SHA  string `json:"sha"`
}

type createBlobRequest struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

type createTreeRequest struct {
	BaseTree string         `json:"base_tree,omitempty"`
	Tree     []NewTreeEntry `json:"tree"`
}

type createCommitRequest struct {
	Message string   `json:"message"`
	Tree    string   `json:"tree"`
	Parents []string `json:"parents"`
}

type updateRefRequest struct {
	SHA   string `json:"sha"`
	Force bool   `json:"force"`
}
