package gitsync

import (
	"fmt"
	"net/url"
	"strings"
)

// ParseRepoRef parses a user-supplied repository reference into a
// RepoRef. Accepted forms:
//
//	https://host/owner/name[/...]
//	owner/name
//
// The first two non-empty path segments become owner and name; a
// trailing ".git" on the name is dropped. Anything else fails with
// ErrInvalidReference. Pure function, no network access.
func ParseRepoRef(reference string) (RepoRef, error) {
	ref := strings.TrimSpace(reference)
	if ref == "" {
		return RepoRef{}, fmt.Errorf("%w: empty reference", ErrInvalidReference)
	}

	target := ref
	if u, err := url.Parse(ref); err == nil && u.Scheme != "" && u.Host != "" {
		target = u.Path
	}

	segments := splitSegments(target)
	if len(segments) < 2 {
		return RepoRef{}, fmt.Errorf("%w: %q", ErrInvalidReference, reference)
	}

	return RepoRef{
		Owner: segments[0],
		Name:  strings.TrimSuffix(segments[1], ".git"),
	}, nil
}

func splitSegments(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
