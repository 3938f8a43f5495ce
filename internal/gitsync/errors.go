package gitsync

import "errors"

var (
	// ErrInvalidReference means the repository reference was neither a
	// URL with owner/name path segments nor an owner/name shorthand.
	ErrInvalidReference = errors.New("gitsync: invalid repository reference")

	// ErrNoEligibleFiles means an import produced zero usable files
	// after filtering - not actionable by the caller, so it fails.
	ErrNoEligibleFiles = errors.New("gitsync: no eligible files")

	// ErrNoFiles means a push was attempted with an empty file set.
	ErrNoFiles = errors.New("gitsync: push requires at least one file")

	// ErrBlobDecodeFailed is a per-file import failure: the blob's
	// payload could not be decoded into text.
	ErrBlobDecodeFailed = errors.New("gitsync: blob decode failed")

	// ErrAllBlobsFailed means every blob creation of a push failed, so
	// there was nothing to commit.
	ErrAllBlobsFailed = errors.New("gitsync: all blob creations failed")
)
