package gitsync

import (
	"context"
	"fmt"

	"github.com/forgeline/reposync/internal/githost"
)

// Engine is the facade the surrounding application talks to: Import
// pulls a remote repository's eligible files, Push writes an edited
// file set back as one commit. Each call is a self-contained sequence
// of remote calls; no state is shared between invocations.
type Engine struct {
	importer *Importer
	pusher   *Pusher
}

func NewEngine(host *githost.Client) *Engine {
	return &Engine{
		importer: NewImporter(host),
		pusher:   NewPusher(host),
	}
}

// Import resolves reference, lists the default branch's tree, and
// fetches every eligible file. An import that yields zero usable files
// fails with ErrNoEligibleFiles.
func (e *Engine) Import(ctx context.Context, reference string) (*ImportResult, error) {
	return e.ImportBranch(ctx, reference, "")
}

// ImportBranch is Import against an explicit branch instead of the
// repository default.
func (e *Engine) ImportBranch(ctx context.Context, reference, branch string) (*ImportResult, error) {
	repo, err := ParseRepoRef(reference)
	if err != nil {
		return nil, err
	}

	entries, branch, err := e.importer.ListTree(ctx, repo, branch)
	if err != nil {
		return nil, err
	}

	files, failures, err := e.importer.FetchContent(ctx, entries)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s@%s", ErrNoEligibleFiles, repo, branch)
	}

	return &ImportResult{
		RepoName: repo.Name,
		Branch:   branch,
		Files:    files,
		Failures: failures,
	}, nil
}

// Push writes files to branch as one new commit with message.
func (e *Engine) Push(ctx context.Context, repo RepoRef, branch string, files []FileRecord, message string) (*PushResult, error) {
	return e.pusher.Push(ctx, repo, branch, files, message)
}
