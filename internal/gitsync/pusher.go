package gitsync

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/forgeline/reposync/internal/githost"
)

// PushBatchSize bounds concurrent blob creations. Blob creation has no
// inter-file dependency, so it is the only parallel step of a push.
const PushBatchSize = 5

// Pusher writes a file set back to the remote as one new commit on a
// branch. Steps are strictly sequential: each needs the previous
// step's result hash.
type Pusher struct {
	host *githost.Client
}

func NewPusher(host *githost.Client) *Pusher {
	return &Pusher{host: host}
}

// Push builds blobs, a tree layered on the branch tip's base tree, and
// a commit with that tip as sole parent, then fast-forwards the branch.
//
// A blob creation failure drops that file from the new tree and the
// push continues - omission is recoverable on the next push, a stuck
// operation is not. Everything after the blob step is fatal on error;
// objects already created stay behind as inert unreferenced garbage
// and the branch is left untouched.
func (p *Pusher) Push(ctx context.Context, repo RepoRef, branch string, files []FileRecord, message string) (*PushResult, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	// step 1: resolve the branch tip. This sha is both the commit
	// parent and the precondition for the final ref update.
	ref, err := p.host.Refs.Get(ctx, repo.Owner, repo.Name, branch)
	if err != nil {
		return nil, err
	}
	tip := ref.Object.SHA

	// step 2: the tip commit carries the base tree to layer on.
	tipCommit, err := p.host.Commits.Get(ctx, repo.Owner, repo.Name, tip)
	if err != nil {
		return nil, err
	}
	baseTree := tipCommit.Tree.SHA

	// step 3: blobs, in bounded batches.
	entries, failures := p.createBlobs(ctx, repo, files)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s@%s", ErrAllBlobsFailed, repo, branch)
	}

	// step 4: the new tree, layered on the base.
	newTree, err := p.host.Trees.Create(ctx, repo.Owner, repo.Name, baseTree, entries)
	if err != nil {
		return nil, err
	}

	// step 5: commit, then advance the ref. Non-forcing: a concurrent
	// writer that moved the tip causes a rejection, not an overwrite.
	newCommit, err := p.host.Commits.Create(ctx, repo.Owner, repo.Name, message, newTree, tip)
	if err != nil {
		return nil, err
	}

	if err := p.host.Refs.Update(ctx, repo.Owner, repo.Name, branch, newCommit, tip); err != nil {
		return nil, err
	}

	pushed := make([]string, 0, len(entries))
	for _, e := range entries {
		pushed = append(pushed, e.Path)
	}

	slog.Info("pushed commit",
		"repo", repo.String(),
		"branch", branch,
		"commit", newCommit,
		"files", len(pushed),
		"dropped", len(failures))

	return &PushResult{
		Branch:    branch,
		CommitSHA: newCommit,
		Pushed:    pushed,
		Failures:  failures,
	}, nil
}

// createBlobs uploads every file's content as a blob object, batch by
// batch, preserving input order in the returned tree entries. Failed
// files are logged, dropped, and reported.
func (p *Pusher) createBlobs(ctx context.Context, repo RepoRef, files []FileRecord) ([]githost.NewTreeEntry, []FileFailure) {
	entries := make([]githost.NewTreeEntry, 0, len(files))
	var failures []FileFailure

	for start := 0; start < len(files); start += PushBatchSize {
		batch := files[start:min(start+PushBatchSize, len(files))]

		shas := make([]string, len(batch))
		errs := make([]error, len(batch))

		g, gctx := errgroup.WithContext(ctx)
		for i, file := range batch {
			g.Go(func() error {
				sha, err := p.host.Blobs.Create(gctx, repo.Owner, repo.Name, file.Content)
				shas[i], errs[i] = sha, err
				return nil
			})
		}
		g.Wait() //nolint:errcheck // workers never return errors

		for i, file := range batch {
			if errs[i] != nil {
				slog.Warn("blob create failed, dropping file from commit", "path", file.Path, "error", errs[i])
				failures = append(failures, FileFailure{Path: file.Path, Err: errs[i]})
				continue
			}
			entries = append(entries, githost.NewTreeEntry{
				Path: file.Path,
				Mode: githost.ModeFile,
				Type: githost.ObjectBlob,
				SHA:  shas[i],
			})
		}
	}

	return entries, failures
}
