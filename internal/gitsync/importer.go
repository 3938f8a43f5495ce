package gitsync

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/forgeline/reposync/internal/githost"
)

// FetchBatchSize bounds how many blob downloads run concurrently. Each
// batch completes before the next starts, capping peak outstanding
// connections regardless of repository size.
const FetchBatchSize = 5

// Importer projects a remote repository's eligible file tree into
// FileRecords. It never mutates the remote.
type Importer struct {
	host   *githost.Client
	filter *FileFilter
}

func NewImporter(host *githost.Client) *Importer {
	return &Importer{
		host:   host,
		filter: NewFileFilter(),
	}
}

// ListTree resolves the branch (the repository default when empty) and
// fetches the full recursive tree listing in one call. It returns the
// listing together with the branch it resolved.
func (im *Importer) ListTree(ctx context.Context, repo RepoRef, branch string) ([]githost.TreeEntry, string, error) {
	meta, err := im.host.Repos.Get(ctx, repo.Owner, repo.Name)
	if err != nil {
		return nil, "", err
	}

	if branch == "" {
		branch = meta.DefaultBranch
	}

	tree, err := im.host.Trees.Get(ctx, repo.Owner, repo.Name, branch, true)
	if err != nil {
		return nil, "", err
	}

	return tree.Tree, branch, nil
}

// FetchContent filters entries and downloads the content of every
// eligible blob in bounded batches. A fetch or decode failure for one
// file is recorded as a FileFailure and does not abort the batch; the
// caller decides whether to surface or skip them.
func (im *Importer) FetchContent(ctx context.Context, entries []githost.TreeEntry) ([]FileRecord, []FileFailure, error) {
	var eligible []githost.TreeEntry
	for _, entry := range entries {
		if im.filter.Eligible(entry) {
			eligible = append(eligible, entry)
		}
	}

	files := make([]FileRecord, 0, len(eligible))
	var failures []FileFailure

	for start := 0; start < len(eligible); start += FetchBatchSize {
		batch := eligible[start:min(start+FetchBatchSize, len(eligible))]

		records := make([]*FileRecord, len(batch))
		errs := make([]error, len(batch))

		g, gctx := errgroup.WithContext(ctx)
		for i, entry := range batch {
			g.Go(func() error {
				content, err := im.fetchBlobText(gctx, entry)
				if err != nil {
					errs[i] = err
					return nil
				}
				records[i] = &FileRecord{
					Path:     entry.Path,
					Content:  content,
					Language: LanguageForPath(entry.Path),
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		for i, entry := range batch {
			if errs[i] != nil {
				slog.Warn("skipping file", "path", entry.Path, "error", errs[i])
				failures = append(failures, FileFailure{Path: entry.Path, Err: errs[i]})
				continue
			}
			files = append(files, *records[i])
		}
	}

	return files, failures, nil
}

func (im *Importer) fetchBlobText(ctx context.Context, entry githost.TreeEntry) (string, error) {
	blob, err := im.host.Blobs.Fetch(ctx, entry.URL)
	if err != nil {
		return "", err
	}

	if blob.Encoding != "base64" {
		return blob.Content, nil
	}

	// hosts wrap base64 payloads with newlines
	raw := strings.Map(dropSpace, blob.Content)
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrBlobDecodeFailed, entry.Path, err)
	}

	return string(decoded), nil
}

func dropSpace(r rune) rune {
	switch r {
	case '\n', '\r', ' ', '\t':
		return -1
	}
	return r
}
