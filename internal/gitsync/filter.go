package gitsync

import (
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/forgeline/reposync/internal/githost"
)

// MaxBlobSize is the import size ceiling per file. Anything larger is
// assumed binary or generated and skipped.
const MaxBlobSize int64 = 100_000

// Names excluded from import wherever they appear in the tree:
// lockfiles, build output, dependency dirs, VCS metadata.
var ignoredLines = []string{
	".git/",
	"node_modules/",
	"dist/",
	"build/",
	"out/",
	"coverage/",
	".next/",
	".cache/",
	"vendor/",
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"bun.lockb",
	"composer.lock",
	"Gemfile.lock",
	".DS_Store",
}

// Extensions considered importable text/source content.
var allowedExtensions = map[string]struct{}{
	"html": {}, "htm": {}, "css": {}, "scss": {}, "sass": {}, "less": {},
	"js": {}, "jsx": {}, "mjs": {}, "cjs": {}, "ts": {}, "tsx": {},
	"vue": {}, "svelte": {}, "astro": {},
	"json": {}, "yml": {}, "yaml": {}, "toml": {}, "xml": {},
	"md": {}, "markdown": {}, "txt": {}, "svg": {},
	"sh": {}, "env": {}, "gitignore": {},
	"py": {}, "rb": {}, "go": {}, "rs": {}, "sql": {},
}

// FileFilter decides which tree entries are eligible for import. The
// ignore list is compiled once from fixed configuration; the filter
// itself is a pure predicate.
type FileFilter struct {
	ignore *gitignore.GitIgnore
}

func NewFileFilter() *FileFilter {
	return &FileFilter{
		ignore: gitignore.CompileIgnoreLines(ignoredLines...),
	}
}

// Eligible reports whether a tree entry should be imported.
func (f *FileFilter) Eligible(entry githost.TreeEntry) bool {
	if entry.Type != githost.ObjectBlob {
		return false
	}
	if entry.Size != nil && *entry.Size > MaxBlobSize {
		return false
	}
	return f.EligiblePath(entry.Path)
}

// EligiblePath applies the name and extension rules to a repo-relative
// slash-separated path. Size is not considered; callers with a known
// size check it against MaxBlobSize themselves.
func (f *FileFilter) EligiblePath(path string) bool {
	if f.ignore.MatchesPath(path) {
		return false
	}
	_, ok := allowedExtensions[extensionOf(path)]
	return ok
}

// extensionOf returns the substring after the final dot of the last
// path segment, lowercased. "Dockerfile" has none; ".gitignore" is
// "gitignore".
func extensionOf(path string) string {
	base := path
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	i := strings.LastIndexByte(base, '.')
	if i < 0 || i == len(base)-1 {
		return ""
	}
	return strings.ToLower(base[i+1:])
}
