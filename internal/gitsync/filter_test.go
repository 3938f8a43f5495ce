package gitsync

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forgeline/reposync/internal/githost"
)

func blobEntry(path string, size int64) githost.TreeEntry {
	return githost.TreeEntry{Path: path, Type: githost.ObjectBlob, Size: &size}
}

func TestFileFilterEligible(t *testing.T) {
	filter := NewFileFilter()

	tests := []struct {
		name  string
		entry githost.TreeEntry
		want  bool
	}{
		{
			name:  "plain html file",
			entry: blobEntry("index.html", 120),
			want:  true,
		},
		{
			name:  "nested source file",
			entry: blobEntry("src/components/App.tsx", 2048),
			want:  true,
		},
		{
			name:  "tree entry rejected",
			entry: githost.TreeEntry{Path: "src", Type: githost.ObjectTree},
			want:  false,
		},
		{
			name:  "lockfile at root",
			entry: blobEntry("package-lock.json", 10),
			want:  false,
		},
		{
			name:  "lockfile nested",
			entry: blobEntry("packages/app/yarn.lock", 10),
			want:  false,
		},
		{
			name:  "inside node_modules",
			entry: blobEntry("node_modules/react/index.js", 10),
			want:  false,
		},
		{
			name:  "node_modules deep in tree",
			entry: blobEntry("examples/demo/node_modules/lib/a.js", 10),
			want:  false,
		},
		{
			name:  "vcs metadata",
			entry: blobEntry(".git/config", 10),
			want:  false,
		},
		{
			name:  "build output dir",
			entry: blobEntry("dist/bundle.js", 10),
			want:  false,
		},
		{
			name:  "binary extension",
			entry: blobEntry("assets/logo.png", 10),
			want:  false,
		},
		{
			name:  "no extension",
			entry: blobEntry("Dockerfile", 10),
			want:  false,
		},
		{
			name:  "exactly at size ceiling",
			entry: blobEntry("big.css", MaxBlobSize),
			want:  true,
		},
		{
			name:  "above size ceiling",
			entry: blobEntry("huge.css", MaxBlobSize+1),
			want:  false,
		},
		{
			name: "no reported size passes size check",
			entry: githost.TreeEntry{
				Path: "style.css",
				Type: githost.ObjectBlob,
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filter.Eligible(tt.entry))
		})
	}
}

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"index.html", "html"},
		{"src/App.TSX", "tsx"},
		{"archive.tar.gz", "gz"},
		{"Dockerfile", ""},
		{"src/v1.2/main.js", "js"},
		{"trailingdot.", ""},
		{".gitignore", "gitignore"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extensionOf(tt.path), "path %q", tt.path)
	}
}

func TestLanguageForPath(t *testing.T) {
	assert.Equal(t, "html", LanguageForPath("index.html"))
	assert.Equal(t, "typescript", LanguageForPath("src/App.tsx"))
	assert.Equal(t, "javascript", LanguageForPath("main.mjs"))
	assert.Equal(t, "markdown", LanguageForPath("README.md"))
	assert.Equal(t, "plaintext", LanguageForPath("notes.txt"))
	assert.Equal(t, "plaintext", LanguageForPath("Dockerfile"))
}
