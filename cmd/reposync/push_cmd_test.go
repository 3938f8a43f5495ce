package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadFilesAppliesFilter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.html", "<h1>hi</h1>")
	writeFile(t, dir, "src/app.js", "console.log('hi')")
	writeFile(t, dir, "package-lock.json", "{}")
	writeFile(t, dir, "node_modules/lib/index.js", "module.exports = {}")
	writeFile(t, dir, "assets/logo.png", "\x89PNG")

	files, err := loadFiles(dir)
	require.NoError(t, err)

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	assert.ElementsMatch(t, []string{"index.html", "src/app.js"}, paths)
}

func TestLoadFilesSetsLanguage(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "style.css", "body {}")

	files, err := loadFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "css", files[0].Language)
	assert.Equal(t, "body {}", files[0].Content)
}
