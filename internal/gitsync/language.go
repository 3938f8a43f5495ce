package gitsync

var languageByExtension = map[string]string{
	"html": "html", "htm": "html",
	"css": "css", "scss": "scss", "sass": "sass", "less": "less",
	"js": "javascript", "mjs": "javascript", "cjs": "javascript",
	"jsx": "javascript",
	"ts":  "typescript", "tsx": "typescript",
	"vue": "vue", "svelte": "svelte", "astro": "astro",
	"json": "json", "yml": "yaml", "yaml": "yaml", "toml": "toml",
	"xml": "xml", "svg": "xml",
	"md": "markdown", "markdown": "markdown",
	"sh": "shell", "sql": "sql",
	"py": "python", "rb": "ruby", "go": "go", "rs": "rust",
}

// LanguageForPath derives an editor language tag from a path's
// extension. Unknown extensions fall back to plaintext.
func LanguageForPath(path string) string {
	if lang, ok := languageByExtension[extensionOf(path)]; ok {
		return lang
	}
	return "plaintext"
}
