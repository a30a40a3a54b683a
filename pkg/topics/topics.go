// Package topics serves the embedded documentation shown by
// "romsieve topics", rendered as rich terminal markdown.
package topics

import (
	"embed"
	"io/fs"
	"sort"
	"strings"

	"romsieve/pkg/errors"
)

//go:embed docs/*.md
var docsFS embed.FS

// List returns the available topic names, sorted.
func List() []string {
	entries, err := fs.ReadDir(docsFS, "docs")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

// Show returns the rendered content of a topic.
func Show(name string) (string, error) {
	content, err := docsFS.ReadFile("docs/" + name + ".md")
	if err != nil {
		return "", errors.Newf(errors.ErrNotFound, "unknown topic %q", name)
	}
	return render(string(content)), nil
}
