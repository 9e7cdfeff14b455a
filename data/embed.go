// Package data provides the sample mazes shipped with mazewalk.
package data

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// mazeExt is the file extension of embedded maze descriptions.
const mazeExt = ".maze"

// dataFS embeds all maze descriptions from the data directory at build time.
//
//go:embed *.maze
var dataFS embed.FS

// Names returns the sample names, sorted, without the file extension.
func Names() []string {
	matches, err := fs.Glob(dataFS, "*"+mazeExt)
	if err != nil {
		// Only returned for a malformed pattern.
		panic(err)
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(m, mazeExt))
	}
	sort.Strings(names)
	return names
}

// Read returns the description of the named sample.
func Read(name string) ([]byte, error) {
	content, err := dataFS.ReadFile(path.Clean(name) + mazeExt)
	if err != nil {
		return nil, fmt.Errorf("failed to read sample maze %s: %w", name, err)
	}
	return content, nil
}
