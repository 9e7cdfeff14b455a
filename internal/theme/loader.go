package theme

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// loadJSON reads and unmarshals a JSON file from fsys.
func loadJSON[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return result, fmt.Errorf("failed to read theme file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// themesFile represents the structure of a themes JSON file.
type themesFile struct {
	Themes []Def `json:"themes"`
}

// LoadBuiltin loads the themes embedded in the binary.
func LoadBuiltin() ([]Def, error) {
	file, err := loadJSON[themesFile](dataFS, "themes.json")
	if err != nil {
		return nil, err
	}
	return file.Themes, nil
}

// LoadFile loads themes from a JSON file on disk, in the same layout as the
// embedded themes.json.
func LoadFile(path string) ([]Def, error) {
	file, err := loadJSON[themesFile](os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, err
	}
	for i := range file.Themes {
		if err := file.Themes[i].Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return file.Themes, nil
}
