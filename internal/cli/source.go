package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/samdwyer/mazewalk/data"
	"github.com/samdwyer/mazewalk/internal/maze"
	"github.com/samdwyer/mazewalk/internal/mazefile"
	"github.com/samdwyer/mazewalk/internal/theme"
)

// samplePrefix selects an embedded maze instead of a file path.
const samplePrefix = "sample:"

// loadGrid reads a maze from a file path or from sample:NAME.
func loadGrid(ctx context.Context, ref string) (*maze.Grid, error) {
	name, ok := strings.CutPrefix(ref, samplePrefix)
	if !ok {
		return mazefile.LoadFile(ctx, ref)
	}

	content, err := data.Read(name)
	if err != nil {
		return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(data.Names(), ", "))
	}
	g, err := mazefile.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parse sample %s: %w", name, err)
	}
	return g, nil
}

// themeRegistry returns the built-in themes plus any from the configured theme file.
func (a *app) themeRegistry() (*theme.Registry, error) {
	registry, err := theme.LoadRegistry()
	if err != nil {
		return nil, err
	}

	if path := a.cfg.GetString(cfgKeyThemeFile); path != "" {
		defs, err := theme.LoadFile(path)
		if err != nil {
			return nil, err
		}
		registry.Add(defs...)
	}
	return registry, nil
}

// palette resolves the configured theme.
func (a *app) palette() (*theme.Palette, error) {
	registry, err := a.themeRegistry()
	if err != nil {
		return nil, err
	}
	return registry.Palette(a.cfg.GetString(cfgKeyTheme))
}
