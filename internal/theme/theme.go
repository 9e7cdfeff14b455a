package theme

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazewalk/internal/maze"
)

// DefaultID names the theme used when none is configured.
const DefaultID = "classic"

// Def defines a colour theme loaded from JSON. Colours are hex strings.
type Def struct {
	ID    string `json:"id"`    // Unique identifier (e.g., "classic")
	Name  string `json:"name"`  // Display name
	Wall  string `json:"wall"`  // Wall cells
	Path  string `json:"path"`  // Cells on the found route
	Tried string `json:"tried"` // Abandoned cells
	Empty string `json:"empty"` // Open, unvisited cells
	Start string `json:"start"` // Start marker
	Exit  string `json:"exit"`  // Exit marker
}

// Validate checks that the theme has an ID and that every colour parses.
func (d *Def) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("theme %q has no id", d.Name)
	}
	for field, hex := range map[string]string{
		"wall": d.Wall, "path": d.Path, "tried": d.Tried,
		"empty": d.Empty, "start": d.Start, "exit": d.Exit,
	} {
		if _, err := ParseHexColor(hex); err != nil {
			return fmt.Errorf("theme %s: %s: %w", d.ID, field, err)
		}
	}
	return nil
}

// Palette holds the resolved tcell styles of a theme.
type Palette struct {
	ID    string
	marks map[maze.Mark]tcell.Style
	start tcell.Style
	exit  tcell.Style
}

// Palette resolves the theme's colours. Invalid colours fall back to white.
func (d *Def) Palette() *Palette {
	fg := func(hex string) tcell.Style {
		return tcell.StyleDefault.Foreground(colorOr(hex, tcell.ColorWhite))
	}
	return &Palette{
		ID: d.ID,
		marks: map[maze.Mark]tcell.Style{
			maze.Wall:  fg(d.Wall).Background(colorOr(d.Wall, tcell.ColorGray)),
			maze.Path:  fg(d.Path).Bold(true),
			maze.Tried: fg(d.Tried),
			maze.Empty: fg(d.Empty),
		},
		start: fg(d.Start).Bold(true),
		exit:  fg(d.Exit).Bold(true),
	}
}

// Style returns the style for a cell mark.
func (p *Palette) Style(m maze.Mark) tcell.Style {
	if s, ok := p.marks[m]; ok {
		return s
	}
	return tcell.StyleDefault
}

// StartStyle returns the style for the start marker.
func (p *Palette) StartStyle() tcell.Style {
	return p.start
}

// ExitStyle returns the style for the exit marker.
func (p *Palette) ExitStyle() tcell.Style {
	return p.exit
}
