package theme

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownTheme is returned when a theme ID is not registered.
var ErrUnknownTheme = errors.New("theme: unknown theme")

// Registry holds loaded theme definitions keyed by ID.
type Registry struct {
	themes map[string]*Def
}

// NewRegistry creates a registry from theme definitions. Later definitions
// replace earlier ones with the same ID.
func NewRegistry(defs []Def) *Registry {
	r := &Registry{themes: make(map[string]*Def, len(defs))}
	r.Add(defs...)
	return r
}

// LoadRegistry creates a registry from the embedded themes.json.
func LoadRegistry() (*Registry, error) {
	defs, err := LoadBuiltin()
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, errors.New("no themes loaded from themes.json")
	}
	return NewRegistry(defs), nil
}

// MustLoadRegistry loads the embedded registry, panicking on error.
func MustLoadRegistry() *Registry {
	r, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// Add registers theme definitions, replacing any with the same ID.
func (r *Registry) Add(defs ...Def) {
	for i := range defs {
		def := defs[i]
		r.themes[def.ID] = &def
	}
}

// GetByID returns the theme with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *Def {
	return r.themes[id]
}

// Palette resolves the palette of the theme with the given ID.
func (r *Registry) Palette(id string) (*Palette, error) {
	def := r.GetByID(id)
	if def == nil {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownTheme, id, r.IDs())
	}
	return def.Palette(), nil
}

// IDs returns the registered theme IDs, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.themes))
	for id := range r.themes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of registered themes.
func (r *Registry) Count() int {
	return len(r.themes)
}
