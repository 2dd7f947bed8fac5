// Package texture resolves symbolic texture keys to drawable handles.
package texture

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomlayout/internal/gamedata"
)

// Handle is a resolved texture. The zero Handle means "no texture".
type Handle struct {
	Key   string
	Glyph rune
	Color tcell.Color
}

// IsZero returns true for the empty handle.
func (h Handle) IsZero() bool {
	return h == Handle{}
}

// Registry is a small table of texture handles searched by key.
type Registry struct {
	textures []Handle
}

// NewRegistry creates a registry over handles.
func NewRegistry(handles ...Handle) *Registry {
	return &Registry{textures: handles}
}

// LoadRegistry builds a registry from the embedded textures.json.
func LoadRegistry() (*Registry, error) {
	defs, err := gamedata.LoadTextures()
	if err != nil {
		return nil, err
	}
	return FromDefs(defs)
}

// FromDefs converts texture definitions into a registry.
func FromDefs(defs []gamedata.TextureDef) (*Registry, error) {
	reg := &Registry{textures: make([]Handle, 0, len(defs))}
	for _, d := range defs {
		color, err := ParseHexColor(d.Color)
		if err != nil {
			return nil, fmt.Errorf("failed to load texture %q: %w", d.Key, err)
		}
		glyph, _ := utf8.DecodeRuneInString(d.Glyph)
		if glyph == utf8.RuneError {
			return nil, fmt.Errorf("failed to load texture %q: missing glyph", d.Key)
		}
		reg.Register(Handle{Key: d.Key, Glyph: glyph, Color: color})
	}
	return reg, nil
}

// Register adds a handle. Earlier registrations win on duplicate keys.
// Not safe to call concurrently with Resolve.
func (r *Registry) Register(h Handle) {
	r.textures = append(r.textures, h)
}

// Resolve returns the first handle registered under key. A missing key
// returns the zero Handle and false; it is never an error.
func (r *Registry) Resolve(key string) (Handle, bool) {
	if r == nil {
		return Handle{}, false
	}
	for _, h := range r.textures {
		if h.Key == key {
			return h, true
		}
	}
	return Handle{}, false
}

// Len returns the number of registered textures.
func (r *Registry) Len() int {
	return len(r.textures)
}
