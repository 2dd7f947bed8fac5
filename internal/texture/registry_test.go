package texture

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/roomlayout/internal/gamedata"
)

func TestResolve(t *testing.T) {
	reg := NewRegistry(
		Handle{Key: "stone", Glyph: '.', Color: tcell.ColorGray},
		Handle{Key: "brick", Glyph: '#', Color: tcell.ColorRed},
		Handle{Key: "stone", Glyph: 'x'},
	)

	h, ok := reg.Resolve("brick")
	require.True(t, ok)
	assert.Equal(t, '#', h.Glyph)

	h, ok = reg.Resolve("stone")
	require.True(t, ok)
	assert.Equal(t, '.', h.Glyph, "first registration wins")
}

func TestResolveMissing(t *testing.T) {
	reg := NewRegistry(Handle{Key: "stone", Glyph: '.'})

	h, ok := reg.Resolve("lava")
	assert.False(t, ok)
	assert.True(t, h.IsZero())

	var nilReg *Registry
	_, ok = nilReg.Resolve("stone")
	assert.False(t, ok)
}

func TestLoadRegistry(t *testing.T) {
	reg, err := LoadRegistry()
	require.NoError(t, err)
	assert.Equal(t, 6, reg.Len())

	h, ok := reg.Resolve("brick")
	require.True(t, ok)
	assert.Equal(t, '#', h.Glyph)
	assert.Equal(t, tcell.NewHexColor(0xB22222), h.Color)
}

func TestFromDefsErrors(t *testing.T) {
	_, err := FromDefs([]gamedata.TextureDef{{Key: "bad", Glyph: ".", Color: "#FFF"}})
	assert.Error(t, err)

	_, err = FromDefs([]gamedata.TextureDef{{Key: "blank", Glyph: "", Color: "#FFFFFF"}})
	assert.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00ff00", true},
		{"invalid", false},
		{"#GG0000", false},
		{"#FFF", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid {
			assert.NoErrorf(t, err, "ParseHexColor(%q)", tt.input)
		} else {
			assert.Errorf(t, err, "ParseHexColor(%q)", tt.input)
		}
	}
}
