package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input rune
		want  TileSpec
	}{
		{' ', TileSpec{Type: TileEmpty}},
		{'_', TileSpec{Type: TileEmpty}},
		{'.', TileSpec{Type: TileFloor, Height: 0, Texture: "f"}},
		{'|', TileSpec{Type: TileWall, Height: 1, Texture: "w"}},
		{'X', TileSpec{Type: TileFloor, Height: 0, Texture: "f"}},
		{'\t', TileSpec{Type: TileFloor, Height: 0, Texture: "f"}},
		{'é', TileSpec{Type: TileFloor, Height: 0, Texture: "f"}},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, Classify(tt.input, "f", "w"), "Classify(%q)", tt.input)
	}
}

func TestTileTypeString(t *testing.T) {
	assert.Equal(t, "empty", TileEmpty.String())
	assert.Equal(t, "floor", TileFloor.String())
	assert.Equal(t, "wall", TileWall.String())
	assert.Equal(t, "unknown", TileType(42).String())
}

func TestGridString(t *testing.T) {
	grid, _ := build(t, RoomDefinition{Num: "0", Text: "|||\n|X_|\n _.\n"})
	// The trailing newline adds an empty bottom row at y = 0.
	assert.Equal(t, "|||\n|. |\n  .\n", grid.String())
}

func TestGridAtOutOfBounds(t *testing.T) {
	grid := NewRoomGrid("0", 2, 2)
	_, ok := grid.At(-1, 0)
	assert.False(t, ok)
	_, ok = grid.At(2, 0)
	assert.False(t, ok)
	_, _, ok = grid.Bounds()
	assert.False(t, ok)
}
