package layout

import "strings"

const (
	// DefaultWidth and DefaultHeight bound every room grid unless overridden.
	DefaultWidth  = 100
	DefaultHeight = 100
)

// GridCell is one coordinate-addressed slot of a RoomGrid.
type GridCell struct {
	X, Y int
	Spec TileSpec
	Tile Tile // nil for cells that were never populated
}

// Occupied returns true if a tile was created for the cell.
func (c GridCell) Occupied() bool {
	return c.Tile != nil
}

// RoomGrid is a fixed-extent sparse grid of built tiles, stored as a flat
// arena indexed by y*width+x.
type RoomGrid struct {
	room   string
	width  int
	height int
	cells  []GridCell
	order  []int // arena indices of occupied cells in build order
}

// NewRoomGrid allocates an empty grid of the given extent.
func NewRoomGrid(room string, width, height int) *RoomGrid {
	return &RoomGrid{
		room:   room,
		width:  width,
		height: height,
		cells:  make([]GridCell, width*height),
	}
}

// Room returns the identifier of the room the grid was built from.
func (g *RoomGrid) Room() string { return g.room }

// Width returns the grid's horizontal extent.
func (g *RoomGrid) Width() int { return g.width }

// Height returns the grid's vertical extent.
func (g *RoomGrid) Height() int { return g.height }

// Len returns the number of occupied cells.
func (g *RoomGrid) Len() int { return len(g.order) }

// InBounds returns true if (x, y) lies inside the grid extent.
func (g *RoomGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell at (x, y) and whether it is occupied.
func (g *RoomGrid) At(x, y int) (GridCell, bool) {
	if !g.InBounds(x, y) {
		return GridCell{}, false
	}
	c := g.cells[y*g.width+x]
	return c, c.Occupied()
}

// Cells returns the occupied cells in the order they were built.
func (g *RoomGrid) Cells() []GridCell {
	result := make([]GridCell, 0, len(g.order))
	for _, i := range g.order {
		result = append(result, g.cells[i])
	}
	return result
}

// set stores an occupied cell. Callers check bounds first.
func (g *RoomGrid) set(c GridCell) {
	i := c.Y*g.width + c.X
	if !g.cells[i].Occupied() {
		g.order = append(g.order, i)
	}
	g.cells[i] = c
}

// Bounds returns the smallest extent covering every occupied cell.
// ok is false for an empty grid.
func (g *RoomGrid) Bounds() (maxX, maxY int, ok bool) {
	for _, i := range g.order {
		c := g.cells[i]
		if !ok || c.X > maxX {
			maxX = c.X
		}
		if !ok || c.Y > maxY {
			maxY = c.Y
		}
		ok = true
	}
	return maxX, maxY, ok
}

// String draws the occupied area with the highest y on the first line.
// Empty cells are spaces and trailing spaces are dropped.
func (g *RoomGrid) String() string {
	maxX, maxY, ok := g.Bounds()
	if !ok {
		return ""
	}

	var sb strings.Builder
	row := make([]rune, maxX+1)
	for y := maxY; y >= 0; y-- {
		for x := range row {
			row[x] = SymbolSpace
			if c, occupied := g.At(x, y); occupied {
				row[x] = c.Spec.Symbol()
			}
		}
		sb.WriteString(strings.TrimRight(string(row), " "))
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
