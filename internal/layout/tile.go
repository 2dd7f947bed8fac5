// Package layout turns room definitions into grids of typed tiles.
package layout

// TileType is the classification of a single grid character.
type TileType int

const (
	// TileEmpty marks a blank cell. No tile is created for it.
	TileEmpty TileType = iota
	// TileFloor is a walkable floor tile at height 0.
	TileFloor
	// TileWall is a wall tile at height 1.
	TileWall
)

// String returns a human-readable tile type name.
func (t TileType) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	default:
		return "unknown"
	}
}

// Grid symbols understood by Classify.
const (
	SymbolSpace      = ' '
	SymbolUnderscore = '_'
	SymbolFloor      = '.'
	SymbolWall       = '|'
)

// TileSpec is the classified type, height and texture key of one grid cell.
type TileSpec struct {
	Type    TileType
	Height  int
	Texture string
}

// Symbol returns the canonical grid character for the spec.
func (s TileSpec) Symbol() rune {
	switch s.Type {
	case TileFloor:
		return SymbolFloor
	case TileWall:
		return SymbolWall
	default:
		return SymbolSpace
	}
}

// Classify maps a grid character to a tile spec using the room's floor and
// wall texture keys. Unrecognized characters become floor tiles.
func Classify(r rune, floorTex, wallTex string) TileSpec {
	switch r {
	case SymbolSpace, SymbolUnderscore:
		return TileSpec{Type: TileEmpty}
	case SymbolWall:
		return TileSpec{Type: TileWall, Height: 1, Texture: wallTex}
	default: // '.' and anything unrecognized
		return TileSpec{Type: TileFloor, Height: 0, Texture: floorTex}
	}
}

// Position is a tile's placement. Z is 0 for every built tile.
type Position struct {
	X, Y, Z int
}

// Tile is the opaque object a TileFactory produces for one cell.
type Tile any

// TileFactory creates the tile object for one occupied cell.
// Implementations must be safe for concurrent use if rooms are built concurrently.
type TileFactory interface {
	Create(spec TileSpec, pos Position) (Tile, error)
}

// StagedFactory is a TileFactory that keeps its tiles outside the grid.
// Build calls Begin before the first Create and then exactly one of Commit,
// when the grid is complete, or Discard, when the build aborts.
type StagedFactory interface {
	TileFactory
	Begin(room string)
	Commit()
	Discard()
}

// TileFactoryFunc adapts an ordinary function to a TileFactory.
type TileFactoryFunc func(spec TileSpec, pos Position) (Tile, error)

// Create calls f(spec, pos).
func (f TileFactoryFunc) Create(spec TileSpec, pos Position) (Tile, error) {
	return f(spec, pos)
}
