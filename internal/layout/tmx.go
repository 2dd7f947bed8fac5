package layout

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// tmxLayerName is the layer ImportTMX reads when a map has more than one.
const tmxLayerName = "room"

// ImportTMX converts a Tiled map into a room definition. Map properties
// num, floor and wall fill the definition; num defaults to the file stem.
// Empty tiles become spaces, tiles whose tileset entry has the bool property
// "wall" become walls, and every other tile is floor.
func ImportTMX(fsys fs.FS, tmxPath string) (RoomDefinition, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return RoomDefinition{}, fmt.Errorf("failed to load TMX %s: %w", tmxPath, err)
	}
	if len(levelMap.Layers) == 0 {
		return RoomDefinition{}, fmt.Errorf("failed to load TMX %s: map has no tile layers", tmxPath)
	}

	layer := levelMap.Layers[0]
	for _, l := range levelMap.Layers {
		if l.Name == tmxLayerName {
			layer = l
			break
		}
	}

	rows := make([]string, levelMap.Height)
	row := make([]rune, levelMap.Width)
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			row[x] = tmxSymbol(layer.Tiles[y*levelMap.Width+x])
		}
		rows[y] = strings.TrimRight(string(row), " ")
	}

	num := levelMap.Properties.GetString("num")
	if num == "" {
		num = strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath))
	}

	return RoomDefinition{
		Num:   num,
		Floor: levelMap.Properties.GetString("floor"),
		Wall:  levelMap.Properties.GetString("wall"),
		Text:  strings.Join(rows, "\n"),
	}, nil
}

func tmxSymbol(tile *tiled.LayerTile) rune {
	if tile == nil || tile.IsNil() {
		return SymbolSpace
	}
	if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
		if tilesetTile.Properties.GetBool("wall") {
			return SymbolWall
		}
	}
	return SymbolFloor
}

// LoadTMXRooms imports every .tmx file in dir, sorted by file name.
func LoadTMXRooms(fsys fs.FS, dir string) ([]RoomDefinition, error) {
	pattern := path.Join(dir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list TMX files %s: %w", pattern, err)
	}
	sort.Strings(matches)

	rooms := make([]RoomDefinition, 0, len(matches))
	for _, p := range matches {
		def, err := ImportTMX(fsys, p)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, def)
	}
	return rooms, nil
}
