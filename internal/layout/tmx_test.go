package layout

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tmxTileset = `
 <tileset firstgid="1" name="room" tilewidth="16" tileheight="16" tilecount="2" columns="2">
  <image source="room.png" width="32" height="16"/>
  <tile id="1">
   <properties>
    <property name="wall" type="bool" value="true"/>
   </properties>
  </tile>
 </tileset>`

const vaultTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="16" tileheight="16" infinite="0">
 <properties>
  <property name="num" value="7"/>
  <property name="floor" value="stone"/>
  <property name="wall" value="brick"/>
 </properties>` + tmxTileset + `
 <layer id="1" name="decor" width="3" height="2">
  <data encoding="csv">
0,0,0,
0,0,0
</data>
 </layer>
 <layer id="2" name="room" width="3" height="2">
  <data encoding="csv">
2,2,2,
2,1,0
</data>
 </layer>
</map>`

const hallTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="1" tilewidth="16" tileheight="16" infinite="0">
 <properties>
  <property name="floor" value="wood"/>
 </properties>` + tmxTileset + `
 <layer id="1" name="ground" width="2" height="1">
  <data encoding="csv">
1,1
</data>
 </layer>
</map>`

func tmxFS() fstest.MapFS {
	return fstest.MapFS{
		"maps/vault.tmx": {Data: []byte(vaultTMX)},
		"maps/hall.tmx":  {Data: []byte(hallTMX)},
		"maps/notes.txt": {Data: []byte("not a map")},
	}
}

func TestImportTMX(t *testing.T) {
	def, err := ImportTMX(tmxFS(), "maps/vault.tmx")
	require.NoError(t, err)

	assert.Equal(t, RoomDefinition{Num: "7", Floor: "stone", Wall: "brick", Text: "|||\n|."}, def)
}

func TestImportTMXBuildsLikeText(t *testing.T) {
	def, err := ImportTMX(tmxFS(), "maps/vault.tmx")
	require.NoError(t, err)

	fromTMX, _ := build(t, def)
	fromText, _ := build(t, RoomDefinition{Num: "7", Floor: "stone", Wall: "brick", Text: "|||\n|."})
	assert.Equal(t, fromText.String(), fromTMX.String())
	assert.Equal(t, 5, fromTMX.Len())
}

func TestLoadTMXRooms(t *testing.T) {
	rooms, err := LoadTMXRooms(tmxFS(), "maps")
	require.NoError(t, err)
	require.Len(t, rooms, 2)

	// Sorted by file name; hall.tmx has no num so its stem is used.
	assert.Equal(t, "hall", rooms[0].Num)
	assert.Equal(t, "wood", rooms[0].Floor)
	assert.Equal(t, "..", rooms[0].Text)
	assert.Equal(t, "7", rooms[1].Num)
}

func TestImportTMXMissingFile(t *testing.T) {
	_, err := ImportTMX(tmxFS(), "maps/missing.tmx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load TMX maps/missing.tmx")
}
