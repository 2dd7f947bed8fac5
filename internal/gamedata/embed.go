// Package gamedata provides the embedded room document and texture table.
package gamedata

import "embed"

// dataFS embeds the default data files at build time.
//
//go:embed *.json *.xml
var dataFS embed.FS

// RoomsFile is the name of the embedded default room document.
const RoomsFile = "rooms.xml"
