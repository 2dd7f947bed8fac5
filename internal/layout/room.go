package layout

import (
	"fmt"
	"io"
	"strings"

	"github.com/samdwyer/roomlayout/internal/markup"
)

// RoomDefinition is one <room> entry: its identifier, texture keys and raw grid text.
type RoomDefinition struct {
	Num   string // Identifier, compared by exact string equality
	Floor string // Texture key for floor tiles
	Wall  string // Texture key for wall tiles
	Text  string // Newline separated rows of grid symbols
}

// Rows splits the grid text into rows. Tabs are trimmed from both ends of each
// row so the document can be indented; spaces and underscores are kept because
// they are grid symbols.
func (d RoomDefinition) Rows() []string {
	rows := strings.Split(d.Text, "\n")
	for i := range rows {
		rows[i] = strings.Trim(rows[i], "\t")
	}
	return rows
}

// ParseRooms collects the room elements under the document root, in document order.
func ParseRooms(doc *markup.Node) ([]RoomDefinition, error) {
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("failed to read rooms: document has no root element")
	}

	nodes := root.Elements("room")
	rooms := make([]RoomDefinition, 0, len(nodes))
	for _, n := range nodes {
		rooms = append(rooms, RoomDefinition{
			Num:   n.Attr("num"),
			Floor: n.Attr("floor"),
			Wall:  n.Attr("wall"),
			Text:  n.Text(),
		})
	}
	return rooms, nil
}

// LoadRooms parses a markup document and returns its room definitions.
func LoadRooms(r io.Reader) ([]RoomDefinition, error) {
	doc, err := markup.Parse(r)
	if err != nil {
		return nil, err
	}
	return ParseRooms(doc)
}
