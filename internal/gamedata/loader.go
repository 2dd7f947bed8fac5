package gamedata

import (
	"encoding/json"
	"fmt"
	"io"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// Open returns a reader over an embedded file.
func Open(filename string) (io.ReadCloser, error) {
	f, err := dataFS.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded file %s: %w", filename, err)
	}
	return f, nil
}

// TextureDef is one entry of textures.json.
type TextureDef struct {
	Key   string `json:"key"`   // Texture key referenced by room floor/wall attributes
	Glyph string `json:"glyph"` // Single character drawn for the tile
	Color string `json:"color"` // Hex color code (e.g., "#9E9E9E")
}

// TexturesFile represents the structure of textures.json.
type TexturesFile struct {
	Textures []TextureDef `json:"textures"`
}

// LoadTextures loads texture definitions from the embedded textures.json file.
func LoadTextures() ([]TextureDef, error) {
	file, err := Load[TexturesFile]("textures.json")
	if err != nil {
		return nil, err
	}
	return file.Textures, nil
}
