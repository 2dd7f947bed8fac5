// Package tiles provides TileFactory implementations for the room builder.
package tiles

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/samdwyer/roomlayout/internal/layout"
	"github.com/samdwyer/roomlayout/internal/texture"
)

// Tile is a configured tile object.
type Tile struct {
	ID      uuid.UUID
	Spec    layout.TileSpec
	Pos     layout.Position
	Texture texture.Handle // zero when the key did not resolve
}

// Factory creates Tile values and resolves their textures. It is safe for
// concurrent use as long as the texture registry is not modified.
type Factory struct {
	textures *texture.Registry
	log      *zap.Logger
}

// NewFactory creates a factory resolving textures from textures.
func NewFactory(textures *texture.Registry, log *zap.Logger) *Factory {
	if log == nil {
		log = zap.NewNop()
	}
	return &Factory{textures: textures, log: log}
}

// Create implements layout.TileFactory. A missing texture is logged and the
// tile keeps a zero texture.
func (f *Factory) Create(spec layout.TileSpec, pos layout.Position) (layout.Tile, error) {
	id := uuid.New()
	return &Tile{
		ID:      id,
		Spec:    spec,
		Pos:     pos,
		Texture: resolve(f.textures, f.log, spec.Texture, zap.Stringer("tile", id)),
	}, nil
}

func resolve(textures *texture.Registry, log *zap.Logger, key string, fields ...zap.Field) texture.Handle {
	h, ok := textures.Resolve(key)
	if !ok {
		log.Debug("texture not found", append([]zap.Field{zap.String("texture", key)}, fields...)...)
	}
	return h
}
