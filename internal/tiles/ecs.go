package tiles

import (
	"sync"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"go.uber.org/zap"

	"github.com/samdwyer/roomlayout/internal/layout"
	"github.com/samdwyer/roomlayout/internal/texture"
)

// TileData is the ECS component carrying a tile's classification and texture.
type TileData struct {
	Spec    layout.TileSpec
	Texture texture.Handle
}

// PositionData is the ECS component carrying a tile's placement.
type PositionData struct {
	X, Y, Z int
}

var (
	TileComponent     = donburi.NewComponentType[TileData]()
	PositionComponent = donburi.NewComponentType[PositionData]()
)

var tileQuery = donburi.NewQuery(filter.Contains(TileComponent, PositionComponent))

// ECSFactory materializes each tile as an entity in a donburi world.
// It is a layout.StagedFactory: a build writes into a fresh staging world
// that replaces the live world only on Commit, so an aborted build leaves
// the previous room's entities untouched. Builds through one factory are
// serialized; the world itself is only touched under mu.
type ECSFactory struct {
	build sync.Mutex // held from Begin until Commit or Discard

	mu      sync.Mutex
	world   donburi.World
	staging donburi.World
	room    string

	textures *texture.Registry
	log      *zap.Logger
}

var _ layout.StagedFactory = (*ECSFactory)(nil)

// NewECSFactory creates a factory over an empty world.
func NewECSFactory(textures *texture.Registry, log *zap.Logger) *ECSFactory {
	if log == nil {
		log = zap.NewNop()
	}
	return &ECSFactory{
		world:    donburi.NewWorld(),
		textures: textures,
		log:      log,
	}
}

// Begin starts a build of room into a fresh staging world.
func (f *ECSFactory) Begin(room string) {
	f.build.Lock()

	f.mu.Lock()
	defer f.mu.Unlock()
	f.staging = donburi.NewWorld()
	f.room = room
}

// Create implements layout.TileFactory and returns the entity's *donburi.Entry.
// Outside a build the entity goes straight into the live world.
func (f *ECSFactory) Create(spec layout.TileSpec, pos layout.Position) (layout.Tile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w := f.staging
	if w == nil {
		w = f.world
	}
	entry := w.Entry(w.Create(TileComponent, PositionComponent))
	donburi.SetValue(entry, TileComponent, TileData{
		Spec:    spec,
		Texture: resolve(f.textures, f.log, spec.Texture, zap.Int("x", pos.X), zap.Int("y", pos.Y)),
	})
	donburi.SetValue(entry, PositionComponent, PositionData{X: pos.X, Y: pos.Y, Z: pos.Z})
	return entry, nil
}

// Commit makes the staging world live. Entities of the replaced world stay
// readable through the grid that still holds them.
func (f *ECSFactory) Commit() {
	defer f.build.Unlock()

	f.mu.Lock()
	f.world, f.staging = f.staging, nil
	room, n := f.room, tileQuery.Count(f.world)
	f.mu.Unlock()

	f.log.Debug("tile world committed", zap.String("room", room), zap.Int("entities", n))
}

// Discard drops the staging world of an aborted build.
func (f *ECSFactory) Discard() {
	defer f.build.Unlock()

	f.mu.Lock()
	room := f.room
	f.staging = nil
	f.mu.Unlock()

	f.log.Debug("tile world discarded", zap.String("room", room))
}

// Count returns the number of tile entities in the live world.
func (f *ECSFactory) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return tileQuery.Count(f.world)
}

// TextureOf returns the texture a factory in this package resolved for tile.
// Tiles of any other kind, and entities no longer alive, yield the zero handle.
func TextureOf(tile layout.Tile) texture.Handle {
	switch t := tile.(type) {
	case *Tile:
		return t.Texture
	case *donburi.Entry:
		if t == nil || !t.Valid() || !t.HasComponent(TileComponent) {
			return texture.Handle{}
		}
		return TileComponent.Get(t).Texture
	}
	return texture.Handle{}
}
