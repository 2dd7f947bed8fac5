package layout

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Registry holds the loaded room definitions and the most recently built grid.
// Definitions never change after construction; the current room and grid are
// replaced only by a successful build.
type Registry struct {
	rooms   []RoomDefinition
	builder *Builder
	log     *zap.Logger

	mu      sync.RWMutex
	current string
	grid    *RoomGrid
}

// NewRegistry creates a registry over rooms. startRoom becomes the current
// room id for BuildCurrent until another room is built.
func NewRegistry(rooms []RoomDefinition, builder *Builder, startRoom string, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		rooms:   rooms,
		builder: builder,
		log:     log,
		current: startRoom,
	}
}

// FindRoom returns the first room whose num equals id.
func (r *Registry) FindRoom(id string) (RoomDefinition, error) {
	for i := range r.rooms {
		if r.rooms[i].Num == id {
			return r.rooms[i], nil
		}
	}
	return RoomDefinition{}, fmt.Errorf("%w: %q", ErrRoomNotFound, id)
}

// BuildRoom looks up id and builds it. A missing room is logged and returned
// as an error; the current grid is left untouched.
func (r *Registry) BuildRoom(ctx context.Context, id string) (*RoomGrid, error) {
	def, err := r.FindRoom(id)
	if err != nil {
		r.log.Error("room not found", zap.String("room", id))
		return nil, err
	}
	return r.BuildDefinition(ctx, def)
}

// BuildCurrent rebuilds the current room.
func (r *Registry) BuildCurrent(ctx context.Context) (*RoomGrid, error) {
	return r.BuildRoom(ctx, r.Current())
}

// BuildDefinition builds def and, on success, makes it the current room.
func (r *Registry) BuildDefinition(ctx context.Context, def RoomDefinition) (*RoomGrid, error) {
	grid, err := r.builder.Build(ctx, def)
	if err != nil {
		r.log.Error("room build failed", zap.String("room", def.Num), zap.Error(err))
		return nil, err
	}

	r.mu.Lock()
	r.current = def.Num
	r.grid = grid
	r.mu.Unlock()

	r.log.Debug("room built",
		zap.String("room", def.Num),
		zap.Int("tiles", grid.Len()),
	)
	return grid, nil
}

// Current returns the id of the current room.
func (r *Registry) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Grid returns the most recently built grid, or nil if nothing was built yet.
func (r *Registry) Grid() *RoomGrid {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.grid
}

// IDs returns every room id in document order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.rooms))
	for i := range r.rooms {
		ids[i] = r.rooms[i].Num
	}
	return ids
}

// Len returns the number of room definitions.
func (r *Registry) Len() int {
	return len(r.rooms)
}
