package layout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/roomlayout/internal/telemetry"
)

// Builder converts room definitions into grids, creating one tile per occupied cell.
type Builder struct {
	factory TileFactory
	width   int
	height  int
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithExtent overrides the default 100x100 grid extent.
func WithExtent(width, height int) BuilderOption {
	return func(b *Builder) {
		b.width = width
		b.height = height
	}
}

// NewBuilder creates a builder that instantiates tiles through factory.
func NewBuilder(factory TileFactory, opts ...BuilderOption) *Builder {
	b := &Builder{
		factory: factory,
		width:   DefaultWidth,
		height:  DefaultHeight,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build classifies every character of def and returns a fresh grid.
// The first text row gets the largest y, the last row y = 0.
// A tile outside the extent aborts the build with an *OverflowError and no
// grid; the extent is checked for every cell before the factory is called.
func (b *Builder) Build(ctx context.Context, def RoomDefinition) (*RoomGrid, error) {
	tracer := telemetry.Tracer("layout")
	_, span := tracer.Start(ctx, "room.build")
	defer span.End()

	startTime := time.Now()

	rows := def.Rows()
	maxRow := len(rows) - 1
	grid := NewRoomGrid(def.Num, b.width, b.height)

	if err := b.checkExtent(def, rows, grid); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "grid overflow")
		return nil, err
	}

	staged, _ := b.factory.(StagedFactory)
	if staged != nil {
		staged.Begin(def.Num)
	}

	floors, walls := 0, 0
	for r, row := range rows {
		for c, ch := range []rune(row) {
			spec := Classify(ch, def.Floor, def.Wall)
			if spec.Type == TileEmpty {
				continue
			}

			x, y := c, maxRow-r
			tile, err := b.factory.Create(spec, Position{X: x, Y: y, Z: 0})
			if err == nil && tile == nil {
				err = errors.New("factory returned no tile")
			}
			if err != nil {
				if staged != nil {
					staged.Discard()
				}
				err = fmt.Errorf("failed to create tile at (%d,%d) in room %q: %w", x, y, def.Num, err)
				span.RecordError(err)
				span.SetStatus(codes.Error, "tile creation failed")
				return nil, err
			}

			grid.set(GridCell{X: x, Y: y, Spec: spec, Tile: tile})
			if spec.Type == TileWall {
				walls++
			} else {
				floors++
			}
		}
	}

	if staged != nil {
		staged.Commit()
	}

	span.SetAttributes(
		attribute.String("room.num", def.Num),
		attribute.Int("room.rows", len(rows)),
		attribute.Int("room.tiles", grid.Len()),
		attribute.Int("room.floors", floors),
		attribute.Int("room.walls", walls),
		attribute.Int64("room.build_us", time.Since(startTime).Microseconds()),
	)

	return grid, nil
}

// checkExtent reports the first occupied cell, in text order, that falls outside grid.
func (b *Builder) checkExtent(def RoomDefinition, rows []string, grid *RoomGrid) error {
	maxRow := len(rows) - 1
	for r, row := range rows {
		for c, ch := range []rune(row) {
			if Classify(ch, def.Floor, def.Wall).Type == TileEmpty {
				continue
			}
			if x, y := c, maxRow-r; !grid.InBounds(x, y) {
				return &OverflowError{Room: def.Num, X: x, Y: y, Width: grid.Width(), Height: grid.Height()}
			}
		}
	}
	return nil
}
