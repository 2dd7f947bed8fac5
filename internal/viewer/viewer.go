package viewer

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/roomlayout/internal/layout"
	"github.com/samdwyer/roomlayout/internal/telemetry"
	"github.com/samdwyer/roomlayout/internal/ui"
)

// EventSource supplies terminal events.
type EventSource interface {
	PollEvent() tcell.Event
}

// App holds the preview state.
type App struct {
	events   EventSource
	renderer *ui.Renderer
	rooms    *layout.Registry
	log      *zap.Logger

	state   State
	message string
	running bool
}

// New creates a preview over rooms.
func New(events EventSource, renderer *ui.Renderer, rooms *layout.Registry, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		events:   events,
		renderer: renderer,
		rooms:    rooms,
		log:      log,
		running:  true,
	}
}

// Run builds the current room and loops on input until quit.
func (a *App) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("viewer")
	ctx, span := tracer.Start(ctx, "viewer.init")
	a.show(ctx, a.rooms.Current())
	span.SetAttributes(
		attribute.Int("rooms", a.rooms.Len()),
		attribute.String("state", a.state.String()),
	)
	span.End()

	for a.running {
		a.renderer.Render(a.rooms.Grid(), a.status())
		a.handleInput(ctx)
	}
	return nil
}

// State returns the current status state.
func (a *App) State() State { return a.state }

// Running returns false once quit was requested.
func (a *App) Running() bool { return a.running }

// show builds room id and updates the status line. On failure the grid
// already on screen stays.
func (a *App) show(ctx context.Context, id string) {
	if _, err := a.rooms.BuildRoom(ctx, id); err != nil {
		a.state = StateError
		a.message = err.Error()
		return
	}
	a.state = StateViewing
	a.message = ""
}

// status is the text drawn on the last screen line.
func (a *App) status() string {
	if a.state == StateError {
		return "error: " + a.message
	}
	grid := a.rooms.Grid()
	if grid == nil {
		return "no room"
	}
	return fmt.Sprintf("room %s  tiles %d  [n]ext [p]rev [r]ebuild [q]uit", grid.Room(), grid.Len())
}

// handleInput processes a single input event.
func (a *App) handleInput(ctx context.Context) {
	switch ev := a.events.PollEvent().(type) {
	case *tcell.EventKey:
		a.handleKeyEvent(ctx, ev)
	case nil:
		// Screen finalized.
		a.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (a *App) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.running = false
	case tcell.KeyRight:
		a.step(ctx, 1)
	case tcell.KeyLeft:
		a.step(ctx, -1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			a.running = false
		case 'n':
			a.step(ctx, 1)
		case 'p':
			a.step(ctx, -1)
		case 'r':
			a.show(ctx, a.rooms.Current())
		}
	}
}

// step moves delta rooms through the registry in document order, wrapping around.
func (a *App) step(ctx context.Context, delta int) {
	ids := a.rooms.IDs()
	if len(ids) == 0 {
		return
	}

	idx := 0
	current := a.rooms.Current()
	for i, id := range ids {
		if id == current {
			idx = i
			break
		}
	}
	next := (idx + delta + len(ids)) % len(ids)

	a.log.Debug("switching room", zap.String("from", current), zap.String("to", ids[next]))
	a.show(ctx, ids[next])
}
