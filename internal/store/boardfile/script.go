package boardfile

import (
	"fmt"
	"io"
	"os"

	"github.com/idilsaglam/kanban/internal/model"
)

// EventType names one step of a gesture.
type EventType string

const (
	EventStart EventType = "start"
	EventMove  EventType = "move"
	EventEnd   EventType = "end"
	EventAbort EventType = "abort"
)

// Event is one recorded drag event.
type Event struct {
	Type   EventType `json:"event" yaml:"event"`
	Active model.ID  `json:"active" yaml:"active"`
	Over   model.ID  `json:"over,omitempty" yaml:"over,omitempty"`
}

// Script is an ordered list of drag events.
type Script []Event

// Handler receives replayed events. *dnd.Session satisfies it.
type Handler interface {
	Start(active model.ID)
	Move(active, over model.ID)
	End(active, over model.ID)
	Abort(active model.ID)
}

// LoadScript reads a gesture script file.
func LoadScript(path string) (Script, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	return DecodeScript(f, format)
}

// DecodeScript parses and validates a script.
func DecodeScript(r io.Reader, format Format) (Script, error) {
	var s Script
	if err := decode(r, format, &s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	for i, ev := range s {
		switch ev.Type {
		case EventStart, EventMove, EventEnd, EventAbort:
		default:
			return nil, fmt.Errorf("script event %d: unknown event %q", i, ev.Type)
		}
		if ev.Active == "" {
			return nil, fmt.Errorf("script event %d: missing active id", i)
		}
	}
	return s, nil
}

// Replay feeds every event to h in order.
func (s Script) Replay(h Handler) {
	for _, ev := range s {
		switch ev.Type {
		case EventStart:
			h.Start(ev.Active)
		case EventMove:
			h.Move(ev.Active, ev.Over)
		case EventEnd:
			h.End(ev.Active, ev.Over)
		case EventAbort:
			h.Abort(ev.Active)
		}
	}
}
