package dnd

import (
	"go.uber.org/zap"

	"github.com/idilsaglam/kanban/internal/board"
	"github.com/idilsaglam/kanban/internal/model"
)

// State of a Session.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Session owns a board and drives it from gesture events. It is not safe for
// concurrent use; events must be delivered one at a time.
//
// The gesture source sends each hover change once: a Move whose over matches
// the previous Move is ignored.
type Session struct {
	board  *board.Board
	state  State
	active model.ID

	// over of the previous Move in the current gesture
	lastOver model.ID

	log *zap.Logger

	// OnChange, if set, is called after any event that replaced the board.
	OnChange func(prev, next *board.Board)
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for gesture tracing.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithOnChange registers a board change observer.
func WithOnChange(fn func(prev, next *board.Board)) Option {
	return func(s *Session) { s.OnChange = fn }
}

// NewSession starts idle on b. A nil board is treated as empty.
func NewSession(b *board.Board, opts ...Option) *Session {
	if b == nil {
		b = board.Empty()
	}
	s := &Session{board: b, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Board returns the current board.
func (s *Session) Board() *board.Board { return s.board }

func (s *Session) State() State { return s.state }

// Active returns the dragged id while a gesture is in progress.
func (s *Session) Active() (model.ID, bool) {
	return s.active, s.state == Dragging
}

// Start begins a gesture. A Start while already dragging first aborts the
// running gesture.
func (s *Session) Start(active model.ID) {
	if s.state == Dragging {
		s.log.Warn("drag start while dragging, aborting previous gesture",
			zap.Stringer("previous", s.active), zap.Stringer("active", active))
		s.End(s.active, "")
	}
	s.state = Dragging
	s.active = active
	s.lastOver = ""
	s.log.Debug("drag start", zap.Stringer("active", active))
}

// Move applies item moves live. Container reorders wait for End. A Move
// whose over repeats the previous Move's over is dropped: the pointer has not
// reached anything new, and re-resolving would bounce the item back.
func (s *Session) Move(active, over model.ID) {
	if s.state != Dragging {
		s.log.Debug("drag move while idle ignored", zap.Stringer("active", active))
		return
	}
	if over == s.lastOver {
		return
	}
	s.lastOver = over
	kind := Classify(active, over)
	if !kind.IsItemMove() {
		s.log.Debug("drag move", zap.Stringer("active", active), zap.Stringer("over", over), zap.Stringer("kind", kind))
		return
	}
	s.apply(kind, active, over, Speculative)
}

// End finishes the gesture. Container reorders are committed here. Item
// moves already applied by Move stand as they are; an item move is only
// applied at End when the last Move was not already over the same element.
func (s *Session) End(active, over model.ID) {
	if s.state != Dragging {
		s.log.Debug("drag end while idle ignored", zap.Stringer("active", active))
		return
	}
	kind := Classify(active, over)
	switch {
	case kind == ContainerOverContainer:
		s.apply(kind, active, over, Terminal)
	case kind.IsItemMove() && over != s.lastOver:
		s.apply(kind, active, over, Terminal)
	default:
		s.log.Debug("drag end", zap.Stringer("active", active), zap.Stringer("over", over), zap.Stringer("kind", kind))
	}
	s.state = Idle
	s.active = ""
	s.lastOver = ""
}

// Abort ends the gesture without a drop target.
func (s *Session) Abort(active model.ID) { s.End(active, "") }

// CreateContainer appends an empty container. Empty titles are declined.
func (s *Session) CreateContainer(title, description string) (model.ID, bool) {
	next, id, ok := s.board.AppendContainer(title, description)
	if !ok {
		s.log.Debug("create container declined", zap.String("title", title))
		return "", false
	}
	s.replace(next)
	s.log.Info("container created", zap.Stringer("id", id), zap.String("title", title))
	return id, true
}

// CreateItem appends an item to containerID. Empty titles and unknown
// containers are declined.
func (s *Session) CreateItem(containerID model.ID, title string) (model.ID, bool) {
	next, id, ok := s.board.AppendItem(containerID, title)
	if !ok {
		s.log.Debug("create item declined", zap.Stringer("container", containerID), zap.String("title", title))
		return "", false
	}
	s.replace(next)
	s.log.Info("item created", zap.Stringer("id", id), zap.Stringer("container", containerID), zap.String("title", title))
	return id, true
}

func (s *Session) apply(kind MoveKind, active, over model.ID, phase Phase) {
	next := Resolve(s.board, kind, active, over, phase)
	changed := next != s.board
	s.log.Debug("resolve",
		zap.Stringer("phase", phase),
		zap.Stringer("kind", kind),
		zap.Stringer("active", active),
		zap.Stringer("over", over),
		zap.Bool("changed", changed))
	if changed {
		s.replace(next)
	}
}

func (s *Session) replace(next *board.Board) {
	prev := s.board
	s.board = next
	if s.OnChange != nil {
		s.OnChange(prev, next)
	}
}
