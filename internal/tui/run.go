package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/kanban/internal/board"
	"github.com/idilsaglam/kanban/internal/dnd"
)

// Options tune the interactive board.
type Options struct {
	Theme string
	// extra program options, e.g. input/output overrides in tests
	ProgramOptions []tea.ProgramOption
}

// Run starts the board on the alternate screen and returns the board as it
// was when the user quit.
func Run(s *dnd.Session, log *zap.Logger, opt Options) (*board.Board, error) {
	applyTheme(opt.Theme)
	popts := append([]tea.ProgramOption{tea.WithAltScreen()}, opt.ProgramOptions...)
	p := tea.NewProgram(New(s, log), popts...)
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}
	if fm, ok := finalModel.(Model); ok {
		return fm.Board(), nil
	}
	return s.Board(), nil
}
