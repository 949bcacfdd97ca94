package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/kanban/internal/board"
	"github.com/idilsaglam/kanban/internal/dnd"
	"github.com/idilsaglam/kanban/internal/model"
)

type mode int

const (
	modeBrowse mode = iota
	modeDrag
	modeAddContainerTitle
	modeAddContainerDesc
	modeAddItem
)

// headerRow is the cursor row of a container's title line.
const headerRow = -1

// Model is the interactive board. It is the drag gesture source for a
// dnd.Session: the keyboard cursor does the hit-testing and every hover
// change is forwarded as a Move.
type Model struct {
	session *dnd.Session
	keys    keyMap
	help    help.Model
	log     *zap.Logger

	// focus; row is headerRow or an item index
	col, row int

	mode mode
	// element under the cursor while dragging
	over model.ID

	// Inline add (shared text input, like the list's add/edit bar)
	ti           textinput.Model
	pendingTitle string
	target       model.ID
	inputErr     string

	width, height int
}

// New builds a board model around s.
func New(s *dnd.Session, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{
		session: s,
		keys:    defaultKeys(),
		help:    help.New(),
		log:     log,
		row:     headerRow,
		ti:      ti,
		width:   80,
		height:  24,
	}
	m.help.Styles.ShortKey = helpStyle
	m.help.Styles.ShortDesc = helpStyle
	m.clampFocus()
	return m
}

// Board is the session's current board.
func (m Model) Board() *board.Board { return m.session.Board() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeAddContainerTitle, modeAddContainerDesc, modeAddItem:
			return m.updateInput(msg)
		case modeDrag:
			return m.updateDrag(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	if m.inputting() {
		var cmd tea.Cmd
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) inputting() bool {
	return m.mode == modeAddContainerTitle || m.mode == modeAddContainerDesc || m.mode == modeAddItem
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.row--
		m.clampFocus()
	case key.Matches(msg, m.keys.Down):
		m.row++
		m.clampFocus()
	case key.Matches(msg, m.keys.Left):
		m.col--
		m.clampFocus()
	case key.Matches(msg, m.keys.Right):
		m.col++
		m.clampFocus()
	case key.Matches(msg, m.keys.Grab):
		id := m.focused()
		if id == "" {
			return m, nil
		}
		m.log.Debug("grab", zap.Stringer("id", id))
		m.session.Start(id)
		m.over = id
		m.mode = modeDrag
	case key.Matches(msg, m.keys.AddContainer):
		cmd := m.openInput(modeAddContainerTitle, "", "New container title...")
		return m, cmd
	case key.Matches(msg, m.keys.AddItem):
		c, ok := m.Board().ContainerAt(m.col)
		if !ok {
			return m, nil
		}
		cmd := m.openInput(modeAddItem, c.ID, "New item title...")
		return m, cmd
	}
	return m, nil
}

func (m Model) updateDrag(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	active, dragging := m.session.Active()
	if !dragging {
		m.mode = modeBrowse
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.session.Abort(active)
		m.finishDrag(active)
	case key.Matches(msg, m.keys.Drop):
		m.log.Debug("drop", zap.Stringer("active", active), zap.Stringer("over", m.over))
		m.session.End(active, m.over)
		m.finishDrag(active)
	case key.Matches(msg, m.keys.Up):
		m.hover(active, 0, -1)
	case key.Matches(msg, m.keys.Down):
		m.hover(active, 0, 1)
	case key.Matches(msg, m.keys.Left):
		m.hover(active, -1, 0)
	case key.Matches(msg, m.keys.Right):
		m.hover(active, 1, 0)
	}
	return m, nil
}

// hover moves the pointer one step and reports what is now under it.
//
// A dragged container glides over the other containers; nothing moves until
// the drop. A dragged item is carried: after the move is applied the item
// sits under the pointer again, which the session sees as a hover over
// itself.
func (m *Model) hover(active model.ID, dcol, drow int) {
	b := m.Board()
	if active.IsContainer() {
		if dcol == 0 {
			return
		}
		ci, ok := b.IndexOfContainer(m.over)
		if !ok {
			ci = m.col
		}
		c, ok := b.ContainerAt(ci + dcol)
		if !ok {
			return
		}
		m.col, m.row = ci+dcol, headerRow
		m.over = c.ID
		m.session.Move(active, m.over)
		return
	}

	ci, ii, ok := b.LocateItem(active)
	if !ok {
		return
	}
	target := m.itemTarget(ci+dcol, ii+drow, dcol != 0)
	if target == "" {
		return
	}
	m.session.Move(active, target)

	if ci, ii, ok = m.Board().LocateItem(active); ok {
		m.col, m.row = ci, ii
	}
	m.over = active
	m.session.Move(active, active)
}

// itemTarget resolves a cursor cell to the element under it. Rows past the
// end of another container land on the container itself.
func (m Model) itemTarget(ci, ii int, crossing bool) model.ID {
	c, ok := m.Board().ContainerAt(ci)
	if !ok {
		return ""
	}
	if ii < 0 {
		return ""
	}
	if ii < len(c.Items) {
		return c.Items[ii].ID
	}
	if crossing {
		return c.ID
	}
	return ""
}

func (m *Model) finishDrag(active model.ID) {
	m.mode = modeBrowse
	m.over = ""
	b := m.Board()
	if ci, ok := b.IndexOfContainer(active); ok {
		m.col, m.row = ci, headerRow
	} else if ci, ii, ok := b.LocateItem(active); ok {
		m.col, m.row = ci, ii
	}
	m.clampFocus()
}

func (m *Model) openInput(md mode, target model.ID, placeholder string) tea.Cmd {
	m.mode = md
	m.target = target
	m.inputErr = ""
	m.ti.SetValue("")
	m.ti.Placeholder = placeholder
	return m.ti.Focus()
}

func (m *Model) closeInput() {
	m.mode = modeBrowse
	m.ti.SetValue("")
	m.ti.Blur()
	m.pendingTitle = ""
	m.target = ""
	m.inputErr = ""
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeInput()
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.ti.Value())
		switch m.mode {
		case modeAddContainerTitle:
			if value == "" {
				m.inputErr = "Title cannot be empty"
				return m, nil
			}
			m.pendingTitle = value
			m.mode = modeAddContainerDesc
			m.inputErr = ""
			m.ti.SetValue("")
			m.ti.Placeholder = "Description (optional)..."
			return m, nil
		case modeAddContainerDesc:
			if _, ok := m.session.CreateContainer(m.pendingTitle, value); ok {
				m.col = m.Board().Len() - 1
				m.row = headerRow
			}
			m.closeInput()
			return m, nil
		case modeAddItem:
			id, ok := m.session.CreateItem(m.target, value)
			if !ok {
				m.inputErr = "Title cannot be empty"
				return m, nil
			}
			if ci, ii, found := m.Board().LocateItem(id); found {
				m.col, m.row = ci, ii
			}
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// focused is the element under the browse cursor.
func (m Model) focused() model.ID {
	c, ok := m.Board().ContainerAt(m.col)
	if !ok {
		return ""
	}
	if m.row == headerRow || m.row >= len(c.Items) {
		return c.ID
	}
	return c.Items[m.row].ID
}

func (m *Model) clampFocus() {
	b := m.Board()
	if b.Len() == 0 {
		m.col, m.row = 0, headerRow
		return
	}
	m.col = max(0, min(m.col, b.Len()-1))
	c, _ := b.ContainerAt(m.col)
	m.row = max(headerRow, min(m.row, len(c.Items)-1))
}
