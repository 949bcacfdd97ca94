package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/kanban/internal/model"
)

const (
	minColumnWidth = 18
	maxColumnWidth = 36
)

func (m Model) View() string {
	b := m.Board()
	active, dragging := m.session.Active()

	header := fmt.Sprintf("%s   %s %d  %s %d",
		titleStyle.Render("Board"),
		accentStyle.Render("containers"), b.Len(),
		accentStyle.Render("items"), b.ItemCount(),
	)

	var body string
	if b.Len() == 0 {
		body = mutedStyle.Render("No containers yet. Press C to add one.")
	} else {
		width := m.columnWidth(b.Len())
		cols := make([]string, 0, b.Len())
		for ci, c := range b.Containers() {
			cols = append(cols, m.renderColumn(ci, c, width, active, dragging))
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	}

	sections := []string{header, "", body}
	if dragging {
		sections = append(sections, "", m.renderOverlay(active))
	}
	if m.inputting() {
		sections = append(sections, m.renderInput())
	}
	if m.mode == modeDrag {
		sections = append(sections, m.help.View(dragHelp{m.keys}))
	} else {
		sections = append(sections, m.help.View(browseHelp{m.keys}))
	}
	return strings.Join(sections, "\n")
}

func (m Model) columnWidth(n int) int {
	// border + padding take 4 cells per column
	w := m.width/n - 4
	return max(minColumnWidth, min(w, maxColumnWidth))
}

func (m Model) renderColumn(ci int, c model.Container, width int, active model.ID, dragging bool) string {
	style := columnStyle
	switch {
	case dragging && active.IsContainer() && c.ID == m.over && c.ID != active:
		style = hoverColumnStyle
	case ci == m.col:
		style = focusColumnStyle
	}

	head := fit(c.Title, width)
	switch {
	case dragging && c.ID == active:
		head = draggingStyle.Render(head)
	case !dragging && ci == m.col && m.row == headerRow:
		head = selectedStyle.Render(head)
	default:
		head = titleStyle.Render(head)
	}
	lines := []string{head}
	if c.Description != "" {
		lines = append(lines, mutedStyle.Render(fit(c.Description, width)))
	}
	lines = append(lines, mutedStyle.Render(strings.Repeat("─", width)))

	if len(c.Items) == 0 {
		lines = append(lines, mutedStyle.Render("(empty)"))
	}
	for ii, it := range c.Items {
		text := fit(it.Title, width-2)
		switch {
		case dragging && it.ID == active:
			lines = append(lines, draggingStyle.Render("┆ "+text))
		case !dragging && ci == m.col && ii == m.row:
			lines = append(lines, selectedStyle.Render("> "+text))
		default:
			lines = append(lines, "  "+text)
		}
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

// renderOverlay draws the element being dragged, detached from its column.
func (m Model) renderOverlay(active model.ID) string {
	b := m.Board()
	title := active.String()
	if c, ok := b.FindContainer(active); ok {
		title = c.Title
	} else if it, ok := b.Item(active); ok {
		title = it.Title
	}
	line := overlayStyle.Render("⠿ " + title)
	if m.over != "" && m.over != active {
		line += mutedStyle.Render("  over " + m.overLabel())
	}
	return line
}

func (m Model) overLabel() string {
	b := m.Board()
	if c, ok := b.FindContainer(m.over); ok {
		return c.Title
	}
	if it, ok := b.Item(m.over); ok {
		return it.Title
	}
	return m.over.String()
}

func (m Model) renderInput() string {
	title := "Add item"
	switch m.mode {
	case modeAddContainerTitle:
		title = "Add container"
	case modeAddContainerDesc:
		title = "Add container: " + m.pendingTitle
	case modeAddItem:
		if c, ok := m.Board().FindContainer(m.target); ok {
			title = "Add item to " + c.Title
		}
	}
	if m.inputErr != "" {
		title += ": " + errorStyle.Render(m.inputErr)
	}
	return inputBarStyle.Render(title + "\n" + m.ti.View())
}

// fit truncates s to width cells.
func fit(s string, width int) string { return xansi.Truncate(s, width, "…") }
