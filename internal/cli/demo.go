package cli

import (
	"github.com/idilsaglam/kanban/internal/board"
	"github.com/idilsaglam/kanban/internal/model"
)

// demoBoard is what a first run shows when there is no seed file.
func demoBoard() *board.Board {
	b := board.Empty()
	columns := []struct {
		title, description string
		items              []string
	}{
		{"Todo", "Not started", []string{"Write the release notes", "Triage new issues", "Book the venue"}},
		{"In progress", "Someone is on it", []string{"Fix the login redirect"}},
		{"Done", "", nil},
	}
	for _, col := range columns {
		var id model.ID
		b, id, _ = b.AppendContainer(col.title, col.description)
		for _, title := range col.items {
			b, _, _ = b.AppendItem(id, title)
		}
	}
	return b
}
