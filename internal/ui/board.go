package ui

import (
	"fmt"
	"io"

	"github.com/idilsaglam/kanban/internal/board"
)

const maxTitle = 60

// RenderBoard prints a summary header and one panel per container, in
// board order. With showIDs the identifiers are printed next to titles.
func RenderBoard(w io.Writer, b *board.Board, showIDs bool) {
	t := Current()
	fmt.Fprintf(w, "%s  %s %d  %s %d\n",
		C(t.Title, "Board"),
		C(t.Accent, "containers"), b.Len(),
		C(t.Item, "items"), b.ItemCount(),
	)
	if b.Len() == 0 {
		fmt.Fprintln(w, C(t.Muted, "no containers"))
		return
	}
	for i, c := range b.Containers() {
		head := fmt.Sprintf("%s %s", C(t.Muted, fmt.Sprintf("%d.", i+1)), C(t.Title, truncate(c.Title)))
		if showIDs {
			head += " " + C(t.Muted, c.ID.String())
		}
		lines := []string{head}
		if c.Description != "" {
			lines = append(lines, C(t.Muted, truncate(c.Description)))
		}
		lines = append(lines, "")
		if len(c.Items) == 0 {
			lines = append(lines, C(t.Muted, t.Empty))
		}
		for _, it := range c.Items {
			ln := fmt.Sprintf("%s %s", C(t.Item, t.Bullet), truncate(it.Title))
			if showIDs {
				ln += " " + C(t.Muted, it.ID.String())
			}
			lines = append(lines, ln)
		}
		Panel(w, lines)
	}
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) > maxTitle {
		return string(r[:maxTitle-3]) + "..."
	}
	return s
}
