package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/kanban/internal/board"
	"github.com/idilsaglam/kanban/internal/dnd"
	"github.com/idilsaglam/kanban/internal/model"
	"github.com/idilsaglam/kanban/internal/store/boardfile"
	"github.com/idilsaglam/kanban/internal/tui"
	"github.com/idilsaglam/kanban/internal/ui"
)

func (a *app) newBoardCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive board",
		Args:  argsExact(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBoard(out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "save the board here on quit (.json, .yaml)")
	return cmd
}

func (a *app) runBoard(out string) error {
	b, err := a.loadBoard()
	if err != nil {
		return err
	}
	s := dnd.NewSession(b, dnd.WithLogger(a.logger))
	final, err := tui.Run(s, a.logger, tui.Options{Theme: a.cfg.Theme})
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if out == "" {
		return nil
	}
	return a.writeBoard(final, out, "")
}

func (a *app) newShowCommand() *cobra.Command {
	var showIDs bool
	var format string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the starting board",
		Args:  argsExact(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.loadBoard()
			if err != nil {
				return err
			}
			if format == "" || format == "text" {
				ui.RenderBoard(a.stdout, b, showIDs)
				return nil
			}
			return a.writeBoard(b, "", format)
		},
	}
	cmd.Flags().BoolVar(&showIDs, "ids", false, "print identifiers next to titles")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json, yaml")
	return cmd
}

func (a *app) newReplayCommand() *cobra.Command {
	var out, format string
	cmd := &cobra.Command{
		Use:   "replay SCRIPT",
		Short: "Replay a recorded drag gesture script against the starting board",
		Long: `Replay feeds a list of drag events to the board, exactly as the
interactive board would, and prints the result.

  - {event: start, active: item-1}
  - {event: move,  active: item-1, over: container-2}
  - {event: end,   active: item-1, over: container-2}`,
		Args: argsExact(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.loadBoard()
			if err != nil {
				return err
			}
			script, err := boardfile.LoadScript(args[0])
			if err != nil {
				return err
			}
			changes := 0
			s := dnd.NewSession(b,
				dnd.WithLogger(a.logger),
				dnd.WithOnChange(func(prev, next *board.Board) { changes++ }),
			)
			script.Replay(s)
			if _, dragging := s.Active(); dragging {
				a.logger.Warn("script ended mid-gesture")
			}
			a.logger.Info("replay done", zap.Int("events", len(script)), zap.Int("changes", changes))
			return a.writeBoard(s.Board(), out, format)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "save the result here (.json, .yaml)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "stdout format when --out is not set: text, json, yaml")
	return cmd
}

func (a *app) newAddCommand() *cobra.Command {
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a container or an item to the starting board",
	}

	var out, format, description string
	container := &cobra.Command{
		Use:   "container TITLE...",
		Short: "Append an empty container",
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			b, err := a.loadBoard()
			if err != nil {
				return err
			}
			s := dnd.NewSession(b, dnd.WithLogger(a.logger))
			id, ok := s.CreateContainer(title, description)
			if !ok {
				return usagef("add container: empty title")
			}
			ui.OK(a.stderr, "added "+id.String())
			return a.writeBoard(s.Board(), out, format)
		},
	}
	container.Flags().StringVarP(&description, "description", "d", "", "container description")

	item := &cobra.Command{
		Use:   "item CONTAINER TITLE...",
		Short: "Append an item to a container (by id or title)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usagef("usage: kanban add item CONTAINER TITLE...")
			}
			b, err := a.loadBoard()
			if err != nil {
				return err
			}
			target, ok := resolveContainer(b, args[0])
			if !ok {
				return usagef("add item: no container %q", args[0])
			}
			s := dnd.NewSession(b, dnd.WithLogger(a.logger))
			id, ok := s.CreateItem(target, strings.Join(args[1:], " "))
			if !ok {
				return usagef("add item: empty title")
			}
			ui.OK(a.stderr, "added "+id.String())
			return a.writeBoard(s.Board(), out, format)
		},
	}

	for _, c := range []*cobra.Command{container, item} {
		c.Flags().StringVarP(&out, "out", "o", "", "save the result here (.json, .yaml)")
		c.Flags().StringVarP(&format, "format", "f", "text", "stdout format when --out is not set: text, json, yaml")
	}
	add.AddCommand(container, item)
	return add
}

// resolveContainer accepts a container id, a case-insensitive title or a
// 1-based position.
func resolveContainer(b *board.Board, ref string) (model.ID, bool) {
	if c, ok := b.FindContainer(model.ID(ref)); ok {
		return c.ID, true
	}
	for i, c := range b.Containers() {
		if strings.EqualFold(c.Title, ref) || fmt.Sprint(i+1) == ref {
			return c.ID, true
		}
	}
	return "", false
}
