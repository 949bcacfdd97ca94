package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/idilsaglam/kanban/internal/board"
	"github.com/idilsaglam/kanban/internal/config"
	"github.com/idilsaglam/kanban/internal/logging"
	"github.com/idilsaglam/kanban/internal/store/boardfile"
	"github.com/idilsaglam/kanban/internal/ui"
)

// usageError marks errors that should exit with code 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

// app is the state shared by all subcommands.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	logger *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

// NewRootCommand builds the kanban command tree.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: config.New(), logger: zap.NewNop(), stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "kanban",
		Short: "kanban - containers of items, rearranged by dragging",
		Long: `kanban keeps a board of containers, each holding an ordered list of items.

Run without arguments to open the interactive board. Grab a container or an
item with space, carry it with the arrow keys, drop it with enter.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBoard("")
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.String("theme", "", "color theme: "+fmt.Sprint(ui.Themes))
	pf.String("color", "", "color output: auto, always, never")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-file", "", "write logs to this file")
	pf.String("seed", "", "board file to start from (.json, .yaml)")
	pf.Bool("demo", true, "start from a demo board when no seed is given")
	_ = a.v.BindPFlag(config.KeyTheme, pf.Lookup("theme"))
	_ = a.v.BindPFlag(config.KeyColor, pf.Lookup("color"))
	_ = a.v.BindPFlag(config.KeyLogLevel, pf.Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeyLogFile, pf.Lookup("log-file"))
	_ = a.v.BindPFlag(config.KeySeed, pf.Lookup("seed"))
	_ = a.v.BindPFlag(config.KeyDemo, pf.Lookup("demo"))

	root.AddCommand(
		a.newBoardCommand(),
		a.newShowCommand(),
		a.newReplayCommand(),
		a.newAddCommand(),
	)
	return root
}

// Execute runs the CLI and returns an exit code (0 ok, 1 error, 2 usage).
func Execute(args []string) int {
	root := NewRootCommand(os.Stdout, os.Stderr)
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return 0
	}
	ui.Fail(os.Stderr, err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, root.UsageString())
		return 2
	}
	return 1
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	ui.SetTheme(cfg.Theme)
	ui.SetColorMode(ui.ColorMode(cfg.Color))

	// Without a log file the interactive board would paint logs over the
	// alternate screen, so it stays silent unless one is configured.
	interactive := cmd == cmd.Root() || cmd.Name() == "board"
	if interactive && cfg.LogFile == "" {
		return nil
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

// loadBoard picks the starting board: the seed file, the demo board or an
// empty one.
func (a *app) loadBoard() (*board.Board, error) {
	if a.cfg.Seed != "" {
		b, err := boardfile.Load(a.cfg.Seed)
		if err != nil {
			return nil, fmt.Errorf("load seed %s: %w", a.cfg.Seed, err)
		}
		a.logger.Debug("seed loaded", zap.String("path", a.cfg.Seed), zap.Int("containers", b.Len()), zap.Int("items", b.ItemCount()))
		return b, nil
	}
	if a.cfg.Demo {
		return demoBoard(), nil
	}
	return board.Empty(), nil
}

// writeBoard saves to out when given, otherwise prints b to stdout in format.
func (a *app) writeBoard(b *board.Board, out, format string) error {
	if out != "" {
		if err := boardfile.Save(out, b); err != nil {
			return err
		}
		ui.OK(a.stderr, "saved "+out)
		return nil
	}
	if format == "" || format == "text" {
		ui.RenderBoard(a.stdout, b, true)
		return nil
	}
	f, err := boardfile.ParseFormat(format)
	if err != nil {
		return usageError{err}
	}
	return boardfile.Encode(a.stdout, b, f)
}

// argsExact is cobra.ExactArgs with errors flagged as usage errors.
func argsExact(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usagef("%s: %v", cmd.CommandPath(), err)
		}
		return nil
	}
}
