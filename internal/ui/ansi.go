package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

var (
	reset  = "\033[0m"
	bold   = "\033[1m"
	fgGray = "\033[90m"
	fgRed  = "\033[31m"
	fgGrn  = "\033[32m"
	fgYlw  = "\033[33m"
	fgBlue = "\033[34m"
	fgMag  = "\033[35m"
	fgCyan = "\033[36m"

	symCheck = "✔"
	symCross = "✖"
)

// ColorMode decides when C emits escape codes.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto" // only when stdout is a terminal
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

var colorMode = ColorAuto

// SetColorMode switches color output. Unknown modes fall back to auto.
func SetColorMode(m ColorMode) {
	switch m {
	case ColorAlways, ColorNever:
		colorMode = m
	default:
		colorMode = ColorAuto
	}
}

func isTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// C wraps s in color when color output is on.
func C(color, s string) string {
	if color == "" {
		return s
	}
	switch colorMode {
	case ColorNever:
		return s
	case ColorAlways:
		return color + s + reset
	}
	if isTTY() {
		return color + s + reset
	}
	return s
}

// OK prints a success line to w.
func OK(w io.Writer, msg string) { fmt.Fprintln(w, C(fgGrn, symCheck+" "+msg)) }

// Fail prints a failure line to w.
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, C(fgRed, symCross+" "+msg)) }
