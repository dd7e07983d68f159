package main

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/term"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// terminalSize returns the dimensions of the terminal on fd. It falls back
// to the COLUMNS and LINES environment variables and then to 80x24.
func terminalSize(fd uintptr) (width, height int) {
	w, h, err := term.GetSize(fd)
	if err == nil && w > 0 && h > 0 {
		return w, h
	}
	return sizeFromEnv(os.Getenv)
}

// sizeFromEnv reads COLUMNS and LINES through getenv, substituting the
// defaults for missing or invalid values.
func sizeFromEnv(getenv func(string) string) (width, height int) {
	width, height = defaultWidth, defaultHeight
	if n, err := strconv.Atoi(getenv("COLUMNS")); err == nil && n > 0 {
		width = n
	}
	if n, err := strconv.Atoi(getenv("LINES")); err == nil && n > 0 {
		height = n
	}
	return width, height
}

func stdinIsTerminal() bool {
	return term.IsTerminal(os.Stdin.Fd())
}

// newLogger creates a timestamped logger writing to w at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
		Prefix:          "textblock",
	})
}
