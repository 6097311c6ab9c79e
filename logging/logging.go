/*
Package logging builds the zerolog logger shared by the console, the commands and
the HTTP server. Console output gets lipgloss level badges, JSON is used when stdout
is not a terminal, and an optional rotating file is fed through lumberjack.
*/
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"natbtree/config"
)

const (
	ColorTeal40    = "#3ddbd9"
	ColorBlue60    = "#4589ff"
	ColorBlue40    = "#78a9ff"
	ColorOrange40  = "#ff832b"
	ColorRed60     = "#da1e28"
	ColorRedStrong = "#ff0000"
	ColorGray60    = "#8d8d8d"
	ColorGray10    = "#f4f4f4"
)

const timeFormat = "15:04:05"

// New builds a logger writing to stderr (and the log file, if configured).
func New(cfg *config.Config) (zerolog.Logger, error) {
	return NewWithOutput(cfg, os.Stderr)
}

// NewWithOutput is New with an explicit console stream.
func NewWithOutput(cfg *config.Config, out io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	console := out
	if useConsoleFormat(cfg.LogFormat, out) {
		console = ConsoleWriter(out, cfg.Color)
	}

	writers := []io.Writer{console}
	if cfg.LogFile != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAgeDays,
			Compress:   true,
		})
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()
	return logger, nil
}

// Module returns a child logger tagged with module=name.
func Module(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("module", name).Logger()
}

func useConsoleFormat(format string, out io.Writer) bool {
	switch strings.ToLower(format) {
	case "console":
		return true
	case "json":
		return false
	}
	return IsTerminal(out)
}

// IsTerminal reports whether w is a terminal (including cygwin ptys).
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ConsoleWriter renders log lines with lipgloss level badges.
func ConsoleWriter(out io.Writer, color bool) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    !color,
		TimeFormat: timeFormat,

		FormatLevel: func(i any) string {
			lvl := strings.ToLower(fmt.Sprint(i))
			if len(lvl) > 3 {
				lvl = lvl[:3]
			}
			if !color {
				return strings.ToUpper(lvl)
			}
			return lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ffffff")).
				Background(lipgloss.Color(levelColor(lvl))).
				Padding(0, 1).
				Render(strings.ToUpper(lvl))
		},

		FormatTimestamp: func(i any) string {
			ts := fmt.Sprint(i)
			if t, err := time.Parse(zerolog.TimeFieldFormat, ts); err == nil {
				ts = t.Format(timeFormat)
			}
			if !color {
				return ts
			}
			return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60)).Render(ts)
		},

		FormatFieldName: func(i any) string {
			if !color {
				return fmt.Sprint(i) + "="
			}
			return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)).Render(fmt.Sprint(i)) +
				lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60)).Render("=")
		},

		FormatMessage: func(i any) string {
			if i == nil {
				return ""
			}
			if !color {
				return fmt.Sprint(i)
			}
			return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray10)).Render(fmt.Sprint(i))
		},
	}
}

func levelColor(lvl string) string {
	switch lvl {
	case "deb", "tra":
		return ColorTeal40
	case "inf":
		return ColorBlue60
	case "war":
		return ColorOrange40
	case "err":
		return ColorRed60
	case "fat", "pan":
		return ColorRedStrong
	}
	return ColorGray60
}
