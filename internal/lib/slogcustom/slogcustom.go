package slogcustom

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"

	"github.com/fatih/color"
)

// CustomHandler пишет записи slog в одну строку с цветным уровнем.
type CustomHandler struct {
	l      *log.Logger
	level  slog.Leveler
	attrs  []slog.Attr
	group  string
	colors map[slog.Level]*color.Color
	key    *color.Color
}

// NewCustomHandler создаёт handler. noColor отключает раскраску.
func NewCustomHandler(out io.Writer, level slog.Leveler, noColor bool) *CustomHandler {
	h := &CustomHandler{
		l:     log.New(out, "", 0),
		level: level,
		colors: map[slog.Level]*color.Color{
			slog.LevelDebug: color.New(color.FgMagenta),
			slog.LevelInfo:  color.New(color.FgHiBlue),
			slog.LevelWarn:  color.New(color.FgYellow),
			slog.LevelError: color.New(color.FgRed),
		},
		key: color.New(color.FgGreen),
	}

	if noColor {
		h.key.DisableColor()
		for _, c := range h.colors {
			c.DisableColor()
		}
	}

	return h
}

func (c *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"
	if lc, ok := c.colors[r.Level]; ok {
		level = lc.Sprint(level)
	}

	var attrs strings.Builder
	write := func(a slog.Attr) {
		attrs.WriteString(c.key.Sprint(a.Key) + "=" + fmt.Sprint(a.Value.Any()) + " ")
	}

	for _, a := range c.attrs {
		write(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		write(c.qualify(a))
		return true
	})

	c.l.Println(
		r.Time.Format("15:04:05.000"),
		level,
		r.Message,
		strings.TrimSuffix(attrs.String(), " "),
	)
	return nil
}

func (c *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h := *c
	h.attrs = append([]slog.Attr{}, c.attrs...)
	for _, a := range attrs {
		h.attrs = append(h.attrs, c.qualify(a))
	}

	return &h
}

// qualify добавляет к ключу префикс текущей группы.
func (c *CustomHandler) qualify(a slog.Attr) slog.Attr {
	if c.group != "" {
		a.Key = c.group + "." + a.Key
	}

	return a
}

func (c *CustomHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return c
	}

	h := *c
	if h.group != "" {
		h.group += "." + name
	} else {
		h.group = name
	}

	return &h
}

func (c *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= c.level.Level()
}
