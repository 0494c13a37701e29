package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/bccproj/internal/ui/output"
	"go.trai.ch/bccproj/internal/ui/style"
)

// PrettyHandler is a custom slog.Handler that produces human-readable,
// colored output using the shared UI components.
//
// Errors and warnings are rendered as "<program>: error: <message>" and
// "<program>: warning: <message>"; other records print the bare message.
type PrettyHandler struct {
	out     *termenv.Output
	level   slog.Leveler
	program string
	attrs   []slog.Attr
	group   string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
func NewPrettyHandler(w io.Writer, program string, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level.Level()
	}

	levelVar := &slog.LevelVar{}
	levelVar.Set(level)

	return &PrettyHandler{
		out:     output.New(w),
		level:   levelVar,
		program: program,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var msg string
	var color termenv.Color

	switch {
	case r.Level >= slog.LevelError:
		msg = h.prefix(style.ErrorLabel) + r.Message
		color = termenv.RGBColor(string(style.Red))
	case r.Level >= slog.LevelWarn:
		msg = h.prefix(style.WarningLabel) + r.Message
		color = termenv.RGBColor(string(style.Yellow))
	default:
		msg = r.Message
		color = termenv.RGBColor(string(style.Slate))
	}

	attrParts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		attrParts = append(attrParts, formatAttr(h.group, attr))
	}
	r.Attrs(func(attr slog.Attr) bool {
		attrParts = append(attrParts, formatAttr(h.group, attr))
		return true
	})

	if len(attrParts) > 0 {
		msg += " " + strings.Join(attrParts, " ")
	}

	styled := h.out.String(msg).Foreground(color)
	_, err := h.out.WriteString(styled.String() + "\n")

	return err
}

func (h *PrettyHandler) prefix(label string) string {
	if h.program == "" {
		return label + ": "
	}
	return h.program + ": " + label + ": "
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)

	return &PrettyHandler{
		out:     h.out,
		level:   h.level,
		program: h.program,
		attrs:   newAttrs,
		group:   h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{
		out:     h.out,
		level:   h.level,
		program: h.program,
		attrs:   h.attrs,
		group:   name,
	}
}

// formatAttr formats a single attribute for output.
// If a group is set, the key is prefixed with the group name.
func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + attr.Value.String()
}
