package logging

import (
	"context"
	"errors"
	"log/slog"
)

// tee fans records out to several handlers, as when a terminal line
// and a JSON log file are fed from one logger.
type tee struct {
	hs []slog.Handler
}

// NewMultiHandler returns a handler forwarding each record to every
// handler in hs that accepts its level.
func NewMultiHandler(hs ...slog.Handler) slog.Handler {
	return &tee{hs: hs}
}

func (t *tee) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t *tee) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range t.hs {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (t *tee) WithAttrs(attrs []slog.Attr) slog.Handler {
	hs := make([]slog.Handler, len(t.hs))
	for i, h := range t.hs {
		hs[i] = h.WithAttrs(attrs)
	}
	return &tee{hs: hs}
}

func (t *tee) WithGroup(name string) slog.Handler {
	hs := make([]slog.Handler, len(t.hs))
	for i, h := range t.hs {
		hs[i] = h.WithGroup(name)
	}
	return &tee{hs: hs}
}
