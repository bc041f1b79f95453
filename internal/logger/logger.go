package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/tatianab/treasure-hunter/internal/config"
)

// Setup builds the game logger. The terminal belongs to the UI, so logs go
// to cfg.LogFile or nowhere. The returned closer releases the log file.
func Setup(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	var (
		w      io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := New(w, cfg)
	slog.SetDefault(logger)
	return logger, closer, nil
}

// New returns a logger writing to w, JSON in production and text otherwise.
func New(w io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level()}

	var handler slog.Handler
	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// WithSession tags every record with a fresh game session id.
func WithSession(logger *slog.Logger) (*slog.Logger, string) {
	id := uuid.NewString()
	return logger.With("session", id), id
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
