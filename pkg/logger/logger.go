package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Logger struct {
	*slog.Logger
}

func New(ctx context.Context, cfg *Config) (*Logger, error) {
	if err := cfg.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	return NewWithWriter(os.Stdout, cfg), nil
}

// NewWithWriter builds a logger against an explicit writer. cfg is assumed
// to be validated.
func NewWithWriter(w io.Writer, cfg *Config) *Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: cfg.WithSource,
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case FormatText:
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	base := slog.New(handler).With("service", cfg.ServiceName)
	return &Logger{base}
}

// Print, Printf and Println make Logger usable where a stdlib-style logger
// is expected (chi's request log formatter, for one).
func (a *Logger) Print(v ...interface{}) {
	a.Logger.Info(fmt.Sprint(v...))
}

func (a *Logger) Printf(format string, v ...interface{}) {
	a.Logger.Info(fmt.Sprintf(format, v...))
}

func (a *Logger) Println(v ...interface{}) {
	a.Logger.Info(fmt.Sprintln(v...))
}
