package logger

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Config struct {
	Level       string `envconfig:"LOGGER_LEVEL" default:"info"`
	Format      string `envconfig:"LOGGER_FORMAT" default:"json"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"telegram-integration"`
	WithSource  bool   `envconfig:"LOGGER_WITH_SOURCE" default:"false"`
}

func (c *Config) ValidateWithContext(ctx context.Context) error {
	level := strings.ToLower(c.Level)
	format := strings.ToLower(c.Format)

	return validation.ValidateStructWithContext(ctx, c,
		validation.Field(&c.Level,
			validation.By(func(any) error {
				return validation.Validate(level,
					validation.In(LevelDebug, LevelInfo, LevelWarn, LevelError))
			}),
		),
		validation.Field(&c.Format,
			validation.By(func(any) error {
				return validation.Validate(format,
					validation.In(FormatJSON, FormatText))
			}),
		),
	)
}
