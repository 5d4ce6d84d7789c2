package fakeapi

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Config struct {
	Port             string        `envconfig:"FAKE_API_PORT" default:"8080"`
	Timeout          time.Duration `envconfig:"FAKE_API_TIMEOUT_ROUTER" default:"30s"`
	WriteTimeout     time.Duration `envconfig:"FAKE_API_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout      time.Duration `envconfig:"FAKE_API_IDLE_TIMEOUT" default:"60s"`
	MaxAge           int64         `envconfig:"FAKE_API_MAX_AGE" default:"300"`
	AllowCredentials bool          `envconfig:"FAKE_API_ALLOW_CREDENTIALS" default:"false"`
}

func (c Config) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, &c,
		validation.Field(&c.Port, validation.Required),
		validation.Field(&c.Timeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.WriteTimeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.IdleTimeout, validation.Required, validation.Min(time.Millisecond)),
	)
}
