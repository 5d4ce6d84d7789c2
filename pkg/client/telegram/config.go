package telegram

import (
	"context"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	DefaultBaseURL = "http://localhost:8080"
	DefaultTimeout = 30 * time.Second
)

type Config struct {
	BaseURL string        `envconfig:"TELEGRAM_API_BASE_URL"`
	Timeout time.Duration `envconfig:"TELEGRAM_API_TIMEOUT"`
}

func (c *Config) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, c,
		validation.Field(&c.BaseURL),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

// withDefaults returns a copy with unset fields filled in and the base URL
// normalized so endpoint paths concatenate cleanly.
func (c *Config) withDefaults() *Config {
	out := Config{}
	if c != nil {
		out = *c
	}
	if out.BaseURL == "" {
		out.BaseURL = DefaultBaseURL
	}
	out.BaseURL = strings.TrimRight(out.BaseURL, "/")
	if out.Timeout == 0 {
		out.Timeout = DefaultTimeout
	}
	return &out
}
