// config.go
// ---------
// ClientConfig carries the per-client settings consumed once at
// construction: who the calls are made for, the credential attached to
// every request, and the retry budget. Validation happens in New; a config
// that fails validation never produces a client.
package specwire

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultMaxRetries is the retry budget applied when the config does
	// not override it.
	DefaultMaxRetries = 8

	// defaultBaseBackoff is the delay before the first retry; attempt i
	// waits baseBackoff * 2^i.
	defaultBaseBackoff = time.Second
)

// ClientConfig configures a Client.
type ClientConfig struct {
	// Subject identifies who the client acts for (tenant, nation, account).
	// It is available to the base URL template as {subject}.
	Subject string `validate:"required"`

	// Credential is the opaque token attached to every request as a
	// Bearer Authorization header.
	Credential string `validate:"required"`

	// BaseURL overrides the catalog's base URL template when non-empty.
	BaseURL string

	// MaxRetries bounds how often a rate-limited call is retried.
	// Nil means DefaultMaxRetries; a negative value is rejected at
	// construction. Zero means a single attempt with no retry.
	MaxRetries *int

	// BaseBackoff is the delay before the first retry. Zero means one second.
	BaseBackoff time.Duration `validate:"gte=0"`
}

var configValidator = validator.New(validator.WithRequiredStructEnabled())

func (c *ClientConfig) validate() error {
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("specwire: invalid config: %w", err)
	}
	if c.MaxRetries != nil && *c.MaxRetries < 0 {
		return fmt.Errorf("specwire: max retries must be >= 0, got %d", *c.MaxRetries)
	}
	return nil
}

func (c *ClientConfig) maxRetries() int {
	if c.MaxRetries == nil {
		return DefaultMaxRetries
	}
	return *c.MaxRetries
}

func (c *ClientConfig) baseBackoff() time.Duration {
	if c.BaseBackoff == 0 {
		return defaultBaseBackoff
	}
	return c.BaseBackoff
}

// Retries is a convenience for populating ClientConfig.MaxRetries inline.
func Retries(n int) *int { return &n }
