// internal/autofill/totp/totp.go
package totp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// Generator derives one-time codes from the seed stored on a login item.
// Seeds come in two shapes: a bare base32 secret, or a full otpauth:// URL
// carrying its own period, digits and algorithm.
type Generator struct {
	now func() time.Time
}

// New returns a Generator that uses the wall clock.
func New() *Generator {
	return &Generator{now: time.Now}
}

// NewAt returns a Generator pinned to a clock, for tests.
func NewAt(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Code generates the current code for the given seed.
func (g *Generator) Code(_ context.Context, seed string) (string, error) {
	seed = strings.TrimSpace(seed)
	if seed == "" {
		return "", fmt.Errorf("empty totp seed")
	}

	if strings.HasPrefix(strings.ToLower(seed), "otpauth://") {
		return g.codeFromURL(seed)
	}

	// Bare secret. Normalize the casual forms people paste in: lowercase
	// and grouped with spaces.
	secret := strings.ToUpper(strings.ReplaceAll(seed, " ", ""))
	code, err := totp.GenerateCode(secret, g.now())
	if err != nil {
		return "", fmt.Errorf("generating totp code: %w", err)
	}
	return code, nil
}

func (g *Generator) codeFromURL(rawURL string) (string, error) {
	key, err := otp.NewKeyFromURL(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing otpauth url: %w", err)
	}
	period := key.Period()
	if period == 0 {
		period = 30
	}
	digits := key.Digits()
	if digits == 0 {
		digits = otp.DigitsSix
	}
	code, err := totp.GenerateCodeCustom(key.Secret(), g.now(), totp.ValidateOpts{
		Period:    uint(period),
		Digits:    digits,
		Algorithm: key.Algorithm(),
	})
	if err != nil {
		return "", fmt.Errorf("generating totp code: %w", err)
	}
	return code, nil
}
