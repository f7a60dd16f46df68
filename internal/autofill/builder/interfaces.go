// internal/autofill/builder/interfaces.go
package builder

import "context"

// TotpProvider computes a live one-time code from a stored seed. Code may
// block (network clock sync, hardware token); a failure means "no value for
// this field" and is never propagated out of the builder.
type TotpProvider interface {
	Code(ctx context.Context, seed string) (string, error)
}

// TotpProviderFunc adapts a plain function to TotpProvider.
type TotpProviderFunc func(ctx context.Context, seed string) (string, error)

// Code implements TotpProvider.
func (f TotpProviderFunc) Code(ctx context.Context, seed string) (string, error) {
	return f(ctx, seed)
}
