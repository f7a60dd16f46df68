// internal/autofill/totp/totp_test.go
package totp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RFC 6238 test secret: "12345678901234567890" in base32.
const rfcSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

func pinned(unix int64) *Generator {
	return NewAt(func() time.Time { return time.Unix(unix, 0).UTC() })
}

func TestCodeFromBareSecret(t *testing.T) {
	g := pinned(59)

	code, err := g.Code(context.Background(), rfcSecret)
	require.NoError(t, err)
	assert.Equal(t, "287082", code)

	t.Run("tolerates lowercase and grouping", func(t *testing.T) {
		code, err := g.Code(context.Background(), "gezd gnbv gy3t qojq gezd gnbv gy3t qojq")
		require.NoError(t, err)
		assert.Equal(t, "287082", code)
	})
}

func TestCodeFromOtpauthURL(t *testing.T) {
	g := pinned(59)

	code, err := g.Code(context.Background(), "otpauth://totp/Example:alice?secret="+rfcSecret+"&digits=8&period=30")
	require.NoError(t, err)
	assert.Equal(t, "94287082", code)
}

func TestCodeErrors(t *testing.T) {
	g := pinned(59)

	_, err := g.Code(context.Background(), "")
	assert.Error(t, err)

	_, err = g.Code(context.Background(), "otpauth://%zz")
	assert.Error(t, err)
}
