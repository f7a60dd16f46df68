// internal/autofill/builder/login_test.go
package builder

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/vaultfill-cli/api/schemas"
)

func TestLoginPerFormPass(t *testing.T) {
	g := testGenerator(nil)
	ctx := context.Background()

	user := input("__user", 0, func(f *schemas.FieldDescriptor) {
		f.HTMLName = "login"
		f.Form = "form1"
	})
	pw := pwInput("__pw", 1, func(f *schemas.FieldDescriptor) { f.Form = "form1" })
	confirm := pwInput("__confirm", 2, func(f *schemas.FieldDescriptor) { f.Form = "form1" })
	cat := testCatalog(user, pw, confirm)
	cat.Forms["form1"] = schemas.FormDescriptor{OpID: "form1"}

	script, err := g.FillScript(ctx, cat, loginItem("alice", "hunter2"), Options{TabURL: cat.DocumentURL})
	require.NoError(t, err)
	require.NotNil(t, script)

	fills := fillsOf(script)
	assert.Equal(t, "alice", fills["__user"])
	// Every password field of the form is filled, not just the anchor.
	assert.Equal(t, "hunter2", fills["__pw"])
	assert.Equal(t, "hunter2", fills["__confirm"])

	// Username actions precede password actions.
	assert.Equal(t, "__user", script.Script[0].OpID)

	// Trailing focus lands on the last filled password field.
	last := script.Script[len(script.Script)-1]
	assert.Equal(t, schemas.ActionFocus, last.Kind)
	assert.Equal(t, "__confirm", last.OpID)
}

func TestLoginHiddenRetry(t *testing.T) {
	g := testGenerator(nil)
	ctx := context.Background()
	hidden := pwInput("__pw", 1, func(f *schemas.FieldDescriptor) {
		f.Viewable = false
		f.Form = "form1"
	})

	build := func(opts Options) *schemas.FillScript {
		cat := testCatalog(hidden)
		cat.Forms["form1"] = schemas.FormDescriptor{OpID: "form1"}
		script, err := g.FillScript(ctx, cat, loginItem("", "hunter2"), opts)
		require.NoError(t, err)
		require.NotNil(t, script)
		return script
	}

	// Strictly-visible pass finds nothing and there is no retry permission:
	// the hidden field must stay empty (the catalog has no username-like
	// fields either, so the fallback tier emits nothing).
	script := build(Options{TabURL: "https://login.example.com/signin"})
	assert.Empty(t, fillsOf(script))

	script = build(Options{TabURL: "https://login.example.com/signin", CanAccessInvisibleFields: true})
	assert.Equal(t, "hunter2", fillsOf(script)["__pw"])
}

func TestLoginNoFormFallback(t *testing.T) {
	g := testGenerator(nil)
	ctx := context.Background()

	t.Run("formless password anchors on first password field", func(t *testing.T) {
		user := input("__user", 0)
		pw := pwInput("__pw", 1)
		pw2 := pwInput("__pw2", 2)
		cat := testCatalog(user, pw, pw2)

		script, err := g.FillScript(ctx, cat, loginItem("alice", "hunter2"), Options{TabURL: cat.DocumentURL})
		require.NoError(t, err)

		fills := fillsOf(script)
		assert.Equal(t, "alice", fills["__user"])
		assert.Equal(t, "hunter2", fills["__pw"])
		assert.Equal(t, "hunter2", fills["__pw2"])
	})

	t.Run("first-on-page password gets no username search", func(t *testing.T) {
		pw := pwInput("__pw", 0)
		late := input("__late", 1, func(f *schemas.FieldDescriptor) { f.HTMLName = "username" })
		cat := testCatalog(pw, late)

		script, err := g.FillScript(ctx, cat, loginItem("alice", "hunter2"), Options{TabURL: cat.DocumentURL})
		require.NoError(t, err)

		fills := fillsOf(script)
		assert.Equal(t, "hunter2", fills["__pw"])
		_, filledUser := fills["__late"]
		assert.False(t, filledUser)
	})
}

func TestLoginUsernameOnlyFallback(t *testing.T) {
	g := testGenerator(nil)
	ctx := context.Background()

	email := input("__email", 0, func(f *schemas.FieldDescriptor) {
		f.Type = "email"
		f.HTMLID = "login-email"
	})
	hiddenUser := input("__hidden", 1, func(f *schemas.FieldDescriptor) {
		f.HTMLName = "username"
		f.Viewable = false
	})
	plain := input("__plain", 2)

	t.Run("fills every viewable username-like field once", func(t *testing.T) {
		cat := testCatalog(email, hiddenUser, plain)
		script, err := g.FillScript(ctx, cat, loginItem("alice", "hunter2"), Options{TabURL: cat.DocumentURL})
		require.NoError(t, err)

		fills := fillsOf(script)
		assert.Equal(t, map[string]string{"__email": "alice"}, fills)
	})

	t.Run("suppressed by SkipUsernameOnlyFill", func(t *testing.T) {
		cat := testCatalog(email)
		script, err := g.FillScript(ctx, cat, loginItem("alice", "hunter2"),
			Options{TabURL: cat.DocumentURL, SkipUsernameOnlyFill: true})
		require.NoError(t, err)
		assert.Empty(t, fillsOf(script))
	})
}

func TestLoginTotp(t *testing.T) {
	ctx := context.Background()
	otpField := func() *schemas.FieldDescriptor {
		return input("__otp", 2, func(f *schemas.FieldDescriptor) {
			f.Form = "form1"
			f.AutoCompleteType = "one-time-code"
		})
	}
	buildCat := func() *schemas.PageFieldCatalog {
		pw := pwInput("__pw", 1, func(f *schemas.FieldDescriptor) { f.Form = "form1" })
		cat := testCatalog(pw, otpField())
		cat.Forms["form1"] = schemas.FormDescriptor{OpID: "form1"}
		return cat
	}
	item := loginItem("", "hunter2")
	item.Login.TOTP = "JBSWY3DPEHPK3PXP"

	t.Run("fills the located field with the provider code", func(t *testing.T) {
		g := testGenerator(fixedTotp("987654"))
		script, err := g.FillScript(ctx, buildCat(), item,
			Options{TabURL: "https://login.example.com/signin", AllowTotpAutofill: true})
		require.NoError(t, err)
		assert.Equal(t, "987654", fillsOf(script)["__otp"])
	})

	t.Run("provider failure leaves the field unfilled", func(t *testing.T) {
		g := testGenerator(TotpProviderFunc(func(context.Context, string) (string, error) {
			return "", errors.New("clock drift")
		}))
		script, err := g.FillScript(ctx, buildCat(), item,
			Options{TabURL: "https://login.example.com/signin", AllowTotpAutofill: true})
		require.NoError(t, err)
		_, ok := fillsOf(script)["__otp"]
		assert.False(t, ok)
	})

	t.Run("disabled toggle skips TOTP location entirely", func(t *testing.T) {
		g := testGenerator(fixedTotp("987654"))
		script, err := g.FillScript(ctx, buildCat(), item,
			Options{TabURL: "https://login.example.com/signin"})
		require.NoError(t, err)
		_, ok := fillsOf(script)["__otp"]
		assert.False(t, ok)
	})
}

func TestLoginScriptMetadata(t *testing.T) {
	g := testGenerator(nil)
	ctx := context.Background()
	never := schemas.URIMatchNever

	item := loginItem("alice", "hunter2")
	item.Login.URIs = []schemas.LoginURI{
		{URI: "https://example.com"},
		{URI: "https://ignored.example", Match: &never},
	}

	t.Run("saved urls exclude never-match uris", func(t *testing.T) {
		cat := testCatalog(pwInput("__pw", 0))
		script, err := g.FillScript(ctx, cat, item, Options{TabURL: cat.DocumentURL})
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com"}, script.SavedURLs)
	})

	t.Run("same page and tab url is trusted", func(t *testing.T) {
		cat := testCatalog(pwInput("__pw", 0))
		script, err := g.FillScript(ctx, cat, item, Options{TabURL: cat.DocumentURL})
		require.NoError(t, err)
		assert.False(t, script.UntrustedIframe)
	})

	t.Run("cross-origin iframe without matching uri is untrusted", func(t *testing.T) {
		cat := testCatalog(pwInput("__pw", 0))
		cat.DocumentURL = "https://frames.evil.net/capture"
		script, err := g.FillScript(ctx, cat, item, Options{TabURL: "https://shop.example.com"})
		require.NoError(t, err)
		assert.True(t, script.UntrustedIframe)
	})

	t.Run("action delay is carried through", func(t *testing.T) {
		cat := testCatalog(pwInput("__pw", 0))
		script, err := g.FillScript(ctx, cat, item, Options{TabURL: cat.DocumentURL, ActionDelayMs: 20})
		require.NoError(t, err)
		assert.Equal(t, 20, script.Properties.DelayMs)
	})
}
