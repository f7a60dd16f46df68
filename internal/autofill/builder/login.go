// internal/autofill/builder/login.go
package builder

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xkilldash9x/vaultfill-cli/api/schemas"
	"github.com/xkilldash9x/vaultfill-cli/internal/autofill/locate"
	"github.com/xkilldash9x/vaultfill-cli/internal/autofill/matcher"
)

// buildLogin assembles the fill script for a login item. Three tiers: a
// per-form pass anchored on each form's first password field, a no-form
// fallback anchored on the page's first password field, and a fuzzy
// username/TOTP-only pass for catalogs without any password field.
func (g *Generator) buildLogin(ctx context.Context, catalog *schemas.PageFieldCatalog, login *schemas.LoginData, opts Options) (*schemas.FillScript, error) {
	if login == nil {
		return nil, nil
	}
	script := newScript(opts)
	script.ItemKind = schemas.ItemKindLogin
	script.UntrustedIframe = g.trust.UntrustedIframe(catalog.DocumentURL, opts.TabURL, login)
	for _, u := range login.URIs {
		if u.Match == nil || *u.Match != schemas.URIMatchNever {
			script.SavedURLs = append(script.SavedURLs, u.URI)
		}
	}

	passwords := locate.PasswordFields(catalog, locate.PasswordConstraints{
		MustBeEmpty:     opts.OnlyEmptyFields,
		FillNewPassword: opts.FillNewPassword,
	})
	if len(passwords) == 0 && opts.CanAccessInvisibleFields {
		passwords = locate.PasswordFields(catalog, locate.PasswordConstraints{
			CanBeHidden:     true,
			CanBeReadOnly:   true,
			MustBeEmpty:     opts.OnlyEmptyFields,
			FillNewPassword: opts.FillNewPassword,
		})
	}

	var usernames, totps, passwordFields []*schemas.FieldDescriptor

	// Per-form pass.
	formsSeen := map[string]bool{}
	for _, pf := range passwords {
		if pf.Form == "" || formsSeen[pf.Form] {
			continue
		}
		formsSeen[pf.Form] = true

		// pf is the form's first password field in catalog order: the
		// anchor. Every password field of the form gets filled.
		for _, other := range passwords {
			if other.Form == pf.Form {
				passwordFields = append(passwordFields, other)
			}
		}
		if login.Username != "" {
			if u := g.findUsername(catalog, pf, opts); u != nil {
				usernames = append(usernames, u)
			}
		}
		if opts.AllowTotpAutofill && login.TOTP != "" {
			if tf := g.findTotp(catalog, pf, opts); tf != nil {
				totps = append(totps, tf)
			}
		}
	}

	switch {
	case len(passwords) > 0 && len(passwordFields) == 0:
		// No-form fallback: no password field belongs to any form. Anchor on
		// the page's first password field; associated fields are only
		// searched for when something can precede the anchor at all.
		pf := passwords[0]
		passwordFields = passwords
		if pf.ElementNumber > 0 {
			if login.Username != "" {
				if u := g.findUsernameAnyForm(catalog, pf, opts); u != nil {
					usernames = append(usernames, u)
				}
			}
			if opts.AllowTotpAutofill && login.TOTP != "" {
				if tf := g.findTotpAnyForm(catalog, pf, opts); tf != nil {
					totps = append(totps, tf)
				}
			}
		}

	case len(passwords) == 0:
		// No-password fallback: fuzzy-fill bare username-like and TOTP-like
		// fields across the whole page.
		for _, f := range catalog.Fields {
			if f.IsSpan() || !f.Viewable {
				continue
			}
			if !opts.SkipUsernameOnlyFill && login.Username != "" &&
				matcher.IsUsernameFieldType(f.Type) &&
				matcher.FieldIsFuzzyMatch(f, matcher.UsernameFieldNames) {
				usernames = append(usernames, f)
			}
			if opts.AllowTotpAutofill && login.TOTP != "" &&
				matcher.IsTotpFieldType(f.Type) &&
				(f.AutoCompleteType == matcher.AutoCompleteOneTimeCode ||
					matcher.FieldIsFuzzyMatch(f, matcher.TotpFieldNames)) {
				totps = append(totps, f)
			}
		}
	}

	state := newFillState(script)
	for _, f := range usernames {
		state.fill(f, login.Username)
	}
	for _, f := range passwordFields {
		state.fill(f, login.Password)
	}
	if err := g.fillTotps(ctx, state, totps, login.TOTP); err != nil {
		return nil, err
	}

	state.appendTrailingFocus()
	g.logger.Debug("Built login fill script",
		zap.Int("actions", len(script.Script)),
		zap.Int("passwordFields", len(passwordFields)),
		zap.Int("usernameFields", len(usernames)),
		zap.Int("totpFields", len(totps)),
		zap.Bool("untrustedIframe", script.UntrustedIframe))
	return script, nil
}

// findUsername resolves a username for an anchor, visible-first with a
// hidden retry when permitted.
func (g *Generator) findUsername(catalog *schemas.PageFieldCatalog, anchor *schemas.FieldDescriptor, opts Options) *schemas.FieldDescriptor {
	u := locate.UsernameField(catalog, anchor, locate.ScanConstraints{})
	if u == nil && opts.CanAccessInvisibleFields {
		u = locate.UsernameField(catalog, anchor, locate.ScanConstraints{CanBeHidden: true, CanBeReadOnly: true})
	}
	return u
}

func (g *Generator) findUsernameAnyForm(catalog *schemas.PageFieldCatalog, anchor *schemas.FieldDescriptor, opts Options) *schemas.FieldDescriptor {
	u := locate.UsernameField(catalog, anchor, locate.ScanConstraints{WithoutForm: true})
	if u == nil && opts.CanAccessInvisibleFields {
		u = locate.UsernameField(catalog, anchor, locate.ScanConstraints{WithoutForm: true, CanBeHidden: true, CanBeReadOnly: true})
	}
	return u
}

func (g *Generator) findTotp(catalog *schemas.PageFieldCatalog, anchor *schemas.FieldDescriptor, opts Options) *schemas.FieldDescriptor {
	tf := locate.TotpField(catalog, anchor, locate.ScanConstraints{})
	if tf == nil && opts.CanAccessInvisibleFields {
		tf = locate.TotpField(catalog, anchor, locate.ScanConstraints{CanBeHidden: true, CanBeReadOnly: true})
	}
	return tf
}

func (g *Generator) findTotpAnyForm(catalog *schemas.PageFieldCatalog, anchor *schemas.FieldDescriptor, opts Options) *schemas.FieldDescriptor {
	tf := locate.TotpField(catalog, anchor, locate.ScanConstraints{WithoutForm: true})
	if tf == nil && opts.CanAccessInvisibleFields {
		tf = locate.TotpField(catalog, anchor, locate.ScanConstraints{WithoutForm: true, CanBeHidden: true, CanBeReadOnly: true})
	}
	return tf
}

// fillTotps fetches one code per matched field concurrently, then appends
// the Fill actions in field scan order. Buffering the codes keeps the
// emitted script deterministic even though retrieval is fanned out; a
// provider failure just leaves that field unfilled.
func (g *Generator) fillTotps(ctx context.Context, state *fillState, totps []*schemas.FieldDescriptor, seed string) error {
	if len(totps) == 0 || g.totp == nil || seed == "" {
		return nil
	}

	codes := make([]string, len(totps))
	eg, egCtx := errgroup.WithContext(ctx)
	for i := range totps {
		eg.Go(func() error {
			code, err := g.totp.Code(egCtx, seed)
			if err != nil {
				g.logger.Warn("TOTP code retrieval failed, leaving field unfilled",
					zap.String("opid", totps[i].OpID), zap.Error(err))
				return nil
			}
			codes[i] = code
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for i, f := range totps {
		if codes[i] != "" {
			state.fill(f, codes[i])
		}
	}
	return nil
}
