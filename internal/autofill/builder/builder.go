// internal/autofill/builder/builder.go

// Package builder turns a page field catalog plus a selected vault item into
// an ordered, replayable fill script. It orchestrates the locator and
// matcher primitives, applies the per-kind classification rules, and owns
// the action assembly policy (dedup by opid, click/focus/fill triplets,
// trailing focus).
package builder

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/xkilldash9x/vaultfill-cli/api/schemas"
	"github.com/xkilldash9x/vaultfill-cli/internal/autofill/trust"
)

// Options are the per-request caller flags referenced throughout the build
// tiers. The zero value is the most conservative behavior.
type Options struct {
	// TabURL is the top-level URL of the tab being filled, compared against
	// the catalog's document URL for iframe trust.
	TabURL string
	// CanAccessInvisibleFields permits the hidden/readonly retry tiers.
	CanAccessInvisibleFields bool
	// OnlyEmptyFields restricts password candidates to blank inputs.
	OnlyEmptyFields bool
	// FillNewPassword permits filling autocomplete="new-password" inputs.
	FillNewPassword bool
	// AllowTotpAutofill enables one-time-code location and filling.
	AllowTotpAutofill bool
	// SkipUsernameOnlyFill suppresses the no-password fuzzy username tier.
	SkipUsernameOnlyFill bool
	// ActionDelayMs paces replay between consecutive actions.
	ActionDelayMs int
}

// Generator is the top-level fill-script engine. One instance serves many
// requests; all per-request state lives in the fillState it creates.
type Generator struct {
	trust  *trust.Evaluator
	totp   TotpProvider
	logger *zap.Logger
}

// New wires a Generator. totp may be nil when the caller cannot produce
// one-time codes; TOTP fields are then simply left alone.
func New(trustEval *trust.Evaluator, totp TotpProvider, logger *zap.Logger) *Generator {
	return &Generator{
		trust:  trustEval,
		totp:   totp,
		logger: logger.Named("builder"),
	}
}

// FillScript dispatches on the item kind and returns the fill script for the
// catalog, or (nil, nil) when the item carries nothing fillable — a no-op
// for the caller, not an error. Only a broken call contract (nil catalog or
// item) is rejected.
func (g *Generator) FillScript(ctx context.Context, catalog *schemas.PageFieldCatalog, item *schemas.Item, opts Options) (*schemas.FillScript, error) {
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fill request: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("invalid fill request: vault item is nil")
	}

	switch item.Kind {
	case schemas.ItemKindLogin:
		return g.buildLogin(ctx, catalog, item.Login, opts)
	case schemas.ItemKindCard:
		return g.buildCard(catalog, item.Card, opts), nil
	case schemas.ItemKindIdentity:
		return g.buildIdentity(catalog, item.Identity, opts), nil
	}
	g.logger.Debug("Unfillable item kind", zap.Int("kind", int(item.Kind)))
	return nil, nil
}

// newScript creates the script shell shared by all builders.
func newScript(opts Options) *schemas.FillScript {
	return &schemas.FillScript{
		SavedURLs:  []string{},
		Properties: schemas.Properties{DelayMs: opts.ActionDelayMs},
	}
}
