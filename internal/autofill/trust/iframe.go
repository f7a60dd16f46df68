// internal/autofill/trust/iframe.go
package trust

import (
	"go.uber.org/zap"

	"github.com/xkilldash9x/vaultfill-cli/api/schemas"
)

// Evaluator decides iframe trust for fill requests.
type Evaluator struct {
	equivalents EquivalentDomains
	defaultMode schemas.URIMatchMode
	logger      *zap.Logger
}

// NewEvaluator wires an iframe trust evaluator. defaultMode applies to saved
// URIs that carry no explicit match mode.
func NewEvaluator(equivalents EquivalentDomains, defaultMode schemas.URIMatchMode, logger *zap.Logger) *Evaluator {
	return &Evaluator{
		equivalents: equivalents,
		defaultMode: defaultMode,
		logger:      logger.Named("trust"),
	}
}

// UntrustedIframe reports whether filling pageURL would cross an origin the
// user cannot see. When the page URL equals the tab's top-level URL there is
// no iframe at all and the fill is trusted regardless of saved URIs.
// Otherwise the fill is trusted only if some saved URI matches the page URL
// under its match mode.
func (e *Evaluator) UntrustedIframe(pageURL, tabURL string, login *schemas.LoginData) bool {
	if pageURL == tabURL {
		return false
	}
	if login == nil {
		return true
	}

	groups := e.equivalents.Groups(pageURL)
	for _, saved := range login.URIs {
		if URIMatches(pageURL, saved, e.defaultMode, groups, e.logger) {
			return false
		}
	}
	e.logger.Debug("Iframe fill flagged untrusted",
		zap.String("pageUrl", pageURL),
		zap.String("tabUrl", tabURL),
		zap.Int("savedUris", len(login.URIs)))
	return true
}
