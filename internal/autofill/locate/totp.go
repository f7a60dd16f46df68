// internal/autofill/locate/totp.go
package locate

import (
	"github.com/xkilldash9x/vaultfill-cli/api/schemas"
	"github.com/xkilldash9x/vaultfill-cli/internal/autofill/matcher"
)

// TotpField scans the whole catalog for the one-time-code input belonging to
// the anchor password field. Unlike the username scan there is no positional
// stop: OTP boxes routinely render after the password. A field qualifies on
// a fuzzy name match or the one-time-code autocomplete token; an exact
// name-table match or that token ends the scan. Returns nil when nothing
// qualifies.
func TotpField(catalog *schemas.PageFieldCatalog, anchor *schemas.FieldDescriptor, c ScanConstraints) *schemas.FieldDescriptor {
	var totp *schemas.FieldDescriptor
	for _, f := range catalog.Fields {
		if !eligible(f, anchor, c) || !matcher.IsTotpFieldType(f.Type) {
			continue
		}
		oneTimeCode := f.AutoCompleteType == matcher.AutoCompleteOneTimeCode
		if !oneTimeCode && !matcher.FieldIsFuzzyMatch(f, matcher.TotpFieldNames) {
			continue
		}
		totp = f
		if oneTimeCode || matcher.FindMatchingFieldIndex(f, matcher.TotpFieldNames) > -1 {
			break
		}
	}
	return totp
}
