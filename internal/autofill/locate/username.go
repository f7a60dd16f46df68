// internal/autofill/locate/username.go
package locate

import (
	"github.com/xkilldash9x/vaultfill-cli/api/schemas"
	"github.com/xkilldash9x/vaultfill-cli/internal/autofill/matcher"
)

// ScanConstraints narrows the username/TOTP catalog scan relative to a
// password anchor field.
type ScanConstraints struct {
	CanBeHidden   bool
	CanBeReadOnly bool
	// WithoutForm lifts the same-form requirement; used by the no-form
	// fallback tier.
	WithoutForm bool
}

// UsernameField scans the catalog for the username input belonging to the
// anchor password field. Only fields strictly before the anchor in DOM order
// are eligible; the last qualifying candidate wins unless an exact
// name-table match short-circuits the scan first. Returns nil when nothing
// qualifies.
func UsernameField(catalog *schemas.PageFieldCatalog, anchor *schemas.FieldDescriptor, c ScanConstraints) *schemas.FieldDescriptor {
	var username *schemas.FieldDescriptor
	for _, f := range catalog.Fields {
		if f.ElementNumber >= anchor.ElementNumber {
			break
		}
		if !eligible(f, anchor, c) || !matcher.IsUsernameFieldType(f.Type) {
			continue
		}
		username = f
		if matcher.FindMatchingFieldIndex(f, matcher.UsernameFieldNames) > -1 {
			break
		}
	}
	return username
}

// eligible applies the shared anchor-relative constraints.
func eligible(f, anchor *schemas.FieldDescriptor, c ScanConstraints) bool {
	if f.IsSpan() || f.Disabled {
		return false
	}
	if !c.CanBeReadOnly && f.ReadOnly {
		return false
	}
	if !c.WithoutForm && f.Form != anchor.Form {
		return false
	}
	if !c.CanBeHidden && !f.Viewable {
		return false
	}
	return true
}
