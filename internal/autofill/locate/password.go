// internal/autofill/locate/password.go

// Package locate selects candidate fields from a page catalog: password
// fields under visibility and writability constraints, and the username or
// one-time-code fields associated with a password anchor.
package locate

import (
	"strings"

	"github.com/xkilldash9x/vaultfill-cli/api/schemas"
	"github.com/xkilldash9x/vaultfill-cli/internal/autofill/matcher"
)

// PasswordConstraints narrows which fields qualify as password inputs for
// one request. The login builder runs a strict pass first and relaxes
// Hidden/ReadOnly on retry.
type PasswordConstraints struct {
	CanBeHidden     bool
	CanBeReadOnly   bool
	MustBeEmpty     bool
	FillNewPassword bool
}

// PasswordFields returns, in catalog order, every field that should be
// treated as a password input under the given constraints. It also runs the
// orphan-form repair for malformed password-change markup.
func PasswordFields(catalog *schemas.PageFieldCatalog, c PasswordConstraints) []*schemas.FieldDescriptor {
	var out []*schemas.FieldDescriptor
	for _, f := range catalog.Fields {
		if f.IsSpan() {
			continue
		}
		if !isPasswordType(f) {
			continue
		}
		if f.Disabled {
			continue
		}
		if !c.CanBeReadOnly && f.ReadOnly {
			continue
		}
		if !c.CanBeHidden && !f.Viewable {
			continue
		}
		if c.MustBeEmpty && strings.TrimSpace(f.Value) != "" {
			continue
		}
		if !c.FillNewPassword && f.AutoCompleteType == matcher.AutoCompleteNewPassword {
			continue
		}
		out = append(out, f)
	}
	repairOrphanedForms(catalog, out)
	return out
}

// isPasswordType accepts real password inputs, plus text inputs whose
// id/name/placeholder reads like a password box (sites mask these by
// script). The ignore-list inside ValueIsLikePassword keeps "forgot
// password" links out.
func isPasswordType(f *schemas.FieldDescriptor) bool {
	if f.Type == "password" {
		return true
	}
	if f.Type != "text" {
		return false
	}
	return matcher.ValueIsLikePassword(f.HTMLID) ||
		matcher.ValueIsLikePassword(f.HTMLName) ||
		matcher.ValueIsLikePassword(f.Placeholder)
}

// repairOrphanedForms handles password-change pages with broken form
// nesting: exactly three password fields, a single form on the page, and a
// mix of in-form and orphaned fields. In that one shape the orphans are
// reassigned to the sole form so the per-form pass sees all three together.
func repairOrphanedForms(catalog *schemas.PageFieldCatalog, passwordFields []*schemas.FieldDescriptor) {
	if len(passwordFields) != 3 || len(catalog.Forms) != 1 {
		return
	}
	var soleForm string
	for key := range catalog.Forms {
		soleForm = key
	}

	anchored := false
	orphans := 0
	for _, f := range passwordFields {
		switch {
		case f.Form == "":
			orphans++
		case f.Form == soleForm:
			anchored = true
		}
	}
	if orphans == 0 || !anchored {
		return
	}
	for _, f := range passwordFields {
		if f.Form == "" {
			f.Form = soleForm
		}
	}
}
