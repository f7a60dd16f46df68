// internal/autofill/builder/identity.go
package builder

import (
	"strings"

	"go.uber.org/zap"

	"github.com/xkilldash9x/vaultfill-cli/api/schemas"
	"github.com/xkilldash9x/vaultfill-cli/internal/autofill/matcher"
)

// identityFields is the classification result for an identity fill.
type identityFields struct {
	// Tier 1: compound fields. A field claimed here is never tested against
	// the discrete categories below.
	name    *schemas.FieldDescriptor
	address *schemas.FieldDescriptor

	// Tier 2: discrete attributes.
	title      *schemas.FieldDescriptor
	firstName  *schemas.FieldDescriptor
	middleName *schemas.FieldDescriptor
	lastName   *schemas.FieldDescriptor
	email      *schemas.FieldDescriptor
	address1   *schemas.FieldDescriptor
	address2   *schemas.FieldDescriptor
	address3   *schemas.FieldDescriptor
	postalCode *schemas.FieldDescriptor
	city       *schemas.FieldDescriptor
	state      *schemas.FieldDescriptor
	country    *schemas.FieldDescriptor
	phone      *schemas.FieldDescriptor
	username   *schemas.FieldDescriptor
	company    *schemas.FieldDescriptor
}

// buildIdentity assembles the fill script for an identity item.
func (g *Generator) buildIdentity(catalog *schemas.PageFieldCatalog, identity *schemas.IdentityData, opts Options) *schemas.FillScript {
	if identity == nil {
		return nil
	}
	script := newScript(opts)
	script.ItemKind = schemas.ItemKindIdentity

	fields := g.classifyIdentityFields(catalog)
	state := newFillState(script)

	state.setFieldValue(fields.title, identity.Title)
	state.setFieldValue(fields.name, fullName(identity))
	state.setFieldValue(fields.firstName, identity.FirstName)
	state.setFieldValue(fields.middleName, identity.MiddleName)
	state.setFieldValue(fields.lastName, identity.LastName)
	state.setFieldValue(fields.username, identity.Username)
	state.setFieldValue(fields.company, identity.Company)
	state.setFieldValue(fields.email, identity.Email)
	state.setFieldValue(fields.phone, identity.Phone)
	state.setFieldValue(fields.address, fullAddress(identity))
	state.setFieldValue(fields.address1, identity.Address1)
	state.setFieldValue(fields.address2, identity.Address2)
	state.setFieldValue(fields.address3, identity.Address3)
	state.setFieldValue(fields.city, identity.City)
	g.fillWithIsoTranslation(state, fields.state, identity.State, matcher.IsoStateCode)
	g.fillWithIsoTranslation(state, fields.country, identity.Country, matcher.IsoCountryCode)
	state.setFieldValue(fields.postalCode, identity.PostalCode)

	state.appendTrailingFocus()
	g.logger.Debug("Built identity fill script", zap.Int("actions", len(script.Script)))
	return script
}

// classifyIdentityFields assigns each viewable, fillable field to at most
// one identity category. Compound categories (full name, full address) are
// tested across all attributes before any discrete category is considered
// for the field.
func (g *Generator) classifyIdentityFields(catalog *schemas.PageFieldCatalog) identityFields {
	var out identityFields
	for _, f := range catalog.Fields {
		if f.IsSpan() || matcher.IsExcludedFieldType(f.Type) || !f.Viewable {
			continue
		}
		if g.claimCompoundCategory(&out, f) {
			continue
		}
		for _, attr := range matcher.CardAttributes {
			value := attr(f)
			if value == "" {
				continue
			}
			if g.claimDiscreteCategory(&out, f, value) {
				break
			}
		}
	}
	return out
}

// claimCompoundCategory is tier 1: full-name and full-address fields.
func (g *Generator) claimCompoundCategory(out *identityFields, f *schemas.FieldDescriptor) bool {
	for _, attr := range matcher.CardAttributes {
		value := attr(f)
		if value == "" {
			continue
		}
		switch {
		case out.name == nil && matcher.IsFieldMatch(value, matcher.FullNameFieldNames, matcher.FullNameFieldNameValues):
			out.name = f
		case out.address == nil && matcher.IsFieldMatch(value, matcher.AddressFieldNames, matcher.AddressFieldNameValues):
			out.address = f
		default:
			continue
		}
		return true
	}
	return false
}

// claimDiscreteCategory is tier 2: the 15 discrete identity attributes, in
// priority order.
func (g *Generator) claimDiscreteCategory(out *identityFields, f *schemas.FieldDescriptor, value string) bool {
	switch {
	case out.firstName == nil && matcher.IsFieldMatch(value, matcher.FirstNameFieldNames, nil):
		out.firstName = f
	case out.middleName == nil && matcher.IsFieldMatch(value, matcher.MiddleNameFieldNames, nil):
		out.middleName = f
	case out.lastName == nil && matcher.IsFieldMatch(value, matcher.LastNameFieldNames, nil):
		out.lastName = f
	case out.title == nil && matcher.IsFieldMatch(value, matcher.TitleFieldNames, nil):
		out.title = f
	case out.email == nil && matcher.IsFieldMatch(value, matcher.EmailFieldNames, nil):
		out.email = f
	case out.address1 == nil && matcher.IsFieldMatch(value, matcher.AddressLine1FieldNames, nil):
		out.address1 = f
	case out.address2 == nil && matcher.IsFieldMatch(value, matcher.AddressLine2FieldNames, nil):
		out.address2 = f
	case out.address3 == nil && matcher.IsFieldMatch(value, matcher.AddressLine3FieldNames, nil):
		out.address3 = f
	case out.postalCode == nil && matcher.IsFieldMatch(value, matcher.PostalCodeFieldNames, nil):
		out.postalCode = f
	case out.city == nil && matcher.IsFieldMatch(value, matcher.CityFieldNames, nil):
		out.city = f
	case out.state == nil && matcher.IsFieldMatch(value, matcher.StateFieldNames, nil):
		out.state = f
	case out.country == nil && matcher.IsFieldMatch(value, matcher.CountryFieldNames, nil):
		out.country = f
	case out.phone == nil && matcher.IsFieldMatch(value, matcher.PhoneFieldNames, nil):
		out.phone = f
	case out.username == nil && matcher.IsFieldMatch(value, matcher.UserNameFieldNames, nil):
		out.username = f
	case out.company == nil && matcher.IsFieldMatch(value, matcher.CompanyFieldNames, nil):
		out.company = f
	default:
		return false
	}
	return true
}

// fillWithIsoTranslation fills a state or country field, translating a full
// name to its ISO code when one exists. Two-letter inputs are already codes
// and pass through untouched.
func (g *Generator) fillWithIsoTranslation(state *fillState, field *schemas.FieldDescriptor, raw string, lookup func(string) (string, bool)) {
	if field == nil || raw == "" {
		return
	}
	value := raw
	if len(raw) > 2 {
		if code, ok := lookup(raw); ok {
			value = code
		}
	}
	state.setFieldValue(field, value)
}

// fullName joins the non-empty name parts with single spaces.
func fullName(identity *schemas.IdentityData) string {
	return joinNonEmpty(" ", identity.FirstName, identity.MiddleName, identity.LastName)
}

// fullAddress joins the non-empty address lines with ", ".
func fullAddress(identity *schemas.IdentityData) string {
	return joinNonEmpty(", ", identity.Address1, identity.Address2, identity.Address3)
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
