// internal/autofill/builder/card.go
package builder

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/xkilldash9x/vaultfill-cli/api/schemas"
	"github.com/xkilldash9x/vaultfill-cli/internal/autofill/matcher"
)

// cardFields is the classification result for a card fill: at most one field
// per card attribute, first match claiming each.
type cardFields struct {
	cardholderName *schemas.FieldDescriptor
	number         *schemas.FieldDescriptor
	exp            *schemas.FieldDescriptor
	expMonth       *schemas.FieldDescriptor
	expYear        *schemas.FieldDescriptor
	code           *schemas.FieldDescriptor
	brand          *schemas.FieldDescriptor
}

// buildCard assembles the fill script for a payment card item.
func (g *Generator) buildCard(catalog *schemas.PageFieldCatalog, card *schemas.CardData, opts Options) *schemas.FillScript {
	if card == nil {
		return nil
	}
	script := newScript(opts)
	script.ItemKind = schemas.ItemKindCard

	fields := g.classifyCardFields(catalog)
	state := newFillState(script)

	state.setFieldValue(fields.cardholderName, card.CardholderName)
	state.setFieldValue(fields.number, card.Number)
	g.fillExpMonth(state, fields.expMonth, card.ExpMonth)
	g.fillExpYear(state, fields.expYear, card.ExpYear)
	g.fillCombinedExp(state, fields.exp, card)
	state.setFieldValue(fields.code, card.Code)
	state.setFieldValue(fields.brand, card.Brand)

	state.appendTrailingFocus()
	g.logger.Debug("Built card fill script", zap.Int("actions", len(script.Script)))
	return script
}

// classifyCardFields scans every viewable, fillable field's attributes
// against the card name tables in priority order. The first category a field
// matches claims it; the first field claiming a category keeps it.
func (g *Generator) classifyCardFields(catalog *schemas.PageFieldCatalog) cardFields {
	var out cardFields
	for _, f := range catalog.Fields {
		if f.IsSpan() || matcher.IsExcludedFieldType(f.Type) || !f.Viewable {
			continue
		}
		for _, attr := range matcher.CardAttributes {
			value := attr(f)
			if value == "" {
				continue
			}
			if g.claimCardCategory(&out, f, value) {
				break
			}
		}
	}
	return out
}

// claimCardCategory tries the 7 card categories in priority order against
// one attribute reading. Returns true when the field got claimed.
func (g *Generator) claimCardCategory(out *cardFields, f *schemas.FieldDescriptor, value string) bool {
	switch {
	case out.cardholderName == nil && matcher.IsFieldMatch(value, matcher.CardHolderFieldNames, matcher.CardHolderFieldNameValues):
		out.cardholderName = f
	case out.number == nil && matcher.IsFieldMatch(value, matcher.CardNumberFieldNames, matcher.CardNumberFieldNameValues):
		out.number = f
	case out.exp == nil && matcher.IsFieldMatch(value, matcher.CardExpiryFieldNames, matcher.CardExpiryFieldNameValues):
		out.exp = f
	case out.expMonth == nil && matcher.IsFieldMatch(value, matcher.ExpiryMonthFieldNames, nil):
		out.expMonth = f
	case out.expYear == nil && matcher.IsFieldMatch(value, matcher.ExpiryYearFieldNames, nil):
		out.expYear = f
	case out.code == nil && matcher.IsFieldMatch(value, matcher.CVVFieldNames, nil):
		out.code = f
	case out.brand == nil && matcher.IsFieldMatch(value, matcher.CardBrandFieldNames, nil):
		out.brand = f
	default:
		return false
	}
	return true
}

// fillExpMonth normalizes the expiration month for the target field. Month
// dropdowns come in 12-option (no blank) and 13-option (blank at one end)
// shapes; the option's display text is what gets filled. Text inputs
// hinting a two-digit format get the month zero-padded.
func (g *Generator) fillExpMonth(state *fillState, field *schemas.FieldDescriptor, month string) {
	if field == nil || month == "" {
		return
	}
	value := month
	switch {
	case field.IsSelect():
		opts := field.SelectInfo.Options
		index := -1
		m, err := strconv.Atoi(month)
		if err != nil || m < 1 || m > 12 {
			return
		}
		switch len(opts) {
		case 12:
			index = m - 1
		case 13:
			// One end of the list is a placeholder. A non-empty first
			// option means the blank sits at the end, so months start at 0.
			if opts[0].Value != "" || opts[0].Text != "" {
				index = m - 1
			} else {
				index = m
			}
		}
		if index < 0 || index >= len(opts) {
			return
		}
		if opts[index].Text != "" {
			value = opts[index].Text
		} else {
			value = opts[index].Value
		}
	case len(month) == 1 && (fieldAttrsContain(field, "mm") || field.MaxLength == 2):
		value = "0" + month
	}
	state.setFieldValue(field, value)
}

// fillExpYear normalizes the expiration year. Dropdowns match the raw year,
// the 2-digit suffix of a 4-digit year, or a colon-delimited label suffix
// ("Year: 2027"). Text inputs convert between 2- and 4-digit forms based on
// yyyy/yy hints or max length.
func (g *Generator) fillExpYear(state *fillState, field *schemas.FieldDescriptor, year string) {
	if field == nil || year == "" {
		return
	}
	value := year
	if field.IsSelect() {
		matched := ""
		for _, opt := range field.SelectInfo.Options {
			if strings.EqualFold(opt.Value, year) || strings.EqualFold(opt.Text, year) {
				matched = pickOptionValue(opt)
				break
			}
			if len(year) == 4 {
				short := year[2:]
				if opt.Value == short || opt.Text == short {
					matched = pickOptionValue(opt)
					break
				}
			}
			if idx := strings.LastIndex(opt.Text, ":"); idx > -1 {
				if strings.TrimSpace(opt.Text[idx+1:]) == year {
					matched = pickOptionValue(opt)
					break
				}
			}
		}
		if matched == "" {
			return
		}
		value = matched
	} else {
		switch {
		case fieldAttrsContain(field, "yyyy") || field.MaxLength == 4:
			if len(year) == 2 {
				value = "20" + year
			}
		case fieldAttrsContain(field, "yy") || field.MaxLength == 2:
			if len(year) == 4 {
				value = year[2:]
			}
		}
	}
	state.setFieldValue(field, value)
}

func pickOptionValue(opt schemas.SelectOption) string {
	if opt.Text != "" {
		return opt.Text
	}
	return opt.Value
}

// fillCombinedExp formats month+year for a single combined expiration input
// by probing the field's metadata for every separator/order/year-length hint
// in the abbreviation table. Nothing hinted means the ISO-ish
// "<yyyy>-<mm>" default.
func (g *Generator) fillCombinedExp(state *fillState, field *schemas.FieldDescriptor, card *schemas.CardData) {
	if field == nil || card.ExpMonth == "" || card.ExpYear == "" {
		return
	}
	fullMonth := card.ExpMonth
	if len(fullMonth) == 1 {
		fullMonth = "0" + fullMonth
	}
	fullYear := card.ExpYear
	if len(fullYear) == 2 {
		fullYear = "20" + fullYear
	}
	if len(fullYear) != 4 {
		return
	}
	partYear := fullYear[2:]

	exp := ""
	for i := range matcher.MonthAbbr {
		month := matcher.MonthAbbr[i]
		longYear := matcher.YearAbbrLong[i]
		shortYear := matcher.YearAbbrShort[i]
		for _, sep := range []string{"/", "-", ""} {
			switch {
			case fieldAttrsContain(field, month+sep+longYear):
				exp = fullMonth + sep + fullYear
			case fieldAttrsContain(field, month+sep+shortYear):
				exp = fullMonth + sep + partYear
			case fieldAttrsContain(field, longYear+sep+month):
				exp = fullYear + sep + fullMonth
			case fieldAttrsContain(field, shortYear+sep+month):
				exp = partYear + sep + fullMonth
			}
			if exp != "" {
				break
			}
		}
		if exp != "" {
			break
		}
	}
	if exp == "" {
		exp = fullYear + "-" + fullMonth
	}
	state.setFieldValue(field, exp)
}

// fieldAttrsContain reports whether any card attribute reading of the field
// contains the hint, compared lowercased with spaces removed.
func fieldAttrsContain(field *schemas.FieldDescriptor, hint string) bool {
	for _, attr := range matcher.CardAttributes {
		value := attr(field)
		if value == "" {
			continue
		}
		value = strings.ToLower(strings.ReplaceAll(value, " ", ""))
		if strings.Contains(value, hint) {
			return true
		}
	}
	return false
}
