// internal/autofill/matcher/cardnames.go
package matcher

import "github.com/xkilldash9x/vaultfill-cli/api/schemas"

// Card classification tables. The entries mix English names with the French,
// Spanish, Italian, German and Portuguese spellings payment pages actually
// use; keep additions lowercased and hyphen-separated.

// CardAttributes is the ordered attribute list a card (and identity) field is
// classified by. First attribute producing a category match wins.
var CardAttributes = []func(*schemas.FieldDescriptor) string{
	func(f *schemas.FieldDescriptor) string { return f.HTMLID },
	func(f *schemas.FieldDescriptor) string { return f.HTMLName },
	func(f *schemas.FieldDescriptor) string { return f.LabelTag },
	func(f *schemas.FieldDescriptor) string { return f.Placeholder },
	func(f *schemas.FieldDescriptor) string { return f.LabelLeft },
	func(f *schemas.FieldDescriptor) string { return f.LabelTop },
	func(f *schemas.FieldDescriptor) string { return f.LabelAria },
}

// CardHolderFieldNames match the cardholder-name input.
var CardHolderFieldNames = []string{
	"cc-name",
	"card-name",
	"cardholder-name",
	"cardholder",
	"name",
	"nom",
	"titular",
	"titolare",
	"karteninhaber",
}

// CardHolderFieldNameValues is the containment allow-list for the above:
// only these entries may match as substrings rather than whole names.
var CardHolderFieldNameValues = []string{
	"cc-name",
	"card-name",
	"cardholder-name",
	"cardholder",
}

// CardNumberFieldNames match the primary account number input.
var CardNumberFieldNames = []string{
	"cc-number",
	"cc-num",
	"card-number",
	"card-num",
	"number",
	"cc-no",
	"card-no",
	"numero-carte",
	"num-carte",
	"cb-num",
	"numero-cartao",
	"numero-tarjeta",
	"kartennummer",
	"numero-carta",
	"credit-card-number",
	"creditcardnumber",
	"kartnummer",
}

// CardNumberFieldNameValues is the containment allow-list for card numbers.
var CardNumberFieldNameValues = []string{
	"cc-number",
	"cc-num",
	"card-number",
	"card-num",
	"cc-no",
	"card-no",
	"numero-carte",
	"num-carte",
	"cb-num",
	"numero-cartao",
	"numero-tarjeta",
	"kartennummer",
	"numero-carta",
	"credit-card-number",
	"creditcardnumber",
	"kartnummer",
}

// CardExpiryFieldNames match a combined month+year expiration input.
var CardExpiryFieldNames = []string{
	"cc-expiry",
	"cc-exp",
	"card-expiry",
	"card-exp",
	"expiry",
	"exp-date",
	"expiration-date",
	"expiracion",
	"date-exp",
	"date-expiration",
	"fecha-expiracion",
	"fecha-venc",
	"scadenza",
	"data-scad",
	"data-validade",
	"data-vencimento",
	"gueltig-bis",
	"vervaldatum",
}

// CardExpiryFieldNameValues is the containment allow-list for combined
// expiry fields.
var CardExpiryFieldNameValues = []string{
	"cc-expiry",
	"cc-exp",
	"card-expiry",
	"card-exp",
	"expiration-date",
	"date-expiration",
}

// ExpiryMonthFieldNames match a dedicated expiration-month input.
var ExpiryMonthFieldNames = []string{
	"exp-month",
	"cc-exp-month",
	"cc-month",
	"card-month",
	"cc-mo",
	"card-mo",
	"exp-mo",
	"card-exp-mo",
	"cc-exp-mo",
	"card-expiration-month",
	"expiration-month",
	"cc-mm",
	"cb-mm",
	"mois-expiration",
	"mois-validite",
	"expiry-month",
	"expiration-mois",
	"mes-expiracion",
	"mes-venc",
	"mese-scadenza",
	"mes-de-validade",
	"mes-de-vencimento",
	"ablaufmonat",
	"month",
	"mois",
	"mes",
	"mese",
	"monat",
}

// ExpiryYearFieldNames match a dedicated expiration-year input.
var ExpiryYearFieldNames = []string{
	"exp-year",
	"cc-exp-year",
	"cc-year",
	"card-year",
	"cc-yr",
	"card-yr",
	"exp-yr",
	"card-exp-yr",
	"cc-exp-yr",
	"card-expiration-year",
	"expiration-year",
	"cc-yy",
	"cb-yy",
	"annee-expiration",
	"annee-validite",
	"expiry-year",
	"expiration-annee",
	"ano-expiracion",
	"ano-venc",
	"anno-scadenza",
	"ano-de-validade",
	"ano-de-vencimento",
	"ablaufjahr",
	"year",
	"annee",
	"ano",
	"anno",
	"jahr",
}

// CVVFieldNames match the security-code input.
var CVVFieldNames = []string{
	"cvv",
	"cvc",
	"cvv2",
	"cc-csc",
	"cc-cvv",
	"card-csc",
	"card-cvv",
	"cvd",
	"cid",
	"cvc2",
	"cnv",
	"cvn2",
	"cc-code",
	"card-code",
	"code-securite",
	"security-code",
	"codigo",
	"codigo-de-seguranca",
	"codigo-seguridad",
	"numero-seguridad",
	"crypto",
	"kartenpruefnummer",
	"sicherheitscode",
	"codice-sicurezza",
}

// CardBrandFieldNames match the card-brand dropdown some checkouts carry.
var CardBrandFieldNames = []string{
	"cc-type",
	"card-type",
	"card-brand",
	"cc-brand",
	"cb-type",
}

// Combined-expiry hint abbreviations, pairwise indexed: MonthAbbr[i] is
// probed with YearAbbrLong[i] and YearAbbrShort[i]. The aa/jj variants cover
// annee/jahr locales.
var (
	MonthAbbr     = []string{"mm", "mm", "mm", "m", "m", "m"}
	YearAbbrLong  = []string{"yyyy", "aaaa", "jjjj", "yyyy", "aaaa", "jjjj"}
	YearAbbrShort = []string{"yy", "aa", "jj", "yy", "aa", "jj"}
)
