// internal/autofill/matcher/identitynames.go
package matcher

import "strings"

// Identity classification tables. Tier 1 (compound full-name / full-address
// fields) is checked before tier 2 (discrete attributes); the builders rely
// on that ordering, not this file.

// FullNameFieldNames match a compound full-name input (tier 1).
var FullNameFieldNames = []string{
	"full-name",
	"your-name",
	"name",
	"nome",
	"nombre",
	"nom",
}

// FullNameFieldNameValues is the containment allow-list for full names;
// bare "name" must match exactly or it would swallow "cardholder-name" and
// friends.
var FullNameFieldNameValues = []string{"full-name", "your-name"}

// TitleFieldNames match an honorific/title input.
var TitleFieldNames = []string{"honorific-prefix", "prefix", "title"}

// FirstNameFieldNames match a given-name input.
var FirstNameFieldNames = []string{"f-name", "first-name", "given-name", "first-n"}

// MiddleNameFieldNames match a middle-name input.
var MiddleNameFieldNames = []string{"m-name", "middle-name", "additional-name", "middle-initial", "middle-n", "middle-i"}

// LastNameFieldNames match a family-name input.
var LastNameFieldNames = []string{"l-name", "last-name", "s-name", "surname", "family-name", "family-n", "last-n"}

// EmailFieldNames match an email input.
var EmailFieldNames = []string{"e-mail", "email-address"}

// UserNameFieldNames match an account-name input on identity forms.
var UserNameFieldNames = []string{"user-name", "user-id", "screen-name"}

// CompanyFieldNames match a company/organization input.
var CompanyFieldNames = []string{"company", "company-name", "organization", "organization-name"}

// AddressFieldNames match a compound street-address input (tier 1).
var AddressFieldNames = []string{
	"address",
	"street-address",
	"addr",
	"street",
	"mailing-addr",
	"billing-addr",
	"mail-address",
	"bill-address",
}

// AddressFieldNameValues is the containment allow-list for compound
// addresses.
var AddressFieldNameValues = []string{"mailing-addr", "billing-addr", "mail-address", "bill-address"}

// AddressLine1FieldNames match the first discrete address line.
var AddressLine1FieldNames = []string{
	"address-1",
	"address-line-1",
	"addr-1",
	"street-1",
}

// AddressLine2FieldNames match the second discrete address line.
var AddressLine2FieldNames = []string{
	"address-2",
	"address-line-2",
	"addr-2",
	"street-2",
}

// AddressLine3FieldNames match the third discrete address line.
var AddressLine3FieldNames = []string{
	"address-3",
	"address-line-3",
	"addr-3",
	"street-3",
}

// PostalCodeFieldNames match a postal/zip input.
var PostalCodeFieldNames = []string{
	"postal",
	"zip",
	"zip2",
	"zip-code",
	"postal-code",
	"postal-c",
	"address-zip",
	"address-postal",
	"address-code",
	"address-postal-code",
	"address-zip-code",
}

// CityFieldNames match a city/town input.
var CityFieldNames = []string{
	"city",
	"town",
	"address-level-2",
	"address-city",
	"address-town",
}

// StateFieldNames match a state/province input.
var StateFieldNames = []string{
	"state",
	"province",
	"provence",
	"address-level-1",
	"address-state",
	"address-province",
}

// CountryFieldNames match a country input.
var CountryFieldNames = []string{
	"country",
	"country-code",
	"country-name",
	"address-country",
	"address-country-code",
	"address-country-name",
}

// PhoneFieldNames match a phone input.
var PhoneFieldNames = []string{
	"phone",
	"mobile",
	"mobile-phone",
	"tel",
	"telephone",
	"phone-number",
}

// IsoStates maps lowercased US state names to their two-letter USPS codes.
var IsoStates = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
	"california": "CA", "colorado": "CO", "connecticut": "CT",
	"delaware": "DE", "district of columbia": "DC", "florida": "FL",
	"georgia": "GA", "hawaii": "HI", "idaho": "ID", "illinois": "IL",
	"indiana": "IN", "iowa": "IA", "kansas": "KS", "kentucky": "KY",
	"louisiana": "LA", "maine": "ME", "maryland": "MD",
	"massachusetts": "MA", "michigan": "MI", "minnesota": "MN",
	"mississippi": "MS", "missouri": "MO", "montana": "MT",
	"nebraska": "NE", "nevada": "NV", "new hampshire": "NH",
	"new jersey": "NJ", "new mexico": "NM", "new york": "NY",
	"north carolina": "NC", "north dakota": "ND", "ohio": "OH",
	"oklahoma": "OK", "oregon": "OR", "pennsylvania": "PA",
	"puerto rico": "PR", "rhode island": "RI", "south carolina": "SC",
	"south dakota": "SD", "tennessee": "TN", "texas": "TX", "utah": "UT",
	"vermont": "VT", "virgin islands": "VI", "virginia": "VA",
	"washington": "WA", "west virginia": "WV", "wisconsin": "WI",
	"wyoming": "WY",
}

// IsoProvinces maps lowercased Canadian province and territory names to
// their two-letter codes.
var IsoProvinces = map[string]string{
	"alberta": "AB", "british columbia": "BC", "manitoba": "MB",
	"new brunswick": "NB", "newfoundland and labrador": "NL",
	"northwest territories": "NT", "nova scotia": "NS", "nunavut": "NU",
	"ontario": "ON", "prince edward island": "PE", "quebec": "QC",
	"saskatchewan": "SK", "yukon": "YT",
}

// IsoCountries maps lowercased country names to their ISO 3166-1 alpha-2
// codes. Not exhaustive; covers names identity records realistically carry.
var IsoCountries = map[string]string{
	"afghanistan": "AF", "albania": "AL", "algeria": "DZ",
	"argentina": "AR", "armenia": "AM", "australia": "AU", "austria": "AT",
	"azerbaijan": "AZ", "bahamas": "BS", "bahrain": "BH",
	"bangladesh": "BD", "belarus": "BY", "belgium": "BE", "belize": "BZ",
	"bolivia": "BO", "bosnia and herzegovina": "BA", "brazil": "BR",
	"bulgaria": "BG", "cambodia": "KH", "cameroon": "CM", "canada": "CA",
	"chile": "CL", "china": "CN", "colombia": "CO", "costa rica": "CR",
	"croatia": "HR", "cuba": "CU", "cyprus": "CY", "czech republic": "CZ",
	"czechia": "CZ", "denmark": "DK", "dominican republic": "DO",
	"ecuador": "EC", "egypt": "EG", "el salvador": "SV", "estonia": "EE",
	"ethiopia": "ET", "finland": "FI", "france": "FR", "georgia": "GE",
	"germany": "DE", "ghana": "GH", "greece": "GR", "guatemala": "GT",
	"haiti": "HT", "honduras": "HN", "hong kong": "HK", "hungary": "HU",
	"iceland": "IS", "india": "IN", "indonesia": "ID", "iran": "IR",
	"iraq": "IQ", "ireland": "IE", "israel": "IL", "italy": "IT",
	"jamaica": "JM", "japan": "JP", "jordan": "JO", "kazakhstan": "KZ",
	"kenya": "KE", "kuwait": "KW", "latvia": "LV", "lebanon": "LB",
	"lithuania": "LT", "luxembourg": "LU", "malaysia": "MY", "malta": "MT",
	"mexico": "MX", "monaco": "MC", "mongolia": "MN", "montenegro": "ME",
	"morocco": "MA", "nepal": "NP", "netherlands": "NL",
	"new zealand": "NZ", "nicaragua": "NI", "nigeria": "NG",
	"north macedonia": "MK", "norway": "NO", "oman": "OM",
	"pakistan": "PK", "panama": "PA", "paraguay": "PY", "peru": "PE",
	"philippines": "PH", "poland": "PL", "portugal": "PT", "qatar": "QA",
	"romania": "RO", "russia": "RU", "russian federation": "RU",
	"saudi arabia": "SA", "serbia": "RS", "singapore": "SG",
	"slovakia": "SK", "slovenia": "SI", "south africa": "ZA",
	"south korea": "KR", "spain": "ES", "sri lanka": "LK", "sweden": "SE",
	"switzerland": "CH", "syria": "SY", "taiwan": "TW", "thailand": "TH",
	"tunisia": "TN", "turkey": "TR", "ukraine": "UA",
	"united arab emirates": "AE", "united kingdom": "GB",
	"great britain": "GB", "united states": "US",
	"united states of america": "US", "uruguay": "UY", "uzbekistan": "UZ",
	"venezuela": "VE", "vietnam": "VN", "yemen": "YE", "zambia": "ZM",
	"zimbabwe": "ZW",
}

// IsoStateCode resolves a full US state or Canadian province name to its
// two-letter code. The bool reports whether a translation exists.
func IsoStateCode(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if code, ok := IsoStates[key]; ok {
		return code, true
	}
	code, ok := IsoProvinces[key]
	return code, ok
}

// IsoCountryCode resolves a full country name to its alpha-2 code.
func IsoCountryCode(name string) (string, bool) {
	code, ok := IsoCountries[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}
