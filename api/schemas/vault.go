// api/schemas/vault.go
package schemas

// -- Vault Item Schemas --

// ItemKind discriminates the credential payload carried by an Item.
type ItemKind int

const (
	ItemKindLogin    ItemKind = 1
	ItemKindCard     ItemKind = 3
	ItemKindIdentity ItemKind = 4
)

// URIMatchMode selects how a saved URI is compared against the page URL.
type URIMatchMode int

const (
	URIMatchBaseDomain URIMatchMode = iota
	URIMatchHost
	URIMatchStartsWith
	URIMatchExact
	URIMatchRegex
	URIMatchNever
)

// LoginURI is one saved URI of a login item together with its match mode.
// A nil Match falls back to the caller's default mode (base domain).
type LoginURI struct {
	URI   string        `json:"uri"`
	Match *URIMatchMode `json:"match,omitempty"`
}

// LoginData is the login sub-record of an Item.
type LoginData struct {
	Username string     `json:"username"`
	Password string     `json:"password"`
	TOTP     string     `json:"totp,omitempty"`
	URIs     []LoginURI `json:"uris,omitempty"`
}

// CardData is the payment-card sub-record of an Item.
type CardData struct {
	CardholderName string `json:"cardholderName"`
	Number         string `json:"number"`
	ExpMonth       string `json:"expMonth"`
	ExpYear        string `json:"expYear"`
	Code           string `json:"code"`
	Brand          string `json:"brand"`
}

// IdentityData is the identity sub-record of an Item.
type IdentityData struct {
	Title      string `json:"title"`
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName"`
	LastName   string `json:"lastName"`
	Username   string `json:"username"`
	Company    string `json:"company"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2"`
	Address3   string `json:"address3"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Item is a vault entry selected for autofill. Exactly one of the sub-records
// should be populated, matching Kind; a missing sub-record is a no-op fill,
// not an error.
type Item struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Kind     ItemKind      `json:"type"`
	Login    *LoginData    `json:"login,omitempty"`
	Card     *CardData     `json:"card,omitempty"`
	Identity *IdentityData `json:"identity,omitempty"`
}
