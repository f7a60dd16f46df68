// internal/autofill/matcher/names.go
package matcher

// Name tables used by the login-side locators. Each list is a priority
// order: earlier entries short-circuit later ones.

// UsernameFieldNames are attribute readings that identify a username input.
var UsernameFieldNames = []string{
	"username",
	"user name",
	"email",
	"email address",
	"e-mail",
	"e-mail address",
	"userid",
	"user id",
	"customer id",
	"login id",
	"login",
}

// TotpFieldNames identify one-time-code inputs. Deliberately broad ("code"
// is in here); the locators only consult it once a password anchor exists or
// every stricter tier came up empty.
var TotpFieldNames = []string{
	"totp",
	"2fa",
	"mfa",
	"totpcode",
	"2facode",
	"approvals_code",
	"code",
	"mfacode",
	"otc",
	"otc-code",
	"otp-code",
	"otpcode",
	"onetimecode",
	"otp",
	"second-factor-code",
}

// AutoCompleteOneTimeCode is the autocomplete token browsers standardized
// for OTP inputs; it qualifies a field regardless of its name.
const AutoCompleteOneTimeCode = "one-time-code"

// AutoCompleteNewPassword marks password-creation fields, skipped unless the
// caller explicitly fills new passwords.
const AutoCompleteNewPassword = "new-password"

// PasswordFieldIgnoreList blocks text fields whose name merely mentions
// passwords ("forgot password", password hints, captchas).
var PasswordFieldIgnoreList = []string{
	"onetimepassword",
	"captcha",
	"findanything",
	"forgot",
}

// ExcludedFieldTypes never receive autofill regardless of how well their
// names match.
var ExcludedFieldTypes = []string{
	"radio",
	"checkbox",
	"hidden",
	"file",
	"button",
	"image",
	"reset",
	"search",
	"submit",
}

// UsernameFieldTypes and TotpFieldTypes are the input types a username or
// OTP candidate may carry.
var (
	UsernameFieldTypes = []string{"text", "email", "tel"}
	TotpFieldTypes     = []string{"text", "number"}
)

// IsExcludedFieldType reports whether the given input type is on the
// never-fill list.
func IsExcludedFieldType(fieldType string) bool {
	return containsString(ExcludedFieldTypes, fieldType)
}

// IsUsernameFieldType reports whether the input type can hold a username.
func IsUsernameFieldType(fieldType string) bool {
	return containsString(UsernameFieldTypes, fieldType)
}

// IsTotpFieldType reports whether the input type can hold a one-time code.
func IsTotpFieldType(fieldType string) bool {
	return containsString(TotpFieldTypes, fieldType)
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
