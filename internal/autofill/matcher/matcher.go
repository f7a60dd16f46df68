// internal/autofill/matcher/matcher.go

// Package matcher holds the string-normalization and pattern-matching
// primitives every field locator and script builder sits on. All helpers are
// pure free functions over a field snapshot; the only side effect anywhere is
// a warning log for a malformed regex directive.
package matcher

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/xkilldash9x/vaultfill-cli/api/schemas"
)

// fieldProperty pairs a readable field attribute with the logical group name
// a prefix directive addresses ("id", "name", "label", "placeholder").
type fieldProperty struct {
	group string
	get   func(*schemas.FieldDescriptor) string
}

// directiveProperties is the fixed, ordered property table a directive is
// evaluated against. Order matters: the first property satisfying the
// directive wins. label-top is deliberately absent here (it participates in
// fuzzy matching only).
var directiveProperties = []fieldProperty{
	{"id", func(f *schemas.FieldDescriptor) string { return f.HTMLID }},
	{"name", func(f *schemas.FieldDescriptor) string { return f.HTMLName }},
	{"label", func(f *schemas.FieldDescriptor) string { return f.LabelLeft }},
	{"label", func(f *schemas.FieldDescriptor) string { return f.LabelRight }},
	{"label", func(f *schemas.FieldDescriptor) string { return f.LabelTag }},
	{"label", func(f *schemas.FieldDescriptor) string { return f.LabelAria }},
	{"placeholder", func(f *schemas.FieldDescriptor) string { return f.Placeholder }},
}

// fuzzyAttributes are the textual attributes a fuzzy match inspects.
var fuzzyAttributes = []func(*schemas.FieldDescriptor) string{
	func(f *schemas.FieldDescriptor) string { return f.HTMLID },
	func(f *schemas.FieldDescriptor) string { return f.HTMLName },
	func(f *schemas.FieldDescriptor) string { return f.LabelTag },
	func(f *schemas.FieldDescriptor) string { return f.Placeholder },
	func(f *schemas.FieldDescriptor) string { return f.LabelLeft },
	func(f *schemas.FieldDescriptor) string { return f.LabelTop },
	func(f *schemas.FieldDescriptor) string { return f.LabelAria },
}

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)
	newlines        = strings.NewReplacer("\r\n", "", "\r", "", "\n", "")
)

// NormalizeValue strips everything that is not a letter or digit and
// lowercases the rest. "Card Number*" and "card_number" normalize equal.
func NormalizeValue(value string) string {
	return strings.ToLower(nonAlphanumeric.ReplaceAllString(value, ""))
}

// cleanse trims a raw attribute value and removes embedded newlines, the way
// scraped label text tends to carry them.
func cleanse(value string) string {
	return newlines.Replace(strings.TrimSpace(value))
}

// IsFieldMatch reports whether a normalized attribute value matches one of
// the candidate names. Candidates are tried in order (the list is a priority
// order) and compared with hyphens stripped and lowercased. Equality always
// matches; substring containment only counts when the candidate appears in
// containsNames, or when containsNames is nil (no allow-list given).
func IsFieldMatch(value string, names []string, containsNames []string) bool {
	cleaned := NormalizeValue(value)
	if cleaned == "" {
		return false
	}
	for _, name := range names {
		candidate := strings.ToLower(strings.ReplaceAll(name, "-", ""))
		if cleaned == candidate {
			return true
		}
		if containsAllowed(name, containsNames) && strings.Contains(cleaned, candidate) {
			return true
		}
	}
	return false
}

func containsAllowed(name string, containsNames []string) bool {
	if containsNames == nil {
		return true
	}
	for _, c := range containsNames {
		if c == name {
			return true
		}
	}
	return false
}

// FieldPropertyIsMatch evaluates one directive against one raw attribute
// value. Supported directive forms:
//
//	regex=<pattern>  case-insensitive regex over the cleansed value
//	csv=<a,b,c>      equality against any listed token, case-insensitive
//	<literal>        case-insensitive equality
//
// A malformed regex is logged and evaluates to no match.
func FieldPropertyIsMatch(value, name string) bool {
	value = cleanse(value)
	if value == "" {
		return false
	}
	if rest, ok := strings.CutPrefix(name, "regex="); ok {
		re, err := regexp.Compile("(?i)" + rest)
		if err != nil {
			zap.L().Named("matcher").Warn("Invalid regex directive, skipping",
				zap.String("directive", name), zap.Error(err))
			return false
		}
		return re.MatchString(value)
	}
	if rest, ok := strings.CutPrefix(name, "csv="); ok {
		lowered := strings.ToLower(value)
		for _, token := range strings.Split(rest, ",") {
			if strings.ToLower(strings.TrimSpace(token)) == lowered {
				return true
			}
		}
		return false
	}
	return strings.EqualFold(value, name)
}

// FieldPropertyIsPrefixMatch handles a property-scoped directive of the form
// <prefix>=<rest> (e.g. "label=regex=^pin"). The declared prefix must equal
// the logical group of the property under evaluation; only then is the
// remainder evaluated as a plain directive.
func FieldPropertyIsPrefixMatch(value, name, prefix string) bool {
	rest, ok := strings.CutPrefix(name, prefix+"=")
	if !ok {
		return false
	}
	return FieldPropertyIsMatch(value, rest)
}

// FindMatchingFieldIndex walks a priority-ordered candidate list and returns
// the index of the first candidate that matches any property of the field,
// either via its property-scoped form or as a plain directive. Returns -1
// when nothing matches.
func FindMatchingFieldIndex(field *schemas.FieldDescriptor, names []string) int {
	for i, name := range names {
		scoped := strings.Contains(name, "=")
		for _, prop := range directiveProperties {
			value := prop.get(field)
			if value == "" {
				continue
			}
			if scoped && FieldPropertyIsPrefixMatch(value, name, prop.group) {
				return i
			}
			if FieldPropertyIsMatch(value, name) {
				return i
			}
		}
	}
	return -1
}

// FieldIsFuzzyMatch reports whether any of the field's textual attributes
// fuzzy-matches one of the candidate substrings.
func FieldIsFuzzyMatch(field *schemas.FieldDescriptor, names []string) bool {
	for _, get := range fuzzyAttributes {
		if value := get(field); value != "" && FuzzyMatch(names, value) {
			return true
		}
	}
	return false
}

// FuzzyMatch is the containment test behind FieldIsFuzzyMatch: true when the
// cleansed, lowercased value contains any candidate as a substring.
func FuzzyMatch(names []string, value string) bool {
	value = strings.ToLower(cleanse(value))
	if value == "" {
		return false
	}
	for _, name := range names {
		if strings.Contains(value, name) {
			return true
		}
	}
	return false
}

// ValueIsLikePassword guards the "type=text but really a password" case: the
// id/name/placeholder reading, with whitespace, underscores and hyphens
// removed and lowercased, must contain "password" while containing none of
// the ignore-list entries (think "forgot password" links).
func ValueIsLikePassword(value string) bool {
	if value == "" {
		return false
	}
	cleaned := strings.ToLower(strings.NewReplacer(" ", "", "_", "", "-", "").Replace(value))
	if !strings.Contains(cleaned, "password") {
		return false
	}
	for _, ignore := range PasswordFieldIgnoreList {
		if strings.Contains(cleaned, ignore) {
			return false
		}
	}
	return true
}
