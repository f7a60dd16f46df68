// internal/autofill/matcher/matcher_fuzz_test.go
package matcher

import (
	"testing"

	fuzz "github.com/AdaLogics/go-fuzz-headers"

	"github.com/xkilldash9x/vaultfill-cli/api/schemas"
)

// FuzzMatcherPrimitives hammers the matching primitives with arbitrary field
// snapshots and directive strings. The invariant under test is simply that
// classification never panics and that a directive match implies a non-empty
// property somewhere on the field: untrusted page markup feeds these
// functions directly.
func FuzzMatcherPrimitives(f *testing.F) {
	f.Add([]byte("seed"), "username", "label=regex=user")
	f.Add([]byte{0xff, 0x00, 0x41}, "csv=code,2fa,mfa", "regex=([")
	f.Add([]byte("names"), "id=card-number", "placeholder=csv=mm,yy")

	f.Fuzz(func(t *testing.T, raw []byte, nameA, nameB string) {
		fc := fuzz.NewConsumer(raw)
		field := &schemas.FieldDescriptor{}
		if err := fc.GenerateStruct(field); err != nil {
			return
		}

		names := []string{nameA, nameB}
		idx := FindMatchingFieldIndex(field, names)
		if idx < -1 || idx >= len(names) {
			t.Fatalf("index out of range: %d", idx)
		}
		if idx != -1 && field.HTMLID == "" && field.HTMLName == "" &&
			field.LabelLeft == "" && field.LabelRight == "" &&
			field.LabelTag == "" && field.LabelAria == "" && field.Placeholder == "" {
			t.Fatalf("match %d on a field with no directive-visible properties", idx)
		}

		// These must tolerate anything without panicking.
		FieldIsFuzzyMatch(field, names)
		IsFieldMatch(nameA, names, nil)
		ValueIsLikePassword(nameB)
	})
}
