// internal/autofill/builder/card_test.go
package builder

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/vaultfill-cli/api/schemas"
)

func cardItem() *schemas.Item {
	return &schemas.Item{
		ID:   "card-1",
		Kind: schemas.ItemKindCard,
		Card: &schemas.CardData{
			CardholderName: "Alice Example",
			Number:         "4111111111111111",
			ExpMonth:       "3",
			ExpYear:        "2027",
			Code:           "123",
			Brand:          "Visa",
		},
	}
}

func buildCard(t *testing.T, fields ...*schemas.FieldDescriptor) *schemas.FillScript {
	t.Helper()
	g := testGenerator(nil)
	cat := testCatalog(fields...)
	cat.DocumentURL = "https://checkout.example.com/pay"
	script, err := g.FillScript(context.Background(), cat, cardItem(), Options{TabURL: cat.DocumentURL})
	require.NoError(t, err)
	require.NotNil(t, script)
	return script
}

func TestCardClassification(t *testing.T) {
	name := input("__name", 0, func(f *schemas.FieldDescriptor) { f.HTMLID = "cc-name" })
	number := input("__number", 1, func(f *schemas.FieldDescriptor) { f.HTMLName = "card-number" })
	cvv := input("__cvv", 2, func(f *schemas.FieldDescriptor) { f.Placeholder = "CVC" })
	script := buildCard(t, name, number, cvv)

	fills := fillsOf(script)
	assert.Equal(t, "Alice Example", fills["__name"])
	assert.Equal(t, "4111111111111111", fills["__number"])
	assert.Equal(t, "123", fills["__cvv"])
}

func TestCardClassificationGates(t *testing.T) {
	t.Run("hidden fields are never card targets", func(t *testing.T) {
		hidden := input("__n", 0, func(f *schemas.FieldDescriptor) {
			f.HTMLName = "card-number"
			f.Viewable = false
		})
		assert.Empty(t, fillsOf(buildCard(t, hidden)))
	})

	t.Run("excluded input types are skipped", func(t *testing.T) {
		check := input("__n", 0, func(f *schemas.FieldDescriptor) {
			f.HTMLName = "card-number"
			f.Type = "checkbox"
		})
		assert.Empty(t, fillsOf(buildCard(t, check)))
	})

	t.Run("first field claiming a category keeps it", func(t *testing.T) {
		first := input("__first", 0, func(f *schemas.FieldDescriptor) { f.HTMLName = "card-number" })
		second := input("__second", 1, func(f *schemas.FieldDescriptor) { f.HTMLName = "cc-number" })
		fills := fillsOf(buildCard(t, first, second))
		assert.Contains(t, fills, "__first")
		assert.NotContains(t, fills, "__second")
	})
}

func monthOptions(n int, blankFirst bool) []schemas.SelectOption {
	var opts []schemas.SelectOption
	if n == 13 && blankFirst {
		opts = append(opts, schemas.SelectOption{})
	}
	names := []string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}
	for i, m := range names {
		opts = append(opts, schemas.SelectOption{Value: fmt.Sprintf("%d", i+1), Text: m})
	}
	if n == 13 && !blankFirst {
		opts = append(opts, schemas.SelectOption{})
	}
	return opts
}

func TestCardExpMonth(t *testing.T) {
	t.Run("12-option dropdown uses 1-based month as index", func(t *testing.T) {
		month := input("__month", 0, func(f *schemas.FieldDescriptor) {
			f.TagName = "select"
			f.HTMLName = "exp-month"
			f.SelectInfo = &schemas.SelectInfo{Options: monthOptions(12, false)}
		})
		assert.Equal(t, "March", fillsOf(buildCard(t, month))["__month"])
	})

	t.Run("13-option dropdown with leading blank shifts by one", func(t *testing.T) {
		month := input("__month", 0, func(f *schemas.FieldDescriptor) {
			f.TagName = "select"
			f.HTMLName = "exp-month"
			f.SelectInfo = &schemas.SelectInfo{Options: monthOptions(13, true)}
		})
		assert.Equal(t, "March", fillsOf(buildCard(t, month))["__month"])
	})

	t.Run("13-option dropdown with trailing blank stays 0-based", func(t *testing.T) {
		month := input("__month", 0, func(f *schemas.FieldDescriptor) {
			f.TagName = "select"
			f.HTMLName = "exp-month"
			f.SelectInfo = &schemas.SelectInfo{Options: monthOptions(13, false)}
		})
		assert.Equal(t, "March", fillsOf(buildCard(t, month))["__month"])
	})

	t.Run("two-digit hint zero-pads single-digit months", func(t *testing.T) {
		month := input("__month", 0, func(f *schemas.FieldDescriptor) {
			f.HTMLName = "exp-month"
			f.Placeholder = "MM"
		})
		assert.Equal(t, "03", fillsOf(buildCard(t, month))["__month"])

		byLen := input("__month", 0, func(f *schemas.FieldDescriptor) {
			f.HTMLName = "exp-month"
			f.MaxLength = 2
		})
		assert.Equal(t, "03", fillsOf(buildCard(t, byLen))["__month"])
	})

	t.Run("no hint leaves the raw month", func(t *testing.T) {
		month := input("__month", 0, func(f *schemas.FieldDescriptor) { f.HTMLName = "mes" })
		assert.Equal(t, "3", fillsOf(buildCard(t, month))["__month"])
	})
}

func TestCardExpYear(t *testing.T) {
	yearSelect := func(opts ...schemas.SelectOption) *schemas.FieldDescriptor {
		return input("__year", 0, func(f *schemas.FieldDescriptor) {
			f.TagName = "select"
			f.HTMLName = "exp-year"
			f.SelectInfo = &schemas.SelectInfo{Options: opts}
		})
	}

	t.Run("dropdown matches raw year", func(t *testing.T) {
		f := yearSelect(schemas.SelectOption{Value: "2026"}, schemas.SelectOption{Value: "2027"})
		assert.Equal(t, "2027", fillsOf(buildCard(t, f))["__year"])
	})

	t.Run("dropdown matches two-digit suffix", func(t *testing.T) {
		f := yearSelect(schemas.SelectOption{Value: "26"}, schemas.SelectOption{Value: "27"})
		assert.Equal(t, "27", fillsOf(buildCard(t, f))["__year"])
	})

	t.Run("dropdown matches colon-delimited label suffix", func(t *testing.T) {
		f := yearSelect(schemas.SelectOption{Value: "y27", Text: "Year: 2027"})
		assert.Equal(t, "Year: 2027", fillsOf(buildCard(t, f))["__year"])
	})

	t.Run("dropdown without a match fills nothing", func(t *testing.T) {
		f := yearSelect(schemas.SelectOption{Value: "2031"})
		assert.Empty(t, fillsOf(buildCard(t, f)))
	})

	t.Run("text input shortens on yy hint", func(t *testing.T) {
		f := input("__year", 0, func(f *schemas.FieldDescriptor) {
			f.HTMLName = "exp-year"
			f.MaxLength = 2
		})
		assert.Equal(t, "27", fillsOf(buildCard(t, f))["__year"])
	})
}

func TestCardCombinedExpiry(t *testing.T) {
	expField := func(placeholder string) *schemas.FieldDescriptor {
		return input("__exp", 0, func(f *schemas.FieldDescriptor) {
			f.HTMLName = "cc-exp"
			f.Placeholder = placeholder
		})
	}

	cases := []struct {
		hint string
		want string
	}{
		{"MM/YYYY", "03/2027"},
		{"MM/YY", "03/27"},
		{"YYYY/MM", "2027/03"},
		{"YY-MM", "27-03"},
		{"MM-YYYY", "03-2027"},
		{"MMYY", "0327"},
		{"", "2027-03"},
		{"expiry date", "2027-03"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("hint %q", tc.hint), func(t *testing.T) {
			assert.Equal(t, tc.want, fillsOf(buildCard(t, expField(tc.hint)))["__exp"])
		})
	}
}

func TestCardBrandDropdown(t *testing.T) {
	brand := input("__brand", 0, func(f *schemas.FieldDescriptor) {
		f.TagName = "select"
		f.HTMLName = "cc-type"
		f.SelectInfo = &schemas.SelectInfo{Options: []schemas.SelectOption{
			{Value: "001", Text: "Visa"},
			{Value: "002", Text: "Mastercard"},
		}}
	})
	assert.Equal(t, "Visa", fillsOf(buildCard(t, brand))["__brand"])
}
