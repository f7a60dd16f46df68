// internal/autofill/builder/state_test.go
package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/vaultfill-cli/api/schemas"
)

func emptyScript() *schemas.FillScript {
	return &schemas.FillScript{SavedURLs: []string{}}
}

func TestFillEmitsTriplet(t *testing.T) {
	s := newFillState(emptyScript())
	s.fill(&schemas.FieldDescriptor{OpID: "__0", TagName: "input", Type: "text", Viewable: true}, "v")

	require.Len(t, s.script.Script, 3)
	assert.Equal(t, schemas.ActionClick, s.script.Script[0].Kind)
	assert.Equal(t, schemas.ActionFocus, s.script.Script[1].Kind)
	assert.Equal(t, schemas.ActionFill, s.script.Script[2].Kind)
	assert.Equal(t, "v", s.script.Script[2].Value)
}

func TestFillSkipsClickFocusForSpans(t *testing.T) {
	s := newFillState(emptyScript())
	s.fill(&schemas.FieldDescriptor{OpID: "__0", TagName: "span"}, "v")

	require.Len(t, s.script.Script, 1)
	assert.Equal(t, schemas.ActionFill, s.script.Script[0].Kind)
}

func TestFillDedupesByOpid(t *testing.T) {
	s := newFillState(emptyScript())
	f := &schemas.FieldDescriptor{OpID: "__0", TagName: "input", Type: "text", Viewable: true}
	s.fill(f, "first")
	s.fill(f, "second")

	fills := 0
	for _, a := range s.script.Script {
		if a.Kind == schemas.ActionFill {
			fills++
			assert.Equal(t, "first", a.Value, "first assignment must win")
		}
	}
	assert.Equal(t, 1, fills)
}

func TestFillTruncatesToMaxLength(t *testing.T) {
	s := newFillState(emptyScript())
	s.fill(&schemas.FieldDescriptor{OpID: "__0", TagName: "input", Type: "text", MaxLength: 5}, "123456789")
	require.Len(t, s.script.Script, 3)
	assert.Equal(t, "12345", s.script.Script[2].Value)

	// Zero max length means unconstrained.
	s.fill(&schemas.FieldDescriptor{OpID: "__1", TagName: "input", Type: "text"}, "123456789")
	assert.Equal(t, "123456789", s.script.Script[5].Value)
}

func TestSetFieldValueDropdowns(t *testing.T) {
	dropdown := func(opts ...schemas.SelectOption) *schemas.FieldDescriptor {
		return &schemas.FieldDescriptor{
			OpID: "__dd", TagName: "select", Viewable: true,
			SelectInfo: &schemas.SelectInfo{Options: opts},
		}
	}

	t.Run("option value match substitutes display text", func(t *testing.T) {
		s := newFillState(emptyScript())
		s.setFieldValue(dropdown(
			schemas.SelectOption{Value: "visa", Text: "Visa"},
			schemas.SelectOption{Value: "mc", Text: "Mastercard"},
		), "VISA")
		require.Len(t, s.script.Script, 3)
		assert.Equal(t, "Visa", s.script.Script[2].Value)
	})

	t.Run("no matching option means no actions", func(t *testing.T) {
		s := newFillState(emptyScript())
		s.setFieldValue(dropdown(schemas.SelectOption{Value: "visa", Text: "Visa"}), "amex")
		assert.Empty(t, s.script.Script)
	})

	t.Run("empty value and nil field are no-ops", func(t *testing.T) {
		s := newFillState(emptyScript())
		s.setFieldValue(nil, "v")
		s.setFieldValue(dropdown(), "")
		assert.Empty(t, s.script.Script)
	})
}

func TestAppendTrailingFocus(t *testing.T) {
	t.Run("prefers the last viewable password field", func(t *testing.T) {
		s := newFillState(emptyScript())
		s.fill(&schemas.FieldDescriptor{OpID: "__u", TagName: "input", Type: "text", Viewable: true}, "user")
		s.fill(&schemas.FieldDescriptor{OpID: "__p", TagName: "input", Type: "password", Viewable: true}, "pw")
		s.fill(&schemas.FieldDescriptor{OpID: "__t", TagName: "input", Type: "text", Viewable: true}, "otp")
		s.appendTrailingFocus()

		last := s.script.Script[len(s.script.Script)-1]
		assert.Equal(t, schemas.ActionFocus, last.Kind)
		assert.Equal(t, "__p", last.OpID)
	})

	t.Run("falls back to the last viewable filled field", func(t *testing.T) {
		s := newFillState(emptyScript())
		s.fill(&schemas.FieldDescriptor{OpID: "__a", TagName: "input", Type: "text", Viewable: true}, "x")
		s.fill(&schemas.FieldDescriptor{OpID: "__b", TagName: "input", Type: "text", Viewable: true}, "y")
		s.appendTrailingFocus()

		last := s.script.Script[len(s.script.Script)-1]
		assert.Equal(t, schemas.ActionFocus, last.Kind)
		assert.Equal(t, "__b", last.OpID)
	})

	t.Run("hidden password fields are never focus targets", func(t *testing.T) {
		s := newFillState(emptyScript())
		s.fill(&schemas.FieldDescriptor{OpID: "__v", TagName: "input", Type: "text", Viewable: true}, "x")
		s.fill(&schemas.FieldDescriptor{OpID: "__h", TagName: "input", Type: "password"}, "pw")
		s.appendTrailingFocus()

		last := s.script.Script[len(s.script.Script)-1]
		assert.Equal(t, "__v", last.OpID)
	})

	t.Run("nothing filled, nothing focused", func(t *testing.T) {
		s := newFillState(emptyScript())
		s.appendTrailingFocus()
		assert.Empty(t, s.script.Script)
	})
}
