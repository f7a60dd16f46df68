// internal/autofill/builder/state.go
package builder

import (
	"strings"

	"github.com/xkilldash9x/vaultfill-cli/api/schemas"
)

// fillState accumulates the action sequence for one fill request. It owns
// the filled-by-opid ledger, so no builder stage can emit two Fill actions
// for the same field. One state per request; never shared.
type fillState struct {
	script *schemas.FillScript

	filled map[string]*schemas.FieldDescriptor
	// order remembers fill order for the trailing-focus scan; map iteration
	// would not.
	order []*schemas.FieldDescriptor
}

func newFillState(script *schemas.FillScript) *fillState {
	return &fillState{
		script: script,
		filled: make(map[string]*schemas.FieldDescriptor),
	}
}

// alreadyFilled reports whether a field was claimed by an earlier stage.
// First assignment wins across every builder tier.
func (s *fillState) alreadyFilled(opid string) bool {
	_, ok := s.filled[opid]
	return ok
}

// fill claims the field and emits its action triplet: Click and Focus on the
// opid (skipped for label-only span entries), then the Fill carrying the
// value. Values longer than a declared positive max length are truncated to
// fit; the page would discard the overflow anyway and a truncated secret in
// the right field beats a rejected one.
func (s *fillState) fill(field *schemas.FieldDescriptor, value string) {
	if s.alreadyFilled(field.OpID) {
		return
	}
	s.filled[field.OpID] = field
	s.order = append(s.order, field)

	if field.MaxLength > 0 {
		if runes := []rune(value); len(runes) > field.MaxLength {
			value = string(runes[:field.MaxLength])
		}
	}
	if !field.IsSpan() {
		s.script.Script = append(s.script.Script,
			schemas.FillAction{Kind: schemas.ActionClick, OpID: field.OpID},
			schemas.FillAction{Kind: schemas.ActionFocus, OpID: field.OpID},
		)
	}
	s.script.Script = append(s.script.Script,
		schemas.FillAction{Kind: schemas.ActionFill, OpID: field.OpID, Value: value})
}

// setFieldValue is the dropdown-aware fill used by the card and identity
// builders. Empty values and absent fields are no-ops. For a dropdown the
// value must correspond to an option (by value or display text,
// case-insensitively) and the option's display text is what gets filled;
// anything else proceeds unconditionally.
func (s *fillState) setFieldValue(field *schemas.FieldDescriptor, value string) {
	if field == nil || value == "" {
		return
	}
	if field.IsSelect() {
		matched := false
		for _, opt := range field.SelectInfo.Options {
			if strings.EqualFold(opt.Value, value) || strings.EqualFold(opt.Text, value) {
				if opt.Text != "" {
					value = opt.Text
				}
				matched = true
				break
			}
		}
		if !matched {
			return
		}
	}
	s.fill(field, value)
}

// appendTrailingFocus emits the single closing Focus action: the last filled
// viewable password field if any, else the last filled viewable field. A
// script that filled nothing viewable gets no trailing focus.
func (s *fillState) appendTrailingFocus() {
	var lastField, lastPassword *schemas.FieldDescriptor
	for _, f := range s.order {
		if !f.Viewable {
			continue
		}
		lastField = f
		if f.Type == "password" {
			lastPassword = f
		}
	}
	target := lastPassword
	if target == nil {
		target = lastField
	}
	if target != nil {
		s.script.Script = append(s.script.Script,
			schemas.FillAction{Kind: schemas.ActionFocus, OpID: target.OpID})
	}
}
