// api/schemas/script.go
package schemas

import (
	"encoding/json"
	"fmt"
)

// -- Fill Script Schemas --

// ActionKind is the discriminator of a FillAction.
type ActionKind string

const (
	ActionClick ActionKind = "click_on_opid"
	ActionFocus ActionKind = "focus_by_opid"
	ActionFill  ActionKind = "fill_by_opid"
)

// FillAction is one low-level UI step of a fill script. Internally it is a
// tagged struct; on the wire it is the positional tuple the page script
// expects: ["click_on_opid","__0"] or ["fill_by_opid","__1","hunter2"].
type FillAction struct {
	Kind  ActionKind
	OpID  string
	Value string
}

// MarshalJSON encodes the action as its positional wire tuple. Fill carries
// three elements, click and focus two.
func (a FillAction) MarshalJSON() ([]byte, error) {
	if a.Kind == ActionFill {
		return json.Marshal([3]string{string(a.Kind), a.OpID, a.Value})
	}
	return json.Marshal([2]string{string(a.Kind), a.OpID})
}

// UnmarshalJSON decodes the positional wire tuple back into a tagged action.
func (a *FillAction) UnmarshalJSON(data []byte) error {
	var parts []string
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) < 2 {
		return fmt.Errorf("fill action tuple needs at least 2 elements, got %d", len(parts))
	}
	a.Kind = ActionKind(parts[0])
	a.OpID = parts[1]
	a.Value = ""
	if len(parts) > 2 {
		a.Value = parts[2]
	}
	return nil
}

// FillScript is the ordered, replayable action sequence produced for one fill
// request, plus the metadata the caller needs to gate or pace the replay.
type FillScript struct {
	Script          []FillAction `json:"script"`
	UntrustedIframe bool         `json:"untrustedIframe"`
	SavedURLs       []string     `json:"savedUrls"`
	AutoSubmit      bool         `json:"autosubmit"`
	Properties      Properties   `json:"properties"`
	ItemKind        ItemKind     `json:"itemType,omitempty"`
}

// Properties carries replay tuning, currently just inter-action pacing.
type Properties struct {
	DelayMs int `json:"delay_between_operations,omitempty"`
}
