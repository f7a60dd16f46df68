// api/schemas/page.go
package schemas

import (
	"fmt"

	"github.com/google/uuid"
)

// -- Page Scrape Schemas --

// SelectOption is a single entry of a dropdown field: the submitted value and
// the text shown to the user.
type SelectOption struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

// SelectInfo carries the option list of a <select> element, in DOM order.
type SelectInfo struct {
	Options []SelectOption `json:"options"`
}

// FieldDescriptor is an immutable snapshot of one form field as scraped from
// the page. The engine never mutates a descriptor; repairs (like form
// reassignment) happen on copies held by the catalog.
type FieldDescriptor struct {
	OpID          string `json:"opid"`
	ElementNumber int    `json:"elementNumber"`
	TagName       string `json:"tagName"`
	Type          string `json:"type"`
	HTMLID        string `json:"htmlID"`
	HTMLName      string `json:"htmlName"`

	// The scraper reports up to five label readings per field, depending on
	// where the label text was found relative to the input.
	LabelLeft  string `json:"label-left"`
	LabelRight string `json:"label-right"`
	LabelTop   string `json:"label-top"`
	LabelTag   string `json:"label-tag"`
	LabelAria  string `json:"label-aria"`

	Placeholder      string      `json:"placeholder"`
	AutoCompleteType string      `json:"autoCompleteType"`
	Value            string      `json:"value"`
	MaxLength        int         `json:"maxLength"`
	Viewable         bool        `json:"viewable"`
	Disabled         bool        `json:"disabled"`
	ReadOnly         bool        `json:"readonly"`
	SelectInfo       *SelectInfo `json:"selectInfo,omitempty"`

	// Form is the key of the owning form in PageFieldCatalog.Forms, or empty
	// when the field sits outside any form.
	Form string `json:"form,omitempty"`
}

// IsSpan reports whether the descriptor is a synthetic label-only entry the
// scraper emits for bare text nodes. Those never receive click/focus actions.
func (f *FieldDescriptor) IsSpan() bool {
	return f.TagName == "span"
}

// IsSelect reports whether the field carries dropdown option metadata.
func (f *FieldDescriptor) IsSelect() bool {
	return f.SelectInfo != nil && len(f.SelectInfo.Options) > 0
}

// FormDescriptor is opaque form metadata keyed by a form identifier unique
// within one page scrape.
type FormDescriptor struct {
	OpID       string `json:"opid"`
	HTMLID     string `json:"htmlID"`
	HTMLName   string `json:"htmlName"`
	HTMLAction string `json:"htmlAction"`
	HTMLMethod string `json:"htmlMethod"`
}

// PageFieldCatalog is one full scrape of a page: its URL, the forms found on
// it, and every candidate field in DOM order.
type PageFieldCatalog struct {
	DocumentURL string                    `json:"documentUrl"`
	Forms       map[string]FormDescriptor `json:"forms"`
	Fields      []*FieldDescriptor        `json:"fields"`
}

// Normalize repairs a catalog after decode so the engine's invariants hold:
// every field has a unique opid and ElementNumber is a strictly increasing
// DOM-order index. Scrapers occasionally omit both for fields added by
// late-running scripts.
func (c *PageFieldCatalog) Normalize() {
	seen := make(map[string]bool, len(c.Fields))
	renumber := false
	for i, f := range c.Fields {
		if f.OpID == "" || seen[f.OpID] {
			f.OpID = "__gen-" + uuid.NewString()
		}
		seen[f.OpID] = true
		if i > 0 && f.ElementNumber <= c.Fields[i-1].ElementNumber {
			renumber = true
		}
	}
	if renumber {
		for i, f := range c.Fields {
			f.ElementNumber = i
		}
	}
}

// Validate rejects catalogs that violate the input contract outright.
// Per-field oddities are tolerated (a missing attribute just never matches);
// only a structurally unusable catalog is an error.
func (c *PageFieldCatalog) Validate() error {
	if c == nil {
		return fmt.Errorf("page field catalog is nil")
	}
	if c.DocumentURL == "" {
		return fmt.Errorf("page field catalog has no document URL")
	}
	return nil
}

// FieldsInForm returns the catalog fields associated with the given form key,
// preserving DOM order.
func (c *PageFieldCatalog) FieldsInForm(formKey string) []*FieldDescriptor {
	var out []*FieldDescriptor
	for _, f := range c.Fields {
		if f.Form != "" && f.Form == formKey {
			out = append(out, f)
		}
	}
	return out
}
