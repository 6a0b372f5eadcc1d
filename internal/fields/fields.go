// Package fields models the custom inputs of a registration form: how an
// admin-entered label becomes a stable machine identifier, how a field list is
// ordered and re-ordered, and how each field renders and validates.
package fields

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Type is the closed set of supported field types. Adding a type means
// extending every switch below, which the compiler and tests enforce.
type Type int

const (
	TypeText Type = iota
	TypeEmail
	TypeTel
	TypeTextarea
	TypeSelect
	TypeCheckbox
	TypeRadio
)

var typeNames = map[Type]string{
	TypeText:     "text",
	TypeEmail:    "email",
	TypeTel:      "tel",
	TypeTextarea: "textarea",
	TypeSelect:   "select",
	TypeCheckbox: "checkbox",
	TypeRadio:    "radio",
}

func ParseType(s string) (Type, error) {
	for t, name := range typeNames {
		if name == s {
			return t, nil
		}
	}
	return TypeText, fmt.Errorf("unknown field type %q", s)
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "text"
}

// HasOptions reports whether the type carries a choice list.
func (t Type) HasOptions() bool {
	switch t {
	case TypeSelect, TypeRadio:
		return true
	case TypeText, TypeEmail, TypeTel, TypeTextarea, TypeCheckbox:
		return false
	}
	return false
}

func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Type) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Field describes one custom registration input. Name is always derived from
// Label (never user-edited) and Order always matches the field's position in
// the owning event's list at save time; Normalize enforces both. Options is
// the serialized JSON array form used in transit, meaningful only for
// select/radio.
type Field struct {
	Name     string `json:"field_name"`
	Label    string `json:"field_label"`
	Type     Type   `json:"field_type"`
	Required bool   `json:"is_required"`
	Options  string `json:"field_options,omitempty"`
	Order    int    `json:"field_order"`
}

var (
	nameStrip = regexp.MustCompile(`[^a-z0-9\s]`)
	spaceRun  = regexp.MustCompile(`\s+`)
)

// DeriveName turns a display label into the machine identifier: lowercase,
// strip everything outside [a-z0-9\s], collapse whitespace runs to single
// underscores, truncate to 10 characters. An empty label yields "" and the
// caller must treat the field as unsaveable.
func DeriveName(label string) string {
	if label == "" {
		return ""
	}
	name := strings.ToLower(label)
	name = nameStrip.ReplaceAllString(name, "")
	name = spaceRun.ReplaceAllString(name, "_")
	if len(name) > 10 {
		name = name[:10]
	}
	return name
}

// ParseOptions decodes the serialized choice list. Unparseable or absent
// input yields an empty set rather than an error: a broken option list
// renders as no choices.
func ParseOptions(serialized string) []string {
	if serialized == "" {
		return []string{}
	}
	var opts []string
	if err := json.Unmarshal([]byte(serialized), &opts); err != nil {
		return []string{}
	}
	if opts == nil {
		return []string{}
	}
	return opts
}

// EncodeOptions serializes a choice list for transit. Blank entries are
// dropped and surrounding whitespace trimmed, matching what the admin form
// produces from comma-separated input.
func EncodeOptions(opts []string) string {
	clean := make([]string, 0, len(opts))
	for _, o := range opts {
		o = strings.TrimSpace(o)
		if o != "" {
			clean = append(clean, o)
		}
	}
	data, _ := json.Marshal(clean)
	return string(data)
}

// Normalize prepares a field list for saving: every Name is regenerated from
// its Label, Order is renumbered 0..N-1 by position, and option lists are
// cleared on types that do not carry them. Saves always replace the whole
// list, so Normalize runs on the complete list every time.
func Normalize(fs []Field) {
	for i := range fs {
		fs[i].Name = DeriveName(fs[i].Label)
		fs[i].Order = i
		if !fs[i].Type.HasOptions() {
			fs[i].Options = ""
		}
	}
}

// Renumber makes Order match slice position for the whole list.
func Renumber(fs []Field) {
	for i := range fs {
		fs[i].Order = i
	}
}

// MoveUp swaps the field at i with its previous neighbor and renumbers the
// entire list. Out-of-range indexes and the first element are no-ops.
func MoveUp(fs []Field, i int) {
	if i <= 0 || i >= len(fs) {
		return
	}
	fs[i-1], fs[i] = fs[i], fs[i-1]
	Renumber(fs)
}

// MoveDown swaps the field at i with its next neighbor and renumbers the
// entire list. Out-of-range indexes and the last element are no-ops.
func MoveDown(fs []Field, i int) {
	if i < 0 || i >= len(fs)-1 {
		return
	}
	fs[i], fs[i+1] = fs[i+1], fs[i]
	Renumber(fs)
}

// ControlKind is the closed set of rendered control shapes.
type ControlKind int

const (
	ControlInput ControlKind = iota
	ControlTextarea
	ControlSelect
	ControlCheckbox
	ControlRadio
)

var controlNames = map[ControlKind]string{
	ControlInput:    "input",
	ControlTextarea: "textarea",
	ControlSelect:   "select",
	ControlCheckbox: "checkbox",
	ControlRadio:    "radio",
}

func (k ControlKind) String() string {
	if name, ok := controlNames[k]; ok {
		return name
	}
	return "input"
}

func (k ControlKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Control is the render plan for one field: everything a presentational layer
// needs to draw the input without re-deriving anything.
type Control struct {
	Kind      ControlKind `json:"kind"`
	Name      string      `json:"name"`
	Label     string      `json:"label"`
	InputType string      `json:"input_type,omitempty"`
	Required  bool        `json:"required"`
	Options   []string    `json:"options,omitempty"`
}

func buildControl(f Field) Control {
	c := Control{
		Name:     f.Name,
		Label:    f.Label,
		Required: f.Required,
	}
	switch f.Type {
	case TypeTextarea:
		c.Kind = ControlTextarea
	case TypeSelect:
		c.Kind = ControlSelect
		c.Options = ParseOptions(f.Options)
	case TypeRadio:
		c.Kind = ControlRadio
		c.Options = ParseOptions(f.Options)
	case TypeCheckbox:
		c.Kind = ControlCheckbox
	case TypeText, TypeEmail, TypeTel:
		c.Kind = ControlInput
		c.InputType = f.Type.String()
	}
	return c
}

// BuildControls produces the render plan for a field list in Order sequence.
func BuildControls(fs []Field) []Control {
	ordered := make([]Field, len(fs))
	copy(ordered, fs)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	controls := make([]Control, 0, len(ordered))
	for _, f := range ordered {
		controls = append(controls, buildControl(f))
	}
	return controls
}

// ValidationError is one blocking per-field submission error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Message
}

func isEmpty(f Field, value string) bool {
	if f.Type == TypeCheckbox {
		// an unchecked box submits nothing or an explicit false
		return value == "" || value == "false" || value == "0"
	}
	return strings.TrimSpace(value) == ""
}

// Validate checks submitted values against the field list. A required field
// with an empty value blocks submission with "<label> is required". Errors
// are returned in field order so the first one can be surfaced inline.
func Validate(fs []Field, values map[string]string) []ValidationError {
	var errs []ValidationError
	for _, f := range fs {
		if !f.Required {
			continue
		}
		if isEmpty(f, values[f.Name]) {
			errs = append(errs, ValidationError{
				Field:   f.Name,
				Message: f.Label + " is required",
			})
		}
	}
	return errs
}
