package fields

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveName(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{name: "simple", label: "Company", want: "company"},
		{name: "spaces become underscores", label: "Full Name", want: "full_name"},
		{name: "punctuation stripped", label: "T-Shirt Size?", want: "tshirt_siz"},
		{name: "truncated to ten", label: "GitHub Profile URL!", want: "github_pro"},
		{name: "whitespace runs collapse", label: "Dietary   Needs", want: "dietary_ne"},
		{name: "digits kept", label: "Track 2", want: "track_2"},
		{name: "empty label", label: "", want: ""},
		{name: "only punctuation", label: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveName(tt.label))
		})
	}
}

func TestParseType(t *testing.T) {
	for _, name := range []string{"text", "email", "tel", "textarea", "select", "checkbox", "radio"} {
		parsed, err := ParseType(name)
		require.NoError(t, err)
		assert.Equal(t, name, parsed.String())
	}

	_, err := ParseType("date")
	assert.Error(t, err)
}

func TestTypeJSONRoundTrip(t *testing.T) {
	var f Field
	err := json.Unmarshal([]byte(`{"field_label":"Role","field_type":"select"}`), &f)
	require.NoError(t, err)
	assert.Equal(t, TypeSelect, f.Type)

	data, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"field_type":"select"`)
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name       string
		serialized string
		want       []string
	}{
		{name: "valid list", serialized: `["S","M","L"]`, want: []string{"S", "M", "L"}},
		{name: "empty string", serialized: "", want: []string{}},
		{name: "broken json", serialized: `["S","M"`, want: []string{}},
		{name: "null", serialized: "null", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOptions(tt.serialized))
		})
	}
}

func TestEncodeOptions(t *testing.T) {
	assert.Equal(t, `["S","M","L"]`, EncodeOptions([]string{" S", "M ", "", "  ", "L"}))
	assert.Equal(t, `[]`, EncodeOptions(nil))
}

func TestNormalize(t *testing.T) {
	fs := []Field{
		{Label: "Full Name", Type: TypeText, Order: 7, Options: `["stale"]`},
		{Label: "T-Shirt Size", Type: TypeSelect, Order: 2, Options: `["S","M"]`},
	}
	Normalize(fs)

	assert.Equal(t, "full_name", fs[0].Name)
	assert.Equal(t, 0, fs[0].Order)
	assert.Empty(t, fs[0].Options, "non-option type loses its option list")

	assert.Equal(t, "tshirt_siz", fs[1].Name)
	assert.Equal(t, 1, fs[1].Order)
	assert.Equal(t, `["S","M"]`, fs[1].Options)
}

func labels(fs []Field) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.Label
	}
	return out
}

func TestMoveUpMoveDown(t *testing.T) {
	fs := []Field{
		{Label: "a", Order: 0},
		{Label: "b", Order: 1},
		{Label: "c", Order: 2},
	}

	MoveUp(fs, 2)
	assert.Equal(t, []string{"a", "c", "b"}, labels(fs))
	MoveDown(fs, 1)
	assert.Equal(t, []string{"a", "b", "c"}, labels(fs), "move up then down restores order")

	for i, f := range fs {
		assert.Equal(t, i, f.Order)
	}

	// boundary no-ops
	MoveUp(fs, 0)
	MoveDown(fs, len(fs)-1)
	MoveUp(fs, -1)
	MoveDown(fs, 99)
	assert.Equal(t, []string{"a", "b", "c"}, labels(fs))
}

func TestBuildControls(t *testing.T) {
	fs := []Field{
		{Name: "tshirt_siz", Label: "T-Shirt Size", Type: TypeSelect, Options: `["S","M","L"]`, Order: 1},
		{Name: "full_name", Label: "Full Name", Type: TypeText, Required: true, Order: 0},
		{Name: "newsletter", Label: "Newsletter", Type: TypeCheckbox, Order: 2},
		{Name: "bio", Label: "Bio", Type: TypeTextarea, Order: 3},
	}

	controls := BuildControls(fs)
	require.Len(t, controls, 4)

	assert.Equal(t, "full_name", controls[0].Name, "ordered by field_order, not slice position")
	assert.Equal(t, ControlInput, controls[0].Kind)
	assert.Equal(t, "text", controls[0].InputType)
	assert.True(t, controls[0].Required)

	assert.Equal(t, ControlSelect, controls[1].Kind)
	assert.Equal(t, []string{"S", "M", "L"}, controls[1].Options)

	assert.Equal(t, ControlCheckbox, controls[2].Kind)
	assert.Empty(t, controls[2].InputType)

	assert.Equal(t, ControlTextarea, controls[3].Kind)
}

func TestValidate(t *testing.T) {
	fs := []Field{
		{Name: "full_name", Label: "Full Name", Type: TypeText, Required: true},
		{Name: "company", Label: "Company", Type: TypeText},
		{Name: "consent", Label: "Consent", Type: TypeCheckbox, Required: true},
	}

	tests := []struct {
		name   string
		values map[string]string
		want   []ValidationError
	}{
		{
			name:   "all present",
			values: map[string]string{"full_name": "Ada", "consent": "true"},
			want:   nil,
		},
		{
			name:   "required text missing",
			values: map[string]string{"consent": "true"},
			want:   []ValidationError{{Field: "full_name", Message: "Full Name is required"}},
		},
		{
			name:   "whitespace counts as empty",
			values: map[string]string{"full_name": "   ", "consent": "true"},
			want:   []ValidationError{{Field: "full_name", Message: "Full Name is required"}},
		},
		{
			name:   "unchecked box",
			values: map[string]string{"full_name": "Ada", "consent": "false"},
			want:   []ValidationError{{Field: "consent", Message: "Consent is required"}},
		},
		{
			name:   "optional field never blocks",
			values: map[string]string{"full_name": "Ada", "consent": "1x", "company": ""},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(fs, tt.values))
		})
	}
}
