package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	assert.Equal(t, "midnight_black", Resolve("midnight_black").ID)
	assert.Equal(t, DefaultID, Resolve("default").ID)
	assert.Equal(t, DefaultID, Resolve("sunset_orange").ID, "unknown falls back")
	assert.Equal(t, DefaultID, Resolve("").ID, "absent falls back")
}

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 2)
	assert.Equal(t, "default", all[0].ID)
	assert.Equal(t, "midnight_black", all[1].ID)
	for _, th := range all {
		assert.NotEmpty(t, th.Name)
		assert.NotEmpty(t, th.Container)
		assert.NotEmpty(t, th.Button)
	}
}

func TestResolvePalette(t *testing.T) {
	assert.Equal(t, "ocean", ResolvePalette("ocean").ID)
	assert.Equal(t, DefaultPaletteID, ResolvePalette("nonexistent").ID)
	assert.Equal(t, DefaultPaletteID, ResolvePalette("").ID)

	p := ResolvePalette("violet-bloom")
	assert.Equal(t, "#7c3aed", p.Light["--primary"])
	assert.Equal(t, "#a78bfa", p.Dark["--primary"])
}

func TestHexToHSL(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want string
	}{
		{name: "white", hex: "#ffffff", want: "0 0% 100%"},
		{name: "black", hex: "#000000", want: "0 0% 0%"},
		{name: "red", hex: "#ff0000", want: "0 100% 50%"},
		{name: "green", hex: "#00ff00", want: "120 100% 50%"},
		{name: "blue", hex: "#0000ff", want: "240 100% 50%"},
		{name: "no hash prefix", hex: "ff0000", want: "0 100% 50%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexToHSL(tt.hex)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "#fff", "#gggggg", "#1234567"} {
		_, err := HexToHSL(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
