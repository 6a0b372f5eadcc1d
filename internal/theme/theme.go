// Package theme resolves stored theme identifiers to concrete style
// configurations. Two independent namespaces exist: public registration
// themes chosen through the branding record, and dashboard palettes the
// operator picks locally. Both fall back to their default on unknown keys.
package theme

// Theme is the style set consumed by the public registration form.
type Theme struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Container   string `json:"container_class"`
	Card        string `json:"card_class"`
	Input       string `json:"input_class"`
	Label       string `json:"label_class"`
	Button      string `json:"button_class"`
}

const DefaultID = "default"

var themes = map[string]Theme{
	"default": {
		ID:          "default",
		Name:        "Default",
		Description: "Colorful gradients with purple, blue, and pink orbs",
		Container:   "min-h-screen relative overflow-hidden transition-colors duration-300",
		Card:        "backdrop-blur-lg bg-white/80 rounded-3xl shadow-2xl border border-white/20 p-8 md:p-10 transition-all duration-300",
		Input:       "w-full px-4 py-3 rounded-xl border-2 border-gray-200 focus:border-purple-500 focus:ring-4 focus:ring-purple-100 transition-all duration-300 text-gray-900 bg-white font-medium placeholder-gray-400",
		Label:       "block text-sm font-bold text-gray-700 mb-2",
		Button:      "relative w-full py-4 rounded-xl text-lg font-bold text-white overflow-hidden transition-all duration-300 bg-gradient-to-r from-purple-600 via-blue-600 to-pink-600 hover:shadow-2xl",
	},
	"midnight_black": {
		ID:          "midnight_black",
		Name:        "Midnight Black",
		Description: "Sleek dark theme with subtle purple and blue accents",
		Container:   "min-h-screen w-full flex items-center justify-center p-4 relative overflow-hidden bg-black",
		Card:        "w-full max-w-md relative z-10 backdrop-blur-xl bg-white/5 rounded-3xl border border-white/10 p-8 md:p-10 shadow-2xl",
		Input:       "h-14 bg-white/5 backdrop-blur-xl border border-white/10 transition-all duration-300 focus:border-white/30 hover:border-white/20 text-white placeholder:text-white/30 rounded-xl w-full px-4",
		Label:       "block mb-3 text-sm text-white/60",
		Button:      "w-full h-14 mt-8 bg-white text-black hover:bg-white/90 transition-all duration-300 disabled:opacity-30 disabled:cursor-not-allowed rounded-xl font-bold",
	},
}

// Resolve maps a branding theme identifier to its style configuration.
// Unknown or absent identifiers resolve to the default theme.
func Resolve(id string) Theme {
	if t, ok := themes[id]; ok {
		return t
	}
	return themes[DefaultID]
}

// All lists the available public themes for the branding settings screen.
func All() []Theme {
	return []Theme{themes["default"], themes["midnight_black"]}
}
