// Package theme holds the gallery's presentation skins as data. The UI is a
// single set of components; everything that differs between the "Waifu",
// "Anime" and "Warrior" galleries lives in these configs.
package theme

// Palette holds the CSS custom-property values a skin applies.
type Palette struct {
	Primary    string `json:"primary"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Accent     string `json:"accent"`
}

type Theme struct {
	Slug            string  `json:"slug"`
	Name            string  `json:"name"`
	Tagline         string  `json:"tagline"`
	EmptyStateTitle string  `json:"empty_state_title"`
	EmptyStateHint  string  `json:"empty_state_hint"`
	DeletePrompt    string  `json:"delete_prompt"`
	Palette         Palette `json:"palette"`
}

// DefaultSlug is the skin used when no theme preference is stored.
const DefaultSlug = "waifu"

var themes = []Theme{
	{
		Slug:            "waifu",
		Name:            "Waifu Gallery",
		Tagline:         "Your personal collection of beloved characters",
		EmptyStateTitle: "No characters yet",
		EmptyStateHint:  "Click the \"Add Character\" button to create your first character",
		DeletePrompt:    "Are you sure you want to release this waifu?",
		Palette: Palette{
			Primary:    "#ec4899",
			Background: "#fdf2f8",
			Surface:    "#ffffff",
			Accent:     "#f9a8d4",
		},
	},
	{
		Slug:            "anime",
		Name:            "Anime Gallery",
		Tagline:         "Collect and organize your favorite anime characters",
		EmptyStateTitle: "No characters yet",
		EmptyStateHint:  "Click the \"Add Character\" button to create your first character",
		DeletePrompt:    "Are you sure you want to delete this character?",
		Palette: Palette{
			Primary:    "#6366f1",
			Background: "#eef2ff",
			Surface:    "#ffffff",
			Accent:     "#a5b4fc",
		},
	},
	{
		Slug:            "warrior",
		Name:            "Warrior Gallery",
		Tagline:         "A hall of legends for your mightiest warriors",
		EmptyStateTitle: "The hall stands empty",
		EmptyStateHint:  "Click the \"Add Character\" button to enlist your first warrior",
		DeletePrompt:    "Banish this warrior from the hall?",
		Palette: Palette{
			Primary:    "#b91c1c",
			Background: "#1c1917",
			Surface:    "#292524",
			Accent:     "#f59e0b",
		},
	},
}

// All returns every built-in theme in display order.
func All() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// BySlug looks up a theme by its slug.
func BySlug(slug string) (Theme, bool) {
	for _, t := range themes {
		if t.Slug == slug {
			return t, true
		}
	}
	return Theme{}, false
}
