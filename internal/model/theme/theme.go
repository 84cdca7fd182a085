package theme

// Theme is one of the site's switchable color palettes. The browser
// persists the visitor's pick locally; the backend only serves the
// catalog.
type Theme struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Default bool              `json:"default,omitempty"`
	Colors  map[string]string `json:"colors"`
}

// Store exposes theme retrieval for HTTP handlers.
type Store interface {
	List() []Theme
	FindByID(id string) (Theme, bool)
}

// MemoryStore implements Store with an in-memory slice.
type MemoryStore struct {
	items []Theme
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied themes.
func NewMemoryStore(items []Theme) *MemoryStore {
	return &MemoryStore{items: append([]Theme(nil), items...)}
}

// List returns the palette catalog.
func (s *MemoryStore) List() []Theme {
	return append([]Theme(nil), s.items...)
}

// FindByID looks a theme up by identifier.
func (s *MemoryStore) FindByID(id string) (Theme, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Theme{}, false
}

// Seed returns the shipped palettes.
func Seed() []Theme {
	return []Theme{
		{
			ID:      "dawn",
			Name:    "Dawn",
			Default: true,
			Colors: map[string]string{
				"background": "#FDF6EE",
				"surface":    "#FFFFFF",
				"primary":    "#E8876D",
				"accent":     "#5B8A72",
				"text":       "#2F2A26",
			},
		},
		{
			ID:   "dusk",
			Name: "Dusk",
			Colors: map[string]string{
				"background": "#1E1B2E",
				"surface":    "#2A2640",
				"primary":    "#B48EAD",
				"accent":     "#88C0D0",
				"text":       "#ECEFF4",
			},
		},
		{
			ID:   "meadow",
			Name: "Meadow",
			Colors: map[string]string{
				"background": "#F2F7F2",
				"surface":    "#FFFFFF",
				"primary":    "#4C7C59",
				"accent":     "#E9B44C",
				"text":       "#23332A",
			},
		},
		{
			ID:   "tide",
			Name: "Tide",
			Colors: map[string]string{
				"background": "#Eef4F8",
				"surface":    "#FFFFFF",
				"primary":    "#31708E",
				"accent":     "#F18805",
				"text":       "#1C2B33",
			},
		},
	}
}
