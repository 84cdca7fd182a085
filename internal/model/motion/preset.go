package motion

// Preset describes one scroll-triggered animation the frontend can apply
// to an element. The backend serves the catalog read-only; the browser
// does the animating.
type Preset struct {
	Name     string  `json:"name"`
	Kind     string  `json:"kind"` // fade, slide, zoom, flip, reveal
	Duration float64 `json:"duration"`
	Ease     string  `json:"ease"`
	Distance int     `json:"distance,omitempty"` // px, for slide/fade offsets
	Stagger  float64 `json:"stagger,omitempty"`  // seconds between grouped children
}

// Catalog is the static preset lookup table.
type Catalog struct {
	items []Preset
}

// NewCatalog returns a Catalog over the supplied presets.
func NewCatalog(items []Preset) *Catalog {
	return &Catalog{items: append([]Preset(nil), items...)}
}

// List returns every preset.
func (c *Catalog) List() []Preset {
	return append([]Preset(nil), c.items...)
}

// FindByName looks a preset up by name.
func (c *Catalog) FindByName(name string) (Preset, bool) {
	for _, item := range c.items {
		if item.Name == name {
			return item, true
		}
	}
	return Preset{}, false
}

// Seed returns the shipped animation presets.
func Seed() []Preset {
	return []Preset{
		{Name: "fade-up", Kind: "fade", Duration: 0.8, Ease: "power2.out", Distance: 40},
		{Name: "fade-down", Kind: "fade", Duration: 0.8, Ease: "power2.out", Distance: -40},
		{Name: "fade-left", Kind: "fade", Duration: 0.7, Ease: "power2.out", Distance: 60},
		{Name: "fade-right", Kind: "fade", Duration: 0.7, Ease: "power2.out", Distance: -60},
		{Name: "fade-soft", Kind: "fade", Duration: 1.2, Ease: "sine.inOut"},
		{Name: "slide-up", Kind: "slide", Duration: 0.6, Ease: "power3.out", Distance: 80},
		{Name: "slide-panel", Kind: "slide", Duration: 0.9, Ease: "expo.out", Distance: 120},
		{Name: "zoom-in", Kind: "zoom", Duration: 0.7, Ease: "back.out(1.4)"},
		{Name: "zoom-hero", Kind: "zoom", Duration: 1.4, Ease: "power1.inOut"},
		{Name: "flip-x", Kind: "flip", Duration: 0.8, Ease: "power2.inOut"},
		{Name: "flip-card", Kind: "flip", Duration: 1.0, Ease: "back.out(1.2)"},
		{Name: "reveal-lines", Kind: "reveal", Duration: 0.9, Ease: "power4.out", Stagger: 0.08},
		{Name: "reveal-grid", Kind: "reveal", Duration: 0.7, Ease: "power2.out", Stagger: 0.12},
		{Name: "reveal-marquee", Kind: "reveal", Duration: 1.6, Ease: "none"},
		{Name: "card-lift", Kind: "slide", Duration: 0.5, Ease: "power2.out", Distance: 24},
		{Name: "counter-up", Kind: "reveal", Duration: 1.1, Ease: "power1.out"},
	}
}
