package content

// Section is one block of copy on an informational page.
type Section struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Page captures the copy for one informational page of the site.
type Page struct {
	Slug     string    `json:"slug"`
	Title    string    `json:"title"`
	Tagline  string    `json:"tagline"`
	Sections []Section `json:"sections,omitempty"`
}

// Store exposes page retrieval for HTTP handlers.
type Store interface {
	List() []Page
	FindBySlug(slug string) (Page, bool)
}

// MemoryStore implements Store with an in-memory slice; page copy ships
// with the binary and never changes at runtime.
type MemoryStore struct {
	items []Page
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied pages.
func NewMemoryStore(items []Page) *MemoryStore {
	return &MemoryStore{items: append([]Page(nil), items...)}
}

// List returns every page in display order.
func (s *MemoryStore) List() []Page {
	return append([]Page(nil), s.items...)
}

// FindBySlug looks a page up by its URL slug.
func (s *MemoryStore) FindBySlug(slug string) (Page, bool) {
	for _, item := range s.items {
		if item.Slug == slug {
			return item, true
		}
	}
	return Page{}, false
}
