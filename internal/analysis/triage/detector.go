package triage

import "strings"

// Result reports whether free text tripped crisis detection and which
// keyword did it.
type Result struct {
	Crisis  bool
	Keyword string
}

// Detector screens free text for crisis language before the normal
// decision tree gets a chance to respond.
type Detector struct {
	keywords []keyword
}

type keyword struct {
	display   string // as configured, for reporting
	collapsed string // lowercased, whitespace removed, for matching
}

// NewDetector builds a detector over the supplied keyword list. Empty
// entries are dropped.
func NewDetector(keywords []string) *Detector {
	cleaned := make([]keyword, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		cleaned = append(cleaned, keyword{display: kw, collapsed: collapse(kw)})
	}
	return &Detector{keywords: cleaned}
}

// Screen tests the input against every configured keyword. Matching is
// literal substring containment over the lowercased, whitespace-collapsed
// text — no tokenization, no stemming — so spacing differences don't mask
// a phrase, and embedded matches trip detection too.
func (d *Detector) Screen(text string) Result {
	normalized := collapse(text)
	if normalized == "" {
		return Result{}
	}
	for _, kw := range d.keywords {
		if strings.Contains(normalized, kw.collapsed) {
			return Result{Crisis: true, Keyword: kw.display}
		}
	}
	return Result{}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "")
}
