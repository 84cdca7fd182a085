// Package experiment implements the site's A/B variant assignment: a
// random pick from a fixed variant list, persisted client-side (the
// handler sets a long-lived cookie) so a visitor keeps their bucket.
package experiment

import (
	"errors"
	"math/rand"
)

var ErrUnknownExperiment = errors.New("unknown experiment")

// Assignment records which variant a visitor was bucketed into.
type Assignment struct {
	Experiment string `json:"experiment"`
	Variant    string `json:"variant"`
}

// Service holds the static experiment table.
type Service struct {
	variants map[string][]string
}

// NewService builds a service over the supplied experiment table.
func NewService(variants map[string][]string) *Service {
	copied := make(map[string][]string, len(variants))
	for id, vs := range variants {
		copied[id] = append([]string(nil), vs...)
	}
	return &Service{variants: copied}
}

// Seed returns the experiments currently running on the site.
func Seed() map[string][]string {
	return map[string][]string{
		"landing_hero": {"warm", "bold"},
		"cta_copy":     {"talk-now", "find-support"},
	}
}

// Assign buckets a visitor into a uniformly random variant.
func (s *Service) Assign(experimentID string) (Assignment, error) {
	vs, ok := s.variants[experimentID]
	if !ok || len(vs) == 0 {
		return Assignment{}, ErrUnknownExperiment
	}
	return Assignment{
		Experiment: experimentID,
		Variant:    vs[rand.Intn(len(vs))],
	}, nil
}

// Valid reports whether the variant belongs to the experiment, used to
// validate cookies echoed back by the browser.
func (s *Service) Valid(experimentID, variant string) bool {
	for _, v := range s.variants[experimentID] {
		if v == variant {
			return true
		}
	}
	return false
}
