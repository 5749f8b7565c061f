package analyzer

import "strings"

// Category labels a colliding slug key by the kind of bead that likely
// produced it. Ephemeral categories (Patrol, Molecule) are expected to
// collide; Work collisions are the ones that matter.
type Category string

const (
	CategoryPatrol   Category = "Patrol"
	CategoryMolecule Category = "Molecule"
	CategoryWork     Category = "Work"
)

// Ephemeral reports whether the category is excluded from the primary
// acceptance signal.
func (c Category) Ephemeral() bool {
	return c != CategoryWork
}

// Classifier tags a pre-suffix collision key with a Category. It is a
// replaceable function, not an inlined string check, so the keyword sets
// can evolve independently of the aggregation logic.
type Classifier func(key string) Category

// KeywordClassifier builds a Classifier from substring keyword sets.
// Patrol keywords take precedence over molecule keywords; anything
// unmatched is Work.
func KeywordClassifier(patrol, molecule []string) Classifier {
	return func(key string) Category {
		for _, kw := range patrol {
			if strings.Contains(key, kw) {
				return CategoryPatrol
			}
		}
		for _, kw := range molecule {
			if strings.Contains(key, kw) {
				return CategoryMolecule
			}
		}
		return CategoryWork
	}
}
