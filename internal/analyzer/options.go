package analyzer

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Options tunes the analysis pass and the acceptance thresholds. Start
// from DefaultOptions; the zero value is not useful.
type Options struct {
	// WorkTypeCodes are the persistent bead types whose pre-suffix
	// collision rate is the primary acceptance signal.
	WorkTypeCodes []string `yaml:"work_type_codes"`

	// PatrolKeywords and MoleculeKeywords drive the default collision
	// classifier.
	PatrolKeywords   []string `yaml:"patrol_keywords"`
	MoleculeKeywords []string `yaml:"molecule_keywords"`

	// SampleSkipKeywords excludes ephemeral slugs from the sample table
	// so the samples stay representative of work identifiers.
	SampleSkipKeywords []string `yaml:"sample_skip_keywords"`

	// SampleCap bounds the sample-IDs table.
	SampleCap int `yaml:"sample_cap"`

	// TopCollisions bounds the colliding-slug table.
	TopCollisions int `yaml:"top_collisions"`

	// MaxWorkCollisionRate is the acceptance ceiling, in percent, for the
	// work-subset pre-suffix collision rate.
	MaxWorkCollisionRate float64 `yaml:"max_work_collision_rate"`

	// MinAvgSlugLen and MaxAvgSlugLen bound the acceptable average slug
	// length, exclusive on both ends.
	MinAvgSlugLen float64 `yaml:"min_avg_slug_len"`
	MaxAvgSlugLen float64 `yaml:"max_avg_slug_len"`

	// GeneratedAt and RunToken stamp the report header. Zero values are
	// filled with the current date and a fresh UUID; deterministic runs
	// pin both.
	GeneratedAt time.Time `yaml:"-"`
	RunToken    string    `yaml:"-"`

	// Classifier overrides the keyword classifier. Nil builds one from
	// PatrolKeywords and MoleculeKeywords.
	Classifier Classifier `yaml:"-"`
}

// DefaultOptions returns the standard analysis configuration.
func DefaultOptions() Options {
	return Options{
		WorkTypeCodes:        []string{"bug", "tsk", "epc", "ftr"},
		PatrolKeywords:       []string{"patrol", "digest", "wisp"},
		MoleculeKeywords:     []string{"mol-", "molecule"},
		SampleSkipKeywords:   []string{"patrol", "digest", "mol_"},
		SampleCap:            20,
		TopCollisions:        15,
		MaxWorkCollisionRate: 5,
		MinAvgSlugLen:        15,
		MaxAvgSlugLen:        35,
	}
}

// LoadOptions reads option overrides from a YAML file on top of defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("reading options file: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parsing options file %s: %w", path, err)
	}
	return opts, nil
}

func (o Options) classifier() Classifier {
	if o.Classifier != nil {
		return o.Classifier
	}
	return KeywordClassifier(o.PatrolKeywords, o.MoleculeKeywords)
}
