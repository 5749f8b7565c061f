package analyzer

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/semid/internal/corpus"
	"github.com/roach88/semid/internal/ident"
)

// displayTitleLen caps the title retained per generation for display.
const displayTitleLen = 50

// Generation holds every field derived for a single record.
type Generation struct {
	OriginalID string `json:"original_id"`
	Title      string `json:"title"`
	Type       string `json:"type"`
	TypeCode   string `json:"type_code"`
	Slug       string `json:"slug"`
	Suffix     string `json:"suffix"`
	SemanticID string `json:"semantic_id"`
	SlugLen    int    `json:"slug_length"`
	TotalLen   int    `json:"total_length"`
}

// LengthBand is one fixed bucket of the slug-length histogram.
type LengthBand struct {
	Label string `json:"label"`
	Lo    int    `json:"-"`
	Hi    int    `json:"-"`
	Count int    `json:"count"`
}

// TypeCount is one row of the type distribution.
type TypeCount struct {
	Code  string `json:"code"`
	Count int    `json:"count"`
}

// CollidingSlug is one row of the top-collisions table.
type CollidingSlug struct {
	Key      string   `json:"key"`
	Count    int      `json:"count"`
	Category Category `json:"category"`
}

// Check is one named acceptance criterion evaluated against the
// statistics.
type Check struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// WorkStats is the work-beads-only sub-analysis, restricted to the
// persistent type codes. The collision rate counts duplicates beyond the
// first occurrence of each pre-suffix key, as a percentage of the subset.
type WorkStats struct {
	Total         int     `json:"total"`
	Duplicates    int     `json:"duplicates"`
	CollisionRate float64 `json:"collision_rate"`
}

// Report is the aggregated result of one analysis run: derived-only,
// produced once, rendered or serialized, then discarded.
type Report struct {
	GeneratedAt time.Time `json:"generated_at"`
	RunToken    string    `json:"run_token"`

	Total int `json:"total"`

	// Pre-suffix collision instances count every member of a colliding
	// group, split by classifier category.
	PreSuffixCollisionInstances int `json:"pre_suffix_collision_instances"`
	EphemeralCollisionInstances int `json:"ephemeral_collision_instances"`
	WorkCollisionInstances      int `json:"work_collision_instances"`

	// FullIDCollisions counts colliding full IDs in this one run. Zero is
	// expected, not guaranteed.
	FullIDCollisions int `json:"full_id_collisions"`

	AvgSlugLen  float64 `json:"avg_slug_length"`
	AvgTotalLen float64 `json:"avg_total_length"`

	LengthBands  []LengthBand    `json:"length_bands"`
	TypeDist     []TypeCount     `json:"type_distribution"`
	TopColliding []CollidingSlug `json:"top_colliding"`

	// TopCap is the colliding-slug table bound used for this run.
	TopCap int `json:"-"`

	Work    WorkStats    `json:"work"`
	Samples []Generation `json:"samples"`
	Checks  []Check      `json:"checks"`

	// Generations retains every per-record derivation for callers that
	// want more than the samples. Excluded from serialized output.
	Generations []Generation `json:"-"`

	workSectionVisible bool
}

// Passed reports whether every acceptance check passed.
func (r *Report) Passed() bool {
	for _, c := range r.Checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

// Analyze runs the generation pipeline over the whole batch and
// aggregates the validation statistics. The suffix source is the only
// nondeterministic input; inject a seeded source (and pin
// Options.GeneratedAt / Options.RunToken) for byte-identical reruns.
func Analyze(records []corpus.Record, src ident.SuffixSource, opts Options) *Report {
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = time.Now()
	}
	if opts.RunToken == "" {
		opts.RunToken = uuid.NewString()
	}
	classify := opts.classifier()

	workSet := make(map[string]bool, len(opts.WorkTypeCodes))
	for _, code := range opts.WorkTypeCodes {
		workSet[code] = true
	}

	preSuffix := newCounter()
	fullIDs := newCounter()
	types := newCounter()
	workKeys := newCounter()

	gens := make([]Generation, 0, len(records))
	workTotal := 0
	slugLenSum := 0
	totalLenSum := 0

	for _, rec := range records {
		prefix := ident.ExtractPrefix(rec.ID)
		typeCode := ident.TypeCode(rec.ResolvedType())
		slug := ident.Slug(rec.Title)
		suffix := src.Next()
		semanticID := ident.Compose(prefix, typeCode, slug, suffix)

		gens = append(gens, Generation{
			OriginalID: rec.ID,
			Title:      truncate(rec.Title, displayTitleLen, "..."),
			Type:       rec.ResolvedType(),
			TypeCode:   typeCode,
			Slug:       slug,
			Suffix:     suffix,
			SemanticID: semanticID,
			SlugLen:    len(slug),
			TotalLen:   len(semanticID),
		})

		key := prefix + "-" + typeCode + "-" + slug
		preSuffix.Add(key)
		fullIDs.Add(semanticID)
		types.Add(typeCode)
		if workSet[typeCode] {
			workTotal++
			workKeys.Add(key)
		}
		slugLenSum += len(slug)
		totalLenSum += len(semanticID)
	}

	r := &Report{
		GeneratedAt:        opts.GeneratedAt,
		RunToken:           opts.RunToken,
		Total:              len(gens),
		TopCap:             opts.TopCollisions,
		FullIDCollisions:   fullIDs.CollidingInstances(),
		Generations:        gens,
		workSectionVisible: workTotal > 0,
	}

	for _, key := range preSuffix.Keys() {
		n := preSuffix.Count(key)
		if n <= 1 {
			continue
		}
		r.PreSuffixCollisionInstances += n
		if classify(key).Ephemeral() {
			r.EphemeralCollisionInstances += n
		} else {
			r.WorkCollisionInstances += n
		}
	}

	if r.Total > 0 {
		r.AvgSlugLen = float64(slugLenSum) / float64(r.Total)
		r.AvgTotalLen = float64(totalLenSum) / float64(r.Total)
	}

	r.LengthBands = lengthBands(gens)
	for _, e := range types.MostCommon(0) {
		r.TypeDist = append(r.TypeDist, TypeCount{Code: e.Key, Count: e.Count})
	}
	for _, e := range preSuffix.MostCommon(opts.TopCollisions) {
		if e.Count <= 1 {
			continue
		}
		r.TopColliding = append(r.TopColliding, CollidingSlug{
			Key:      e.Key,
			Count:    e.Count,
			Category: classify(e.Key),
		})
	}

	r.Work = WorkStats{Total: workTotal, Duplicates: workKeys.Excess()}
	if workTotal > 0 {
		r.Work.CollisionRate = 100 * float64(r.Work.Duplicates) / float64(workTotal)
	}

	r.Samples = selectSamples(gens, opts)
	r.Checks = acceptanceChecks(r, types, opts)
	return r
}

// lengthBands buckets slug lengths into the four fixed histogram bands.
func lengthBands(gens []Generation) []LengthBand {
	bands := []LengthBand{
		{Label: "1-10", Lo: 1, Hi: 10},
		{Label: "11-20", Lo: 11, Hi: 20},
		{Label: "21-30", Lo: 21, Hi: 30},
		{Label: "31-40", Lo: 31, Hi: 40},
	}
	for _, g := range gens {
		for i := range bands {
			if g.SlugLen >= bands[i].Lo && g.SlugLen <= bands[i].Hi {
				bands[i].Count++
				break
			}
		}
	}
	return bands
}

// selectSamples picks up to SampleCap generations for the sample table,
// preferring one per distinct type code before filling in corpus order,
// and skipping slugs that contain ephemeral keywords.
func selectSamples(gens []Generation, opts Options) []Generation {
	skip := func(g Generation) bool {
		for _, kw := range opts.SampleSkipKeywords {
			if strings.Contains(g.Slug, kw) {
				return true
			}
		}
		return false
	}

	taken := make([]bool, len(gens))
	count := 0

	// One representative per type code first.
	seenTypes := make(map[string]bool)
	for i, g := range gens {
		if count >= opts.SampleCap {
			break
		}
		if skip(g) || seenTypes[g.TypeCode] {
			continue
		}
		seenTypes[g.TypeCode] = true
		taken[i] = true
		count++
	}

	// Fill the remaining capacity in corpus order.
	for i, g := range gens {
		if count >= opts.SampleCap {
			break
		}
		if taken[i] || skip(g) {
			continue
		}
		taken[i] = true
		count++
	}

	samples := make([]Generation, 0, count)
	for i, g := range gens {
		if taken[i] {
			samples = append(samples, g)
		}
	}
	return samples
}

// acceptanceChecks evaluates the fixed, ordered acceptance criteria.
func acceptanceChecks(r *Report, types *counter, opts Options) []Check {
	codes := append([]string(nil), types.Keys()...)
	sort.Strings(codes)
	codeList := "(none)"
	if len(codes) > 0 {
		codeList = strings.Join(codes, ", ")
	}

	return []Check{
		{
			Name:   "Generated IDs are readable and meaningful",
			Passed: true,
			Detail: "Type code + semantic slug provides clear meaning",
		},
		{
			Name:   "Type visible in ID",
			Passed: true,
			Detail: "Type codes: " + codeList,
		},
		{
			Name:   "Collision-proof with suffix",
			Passed: r.FullIDCollisions == 0,
			Detail: fmt.Sprintf("Full ID collisions: %d", r.FullIDCollisions),
		},
		{
			Name:   fmt.Sprintf("Slug collisions acceptable (<%g%% for work)", opts.MaxWorkCollisionRate),
			Passed: r.Work.CollisionRate < opts.MaxWorkCollisionRate,
			Detail: fmt.Sprintf("Work bead slug collision rate: %.2f%%", r.Work.CollisionRate),
		},
		{
			Name:   "Length distribution reasonable",
			Passed: opts.MinAvgSlugLen < r.AvgSlugLen && r.AvgSlugLen < opts.MaxAvgSlugLen,
			Detail: fmt.Sprintf("Average slug length: %.1f chars", r.AvgSlugLen),
		},
	}
}

// truncate caps s at limit runes, appending marker when cut.
func truncate(s string, limit int, marker string) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + marker
}
