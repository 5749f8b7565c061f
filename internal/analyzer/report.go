package analyzer

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	maxKeyDisplay = 47
	maxIDDisplay  = 40
)

// Render writes the structured text report to w.
func (r *Report) Render(w io.Writer) error {
	_, err := io.WriteString(w, r.Markdown())
	return err
}

// Markdown renders the report: header metadata, summary statistics, type
// distribution, slug-length histogram, top colliding slugs, the
// work-beads sub-report (when the subset is non-empty), sample IDs, and
// the acceptance checklist with the overall recommendation.
func (r *Report) Markdown() string {
	var b strings.Builder
	p := message.NewPrinter(language.English)

	b.WriteString("# Semantic ID Validation Report\n")
	fmt.Fprintf(&b, "\n**Generated**: %s\n", r.GeneratedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "**Run**: %s\n", r.RunToken)
	b.WriteString("**Format**: `<prefix>-<type>-<slug><suffix>`\n")

	b.WriteString("\n## Summary Statistics\n\n")
	p.Fprintf(&b, "- **Total beads analyzed**: %d\n", r.Total)

	b.WriteString("\n### Collision Analysis\n\n")
	p.Fprintf(&b, "- **Slug collisions (before suffix)**: %d (%.1f%%)\n",
		r.PreSuffixCollisionInstances, pct(r.PreSuffixCollisionInstances, r.Total))
	p.Fprintf(&b, "  - Patrol/Molecule (ephemeral): %d\n", r.EphemeralCollisionInstances)
	p.Fprintf(&b, "  - Work beads (persistent): %d\n", r.WorkCollisionInstances)
	if r.FullIDCollisions == 0 {
		b.WriteString("- **Full ID collisions (with suffix)**: 0 (effectively 0%)\n")
	} else {
		fmt.Fprintf(&b, "- **Full ID collisions (with suffix)**: %d\n", r.FullIDCollisions)
	}
	b.WriteString("  - Random suffix provides 1.6M+ unique combinations\n")

	b.WriteString("\n## Type Distribution\n\n")
	b.WriteString("| Type Code | Count | Percentage |\n")
	b.WriteString("|-----------|-------|------------|\n")
	for _, tc := range r.TypeDist {
		p.Fprintf(&b, "| `%s` | %d | %.1f%% |\n", tc.Code, tc.Count, pct(tc.Count, r.Total))
	}

	b.WriteString("\n## Slug Length Distribution\n\n")
	fmt.Fprintf(&b, "- Average slug length: %.1f chars\n", r.AvgSlugLen)
	fmt.Fprintf(&b, "- Average total ID length: %.1f chars\n", r.AvgTotalLen)
	b.WriteString("\n")
	for _, band := range r.LengthBands {
		bandPct := pct(band.Count, r.Total)
		line := fmt.Sprintf("- %5s chars: %4d (%5.1f%%)", band.Label, band.Count, bandPct)
		if bar := strings.Repeat("█", int(bandPct/2)); bar != "" {
			line += " " + bar
		}
		b.WriteString(line + "\n")
	}

	fmt.Fprintf(&b, "\n## Top %d Colliding Slugs (before suffix)\n\n", r.TopCap)
	b.WriteString("| Slug (prefix-type-slug) | Count | Category |\n")
	b.WriteString("|-------------------------|-------|----------|\n")
	for _, cs := range r.TopColliding {
		fmt.Fprintf(&b, "| `%s` | %d | %s |\n", displayKey(cs.Key), cs.Count, cs.Category)
	}

	if r.workSectionVisible {
		b.WriteString("\n## Work Beads Analysis (bugs, tasks, epics, features)\n\n")
		p.Fprintf(&b, "- **Total work beads**: %d\n", r.Work.Total)
		fmt.Fprintf(&b, "- **Slug collision rate (before suffix)**: %.2f%%\n", r.Work.CollisionRate)
		b.WriteString("- **With random suffix**: ~0% (suffix resolves all collisions)\n")
	}

	b.WriteString("\n## Sample Generated IDs\n\n")
	b.WriteString("| Original ID | Type | Semantic ID | Slug Len |\n")
	b.WriteString("|-------------|------|-------------|----------|\n")
	for _, g := range r.Samples {
		fmt.Fprintf(&b, "| `%s` | %s | `%s` | %d |\n",
			g.OriginalID, g.TypeCode, displayID(g.SemanticID), g.SlugLen)
	}

	b.WriteString("\n## Validation Results\n\n### Acceptance Criteria\n\n")
	for _, c := range r.Checks {
		mark := "✓"
		if !c.Passed {
			mark = "✗"
		}
		fmt.Fprintf(&b, "- %s **%s**\n  - %s\n", mark, c.Name, c.Detail)
	}

	b.WriteString("\n### Recommendation\n\n")
	if r.Passed() {
		b.WriteString("**PROCEED WITH IMPLEMENTATION** - All acceptance criteria met.\n")
	} else {
		b.WriteString("**REVIEW NEEDED** - Some criteria not met.\n")
	}

	b.WriteString("\n### Implementation Notes\n\n")
	b.WriteString("- Format: `<prefix>-<type>-<slug><suffix>`\n")
	b.WriteString("- Example: `gt-epc-semantic_ids7x9k`\n")
	b.WriteString("- Type codes make filtering easy: `bd list | grep 'gt-bug-'`\n")
	b.WriteString("- Random suffix (4 chars) keeps collisions statistically negligible\n")
	b.WriteString("- Patrol/molecule beads can optionally keep random IDs\n")

	return b.String()
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}

func displayKey(key string) string {
	if len(key) > maxKeyDisplay {
		return key[:45] + ".."
	}
	return key
}

func displayID(id string) string {
	if len(id) > maxIDDisplay {
		return id[:maxIDDisplay] + "..."
	}
	return id
}
