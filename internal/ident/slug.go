package ident

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// MaxSlugLen is the slug character budget. It leaves room for the
	// prefix, type code, separators, and suffix in a readable total.
	MaxSlugLen = 40

	// MinSlugLen is the minimum slug length; shorter results are padded.
	MinSlugLen = 3

	// boundaryFloor is the minimum number of characters that must survive
	// a word-boundary truncation. An underscore at or below this index is
	// ignored and the cut is hard at MaxSlugLen.
	boundaryFloor = 25

	// untitledSlug is the terminal slug for titles that normalize to nothing.
	untitledSlug = "untitled"
)

// asciiFold strips combining marks so accented letters reduce to their
// ASCII base before the byte-level pipeline. Anything still outside
// [a-z0-9] after folding becomes an underscore run.
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slug normalizes a bead title into an identifier slug.
//
// The result matches [a-z0-9_]+, contains no run of underscores, never
// starts or ends with an underscore, never starts with a digit, and has
// length in [MinSlugLen, MaxSlugLen]. Empty or fully non-alphanumeric
// titles normalize to "untitled".
func Slug(title string) string {
	folded, _, err := transform.String(asciiFold, title)
	if err != nil {
		folded = title
	}

	folded = strings.ToLower(folded)

	// Map non-alphanumeric runs to a single underscore and trim edge
	// underscores in one pass.
	var b strings.Builder
	b.Grow(len(folded))
	pendingSep := false
	for i := 0; i < len(folded); i++ {
		c := folded[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteByte(c)
		} else {
			pendingSep = true
		}
	}
	s := b.String()

	if s == "" {
		return untitledSlug
	}

	if s[0] >= '0' && s[0] <= '9' {
		s = "n" + s
	}

	if len(s) > MaxSlugLen {
		t := s[:MaxSlugLen]
		// Prefer a word boundary over a mid-word cut, but only when the
		// boundary keeps more than boundaryFloor characters.
		if i := strings.LastIndexByte(t, '_'); i > boundaryFloor {
			t = t[:i]
		}
		s = strings.TrimRight(t, "_")
	}

	for len(s) < MinSlugLen {
		s += "x"
	}
	return s
}
