package ident

import "strings"

// DefaultPrefix is used when a legacy bead ID carries no hyphen-delimited
// project segment.
const DefaultPrefix = "gt"

// Compose builds the full semantic ID:
//
//	<prefix>-<typeCode>-<slug><suffix>
//
// The slug and suffix are concatenated with no separator: the suffix is
// fixed-width, so it is always the last SuffixLen characters and a
// separator would only spend length budget. Compose performs no
// validation; each part's invariants are owed by its producer.
func Compose(prefix, typeCode, slug, suffix string) string {
	return prefix + "-" + typeCode + "-" + slug + suffix
}

// ExtractPrefix returns the project prefix of a legacy bead ID: the
// segment before the first '-'. IDs with no such segment (empty, no
// hyphen, or a leading hyphen) resolve to DefaultPrefix.
func ExtractPrefix(id string) string {
	prefix, _, found := strings.Cut(id, "-")
	if !found || prefix == "" {
		return DefaultPrefix
	}
	return prefix
}
