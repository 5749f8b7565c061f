package ident

import "sort"

// UnknownTypeCode is the fallback code for unrecognized bead types.
const UnknownTypeCode = "unk"

// typeCodes maps bead type names to fixed-width 3-character codes.
// The table is closed: there is no runtime registration.
var typeCodes = map[string]string{
	"epic":     "epc",
	"bug":      "bug",
	"task":     "tsk",
	"feature":  "ftr",
	"decision": "dec",
	"convoy":   "cnv",
	"molecule": "mol",
	"wisp":     "wsp",
	"agent":    "agt",
	"role":     "rol",
	"mr":       "mrq",
}

// TypeCode resolves a free-form bead type to its 3-character code.
// Unrecognized input resolves to UnknownTypeCode. That is a deliberate
// fallback, not an error; unknown types surface through distribution
// statistics instead.
func TypeCode(beadType string) string {
	if code, ok := typeCodes[beadType]; ok {
		return code
	}
	return UnknownTypeCode
}

// KnownTypeCodes returns every code in the table, sorted.
func KnownTypeCodes() []string {
	codes := make([]string, 0, len(typeCodes))
	for _, code := range typeCodes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
