package corpus

// DefaultType is the resolved type for records that carry no type field.
const DefaultType = "unknown"

// Record is one bead as supplied by the issue store. All fields are
// optional on the wire; zero values are meaningful inputs, not errors.
type Record struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	// IssueType is the canonical field name; Type is the legacy spelling.
	// ResolvedType arbitrates between them.
	IssueType string `json:"issue_type"`
	Type      string `json:"type"`
}

// ResolvedType returns the bead type, preferring issue_type over type and
// defaulting to DefaultType when both are absent.
func (r Record) ResolvedType() string {
	if r.IssueType != "" {
		return r.IssueType
	}
	if r.Type != "" {
		return r.Type
	}
	return DefaultType
}
