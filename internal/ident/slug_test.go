package ident

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlug_Basic(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Login Bug", "login_bug"},
		{"empty", "", "untitled"},
		{"punctuation only", "!!!", "untitled"},
		{"whitespace only", " \t\n", "untitled"},
		{"digit first", "123 Launch", "n123_launch"},
		{"mixed separators", "Fix: the -- thing", "fix_the_thing"},
		{"edge whitespace", "  hello  ", "hello"},
		{"leading underscores", "__weird__input__", "weird_input"},
		{"two chars", "Go", "gox"},
		{"one char", "a", "axx"},
		{"accented folds to ascii", "Café Menu", "cafe_menu"},
		{"all caps", "SHOUTING", "shouting"},
		{"email", "user@example.com", "user_example_com"},
		{"percent first", "50% faster", "n50_faster"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.title))
		})
	}
}

func TestSlug_HardTruncation(t *testing.T) {
	// 45 letters, no boundary available: hard cut at exactly MaxSlugLen.
	got := Slug(strings.Repeat("a", 45))
	assert.Equal(t, strings.Repeat("a", MaxSlugLen), got)
}

func TestSlug_WordBoundaryTruncation(t *testing.T) {
	// The underscore lands at index 30, above the boundary floor, so the
	// cut happens there instead of at the 40-character budget.
	title := strings.Repeat("a", 30) + " " + strings.Repeat("b", 20)
	assert.Equal(t, strings.Repeat("a", 30), Slug(title))
}

func TestSlug_BoundaryBelowFloor(t *testing.T) {
	// The only underscore inside the budget sits at index 10, so the cut
	// stays hard at 40 characters.
	title := strings.Repeat("a", 10) + " " + strings.Repeat("b", 40)
	got := Slug(title)
	assert.Len(t, got, MaxSlugLen)
	assert.Equal(t, strings.Repeat("a", 10)+"_"+strings.Repeat("b", 29), got)
}

func TestSlug_BoundaryFloorIsStrict(t *testing.T) {
	// An underscore exactly at index 25 does not qualify; we require a
	// boundary strictly above the floor.
	atFloor := strings.Repeat("a", 25) + " " + strings.Repeat("b", 20)
	assert.Len(t, Slug(atFloor), MaxSlugLen)

	aboveFloor := strings.Repeat("a", 26) + " " + strings.Repeat("b", 20)
	assert.Equal(t, strings.Repeat("a", 26), Slug(aboveFloor))
}

func TestSlug_Invariants(t *testing.T) {
	titles := []string{
		"",
		"!!!",
		"a",
		"A B C",
		"123 Launch",
		"Café ☕ Break",
		"__weird__input__",
		"MiXeD CaSe TiTlE",
		"semantic IDs: phase 2",
		"user@example.com",
		"50% faster",
		"---",
		"\t\n ",
		strings.Repeat("word ", 30),
		strings.Repeat("x", 100),
		strings.Repeat("ab ", 40),
	}
	for _, title := range titles {
		got := Slug(title)
		require.Regexp(t, `^[a-z0-9_]+$`, got, "title %q", title)
		assert.NotContains(t, got, "__", "title %q", title)
		assert.False(t, strings.HasPrefix(got, "_"), "title %q", title)
		assert.False(t, strings.HasSuffix(got, "_"), "title %q", title)
		assert.GreaterOrEqual(t, len(got), MinSlugLen, "title %q", title)
		assert.LessOrEqual(t, len(got), MaxSlugLen, "title %q", title)
		assert.NotRegexp(t, `^[0-9]`, got, "title %q", title)
	}
}

func TestSlug_Deterministic(t *testing.T) {
	title := "Deploy the new slug pipeline"
	assert.Equal(t, Slug(title), Slug(title))
}
