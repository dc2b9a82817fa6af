package resumes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupeSkills(t *testing.T) {
	in := []string{"Go", "go", "  SQL ", "sql", "React", "", "  "}
	out := DedupeSkills(in)

	assert.Equal(t, []string{"Go", "  SQL ", "React"}, out)
	// Input is left alone.
	assert.Equal(t, []string{"Go", "go", "  SQL ", "sql", "React", "", "  "}, in)
}

func TestDedupeSkillsKeepsFirstOccurrence(t *testing.T) {
	out := DedupeSkills([]string{"Node.js", "NODE.JS", "node.js"})
	assert.Equal(t, []string{"Node.js"}, out)
}

func TestAddCustomFieldReturnsNewSlice(t *testing.T) {
	orig := []CustomField{{ID: "a", Name: "Visa", Value: "H-1B"}}
	out := AddCustomField(orig, "Clearance", "Secret")

	require.Len(t, out, 2)
	assert.Len(t, orig, 1)
	assert.NotEmpty(t, out[1].ID)
	assert.Equal(t, "Clearance", out[1].Name)
	assert.Equal(t, "Secret", out[1].Value)
}

func TestAddCustomFieldMintsUniqueIDs(t *testing.T) {
	out := AddCustomField(nil, "A", "1")
	out = AddCustomField(out, "B", "2")
	out = AddCustomField(out, "C", "3")

	seen := map[string]bool{}
	for _, f := range out {
		require.False(t, seen[f.ID], "duplicate id %q", f.ID)
		seen[f.ID] = true
	}
}

func TestAddThenRemoveCustomFieldRestoresOriginal(t *testing.T) {
	orig := []CustomField{
		{ID: "a", Name: "Visa", Value: "H-1B"},
		{ID: "b", Name: "Clearance", Value: "Secret"},
	}

	added := AddCustomField(orig, "Relocation", "Yes")
	require.Len(t, added, 3)

	back := RemoveCustomField(added, added[2].ID)
	assert.Equal(t, orig, back)
}

func TestRemoveCustomField(t *testing.T) {
	fields := []CustomField{
		{ID: "a", Name: "One"},
		{ID: "b", Name: "Two"},
		{ID: "c", Name: "Three"},
	}

	out := RemoveCustomField(fields, "b")
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "c", out[1].ID)

	// Unknown ID is a no-op copy.
	same := RemoveCustomField(fields, "zzz")
	assert.Equal(t, fields, same)
	assert.Len(t, fields, 3)
}
