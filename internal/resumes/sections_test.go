package resumes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSectionMeta(t *testing.T) {
	meta := DefaultSectionMeta()

	assert.Len(t, meta.Order, 6)
	for _, key := range meta.Order {
		assert.True(t, meta.Visibility[key], "section %q should start visible", key)
		assert.NotEmpty(t, meta.Names[key])
	}
	assert.Equal(t, "Professional Summary", meta.Names[SectionSummary])
}

func TestNormalizeRepairsOrder(t *testing.T) {
	meta := SectionMeta{
		Order:      []string{"skills", "bogus", "summary", "skills"},
		Visibility: map[string]bool{"summary": true, "skills": false},
	}
	meta.Normalize()

	// Every canonical section present exactly once, unknown keys dropped.
	seen := map[string]int{}
	for _, key := range meta.Order {
		seen[key]++
	}
	for _, key := range []string{"summary", "skills", "experience", "projects", "education", "certifications"} {
		assert.Equal(t, 1, seen[key], "section %q", key)
	}
	assert.NotContains(t, meta.Order, "bogus")

	// Existing preferences survive, missing ones are filled in.
	assert.False(t, meta.Visibility["skills"])
	assert.True(t, meta.Visibility["experience"])
	assert.Equal(t, "Experience", meta.Names["experience"])
}

func TestNormalizeKeepsCustomSections(t *testing.T) {
	meta := DefaultSectionMeta()
	cs := meta.AddCustomSection("Publications", "Three peer-reviewed papers")

	meta.Order = []string{"summary"}
	meta.Normalize()

	assert.Contains(t, meta.Order, cs.ID)
	assert.True(t, meta.Visibility[cs.ID])
}

func TestAddRemoveCustomSection(t *testing.T) {
	meta := DefaultSectionMeta()
	cs := meta.AddCustomSection("Volunteering", "Local food bank")

	require.NotEmpty(t, cs.ID)
	assert.Contains(t, meta.Order, cs.ID)
	assert.True(t, meta.Visibility[cs.ID])

	require.True(t, meta.RemoveCustomSection(cs.ID))
	assert.NotContains(t, meta.Order, cs.ID)
	_, stillVisible := meta.Visibility[cs.ID]
	assert.False(t, stillVisible)
	assert.False(t, meta.RemoveCustomSection(cs.ID))
}

func TestSectionTitle(t *testing.T) {
	meta := DefaultSectionMeta()
	meta.Names[SectionSkills] = "Core Competencies"
	cs := meta.AddCustomSection("Awards", "")

	assert.Equal(t, "Core Competencies", meta.SectionTitle(SectionSkills))
	assert.Equal(t, "Awards", meta.SectionTitle(cs.ID))
	assert.Equal(t, "Experience", meta.SectionTitle(SectionExperience))
	assert.Equal(t, "mystery", meta.SectionTitle("mystery"))
}

func TestMoveSection(t *testing.T) {
	order := []string{"summary", "skills", "experience"}

	up, ok := MoveSection(order, "skills", "up")
	require.True(t, ok)
	assert.Equal(t, []string{"skills", "summary", "experience"}, up)
	assert.Equal(t, []string{"summary", "skills", "experience"}, order)

	down, ok := MoveSection(order, "skills", "down")
	require.True(t, ok)
	assert.Equal(t, []string{"summary", "experience", "skills"}, down)
}

func TestMoveSectionEdges(t *testing.T) {
	order := []string{"summary", "skills"}

	_, ok := MoveSection(order, "summary", "up")
	assert.False(t, ok)

	_, ok = MoveSection(order, "skills", "down")
	assert.False(t, ok)

	_, ok = MoveSection(order, "missing", "up")
	assert.False(t, ok)

	_, ok = MoveSection(order, "summary", "sideways")
	assert.False(t, ok)
}
