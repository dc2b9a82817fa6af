package generator

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSummaryTones(t *testing.T) {
	g := New()

	professional := g.Generate(Request{Section: SectionSummary, Tone: "professional", Prompt: "backend systems"})
	creative := g.Generate(Request{Section: SectionSummary, Tone: "creative", Prompt: "backend systems"})

	assert.NotEmpty(t, professional.Summary)
	assert.NotEmpty(t, creative.Summary)
	assert.NotEqual(t, professional.Summary, creative.Summary)
	assert.Contains(t, professional.Summary, "backend systems")

	// Unknown tone falls back to professional.
	fallback := g.Generate(Request{Section: SectionSummary, Tone: "whimsical", Prompt: "backend systems"})
	assert.Equal(t, professional.Summary, fallback.Summary)
}

func TestGenerateSummaryLengths(t *testing.T) {
	g := New()

	concise := g.Generate(Request{Section: SectionSummary, Length: "concise"}).Summary
	medium := g.Generate(Request{Section: SectionSummary, Length: "medium"}).Summary
	detailed := g.Generate(Request{Section: SectionSummary, Length: "detailed"}).Summary

	assert.Less(t, len(concise), len(medium))
	assert.Less(t, len(medium), len(detailed))
}

func TestGenerateExperienceDeterministicWithSource(t *testing.T) {
	a := NewWithSource(rand.NewSource(42))
	b := NewWithSource(rand.NewSource(42))

	req := Request{Section: SectionExperience, Tailoring: true, JobDescription: "data engineering role"}
	assert.Equal(t, a.Generate(req).Bullets, b.Generate(req).Bullets)
}

func TestGenerateExperienceTailoring(t *testing.T) {
	g := NewWithSource(rand.NewSource(1))

	data := g.Generate(Request{Section: SectionExperience, Tailoring: true, JobDescription: "big data platform"})
	joined := strings.Join(data.Bullets, " ")
	assert.Contains(t, joined, "data pipelines")

	software := g.Generate(Request{Section: SectionExperience, Tailoring: true, JobDescription: "software team"})
	assert.Contains(t, strings.Join(software.Bullets, " "), "requests per day")

	management := g.Generate(Request{Section: SectionExperience, Tailoring: true, JobDescription: "management track"})
	assert.Contains(t, strings.Join(management.Bullets, " "), "cycle time")
}

func TestGenerateExperienceBulletCap(t *testing.T) {
	g := New()
	for _, tailoring := range []bool{true, false} {
		bullets := g.Generate(Request{Section: SectionExperience, Tailoring: tailoring, JobDescription: "anything"}).Bullets
		assert.LessOrEqual(t, len(bullets), 4)
		assert.NotEmpty(t, bullets)
	}
}

func TestGenerateSkillsSplitsPrompt(t *testing.T) {
	g := New()
	result := g.Generate(Request{Section: SectionSkills, Prompt: "Go, SQL , ,Docker,"})
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, result.Skills)
}

func TestGenerateProjectAndEducation(t *testing.T) {
	g := New()

	project := g.Generate(Request{Section: SectionProjects, Prompt: "Chess Engine"})
	require.NotNil(t, project.Project)
	assert.Equal(t, "Chess Engine", project.Project.Name)
	assert.NotEmpty(t, project.Project.ID)
	assert.NotEmpty(t, project.Project.Bullets)

	edu := g.Generate(Request{Section: SectionEducation})
	require.NotNil(t, edu.Education)
	assert.Equal(t, "State University", edu.Education.School)
}

func TestGenerateUnknownSectionFallsBackToText(t *testing.T) {
	g := New()
	result := g.Generate(Request{Section: "cover-letter", Prompt: "say hi"})
	assert.Contains(t, result.Text, "say hi")
}
