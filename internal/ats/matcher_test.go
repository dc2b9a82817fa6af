package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchEmptyJobDescription(t *testing.T) {
	_, err := Match([]string{"Go"}, "   \n\t")
	assert.ErrorIs(t, err, ErrEmptyJobDescription)
}

func TestMatchSkillsAgainstDescription(t *testing.T) {
	jd := "We need React and Node.js experience. SQL is a plus."
	result, err := Match([]string{"React", "node.js", "Rust"}, jd)
	require.NoError(t, err)

	assert.Equal(t, []string{"React", "node.js"}, result.Matched)
	assert.NotContains(t, result.Matched, "Rust")
}

func TestMatchMissingIsReferenceMinusSkills(t *testing.T) {
	jd := "Anything at all"
	result, err := Match([]string{"javascript", "PYTHON", "React", "Node.js", "SQL", "AWS", "Docker", "Git"}, jd)
	require.NoError(t, err)

	// Every reference keyword is covered case-insensitively.
	assert.Empty(t, result.Missing)

	result, err = Match([]string{"React"}, jd)
	require.NoError(t, err)
	assert.Equal(t, []string{"JavaScript", "Python", "Node.js", "SQL", "AWS", "Docker", "Git"}, result.Missing)
}

func TestMatchScoreFormula(t *testing.T) {
	// 2 matched, 6 missing reference keywords: 100*2/8 = 25.
	jd := "Looking for React and SQL developers"
	result, err := Match([]string{"React", "SQL"}, jd)
	require.NoError(t, err)

	assert.Len(t, result.Matched, 2)
	assert.Len(t, result.Missing, 6)
	assert.Equal(t, 25, result.Score)
}

func TestMatchScoreZeroWhenNothingToScore(t *testing.T) {
	assert.Equal(t, 0, score(0, 0))
	assert.Equal(t, 100, score(5, 0))
	assert.Equal(t, 0, score(0, 5))
}

func TestMatchIgnoresBlankSkills(t *testing.T) {
	result, err := Match([]string{"", "  ", "Go"}, "Go developers wanted")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, result.Matched)
}

func TestReferenceKeywordsIsACopy(t *testing.T) {
	kws := ReferenceKeywords()
	kws[0] = "mutated"
	assert.Equal(t, "JavaScript", ReferenceKeywords()[0])
}
