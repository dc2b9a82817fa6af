package ats

import (
	"errors"
	"strings"
)

// ErrEmptyJobDescription is returned before any scoring happens when the
// job description is blank, so the score path never divides by zero.
var ErrEmptyJobDescription = errors.New("job description is empty")

// referenceKeywords is the fixed keyword list the score is measured against.
// It approximates the keyword set a tracking system would screen for.
var referenceKeywords = []string{
	"JavaScript",
	"Python",
	"React",
	"Node.js",
	"SQL",
	"AWS",
	"Docker",
	"Git",
}

// MatchResult holds the outcome of a keyword match.
type MatchResult struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
	Score   int      `json:"score"`
}

// Match compares resume skills against the job description and the reference
// keyword list. Matched skills are those appearing as substrings of the
// lowercased description; missing keywords are reference terms absent from
// the skill list (case-insensitive exact match).
func Match(resumeSkills []string, jobDescription string) (MatchResult, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return MatchResult{}, ErrEmptyJobDescription
	}

	descLower := strings.ToLower(jobDescription)

	matched := []string{}
	for _, skill := range resumeSkills {
		trimmed := strings.TrimSpace(skill)
		if trimmed == "" {
			continue
		}
		if strings.Contains(descLower, strings.ToLower(trimmed)) {
			matched = append(matched, skill)
		}
	}

	have := make(map[string]struct{}, len(resumeSkills))
	for _, skill := range resumeSkills {
		have[strings.ToLower(strings.TrimSpace(skill))] = struct{}{}
	}

	missing := []string{}
	for _, keyword := range referenceKeywords {
		if _, ok := have[strings.ToLower(keyword)]; !ok {
			missing = append(missing, keyword)
		}
	}

	return MatchResult{
		Matched: matched,
		Missing: missing,
		Score:   score(len(matched), len(missing)),
	}, nil
}

// ReferenceKeywords returns a copy of the fixed keyword list.
func ReferenceKeywords() []string {
	out := make([]string, len(referenceKeywords))
	copy(out, referenceKeywords)
	return out
}

func score(matched, missing int) int {
	total := matched + missing
	if total == 0 {
		return 0
	}
	return 100 * matched / total
}
