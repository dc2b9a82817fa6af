package ats

import (
	"fmt"
	"strings"
)

// Tone and length selectors shared with the content generator.
const (
	ToneProfessional = "professional"
	ToneCreative     = "creative"
	ToneExecutive    = "executive"
	ToneTechnical    = "technical"

	LengthConcise  = "concise"
	LengthMedium   = "medium"
	LengthDetailed = "detailed"
)

// Recommendations builds an ordered list of suggestion strings from a match
// outcome. Selection is template lookup keyed by length, with a tone-keyed
// word substitution pass; nothing here is generated.
func Recommendations(result MatchResult, tone, length string) []string {
	recs := []string{}

	if len(result.Missing) > 0 {
		recs = append(recs, fmt.Sprintf("Add these keywords to your skills section: %s.", strings.Join(result.Missing, ", ")))
	}

	switch normalizeSelector(length, LengthMedium) {
	case LengthConcise:
		recs = append(recs,
			"Keep bullet points short and lead with action verbs.",
			"Trim your summary to two sentences focused on the role.",
		)
	case LengthDetailed:
		recs = append(recs,
			"Expand each role with 3-4 bullet points using action verbs and a measurable result.",
			"Add context to your summary: years of experience, domains, and one standout achievement.",
			"Mirror phrasing from the job description where it honestly applies.",
		)
	default:
		recs = append(recs,
			"Start each bullet point with action verbs and include at least one metric per role.",
			"Align your summary with the top requirements in the job description.",
		)
	}

	if len(result.Matched) > 0 {
		recs = append(recs, fmt.Sprintf("Lead with your strongest matches: %s.", strings.Join(result.Matched, ", ")))
	}

	return applyTone(recs, normalizeSelector(tone, ToneProfessional))
}

func applyTone(recs []string, tone string) []string {
	out := make([]string, len(recs))
	for i, rec := range recs {
		switch tone {
		case ToneTechnical:
			rec = strings.ReplaceAll(rec, "action verbs", "technical action verbs")
		case ToneExecutive:
			rec = strings.ReplaceAll(rec, "action verbs", "leadership verbs")
		case ToneCreative:
			rec = strings.ReplaceAll(rec, "action verbs", "vivid action verbs")
		}
		out[i] = rec
	}
	return out
}

func normalizeSelector(raw, def string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return def
	}
	return s
}
