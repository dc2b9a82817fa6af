package generator

import "strings"

// Input types recognized by DetectInputType.
const (
	InputAuto   = "auto"
	InputPrompt = "prompt"
	InputJob    = "job"
)

var jobKeywords = []string{
	"requirements",
	"qualifications",
	"responsibilities",
	"years of experience",
	"bachelor",
	"required",
	"preferred",
	"we are looking",
	"salary",
	"benefits",
}

var promptKeywords = []string{
	"help me",
	"write a",
	"write my",
	"generate",
	"create a",
	"improve",
	"my resume",
	"please",
}

// DetectInputType guesses whether text is a pasted job posting or a request
// to the assistant. It counts hits from two fixed vocabularies and breaks
// ties with length; ambiguous input comes back as "auto".
func DetectInputType(text string) string {
	lowered := strings.ToLower(text)

	jobHits := countHits(lowered, jobKeywords)
	promptHits := countHits(lowered, promptKeywords)

	if jobHits >= 3 && len(text) > 200 {
		return InputJob
	}
	if promptHits >= 1 && jobHits == 0 {
		return InputPrompt
	}
	if jobHits >= 2 && jobHits > promptHits {
		return InputJob
	}
	if promptHits > jobHits {
		return InputPrompt
	}
	return InputAuto
}

func countHits(lowered string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			hits++
		}
	}
	return hits
}
