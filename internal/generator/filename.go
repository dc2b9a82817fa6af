package generator

import (
	"strings"
	"time"
	"unicode"
)

// SmartFileName builds a download-friendly file name from the resume owner's
// name and title plus a year-month stamp, e.g. "Alex_Morgan_Software_Engineer_2026-08".
func SmartFileName(name, title string, now time.Time) string {
	namePart := slugWord(name)
	if namePart == "" {
		namePart = "Resume"
	}
	titlePart := slugWord(title)
	if titlePart == "" {
		titlePart = "Untitled"
	}
	return namePart + "_" + titlePart + "_" + now.Format("2006-01")
}

// slugWord keeps letters and digits, collapsing everything else to single
// underscores with none leading or trailing.
func slugWord(s string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if r > unicode.MaxASCII {
				continue
			}
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	return strings.Trim(b.String(), "_")
}
