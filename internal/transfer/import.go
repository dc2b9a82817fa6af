package transfer

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Import type identifiers accepted by the import endpoint.
const (
	ImportTypeJSON     = "json"
	ImportTypeText     = "text"
	ImportTypeFile     = "file"
	ImportTypeLinkedIn = "linkedin"
)

// ImportResult is the outcome of applying imported content to a session.
type ImportResult struct {
	Session     Session  `json:"session"`
	AppliedKeys []string `json:"appliedKeys"`
	SkippedKeys []string `json:"skippedKeys"`
}

// MergeJSON applies an exported envelope onto the current session. Only
// top-level keys present in the payload are applied; absent keys leave the
// session untouched. Unrecognized keys are reported, not rejected.
func MergeJSON(current Session, raw []byte) (ImportResult, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return ImportResult{}, ErrEmptyImport
	}

	var present map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &present); err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	var envelope Envelope
	if err := json.Unmarshal([]byte(trimmed), &envelope); err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	result := ImportResult{
		Session:     current,
		AppliedKeys: []string{},
		SkippedKeys: []string{},
	}
	for key := range present {
		switch key {
		case "resumeData":
			if envelope.ResumeData != nil {
				result.Session.Data = *envelope.ResumeData
			}
		case "customSections":
			result.Session.Meta.CustomSections = envelope.CustomSections
		case "sectionOrder":
			result.Session.Meta.Order = envelope.SectionOrder
		case "sectionVisibility":
			result.Session.Meta.Visibility = envelope.SectionVisibility
		case "sectionNames":
			result.Session.Meta.Names = envelope.SectionNames
		case "resumeFileName":
			result.Session.FileName = envelope.ResumeFileName
		case "formatting":
			if envelope.Formatting != nil {
				result.Session.Formatting = *envelope.Formatting
			}
		case "aiPreferences":
			if envelope.AIPreferences != nil {
				result.Session.Prefs = *envelope.AIPreferences
			}
		case "exportedAt":
			// Metadata about the export itself, nothing to apply.
			continue
		default:
			result.SkippedKeys = append(result.SkippedKeys, key)
			continue
		}
		result.AppliedKeys = append(result.AppliedKeys, key)
	}
	sort.Strings(result.AppliedKeys)
	sort.Strings(result.SkippedKeys)

	result.Session.Meta.Normalize()
	return result, nil
}

// MergeText applies raw resume text to the session: the first non-blank line
// becomes the candidate name and up to the next three non-blank lines become
// the summary.
func MergeText(current Session, text string) (ImportResult, error) {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		kept = append(kept, line)
		if len(kept) == 4 {
			break
		}
	}
	if len(kept) == 0 {
		return ImportResult{}, ErrEmptyImport
	}

	result := ImportResult{
		Session:     current,
		AppliedKeys: []string{"name"},
		SkippedKeys: []string{},
	}
	result.Session.Data.Name = kept[0]
	if len(kept) > 1 {
		result.Session.Data.Summary = strings.Join(kept[1:], " ")
		result.AppliedKeys = append(result.AppliedKeys, "summary")
	}
	result.Session.Meta.Normalize()
	return result, nil
}

// MergeLinkedIn is a placeholder for profile-based import.
func MergeLinkedIn(Session, string) (ImportResult, error) {
	return ImportResult{}, fmt.Errorf("%w: linkedin", ErrNotImplemented)
}
