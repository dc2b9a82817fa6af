package transfer

import (
	"time"

	"roleready-backend/internal/resumes"
)

// Formatting holds the style knobs carried alongside resume content.
type Formatting struct {
	Template    string `json:"template"`
	Layout      string `json:"layout"`
	FontSize    string `json:"fontSize"`
	FontFamily  string `json:"fontFamily"`
	AccentColor string `json:"accentColor"`
	Margin      string `json:"margin"`
	LineSpacing string `json:"lineSpacing"`
}

// AIPreferences records the tone/length selectors used for generation.
type AIPreferences struct {
	Tone   string `json:"tone"`
	Length string `json:"length"`
}

// Session is the complete editing state a client works with: resume content,
// presentation metadata, file name, and preferences.
type Session struct {
	Data       resumes.ResumeData  `json:"data"`
	Meta       resumes.SectionMeta `json:"meta"`
	FileName   string              `json:"fileName"`
	Formatting Formatting          `json:"formatting"`
	Prefs      AIPreferences       `json:"aiPreferences"`
}

// Envelope is the wire format for full-session export and import. Every
// field is optional on import; only present keys are applied.
type Envelope struct {
	ResumeData        *resumes.ResumeData     `json:"resumeData,omitempty"`
	CustomSections    []resumes.CustomSection `json:"customSections,omitempty"`
	SectionOrder      []string                `json:"sectionOrder,omitempty"`
	SectionVisibility map[string]bool         `json:"sectionVisibility,omitempty"`
	SectionNames      map[string]string       `json:"sectionNames,omitempty"`
	ResumeFileName    string                  `json:"resumeFileName,omitempty"`
	Formatting        *Formatting             `json:"formatting,omitempty"`
	AIPreferences     *AIPreferences          `json:"aiPreferences,omitempty"`
	ExportedAt        string                  `json:"exportedAt,omitempty"`
}

// DefaultFormatting returns the style defaults for new sessions.
func DefaultFormatting() Formatting {
	return Formatting{
		Template:    TemplateATS,
		Layout:      LayoutOneColumn,
		FontSize:    "11pt",
		FontFamily:  "Helvetica, Arial, sans-serif",
		AccentColor: "#2b6cb0",
		Margin:      "1.5cm",
		LineSpacing: "1.4",
	}
}

// BuildEnvelope snapshots a session into the export wire format.
func BuildEnvelope(s Session, now time.Time) Envelope {
	data := s.Data
	formatting := s.Formatting
	prefs := s.Prefs
	return Envelope{
		ResumeData:        &data,
		CustomSections:    s.Meta.CustomSections,
		SectionOrder:      s.Meta.Order,
		SectionVisibility: s.Meta.Visibility,
		SectionNames:      s.Meta.Names,
		ResumeFileName:    s.FileName,
		Formatting:        &formatting,
		AIPreferences:     &prefs,
		ExportedAt:        now.UTC().Format(time.RFC3339),
	}
}
