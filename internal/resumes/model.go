package resumes

import "github.com/google/uuid"

// Present is the sentinel end date for ongoing roles. Formatting and
// rendering code treat it as "no end date" rather than a literal value.
const Present = "Present"

// Canonical section keys. Custom sections use their generated IDs as keys.
const (
	SectionSummary        = "summary"
	SectionSkills         = "skills"
	SectionExperience     = "experience"
	SectionProjects       = "projects"
	SectionEducation      = "education"
	SectionCertifications = "certifications"
)

// CustomField is a free-form label/value pair attachable to any item.
type CustomField struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ExperienceItem is one work-history entry.
type ExperienceItem struct {
	ID           string        `json:"id"`
	Company      string        `json:"company"`
	Role         string        `json:"role"`
	Period       string        `json:"period"`
	EndPeriod    string        `json:"endPeriod"`
	Location     string        `json:"location"`
	Skills       []string      `json:"skills"`
	Bullets      []string      `json:"bullets"`
	CustomFields []CustomField `json:"customFields"`
}

// ProjectItem is one project entry.
type ProjectItem struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Subtitle     string        `json:"subtitle"`
	Link         string        `json:"link"`
	Skills       []string      `json:"skills"`
	Bullets      []string      `json:"bullets"`
	CustomFields []CustomField `json:"customFields"`
}

// EducationItem is one education entry.
type EducationItem struct {
	ID           string        `json:"id"`
	School       string        `json:"school"`
	Degree       string        `json:"degree"`
	StartDate    string        `json:"startDate"`
	EndDate      string        `json:"endDate"`
	GPA          string        `json:"gpa"`
	Location     string        `json:"location"`
	CustomFields []CustomField `json:"customFields"`
}

// CertificationItem is one certification entry.
type CertificationItem struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Issuer       string        `json:"issuer"`
	Link         string        `json:"link"`
	Skills       []string      `json:"skills"`
	CustomFields []CustomField `json:"customFields"`
}

// ResumeData is the canonical resume document. Empty string means "unset"
// for the contact scalars; there are no null sentinels.
type ResumeData struct {
	Name           string              `json:"name"`
	Title          string              `json:"title"`
	Email          string              `json:"email"`
	Phone          string              `json:"phone"`
	Location       string              `json:"location"`
	LinkedIn       string              `json:"linkedin"`
	GitHub         string              `json:"github"`
	Website        string              `json:"website"`
	Summary        string              `json:"summary"`
	Skills         []string            `json:"skills"`
	Experience     []ExperienceItem    `json:"experience"`
	Projects       []ProjectItem       `json:"projects"`
	Education      []EducationItem     `json:"education"`
	Certifications []CertificationItem `json:"certifications"`
}

// CustomSection is a free-form section outside the canonical six.
type CustomSection struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// SectionMeta carries presentation state for a resume: which sections are
// shown, in what order, and under what display names.
type SectionMeta struct {
	Visibility     map[string]bool   `json:"sectionVisibility"`
	Order          []string          `json:"sectionOrder"`
	Names          map[string]string `json:"sectionNames"`
	CustomSections []CustomSection   `json:"customSections"`
}

// NewItemID mints an identifier for items and custom fields. UUIDs rather
// than timestamps so rapid successive adds can never collide.
func NewItemID() string {
	return uuid.NewString()
}

// DedupeSkills returns skills with duplicates removed case-insensitively,
// keeping first-occurrence order. Duplicates are legal in ResumeData; this
// is an explicit operation, not an invariant.
func DedupeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		key := normalizeSkill(s)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

// AddCustomField appends a new field and returns the new slice.
func AddCustomField(fields []CustomField, name, value string) []CustomField {
	out := make([]CustomField, len(fields), len(fields)+1)
	copy(out, fields)
	return append(out, CustomField{ID: NewItemID(), Name: name, Value: value})
}

// RemoveCustomField returns a new slice without the field with the given ID.
// Order of the remaining fields is preserved.
func RemoveCustomField(fields []CustomField, id string) []CustomField {
	out := make([]CustomField, 0, len(fields))
	for _, f := range fields {
		if f.ID == id {
			continue
		}
		out = append(out, f)
	}
	return out
}
