package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"roleready-backend/internal/resumes"
)

// Result holds the outcome of validating a resume. Errors block export
// readiness; warnings are advisory only.
type Result struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

var (
	validate   = validator.New()
	phoneRegex = regexp.MustCompile(`^[\d\s()+.\-]{7,20}$`)
	gpaRegex   = regexp.MustCompile(`^\d(\.\d{1,2})?$|^\d\.\d{1,2}\s*/\s*\d(\.\d{1,2})?$`)
)

const (
	summaryMinWords = 10
	summaryMaxWords = 150
	minSkills       = 3
	maxSkills       = 30
	maxBullets      = 8
)

// Validate runs all per-entity checks against the resume and its section
// metadata and aggregates the findings.
func Validate(data resumes.ResumeData, meta resumes.SectionMeta) Result {
	res := Result{Errors: []string{}, Warnings: []string{}}

	validateContact(data, &res)
	validateSummary(data, &res)
	validateSkills(data, &res)
	for i, item := range data.Experience {
		validateExperience(i, item, &res)
	}
	for i, item := range data.Projects {
		validateProject(i, item, &res)
	}
	for i, item := range data.Education {
		validateEducation(i, item, &res)
	}
	for i, item := range data.Certifications {
		validateCertification(i, item, &res)
	}
	validateSections(meta, &res)

	res.IsValid = len(res.Errors) == 0
	return res
}

// ExportReady reports whether the resume passes the blocking checks.
func ExportReady(data resumes.ResumeData, meta resumes.SectionMeta) bool {
	return Validate(data, meta).IsValid
}

func validateContact(data resumes.ResumeData, res *Result) {
	if strings.TrimSpace(data.Name) == "" {
		res.Errors = append(res.Errors, "Name is required")
	}
	email := strings.TrimSpace(data.Email)
	if email == "" {
		res.Errors = append(res.Errors, "An email address is required")
	} else if err := validate.Var(email, "email"); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("%q is not a valid email address", email))
	}
	phone := strings.TrimSpace(data.Phone)
	if phone == "" {
		res.Errors = append(res.Errors, "Phone number is required")
	} else if !phoneRegex.MatchString(phone) {
		res.Errors = append(res.Errors, fmt.Sprintf("Phone number %q has an unexpected format", phone))
	}
	if strings.TrimSpace(data.Title) == "" {
		res.Warnings = append(res.Warnings, "Add a professional title under your name")
	}
	checkLink(data.LinkedIn, "LinkedIn", res)
	checkLink(data.GitHub, "GitHub", res)
	checkLink(data.Website, "Website", res)
}

func validateSummary(data resumes.ResumeData, res *Result) {
	summary := strings.TrimSpace(data.Summary)
	if summary == "" {
		res.Warnings = append(res.Warnings, "A professional summary helps recruiters; consider adding one")
		return
	}
	words := len(strings.Fields(summary))
	if words < summaryMinWords {
		res.Warnings = append(res.Warnings, fmt.Sprintf("Summary is short (%d words); aim for at least %d", words, summaryMinWords))
	}
	if words > summaryMaxWords {
		res.Warnings = append(res.Warnings, fmt.Sprintf("Summary is long (%d words); keep it under %d", words, summaryMaxWords))
	}
}

func validateSkills(data resumes.ResumeData, res *Result) {
	count := 0
	for _, s := range data.Skills {
		if strings.TrimSpace(s) != "" {
			count++
		}
	}
	if count == 0 {
		res.Errors = append(res.Errors, "At least one skill is required")
		return
	}
	if count < minSkills {
		res.Warnings = append(res.Warnings, fmt.Sprintf("Only %d skills listed; %d or more reads better", count, minSkills))
	}
	if count > maxSkills {
		res.Warnings = append(res.Warnings, fmt.Sprintf("%d skills listed; trim to the %d most relevant", count, maxSkills))
	}
}

func validateExperience(idx int, item resumes.ExperienceItem, res *Result) {
	label := fmt.Sprintf("Experience entry %d", idx+1)
	if strings.TrimSpace(item.Company) == "" {
		res.Errors = append(res.Errors, label+": company is required")
	}
	if strings.TrimSpace(item.Role) == "" {
		res.Errors = append(res.Errors, label+": role is required")
	}
	bullets := 0
	for _, b := range item.Bullets {
		if strings.TrimSpace(b) != "" {
			bullets++
		}
	}
	if bullets == 0 {
		res.Warnings = append(res.Warnings, label+": add at least one achievement bullet")
	}
	if bullets > maxBullets {
		res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %d bullets; keep the strongest %d", label, bullets, maxBullets))
	}
}

func validateProject(idx int, item resumes.ProjectItem, res *Result) {
	label := fmt.Sprintf("Project %d", idx+1)
	if strings.TrimSpace(item.Name) == "" {
		res.Errors = append(res.Errors, label+": name is required")
	}
	checkLink(item.Link, label+" link", res)
}

func validateEducation(idx int, item resumes.EducationItem, res *Result) {
	label := fmt.Sprintf("Education entry %d", idx+1)
	if strings.TrimSpace(item.School) == "" {
		res.Errors = append(res.Errors, label+": school is required")
	}
	if strings.TrimSpace(item.Degree) == "" {
		res.Warnings = append(res.Warnings, label+": add the degree earned")
	}
	gpa := strings.TrimSpace(item.GPA)
	if gpa != "" && !gpaRegex.MatchString(gpa) {
		res.Warnings = append(res.Warnings, fmt.Sprintf("%s: GPA %q has an unexpected format", label, gpa))
	}
}

func validateCertification(idx int, item resumes.CertificationItem, res *Result) {
	label := fmt.Sprintf("Certification %d", idx+1)
	if strings.TrimSpace(item.Name) == "" {
		res.Errors = append(res.Errors, label+": name is required")
	}
	if strings.TrimSpace(item.Issuer) == "" {
		res.Warnings = append(res.Warnings, label+": add the issuing organization")
	}
	checkLink(item.Link, label+" link", res)
}

func validateSections(meta resumes.SectionMeta, res *Result) {
	for _, cs := range meta.CustomSections {
		if strings.TrimSpace(cs.Name) == "" {
			res.Warnings = append(res.Warnings, "A custom section is missing a name")
		}
	}
}

// checkLink warns on malformed URLs. Links may omit the protocol, so a bare
// host is tried with https:// before flagging.
func checkLink(link, label string, res *Result) {
	link = strings.TrimSpace(link)
	if link == "" {
		return
	}
	candidate := link
	if !strings.Contains(candidate, "://") {
		candidate = "https://" + candidate
	}
	if err := validate.Var(candidate, "url"); err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("%s %q does not look like a valid URL", label, link))
	}
}
