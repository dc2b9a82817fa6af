package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"roleready-backend/internal/resumes"
)

// Section selectors understood by Generate.
const (
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionSkills     = "skills"
	SectionProjects   = "projects"
	SectionEducation  = "education"
)

// Request describes a single generation call.
type Request struct {
	Section        string `json:"section"`
	Prompt         string `json:"prompt"`
	Tone           string `json:"tone"`
	Length         string `json:"length"`
	Tailoring      bool   `json:"tailoring"`
	JobDescription string `json:"jobDescription"`
}

// Result carries the generated content; which field is set depends on the
// requested section.
type Result struct {
	Summary   string                 `json:"summary,omitempty"`
	Bullets   []string               `json:"bullets,omitempty"`
	Skills    []string               `json:"skills,omitempty"`
	Project   *resumes.ProjectItem   `json:"project,omitempty"`
	Education *resumes.EducationItem `json:"education,omitempty"`
	Text      string                 `json:"text,omitempty"`
}

// Generator produces resume content from local string templates. There is no
// model behind it; filler metrics come from the injected random source so
// tests can pin them.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Generator seeded from the current time.
func New() *Generator {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource returns a Generator with a caller-controlled random source.
func NewWithSource(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Generate renders content for the requested section.
func (g *Generator) Generate(req Request) Result {
	switch strings.ToLower(strings.TrimSpace(req.Section)) {
	case SectionSummary:
		return Result{Summary: g.summary(req)}
	case SectionExperience:
		return Result{Bullets: g.experienceBullets(req)}
	case SectionSkills:
		return Result{Skills: splitSkills(req.Prompt)}
	case SectionProjects:
		p := g.project(req)
		return Result{Project: &p}
	case SectionEducation:
		e := g.education(req)
		return Result{Education: &e}
	default:
		return Result{Text: fmt.Sprintf("Here is a starting point based on your request: %s. Refine it with specifics from your own experience.", strings.TrimSpace(req.Prompt))}
	}
}

var summaryOpeners = map[string]string{
	"professional": "Results-driven professional with a track record of delivering high-quality work on schedule.",
	"creative":     "Curious builder who turns rough ideas into polished products people enjoy using.",
	"executive":    "Strategic leader who aligns teams around measurable outcomes and sustainable growth.",
	"technical":    "Hands-on engineer focused on robust architecture, clean code, and operational excellence.",
}

func (g *Generator) summary(req Request) string {
	opener, ok := summaryOpeners[strings.ToLower(strings.TrimSpace(req.Tone))]
	if !ok {
		opener = summaryOpeners["professional"]
	}

	focus := strings.TrimSpace(req.Prompt)
	if focus == "" {
		focus = "your field"
	}

	body := fmt.Sprintf("%s Experienced in %s, with strengths in collaboration and continuous improvement.", opener, focus)

	switch strings.ToLower(strings.TrimSpace(req.Length)) {
	case "concise":
		return opener
	case "detailed":
		return body + " Known for translating ambiguous requirements into concrete plans, communicating clearly with stakeholders, and raising the bar for quality across the team."
	default:
		return body
	}
}

func (g *Generator) experienceBullets(req Request) []string {
	g.mu.Lock()
	improvement := 20 + g.rng.Intn(40)
	teamSize := 3 + g.rng.Intn(8)
	throughput := 10 + g.rng.Intn(50)
	g.mu.Unlock()

	bullets := []string{
		fmt.Sprintf("Delivered key initiatives ahead of schedule, improving team output by %d%%", improvement),
		fmt.Sprintf("Collaborated with a cross-functional team of %d to ship customer-facing features", teamSize),
	}

	if req.Tailoring {
		desc := strings.ToLower(req.JobDescription)
		switch {
		case strings.Contains(desc, "data"):
			bullets = append(bullets, fmt.Sprintf("Built data pipelines processing %dk records daily with automated quality checks", throughput))
		case strings.Contains(desc, "software"):
			bullets = append(bullets, fmt.Sprintf("Designed and shipped services handling %dk requests per day with 99.9%% uptime", throughput))
		case strings.Contains(desc, "management"):
			bullets = append(bullets, fmt.Sprintf("Led planning and delivery for a team of %d, cutting cycle time by %d%%", teamSize, improvement))
		default:
			bullets = append(bullets, "Adapted quickly to new tools and processes, becoming a go-to resource for the team")
		}
	} else {
		bullets = append(bullets, "Identified and resolved process bottlenecks, reducing turnaround time")
	}

	bullets = append(bullets, "Documented decisions and mentored teammates to spread knowledge across the team")
	if len(bullets) > 4 {
		bullets = bullets[:4]
	}
	return bullets
}

func (g *Generator) project(req Request) resumes.ProjectItem {
	name := strings.TrimSpace(req.Prompt)
	if name == "" {
		name = "Portfolio Project"
	}
	return resumes.ProjectItem{
		ID:       resumes.NewItemID(),
		Name:     name,
		Subtitle: fmt.Sprintf("Self-directed project exploring %s", strings.ToLower(name)),
		Link:     "",
		Skills:   []string{},
		Bullets: []string{
			"Scoped, designed, and built the project end to end",
			"Wrote documentation and tests to make the work reusable",
		},
		CustomFields: []resumes.CustomField{},
	}
}

func (g *Generator) education(req Request) resumes.EducationItem {
	school := strings.TrimSpace(req.Prompt)
	if school == "" {
		school = "State University"
	}
	return resumes.EducationItem{
		ID:           resumes.NewItemID(),
		School:       school,
		Degree:       "Bachelor's Degree",
		StartDate:    "",
		EndDate:      "",
		GPA:          "",
		Location:     "",
		CustomFields: []resumes.CustomField{},
	}
}

func splitSkills(prompt string) []string {
	parts := strings.Split(prompt, ",")
	out := []string{}
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
