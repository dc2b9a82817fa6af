package transfer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"roleready-backend/internal/resumes"
)

// Template identifiers.
const (
	TemplateATS       = "ats"
	TemplateModern    = "modern"
	TemplateCreative  = "creative"
	TemplateExecutive = "executive"
)

// Layout identifiers.
const (
	LayoutOneColumn = "one-column"
	LayoutTwoColumn = "two-column"
	LayoutHybrid    = "hybrid"
)

var templateFonts = map[string]string{
	TemplateATS:       "Helvetica, Arial, sans-serif",
	TemplateModern:    "'Segoe UI', Roboto, sans-serif",
	TemplateCreative:  "Georgia, 'Times New Roman', serif",
	TemplateExecutive: "'Garamond', 'Palatino Linotype', serif",
}

var templateAccents = map[string]string{
	TemplateATS:       "#1a1a1a",
	TemplateModern:    "#2b6cb0",
	TemplateCreative:  "#9b2c2c",
	TemplateExecutive: "#1c3d5a",
}

// ValidTemplate reports whether name is a known template.
func ValidTemplate(name string) bool {
	_, ok := templateFonts[name]
	return ok
}

// ValidLayout reports whether name is a known layout.
func ValidLayout(name string) bool {
	switch name {
	case LayoutOneColumn, LayoutTwoColumn, LayoutHybrid:
		return true
	}
	return false
}

type renderSection struct {
	Key     string
	Title   string
	Content string
}

type renderContext struct {
	Data       resumes.ResumeData
	Sections   []renderSection
	Formatting Formatting
	FontFamily template.CSS
	Sidebar    bool
}

// cssFontFamily whitelists a font stack down to characters that are safe in a
// CSS value. Gin's template engine would otherwise reject quoted font names.
func cssFontFamily(raw string) template.CSS {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == ',', r == '-':
			b.WriteRune(r)
		}
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		out = "sans-serif"
	}
	return template.CSS(out)
}

// RenderHTML produces a standalone HTML document for the session using its
// formatting choices. Hidden sections are omitted; sections follow the
// configured order. Two-column and hybrid layouts move skills into a sidebar.
func RenderHTML(s Session) ([]byte, error) {
	formatting := s.Formatting
	if !ValidTemplate(formatting.Template) {
		formatting.Template = TemplateATS
	}
	if !ValidLayout(formatting.Layout) {
		formatting.Layout = LayoutOneColumn
	}
	if formatting.FontFamily == "" {
		formatting.FontFamily = templateFonts[formatting.Template]
	}
	if formatting.AccentColor == "" {
		formatting.AccentColor = templateAccents[formatting.Template]
	}
	if formatting.FontSize == "" {
		formatting.FontSize = "11pt"
	}
	if formatting.Margin == "" {
		formatting.Margin = "1.5cm"
	}
	if formatting.LineSpacing == "" {
		formatting.LineSpacing = "1.4"
	}

	meta := s.Meta
	meta.Normalize()

	ctx := renderContext{
		Data:       s.Data,
		Formatting: formatting,
		FontFamily: cssFontFamily(formatting.FontFamily),
		Sidebar:    formatting.Layout != LayoutOneColumn,
	}
	for _, key := range meta.Order {
		if !meta.Visibility[key] {
			continue
		}
		if ctx.Sidebar && key == resumes.SectionSkills {
			continue
		}
		section := renderSection{Key: key, Title: meta.SectionTitle(key)}
		for _, cs := range meta.CustomSections {
			if cs.ID == key {
				section.Content = cs.Content
				break
			}
		}
		ctx.Sections = append(ctx.Sections, section)
	}

	var buf bytes.Buffer
	if err := resumeTemplate.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("render resume html: %w", err)
	}
	return buf.Bytes(), nil
}

var resumeTemplate = template.Must(template.New("resume").Parse(resumeTemplateText))

const resumeTemplateText = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Data.Name}}</title>
<style>
  body {
    font-family: {{.FontFamily}};
    font-size: {{.Formatting.FontSize}};
    line-height: {{.Formatting.LineSpacing}};
    margin: {{.Formatting.Margin}};
    color: #222;
  }
  h1 { margin: 0; font-size: 1.8em; color: {{.Formatting.AccentColor}}; }
  h2 {
    font-size: 1.1em;
    text-transform: uppercase;
    letter-spacing: 0.05em;
    color: {{.Formatting.AccentColor}};
    border-bottom: 1px solid {{.Formatting.AccentColor}};
    padding-bottom: 2px;
    margin: 1.2em 0 0.4em;
  }
  .contact { color: #555; margin-top: 0.3em; }
  .contact span + span::before { content: " \2022  "; color: #999; }
  .entry { margin-bottom: 0.8em; }
  .entry-head { display: flex; justify-content: space-between; }
  .entry-head .role { font-weight: bold; }
  .entry-head .period { color: #666; white-space: nowrap; }
  .entry .org { font-style: italic; color: #444; }
  ul { margin: 0.3em 0 0; padding-left: 1.2em; }
  .skills span {
    display: inline-block;
    background: #f0f0f0;
    border-radius: 3px;
    padding: 1px 7px;
    margin: 2px 3px 2px 0;
  }
{{- if .Sidebar}}
  .columns { display: flex; gap: 2em; }
  .main { flex: 2.2; }
  .side { flex: 1; }
{{- end}}
</style>
</head>
<body>
<header>
  <h1>{{.Data.Name}}</h1>
  {{- if .Data.Title}}<div>{{.Data.Title}}</div>{{end}}
  <div class="contact">
    {{- if .Data.Email}}<span>{{.Data.Email}}</span>{{end}}
    {{- if .Data.Phone}}<span>{{.Data.Phone}}</span>{{end}}
    {{- if .Data.Location}}<span>{{.Data.Location}}</span>{{end}}
    {{- if .Data.LinkedIn}}<span>{{.Data.LinkedIn}}</span>{{end}}
    {{- if .Data.GitHub}}<span>{{.Data.GitHub}}</span>{{end}}
  </div>
</header>
{{- if .Sidebar}}
<div class="columns">
<div class="main">
{{- end}}
{{- range .Sections}}
{{- if eq .Key "summary"}}{{if $.Data.Summary}}
<h2>{{.Title}}</h2>
<p>{{$.Data.Summary}}</p>
{{- end}}
{{- else if eq .Key "experience"}}{{if $.Data.Experience}}
<h2>{{.Title}}</h2>
{{- range $.Data.Experience}}
<div class="entry">
  <div class="entry-head"><span class="role">{{.Role}}</span><span class="period">{{.Period}}{{if .EndPeriod}} &ndash; {{.EndPeriod}}{{end}}</span></div>
  <div class="org">{{.Company}}{{if .Location}}, {{.Location}}{{end}}</div>
  {{- if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{- end}}
{{- end}}
{{- else if eq .Key "projects"}}{{if $.Data.Projects}}
<h2>{{.Title}}</h2>
{{- range $.Data.Projects}}
<div class="entry">
  <div class="entry-head"><span class="role">{{.Name}}</span>{{if .Link}}<span class="period">{{.Link}}</span>{{end}}</div>
  {{- if .Subtitle}}<div class="org">{{.Subtitle}}</div>{{end}}
  {{- if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{- end}}
{{- end}}
{{- else if eq .Key "education"}}{{if $.Data.Education}}
<h2>{{.Title}}</h2>
{{- range $.Data.Education}}
<div class="entry">
  <div class="entry-head"><span class="role">{{.Degree}}</span><span class="period">{{.StartDate}}{{if .EndDate}} &ndash; {{.EndDate}}{{end}}</span></div>
  <div class="org">{{.School}}{{if .Location}}, {{.Location}}{{end}}{{if .GPA}} &middot; GPA {{.GPA}}{{end}}</div>
</div>
{{- end}}
{{- end}}
{{- else if eq .Key "certifications"}}{{if $.Data.Certifications}}
<h2>{{.Title}}</h2>
{{- range $.Data.Certifications}}
<div class="entry">
  <div class="entry-head"><span class="role">{{.Name}}</span>{{if .Link}}<span class="period">{{.Link}}</span>{{end}}</div>
  {{- if .Issuer}}<div class="org">{{.Issuer}}</div>{{end}}
</div>
{{- end}}
{{- end}}
{{- else if eq .Key "skills"}}{{if $.Data.Skills}}
<h2>{{.Title}}</h2>
<div class="skills">{{range $.Data.Skills}}<span>{{.}}</span>{{end}}</div>
{{- end}}
{{- else if .Content}}
<h2>{{.Title}}</h2>
<p>{{.Content}}</p>
{{- end}}
{{- end}}
{{- if .Sidebar}}
</div>
<div class="side">
{{- if .Data.Skills}}
<h2>Skills</h2>
<div class="skills">{{range .Data.Skills}}<span>{{.}}</span>{{end}}</div>
{{- end}}
</div>
</div>
{{- end}}
</body>
</html>
`
