package resumes

// SeedResume returns the sample resume used for new editing sessions.
func SeedResume() ResumeData {
	return ResumeData{
		Name:     "Alex Morgan",
		Title:    "Software Engineer",
		Email:    "alex.morgan@example.com",
		Phone:    "+1 (555) 010-4242",
		Location: "Seattle, WA",
		LinkedIn: "linkedin.com/in/alexmorgan",
		GitHub:   "github.com/alexmorgan",
		Website:  "",
		Summary:  "Software engineer with 5+ years of experience building web applications and data pipelines. Comfortable owning features end to end, from design through deployment.",
		Skills:   []string{"JavaScript", "Python", "React", "Node.js", "SQL", "AWS"},
		Experience: []ExperienceItem{
			{
				ID:        NewItemID(),
				Company:   "Brightline Systems",
				Role:      "Software Engineer",
				Period:    "2021-06",
				EndPeriod: Present,
				Location:  "Seattle, WA",
				Skills:    []string{"React", "Node.js", "AWS"},
				Bullets: []string{
					"Built and maintained customer-facing dashboards used by 40k monthly users",
					"Reduced page load time by 35% by introducing server-side caching",
					"Mentored two junior engineers through onboarding and first launches",
				},
				CustomFields: []CustomField{},
			},
			{
				ID:        NewItemID(),
				Company:   "Northport Labs",
				Role:      "Junior Developer",
				Period:    "2019-01",
				EndPeriod: "2021-05",
				Location:  "Portland, OR",
				Skills:    []string{"Python", "SQL"},
				Bullets: []string{
					"Automated weekly reporting pipeline, saving 6 hours of manual work per week",
					"Wrote integration tests that caught 3 production-bound regressions",
				},
				CustomFields: []CustomField{},
			},
		},
		Projects: []ProjectItem{
			{
				ID:       NewItemID(),
				Name:     "Trailhead",
				Subtitle: "Open-source hiking route planner",
				Link:     "github.com/alexmorgan/trailhead",
				Skills:   []string{"React", "Node.js"},
				Bullets: []string{
					"Designed REST API serving elevation profiles for 12k routes",
					"Grew to 300+ GitHub stars",
				},
				CustomFields: []CustomField{},
			},
		},
		Education: []EducationItem{
			{
				ID:           NewItemID(),
				School:       "University of Washington",
				Degree:       "B.S. Computer Science",
				StartDate:    "2015-09",
				EndDate:      "2019-06",
				GPA:          "3.7",
				Location:     "Seattle, WA",
				CustomFields: []CustomField{},
			},
		},
		Certifications: []CertificationItem{
			{
				ID:           NewItemID(),
				Name:         "AWS Certified Solutions Architect – Associate",
				Issuer:       "Amazon Web Services",
				Link:         "",
				Skills:       []string{"AWS"},
				CustomFields: []CustomField{},
			},
		},
	}
}
