package resumes

import "strings"

var canonicalSections = []string{
	SectionSummary,
	SectionSkills,
	SectionExperience,
	SectionProjects,
	SectionEducation,
	SectionCertifications,
}

var defaultSectionNames = map[string]string{
	SectionSummary:        "Professional Summary",
	SectionSkills:         "Skills",
	SectionExperience:     "Experience",
	SectionProjects:       "Projects",
	SectionEducation:      "Education",
	SectionCertifications: "Certifications",
}

// DefaultSectionMeta returns presentation metadata for a fresh resume:
// all canonical sections visible, default order, default display names.
func DefaultSectionMeta() SectionMeta {
	visibility := make(map[string]bool, len(canonicalSections))
	names := make(map[string]string, len(canonicalSections))
	order := make([]string, len(canonicalSections))
	for i, key := range canonicalSections {
		visibility[key] = true
		names[key] = defaultSectionNames[key]
		order[i] = key
	}
	return SectionMeta{
		Visibility:     visibility,
		Order:          order,
		Names:          names,
		CustomSections: []CustomSection{},
	}
}

// Normalize repairs the invariant that Order is a permutation of the keys in
// Visibility plus the custom section IDs: unknown keys are dropped, missing
// keys are appended in canonical-then-custom order, and nil maps are filled.
func (m *SectionMeta) Normalize() {
	if m.Visibility == nil {
		m.Visibility = make(map[string]bool)
	}
	if m.Names == nil {
		m.Names = make(map[string]string)
	}
	for _, key := range canonicalSections {
		if _, ok := m.Visibility[key]; !ok {
			m.Visibility[key] = true
		}
		if _, ok := m.Names[key]; !ok {
			m.Names[key] = defaultSectionNames[key]
		}
	}

	valid := make(map[string]struct{}, len(m.Visibility)+len(m.CustomSections))
	for key := range m.Visibility {
		valid[key] = struct{}{}
	}
	for _, cs := range m.CustomSections {
		valid[cs.ID] = struct{}{}
	}

	seen := make(map[string]struct{}, len(valid))
	order := make([]string, 0, len(valid))
	for _, key := range m.Order {
		if _, ok := valid[key]; !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		order = append(order, key)
	}
	for _, key := range canonicalSections {
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			order = append(order, key)
		}
	}
	for key := range m.Visibility {
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			order = append(order, key)
		}
	}
	for _, cs := range m.CustomSections {
		if _, ok := seen[cs.ID]; !ok {
			seen[cs.ID] = struct{}{}
			order = append(order, cs.ID)
		}
	}
	m.Order = order
}

// SectionTitle resolves the display name for a section key, falling back to
// the custom section name or the canonical default.
func (m *SectionMeta) SectionTitle(key string) string {
	if name, ok := m.Names[key]; ok && strings.TrimSpace(name) != "" {
		return name
	}
	for _, cs := range m.CustomSections {
		if cs.ID == key {
			return cs.Name
		}
	}
	if name, ok := defaultSectionNames[key]; ok {
		return name
	}
	return key
}

// AddCustomSection appends a custom section and keeps Order/Visibility in sync.
func (m *SectionMeta) AddCustomSection(name, content string) CustomSection {
	cs := CustomSection{ID: NewItemID(), Name: name, Content: content}
	m.CustomSections = append(m.CustomSections, cs)
	if m.Visibility == nil {
		m.Visibility = make(map[string]bool)
	}
	m.Visibility[cs.ID] = true
	m.Order = append(m.Order, cs.ID)
	return cs
}

// RemoveCustomSection deletes a custom section and its presentation entries.
func (m *SectionMeta) RemoveCustomSection(id string) bool {
	idx := -1
	for i, cs := range m.CustomSections {
		if cs.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	m.CustomSections = append(m.CustomSections[:idx], m.CustomSections[idx+1:]...)
	delete(m.Visibility, id)
	for i, key := range m.Order {
		if key == id {
			m.Order = append(m.Order[:i], m.Order[i+1:]...)
			break
		}
	}
	return true
}

// MoveSection swaps a section with its neighbor. dir is "up" or "down";
// moves past either end are no-ops.
func MoveSection(order []string, key string, dir string) ([]string, bool) {
	idx := -1
	for i, k := range order {
		if k == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return order, false
	}

	var swap int
	switch strings.ToLower(strings.TrimSpace(dir)) {
	case "up":
		swap = idx - 1
	case "down":
		swap = idx + 1
	default:
		return order, false
	}
	if swap < 0 || swap >= len(order) {
		return order, false
	}

	out := make([]string, len(order))
	copy(out, order)
	out[idx], out[swap] = out[swap], out[idx]
	return out, true
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
