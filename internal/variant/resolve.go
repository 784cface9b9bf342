// Package variant derives per-build résumé views from the base model and a role variant.
package variant

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/portfolio-cv/internal/types"
)

// defaultAchievementCount is how many base achievements are shown when a
// variant does not select any.
const defaultAchievementCount = 3

// Lookup returns the effective variant key and configuration. Unknown keys
// fall back to the "general" variant; a model without one yields a zero
// RoleVariant under the "general" key.
func Lookup(base *types.ResumeData, key string) (string, types.RoleVariant) {
	if base != nil {
		if v, ok := base.RoleVariants[key]; ok {
			return key, v
		}
		if v, ok := base.RoleVariants[types.DefaultVariant]; ok {
			return types.DefaultVariant, v
		}
	}
	return types.DefaultVariant, types.RoleVariant{}
}

// Keys lists the configured variant keys, "general" first and the rest sorted.
func Keys(base *types.ResumeData) []string {
	keys := make([]string, 0, len(base.RoleVariants))
	for k := range base.RoleVariants {
		if k != types.DefaultVariant {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if _, ok := base.RoleVariants[types.DefaultVariant]; ok {
		keys = append([]string{types.DefaultVariant}, keys...)
	}
	return keys
}

// Resolve applies the variant named by variantKey and the user overrides to
// base. base is never modified: every list the view can change is copied,
// while education and languages are shared because nothing rewrites them.
func Resolve(base *types.ResumeData, variantKey string, ov types.Overrides) *types.ResolvedView {
	if base == nil {
		base = &types.ResumeData{}
	}
	key, v := Lookup(base, variantKey)

	view := &types.ResolvedView{
		Personal:       resolvePersonal(base.Personal, ov),
		Skills:         resolveSkills(base.Skills, v, ov),
		Experience:     resolveExperience(base.Experience, v),
		Education:      base.Education,
		Certifications: resolveCertifications(base.Certifications, v),
		Projects:       resolveProjects(base.Projects, v, ov.DemoLinks),
		Achievements:   resolveAchievements(base.Achievements, v),
		Languages:      resolveLanguages(base),
		Preferences:    resolvePreferences(base, variantKey, v),
		Variant:        resolveMeta(key, v),
	}
	view.Summary, view.Summaries = resolveSummary(base.Summaries, key, v, ov.Summary)

	if view.Education == nil {
		view.Education = []types.Education{}
	}
	return view
}

func resolvePersonal(p types.Personal, ov types.Overrides) types.Personal {
	out := p
	out.Languages = cloneStrings(p.Languages)

	po := ov.Personal
	if po.Name != "" {
		out.Name = po.Name
	}
	if po.Title != "" {
		out.Title = po.Title
	}
	if po.Location != "" {
		out.Location = po.Location
	}
	if po.Email != "" {
		out.Email = po.Email
	}
	if po.Phone != "" {
		out.Phone = po.Phone
	}

	if ov.Links != nil {
		out.GitHub, out.LinkedIn, out.Portfolio = "", "", ""
		for _, link := range ov.Links {
			switch {
			case strings.Contains(link, "github.com"):
				out.GitHub = link
			case strings.Contains(link, "linkedin.com"):
				out.LinkedIn = link
			case strings.HasPrefix(link, "http"):
				out.Portfolio = link
			}
		}
	}
	return out
}

func resolveSummary(summaries map[string]string, key string, v types.RoleVariant, override string) (string, map[string]string) {
	summaryKey := v.SummaryKey
	if summaryKey == "" {
		summaryKey = key
	}

	text := override
	if text == "" {
		text = summaries[summaryKey]
	}
	if text == "" {
		text = summaries[types.DefaultVariant]
	}

	out := make(map[string]string, len(summaries)+1)
	for k, s := range summaries {
		out[k] = s
	}
	out[types.DefaultVariant] = text
	out[key] = text
	return text, out
}

func resolveSkills(base types.Skills, v types.RoleVariant, ov types.Overrides) types.Skills {
	return types.Skills{
		Technical: cloneStrings(firstNonEmpty(ov.Skills, v.SkillFocus, base.Technical)),
		Tools:     cloneStrings(firstNonEmpty(v.ToolFocus, base.Tools)),
		Soft:      cloneStrings(firstNonEmpty(v.SoftSkills, base.Soft)),
	}
}

func resolveExperience(base []types.Experience, v types.RoleVariant) []types.Experience {
	selected := make([]types.Experience, 0, len(base))
	if v.ExperienceIDs != nil {
		keep := idSet(v.ExperienceIDs)
		for _, e := range base {
			if keep[e.ID] {
				selected = append(selected, e)
			}
		}
	} else {
		selected = append(selected, base...)
	}

	if v.IncludeExperienceIDs != nil {
		include := idSet(v.IncludeExperienceIDs)
		present := make(map[string]bool, len(selected))
		for _, e := range selected {
			present[e.ID] = true
		}
		for _, e := range base {
			if include[e.ID] && !present[e.ID] {
				selected = append(selected, e)
				present[e.ID] = true
			}
		}
	}

	if v.MaxExperienceItems > 0 && len(selected) > v.MaxExperienceItems {
		selected = selected[:v.MaxExperienceItems]
	}

	out := make([]types.Experience, len(selected))
	for i, e := range selected {
		out[i] = applyExperienceOverride(e, v)
	}
	return out
}

func applyExperienceOverride(e types.Experience, v types.RoleVariant) types.Experience {
	description := e.Description
	maxBullets := v.MaxExperienceBullets

	if o, ok := v.ExperienceOverrides[e.ID]; ok {
		if o.Role != "" {
			e.Role = o.Role
		}
		if o.Company != "" {
			e.Company = o.Company
		}
		if o.Dates != "" {
			e.Dates = o.Dates
		}
		if o.Location != "" {
			e.Location = o.Location
		}
		if len(o.Description) > 0 {
			description = o.Description
		}
		if o.MaxBullets > 0 {
			maxBullets = o.MaxBullets
		}
	}

	if maxBullets > 0 && len(description) > maxBullets {
		description = description[:maxBullets]
	}
	e.Description = cloneStrings(description)
	if e.Description == nil {
		e.Description = []string{}
	}
	return e
}

func resolveProjects(base []types.Project, v types.RoleVariant, demoLinks []string) []types.Project {
	projects := make([]types.Project, 0, len(base)+len(demoLinks))
	if v.ProjectIDs != nil {
		keep := idSet(v.ProjectIDs)
		for _, p := range base {
			if keep[p.ID] {
				projects = append(projects, p)
			}
		}
	} else {
		projects = append(projects, base...)
	}

	if v.MaxProjects > 0 && len(projects) > v.MaxProjects {
		projects = projects[:v.MaxProjects]
	}
	for i := range projects {
		projects[i].Technologies = cloneStrings(projects[i].Technologies)
	}

	// Demo links are appended after the cap and never count against it.
	for i, url := range demoLinks {
		projects = append(projects, types.Project{
			ID:           fmt.Sprintf("custom-%d", i),
			Title:        fmt.Sprintf("Additional project %d", i+1),
			Description:  "See more details: " + url,
			Technologies: []string{},
			Link:         url,
			Highlight:    false,
		})
	}
	return projects
}

func resolveCertifications(base []types.Certification, v types.RoleVariant) []types.Certification {
	out := make([]types.Certification, 0, len(base))
	if v.CertificationIDs == nil {
		return append(out, base...)
	}
	keep := idSet(v.CertificationIDs)
	for _, c := range base {
		if keep[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

// resolveAchievements follows the order of the variant's id list, unlike
// experience and projects which keep base order.
func resolveAchievements(base []types.Achievement, v types.RoleVariant) []types.Achievement {
	out := make([]types.Achievement, 0, len(base))
	if v.AchievementIDs == nil {
		n := min(defaultAchievementCount, len(base))
		return append(out, base[:n]...)
	}

	byID := make(map[string]types.Achievement, len(base))
	for _, a := range base {
		if _, dup := byID[a.ID]; !dup {
			byID[a.ID] = a
		}
	}
	for _, id := range v.AchievementIDs {
		if a, ok := byID[id]; ok {
			out = append(out, a)
		}
	}
	return out
}

func resolveLanguages(base *types.ResumeData) []types.Language {
	if len(base.Languages) > 0 {
		return base.Languages
	}
	out := make([]types.Language, 0, len(base.Personal.Languages))
	for _, name := range base.Personal.Languages {
		out = append(out, types.Language{Name: name})
	}
	return out
}

// resolvePreferences reads the target role under the requested key, so an
// unknown variant shows the fallback label rather than the fallback's role.
func resolvePreferences(base *types.ResumeData, requested string, v types.RoleVariant) types.Preferences {
	prefs := base.Preferences
	target, hasTarget := base.TargetRoles[requested]

	prefs.TargetRole = v.Label
	if hasTarget && target.Title != "" {
		prefs.TargetRole = target.Title
	}

	switch {
	case v.SalaryOverride != "":
		prefs.SalaryExpectation = v.SalaryOverride
	case hasTarget && target.Salary != "":
		prefs.SalaryExpectation = target.Salary
	}

	prefs.Focus = cloneStrings(firstNonEmpty(v.FocusAreas, target.Focus))
	if prefs.Focus == nil {
		prefs.Focus = []string{}
	}
	return prefs
}

func resolveMeta(key string, v types.RoleVariant) types.VariantMeta {
	meta := types.VariantMeta{
		Key:             key,
		Label:           v.Label,
		Headline:        v.Headline,
		FocusAreas:      cloneStrings(v.FocusAreas),
		PrimaryColor:    v.PrimaryColor,
		AccentColor:     v.AccentColor,
		FileLabel:       v.FileLabel,
		DefaultTemplate: v.DefaultTemplate,
	}
	if meta.FileLabel == "" {
		meta.FileLabel = key
	}
	if meta.DefaultTemplate == "" {
		meta.DefaultTemplate = "modern"
	}
	return meta
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func firstNonEmpty(lists ...[]string) []string {
	for _, l := range lists {
		if len(l) > 0 {
			return l
		}
	}
	return nil
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
