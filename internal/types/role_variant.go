package types

// DefaultVariant is the fallback role variant key
const DefaultVariant = "general"

// RoleVariant reframes the base model for one target job category.
// Nil slices mean "not configured"; an empty non-nil slice selects nothing.
type RoleVariant struct {
	Label                string                        `json:"label" yaml:"label"`
	Headline             string                        `json:"headline,omitempty" yaml:"headline,omitempty"`
	SummaryKey           string                        `json:"summaryKey,omitempty" yaml:"summaryKey,omitempty"`
	FocusAreas           []string                      `json:"focusAreas,omitempty" yaml:"focusAreas,omitempty"`
	SkillFocus           []string                      `json:"skillFocus,omitempty" yaml:"skillFocus,omitempty"`
	ToolFocus            []string                      `json:"toolFocus,omitempty" yaml:"toolFocus,omitempty"`
	SoftSkills           []string                      `json:"softSkills,omitempty" yaml:"softSkills,omitempty"`
	ExperienceIDs        []string                      `json:"experienceIds,omitempty" yaml:"experienceIds,omitempty"`
	IncludeExperienceIDs []string                      `json:"includeExperienceIds,omitempty" yaml:"includeExperienceIds,omitempty"`
	ExperienceOverrides  map[string]ExperienceOverride `json:"experienceOverrides,omitempty" yaml:"experienceOverrides,omitempty"`
	MaxExperienceItems   int                           `json:"maxExperienceItems,omitempty" yaml:"maxExperienceItems,omitempty"`
	MaxExperienceBullets int                           `json:"maxExperienceBullets,omitempty" yaml:"maxExperienceBullets,omitempty"`
	AchievementIDs       []string                      `json:"achievementIds,omitempty" yaml:"achievementIds,omitempty"`
	ProjectIDs           []string                      `json:"projectIds,omitempty" yaml:"projectIds,omitempty"`
	CertificationIDs     []string                      `json:"certificationIds,omitempty" yaml:"certificationIds,omitempty"`
	MaxProjects          int                           `json:"maxProjects,omitempty" yaml:"maxProjects,omitempty"`
	SalaryOverride       string                        `json:"salaryOverride,omitempty" yaml:"salaryOverride,omitempty"`
	DefaultTemplate      string                        `json:"defaultTemplate,omitempty" yaml:"defaultTemplate,omitempty"`
	PrimaryColor         string                        `json:"primaryColor,omitempty" yaml:"primaryColor,omitempty"`
	AccentColor          string                        `json:"accentColor,omitempty" yaml:"accentColor,omitempty"`
	FileLabel            string                        `json:"fileLabel,omitempty" yaml:"fileLabel,omitempty"`
}

// ExperienceOverride replaces fields of one experience entry within a variant.
// Empty string fields leave the base value untouched.
type ExperienceOverride struct {
	Role        string   `json:"role,omitempty" yaml:"role,omitempty"`
	Company     string   `json:"company,omitempty" yaml:"company,omitempty"`
	Dates       string   `json:"dates,omitempty" yaml:"dates,omitempty"`
	Location    string   `json:"location,omitempty" yaml:"location,omitempty"`
	Description []string `json:"description,omitempty" yaml:"description,omitempty"`
	MaxBullets  int      `json:"maxBullets,omitempty" yaml:"maxBullets,omitempty"`
}
