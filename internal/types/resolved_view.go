package types

// Overrides is the user-editable patch applied on top of a variant.
// Zero values mean "no override".
type Overrides struct {
	Personal PersonalOverride
	// Links, when non-nil, replaces github/linkedin/portfolio: all three are
	// cleared and then assigned by host.
	Links     []string
	Summary   string
	Skills    []string
	DemoLinks []string
}

// PersonalOverride holds form-edited header fields
type PersonalOverride struct {
	Name     string `json:"name,omitempty"`
	Title    string `json:"title,omitempty"`
	Location string `json:"location,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// VariantMeta carries the presentation settings of the resolved variant
type VariantMeta struct {
	Key             string   `json:"key"`
	Label           string   `json:"label"`
	Headline        string   `json:"headline,omitempty"`
	FocusAreas      []string `json:"focusAreas,omitempty"`
	PrimaryColor    string   `json:"primaryColor,omitempty"`
	AccentColor     string   `json:"accentColor,omitempty"`
	FileLabel       string   `json:"fileLabel"`
	DefaultTemplate string   `json:"defaultTemplate"`
}

// ResolvedView is the per-build result of applying a role variant and user
// overrides to the base model. Renderers only read from it.
type ResolvedView struct {
	Personal       Personal          `json:"personal"`
	Summary        string            `json:"summary"`
	Summaries      map[string]string `json:"summaries"`
	Skills         Skills            `json:"skills"`
	Experience     []Experience      `json:"experience"`
	Education      []Education       `json:"education"`
	Certifications []Certification   `json:"certifications"`
	Projects       []Project         `json:"projects"`
	Achievements   []Achievement     `json:"achievements"`
	Languages      []Language        `json:"languages"`
	Preferences    Preferences       `json:"preferences"`
	Variant        VariantMeta       `json:"variant"`
}
