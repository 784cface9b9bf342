// Package types provides type definitions for structured data used throughout the portfolio CV system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeData is the base résumé model. It is loaded once per process and
// treated as read-only; every build derives a ResolvedView from it.
type ResumeData struct {
	Personal       Personal               `json:"personal" yaml:"personal"`
	Summaries      map[string]string      `json:"summaries" yaml:"summaries"`
	Skills         Skills                 `json:"skills" yaml:"skills"`
	Experience     []Experience           `json:"experience" yaml:"experience"`
	Education      []Education            `json:"education" yaml:"education"`
	Certifications []Certification        `json:"certifications" yaml:"certifications"`
	Projects       []Project              `json:"projects" yaml:"projects"`
	Achievements   []Achievement          `json:"achievements" yaml:"achievements"`
	Languages      []Language             `json:"languages,omitempty" yaml:"languages,omitempty"`
	TargetRoles    map[string]TargetRole  `json:"targetRoles,omitempty" yaml:"targetRoles,omitempty"`
	Preferences    Preferences            `json:"preferences" yaml:"preferences"`
	RoleVariants   map[string]RoleVariant `json:"roleVariants,omitempty" yaml:"roleVariants,omitempty"`
}

// Personal holds header and contact fields
type Personal struct {
	Name      string   `json:"name" yaml:"name"`
	Title     string   `json:"title" yaml:"title"`
	Location  string   `json:"location" yaml:"location"`
	Email     string   `json:"email" yaml:"email"`
	Phone     string   `json:"phone" yaml:"phone"`
	Website   string   `json:"website,omitempty" yaml:"website,omitempty"`
	GitHub    string   `json:"github,omitempty" yaml:"github,omitempty"`
	LinkedIn  string   `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
	Portfolio string   `json:"portfolio,omitempty" yaml:"portfolio,omitempty"`
	Languages []string `json:"languages,omitempty" yaml:"languages,omitempty"`
}

// Skills holds three ordered lists; order is display priority.
type Skills struct {
	Technical []string `json:"technical" yaml:"technical"`
	Tools     []string `json:"tools" yaml:"tools"`
	Soft      []string `json:"soft" yaml:"soft"`
}

// Experience represents a single position with a stable ID used by variant filtering
type Experience struct {
	ID          string   `json:"id" yaml:"id"`
	Role        string   `json:"role" yaml:"role"`
	Company     string   `json:"company" yaml:"company"`
	Dates       string   `json:"dates" yaml:"dates"`
	Location    string   `json:"location,omitempty" yaml:"location,omitempty"`
	Description []string `json:"description" yaml:"description"`
}

// Education represents a degree entry
type Education struct {
	Degree      string   `json:"degree" yaml:"degree"`
	Institution string   `json:"institution" yaml:"institution"`
	Dates       string   `json:"dates" yaml:"dates"`
	Location    string   `json:"location,omitempty" yaml:"location,omitempty"`
	Highlights  []string `json:"highlights,omitempty" yaml:"highlights,omitempty"`
}

// Certification represents an issued credential
type Certification struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	Issuer        string `json:"issuer" yaml:"issuer"`
	Date          string `json:"date" yaml:"date"`
	CredentialID  string `json:"credentialId,omitempty" yaml:"credentialId,omitempty"`
	CredentialURL string `json:"credentialUrl,omitempty" yaml:"credentialUrl,omitempty"`
}

// Project represents a portfolio project card
type Project struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description" yaml:"description"`
	Technologies []string `json:"technologies,omitempty" yaml:"technologies,omitempty"`
	Link         string   `json:"link,omitempty" yaml:"link,omitempty"`
	Highlight    bool     `json:"highlight" yaml:"highlight"`
}

// Achievement is a single highlighted accomplishment
type Achievement struct {
	ID   string `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
}

// Language is a spoken language with a proficiency level
type Language struct {
	Name  string `json:"name" yaml:"name"`
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
}

// TargetRole describes the job category a variant is aimed at
type TargetRole struct {
	Title  string   `json:"title" yaml:"title"`
	Salary string   `json:"salary,omitempty" yaml:"salary,omitempty"`
	Focus  []string `json:"focus,omitempty" yaml:"focus,omitempty"`
}

// Preferences holds hiring logistics. TargetRole and Focus are injected by
// the variant resolver and are normally absent from the base model.
type Preferences struct {
	Availability      string   `json:"availability,omitempty" yaml:"availability,omitempty"`
	WorkMode          string   `json:"workMode,omitempty" yaml:"workMode,omitempty"`
	NoticePeriod      string   `json:"noticeperiod,omitempty" yaml:"noticeperiod,omitempty"`
	Sponsorship       string   `json:"sponsorship,omitempty" yaml:"sponsorship,omitempty"`
	Relocation        string   `json:"relocation,omitempty" yaml:"relocation,omitempty"`
	DailyHours        float64  `json:"dailyHours,omitempty" yaml:"dailyHours,omitempty"`
	Timezone          string   `json:"timezone,omitempty" yaml:"timezone,omitempty"`
	ExperienceLevel   string   `json:"experience,omitempty" yaml:"experience,omitempty"`
	SalaryExpectation string   `json:"salaryExpectation,omitempty" yaml:"salaryExpectation,omitempty"`
	TargetRole        string   `json:"targetRole,omitempty" yaml:"targetRole,omitempty"`
	Focus             []string `json:"focus,omitempty" yaml:"focus,omitempty"`
}
