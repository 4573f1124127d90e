package cvquality

// CV is the document produced by the CV builder. The JSON shape is the one
// the builder persists as a draft.
type CV struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo" yaml:"personalInfo"`
	Education      []Education      `json:"education" yaml:"education"`
	WorkExperience []WorkExperience `json:"workExperience" yaml:"workExperience"`
	Skills         []string         `json:"skills" yaml:"skills"`
	Certifications []Certification  `json:"certifications" yaml:"certifications"`
}

type PersonalInfo struct {
	FullName  string `json:"fullName" yaml:"fullName"`
	Email     string `json:"email" yaml:"email"`
	Phone     string `json:"phone" yaml:"phone"`
	Address   string `json:"address" yaml:"address"`
	LinkedIn  string `json:"linkedIn,omitempty" yaml:"linkedIn"`
	Portfolio string `json:"portfolio,omitempty" yaml:"portfolio"`
	Summary   string `json:"summary" yaml:"summary"`
	Photo     string `json:"photo,omitempty" yaml:"photo"`
}

type Education struct {
	Institution string `json:"institution" yaml:"institution"`
	Degree      string `json:"degree" yaml:"degree"`
	Field       string `json:"field" yaml:"field"`
	StartYear   string `json:"startYear" yaml:"startYear"`
	EndYear     string `json:"endYear" yaml:"endYear"`
	Description string `json:"description,omitempty" yaml:"description"`
}

type WorkExperience struct {
	Company      string `json:"company" yaml:"company"`
	Position     string `json:"position" yaml:"position"`
	StartDate    string `json:"startDate" yaml:"startDate"`
	EndDate      string `json:"endDate" yaml:"endDate"`
	IsCurrentJob bool   `json:"isCurrentJob" yaml:"isCurrentJob"`
	Description  string `json:"description" yaml:"description"`
}

type Certification struct {
	Name         string `json:"name" yaml:"name"`
	Issuer       string `json:"issuer" yaml:"issuer"`
	Year         string `json:"year" yaml:"year"`
	CredentialID string `json:"credentialId,omitempty" yaml:"credentialId"`
}

type Section string

const (
	SectionPersonal       Section = "personal"
	SectionEducation      Section = "education"
	SectionExperience     Section = "experience"
	SectionSkills         Section = "skills"
	SectionCertifications Section = "certifications"
)

type Status string

const (
	StatusExcellent        Status = "excellent"
	StatusGood             Status = "good"
	StatusFair             Status = "fair"
	StatusNeedsImprovement Status = "needs-improvement"
)

type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

type SectionFeedback struct {
	Section     Section  `json:"section"`
	Score       int      `json:"score"`
	Status      Status   `json:"status"`
	Feedback    []string `json:"feedback"`
	Suggestions []string `json:"suggestions"`

	// strengths holds the subset of Feedback produced by passed checks.
	strengths []string
}

type Feedback struct {
	Score          int               `json:"score"`
	Grade          Grade             `json:"grade"`
	Strengths      []string          `json:"strengths"`
	Improvements   []string          `json:"improvements"`
	Sections       []SectionFeedback `json:"sections"`
	OverallMessage string            `json:"overallMessage"`
}
