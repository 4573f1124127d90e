package recommendation

// UserProfile holds the matching preferences of a job seeker. A zero value
// field takes its factor out of the score.
type UserProfile struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Email      string   `json:"email" yaml:"email"`
	Phone      string   `json:"phone,omitempty" yaml:"phone"`
	Skills     []string `json:"skills,omitempty" yaml:"skills"`
	Category   string   `json:"category,omitempty" yaml:"category"`
	Location   string   `json:"location,omitempty" yaml:"location"`
	Experience *float64 `json:"experience,omitempty" yaml:"experience"`
}

type Job struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Company      string   `json:"company" yaml:"company"`
	Category     string   `json:"category" yaml:"category"`
	Province     string   `json:"province" yaml:"province"`
	City         string   `json:"city,omitempty" yaml:"city"`
	IsRemote     bool     `json:"isRemote" yaml:"isRemote"`
	IsUrgent     bool     `json:"isUrgent" yaml:"isUrgent"`
	Requirements []string `json:"requirements" yaml:"requirements"`
	SalaryMin    *int64   `json:"salaryMin,omitempty" yaml:"salaryMin"`
	SalaryMax    *int64   `json:"salaryMax,omitempty" yaml:"salaryMax"`
	Description  string   `json:"description" yaml:"description"`
}

type Score struct {
	Job             Job      `json:"job"`
	Score           int      `json:"score"`
	MatchReasons    []string `json:"matchReasons"`
	MismatchReasons []string `json:"mismatchReasons"`
}
