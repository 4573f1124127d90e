package dto

import "karir-nusantara/internal/domain/recommendation"

type JobRequest struct {
	ID           string   `json:"id" validate:"max=64"`
	Title        string   `json:"title" validate:"max=200"`
	Company      string   `json:"company" validate:"max=200"`
	Category     string   `json:"category" validate:"max=100"`
	Province     string   `json:"province" validate:"max=100"`
	City         string   `json:"city" validate:"max=100"`
	IsRemote     bool     `json:"isRemote"`
	IsUrgent     bool     `json:"isUrgent"`
	Requirements []string `json:"requirements" validate:"max=50,dive,max=500"`
	SalaryMin    *int64   `json:"salaryMin" validate:"omitempty,gte=0"`
	SalaryMax    *int64   `json:"salaryMax" validate:"omitempty,gte=0"`
	Description  string   `json:"description" validate:"max=20000"`
}

func (r JobRequest) ToDomain() recommendation.Job {
	return recommendation.Job{
		ID:           r.ID,
		Title:        r.Title,
		Company:      r.Company,
		Category:     r.Category,
		Province:     r.Province,
		City:         r.City,
		IsRemote:     r.IsRemote,
		IsUrgent:     r.IsUrgent,
		Requirements: append([]string{}, r.Requirements...),
		SalaryMin:    r.SalaryMin,
		SalaryMax:    r.SalaryMax,
		Description:  r.Description,
	}
}

type RecommendationRequest struct {
	Profile ProfileRequest `json:"profile"`
	Jobs    []JobRequest   `json:"jobs" validate:"max=500,dive"`
	Limit   int            `json:"limit" validate:"gte=0,lte=100"`
}

func (r RecommendationRequest) JobsToDomain() []recommendation.Job {
	out := make([]recommendation.Job, 0, len(r.Jobs))
	for _, j := range r.Jobs {
		out = append(out, j.ToDomain())
	}
	return out
}
