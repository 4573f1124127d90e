package dto

import "karir-nusantara/internal/domain/recommendation"

type ProfileRequest struct {
	Name       string   `json:"name" validate:"max=200"`
	Email      string   `json:"email" validate:"omitempty,email,max=254"`
	Phone      string   `json:"phone" validate:"max=32"`
	Skills     []string `json:"skills" validate:"max=100,dive,max=100"`
	Category   string   `json:"category" validate:"max=100"`
	Location   string   `json:"location" validate:"max=100"`
	Experience *float64 `json:"experience" validate:"omitempty,gte=0,lte=60"`
}

func (r ProfileRequest) ToDomain() recommendation.UserProfile {
	return recommendation.UserProfile{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Skills:     append([]string(nil), r.Skills...),
		Category:   r.Category,
		Location:   r.Location,
		Experience: r.Experience,
	}
}
