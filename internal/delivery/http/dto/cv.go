package dto

import "karir-nusantara/internal/domain/cvquality"

// CVRequest is the CV builder document. Limits keep payloads bounded; content
// quality is judged by the analyzer, not rejected here.
type CVRequest struct {
	PersonalInfo   PersonalInfoRequest     `json:"personalInfo"`
	Education      []EducationRequest      `json:"education" validate:"max=20,dive"`
	WorkExperience []WorkExperienceRequest `json:"workExperience" validate:"max=30,dive"`
	Skills         []string                `json:"skills" validate:"max=100,dive,max=100"`
	Certifications []CertificationRequest  `json:"certifications" validate:"max=50,dive"`
}

type PersonalInfoRequest struct {
	FullName  string `json:"fullName" validate:"max=200"`
	Email     string `json:"email" validate:"max=254"`
	Phone     string `json:"phone" validate:"max=32"`
	Address   string `json:"address" validate:"max=500"`
	LinkedIn  string `json:"linkedIn" validate:"max=500"`
	Portfolio string `json:"portfolio" validate:"max=500"`
	Summary   string `json:"summary" validate:"max=5000"`
	Photo     string `json:"photo" validate:"max=2048"`
}

type EducationRequest struct {
	Institution string `json:"institution" validate:"max=200"`
	Degree      string `json:"degree" validate:"max=100"`
	Field       string `json:"field" validate:"max=200"`
	StartYear   string `json:"startYear" validate:"max=10"`
	EndYear     string `json:"endYear" validate:"max=10"`
	Description string `json:"description" validate:"max=5000"`
}

type WorkExperienceRequest struct {
	Company      string `json:"company" validate:"max=200"`
	Position     string `json:"position" validate:"max=200"`
	StartDate    string `json:"startDate" validate:"max=20"`
	EndDate      string `json:"endDate" validate:"max=20"`
	IsCurrentJob bool   `json:"isCurrentJob"`
	Description  string `json:"description" validate:"max=5000"`
}

type CertificationRequest struct {
	Name         string `json:"name" validate:"max=200"`
	Issuer       string `json:"issuer" validate:"max=200"`
	Year         string `json:"year" validate:"max=10"`
	CredentialID string `json:"credentialId" validate:"max=200"`
}

func (r CVRequest) ToDomain() cvquality.CV {
	cv := cvquality.CV{
		PersonalInfo: cvquality.PersonalInfo(r.PersonalInfo),
		Skills:       append([]string(nil), r.Skills...),
	}
	for _, e := range r.Education {
		cv.Education = append(cv.Education, cvquality.Education(e))
	}
	for _, w := range r.WorkExperience {
		cv.WorkExperience = append(cv.WorkExperience, cvquality.WorkExperience(w))
	}
	for _, c := range r.Certifications {
		cv.Certifications = append(cv.Certifications, cvquality.Certification(c))
	}
	return cv
}

type ScoreMetaResponse struct {
	Score   int             `json:"score"`
	Grade   cvquality.Grade `json:"grade"`
	Label   string          `json:"label"`
	Color   string          `json:"color"`
	Message string          `json:"message"`
}

func NewScoreMetaResponse(score int) ScoreMetaResponse {
	return ScoreMetaResponse{
		Score:   score,
		Grade:   cvquality.GradeFor(score),
		Label:   cvquality.ScoreLabel(score),
		Color:   cvquality.ScoreColor(score),
		Message: cvquality.OverallMessage(score),
	}
}
