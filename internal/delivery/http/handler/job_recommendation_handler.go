package handler

import (
	"karir-nusantara/internal/delivery/http/dto"
	"karir-nusantara/internal/delivery/http/middleware"
	"karir-nusantara/internal/pkg/response"
	"karir-nusantara/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobRecommendationHandler struct {
	uc usecase.JobRecommendationUsecase
}

func NewJobRecommendationHandler(uc usecase.JobRecommendationUsecase) *JobRecommendationHandler {
	return &JobRecommendationHandler{uc: uc}
}

func (h *JobRecommendationHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}
	r.Get("/jobs/recommendations", auth, h.GetRecommendations)
	r.Get("/jobs/:id/score", auth, h.ScoreJob)
	r.Post("/recommendations", h.Rank)
}

func (h *JobRecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.GetRecommendations(c.Context(), middleware.UserID(c), limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *JobRecommendationHandler) ScoreJob(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	s, err := h.uc.ScoreJob(c.Context(), middleware.UserID(c), jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, s)
}

// Rank scores an explicit profile against the jobs in the body, or against
// the active listings when none are given.
func (h *JobRecommendationHandler) Rank(c fiber.Ctx) error {
	var req dto.RecommendationRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	items, err := h.uc.RecommendForProfile(c.Context(), req.Profile.ToDomain(), req.JobsToDomain(), req.Limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}
