package handler

import (
	"karir-nusantara/internal/delivery/http/dto"
	"karir-nusantara/internal/delivery/http/middleware"
	"karir-nusantara/internal/pkg/response"
	"karir-nusantara/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc usecase.JobUsecase
}

func NewJobsHandler(uc usecase.JobUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}
	r.Get("/jobs", h.List)
	r.Post("/jobs", auth, h.Upsert)
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	remote, err := parseQueryBool(c, "remote")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.List(c.Context(), usecase.JobListParams{
		Category: c.Query("category"),
		Province: c.Query("province"),
		Remote:   remote,
		Keyword:  c.Query("q"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.List(c, response.MessageOK, items, response.Meta{Limit: limit, Offset: offset, Count: len(items)})
}

func (h *JobsHandler) Upsert(c fiber.Ctx) error {
	var req dto.JobRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	saved, err := h.uc.Upsert(c.Context(), req.ToDomain())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "job saved", saved)
}
