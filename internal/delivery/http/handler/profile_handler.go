package handler

import (
	"karir-nusantara/internal/delivery/http/dto"
	"karir-nusantara/internal/delivery/http/middleware"
	"karir-nusantara/internal/pkg/response"
	"karir-nusantara/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}
	r.Get("/me/profile", auth, h.Get)
	r.Put("/me/profile", auth, h.Update)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	p, err := h.uc.Get(c.Context(), middleware.UserID(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, p)
}

func (h *ProfileHandler) Update(c fiber.Ctx) error {
	var req dto.ProfileRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	p, err := h.uc.Update(c.Context(), middleware.UserID(c), req.ToDomain())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "profile updated", p)
}
