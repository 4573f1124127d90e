package handler

import (
	"strconv"
	"strings"

	"karir-nusantara/internal/delivery/http/dto"
	"karir-nusantara/internal/delivery/http/middleware"
	"karir-nusantara/internal/pkg/response"
	"karir-nusantara/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CVHandler struct {
	quality usecase.CVQualityUsecase
	drafts  usecase.CVDraftUsecase
}

func NewCVHandler(quality usecase.CVQualityUsecase, drafts usecase.CVDraftUsecase) *CVHandler {
	return &CVHandler{quality: quality, drafts: drafts}
}

func (h *CVHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}
	r.Post("/cv/analyze", h.Analyze)
	r.Get("/cv/score-meta", h.ScoreMeta)

	r.Get("/me/cv-draft", auth, h.GetDraft)
	r.Put("/me/cv-draft", auth, h.SaveDraft)
	r.Delete("/me/cv-draft", auth, h.DeleteDraft)
	r.Get("/me/cv-draft/analysis", auth, h.AnalyzeDraft)
}

func (h *CVHandler) Analyze(c fiber.Ctx) error {
	var req dto.CVRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	fb, err := h.quality.Analyze(c.Context(), req.ToDomain())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fb)
}

func (h *CVHandler) ScoreMeta(c fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("score"))
	score, err := strconv.Atoi(raw)
	if err != nil || score < 0 || score > 100 {
		return middleware.NewAppError(fiber.StatusBadRequest, "score must be an integer between 0 and 100", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewScoreMetaResponse(score))
}

func (h *CVHandler) GetDraft(c fiber.Ctx) error {
	cv, err := h.drafts.Get(c.Context(), middleware.UserID(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, cv)
}

func (h *CVHandler) SaveDraft(c fiber.Ctx) error {
	var req dto.CVRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	fb, err := h.drafts.Save(c.Context(), middleware.UserID(c), req.ToDomain())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "draft saved", fb)
}

func (h *CVHandler) DeleteDraft(c fiber.Ctx) error {
	if err := h.drafts.Delete(c.Context(), middleware.UserID(c)); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "draft deleted", nil)
}

func (h *CVHandler) AnalyzeDraft(c fiber.Ctx) error {
	fb, err := h.quality.AnalyzeDraft(c.Context(), middleware.UserID(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fb)
}
