package handler

import (
	"career-navigator/internal/delivery/http/dto"
	"career-navigator/internal/pkg/response"
	"career-navigator/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type NewsHandler struct {
	uc usecase.CareerUsecase
}

func NewNewsHandler(uc usecase.CareerUsecase) *NewsHandler {
	return &NewsHandler{uc: uc}
}

func (h *NewsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/news", h.HandleLatest)
}

func (h *NewsHandler) HandleLatest(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", usecase.DefaultNewsLimit)
	if err != nil {
		return badQuery("limit", err)
	}
	if limit < 1 || limit > 50 {
		return mapCareerError(&usecase.ValidationError{Fields: map[string]string{"limit": "must be within 1-50"}})
	}
	return response.Success(c, fiber.StatusOK, response.MessageNewsRetrieved, dto.NewNewsResponses(h.uc.LatestNews(c.Context(), limit)))
}
