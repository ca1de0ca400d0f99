package handler

import (
	"career-navigator/internal/delivery/http/dto"
	"career-navigator/internal/delivery/http/middleware"
	"career-navigator/internal/pkg/response"
	"career-navigator/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CareerHandler struct {
	uc usecase.CareerUsecase
}

func NewCareerHandler(uc usecase.CareerUsecase) *CareerHandler {
	return &CareerHandler{uc: uc}
}

func (h *CareerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/career/evaluate", h.HandleEvaluate)
	r.Get("/roles/:role/projection", h.HandleProjection)
	r.Get("/roles/:role/roadmap", h.HandleRoadmap)
}

func (h *CareerHandler) HandleEvaluate(c fiber.Ctx) error {
	var req dto.EvaluateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}

	res, err := h.uc.Evaluate(c.Context(), req.Input())
	if err != nil {
		return mapCareerError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageEvaluationCompleted, dto.NewEvaluationResponse(res))
}

func (h *CareerHandler) HandleProjection(c fiber.Ctx) error {
	years, err := parseQueryIntStrict(c, "years", usecase.DefaultProjectionYears)
	if err != nil {
		return badQuery("years", err)
	}

	res, err := h.uc.Project(c.Context(), roleParam(c), years)
	if err != nil {
		return mapCareerError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageProjectionRetrieved, dto.NewProjectionResponse(res))
}

// HandleRoadmap answers 200 with an empty plan for roles outside the catalog.
func (h *CareerHandler) HandleRoadmap(c fiber.Ctx) error {
	timeline, err := parseQueryIntStrict(c, "timeline", 12)
	if err != nil {
		return badQuery("timeline", err)
	}

	plan, err := h.uc.PlanRoadmap(c.Context(), usecase.RoadmapInput{
		Role:           roleParam(c),
		TimelineMonths: timeline,
		FocusAreas:     parseListQuery(c.Query("focus")),
	})
	if err != nil {
		return mapCareerError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageRoadmapRetrieved, dto.NewRoadmapResponse(plan))
}
