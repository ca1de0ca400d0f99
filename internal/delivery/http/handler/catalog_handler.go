package handler

import (
	"career-navigator/internal/delivery/http/dto"
	"career-navigator/internal/pkg/response"
	"career-navigator/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CatalogHandler struct {
	uc usecase.CareerUsecase
}

func NewCatalogHandler(uc usecase.CareerUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/roles", h.HandleListRoles)
	r.Get("/roles/:role/requirements", h.HandleRequirements)
	r.Get("/roles/:role/interview", h.HandleInterview)
	r.Get("/market", h.HandleMarket)
	r.Get("/network", h.HandleNetwork)
}

func (h *CatalogHandler) HandleListRoles(c fiber.Ctx) error {
	roles := h.uc.ListRoles(c.Context())
	out := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, dto.NewRoleResponse(r))
	}
	return response.Success(c, fiber.StatusOK, response.MessageRolesRetrieved, out)
}

func (h *CatalogHandler) HandleRequirements(c fiber.Ctx) error {
	role, err := h.uc.Role(c.Context(), roleParam(c))
	if err != nil {
		return mapCareerError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageRequirementsRetrieved, dto.NewRoleResponse(role))
}

func (h *CatalogHandler) HandleInterview(c fiber.Ctx) error {
	role := roleParam(c)
	qs, err := h.uc.InterviewQuestions(c.Context(), role)
	if err != nil {
		return mapCareerError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageInterviewRetrieved, dto.InterviewResponse{Role: role, Questions: qs})
}

func (h *CatalogHandler) HandleMarket(c fiber.Ctx) error {
	stats := h.uc.ListMarket(c.Context())
	out := make([]dto.MarketResponse, 0, len(stats))
	for _, m := range stats {
		out = append(out, dto.NewMarketResponse(m))
	}
	return response.Success(c, fiber.StatusOK, response.MessageMarketRetrieved, out)
}

func (h *CatalogHandler) HandleNetwork(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageNetworkRetrieved, dto.NewNetworkResponse(h.uc.SkillNetwork(c.Context())))
}
