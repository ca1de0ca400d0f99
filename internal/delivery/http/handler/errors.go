package handler

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"career-navigator/internal/delivery/http/middleware"
	"career-navigator/internal/domain/career"
	"career-navigator/internal/pkg/response"
	"career-navigator/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func mapCareerError(err error) error {
	if err == nil {
		return nil
	}

	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request", verr.Fields, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request", nil, err)
	case errors.Is(err, career.ErrInvalidTimeline):
		return middleware.NewAppError(fiber.StatusBadRequest, "Timeline must be at least 1", nil, err)
	case errors.Is(err, career.ErrInvalidFocusArea):
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown focus area", allowedFocusAreas(), err)
	case errors.Is(err, usecase.ErrUnknownRole):
		return middleware.NewAppError(fiber.StatusNotFound, "Role not found", nil, err)
	case errors.Is(err, usecase.ErrNoMarketData):
		return middleware.NewAppError(fiber.StatusNotFound, "Job market data not found for role", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func allowedFocusAreas() map[string][]career.FocusArea {
	return map[string][]career.FocusArea{
		"allowed": {career.FocusTechnicalSkills, career.FocusSoftSkills, career.FocusCertifications},
	}
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}

func badQuery(key string, err error) error {
	return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request", map[string]string{key: "must be an integer"}, err)
}

// roleParam returns the decoded :role path segment.
func roleParam(c fiber.Ctx) string {
	raw := c.Params("role")
	if v, err := url.PathUnescape(raw); err == nil {
		raw = v
	}
	return strings.TrimSpace(raw)
}

func parseListQuery(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
