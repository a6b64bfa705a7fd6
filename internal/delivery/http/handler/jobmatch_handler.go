package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"resume-insights/internal/delivery/http/dto"
	"resume-insights/internal/delivery/http/middleware"
	"resume-insights/internal/domain/position"
	"resume-insights/internal/pkg/response"
	"resume-insights/internal/usecase"
)

type JobMatchHandler struct {
	uc usecase.JobMatchUsecase
}

type jobMatchRequest struct {
	Position string `json:"position"`
	Company  string `json:"company"`
}

func NewJobMatchHandler(uc usecase.JobMatchUsecase) *JobMatchHandler {
	return &JobMatchHandler{uc: uc}
}

func (h *JobMatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/resumes")
	grp.Post("/skills/match", h.Match)
}

func (h *JobMatchHandler) Match(c fiber.Ctx) error {
	sessionID, ok := c.Locals(middleware.CtxSessionIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	var req jobMatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if !position.Contains(req.Position) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown job position", nil, nil)
	}

	match, err := h.uc.MatchSkills(c.Context(), sessionID, req.Position, req.Company)
	if err != nil {
		return mapJobMatchError(err)
	}

	out := dto.JobMatchResponse{
		JobName: match.JobName,
		Skills:  make([]dto.SkillAssessmentResponse, 0, len(match.Skills)),
	}
	for _, s := range match.Skills {
		out.Skills = append(out.Skills, dto.SkillAssessmentResponse{
			Name:        s.Name,
			Relevance:   s.Relevance,
			Reasoning:   s.Reasoning,
			Proficiency: s.Proficiency,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapJobMatchError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing job position", nil, err)
	case errors.Is(err, usecase.ErrNoSkills):
		return middleware.NewAppError(fiber.StatusBadRequest, "No skills extracted for this resume", nil, err)
	case errors.Is(err, usecase.ErrSessionExpired):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Session expired, re-upload the resume", nil, err)
	case errors.Is(err, usecase.ErrUpstream):
		return middleware.NewAppError(fiber.StatusBadGateway, response.MessageBadGateway, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
