package handler

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v3"

	"resume-insights/internal/delivery/http/dto"
	"resume-insights/internal/delivery/http/middleware"
	"resume-insights/internal/pkg/response"
	"resume-insights/internal/usecase"
)

type InsightsHandler struct {
	uc             usecase.InsightsUsecase
	maxUploadBytes int64
}

func NewInsightsHandler(uc usecase.InsightsUsecase, maxUploadBytes int64) *InsightsHandler {
	return &InsightsHandler{uc: uc, maxUploadBytes: maxUploadBytes}
}

func (h *InsightsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/resumes")
	grp.Post("/", h.Upload)
}

func (h *InsightsHandler) Upload(c fiber.Ctx) error {
	fh, err := c.FormFile("resume")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing resume file", nil, err)
	}

	if h.maxUploadBytes > 0 && fh.Size > h.maxUploadBytes {
		return middleware.NewAppError(fiber.StatusBadRequest, "Resume exceeds the upload size limit", nil, nil)
	}
	if ext := strings.ToLower(filepath.Ext(fh.Filename)); ext != ".pdf" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Only PDF resumes are supported", nil, nil)
	}

	f, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable resume file", nil, err)
	}
	defer f.Close()

	var src io.Reader = f
	if h.maxUploadBytes > 0 {
		src = io.LimitReader(f, h.maxUploadBytes+1)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable resume file", nil, err)
	}
	if h.maxUploadBytes > 0 && int64(len(data)) > h.maxUploadBytes {
		return middleware.NewAppError(fiber.StatusBadRequest, "Resume exceeds the upload size limit", nil, nil)
	}

	res, err := h.uc.ExtractCandidate(c.Context(), data, fh.Filename)
	if err != nil {
		return mapInsightsError(err)
	}

	out := dto.InsightsResponse{
		SessionID:    res.SessionID.String(),
		SessionToken: res.Token,
		Candidate: dto.CandidateResponse{
			Name:   res.Candidate.Name,
			Email:  res.Candidate.Email,
			Age:    res.Candidate.Age,
			Skills: res.Candidate.Skills,
		},
	}
	if out.Candidate.Skills == nil {
		out.Candidate.Skills = []string{}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapInsightsError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrNotPDF):
		return middleware.NewAppError(fiber.StatusBadRequest, "Only PDF resumes are supported", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	case errors.Is(err, usecase.ErrUpstream):
		return middleware.NewAppError(fiber.StatusBadGateway, response.MessageBadGateway, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
