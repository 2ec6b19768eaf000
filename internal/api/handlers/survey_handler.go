package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gogiieum/domain"
	"gogiieum/internal/api/presenters"
	"gogiieum/pkg/survey"
)

type (
	SurveyHandler interface {
		GetQuestions(c *fiber.Ctx) error
		Complete(c *fiber.Ctx) error
		GetRecommendations(c *fiber.Ctx) error
	}

	surveyHandler struct {
		surveyService survey.SurveyService
		validator     *validator.Validate
	}
)

func NewSurveyHandler(surveyService survey.SurveyService, validator *validator.Validate) SurveyHandler {
	return &surveyHandler{
		surveyService: surveyService,
		validator:     validator,
	}
}

func (h *surveyHandler) GetQuestions(c *fiber.Ctx) error {
	questions := h.surveyService.GetQuestions(c.Context())
	return presenters.SuccessResponse(c, questions, fiber.StatusOK, domain.MessageSuccessGetQuestions)
}

func (h *surveyHandler) Complete(c *fiber.Ctx) error {
	req := new(domain.CompleteSurveyRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompleteSurvey, err)
	}

	resp, err := h.surveyService.Complete(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompleteSurvey, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessCompleteSurvey)
}

func (h *surveyHandler) GetRecommendations(c *fiber.Ctx) error {
	recommendations, err := h.surveyService.GetRecommendations(c.Context())
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrSurveyNotCompleted) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetRecommendations, err)
	}

	return presenters.SuccessResponse(c, recommendations, fiber.StatusOK, domain.MessageSuccessGetRecommendations)
}
