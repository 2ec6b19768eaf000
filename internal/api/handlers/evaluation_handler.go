package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gogiieum/domain"
	"gogiieum/internal/api/presenters"
	"gogiieum/pkg/evaluation"
)

type (
	EvaluationHandler interface {
		Authenticate(c *fiber.Ctx) error
		Submit(c *fiber.Ctx) error
	}

	evaluationHandler struct {
		evaluationService evaluation.EvaluationService
		validator         *validator.Validate
	}
)

func NewEvaluationHandler(evaluationService evaluation.EvaluationService, validator *validator.Validate) EvaluationHandler {
	return &evaluationHandler{
		evaluationService: evaluationService,
		validator:         validator,
	}
}

func (h *evaluationHandler) Authenticate(c *fiber.Ctx) error {
	receipt, err := h.evaluationService.Authenticate(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedTransition, err)
	}

	return presenters.SuccessResponse(c, receipt, fiber.StatusOK, domain.MessageSuccessAuthenticate)
}

func (h *evaluationHandler) Submit(c *fiber.Ctx) error {
	req := new(domain.SubmitEvaluationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitEvaluation, err)
	}

	resp, err := h.evaluationService.Submit(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitEvaluation, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessSubmitEvaluation)
}
