package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gogiieum/domain"
	"gogiieum/entities"
	"gogiieum/internal/api/presenters"
	"gogiieum/pkg/point"
	"gogiieum/pkg/session"
	"gogiieum/pkg/survey"
)

type (
	SessionHandler interface {
		GetSession(c *fiber.Ctx) error
		EnterApp(c *fiber.Ctx) error
		SelectTab(c *fiber.Ctx) error
		SelectProduct(c *fiber.Ctx) error
		ClearProduct(c *fiber.Ctx) error
		SendToMarket(c *fiber.Ctx) error
		StartEvaluation(c *fiber.Ctx) error
		RevealEvaluation(c *fiber.Ctx) error
		ExitEvaluation(c *fiber.Ctx) error
		OpenAdPage(c *fiber.Ctx) error
		CloseAdPage(c *fiber.Ctx) error
		StartSurvey(c *fiber.Ctx) error
		AdvanceSurvey(c *fiber.Ctx) error
		SkipSurvey(c *fiber.Ctx) error
	}

	sessionHandler struct {
		sessionService session.SessionService
		pointService   point.PointService
		surveyService  survey.SurveyService
		validator      *validator.Validate
	}
)

func NewSessionHandler(
	sessionService session.SessionService,
	pointService point.PointService,
	surveyService survey.SurveyService,
	validator *validator.Validate,
) SessionHandler {
	return &sessionHandler{
		sessionService: sessionService,
		pointService:   pointService,
		surveyService:  surveyService,
		validator:      validator,
	}
}

func (h *sessionHandler) GetSession(c *fiber.Ctx) error {
	state, err := h.sessionService.GetState(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}
	return h.respondState(c, state, domain.MessageSuccessGetSession)
}

func (h *sessionHandler) respondState(c *fiber.Ctx, state entities.Session, message string) error {
	balance, err := h.pointService.GetBalance(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}
	surveyCompleted, err := h.surveyService.HasProfile(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, domain.SessionResponse{
		Screen: domain.ScreenResponse{
			Kind:              string(state.Screen.Kind),
			SelectedProductID: state.Screen.SelectedProductID,
			EvaluationShown:   state.Screen.EvaluationShown,
			SurveyStep:        state.Screen.SurveyStep,
		},
		Balance:                balance,
		SurveyCompleted:        surveyCompleted,
		PendingMarketProductID: state.PendingMarketProductID,
	}, fiber.StatusOK, message)
}

// transition runs one screen transition and responds with the new state.
func (h *sessionHandler) transition(c *fiber.Ctx, apply func() (entities.Session, error)) error {
	state, err := apply()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedTransition, err)
	}
	return h.respondState(c, state, domain.MessageSuccessTransition)
}

func (h *sessionHandler) EnterApp(c *fiber.Ctx) error {
	return h.transition(c, func() (entities.Session, error) {
		return h.sessionService.EnterApp(c.Context())
	})
}

func (h *sessionHandler) SelectTab(c *fiber.Ctx) error {
	req := new(domain.SelectTabRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedTransition, err)
	}

	return h.transition(c, func() (entities.Session, error) {
		return h.sessionService.SelectTab(c.Context(), entities.Tab(req.Tab))
	})
}

func (h *sessionHandler) SelectProduct(c *fiber.Ctx) error {
	req := new(domain.SelectProductRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedTransition, err)
	}

	return h.transition(c, func() (entities.Session, error) {
		return h.sessionService.SelectProduct(c.Context(), req.ProductID)
	})
}

func (h *sessionHandler) ClearProduct(c *fiber.Ctx) error {
	return h.transition(c, func() (entities.Session, error) {
		return h.sessionService.ClearProduct(c.Context())
	})
}

func (h *sessionHandler) SendToMarket(c *fiber.Ctx) error {
	req := new(domain.SelectProductRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedTransition, err)
	}

	return h.transition(c, func() (entities.Session, error) {
		return h.sessionService.SendToMarket(c.Context(), req.ProductID)
	})
}

func (h *sessionHandler) StartEvaluation(c *fiber.Ctx) error {
	return h.transition(c, func() (entities.Session, error) {
		return h.sessionService.StartEvaluation(c.Context())
	})
}

func (h *sessionHandler) RevealEvaluation(c *fiber.Ctx) error {
	return h.transition(c, func() (entities.Session, error) {
		return h.sessionService.RevealEvaluation(c.Context())
	})
}

func (h *sessionHandler) ExitEvaluation(c *fiber.Ctx) error {
	return h.transition(c, func() (entities.Session, error) {
		return h.sessionService.ExitEvaluation(c.Context())
	})
}

func (h *sessionHandler) OpenAdPage(c *fiber.Ctx) error {
	return h.transition(c, func() (entities.Session, error) {
		return h.sessionService.OpenAdPage(c.Context())
	})
}

func (h *sessionHandler) CloseAdPage(c *fiber.Ctx) error {
	return h.transition(c, func() (entities.Session, error) {
		return h.sessionService.CloseAdPage(c.Context())
	})
}

func (h *sessionHandler) StartSurvey(c *fiber.Ctx) error {
	return h.transition(c, func() (entities.Session, error) {
		return h.sessionService.StartSurvey(c.Context())
	})
}

func (h *sessionHandler) AdvanceSurvey(c *fiber.Ctx) error {
	return h.transition(c, func() (entities.Session, error) {
		return h.sessionService.AdvanceSurvey(c.Context())
	})
}

func (h *sessionHandler) SkipSurvey(c *fiber.Ctx) error {
	return h.transition(c, func() (entities.Session, error) {
		return h.sessionService.CloseSurvey(c.Context())
	})
}
