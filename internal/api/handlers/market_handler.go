package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gogiieum/domain"
	"gogiieum/internal/api/presenters"
	"gogiieum/pkg/market"
)

type (
	MarketHandler interface {
		Quote(c *fiber.Ctx) error
		Checkout(c *fiber.Ctx) error
	}

	marketHandler struct {
		marketService market.MarketService
		validator     *validator.Validate
	}
)

func NewMarketHandler(marketService market.MarketService, validator *validator.Validate) MarketHandler {
	return &marketHandler{
		marketService: marketService,
		validator:     validator,
	}
}

func (h *marketHandler) Quote(c *fiber.Ctx) error {
	req := new(domain.CheckoutRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedQuote, err)
	}

	quote, err := h.marketService.Quote(c.Context(), *req)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrProductNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedQuote, err)
	}

	return presenters.SuccessResponse(c, quote, fiber.StatusOK, domain.MessageSuccessQuote)
}

func (h *marketHandler) Checkout(c *fiber.Ctx) error {
	req := new(domain.CheckoutRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckout, err)
	}

	resp, err := h.marketService.Checkout(c.Context(), *req)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrProductNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedCheckout, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessCheckout)
}
