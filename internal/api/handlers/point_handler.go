package handlers

import (
	"github.com/gofiber/fiber/v2"

	"gogiieum/domain"
	"gogiieum/internal/api/presenters"
	"gogiieum/pkg/point"
)

type (
	PointHandler interface {
		GetBalance(c *fiber.Ctx) error
		GetHistory(c *fiber.Ctx) error
	}

	pointHandler struct {
		pointService point.PointService
	}
)

func NewPointHandler(pointService point.PointService) PointHandler {
	return &pointHandler{
		pointService: pointService,
	}
}

func (h *pointHandler) GetBalance(c *fiber.Ctx) error {
	balance, err := h.pointService.GetBalance(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, domain.BalanceResponse{Balance: balance}, fiber.StatusOK, domain.MessageSuccessGetBalance)
}

func (h *pointHandler) GetHistory(c *fiber.Ctx) error {
	transactions, err := h.pointService.GetHistory(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetHistory, err)
	}

	return presenters.SuccessResponse(c, transactions, fiber.StatusOK, domain.MessageSuccessGetHistory)
}
