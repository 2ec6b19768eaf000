package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"gogiieum/domain"
	"gogiieum/internal/api/presenters"
	"gogiieum/pkg/member"
)

type (
	MemberHandler interface {
		Register(c *fiber.Ctx) error
	}

	memberHandler struct {
		memberService member.MemberService
	}
)

func NewMemberHandler(memberService member.MemberService) MemberHandler {
	return &memberHandler{
		memberService: memberService,
	}
}

// Register handles signup. Field validation errors come back with the full
// per-field map so the form can render every violation at once.
func (h *memberHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	resp, err := h.memberService.Register(c.Context(), *req)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrUsernameTaken) {
			status = fiber.StatusConflict
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedRegister, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusCreated, domain.MessageSuccessRegister)
}
