package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gogiieum/domain"
	"gogiieum/internal/api/presenters"
	"gogiieum/pkg/community"
)

type (
	CommunityHandler interface {
		GetFeed(c *fiber.Ctx) error
		GetMeta(c *fiber.Ctx) error
		CreatePost(c *fiber.Ctx) error
	}

	communityHandler struct {
		communityService community.CommunityService
		validator        *validator.Validate
	}
)

func NewCommunityHandler(communityService community.CommunityService, validator *validator.Validate) CommunityHandler {
	return &communityHandler{
		communityService: communityService,
		validator:        validator,
	}
}

func (h *communityHandler) GetFeed(c *fiber.Ctx) error {
	feed, err := h.communityService.GetFeed(c.Context(), c.Query("category"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPosts, err)
	}

	return presenters.SuccessResponse(c, feed, fiber.StatusOK, domain.MessageSuccessGetPosts)
}

func (h *communityHandler) GetMeta(c *fiber.Ctx) error {
	meta := h.communityService.GetMeta(c.Context())
	return presenters.SuccessResponse(c, meta, fiber.StatusOK, domain.MessageSuccessGetMeta)
}

func (h *communityHandler) CreatePost(c *fiber.Ctx) error {
	req := new(domain.CreatePostRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePost, err)
	}

	post, err := h.communityService.CreatePost(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePost, err)
	}

	return presenters.SuccessResponse(c, post, fiber.StatusCreated, domain.MessageSuccessCreatePost)
}
