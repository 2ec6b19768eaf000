package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"gogiieum/domain"
	"gogiieum/internal/api/presenters"
	"gogiieum/pkg/catalog"
)

type (
	CatalogHandler interface {
		GetProducts(c *fiber.Ctx) error
		GetProduct(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
		LookupTrace(c *fiber.Ctx) error
		ListTraces(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService) CatalogHandler {
	return &catalogHandler{
		catalogService: catalogService,
	}
}

func (h *catalogHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.catalogService.ListCatalog(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, products, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *catalogHandler) GetProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProduct, err)
	}

	product, err := h.catalogService.GetProduct(c.Context(), id)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrProductNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetProduct, err)
	}

	return presenters.SuccessResponse(c, product, fiber.StatusOK, domain.MessageSuccessGetProduct)
}

func (h *catalogHandler) GetRecipes(c *fiber.Ctx) error {
	recipes, err := h.catalogService.ListRecipes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, recipes, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

// LookupTrace resolves a trace number against the government registry, with
// the static catalog as fallback. The response carries which source answered.
func (h *catalogHandler) LookupTrace(c *fiber.Ctx) error {
	input := c.Params("traceNumber")

	result, err := h.catalogService.LookupByTraceNumber(c.Context(), input)
	if err != nil {
		var notFound *domain.TraceNotFoundError
		switch {
		case errors.Is(err, domain.ErrEmptyTraceNumber):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEmptyTraceInput, err)
		case errors.As(err, &notFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedTraceLookup, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedTraceLookup, err)
		}
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessTraceLookup)
}

func (h *catalogHandler) ListTraces(c *fiber.Ctx) error {
	records, err := h.catalogService.ListAllRemote(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedTraceListAll, err)
	}

	return presenters.SuccessResponse(c, records, fiber.StatusOK, domain.MessageSuccessTraceListAll)
}
