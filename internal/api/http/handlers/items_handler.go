package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/campus-kit/lostfound-service/internal/api/dto"
	"github.com/campus-kit/lostfound-service/internal/auth"
	"github.com/campus-kit/lostfound-service/internal/domain"
	"github.com/campus-kit/lostfound-service/internal/service"
	apperrors "github.com/campus-kit/lostfound-service/pkg/util"
)

// ItemsHandler exposes the lost item endpoints.
type ItemsHandler struct {
	items *service.ItemService
}

// NewItemsHandler constructs handler.
func NewItemsHandler(itemService *service.ItemService) *ItemsHandler {
	return &ItemsHandler{items: itemService}
}

// ListActive handles GET /items/active.
func (h *ItemsHandler) ListActive(c *fiber.Ctx) error {
	return h.listByStatus(c, domain.ItemStatusActive)
}

// ListCollected handles GET /items/collected.
func (h *ItemsHandler) ListCollected(c *fiber.Ctx) error {
	return h.listByStatus(c, domain.ItemStatusCollected)
}

// ListArchived handles GET /items/archived.
func (h *ItemsHandler) ListArchived(c *fiber.Ctx) error {
	return h.listByStatus(c, domain.ItemStatusArchived)
}

func (h *ItemsHandler) listByStatus(c *fiber.Ctx, status domain.ItemStatus) error {
	items, err := h.items.ListByStatus(c.Context(), status)
	if err != nil {
		return err
	}
	result := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, dto.FromAnnotatedItem(item))
	}
	return c.JSON(fiber.Map{"data": result})
}

// ListMine handles GET /items/mine.
func (h *ItemsHandler) ListMine(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	items, err := h.items.ListMine(c.Context(), principalProfile(principal))
	if err != nil {
		return err
	}
	result := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, dto.FromItem(item))
	}
	return c.JSON(fiber.Map{"data": result})
}

// Add handles POST /items.
func (h *ItemsHandler) Add(c *fiber.Ctx) error {
	var req dto.AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Description == "" || req.FoundLocation == "" || req.CollectLocation == "" {
		return apperrors.NewValidationError("description, found_location, collect_location required", nil)
	}

	principal, _ := auth.PrincipalFromContext(c)
	id, err := h.items.Add(c.Context(), principalProfile(principal), service.AddItemInput{
		Description:     req.Description,
		FoundLocation:   req.FoundLocation,
		CollectLocation: req.CollectLocation,
		ImageKey:        req.ImageKey,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"id": id},
	})
}

// MarkCollected handles POST /items/:id/collect.
func (h *ItemsHandler) MarkCollected(c *fiber.Ctx) error {
	itemID := c.Params("id")
	if itemID == "" {
		return apperrors.NewValidationError("item id required", nil)
	}

	principal, _ := auth.PrincipalFromContext(c)
	if err := h.items.MarkCollected(c.Context(), principalProfile(principal), itemID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func principalProfile(principal *auth.Principal) *domain.Profile {
	if principal == nil {
		return nil
	}
	return principal.Profile
}
