package handlers

import (
	"fmt"
	"log/slog"

	"outfitrental/internal/models"
	"outfitrental/internal/services"

	"github.com/gofiber/fiber/v2"
)

var itemMessages = resourceMessages{
	notFound: "The item was not found",
	invalid:  "Invalid item",
}

// ItemHandler handles HTTP requests for items.
type ItemHandler struct {
	service *services.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service *services.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// RegisterRoutes registers the item routes. Writes pass through guard.
func (h *ItemHandler) RegisterRoutes(router fiber.Router, guard Guard) {
	items := router.Group("/items")
	items.Get("/", h.HandleGetItems)
	items.Get("/:id", h.HandleGetItemByID)
	items.Post("/", guarded(guard, h.HandleCreateItem)...)
	items.Delete("/:id", guarded(guard, h.HandleDeleteItem)...)
}

// HandleGetItems lists every item.
func (h *ItemHandler) HandleGetItems(c *fiber.Ctx) error {
	items, err := h.service.GetAllItems(c.UserContext())
	if err != nil {
		return respondError(c, err, itemMessages)
	}
	return success(c, fiber.StatusOK, fiber.Map{"items": items})
}

// HandleGetItemByID returns a single item.
func (h *ItemHandler) HandleGetItemByID(c *fiber.Ctx) error {
	item, err := h.service.GetItemByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err, itemMessages)
	}
	return success(c, fiber.StatusOK, fiber.Map{"item": item})
}

// HandleCreateItem creates an item from the request body.
func (h *ItemHandler) HandleCreateItem(c *fiber.Ctx) error {
	var item models.Item
	if err := c.BodyParser(&item); err != nil {
		slog.DebugContext(c.UserContext(), "invalid item body", "error", err)
		return fail(c, fiber.StatusBadRequest, itemMessages.invalid)
	}

	if err := h.service.CreateItem(c.UserContext(), &item); err != nil {
		return respondError(c, err, itemMessages)
	}
	return success(c, fiber.StatusCreated, fiber.Map{"createdItem": item})
}

// HandleDeleteItem removes an item. Unknown ids are not an error.
func (h *ItemHandler) HandleDeleteItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteItem(c.UserContext(), id); err != nil {
		slog.ErrorContext(c.UserContext(), "failed to delete item", "item_id", id, "error", err)
		return fail(c, fiber.StatusBadRequest, fmt.Sprintf("Item %s could not be deleted", id))
	}
	return c.JSON(fiber.Map{
		"status":  statusSuccess,
		"message": fmt.Sprintf("Item %s has been deleted", id),
	})
}
