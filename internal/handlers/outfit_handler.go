package handlers

import (
	"log/slog"

	"outfitrental/internal/models"
	"outfitrental/internal/services"

	"github.com/gofiber/fiber/v2"
)

var outfitMessages = resourceMessages{
	notFound: "The outfit was not found",
	invalid:  "Invalid outfit",
}

// CreateOutfitRequest is the body of POST /outfits. Each entry of Items is
// either an existing item id or an inline item.
type CreateOutfitRequest struct {
	Name  string           `json:"name"`
	Items []models.ItemRef `json:"items"`
}

// OutfitHandler handles HTTP requests for outfits.
type OutfitHandler struct {
	service *services.OutfitService
}

// NewOutfitHandler creates a new OutfitHandler.
func NewOutfitHandler(service *services.OutfitService) *OutfitHandler {
	return &OutfitHandler{service: service}
}

// RegisterRoutes registers the outfit routes. Creation passes through guard.
func (h *OutfitHandler) RegisterRoutes(router fiber.Router, guard Guard) {
	outfits := router.Group("/outfits")
	outfits.Get("/", h.HandleGetOutfits)
	outfits.Get("/:id", h.HandleGetOutfitByID)
	outfits.Post("/", guarded(guard, h.HandleCreateOutfit)...)
}

// HandleGetOutfits lists the ids of every outfit.
func (h *OutfitHandler) HandleGetOutfits(c *fiber.Ctx) error {
	outfits, err := h.service.GetAllOutfits(c.UserContext())
	if err != nil {
		return respondError(c, err, outfitMessages)
	}

	ids := make([]string, 0, len(outfits))
	for _, outfit := range outfits {
		ids = append(ids, outfit.ID)
	}
	return c.JSON(fiber.Map{
		"status":  statusSuccess,
		"outfits": ids,
	})
}

// HandleGetOutfitByID returns a single outfit.
func (h *OutfitHandler) HandleGetOutfitByID(c *fiber.Ctx) error {
	outfit, err := h.service.GetOutfitByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err, outfitMessages)
	}
	return c.JSON(fiber.Map{
		"status": statusSuccess,
		"outfit": outfit,
	})
}

// HandleCreateOutfit creates an outfit, creating inline items on the way.
func (h *OutfitHandler) HandleCreateOutfit(c *fiber.Ctx) error {
	var req CreateOutfitRequest
	if err := c.BodyParser(&req); err != nil {
		slog.DebugContext(c.UserContext(), "invalid outfit body", "error", err)
		return fail(c, fiber.StatusBadRequest, outfitMessages.invalid)
	}

	outfit, err := h.service.CreateOutfit(c.UserContext(), req.Name, req.Items)
	if err != nil {
		return respondError(c, err, outfitMessages)
	}
	return success(c, fiber.StatusCreated, fiber.Map{"outfit": outfit})
}
