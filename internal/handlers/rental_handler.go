package handlers

import (
	"log/slog"

	"outfitrental/internal/models"
	"outfitrental/internal/services"

	"github.com/gofiber/fiber/v2"
)

var rentalMessages = resourceMessages{
	notFound: "The rental was not found",
	invalid:  "Invalid rental",
}

// RentalHandler handles HTTP requests for outfit rentals.
type RentalHandler struct {
	service *services.RentalService
}

// NewRentalHandler creates a new RentalHandler.
func NewRentalHandler(service *services.RentalService) *RentalHandler {
	return &RentalHandler{service: service}
}

// RegisterRoutes registers the rental routes. Creation passes through guard.
func (h *RentalHandler) RegisterRoutes(router fiber.Router, guard Guard) {
	rentals := router.Group("/outfitRental")
	rentals.Get("/", h.HandleGetRentals)
	rentals.Get("/:id", h.HandleGetRentalByID)
	rentals.Post("/", guarded(guard, h.HandleCreateRental)...)
}

// HandleGetRentals lists every rental.
func (h *RentalHandler) HandleGetRentals(c *fiber.Ctx) error {
	rentals, err := h.service.GetAllRentals(c.UserContext())
	if err != nil {
		return respondError(c, err, rentalMessages)
	}
	return success(c, fiber.StatusOK, fiber.Map{"outfitRentals": rentals})
}

// HandleGetRentalByID returns a single rental.
func (h *RentalHandler) HandleGetRentalByID(c *fiber.Ctx) error {
	rental, err := h.service.GetRentalByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err, rentalMessages)
	}
	return success(c, fiber.StatusOK, fiber.Map{"outfitRental": rental})
}

// HandleCreateRental books an outfit.
func (h *RentalHandler) HandleCreateRental(c *fiber.Ctx) error {
	var rental models.OutfitRental
	if err := c.BodyParser(&rental); err != nil {
		slog.DebugContext(c.UserContext(), "invalid rental body", "error", err)
		return fail(c, fiber.StatusBadRequest, rentalMessages.invalid)
	}

	if err := h.service.CreateRental(c.UserContext(), &rental); err != nil {
		return respondError(c, err, rentalMessages)
	}
	return success(c, fiber.StatusCreated, fiber.Map{"outfitRental": rental})
}
