package handlers

import (
	"log/slog"

	"outfitrental/internal/models"
	"outfitrental/internal/services"

	"github.com/gofiber/fiber/v2"
)

var authMessages = resourceMessages{
	notFound: "Invalid information",
	invalid:  "Invalid user",
}

// SignupRequest represents the request body for sign-up.
type SignupRequest struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SigninRequest represents the request body for sign-in.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers the authentication routes. limiter, when not nil,
// runs in front of both routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, limiter fiber.Handler) {
	router.Post("/signup", guarded(Guard(limiter), h.HandleSignup)...)
	router.Post("/signin", guarded(Guard(limiter), h.HandleSignin)...)
}

// HandleSignup registers a user and returns a token for it.
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		slog.DebugContext(c.UserContext(), "invalid signup body", "error", err)
		return fail(c, fiber.StatusBadRequest, authMessages.invalid)
	}

	user := models.User{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := h.authService.RegisterUser(c.UserContext(), &user); err != nil {
		return respondError(c, err, authMessages)
	}

	token, err := h.authService.GenerateToken(&user)
	if err != nil {
		return respondError(c, err, authMessages)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": statusSuccess,
		"token":  token,
	})
}

// HandleSignin checks credentials and issues a token.
func (h *AuthHandler) HandleSignin(c *fiber.Ctx) error {
	var req SigninRequest
	if err := c.BodyParser(&req); err != nil {
		slog.DebugContext(c.UserContext(), "invalid signin body", "error", err)
		return fail(c, fiber.StatusBadRequest, authMessages.invalid)
	}

	user, token, err := h.authService.LoginUser(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err, authMessages)
	}
	return c.JSON(fiber.Map{
		"status": statusSuccess,
		"data":   fiber.Map{"username": user.UserName},
		"token":  token,
	})
}
