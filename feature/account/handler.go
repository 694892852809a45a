package account

import (
	"errors"

	"collection-tracker/core/logger"
	"collection-tracker/core/utils"
	"collection-tracker/feature/collection/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for accounts.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the account routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/auth/google-login", h.HandleGoogleLogin)
	app.Put("/users/:id/avatar", h.HandleUploadAvatar)
}

type loginRequest struct {
	Token string `json:"token"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// HandleGoogleLogin verifies a Google credential and issues an API token.
// @Summary Google sign-in
// @Description Verify a Google ID token, create or update the account, and issue a JWT.
// @Tags account
// @Accept json
// @Produce json
// @Param request body loginRequest true "Google ID token"
// @Success 200 {object} loginResponse "Token and account"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /auth/google-login [post]
func (h *Handler) HandleGoogleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil || req.Token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	l := logger.WithRayID(h.logger, c)

	token, user, err := h.service.Login(c.Context(), req.Token)
	if errors.Is(err, ErrInvalidCredential) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credential"})
	}
	if err != nil {
		l.Error("Sign-in failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("User signed in", zap.Int("user_id", user.ID))
	return c.JSON(loginResponse{Token: token, User: user})
}

// HandleUploadAvatar stores a new avatar for a user.
// @Summary Upload avatar
// @Description Store an avatar image in object storage and record it on the account.
// @Tags account
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "User ID"
// @Param file formData file true "Avatar image"
// @Success 200 {object} map[string]string "Stored object path"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /users/{id}/avatar [put]
func (h *Handler) HandleUploadAvatar(c *fiber.Ctx) error {
	userID := utils.ToInt(c.Params("id"))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing file"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unreadable file"})
	}
	defer file.Close()

	l := logger.WithRayID(h.logger, c)

	logo, err := h.service.UploadAvatar(
		c.Context(),
		userID,
		fileHeader.Filename,
		fileHeader.Header.Get(fiber.HeaderContentType),
		file,
		fileHeader.Size,
	)
	if err != nil {
		l.Error("Avatar upload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"logo": logo})
}
