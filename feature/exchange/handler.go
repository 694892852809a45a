package exchange

import (
	"collection-tracker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for exchange queries.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the exchange routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/exchanges")
	group.Post("/global", h.HandleGlobalExchanges)
	group.Post("/set", h.HandleSetExchanges)
}

type globalExchangesRequest struct {
	UserID int `json:"user_id"`
}

type setExchangesRequest struct {
	SetID  int `json:"set_id"`
	UserID int `json:"user_id"`
}

type exchangesResponse struct {
	Exchanges []Group `json:"exchanges"`
}

// HandleGlobalExchanges returns every possible exchange partner for a user.
// @Summary Global exchange scan
// @Description Find all users the requester can exchange items with, across all shared sets.
// @Tags exchanges
// @Accept json
// @Produce json
// @Param request body globalExchangesRequest true "Requesting user"
// @Success 200 {object} exchangesResponse "Exchange groups"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /exchanges/global [post]
func (h *Handler) HandleGlobalExchanges(c *fiber.Ctx) error {
	var req globalExchangesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	l := logger.WithRayID(h.logger, c)
	l.Info("Global exchange scan", zap.Int("user_id", req.UserID))

	groups := h.service.FindGlobalExchanges(c.Context(), req.UserID)
	if groups == nil {
		groups = []Group{}
	}
	return c.JSON(exchangesResponse{Exchanges: groups})
}

// HandleSetExchanges returns the exchange partners for a single set.
// @Summary Set exchange scan
// @Description Find the users holding one specific set that the requester can exchange items with.
// @Tags exchanges
// @Accept json
// @Produce json
// @Param request body setExchangesRequest true "Set and requesting user"
// @Success 200 {object} exchangesResponse "Exchange groups"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /exchanges/set [post]
func (h *Handler) HandleSetExchanges(c *fiber.Ctx) error {
	var req setExchangesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	l := logger.WithRayID(h.logger, c)
	l.Info("Set exchange scan", zap.Int("set_id", req.SetID), zap.Int("user_id", req.UserID))

	groups := h.service.FindSetExchanges(c.Context(), req.SetID, req.UserID)
	if groups == nil {
		groups = []Group{}
	}
	return c.JSON(exchangesResponse{Exchanges: groups})
}
