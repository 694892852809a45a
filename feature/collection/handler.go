package collection

import (
	"collection-tracker/core/logger"
	"collection-tracker/core/utils"
	"collection-tracker/feature/collection/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for collection maintenance.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the collection routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/collection")

	group.Get("/sets", h.HandleListSets)
	group.Get("/set-types", h.HandleListSetTypes)
	group.Get("/categories", h.HandleListCategories)

	group.Get("/items", h.HandleInventory)
	group.Post("/items", h.HandleCreateItem)
	group.Patch("/items/:id", h.HandleUpdateItem)
	group.Delete("/items/:id", h.HandleDeleteItem)
	group.Post("/items/remove-multiple", h.HandleDeleteItems)
	group.Post("/items/bulk", h.HandleAddAll)
	group.Post("/items/bulk-preserve", h.HandleAddPreservingStatus)

	group.Post("/sets/:id/join", h.HandleJoinSet)
	group.Post("/sets/:id/leave", h.HandleLeaveSet)
	group.Post("/sets/:id/remove-duplicates", h.HandleRemoveDuplicates)
	group.Delete("/sets/:id", h.HandleDeleteSet)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	logger.WithRayID(h.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// HandleListSets returns all sets.
// @Summary List sets
// @Tags collection
// @Produce json
// @Success 200 {array} models.Set
// @Router /collection/sets [get]
func (h *Handler) HandleListSets(c *fiber.Ctx) error {
	sets, err := h.service.ListSets(c.Context())
	if err != nil {
		return h.fail(c, "Listing sets failed", err)
	}
	return c.JSON(sets)
}

// HandleListSetTypes returns all set types.
// @Summary List set types
// @Tags collection
// @Produce json
// @Success 200 {array} models.SetType
// @Router /collection/set-types [get]
func (h *Handler) HandleListSetTypes(c *fiber.Ctx) error {
	setTypes, err := h.service.ListSetTypes(c.Context())
	if err != nil {
		return h.fail(c, "Listing set types failed", err)
	}
	return c.JSON(setTypes)
}

// HandleListCategories returns all categories.
// @Summary List categories
// @Tags collection
// @Produce json
// @Success 200 {array} models.Category
// @Router /collection/categories [get]
func (h *Handler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.Context())
	if err != nil {
		return h.fail(c, "Listing categories failed", err)
	}
	return c.JSON(categories)
}

// HandleInventory returns a user's items for one set.
// @Summary Get inventory
// @Tags collection
// @Produce json
// @Param user_id query int true "User ID"
// @Param set_id query int true "Set ID"
// @Success 200 {array} models.Item
// @Router /collection/items [get]
func (h *Handler) HandleInventory(c *fiber.Ctx) error {
	userID := utils.ToInt(c.Query("user_id"))
	setID := utils.ToInt(c.Query("set_id"))

	items, err := h.service.Inventory(c.Context(), userID, setID)
	if err != nil {
		return h.fail(c, "Loading inventory failed", err)
	}
	return c.JSON(items)
}

// HandleCreateItem stores a new item and returns the refreshed inventory.
// @Summary Create item
// @Tags collection
// @Accept json
// @Produce json
// @Param item body models.Item true "Item"
// @Success 200 {array} models.Item
// @Router /collection/items [post]
func (h *Handler) HandleCreateItem(c *fiber.Ctx) error {
	var item models.Item
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	items, err := h.service.CreateItem(c.Context(), item)
	if err != nil {
		return h.fail(c, "Creating item failed", err)
	}
	return c.JSON(items)
}

// HandleUpdateItem updates an item and returns the refreshed inventory.
// @Summary Update item
// @Tags collection
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param item body models.Item true "Item"
// @Success 200 {array} models.Item
// @Router /collection/items/{id} [patch]
func (h *Handler) HandleUpdateItem(c *fiber.Ctx) error {
	id := utils.ToInt(c.Params("id"))
	var item models.Item
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	items, err := h.service.UpdateItem(c.Context(), id, item)
	if err != nil {
		return h.fail(c, "Updating item failed", err)
	}
	return c.JSON(items)
}

// HandleDeleteItem removes one item and returns the refreshed inventory.
// @Summary Delete item
// @Tags collection
// @Produce json
// @Param id path int true "Item ID"
// @Param user_id query int true "User ID"
// @Param set_id query int true "Set ID"
// @Success 200 {array} models.Item
// @Router /collection/items/{id} [delete]
func (h *Handler) HandleDeleteItem(c *fiber.Ctx) error {
	id := utils.ToInt(c.Params("id"))
	userID := utils.ToInt(c.Query("user_id"))
	setID := utils.ToInt(c.Query("set_id"))

	items, err := h.service.DeleteItem(c.Context(), id, userID, setID)
	if err != nil {
		return h.fail(c, "Deleting item failed", err)
	}
	return c.JSON(items)
}

type deleteItemsRequest struct {
	UserID int   `json:"user_id"`
	SetID  int   `json:"set_id"`
	IDs    []int `json:"ids"`
}

// HandleDeleteItems removes several items and returns the refreshed inventory.
// @Summary Delete multiple items
// @Tags collection
// @Accept json
// @Produce json
// @Param request body deleteItemsRequest true "Items to delete"
// @Success 200 {array} models.Item
// @Router /collection/items/remove-multiple [post]
func (h *Handler) HandleDeleteItems(c *fiber.Ctx) error {
	var req deleteItemsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	items, err := h.service.DeleteItems(c.Context(), req.UserID, req.SetID, req.IDs)
	if err != nil {
		return h.fail(c, "Deleting items failed", err)
	}
	return c.JSON(items)
}

type bulkAddRequest struct {
	UserID  int         `json:"user_id"`
	SetID   int         `json:"set_id"`
	Status  int         `json:"status"`
	Entries []BulkEntry `json:"entries"`
}

// HandleAddAll bulk-adds items, overwriting the status of existing numbers.
// @Summary Bulk add items
// @Tags collection
// @Accept json
// @Produce json
// @Param request body bulkAddRequest true "Entries"
// @Success 200 {array} models.Item
// @Router /collection/items/bulk [post]
func (h *Handler) HandleAddAll(c *fiber.Ctx) error {
	var req bulkAddRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	items, err := h.service.AddAll(c.Context(), req.UserID, req.SetID, req.Status, req.Entries)
	if err != nil {
		return h.fail(c, "Bulk add failed", err)
	}
	return c.JSON(items)
}

// HandleAddPreservingStatus bulk-adds items without touching existing rows.
// @Summary Bulk add items, preserving existing status
// @Tags collection
// @Accept json
// @Produce json
// @Param request body bulkAddRequest true "Entries"
// @Success 200 {array} models.Item
// @Router /collection/items/bulk-preserve [post]
func (h *Handler) HandleAddPreservingStatus(c *fiber.Ctx) error {
	var req bulkAddRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	items, err := h.service.AddPreservingStatus(c.Context(), req.UserID, req.SetID, req.Entries)
	if err != nil {
		return h.fail(c, "Bulk add failed", err)
	}
	return c.JSON(items)
}

type membershipRequest struct {
	UserID int `json:"user_id"`
}

// HandleJoinSet adds a set to a user's collection.
// @Summary Join set
// @Tags collection
// @Accept json
// @Produce json
// @Param id path int true "Set ID"
// @Param request body membershipRequest true "User"
// @Success 200 {object} models.Membership
// @Router /collection/sets/{id}/join [post]
func (h *Handler) HandleJoinSet(c *fiber.Ctx) error {
	setID := utils.ToInt(c.Params("id"))
	var req membershipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	m, err := h.service.JoinSet(c.Context(), req.UserID, setID)
	if err != nil {
		return h.fail(c, "Joining set failed", err)
	}
	return c.JSON(m)
}

// HandleLeaveSet removes a set from a user's collection.
// @Summary Leave set
// @Tags collection
// @Accept json
// @Produce json
// @Param id path int true "Set ID"
// @Param request body membershipRequest true "User"
// @Success 200 {object} map[string]bool
// @Router /collection/sets/{id}/leave [post]
func (h *Handler) HandleLeaveSet(c *fiber.Ctx) error {
	setID := utils.ToInt(c.Params("id"))
	var req membershipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.service.LeaveSet(c.Context(), req.UserID, setID); err != nil {
		return h.fail(c, "Leaving set failed", err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// HandleRemoveDuplicates deletes every duplicate-flagged item of a set.
// @Summary Remove duplicate items
// @Tags collection
// @Produce json
// @Param id path int true "Set ID"
// @Success 200 {object} map[string]int64
// @Router /collection/sets/{id}/remove-duplicates [post]
func (h *Handler) HandleRemoveDuplicates(c *fiber.Ctx) error {
	setID := utils.ToInt(c.Params("id"))
	count, err := h.service.RemoveDuplicates(c.Context(), setID)
	if err != nil {
		return h.fail(c, "Removing duplicates failed", err)
	}
	return c.JSON(fiber.Map{"count": count})
}

// HandleDeleteSet removes a set entirely.
// @Summary Delete set
// @Tags collection
// @Produce json
// @Param id path int true "Set ID"
// @Success 200 {object} map[string]bool
// @Router /collection/sets/{id} [delete]
func (h *Handler) HandleDeleteSet(c *fiber.Ctx) error {
	setID := utils.ToInt(c.Params("id"))
	if err := h.service.DeleteSet(c.Context(), setID); err != nil {
		return h.fail(c, "Deleting set failed", err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
