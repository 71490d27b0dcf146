package handlers

import (
	"net/http"
	"strconv"

	"records-api/internal/models"
	"records-api/internal/storage"

	"github.com/gin-gonic/gin"
)

// ItemHandler handles item operations
type ItemHandler struct {
	storage storage.ItemStore
}

// NewItemHandler creates a new item handler
func NewItemHandler(store storage.ItemStore) *ItemHandler {
	return &ItemHandler{storage: store}
}

// Root handles GET /
func (h *ItemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"Hello": "World"})
}

// CreateItem handles POST /items. The response is the full updated list,
// with the new item last.
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var item models.Item
	if bindErr := c.ShouldBindJSON(&item); bindErr != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    "INVALID_INPUT",
			Message: "Invalid request body",
			Details: map[string]interface{}{"error": bindErr.Error()},
		})
		return
	}

	items, err := h.storage.CreateItem(item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "Failed to create item",
		})
		return
	}

	c.JSON(http.StatusOK, items)
}

// ListItems handles GET /items?limit=N
func (h *ItemHandler) ListItems(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    "INVALID_LIMIT",
			Message: "limit must be an integer",
		})
		return
	}

	items, err := h.storage.ListItems(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "Failed to list items",
		})
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetItem handles GET /items/:itemId
func (h *ItemHandler) GetItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    "INVALID_ITEM_ID",
			Message: "Item ID must be an integer",
		})
		return
	}

	item, err := h.storage.GetItem(index)
	if err != nil {
		if err == storage.ErrItemNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Code:    "ITEM_NOT_FOUND",
				Message: "Item not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "Failed to retrieve item",
		})
		return
	}

	c.JSON(http.StatusOK, item)
}
