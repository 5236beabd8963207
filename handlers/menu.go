package handlers

import (
	"context"
	"errors"
	"net/http"

	"bistro-api/models"
	"bistro-api/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuStore is the slice of the persistence layer the menu handlers need.
type MenuStore interface {
	List(ctx context.Context, category string) ([]models.MenuItem, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error)
	Insert(ctx context.Context, item *models.MenuItem) (string, error)
	Update(ctx context.Context, id primitive.ObjectID, item *models.MenuItem) (matched, modified int64, err error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type MenuHandler struct {
	store MenuStore
}

func NewMenuHandler(s MenuStore) *MenuHandler {
	return &MenuHandler{store: s}
}

type MenuItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Recipe   string  `json:"recip"`
	Image    string  `json:"image"`
}

// List returns the whole menu catalog (public)
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.store.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching menu data"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get returns a single menu item (public)
func (h *MenuHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
		return
	}
	item, err := h.store.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching menu data"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create adds a menu item — admin only
func (h *MenuHandler) Create(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.MenuItem{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Recipe:   req.Recipe,
		Image:    req.Image,
	}
	insertedID, err := h.store.Insert(c.Request.Context(), &item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "insertedId": insertedID})
}

// Update rewrites the editable fields of a menu item — admin only
func (h *MenuHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
		return
	}
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.MenuItem{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Recipe:   req.Recipe,
		Image:    req.Image,
	}
	matched, modified, err := h.store.Update(c.Request.Context(), id, &item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	if matched == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": matched, "modifiedCount": modified})
}

// Delete removes a menu item — admin only
func (h *MenuHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
		return
	}
	deleted, err := h.store.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
