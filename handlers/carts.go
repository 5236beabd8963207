package handlers

import (
	"context"
	"net/http"

	"bistro-api/middleware"
	"bistro-api/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartStore interface {
	ListByEmail(ctx context.Context, email string) ([]models.CartEntry, error)
	Insert(ctx context.Context, entry *models.CartEntry) (string, error)
	DeleteOwned(ctx context.Context, id primitive.ObjectID, email string) (int64, error)
}

type CartHandler struct {
	store CartStore
}

func NewCartHandler(s CartStore) *CartHandler {
	return &CartHandler{store: s}
}

type AddCartRequest struct {
	MenuID string  `json:"menuId" binding:"required"`
	Name   string  `json:"name" binding:"required"`
	Image  string  `json:"image"`
	Price  float64 `json:"price" binding:"required,gt=0"`
}

// List returns the caller's cart. The email query parameter must match the
// verified identity; carts are never readable across accounts.
func (h *CartHandler) List(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}
	if email != middleware.GetEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
		return
	}
	entries, err := h.store.ListByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Add puts a menu item into the caller's cart. The owner email comes from
// the verified claims, never from the body.
func (h *CartHandler) Add(c *gin.Context) {
	var req AddCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := models.CartEntry{
		Email:  middleware.GetEmail(c),
		MenuID: req.MenuID,
		Name:   req.Name,
		Image:  req.Image,
		Price:  req.Price,
	}
	insertedID, err := h.store.Insert(c.Request.Context(), &entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add cart item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": insertedID})
}

// Remove deletes one cart entry. The delete is scoped to the caller's
// email, so removing somebody else's entry (or one already gone) reports a
// zero count instead of failing.
func (h *CartHandler) Remove(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item id"})
		return
	}
	deleted, err := h.store.DeleteOwned(c.Request.Context(), id, middleware.GetEmail(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
