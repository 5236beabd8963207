package handlers

import (
	"context"
	"net/http"

	"bistro-api/models"

	"github.com/gin-gonic/gin"
)

type ReviewStore interface {
	List(ctx context.Context) ([]models.Review, error)
}

type ReviewHandler struct {
	store ReviewStore
}

func NewReviewHandler(s ReviewStore) *ReviewHandler {
	return &ReviewHandler{store: s}
}

// List returns all customer reviews (public)
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching reviews data"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}
