package handlers

import (
	"context"
	"errors"
	"net/http"

	"bistro-api/middleware"
	"bistro-api/models"
	"bistro-api/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Insert(ctx context.Context, u *models.User) (string, error)
	PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (matched, modified int64, err error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type UserHandler struct {
	store UserStore
}

func NewUserHandler(s UserStore) *UserHandler {
	return &UserHandler{store: s}
}

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	PhotoURL string `json:"photoURL"`
}

// List returns every registered user — admin only
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// Create registers a user on first sign-in. Idempotent by email: an
// existing account is reported, never duplicated. Role always starts as
// plain user regardless of what the client sends.
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.store.FindByEmail(c.Request.Context(), req.Email)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "User already exists", "insertedId": nil})
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to insert user"})
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
		Role:     models.RoleUser,
	}
	insertedID, err := h.store.Insert(c.Request.Context(), &user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to insert user"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": insertedID})
}

// CheckAdmin reports whether the caller is an admin. Self-only: the email
// in the path must match the verified identity.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")
	if email != middleware.GetEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
		return
	}

	user, err := h.store.FindByEmail(c.Request.Context(), email)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{"isAdmin": false})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": user.Role == models.RoleAdmin})
}

// Promote grants the admin role — admin only. This is the single write
// path that can set role to admin.
func (h *UserHandler) Promote(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	matched, modified, err := h.store.PromoteToAdmin(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	if matched == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": matched, "modifiedCount": modified})
}

// Delete removes a user account — admin only
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	deleted, err := h.store.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
