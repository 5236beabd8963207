package handlers

import (
	"net/http"

	"bistro-api/middleware"

	"github.com/gin-gonic/gin"
)

type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

type AuthHandler struct {
	secret []byte
}

func NewAuthHandler(secret []byte) *AuthHandler {
	return &AuthHandler{secret: secret}
}

// IssueToken signs a short-lived JWT for the supplied identity. The
// frontend calls this right after its own sign-in flow completes.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := middleware.GenerateToken(req.Email, req.Name, h.secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
