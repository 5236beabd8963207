package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"bistro-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued token stays valid. Expiry is the only
// invalidation mechanism; there is no revocation list.
const TokenTTL = time.Hour

type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// RoleLookup resolves the stored role for an authenticated email.
type RoleLookup interface {
	RoleByEmail(ctx context.Context, email string) (models.UserRole, error)
}

// GenerateToken signs a JWT for the given identity
func GenerateToken(email, name string, secret []byte) (string, error) {
	claims := Claims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// AuthRequired validates the bearer token and injects the claims into the
// request context
func AuthRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set("email", claims.Email)
		c.Set("name", claims.Name)
		c.Next()
	}
}

// AdminRequired enforces the admin role. Privilege lives in the user
// document, not the token, so the user store is consulted on every call;
// an unknown caller is forbidden, same as a non-admin one.
func AdminRequired(roles RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := GetEmail(c)
		if email == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Identity not found in context"})
			c.Abort()
			return
		}
		role, err := roles.RoleByEmail(c.Request.Context(), email)
		if err != nil || role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetEmail extracts the caller's verified email from context
func GetEmail(c *gin.Context) string {
	val, ok := c.Get("email")
	if !ok {
		return ""
	}
	email, _ := val.(string)
	return email
}
