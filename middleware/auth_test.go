package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bistro-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("test-secret")

func init() {
	gin.SetMode(gin.TestMode)
}

type mockRoleLookup struct {
	RoleByEmailFunc func(ctx context.Context, email string) (models.UserRole, error)
}

func (m *mockRoleLookup) RoleByEmail(ctx context.Context, email string) (models.UserRole, error) {
	if m.RoleByEmailFunc != nil {
		return m.RoleByEmailFunc(ctx, email)
	}
	return models.RoleUser, nil
}

func protectedRouter(roles RoleLookup) *gin.Engine {
	r := gin.New()
	r.GET("/authed", AuthRequired(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": GetEmail(c)})
	})
	r.GET("/admin", AuthRequired(testSecret), AdminRequired(roles), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func get(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMissingHeader(t *testing.T) {
	r := protectedRouter(&mockRoleLookup{})
	if w := get(r, "/authed", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without header, got %d", w.Code)
	}
	if w := get(r, "/authed", "Basic abc"); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for non-bearer header, got %d", w.Code)
	}
}

func TestAuthValidToken(t *testing.T) {
	token, err := GenerateToken("me@bistro.com", "Me", testSecret)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	r := protectedRouter(&mockRoleLookup{})
	w := get(r, "/authed", "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAuthExpiredToken(t *testing.T) {
	claims := Claims{
		Email: "me@bistro.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	r := protectedRouter(&mockRoleLookup{})
	if w := get(r, "/authed", "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for expired token, got %d", w.Code)
	}
}

func TestAuthWrongSecret(t *testing.T) {
	token, err := GenerateToken("me@bistro.com", "Me", []byte("some-other-secret"))
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	r := protectedRouter(&mockRoleLookup{})
	if w := get(r, "/authed", "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for wrong signature, got %d", w.Code)
	}
}

func TestAdminGate(t *testing.T) {
	roles := &mockRoleLookup{
		RoleByEmailFunc: func(ctx context.Context, email string) (models.UserRole, error) {
			if email == "admin@bistro.com" {
				return models.RoleAdmin, nil
			}
			return models.RoleUser, nil
		},
	}
	r := protectedRouter(roles)

	adminToken, _ := GenerateToken("admin@bistro.com", "Admin", testSecret)
	if w := get(r, "/admin", "Bearer "+adminToken); w.Code != http.StatusOK {
		t.Errorf("expected 200 for admin, got %d", w.Code)
	}

	userToken, _ := GenerateToken("user@bistro.com", "User", testSecret)
	if w := get(r, "/admin", "Bearer "+userToken); w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for non-admin, got %d", w.Code)
	}

	if w := get(r, "/admin", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}
}
