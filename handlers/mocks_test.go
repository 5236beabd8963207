package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"bistro-api/middleware"
	"bistro-api/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var testSecret = []byte("test-secret")

func init() {
	gin.SetMode(gin.TestMode)
}

// MockMenuStore implements MenuStore for testing
type MockMenuStore struct {
	ListFunc   func(ctx context.Context, category string) ([]models.MenuItem, error)
	GetFunc    func(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error)
	InsertFunc func(ctx context.Context, item *models.MenuItem) (string, error)
	UpdateFunc func(ctx context.Context, id primitive.ObjectID, item *models.MenuItem) (int64, int64, error)
	DeleteFunc func(ctx context.Context, id primitive.ObjectID) (int64, error)
}

func (m *MockMenuStore) List(ctx context.Context, category string) ([]models.MenuItem, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, category)
	}
	return nil, nil
}

func (m *MockMenuStore) Get(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMenuStore) Insert(ctx context.Context, item *models.MenuItem) (string, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, item)
	}
	return primitive.NewObjectID().Hex(), nil
}

func (m *MockMenuStore) Update(ctx context.Context, id primitive.ObjectID, item *models.MenuItem) (int64, int64, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, item)
	}
	return 1, 1, nil
}

func (m *MockMenuStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 1, nil
}

// MockUserStore implements UserStore and middleware.RoleLookup for testing
type MockUserStore struct {
	FindByEmailFunc    func(ctx context.Context, email string) (*models.User, error)
	ListFunc           func(ctx context.Context) ([]models.User, error)
	InsertFunc         func(ctx context.Context, u *models.User) (string, error)
	PromoteToAdminFunc func(ctx context.Context, id primitive.ObjectID) (int64, int64, error)
	DeleteFunc         func(ctx context.Context, id primitive.ObjectID) (int64, error)
	RoleByEmailFunc    func(ctx context.Context, email string) (models.UserRole, error)
}

func (m *MockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserStore) List(ctx context.Context) ([]models.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserStore) Insert(ctx context.Context, u *models.User) (string, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, u)
	}
	return primitive.NewObjectID().Hex(), nil
}

func (m *MockUserStore) PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (int64, int64, error) {
	if m.PromoteToAdminFunc != nil {
		return m.PromoteToAdminFunc(ctx, id)
	}
	return 1, 1, nil
}

func (m *MockUserStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 1, nil
}

func (m *MockUserStore) RoleByEmail(ctx context.Context, email string) (models.UserRole, error) {
	if m.RoleByEmailFunc != nil {
		return m.RoleByEmailFunc(ctx, email)
	}
	return models.RoleUser, nil
}

// MockCartStore implements CartStore and CartClearer for testing
type MockCartStore struct {
	ListByEmailFunc func(ctx context.Context, email string) ([]models.CartEntry, error)
	InsertFunc      func(ctx context.Context, entry *models.CartEntry) (string, error)
	DeleteOwnedFunc func(ctx context.Context, id primitive.ObjectID, email string) (int64, error)
	DeleteManyFunc  func(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

func (m *MockCartStore) ListByEmail(ctx context.Context, email string) ([]models.CartEntry, error) {
	if m.ListByEmailFunc != nil {
		return m.ListByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockCartStore) Insert(ctx context.Context, entry *models.CartEntry) (string, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, entry)
	}
	return primitive.NewObjectID().Hex(), nil
}

func (m *MockCartStore) DeleteOwned(ctx context.Context, id primitive.ObjectID, email string) (int64, error) {
	if m.DeleteOwnedFunc != nil {
		return m.DeleteOwnedFunc(ctx, id, email)
	}
	return 1, nil
}

func (m *MockCartStore) DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if m.DeleteManyFunc != nil {
		return m.DeleteManyFunc(ctx, ids)
	}
	return int64(len(ids)), nil
}

// MockPaymentStore implements PaymentStore for testing
type MockPaymentStore struct {
	InsertFunc      func(ctx context.Context, p *models.Payment) (string, error)
	ListByEmailFunc func(ctx context.Context, email string) ([]models.Payment, error)
}

func (m *MockPaymentStore) Insert(ctx context.Context, p *models.Payment) (string, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, p)
	}
	return primitive.NewObjectID().Hex(), nil
}

func (m *MockPaymentStore) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	if m.ListByEmailFunc != nil {
		return m.ListByEmailFunc(ctx, email)
	}
	return nil, nil
}

// MockGateway implements gateway.PaymentGateway for testing
type MockGateway struct {
	CreateIntentFunc func(ctx context.Context, amount int64) (string, error)
}

func (m *MockGateway) CreateIntent(ctx context.Context, amount int64) (string, error) {
	if m.CreateIntentFunc != nil {
		return m.CreateIntentFunc(ctx, amount)
	}
	return "cs_test_secret", nil
}

// tokenFor signs a test token for the given identity
func tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := middleware.GenerateToken(email, "Test User", testSecret)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

// doJSON runs one request against the router and returns the recorder
func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}
