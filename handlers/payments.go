package handlers

import (
	"context"
	"net/http"

	"bistro-api/gateway"
	"bistro-api/middleware"
	"bistro-api/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentStore interface {
	Insert(ctx context.Context, p *models.Payment) (string, error)
	ListByEmail(ctx context.Context, email string) ([]models.Payment, error)
}

// CartClearer removes the cart entries a settlement pays for.
type CartClearer interface {
	DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

type PaymentHandler struct {
	store   PaymentStore
	carts   CartClearer
	gateway gateway.PaymentGateway
}

func NewPaymentHandler(s PaymentStore, carts CartClearer, gw gateway.PaymentGateway) *PaymentHandler {
	return &PaymentHandler{store: s, carts: carts, gateway: gw}
}

type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

type SettlementRequest struct {
	Email         string   `json:"email" binding:"required,email"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	TransactionID string   `json:"transactionId"`
	CartIDs       []string `json:"cartIds" binding:"required,min=1"`
	MenuIDs       []string `json:"menuIds"`
	Status        string   `json:"status"`
}

// CreateIntent asks the gateway for a PaymentIntent and hands back the
// client secret. Pure proxy: nothing is persisted here.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a positive number"})
		return
	}

	// Minor units, truncated the same way the frontend rounds.
	amount := int64(req.Price * 100)
	clientSecret, err := h.gateway.CreateIntent(c.Request.Context(), amount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// History returns the caller's settled payments. Self-only.
func (h *PaymentHandler) History(c *gin.Context) {
	email := c.Param("email")
	if email != middleware.GetEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
		return
	}
	payments, err := h.store.ListByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

// Record persists a settlement, then clears the cart entries it paid for.
// Insert comes first: a crash in between leaves a recorded payment with
// stale cart entries, which a retry can re-delete, whereas a vanished cart
// with no payment record cannot be reconstructed. Ids that already got
// deleted are skipped, so re-running the same settlement succeeds with a
// zero deletedCount.
func (h *PaymentHandler) Record(c *gin.Context) {
	var req SettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Email != middleware.GetEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
		return
	}

	cartIDs := make([]primitive.ObjectID, 0, len(req.CartIDs))
	for _, raw := range req.CartIDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item id: " + raw})
			return
		}
		cartIDs = append(cartIDs, id)
	}

	payment := models.Payment{
		Email:         req.Email,
		Price:         req.Price,
		TransactionID: req.TransactionID,
		CartIDs:       req.CartIDs,
		MenuIDs:       req.MenuIDs,
		Status:        req.Status,
	}
	insertedID, err := h.store.Insert(c.Request.Context(), &payment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	deleted, err := h.carts.DeleteMany(c.Request.Context(), cartIDs)
	if err != nil {
		// The payment is already on record; report the partial outcome so
		// the client can retry the cart cleanup.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "Payment recorded but cart cleanup failed",
			"insertedId": insertedID,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": insertedID, "deletedCount": deleted})
}
