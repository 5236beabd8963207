package routes

import (
	"bistro-api/handlers"
	"bistro-api/middleware"

	"github.com/gin-gonic/gin"
)

// Deps carries everything the route table needs wired in.
type Deps struct {
	JWTSecret []byte
	Roles     middleware.RoleLookup

	Auth     *handlers.AuthHandler
	Menu     *handlers.MenuHandler
	Users    *handlers.UserHandler
	Reviews  *handlers.ReviewHandler
	Carts    *handlers.CartHandler
	Payments *handlers.PaymentHandler
}

// SetupRoutes registers the full API surface. Paths mirror what the
// frontend already calls, including the /remenu and /Payment spellings.
func SetupRoutes(r *gin.Engine, d Deps) {
	auth := middleware.AuthRequired(d.JWTSecret)
	admin := middleware.AdminRequired(d.Roles)

	// ── Public ─────────────────────────────────────────────────────
	r.POST("/jwt", d.Auth.IssueToken)
	r.GET("/menu", d.Menu.List)
	r.GET("/menu/:id", d.Menu.Get)
	r.GET("/remenu", d.Reviews.List)
	r.POST("/users", d.Users.Create)
	r.POST("/create-payment-intent", d.Payments.CreateIntent)

	// ── Authenticated ──────────────────────────────────────────────
	r.GET("/users/admin/:email", auth, d.Users.CheckAdmin)
	r.GET("/carts", auth, d.Carts.List)
	r.POST("/carts", auth, d.Carts.Add)
	r.DELETE("/carts/:id", auth, d.Carts.Remove)
	r.GET("/Payment/:email", auth, d.Payments.History)
	r.POST("/Payment", auth, d.Payments.Record)

	// ── Admin ──────────────────────────────────────────────────────
	r.POST("/menu", auth, admin, d.Menu.Create)
	r.PATCH("/menu/:id", auth, admin, d.Menu.Update)
	r.DELETE("/menu/:id", auth, admin, d.Menu.Delete)
	r.GET("/users", auth, admin, d.Users.List)
	r.PATCH("/users/admin/:id", auth, admin, d.Users.Promote)
	r.DELETE("/users/:id", auth, admin, d.Users.Delete)
}
