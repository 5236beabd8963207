package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bistro-api/config"
	"bistro-api/gateway"
	"bistro-api/handlers"
	"bistro-api/routes"
	"bistro-api/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.DebugMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := config.ConnectDB(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}
	log.Println("✅ Successfully connected to MongoDB!")

	// Stores share the one client pool for the life of the process.
	users := store.NewUserStore(db)
	menu := store.NewMenuStore(db)
	reviews := store.NewReviewStore(db)
	carts := store.NewCartStore(db)
	payments := store.NewPaymentStore(db)

	r := gin.Default()
	r.Use(cors.Default())

	// Health check endpoint
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "Bistro Ordering API"})
	})

	routes.SetupRoutes(r, routes.Deps{
		JWTSecret: []byte(cfg.JWTSecret),
		Roles:     users,
		Auth:      handlers.NewAuthHandler([]byte(cfg.JWTSecret)),
		Menu:      handlers.NewMenuHandler(menu),
		Users:     handlers.NewUserHandler(users),
		Reviews:   handlers.NewReviewHandler(reviews),
		Carts:     handlers.NewCartHandler(carts),
		Payments:  handlers.NewPaymentHandler(payments, carts, gateway.NewStripeGateway(cfg.StripeSecretKey)),
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Println("🚀 Server running on port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error: ", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("Server shutdown: ", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Println("MongoDB disconnect: ", err)
	}
}
