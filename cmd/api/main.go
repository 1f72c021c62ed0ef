package main

import (
	"log"
	"os"
	"time"

	"github.com/hamadino877/Al-Nile-Gourmet/internal/assistant"
	"github.com/hamadino877/Al-Nile-Gourmet/internal/cart"
	"github.com/hamadino877/Al-Nile-Gourmet/internal/catalog"
	"github.com/hamadino877/Al-Nile-Gourmet/internal/favorites"
	"github.com/hamadino877/Al-Nile-Gourmet/internal/logger"
	"github.com/hamadino877/Al-Nile-Gourmet/internal/middleware"
	"github.com/hamadino877/Al-Nile-Gourmet/internal/order"
	"github.com/hamadino877/Al-Nile-Gourmet/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"DATABASE_URL",
		"CATALOG_PATH",
		"WHATSAPP_NUMBER",
		"GEMINI_API_KEY",
		"GEMINI_MODEL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("missing env var: %s", k)
		}
	}

	logg := logger.New("storefront-api")

	// ───────────────────────── CATALOG ─────────────────────────
	cat, err := catalog.Load(os.Getenv("CATALOG_PATH"))
	if err != nil {
		log.Fatal("catalog load failed: ", err)
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := storage.ConnectPostgres()
	defer pgDB.Close()

	store := storage.NewPostgresStore(pgDB)

	// ───────────────────────── CORE ─────────────────────────
	engine := cart.NewEngine(store, logg)
	engine.Subscribe(func(ev cart.Event) {
		logg.Info("cart_event", string(ev.Kind), "", map[string]interface{}{
			"line_id": ev.Line.Key.String(),
			"qty":     ev.Line.Qty,
		})
	})

	tracker := favorites.NewTracker(store, logg)

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logg))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── HANDLERS ─────────────────────────
	catalogHandler := catalog.NewHandler(cat)
	cartHandler := cart.NewHandler(engine, cat)
	favoritesHandler := favorites.NewHandler(tracker, cat)
	orderHandler := order.NewHandler(engine, os.Getenv("WHATSAPP_NUMBER"))
	assistantHandler := assistant.NewHandler(assistant.NewGeminiClient(), logg)

	// ───────────────────────── CATALOG ROUTES ─────────────────────────
	catalogGroup := r.Group("/catalog")
	{
		catalogGroup.GET("", catalogHandler.List)
		catalogGroup.GET("/search", catalogHandler.Search)
	}

	// ───────────────────────── CART ROUTES ─────────────────────────
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartHandler.Get)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PATCH("/items/:id", cartHandler.UpdateQty)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveLine)
		cartGroup.DELETE("", cartHandler.Clear)
	}

	// ───────────────────────── FAVORITES ROUTES ─────────────────────────
	favoritesGroup := r.Group("/favorites")
	{
		favoritesGroup.GET("", favoritesHandler.List)
		favoritesGroup.POST("/:id/toggle", favoritesHandler.Toggle)
	}

	// ───────────────────────── ORDER + ASSISTANT ─────────────────────────
	r.POST("/order/checkout", orderHandler.Checkout)
	r.POST("/assistant/chat", assistantHandler.Chat)

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Println("API running at http://localhost:" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
