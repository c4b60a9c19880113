package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Jonathan-dev2002/minishop-api/models"
	"github.com/Jonathan-dev2002/minishop-api/routes"
	"github.com/Jonathan-dev2002/minishop-api/search"
	"github.com/Jonathan-dev2002/minishop-api/services"
	"github.com/Jonathan-dev2002/minishop-api/store"
	"github.com/Jonathan-dev2002/minishop-api/syncer"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Search index client
	searchClient := search.NewClient(
		getEnv("MEILI_HOST", "http://localhost:7700"),
		os.Getenv("MEILI_API_KEY"),
	)

	// Apply index settings in the background so a slow or down index
	// cannot block startup.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := searchClient.EnsureSettings(ctx); err != nil {
			log.Printf("⚠️ Failed to apply search index settings: %v", err)
		} else {
			log.Println("✅ Search index settings applied")
		}
	}()

	// Stores
	productStore := store.NewProductStore(db)
	categoryStore := store.NewCategoryStore(db)
	cartStore := store.NewCartStore(db)
	userStore := store.NewUserStore(db)

	// Catalog → search index synchronizer
	catalogSyncer := syncer.New(searchClient, productStore)

	// Services
	svcs := routes.Services{
		Auth:       services.NewAuthService(userStore),
		Users:      services.NewUserService(userStore),
		Products:   services.NewProductService(productStore, searchClient, catalogSyncer),
		Categories: services.NewCategoryService(categoryStore),
		Cart:       services.NewCartService(cartStore, productStore),
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, svcs)

	// Start server
	port := getEnv("PORT", "8080")
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	config := &gorm.Config{TranslateError: true}

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), config)
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), config)
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
