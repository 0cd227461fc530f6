package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/AnshRaj112/emogo-backend/internal/config"
	"github.com/AnshRaj112/emogo-backend/internal/database"
	"github.com/AnshRaj112/emogo-backend/internal/handlers"
	"github.com/AnshRaj112/emogo-backend/internal/routes"
	"github.com/AnshRaj112/emogo-backend/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func main() {
	// Load env
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}
	// Load configuration
	cfg := config.Load()

	// Connect to MongoDB
	log.Printf("Connecting to MongoDB...")
	conn, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer conn.Disconnect()

	// Upload directory (created if missing)
	uploads, err := store.New(cfg.UploadDir)
	if err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}
	log.Printf("✅ Upload store ready at %s", uploads.Dir())

	h := handlers.New(database.NewMongoStore(conn), uploads)

	// Setup router
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	routes.SetupRoutes(r, h)

	// Log registered routes for debugging
	log.Println("📋 Registered routes:")
	log.Println("  GET  /")
	log.Println("  GET  /health")
	log.Println("  GET  /download/{filename}")
	log.Println("  GET  /download-all")
	log.Println("  GET  /uploads/*")
	log.Println("  POST /api/moods")
	log.Println("  GET  /export")
	log.Println("  GET  /export/vlog")
	log.Println("  GET  /export/sentiments")
	log.Println("  GET  /export/gps")

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("🚀 EMOGO backend running on :%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("Failed to start server:", err)
	}
	log.Println("Server stopped")
}
