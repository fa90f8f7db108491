package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"nishlen_auth/internal/config"
	"nishlen_auth/internal/handler"
	"nishlen_auth/internal/middleware"
	"nishlen_auth/internal/repository"
	"nishlen_auth/internal/service"
	"nishlen_auth/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("Failed to load DB config: %v", err)
	}

	// The signing secret has no fallback. Refusing to start beats running with
	// a guessable key.
	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		log.Fatalf("JWT_SECRET_KEY not set in environment")
	}
	jwtExpHoursStr := os.Getenv("JWT_EXPIRATION_HOURS")
	jwtExpHours, err := strconv.ParseInt(jwtExpHoursStr, 10, 64)
	if err != nil || jwtExpHours <= 0 {
		log.Printf("Invalid JWT_EXPIRATION_HOURS, defaulting to 24: %v", err)
		jwtExpHours = 24
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "3001" // Default port
	}

	// Bound for concurrent bcrypt work; defaults to the CPU count.
	hashWorkers := int64(runtime.NumCPU())
	if s := os.Getenv("HASH_WORKERS"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
			hashWorkers = n
		}
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(jwtSecret, jwtExpHours)
	hasher := utils.NewPasswordHasher(hashWorkers)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, hasher, jwtUtil)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)

	// --- Setup Gin Router ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default()

	// Simple CORS middleware (allow all for development)
	// For production, configure specific origins, methods, headers
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)

	// --- Register Routes ---
	apiGroup := router.Group("/api") // Base path for API
	authHandler.RegisterAuthRoutes(apiGroup, jwtAuthMW)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(context.Background()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
