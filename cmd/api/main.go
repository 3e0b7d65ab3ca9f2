package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skillforge/skillforge-api/config"
	"github.com/skillforge/skillforge-api/internal/handlers"
	"github.com/skillforge/skillforge-api/internal/middleware"
	"github.com/skillforge/skillforge-api/internal/repository"
	"github.com/skillforge/skillforge-api/internal/services"
	"github.com/skillforge/skillforge-api/pkg/db"
	"github.com/skillforge/skillforge-api/pkg/jwt"
	"github.com/skillforge/skillforge-api/pkg/logger"
	"github.com/skillforge/skillforge-api/pkg/metrics"
	"github.com/skillforge/skillforge-api/pkg/objectstore"
	"github.com/skillforge/skillforge-api/pkg/profiling"
	"github.com/skillforge/skillforge-api/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const sessionSweepInterval = time.Hour

// registerRoutes wires the REST surface onto the router
func registerRoutes(
	router *gin.Engine,
	generalRateLimiter, authRateLimiter, writeRateLimiter *middleware.RateLimiter,
	authService services.AuthServiceInterface,
	authHandler *handlers.AuthHandler,
	moduleHandler *handlers.ModuleHandler,
	mentorHandler *handlers.MentorHandler,
	forumHandler *handlers.ForumHandler,
	challengeHandler *handlers.ChallengeHandler,
	dashboardHandler *handlers.DashboardHandler,
	profileHandler *handlers.ProfileHandler,
	healthHandler *handlers.HealthHandler,
) {
	sessionRequired := middleware.SessionMiddleware(authService)

	api := router.Group("/api")

	// Utility endpoints (operational)
	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	// Authentication
	auth := api.Group("/auth")
	auth.POST("/register", authRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(64*1024), authHandler.Register)
	auth.POST("/login", authRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(64*1024), authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/user", sessionRequired, authHandler.GetCurrentUser)

	// Learning modules (list and detail are public)
	api.GET("/modules", generalRateLimiter.Middleware(), moduleHandler.GetModules)
	api.GET("/modules/:id", generalRateLimiter.Middleware(), moduleHandler.GetModule)
	api.POST("/modules", sessionRequired, middleware.RequireAdmin(), moduleHandler.CreateModule)
	api.PUT("/modules/:id", sessionRequired, middleware.RequireAdmin(), moduleHandler.UpdateModule)
	api.PUT("/modules/:id/progress", sessionRequired, writeRateLimiter.Middleware(), moduleHandler.UpdateProgress)

	// Dashboard
	dashboard := api.Group("/dashboard", sessionRequired)
	dashboard.GET("/stats", dashboardHandler.GetStats)
	dashboard.GET("/progress", dashboardHandler.GetProgress)
	dashboard.GET("/badges", dashboardHandler.GetBadges)
	api.POST("/badges/:badgeType", sessionRequired, writeRateLimiter.Middleware(), dashboardHandler.AwardBadge)

	// Mentors and bookings
	api.GET("/mentors", generalRateLimiter.Middleware(), mentorHandler.GetMentors)
	api.GET("/mentors/:id", generalRateLimiter.Middleware(), mentorHandler.GetMentor)
	api.POST("/mentors", sessionRequired, writeRateLimiter.Middleware(), mentorHandler.CreateMentor)
	api.GET("/mentor-sessions", sessionRequired, mentorHandler.GetMentorSessions)
	api.POST("/mentor-sessions", sessionRequired, writeRateLimiter.Middleware(), mentorHandler.BookSession)

	// Q&A forum
	api.GET("/forum/posts", generalRateLimiter.Middleware(), forumHandler.GetPosts)
	api.GET("/forum/posts/:id", generalRateLimiter.Middleware(), forumHandler.GetPost)
	api.POST("/forum/posts", sessionRequired, writeRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(256*1024), forumHandler.CreatePost)
	api.POST("/forum/posts/:id/answers", sessionRequired, writeRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(256*1024), forumHandler.CreateAnswer)

	// Interview challenges
	api.GET("/challenges", generalRateLimiter.Middleware(), challengeHandler.GetChallenges)
	api.GET("/challenges/:id", generalRateLimiter.Middleware(), challengeHandler.GetChallenge)
	api.POST("/challenges", sessionRequired, middleware.RequireAdmin(), challengeHandler.CreateChallenge)
	api.GET("/challenge-attempts", sessionRequired, challengeHandler.GetUserAttempts)
	api.POST("/challenge-attempts", sessionRequired, writeRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(512*1024), challengeHandler.SubmitAttempt)

	// Profile
	api.POST("/profile/avatar", sessionRequired, writeRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(10*1024*1024), profileHandler.UploadAvatar)
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting SkillForge API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
		cfg.Observability.OTLPEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Continuous profiling (optional)
	if cfg.Profiling.Enabled {
		stopProfiler, err := profiling.InitProfiler(cfg.Profiling,
			cfg.Observability.ServiceName,
			cfg.Observability.ServiceNamespace,
			cfg.Observability.ServiceVersion,
			cfg.Observability.ServiceInstanceID,
			cfg.Server.AppEnv,
		)
		if err != nil {
			logger.Error("Failed to initialize profiler", zap.Error(err))
		} else {
			defer stopProfiler()
		}
	}

	// Start infrastructure metrics collection
	metrics.RecordInfrastructureMetrics()

	// Initialize PostgreSQL connection pool
	pool, err := db.NewPool(context.Background(), db.PoolConfig{
		URL:      cfg.Database.URL,
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		logger.Fatal("Failed to initialize database connection pool", zap.Error(err))
	}
	defer pool.Close()

	// NOTE: Database migrations run separately via the migrate command

	// Initialize object storage client for avatar uploads (optional)
	var storageClient objectstore.ClientInterface
	if cfg.ObjectStorage.AccessKeyID != "" && cfg.ObjectStorage.SecretAccessKey != "" {
		storageClient, err = objectstore.NewClient(
			cfg.ObjectStorage.AccessKeyID,
			cfg.ObjectStorage.SecretAccessKey,
			cfg.ObjectStorage.BucketName,
			cfg.ObjectStorage.Endpoint,
			cfg.ObjectStorage.Region,
		)
		if err != nil {
			logger.Fatal("Failed to initialize object storage client", zap.Error(err))
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(pool)
	sessionRepo := repository.NewSessionRepository(pool)
	moduleRepo := repository.NewModuleRepository(pool)
	progressRepo := repository.NewProgressRepository(pool)
	mentorRepo := repository.NewMentorRepository(pool)
	forumRepo := repository.NewForumRepository(pool)
	challengeRepo := repository.NewChallengeRepository(pool)
	badgeRepo := repository.NewBadgeRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)

	// Initialize services
	tokenManager := jwt.NewTokenManager(cfg.Session.JWTSecret, cfg.Session.JWTIssuer, cfg.Session.TTLHours)
	authService := services.NewAuthService(userRepo, sessionRepo, tokenManager, cfg)
	moduleService := services.NewModuleService(moduleRepo, progressRepo)
	mentorService := services.NewMentorService(mentorRepo)
	forumService := services.NewForumService(forumRepo)
	challengeService := services.NewChallengeService(challengeRepo)
	dashboardService := services.NewDashboardService(statsRepo, progressRepo, badgeRepo)
	profileService := services.NewProfileService(userRepo, storageClient)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	moduleHandler := handlers.NewModuleHandler(moduleService)
	mentorHandler := handlers.NewMentorHandler(mentorService)
	forumHandler := handlers.NewForumHandler(forumService)
	challengeHandler := handlers.NewChallengeHandler(challengeService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	profileHandler := handlers.NewProfileHandler(profileService)
	healthHandler := handlers.NewHealthHandler(pool)

	// Periodic sweep of expired session rows
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go func() {
		ticker := time.NewTicker(sessionSweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-sweepCtx.Done():
				return
			case <-ticker.C:
				removed, err := sessionRepo.DeleteExpired(sweepCtx)
				if err != nil {
					logger.Error("Session sweep failed", zap.Error(err))
				} else if removed > 0 {
					logger.Info("Expired sessions removed", zap.Int64("count", removed))
				}
			}
		}
	}()

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName)) // OpenTelemetry tracing
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// CORS configuration - SECURITY: Only allow specific origins
	allowedOrigins := cfg.Server.AllowedOrigins
	// Allow localhost in development
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "traceparent", "tracestate"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true, // Required for session cookies
		MaxAge:           12 * time.Hour,
	}))

	// SECURITY: Rate limiters to prevent abuse and DoS attacks
	generalRateLimiter := middleware.NewRateLimiter(100, 200) // 100 req/sec, burst of 200
	authRateLimiter := middleware.NewRateLimiter(1, 5)        // 1 req/sec, burst of 5 (credential abuse prevention)
	writeRateLimiter := middleware.NewRateLimiter(10, 20)     // 10 req/sec, burst of 20

	registerRoutes(router, generalRateLimiter, authRateLimiter, writeRateLimiter,
		authService, authHandler, moduleHandler, mentorHandler, forumHandler,
		challengeHandler, dashboardHandler, profileHandler, healthHandler)

	// Create HTTP server
	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // SECURITY: 1 MB max header size
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
