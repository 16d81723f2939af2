package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	identityapp "github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/application/identity"
	placementapp "github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/application/placement"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/infrastructure/auth"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/infrastructure/cache"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/infrastructure/config"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/infrastructure/event"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/infrastructure/logger"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/infrastructure/persistence"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/interfaces/http/handler"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/interfaces/http/middleware"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting placement backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection; SQL logging follows the app log level
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, log, logger.MapGormLogLevel(cfg.Log.Level))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	studentRepo := persistence.NewGormStudentRepository(db.DB)
	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	yearRepo := persistence.NewGormYearRepository(db.DB)
	statsRepo := persistence.NewGormSystemStatsRepository(db.DB)

	// Token blacklist backed by Redis, with in-memory fallback for
	// environments that run without one
	jwtService := auth.NewJWTService(cfg.JWT)
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		if !cfg.Cache.AllowInMemoryFallback {
			log.Fatal("Failed to connect to Redis for token blacklist", zap.Error(err))
		}
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
		log.Info("Redis token blacklist connected")
	}

	// Dashboard summary cache (Redis or in-memory, per config)
	summaryCache, err := cache.NewSummaryCacheFactory(
		cfg.Redis,
		cache.WithLogger(log),
		cache.WithInMemoryFallback(cfg.Cache.AllowInMemoryFallback),
	).CreateCache()
	if err != nil {
		log.Fatal("Failed to create summary cache", zap.Error(err))
	}

	// Initialize event bus
	eventBus := event.NewInMemoryEventBus(log)
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Initialize application services
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, identityapp.DefaultAuthServiceConfig(), log)
	userService := identityapp.NewUserService(userRepo, eventBus, log)
	studentService := placementapp.NewStudentService(studentRepo, statsRepo, eventBus, log)
	companyService := placementapp.NewCompanyService(companyRepo, log)
	yearService := placementapp.NewYearService(yearRepo, companyRepo, log)
	dashboardService := placementapp.NewDashboardService(
		studentRepo, companyRepo, yearRepo, statsRepo,
		yearService, summaryCache, cfg.Cache.SummaryTTL, log,
	)

	// Student mutations invalidate the cached dashboard summary
	invalidator := placementapp.NewSummaryCacheInvalidator(dashboardService, log)
	eventBus.Subscribe(invalidator, invalidator.EventTypes()...)
	log.Info("Event handlers registered",
		zap.Strings("summary_cache_invalidation_events", invalidator.EventTypes()),
	)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	studentHandler := handler.NewStudentHandler(studentService)
	companyHandler := handler.NewCompanyHandler(companyService)
	yearHandler := handler.NewYearHandler(yearService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	healthHandler := handler.NewHealthHandler(db.DB)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint, reachable without a token
	engine.GET("/api/health", healthHandler.Health)

	// Setup API routes
	r := router.NewRouter(engine)

	// Apply JWT authentication middleware to API routes, skipping the
	// public auth endpoints
	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/health",
			"/api/auth/login",
			"/api/auth/refresh",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Identity domain - authentication
	// Credential endpoints get a stricter per-IP limiter when enabled
	authRoutes := router.NewDomainGroup("auth", "/auth")
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		loginGuard := middleware.RateLimitByKey(authLimiter, func(c *gin.Context) string {
			return "auth:" + c.ClientIP()
		})
		authRoutes.POST("/login", loginGuard, authHandler.Login)
		authRoutes.POST("/refresh", loginGuard, authHandler.RefreshToken)
		log.Info("Auth rate limiting enabled",
			zap.Int("requests", cfg.HTTP.AuthRateLimitRequests),
			zap.Duration("window", cfg.HTTP.AuthRateLimitWindow),
		)
	} else {
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/refresh", authHandler.RefreshToken)
	}
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.GET("/me", authHandler.GetCurrentUser)
	authRoutes.POST("/change-password", authHandler.ChangePassword)

	// Identity domain - user administration (admin only)
	userRoutes := router.NewDomainGroup("users", "/users")
	userRoutes.Use(middleware.RequireRole("admin"))
	userRoutes.GET("", userHandler.ListUsers)
	userRoutes.POST("", userHandler.CreateUser)
	userRoutes.GET("/:id", userHandler.GetUser)
	userRoutes.PUT("/:id", userHandler.UpdateUser)
	userRoutes.DELETE("/:id", userHandler.DeleteUser)
	userRoutes.POST("/:id/reset-password", userHandler.ResetPassword)

	// Placement domain - students. Reads are open to any authenticated
	// user; mutations are reserved for staff roles.
	studentRoutes := router.NewDomainGroup("students", "/students")
	studentRoutes.GET("", studentHandler.ListStudents)
	studentRoutes.POST("", middleware.RequireRole("admin", "faculty"), studentHandler.CreateStudent)
	studentRoutes.GET("/count", studentHandler.CountStudents)
	studentRoutes.GET("/stats", studentHandler.GetStudentStats)
	studentRoutes.GET("/:id", studentHandler.GetStudent)
	studentRoutes.DELETE("/:id", middleware.RequireRole("admin", "faculty"), studentHandler.DeleteStudent)

	// Placement domain - companies and rounds
	companyRoutes := router.NewDomainGroup("companies", "/companies")
	companyRoutes.GET("", companyHandler.ListCompanies)
	companyRoutes.GET("/:id", companyHandler.GetCompany)
	companyRoutes.GET("/:id/rounds", companyHandler.GetCompanyRounds)
	companyRoutes.DELETE("/:id", companyHandler.DeleteCompany)
	companyRoutes.DELETE("/:id/rounds/:roundId", companyHandler.DeleteRound)

	// Placement domain - year-wise statistics
	yearRoutes := router.NewDomainGroup("years", "/years")
	yearRoutes.GET("", yearHandler.ListYears)

	// Placement domain - dashboard summary
	summaryRoutes := router.NewDomainGroup("summary", "/summary")
	summaryRoutes.GET("/dashboard", dashboardHandler.GetSummary)

	// Admin maintenance operations
	adminRoutes := router.NewDomainGroup("admin", "/admin")
	adminRoutes.Use(middleware.RequireRole("admin"))
	adminRoutes.POST("/initialize-stats", dashboardHandler.InitializeStats)

	r.Register(authRoutes).
		Register(userRoutes).
		Register(studentRoutes).
		Register(companyRoutes).
		Register(yearRoutes).
		Register(summaryRoutes).
		Register(adminRoutes)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
