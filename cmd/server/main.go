package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	collabapp "github.com/intranet/erp-backend/internal/application/collab"
	crmapp "github.com/intranet/erp-backend/internal/application/crm"
	filesapp "github.com/intranet/erp-backend/internal/application/files"
	financeapp "github.com/intranet/erp-backend/internal/application/finance"
	hrapp "github.com/intranet/erp-backend/internal/application/hr"
	identityapp "github.com/intranet/erp-backend/internal/application/identity"
	licensingapp "github.com/intranet/erp-backend/internal/application/licensing"
	marketingapp "github.com/intranet/erp-backend/internal/application/marketing"
	referenceapp "github.com/intranet/erp-backend/internal/application/reference"
	workflowapp "github.com/intranet/erp-backend/internal/application/workflow"
	"github.com/intranet/erp-backend/internal/infrastructure/auth"
	"github.com/intranet/erp-backend/internal/infrastructure/cache"
	"github.com/intranet/erp-backend/internal/infrastructure/config"
	"github.com/intranet/erp-backend/internal/infrastructure/event"
	"github.com/intranet/erp-backend/internal/infrastructure/logger"
	"github.com/intranet/erp-backend/internal/infrastructure/persistence"
	"github.com/intranet/erp-backend/internal/infrastructure/storage"
	"github.com/intranet/erp-backend/internal/interfaces/http/handler"
	"github.com/intranet/erp-backend/internal/interfaces/http/middleware"
	"github.com/intranet/erp-backend/internal/interfaces/http/router"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

//	@title			Intranet ERP API
//	@version		1.0
//	@description	Internal ERP backend covering workflow approvals, CRM, finance, licensing, marketing, collaboration, HR and file attachments.

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

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

	log.Info("Starting Intranet ERP Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
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
	approvalRepo := persistence.NewGormApprovalRepository(db.DB)
	contactRepo := persistence.NewGormContactRepository(db.DB)
	grossIncomeRepo := persistence.NewGormGrossIncomeRepository(db.DB)
	auditRepo := persistence.NewGormAuditRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	licenseRepo := persistence.NewGormLicenseRepository(db.DB)
	adPieceRepo := persistence.NewGormAdPieceRepository(db.DB)
	meetingRepo := persistence.NewGormMeetingRepository(db.DB)
	attendanceRepo := persistence.NewGormAttendanceRepository(db.DB)
	contractRepo := persistence.NewGormEmploymentContractRepository(db.DB)
	interviewRepo := persistence.NewGormInterviewRepository(db.DB)
	kitRepo := persistence.NewGormKitRepository(db.DB)
	offboardingRepo := persistence.NewGormOffboardingRepository(db.DB)
	tagRepo := persistence.NewGormTagRepository(db.DB)
	attachmentRepo := persistence.NewGormAttachmentRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Initialize event bus
	eventBus := event.NewInMemoryEventBus(log)

	// Options cache: L1 in-process, optional Redis L2 with Pub/Sub
	// invalidation across instances. Redis also backs the JWT blacklist
	// when the tier is enabled.
	cacheConfig := cache.OptionsCacheConfigFromSettings(cfg.Cache)
	l1Cache := cache.NewInMemoryOptionsCache(cache.WithInMemoryCacheLogger(log))
	var (
		optionsCache *cache.TieredOptionsCache
		blacklist    auth.TokenBlacklist
	)
	if cfg.Cache.RedisTier {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			cancel()
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		cancel()
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Error closing Redis client", zap.Error(err))
			}
		}()

		l2Cache := cache.NewRedisOptionsCacheWithClient(redisClient, cache.WithRedisCacheLogger(log))
		invalidator := cache.NewRedisOptionsInvalidatorWithClient(redisClient, cache.WithInvalidatorLogger(log))
		optionsCache = cache.NewTieredOptionsCache(l1Cache, l2Cache, invalidator,
			cache.WithTieredConfig(cacheConfig),
			cache.WithTieredLogger(log),
		)
		if err := optionsCache.StartInvalidationSubscription(context.Background()); err != nil {
			log.Fatal("Failed to start cache invalidation subscription", zap.Error(err))
		}
		blacklist = auth.NewRedisTokenBlacklistWithClient(redisClient)
		log.Info("Redis cache tier enabled",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)
	} else {
		optionsCache = cache.NewTieredOptionsCache(l1Cache, nil, nil,
			cache.WithTieredConfig(cacheConfig),
			cache.WithTieredLogger(log),
		)
		blacklist = auth.NewInMemoryTokenBlacklist()
	}
	defer func() {
		if err := optionsCache.Close(); err != nil {
			log.Error("Error closing options cache", zap.Error(err))
		}
	}()

	// Object storage for attachments. Falls back to the stub backend when
	// no bucket is configured so the rest of the API stays usable in
	// local development.
	var objectStorage filesapp.ObjectStorageService
	if cfg.Storage.Bucket != "" {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage,
			storage.WithLogger(log),
			storage.WithPresignExpiration(cfg.Storage.PresignExpiry),
		)
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		objectStorage = s3Storage
		log.Info("Object storage initialized",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("endpoint", cfg.Storage.Endpoint),
		)
	} else {
		objectStorage = storage.NewStubObjectStorage()
		log.Warn("No storage bucket configured, using stub object storage")
	}

	// Attachment service doubles as the AttachmentLinker every feature
	// module uses to claim pending uploads.
	attachmentService := filesapp.NewAttachmentService(attachmentRepo, objectStorage, eventBus, log)
	attachmentService.SetConfig(filesapp.AttachmentServiceConfig{
		UploadURLExpiry:   cfg.Storage.PresignExpiry,
		DownloadURLExpiry: cfg.Storage.PresignExpiry,
		MaxUploadBytes:    cfg.Storage.MaxUploadBytes,
	})

	// Initialize application services
	approvalService := workflowapp.NewApprovalService(approvalRepo, attachmentService, eventBus)
	contactService := crmapp.NewContactService(contactRepo, attachmentService, eventBus)
	grossIncomeService := financeapp.NewGrossIncomeService(grossIncomeRepo, eventBus)
	auditService := financeapp.NewAuditService(auditRepo, attachmentService, eventBus)
	projectService := licensingapp.NewProjectService(projectRepo, licenseRepo, eventBus)
	licenseService := licensingapp.NewLicenseService(licenseRepo, projectRepo, attachmentService, eventBus)
	adPieceService := marketingapp.NewAdPieceService(adPieceRepo, attachmentService, eventBus)
	meetingService := collabapp.NewMeetingService(meetingRepo, attachmentService, eventBus)
	attendanceService := hrapp.NewAttendanceService(attendanceRepo, eventBus)
	contractService := hrapp.NewContractService(contractRepo, attachmentService, eventBus)
	interviewService := hrapp.NewInterviewService(interviewRepo, attachmentService, eventBus)
	kitService := hrapp.NewKitService(kitRepo, attachmentService, eventBus)
	offboardingService := hrapp.NewOffboardingService(offboardingRepo, attachmentService, eventBus)
	tagService := referenceapp.NewTagService(tagRepo, eventBus)
	optionsService := referenceapp.NewOptionsService(optionsCache, tagRepo, userRepo, projectRepo, contactRepo)

	// Identity services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo, eventBus)

	// Tag and aggregate mutations invalidate cached option lists
	optionsInvalidationHandler := referenceapp.NewOptionsInvalidationHandler(optionsService)
	eventBus.Subscribe(optionsInvalidationHandler)
	log.Info("Event handlers registered",
		zap.Strings("options_invalidation_events", optionsInvalidationHandler.EventTypes()),
	)

	// Start event bus
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Initialize HTTP handlers
	approvalHandler := handler.NewApprovalHandler(approvalService)
	contactHandler := handler.NewContactHandler(contactService)
	grossIncomeHandler := handler.NewGrossIncomeHandler(grossIncomeService)
	auditHandler := handler.NewAuditHandler(auditService)
	projectHandler := handler.NewProjectHandler(projectService)
	licenseHandler := handler.NewLicenseHandler(licenseService)
	adPieceHandler := handler.NewAdPieceHandler(adPieceService)
	meetingHandler := handler.NewMeetingHandler(meetingService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)
	contractHandler := handler.NewContractHandler(contractService)
	interviewHandler := handler.NewInterviewHandler(interviewService)
	kitHandler := handler.NewKitHandler(kitService)
	offboardingHandler := handler.NewOffboardingHandler(offboardingService)
	tagHandler := handler.NewTagHandler(tagService)
	optionsHandler := handler.NewOptionsHandler(optionsService)
	attachmentHandler := handler.NewAttachmentHandler(attachmentService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
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

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Rate limiting (if enabled)
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Apply JWT authentication middleware to API routes
	// Configure skip paths for public endpoints
	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/ping",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Tenant extraction runs after JWT so claims win over the header.
	// Not required here: development requests without tenant context fall
	// back to the default tenant in the handlers.
	tenantConfig := middleware.DefaultTenantConfig()
	tenantConfig.SkipPaths = append(tenantConfig.SkipPaths, jwtConfig.SkipPaths...)
	tenantConfig.Required = false
	tenantConfig.Logger = log
	r.Use(middleware.TenantMiddlewareWithConfig(tenantConfig))

	// Stricter rate limit on credential endpoints (if enabled)
	var authLimiter *middleware.RateLimiter
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter = middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		log.Info("Auth rate limiting enabled",
			zap.Int("requests", cfg.HTTP.AuthRateLimitRequests),
			zap.Duration("window", cfg.HTTP.AuthRateLimitWindow),
		)
	}

	// Register domain route groups

	// Auth routes - login and refresh are public, the rest require a token
	authRoutes := router.NewDomainGroup("auth", "/auth")
	if authLimiter != nil {
		authRoutes.Use(middleware.RateLimit(authLimiter))
	}
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.RefreshToken)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.GET("/me", authHandler.Me)
	authRoutes.PUT("/password", authHandler.ChangePassword)

	// Identity domain (user management)
	identityRoutes := router.NewDomainGroup("identity", "/identity")
	identityRoutes.POST("/users", userHandler.Create)
	identityRoutes.GET("/users", userHandler.List)
	identityRoutes.GET("/users/:id", userHandler.GetByID)
	identityRoutes.PUT("/users/:id", userHandler.Update)
	identityRoutes.POST("/users/:id/activate", userHandler.Activate)
	identityRoutes.POST("/users/:id/deactivate", userHandler.Deactivate)

	// Reference domain (tag vocabularies, option lists)
	referenceRoutes := router.NewDomainGroup("reference", "/reference")
	referenceRoutes.GET("/tags/domains", tagHandler.Domains)
	referenceRoutes.POST("/tags", tagHandler.Create)
	referenceRoutes.GET("/tags", tagHandler.List)
	referenceRoutes.GET("/tags/:id", tagHandler.GetByID)
	referenceRoutes.PUT("/tags/:id", tagHandler.Update)
	referenceRoutes.DELETE("/tags/:id", tagHandler.Delete)
	referenceRoutes.GET("/options/:module", optionsHandler.ModuleOptions)

	// Workflow domain (approval requests with voting)
	workflowRoutes := router.NewDomainGroup("workflow", "/workflow")
	workflowRoutes.POST("/approvals", approvalHandler.Create)
	workflowRoutes.GET("/approvals", approvalHandler.List)
	workflowRoutes.GET("/approvals/pending", approvalHandler.ListPending)
	workflowRoutes.GET("/approvals/options", optionsHandler.ForModule("approvals"))
	workflowRoutes.GET("/approvals/:id", approvalHandler.GetByID)
	workflowRoutes.PUT("/approvals/:id", approvalHandler.Update)
	workflowRoutes.POST("/approvals/:id/approve", approvalHandler.Approve)
	workflowRoutes.POST("/approvals/:id/reject", approvalHandler.Reject)
	workflowRoutes.DELETE("/approvals/:id", approvalHandler.Delete)

	// CRM domain (external contacts)
	crmRoutes := router.NewDomainGroup("crm", "/crm")
	crmRoutes.POST("/contacts", contactHandler.Create)
	crmRoutes.GET("/contacts", contactHandler.List)
	crmRoutes.GET("/contacts/options", optionsHandler.ForModule("contacts"))
	crmRoutes.GET("/contacts/:id", contactHandler.GetByID)
	crmRoutes.PUT("/contacts/:id", contactHandler.Update)
	crmRoutes.DELETE("/contacts/:id", contactHandler.Delete)

	// Finance domain (gross incomes, audits)
	financeRoutes := router.NewDomainGroup("finance", "/finance")
	financeRoutes.POST("/gross-incomes", grossIncomeHandler.Create)
	financeRoutes.GET("/gross-incomes", grossIncomeHandler.List)
	financeRoutes.GET("/gross-incomes/summary", grossIncomeHandler.Summary)
	financeRoutes.GET("/gross-incomes/options", optionsHandler.ForModule("gross-incomes"))
	financeRoutes.GET("/gross-incomes/:id", grossIncomeHandler.GetByID)
	financeRoutes.PUT("/gross-incomes/:id", grossIncomeHandler.Update)
	financeRoutes.DELETE("/gross-incomes/:id", grossIncomeHandler.Delete)
	financeRoutes.POST("/audits", auditHandler.Create)
	financeRoutes.GET("/audits", auditHandler.List)
	financeRoutes.GET("/audits/options", optionsHandler.ForModule("audits"))
	financeRoutes.GET("/audits/:id", auditHandler.GetByID)
	financeRoutes.PUT("/audits/:id", auditHandler.Update)
	financeRoutes.DELETE("/audits/:id", auditHandler.Delete)

	// Licensing domain (projects and their licenses)
	licensingRoutes := router.NewDomainGroup("licensing", "/licensing")
	licensingRoutes.POST("/projects", projectHandler.Create)
	licensingRoutes.GET("/projects", projectHandler.List)
	licensingRoutes.GET("/projects/options", optionsHandler.ForModule("projects"))
	licensingRoutes.GET("/projects/:id", projectHandler.GetByID)
	licensingRoutes.PUT("/projects/:id", projectHandler.Update)
	licensingRoutes.POST("/projects/:id/activate", projectHandler.Activate)
	licensingRoutes.POST("/projects/:id/deactivate", projectHandler.Deactivate)
	licensingRoutes.DELETE("/projects/:id", projectHandler.Delete)
	licensingRoutes.GET("/projects/:id/licenses", licenseHandler.ListByProject)
	licensingRoutes.POST("/licenses", licenseHandler.Create)
	licensingRoutes.GET("/licenses", licenseHandler.List)
	licensingRoutes.GET("/licenses/expiring", licenseHandler.ListExpiring)
	licensingRoutes.GET("/licenses/options", optionsHandler.ForModule("licenses"))
	licensingRoutes.GET("/licenses/:id", licenseHandler.GetByID)
	licensingRoutes.PUT("/licenses/:id", licenseHandler.Update)
	licensingRoutes.DELETE("/licenses/:id", licenseHandler.Delete)

	// Marketing domain (advertising pieces)
	marketingRoutes := router.NewDomainGroup("marketing", "/marketing")
	marketingRoutes.POST("/ad-pieces", adPieceHandler.Create)
	marketingRoutes.GET("/ad-pieces", adPieceHandler.List)
	marketingRoutes.GET("/ad-pieces/options", optionsHandler.ForModule("ad-pieces"))
	marketingRoutes.GET("/ad-pieces/:id", adPieceHandler.GetByID)
	marketingRoutes.PUT("/ad-pieces/:id", adPieceHandler.Update)
	marketingRoutes.DELETE("/ad-pieces/:id", adPieceHandler.Delete)
	marketingRoutes.GET("/campaigns/:campaign/ad-pieces", adPieceHandler.ListByCampaign)

	// Collaboration domain (meetings)
	collabRoutes := router.NewDomainGroup("collab", "/collab")
	collabRoutes.POST("/meetings", meetingHandler.Create)
	collabRoutes.GET("/meetings", meetingHandler.List)
	collabRoutes.GET("/meetings/calendar", meetingHandler.Calendar)
	collabRoutes.GET("/meetings/options", optionsHandler.ForModule("meetings"))
	collabRoutes.GET("/meetings/:id", meetingHandler.GetByID)
	collabRoutes.PUT("/meetings/:id", meetingHandler.Update)
	collabRoutes.DELETE("/meetings/:id", meetingHandler.Delete)

	// HR domain (attendance, contracts, interviews, kits, offboardings)
	hrRoutes := router.NewDomainGroup("hr", "/hr")
	hrRoutes.POST("/attendances", attendanceHandler.Create)
	hrRoutes.GET("/attendances", attendanceHandler.List)
	hrRoutes.GET("/attendances/options", optionsHandler.ForModule("attendances"))
	hrRoutes.GET("/attendances/:id", attendanceHandler.GetByID)
	hrRoutes.PUT("/attendances/:id", attendanceHandler.Update)
	hrRoutes.DELETE("/attendances/:id", attendanceHandler.Delete)
	hrRoutes.POST("/contracts", contractHandler.Create)
	hrRoutes.GET("/contracts", contractHandler.List)
	hrRoutes.GET("/contracts/options", optionsHandler.ForModule("contracts"))
	hrRoutes.GET("/contracts/:id", contractHandler.GetByID)
	hrRoutes.PUT("/contracts/:id", contractHandler.Update)
	hrRoutes.DELETE("/contracts/:id", contractHandler.Delete)
	hrRoutes.POST("/interviews", interviewHandler.Create)
	hrRoutes.GET("/interviews", interviewHandler.List)
	hrRoutes.GET("/interviews/options", optionsHandler.ForModule("interviews"))
	hrRoutes.GET("/interviews/:id", interviewHandler.GetByID)
	hrRoutes.PUT("/interviews/:id", interviewHandler.Update)
	hrRoutes.DELETE("/interviews/:id", interviewHandler.Delete)
	hrRoutes.POST("/kits", kitHandler.Create)
	hrRoutes.GET("/kits", kitHandler.List)
	hrRoutes.GET("/kits/options", optionsHandler.ForModule("kits"))
	hrRoutes.GET("/kits/:id", kitHandler.GetByID)
	hrRoutes.PUT("/kits/:id", kitHandler.Update)
	hrRoutes.DELETE("/kits/:id", kitHandler.Delete)
	hrRoutes.POST("/offboardings", offboardingHandler.Create)
	hrRoutes.GET("/offboardings", offboardingHandler.List)
	hrRoutes.GET("/offboardings/options", optionsHandler.ForModule("offboardings"))
	hrRoutes.GET("/offboardings/:id", offboardingHandler.GetByID)
	hrRoutes.PUT("/offboardings/:id", offboardingHandler.Update)
	hrRoutes.DELETE("/offboardings/:id", offboardingHandler.Delete)
	hrRoutes.GET("/employees/:id/contracts", contractHandler.ListByEmployee)
	hrRoutes.GET("/employees/:id/kits", kitHandler.ListByEmployee)

	// Files domain (presigned uploads and attachments)
	filesRoutes := router.NewDomainGroup("files", "/files")
	filesRoutes.POST("/uploads", attachmentHandler.InitiateUpload)
	filesRoutes.GET("", attachmentHandler.ListByOwner)
	filesRoutes.POST("/:id/confirm", attachmentHandler.ConfirmUpload)
	filesRoutes.GET("/:id/download", attachmentHandler.DownloadURL)
	filesRoutes.DELETE("/:id", attachmentHandler.Delete)

	// Register all domain groups
	r.Register(authRoutes).
		Register(identityRoutes).
		Register(referenceRoutes).
		Register(workflowRoutes).
		Register(crmRoutes).
		Register(financeRoutes).
		Register(licensingRoutes).
		Register(marketingRoutes).
		Register(collabRoutes).
		Register(hrRoutes).
		Register(filesRoutes)

	// Register system routes with swagger-documented handlers
	systemHandler := handler.NewSystemHandler()
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)
	r.Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Also keep a simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

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

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
