package main

// @title DealPage API
// @version 1.0
// @description Proposal software with two-way CRM synchronization.
// @termsOfService https://dealpage.com/terms

// @contact.name API Support
// @contact.url https://dealpage.com/support
// @contact.email support@dealpage.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dealpage/dealpage/config"
	"github.com/dealpage/dealpage/pkg/api/handlers"
	custommw "github.com/dealpage/dealpage/pkg/api/middleware"
	"github.com/dealpage/dealpage/pkg/auth"
	"github.com/dealpage/dealpage/pkg/cache"
	"github.com/dealpage/dealpage/pkg/crm"
	"github.com/dealpage/dealpage/pkg/crmsync"
	"github.com/dealpage/dealpage/pkg/database"
	"github.com/dealpage/dealpage/pkg/documents"
	"github.com/dealpage/dealpage/pkg/email"
	"github.com/dealpage/dealpage/pkg/jobs"
	"github.com/dealpage/dealpage/pkg/logger"
	"github.com/dealpage/dealpage/pkg/metrics"
	custommiddleware "github.com/dealpage/dealpage/pkg/middleware"
	"github.com/dealpage/dealpage/pkg/notify"
	"github.com/dealpage/dealpage/pkg/proposals"
	"github.com/dealpage/dealpage/pkg/secrets"
	"github.com/dealpage/dealpage/pkg/slack"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Pull sensitive values through the secrets backend when one is
	// configured. Environment backend is a pass-through, so this is a no-op
	// in development.
	if cfg.SecretsBackend != "" && cfg.SecretsBackend != "env" {
		secretsCfg := secrets.AutoDetectConfig()
		secretsCfg.Backend = cfg.SecretsBackend
		manager, err := secrets.NewManager(secretsCfg)
		if err != nil {
			log.Fatalf("❌ Failed to initialize secrets manager: %v", err)
		}
		defer manager.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		common, err := secrets.LoadCommonSecrets(ctx, manager)
		cancel()
		if err != nil {
			log.Fatalf("❌ Failed to load secrets: %v", err)
		}
		cfg.JWTSecret = common.JWTSecret
		cfg.DatabaseURL = common.DatabaseURL
		cfg.RedisURL = common.RedisURL
		if common.SendGridAPIKey != "" {
			cfg.SendGridAPIKey = common.SendGridAPIKey
		}
		if common.SentryDSN != "" {
			cfg.SentryDSN = common.SentryDSN
		}
		if common.OAuth.HubSpotClientSecret != "" {
			cfg.HubSpot.ClientSecret = common.OAuth.HubSpotClientSecret
		}
		if common.OAuth.SalesforceClientSecret != "" {
			cfg.Salesforce.ClientSecret = common.OAuth.SalesforceClientSecret
		}
		if common.OAuth.PipedriveClientSecret != "" {
			cfg.Pipedrive.ClientSecret = common.OAuth.PipedriveClientSecret
		}
		if common.OAuth.ZohoClientSecret != "" {
			cfg.Zoho.ClientSecret = common.OAuth.ZohoClientSecret
		}
		log.Printf("✅ Secrets loaded from %s", cfg.SecretsBackend)
	}

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0, // Capture 100% of transactions in development, adjust in production
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Structured application logger
	appLog := logger.New(cfg.LogLevel)

	// Initialize database with pooling and SSL configuration
	sslCfg := &database.SSLConfig{
		Mode:         cfg.DBSSLMode,
		CertPath:     cfg.DBSSLCertPath,
		KeyPath:      cfg.DBSSLKeyPath,
		RootCertPath: cfg.DBSSLRootCertPath,
	}
	db, err := database.NewClientWithPoolAndSSL(cfg.DatabaseURL, database.DefaultPoolConfig(), sslCfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize email service
	emailService := email.NewService(
		cfg.EmailFrom,
		"DealPage",
		cfg.FrontendURL,
		cfg.SendGridAPIKey,
	)

	// Initialize Slack service (if webhook URL configured)
	var slackService *slack.Service
	if cfg.SlackWebhookURL != "" {
		slackService = slack.NewService(slack.NewWebhookClient(cfg.SlackWebhookURL))
		log.Printf("✅ Slack notifications enabled")
	} else {
		slackService = slack.NewService(nil)
		log.Printf("ℹ️  Slack notifications disabled (no webhook URL configured)")
	}

	// Notifications bridge sync events to email and Slack
	notifier := notify.New(db.Ent, emailService, slackService, appLog)

	// CRM sync engine
	registry := crm.NewRegistry(cfg)
	credentialStore := crm.NewCredentialStore(db.Ent, registry, notifier, prometheusMetrics, appLog)
	linkRegistry := crm.NewLinkRegistry(db.Ent)
	stageMappings := crm.NewStageMappingStore(db.Ent)
	crmService := crm.NewService(db.Ent, registry, credentialStore, linkRegistry, stageMappings, redisClient, appLog)

	documentFetcher, err := documents.NewFetcher(cfg.AWSRegion)
	if err != nil {
		log.Printf("⚠️  Document fetcher degraded, signed document upload disabled: %v", err)
	}

	var docs crmsync.DocumentFetcher
	if documentFetcher != nil {
		docs = documentFetcher
	}
	syncer := crmsync.NewSyncer(db.Ent, registry, credentialStore, linkRegistry, stageMappings, docs, prometheusMetrics, cfg.FrontendURL, appLog)
	processor := crmsync.NewProcessor(db.Ent, registry, linkRegistry, stageMappings, notifier, prometheusMetrics, appLog)
	log.Printf("✅ CRM sync engine initialized (providers: hubspot, salesforce, pipedrive, zoho)")

	// Proposal service pushes lifecycle events into the syncer
	proposalService := proposals.NewService(db.Ent, syncer, appLog)

	// Initialize JWT blacklist
	tokenBlacklist := auth.NewTokenBlacklist(redisClient)

	// Initialize cron manager for token refresh and contact import jobs
	cronManager := jobs.NewCronManager(db.Ent, credentialStore, crmService, log.Default())
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	cronManager.Start()
	log.Printf("✅ Cron jobs started successfully")

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2)        // login brute-force protection
	registerRateLimiter := custommiddleware.NewRateLimiter(3, 1)    // registration abuse protection
	webhookRateLimiter := custommiddleware.NewRateLimiter(600, 100) // provider webhook bursts

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true, // Repanic after capturing to let the Recover middleware handle it
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	// CORS with restricted origins
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig()))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())
	e.Use(custommiddleware.SecurityHeaders(custommiddleware.DefaultSecurityHeadersConfig()))

	// Global rate limiting
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Root and health endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "DealPage API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// API v1 routes group with versioning middleware
	v1 := e.Group("/api/v1")
	v1.Use(custommiddleware.APIVersionMiddleware(custommiddleware.CurrentAPIVersion))

	// Version info endpoint (public)
	v1.GET("/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, custommiddleware.VersionInfo(custommiddleware.CurrentAPIVersion))
	})

	// Ping endpoint (public)
	v1.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "pong",
		})
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db.Ent, cfg, tokenBlacklist, redisClient, emailService)
	userHandler := handlers.NewUserHandler(db.Ent)
	proposalHandler := handlers.NewProposalHandler(proposalService)
	crmHandler := handlers.NewCRMHandler(crmService, syncer)
	webhookHandler := handlers.NewWebhookHandler(crmService, processor, cfg.FrontendURL, appLog)

	jwtAuth := custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist, db.Ent)

	// Authentication routes (public)
	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register, registerRateLimiter.RateLimitMiddleware())
		authRoutes.POST("/login", authHandler.Login, authRateLimiter.RateLimitMiddleware())
		authRoutes.GET("/me", authHandler.Me, jwtAuth)
		authRoutes.POST("/logout", authHandler.Logout, jwtAuth)
		authRoutes.GET("/verify-email/:token", authHandler.VerifyEmail)
		authRoutes.POST("/forgot-password", authHandler.ForgotPassword)
		authRoutes.POST("/reset-password", authHandler.ResetPassword)
	}

	// Protected routes (require JWT with blacklist validation)
	protected := v1.Group("")
	protected.Use(jwtAuth)
	{
		// User profile routes
		userGroup := protected.Group("/users/me")
		{
			userGroup.GET("", userHandler.GetProfile)
			userGroup.PUT("", userHandler.UpdateProfile)
			userGroup.PUT("/password", userHandler.ChangePassword)
		}

		// Proposal routes
		proposalGroup := protected.Group("/proposals")
		{
			proposalGroup.POST("", proposalHandler.Create)
			proposalGroup.GET("", proposalHandler.List)
			proposalGroup.GET("/:id", proposalHandler.Get)
			proposalGroup.PUT("/:id", proposalHandler.Update)
			proposalGroup.PUT("/:id/status", proposalHandler.UpdateStatus)
			proposalGroup.DELETE("/:id", proposalHandler.Delete)
		}

		// CRM integration routes (connecting requires a verified email)
		crmGroup := protected.Group("/crm")
		{
			crmGroup.GET("/integrations", crmHandler.ListIntegrations)
			crmGroup.GET("/:provider/authorize", crmHandler.AuthorizeURL, custommiddleware.RequireEmailVerified(db.Ent))
			crmGroup.DELETE("/:provider", crmHandler.Disconnect)
			crmGroup.PUT("/:provider/sync-config", crmHandler.ConfigureSync)
			crmGroup.PUT("/:provider/stage-mappings", crmHandler.ConfigureStageMappings)
			crmGroup.GET("/:provider/stage-mappings", crmHandler.ListStageMappings)
			crmGroup.GET("/:provider/stages", crmHandler.ListStages)
			crmGroup.GET("/:provider/deals", crmHandler.ListDeals)
			crmGroup.GET("/:provider/contacts", crmHandler.ListContacts)
			crmGroup.POST("/:provider/contacts/import", crmHandler.ImportContacts)
			crmGroup.POST("/:provider/proposals/:proposal_id/deal", crmHandler.CreateDealFromProposal)
			crmGroup.POST("/:provider/proposals/:proposal_id/link", crmHandler.LinkDeal)
			crmGroup.POST("/proposals/:proposal_id/sync", crmHandler.SyncProposal)
		}
	}

	// OAuth callbacks land here from provider consent screens (public)
	e.GET("/crm/callback/:provider", webhookHandler.OAuthCallback)

	// Provider webhook ingress (public, signature-verified, always 200)
	e.POST("/webhooks/crm/:provider", webhookHandler.Webhook, webhookRateLimiter.RateLimitMiddleware())

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 DealPage API starting on %s", address)
	log.Printf("📝 Log level: %s, Log format: %s", cfg.LogLevel, cfg.LogFormat)
	log.Printf("🔐 JWT expiration: %d hours", cfg.JWTExpirationHours)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("🔒 Auth endpoints: login (5/min), register (3/min), CRM webhooks (600/min)")
	log.Printf("⏰ Cron jobs: Hourly :15 (token refresh), Daily 3AM (contact import), Daily 4AM (stats)")

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	// Stop cron jobs
	cronManager.Stop()
	log.Println("✅ Cron jobs stopped")

	// Gracefully shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
