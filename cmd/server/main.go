package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	auditapp "github.com/daffodil/backend/internal/application/audit"
	authapp "github.com/daffodil/backend/internal/application/auth"
	catalogapp "github.com/daffodil/backend/internal/application/catalog"
	checkoutapp "github.com/daffodil/backend/internal/application/checkout"
	cmsapp "github.com/daffodil/backend/internal/application/cms"
	identityapp "github.com/daffodil/backend/internal/application/identity"
	orderapp "github.com/daffodil/backend/internal/application/order"
	domainpayment "github.com/daffodil/backend/internal/domain/payment"
	"github.com/daffodil/backend/internal/infrastructure/auth"
	"github.com/daffodil/backend/internal/infrastructure/config"
	"github.com/daffodil/backend/internal/infrastructure/identityprovider"
	"github.com/daffodil/backend/internal/infrastructure/logger"
	"github.com/daffodil/backend/internal/infrastructure/mail"
	"github.com/daffodil/backend/internal/infrastructure/payment"
	"github.com/daffodil/backend/internal/infrastructure/persistence"
	"github.com/daffodil/backend/internal/interfaces/http/handler"
	"github.com/daffodil/backend/internal/interfaces/http/middleware"
	"github.com/daffodil/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting daffodil backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Token blacklist: Redis when reachable, otherwise in-memory so a
	// dev box without Redis still starts. In-memory revocations are
	// lost on restart.
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		if cfg.App.Env == "production" {
			log.Fatal("Redis required in production for the token blacklist", zap.Error(err))
		}
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
		defer func() {
			_ = redisBlacklist.Close()
		}()
	}

	// Payment gateways. Missing credentials are fatal in production;
	// elsewhere the gateway degrades to a stand-in so the rest of the
	// service still runs, and checkout answers 503.
	var stripeGateway domainpayment.StripeGateway
	stripeAdapter, err := payment.NewStripeAdapter(&payment.StripeConfig{
		SecretKey: cfg.Stripe.SecretKey,
	}, log)
	if err != nil {
		if cfg.App.Env == "production" {
			log.Fatal("Stripe configuration invalid", zap.Error(err))
		}
		log.Warn("Stripe checkout disabled", zap.Error(err))
		stripeGateway = payment.DisabledStripeGateway{}
	} else {
		stripeGateway = stripeAdapter
	}

	var paypalGateway domainpayment.PayPalGateway
	paypalAdapter, err := payment.NewPayPalAdapter(&payment.PayPalConfig{
		ClientID:  cfg.PayPal.ClientID,
		Secret:    cfg.PayPal.Secret,
		IsSandbox: cfg.PayPal.Sandbox,
		Currency:  cfg.PayPal.Currency,
	})
	if err != nil {
		if cfg.App.Env == "production" {
			log.Fatal("PayPal configuration invalid", zap.Error(err))
		}
		log.Warn("PayPal checkout disabled", zap.Error(err))
		paypalGateway = payment.DisabledPayPalGateway{}
	} else {
		paypalGateway = paypalAdapter
	}

	mailer := mail.NewSMTPMailer(cfg.SMTP, log)
	providerMirror := identityprovider.NewClient(cfg.IdentityProvider.BaseURL, cfg.IdentityProvider.APIKey)
	jwtService := auth.NewJWTService(cfg.JWT)

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	auditRepo := persistence.NewGormAuditRepository(db.DB)
	pageRepo := persistence.NewGormPageRepository(db.DB)
	promotionRepo := persistence.NewGormPromotionRepository(db.DB)

	// Services
	auditService := auditapp.NewService(auditRepo, log)
	productService := catalogapp.NewProductService(productRepo, auditService)
	orderService := orderapp.NewOrderService(orderRepo, auditService, mailer, log)
	userService := identityapp.NewUserService(userRepo, providerMirror, auditService, log)
	contentService := cmsapp.NewContentService(pageRepo, promotionRepo, auditService)
	checkoutService := checkoutapp.NewCheckoutService(stripeGateway, paypalGateway, cfg.App.PublicBaseURL, log)
	authService := authapp.NewAuthService(userRepo, jwtService, blacklist, cfg.Admin.APIKey, log)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.Secure(),
		middleware.CORSFromConfig(cfg.HTTP),
	)

	// Handlers and routes
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)
	userHandler := handler.NewUserHandler(userService)
	cmsHandler := handler.NewCMSHandler(contentService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	authHandler := handler.NewAuthHandler(authService)
	auditHandler := handler.NewAuditHandler(auditService)
	systemHandler := handler.NewSystemHandler(db)

	r := router.NewRouter(engine,
		router.WithAPIVersion("v1"),
		router.WithAdminMiddleware(middleware.AdminAuth(jwtService, blacklist)),
	)
	r.RegisterRoot(systemHandler)
	r.RegisterPublic(productHandler).
		RegisterPublic(orderHandler).
		RegisterPublic(cmsHandler).
		RegisterPublic(checkoutHandler).
		RegisterPublic(userHandler).
		RegisterPublic(authHandler)
	r.RegisterAdmin(productHandler).
		RegisterAdmin(orderHandler).
		RegisterAdmin(userHandler).
		RegisterAdmin(cmsHandler).
		RegisterAdmin(auditHandler)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

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
