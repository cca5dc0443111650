package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/hypermart-pos/docs"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/api/handlers"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/api/middleware"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/cache"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/catalog"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/config"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/health"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/invoice"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/metrics"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/models"
	repository "github.com/aaravmahajanofficial/hypermart-pos/internal/repositories"
	service "github.com/aaravmahajanofficial/hypermart-pos/internal/services"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/session"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/telemetry"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/terminal"
	"github.com/aaravmahajanofficial/hypermart-pos/pkg/billingapi"
	"github.com/aaravmahajanofficial/hypermart-pos/pkg/sendgrid"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const sweepInterval = time.Minute

// @title						Hypermart POS API
// @version					1.0
// @description				Terminal service for the Hypermart point of sale: catalog, bill, checkout and receipts.
// @host						localhost:8080
// @BasePath					/api/v1
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and the session token.
func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Otel)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Receipt journal
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	if err := repos.EnsureSchema(ctx); err != nil {
		slog.Error("❌ Error preparing the receipt journal", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	catalogCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	defer func() {
		if err := catalogCache.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	sessions := session.NewStore(redisClient, cfg.Security.SessionTTL)
	rateLimit := repository.NewRateLimitRepo(redisClient, cfg.RateConfig)

	backend, err := billingapi.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, sessions,
		billingapi.WithObserver(metrics.ObserveBackend),
	)
	if err != nil {
		slog.Error("❌ Invalid billing backend configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	products := catalog.New(backend, catalogCache, cfg.Cache.DefaultTTL, cfg.Catalog)

	// prices may have changed since the last run
	if err := products.Refresh(ctx); err != nil {
		slog.Warn("⚠️ Could not flush the catalog cache", slog.String("error", err.Error()))
	}

	healthCheck, err := health.NewHealthHandler(cfg, &health.Endpoints{Backend: backend})
	if err != nil {
		slog.Error("❌ Error setting up health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	seller := invoice.Seller{
		Name:    cfg.Seller.Name,
		Address: cfg.Seller.Address,
		Phone:   cfg.Seller.Phone,
		GSTIN:   cfg.Seller.GSTIN,
	}
	renderer := invoice.NewRenderer(cfg.Seller.Currency, cfg.Seller.FooterHTML)

	jwtKey := []byte(cfg.Security.JWTKey)
	terminals := terminal.NewRegistry()
	sendGridClient := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	authService := service.NewAuthService(backend, sessions, terminals, rateLimit, jwtKey, time.Duration(cfg.Security.JWTExpiryHours)*time.Hour)
	authHandler := handlers.NewAuthHandler(authService)
	billingService := service.NewBillingService(products, terminals, seller)
	catalogHandler := handlers.NewCatalogHandler(billingService)
	billHandler := handlers.NewBillHandler(billingService, renderer)
	checkoutService := service.NewCheckoutService(terminals, backend, repos.Receipts)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	receiptService := service.NewReceiptService(repos.Receipts, sendGridClient, renderer, seller)
	receiptHandler := handlers.NewReceiptHandler(receiptService, renderer)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	docs.SwaggerInfo.Host = cfg.Addr

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/auth/login", authHandler.Login())
	routerMux.HandleFunc("POST /api/v1/auth/logout", authMiddleware.Authenticate(authHandler.Logout()))
	routerMux.HandleFunc("POST /api/v1/auth/forgot-password", authHandler.ForgotPassword())
	routerMux.HandleFunc("POST /api/v1/auth/verify-otp", authHandler.VerifyOTP())
	routerMux.HandleFunc("POST /api/v1/auth/update-password", authHandler.UpdatePassword())
	routerMux.HandleFunc("GET /api/v1/catalog/categories", authMiddleware.Authenticate(catalogHandler.ListCategories()))
	routerMux.HandleFunc("GET /api/v1/catalog/categories/{id}/subcategories", authMiddleware.Authenticate(catalogHandler.ListSubcategories()))
	routerMux.HandleFunc("GET /api/v1/catalog/products", authMiddleware.Authenticate(catalogHandler.ListProducts()))
	routerMux.HandleFunc("GET /api/v1/bill", authMiddleware.Authenticate(billHandler.GetBill()))
	routerMux.HandleFunc("POST /api/v1/bill/items", authMiddleware.Authenticate(billHandler.AddItem()))
	routerMux.HandleFunc("DELETE /api/v1/bill", authMiddleware.Authenticate(billHandler.ClearBill()))
	routerMux.HandleFunc("GET /api/v1/invoice/preview", authMiddleware.Authenticate(billHandler.PreviewInvoice()))
	routerMux.HandleFunc("POST /api/v1/checkout", authMiddleware.Authenticate(checkoutHandler.BeginCheckout()))
	routerMux.HandleFunc("GET /api/v1/checkout", authMiddleware.Authenticate(checkoutHandler.GetCheckout()))
	routerMux.HandleFunc("DELETE /api/v1/checkout", authMiddleware.Authenticate(checkoutHandler.CancelCheckout()))
	routerMux.HandleFunc("PUT /api/v1/checkout/method", authMiddleware.Authenticate(checkoutHandler.SelectMethod()))
	routerMux.HandleFunc("POST /api/v1/checkout/cash", authMiddleware.Authenticate(checkoutHandler.PayCash()))
	routerMux.HandleFunc("POST /api/v1/checkout/card", authMiddleware.Authenticate(checkoutHandler.SubmitCard()))
	routerMux.HandleFunc("POST /api/v1/checkout/otp", authMiddleware.Authenticate(checkoutHandler.SubmitOTP()))
	routerMux.HandleFunc("POST /api/v1/checkout/upi", authMiddleware.Authenticate(checkoutHandler.SubmitUPI()))
	routerMux.HandleFunc("GET /api/v1/receipts", authMiddleware.Authenticate(middleware.RequireRole(receiptHandler.ListReceipts(), models.RoleAdmin)))
	routerMux.HandleFunc("GET /api/v1/receipts/{id}", authMiddleware.Authenticate(receiptHandler.GetReceipt()))
	routerMux.HandleFunc("POST /api/v1/receipts/{id}/email", authMiddleware.Authenticate(receiptHandler.EmailReceipt()))
	routerMux.Handle("GET /health", healthCheck.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining; metrics sits innermost so it sees the matched route pattern
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, cfg.Otel.ServiceName)

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go sweepIdleTerminals(ctx, terminals, sessions, cfg.Security.SessionTTL)

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	go func() { // Starts the HTTP server in a new goroutine so it doesn't block the main thread.

		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}

}

// sweepIdleTerminals drops the in-memory state of terminals nobody has used for a session
// lifetime, together with their backend tokens.
func sweepIdleTerminals(ctx context.Context, terminals *terminal.Registry, sessions *session.Store, maxIdle time.Duration) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, id := range terminals.Sweep(maxIdle) {
				if err := sessions.Clear(ctx, id); err != nil {
					slog.Warn("Failed to clear idle session", slog.String("sessionId", id.String()), slog.String("error", err.Error()))
					continue
				}

				slog.Info("Idle terminal closed", slog.String("sessionId", id.String()))
			}
		}
	}
}
