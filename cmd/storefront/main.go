package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lojatricolor/storefront/internal/api/handlers"
	"github.com/lojatricolor/storefront/internal/api/middleware"
	"github.com/lojatricolor/storefront/internal/config"
	"github.com/lojatricolor/storefront/internal/health"
	"github.com/lojatricolor/storefront/internal/identity"
	"github.com/lojatricolor/storefront/internal/metrics"
	repository "github.com/lojatricolor/storefront/internal/repositories"
	service "github.com/lojatricolor/storefront/internal/services"
	"github.com/lojatricolor/storefront/internal/store"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Remote store setup
	redisClient, err := store.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the remote store", "error", err.Error())
		os.Exit(1)
	}

	kv := store.NewRedisStore(redisClient)
	repos := repository.New(kv)

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing store connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Store connection closed")
		}
	}()

	// Identity setup
	provider := identity.NewStoreProvider(kv)
	gate := identity.NewGate(provider, repos.User)
	defer gate.Close()

	jwtKey := []byte(cfg.Security.JWTKey)
	userService := service.NewUserService(repos.User, provider, gate, jwtKey)
	userHandler := handlers.NewUserHandler(userService)
	authHandler := handlers.NewAuthHandler(userService)
	productService := service.NewProductService(repos.Product)
	productHandler := handlers.NewProductHandler(productService)
	catalogService := service.NewCatalogService(repos.Catalog, repos.Product)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartService := service.NewCartService(repos.Cart, repos.Product)
	cartHandler := handlers.NewCartHandler(cartService)
	settingsService := service.NewSettingsService(repos.Settings)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	checkoutService := service.NewCheckoutService(repos.Cart, repos.Settings, cfg.Checkout.MessagingDomain)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey, gate)

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()

	// Public storefront surface
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/catalogs", catalogHandler.ListCatalogs())
	routerMux.HandleFunc("GET /api/v1/catalogs/{id}", catalogHandler.GetCatalog())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("PUT /api/v1/cart/items/{productId}", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{productId}", cartHandler.RemoveItem())
	routerMux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart())
	routerMux.HandleFunc("POST /api/v1/checkout", checkoutHandler.Checkout())
	routerMux.HandleFunc("GET /api/v1/settings/whatsapp", settingsHandler.GetWhatsAppNumber())

	// Auth
	routerMux.HandleFunc("POST /api/v1/auth/login", authHandler.Login())
	routerMux.HandleFunc("POST /api/v1/auth/logout", authMiddleware.Authenticate(authHandler.Logout()))

	// Admin surface
	routerMux.HandleFunc("POST /api/v1/admin/products", authMiddleware.Authenticate(productHandler.CreateProduct()))
	routerMux.HandleFunc("PUT /api/v1/admin/products/{id}", authMiddleware.Authenticate(productHandler.SaveProduct()))
	routerMux.HandleFunc("PATCH /api/v1/admin/products/{id}", authMiddleware.Authenticate(productHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE /api/v1/admin/products/{id}", authMiddleware.Authenticate(productHandler.DeleteProduct()))
	routerMux.HandleFunc("POST /api/v1/admin/catalogs", authMiddleware.Authenticate(catalogHandler.CreateCatalog()))
	routerMux.HandleFunc("PATCH /api/v1/admin/catalogs/{id}", authMiddleware.Authenticate(catalogHandler.UpdateCatalog()))
	routerMux.HandleFunc("DELETE /api/v1/admin/catalogs/{id}", authMiddleware.Authenticate(catalogHandler.DeleteCatalog()))
	routerMux.HandleFunc("PUT /api/v1/admin/catalogs/{id}/products/{productId}", authMiddleware.Authenticate(catalogHandler.AddProduct()))
	routerMux.HandleFunc("DELETE /api/v1/admin/catalogs/{id}/products/{productId}", authMiddleware.Authenticate(catalogHandler.RemoveProduct()))
	routerMux.HandleFunc("GET /api/v1/admin/users", authMiddleware.Authenticate(userHandler.ListUsers()))
	routerMux.HandleFunc("POST /api/v1/admin/users", authMiddleware.Authenticate(userHandler.CreateUser()))
	routerMux.HandleFunc("PATCH /api/v1/admin/users/{uid}/access", authMiddleware.Authenticate(userHandler.UpdateAccess()))
	routerMux.HandleFunc("DELETE /api/v1/admin/users/{uid}", authMiddleware.Authenticate(userHandler.DeleteUser()))
	routerMux.HandleFunc("GET /api/v1/admin/settings", authMiddleware.Authenticate(settingsHandler.GetSettings()))
	routerMux.HandleFunc("PATCH /api/v1/admin/settings", authMiddleware.Authenticate(settingsHandler.UpdateSettings()))

	// Operational surface
	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{RedisClient: redisClient})
	if err != nil {
		slog.Error("❌ Error creating health checks", "error", err.Error())
		os.Exit(1)
	}

	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

}
