// Package app contains the application setup for the storefront service.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/abgdnv/storefront/internal/assets"
	"github.com/abgdnv/storefront/internal/cart"
	"github.com/abgdnv/storefront/internal/catalog/service"
	"github.com/abgdnv/storefront/internal/catalog/store"
	"github.com/abgdnv/storefront/internal/config"
	"github.com/abgdnv/storefront/internal/contact"
	"github.com/abgdnv/storefront/internal/favorites"
	"github.com/abgdnv/storefront/internal/notify"
	"github.com/abgdnv/storefront/internal/selection"
	"github.com/abgdnv/storefront/internal/session"
	"github.com/abgdnv/storefront/internal/transport/rest"
	"github.com/abgdnv/storefront/pkg/auth"
	"github.com/abgdnv/storefront/pkg/messaging"
	"github.com/abgdnv/storefront/pkg/server"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Dependencies holds the storefront's wired services.
type Dependencies struct {
	Catalog   service.CatalogService
	Cart      *cart.Service
	Favorites *favorites.Service
	Selection *selection.Service
	Contact   *contact.Service
	Uploader  assets.Uploader
	Notifier  notify.Notifier
	Logger    *slog.Logger
}

// SetupDependencies wires the storefront's services over the given
// infrastructure clients. A nil publisher degrades toasts to structured logs.
func SetupDependencies(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, redisClient *redis.Client, publisher messaging.Publisher, logger *slog.Logger) (*Dependencies, error) {
	var notifier notify.Notifier
	if publisher != nil {
		notifier = notify.NewBrokerNotifier(publisher, logger)
	} else {
		notifier = notify.NewLogNotifier(logger)
	}

	sessions := session.NewRedisStore(redisClient, cfg.Redis.TTL)
	catalogSvc := service.NewService(store.NewPgStore(dbPool))
	cartSvc := cart.NewService(sessions, notifier, logger)
	favoritesSvc := favorites.NewService(sessions, notifier, logger)
	selectionSvc := selection.NewService(catalogSvc, cartSvc, notifier, logger)
	contactSvc := contact.NewService(contact.NewSMTPMailer(cfg.SMTP), notifier, logger)

	uploader, err := assets.NewMinIOUploader(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to set up image uploader: %w", err)
	}
	if err := uploader.EnsureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure image bucket: %w", err)
	}

	return &Dependencies{
		Catalog:   catalogSvc,
		Cart:      cartSvc,
		Favorites: favoritesSvc,
		Selection: selectionSvc,
		Contact:   contactSvc,
		Uploader:  uploader,
		Notifier:  notifier,
		Logger:    logger,
	}, nil
}

// SetupHttpHandler initializes the router and routes for the storefront.
// Used by E2E tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies, verifier auth.Verifier, adminEmail string) http.Handler {
	api := rest.NewHandler(deps.Catalog, deps.Cart, deps.Favorites, deps.Selection, deps.Contact, deps.Uploader, deps.Logger)

	mux := server.NewChiRouter(deps.Logger)
	api.RegisterRoutes(mux, verifier, adminEmail)
	return mux
}

// SetupHttpServer creates and configures the storefront's HTTP server.
func SetupHttpServer(deps *Dependencies, cfg *config.Config, verifier auth.Verifier) *http.Server {
	mux := SetupHttpHandler(deps, verifier, cfg.Admin.Email)
	return server.NewHTTPServer(server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}, mux)
}
