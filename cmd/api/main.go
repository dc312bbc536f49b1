package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/verdantliving/verdant-backend/internal/modules/cart"
	"github.com/verdantliving/verdant-backend/internal/modules/catalog"
	"github.com/verdantliving/verdant-backend/internal/modules/checkout"
	"github.com/verdantliving/verdant-backend/internal/modules/session"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using process environment")
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Shopper sessions ────────────────────────────────────
	jwtKey := os.Getenv("SESSION_JWT_KEY")
	if jwtKey == "" {
		jwtKey = "dev-session-key"
		log.Warn("SESSION_JWT_KEY not set, using the insecure dev key")
	}
	sessions := session.NewService([]byte(jwtKey))
	router.Use(session.Middleware(sessions, log))

	// ── Catalog ─────────────────────────────────────────────
	var catalogRepo catalog.Repository
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Fatal(err)
		}
		log.Info("connected to the catalog database")
		catalogRepo = catalog.NewPostgresRepository(db)
	} else {
		log.Info("DATABASE_URL not set, serving the built-in sample catalog")
		catalogRepo = catalog.NewMemoryRepository()
	}
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	// ── Cart ────────────────────────────────────────────────
	var cartStore cart.Store
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisStore := cart.NewRedisStore(addr)
		if err := redisStore.Ping(context.Background()); err != nil {
			log.WithError(err).Warn("redis unreachable at startup, carts continue in memory until it recovers")
		}
		cartStore = redisStore
	} else {
		log.Info("REDIS_ADDR not set, carts will not survive a restart")
		cartStore = cart.NewMemoryStore()
	}
	cartService := cart.NewService(cartStore, cart.NewLogNotifier(log), log)
	cart.NewHandler(cartService, catalogService).RegisterRoutes(router)

	// ── Checkout ────────────────────────────────────────────
	gateway := checkout.NewHTTPGateway(
		os.Getenv("PAYMENT_SESSION_URL"),
		os.Getenv("PAYMENT_SECRET_KEY"),
	)
	checkoutService := checkout.NewService(gateway)
	checkout.NewHandler(checkoutService, cartService).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	log.Infof("Verdant API server starting on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
