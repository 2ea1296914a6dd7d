package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/texcare/storefront/internal/cart"
	"github.com/texcare/storefront/internal/catalog"
	"github.com/texcare/storefront/internal/config"
	"github.com/texcare/storefront/internal/content"
	"github.com/texcare/storefront/internal/es"
	"github.com/texcare/storefront/internal/events"
	"github.com/texcare/storefront/internal/handlers"
	"github.com/texcare/storefront/internal/logging"
	"github.com/texcare/storefront/internal/mail"
	"github.com/texcare/storefront/internal/notify"
	"github.com/texcare/storefront/internal/recaptcha"
	"github.com/texcare/storefront/internal/session"
	"github.com/texcare/storefront/internal/shopify"
	httpserver "github.com/texcare/storefront/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)
	ctx := logging.IntoContext(context.Background(), logger)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	var prod *events.Producer
	if configuration.KAFKA_ADDRESS != "" {
		prod = events.NewProducer([]string{configuration.KAFKA_ADDRESS})
	}

	store, err := content.Load(configuration.CONTENT_FILE)
	if err != nil {
		log.Fatalf("content load error: %v", err)
	}

	articleHandler := &handlers.ArticleHandler{Store: store, Index: content.ArticleIndex}
	if configuration.ES_URL != "" {
		esClient, err := es.NewClient(configuration)
		if err != nil {
			logger.Warn("elasticsearch unavailable, article search falls back to in-memory filter", "error", err)
		} else {
			articleHandler.ES = esClient
			if err := content.IndexAll(ctx, esClient, content.ArticleIndex, store.List()); err != nil {
				logger.Warn("article indexing failed", "error", err)
			}
		}
	}

	shopifyClient := shopify.FromConfig(configuration)
	notifier := notify.New(notify.DefaultTTL)
	cartService := cart.NewService(shopifyClient, notifier)
	catalogService := catalog.NewService(shopifyClient)
	sessions := session.NewManager([]byte(configuration.SESSION_SECRET))
	verifier := recaptcha.New(configuration.RECAPTCHA_SECRET)
	mailer := mail.NewSMTPSender(
		configuration.SMTP_HOST,
		configuration.SMTP_PORT,
		configuration.SMTP_USER,
		configuration.SMTP_PASSWORD,
		configuration.SMTP_FROM,
	)

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())

	deps := httpserver.Deps{
		CartHandler:         &handlers.CartHandler{Cart: cartService, Sessions: sessions, Producer: prod},
		ProductHandler:      &handlers.ProductHandler{Catalog: catalogService},
		ArticleHandler:      articleHandler,
		ContactHandler:      &handlers.ContactHandler{DB: db, Verifier: verifier, Mailer: mailer, Recipient: configuration.CONTACT_RECIPIENT, Producer: prod},
		AdminHandler:        &handlers.AdminHandler{Catalog: catalogService, KeyHash: configuration.ADMIN_KEY_HASH},
		NotificationHandler: &handlers.NotificationHandler{Notifier: notifier, Sessions: sessions},
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if prod != nil {
		if err := prod.Close(); err != nil {
			log.Printf("kafka close error: %v", err)
		}
	}

	log.Println("shutdown complete")
}
