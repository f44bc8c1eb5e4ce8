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

	"github.com/walkinit/storefront/internal/ai"
	"github.com/walkinit/storefront/internal/auth"
	"github.com/walkinit/storefront/internal/checkout"
	"github.com/walkinit/storefront/internal/config"
	"github.com/walkinit/storefront/internal/events"
	"github.com/walkinit/storefront/internal/handlers"
	"github.com/walkinit/storefront/internal/logging"
	"github.com/walkinit/storefront/internal/orderstore"
	"github.com/walkinit/storefront/internal/search"
	"github.com/walkinit/storefront/internal/shop"
	httpserver "github.com/walkinit/storefront/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LogLevel)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("order store init error: %v", err)
	}
	store, err := orderstore.NewGormStore(db)
	if err != nil {
		log.Fatal(err)
	}

	prod := events.NewProducer(configuration.KAFKA_BROKERS)
	if prod == nil {
		logger.Warn("kafka brokers not configured, events disabled")
	}

	accounts, err := auth.SeedAccounts(configuration.USER_PASSWORD, configuration.ADMIN_PASSWORD)
	if err != nil {
		log.Fatal(err)
	}

	state := shop.New(shop.SeedCatalog(), shop.SeedUser())
	state.Subscribe(func() {
		logger.Debug("shop state changed")
	})

	machine := checkout.NewMachine(state, store)

	aiClient := ai.NewClient(configuration.AI_API_KEY, configuration.AI_BASE_URL, configuration.AI_MODEL)
	if !aiClient.Configured() {
		logger.Warn("AI key not configured, description and chat fall back to fixed replies")
	}

	jwtSecret := []byte(configuration.JWT_SECRET)

	deps := httpserver.Deps{
		JWTSecret:       jwtSecret,
		AuthHandler:     &handlers.AuthHandler{Users: accounts, JWTSecret: jwtSecret},
		ProductHandler:  &handlers.ProductHandler{Shop: state},
		CartHandler:     &handlers.CartHandler{Shop: state, Producer: prod},
		CheckoutHandler: &handlers.CheckoutHandler{Shop: state, Machine: machine, Producer: prod},
		ChatHandler:     &handlers.ChatHandler{AI: aiClient},
		AdminHandler:    &handlers.AdminHandler{Shop: state, AI: aiClient, Producer: prod},
	}

	if configuration.ES_URL != "" {
		esClient, err := search.NewClient(configuration.ES_URL, configuration.ES_USER, configuration.ES_PASSWORD)
		if err != nil {
			log.Fatal(err)
		}
		deps.AdminHandler.ES = esClient
		deps.SearchHandler = &handlers.SearchHandler{ES: esClient}
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(logging.RequestLogger(logger))

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.ServerPort,
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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
