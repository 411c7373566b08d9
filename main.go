package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/svillors/star-burger/app/catalog"
	"github.com/svillors/star-burger/app/orders"
	"github.com/svillors/star-burger/app/restaurateur"
	"github.com/svillors/star-burger/assignment"
	"github.com/svillors/star-burger/config"
	"github.com/svillors/star-burger/database"
	"github.com/svillors/star-burger/geocache"
	"github.com/svillors/star-burger/geocoder"
	"github.com/svillors/star-burger/models"
	"github.com/svillors/star-burger/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("configuration error: %v", err)
	}

	if err := database.Migrate(cfg.DatabaseURL, "migrations"); err != nil {
		logrus.Fatalf("failed to run migrations: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}

	var hot *geocache.HotCache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			logrus.Fatalf("failed to connect to redis: %v", err)
		}
		// Zero TTL: entries live until explicitly invalidated, same as
		// the persistent tier.
		hot = geocache.NewHotCache(client, 0)
	}

	resolver := geocache.NewResolver(
		models.NewPlacesRepository(db),
		geocoder.NewYandexGeocoder(cfg.YandexAPIKey),
		hot,
	)
	assigner := assignment.NewAssigner(resolver)

	productsRepo := models.NewProductsRepository(db)
	ordersRepo := models.NewOrdersRepository(db)

	svr := server.SetupRoutes(server.Handlers{
		Catalog: catalog.NewCatalogHandler(productsRepo),
		Orders:  orders.NewOrderHandler(ordersRepo, resolver),
		Restaurateur: restaurateur.NewHandler(
			ordersRepo,
			assigner,
			productsRepo,
			models.NewRestaurantsRepository(db),
			resolver,
		),
	})

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logrus.Infof("listening on %s", cfg.HTTPAddr)
		if err := svr.Run(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server error: %v", err)
		}
	}()

	<-done
	logrus.Info("shutting down...")
	if err := svr.Shutdown(shutdownTimeout); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
}
