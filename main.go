package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"ticketing/internal/app"
	"ticketing/internal/config"
	"ticketing/internal/infrastructure/clients"
)

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetOutput(os.Stdout)

	cfg := config.LoadConfig()

	db, err := sqlx.Open("postgres", cfg.PostgresURL)
	if err != nil {
		logger.WithError(err).Fatal("failed to open postgres connection")
	}
	defer db.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisURL,
	})
	defer rdb.Close()

	notifier := clients.NewNotificationsClient(logger, cfg.NotifyWebhookURL)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := app.NewApp(logger, cfg, notifier, rdb, db, rng)
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize application")
	}

	if err := a.Run(ctx); err != nil {
		logger.WithError(err).Fatal("application stopped with error")
	}
}
