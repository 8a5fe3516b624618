package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/finance_bot/bot"
	"github.com/mmdatafocus/finance_bot/config"
	"github.com/mmdatafocus/finance_bot/models"
	"github.com/mmdatafocus/finance_bot/stats"
	"github.com/mmdatafocus/finance_bot/stripeapi"
	"github.com/sirupsen/logrus"
)

const defaultPort = "8080"

// dayCacheTTL bounds how long a finalized day's metrics live in Redis.
const dayCacheTTL = 30 * 24 * time.Hour

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	logger := config.GetLogger()

	if missing := config.RequiredEnv(
		"DISCORD_BOT_TOKEN",
		"DISCORD_CLIENT_ID",
		"STRIPE_SECRET_KEY",
		"DB_USER",
		"DB_PASSWORD",
		"DB_HOST",
		"DB_NAME",
	); len(missing) > 0 {
		logger.WithFields(logrus.Fields{
			"missing": strings.Join(missing, ", "),
		}).Fatal("missing required environment variables")
	}

	// Cloud Run sends SIGTERM on revision shutdown; handle it for graceful drain.
	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	// Start the HTTP health server ASAP so Cloud Run considers the revision
	// healthy. App readiness is gated on the database connection.
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/readyz", func(c *gin.Context) {
		if config.GetDB() == nil {
			c.Status(http.StatusServiceUnavailable)
			return
		}
		c.Status(http.StatusNoContent)
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		// ListenAndServe returns http.ErrServerClosed on graceful shutdown.
		serverErrCh <- srv.ListenAndServe()
	}()

	// Connect dependencies after the port is open.
	config.ConnectDatabaseWithRetry()
	config.ConnectRedis()

	db := config.GetDB()
	sqlDB, _ := db.DB()
	defer func() {
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
	}()

	store := models.NewExpenseStore(db)
	if err := store.Migrate(); err != nil {
		logger.WithFields(logrus.Fields{"field": "migrations"}).Fatal(err.Error())
	}

	stripeClient := stripeapi.New(os.Getenv("STRIPE_SECRET_KEY"))
	statsService := stats.NewService(
		stripeClient,
		config.TimezoneOffsetHours(),
		&stats.RedisDayCache{TTL: dayCacheTTL},
	)

	b, err := bot.New(os.Getenv("DISCORD_BOT_TOKEN"), store, stripeClient, statsService)
	if err != nil {
		logger.WithFields(logrus.Fields{"field": "discord"}).Fatal(err.Error())
	}
	if err := b.Start(); err != nil {
		logger.WithFields(logrus.Fields{"field": "discord"}).Fatal(err.Error())
	}

	logger.WithFields(logrus.Fields{
		"port": port,
	}).Info("bot started")

	// Block until shutdown or server error.
	select {
	case <-sigCtx.Done():
		// graceful shutdown below
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithFields(logrus.Fields{"field": "http"}).Error("server stopped unexpectedly: " + err.Error())
		}
	}

	// Close the gateway first so no new interactions arrive while draining.
	if err := b.Stop(); err != nil {
		logger.WithFields(logrus.Fields{"field": "discord"}).Error("close discord session: " + err.Error())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithFields(logrus.Fields{"field": "http"}).Error("graceful shutdown failed: " + err.Error())
	}

	if rdb := config.GetRedisDB(); rdb != nil {
		_ = rdb.Close()
	}
}
