package main

import (
	"context"
	stdlog "log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/erikselimi/bookmart-backend/internal/book"
	"github.com/erikselimi/bookmart-backend/internal/config"
	"github.com/erikselimi/bookmart-backend/internal/logger"
	"github.com/erikselimi/bookmart-backend/internal/notification"
	"github.com/erikselimi/bookmart-backend/internal/order"
)

// main wires dependencies (dependency injection) and starts the HTTP server.
func main() {
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		stdlog.Fatalf("config: %v", err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		stdlog.Fatalf("logger: %v", err)
	}
	defer log.Sync() //nolint:errcheck

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger(log))

	// catalog is reconstructed from seed data on every start; there is no
	// durability across restarts
	bookRepo := book.NewInMemoryRepository(book.Seed())
	bookHandler := book.NewHandler(book.NewService(bookRepo), log)

	var notifier order.Notifier
	if cfg.SMTP.Host != "" {
		notifier = notification.NewMailer(notification.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			To:       cfg.SMTP.To,
		}, log)
	} else {
		log.Info("SMTP_HOST not set, order notifications disabled")
	}

	orderRepo := order.NewInMemoryRepository()
	orderService := order.NewService(orderRepo, notifier, cfg.NotifyTimeout, log)
	orderHandler := order.NewHandler(orderService, log)

	bookHandler.RegisterRoutes(app)
	orderHandler.RegisterRoutes(app)

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	go func() {
		log.Info("http server start", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			log.Error("server stopped", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	if err := app.ShutdownWithContext(closeCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	log.Info("graceful shutdown finished")
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func requestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info("request",
			zap.String("method", c.Method()),
			zap.String("url", c.OriginalURL()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("took", time.Since(start)))
		return err
	}
}
