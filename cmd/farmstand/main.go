package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/verdantmarket/farmstand/internal/cache"
	"github.com/verdantmarket/farmstand/internal/clock"
	"github.com/verdantmarket/farmstand/internal/db"
	"github.com/verdantmarket/farmstand/internal/kafka"
	"github.com/verdantmarket/farmstand/internal/logger"
	"github.com/verdantmarket/farmstand/internal/repository/postgresql"
	"github.com/verdantmarket/farmstand/internal/scheduler"
	"github.com/verdantmarket/farmstand/internal/server"
	"github.com/verdantmarket/farmstand/internal/storage"
)

func main() {
	zl := logger.New()
	defer func() {
		_ = zl.Sync()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	database, err := db.NewDb(ctx)
	if err != nil {
		zl.Fatal("Database init error", zap.Error(err))
	}
	defer database.GetPool().Close()

	productRepo := postgresql.NewProductRepo(database)
	orderRepo := postgresql.NewOrderRepo(database)
	userRepo := postgresql.NewUserRepo(database)
	transactionRepo := postgresql.NewTransactionRepo(database)
	historyRepo := postgresql.NewHistoryRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()

	if err := storage.InitAdmin(ctx, userRepo,
		os.Getenv("ADMIN_USERNAME"), os.Getenv("ADMIN_PASSWORD")); err != nil {
		zl.Fatal("Admin seed failed", zap.Error(err))
	}

	var clk clock.Clock = clock.System{}
	if os.Getenv("VIRTUAL_CLOCK") == "true" {
		// Controlled mode: the cycle only advances via POST /process/close.
		clk = clock.NewVirtual(time.Now())
		zl.Info("Running with a virtual clock")
	}

	market := storage.NewMarketStorage(
		database,
		productRepo,
		orderRepo,
		userRepo,
		transactionRepo,
		historyRepo,
		outboxRepo,
		clk,
	)

	productCache := cache.NewProductCache(productRepo)
	if err := productCache.LoadInitialData(ctx); err != nil {
		zl.Warn("Product cache warmup failed", zap.Error(err))
	}

	var producer kafka.Producer
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		producer = kafka.NewWriterProducer(strings.Split(brokers, ","))
	} else {
		producer = kafka.NewConsoleProducer()
	}

	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: 2 * time.Second,
		BatchSize:    20,
		MaxAttempts:  5,
	})
	go publisher.Run(ctx)

	sched := scheduler.New(market, clk, zl)
	go sched.Run(ctx)

	srv := server.New(market, userRepo, sched, productCache)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "9000"
	}

	go func() {
		if err := srv.Run(ctx, port); err != nil {
			zl.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("Server shutdown failed", zap.Error(err))
	}
	publisher.Shutdown()

	log.Println("Server gracefully stopped")
}
