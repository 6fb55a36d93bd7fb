package main

import (
	"context"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/gatemediang/rushmore-pizza/internal/catalog"
	"github.com/gatemediang/rushmore-pizza/internal/config"
	"github.com/gatemediang/rushmore-pizza/internal/httpx"
	kafkax "github.com/gatemediang/rushmore-pizza/internal/kafka"
	"github.com/gatemediang/rushmore-pizza/internal/logger"
	"github.com/gatemediang/rushmore-pizza/internal/orders"
	"github.com/gatemediang/rushmore-pizza/internal/postgres"
	"github.com/gatemediang/rushmore-pizza/internal/redisx"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.ServiceName)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Error("db connect failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.RunMigrations(ctx, db, cfg.MigrationsDir); err != nil {
		log.Error("migrations failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Catalog strategy: remote API when configured, otherwise Postgres.
	var reader catalog.Reader
	if cfg.CatalogAPIURL != "" {
		reader = catalog.NewRemoteReader(cfg.CatalogAPIURL)
		log.Info("catalog reader", slog.String("mode", "remote"), slog.String("url", cfg.CatalogAPIURL))
	} else {
		reader = &catalog.PostgresReader{DB: db}
		log.Info("catalog reader", slog.String("mode", "postgres"))
	}

	// Pizza of the Day: picked once per catalog load, shared by every order
	// placed through this process.
	promo := pickPromo(ctx, cfg, reader, log)

	handler := &httpx.Handler{
		Catalog: reader,
		Orders:  orders.NewService(&orders.Repo{DB: db}, promo, log),
		Service: cfg.ServiceName,
		Log:     log,
	}
	if cfg.RedisAddr != "" {
		rc := redisx.New(cfg.RedisAddr)
		defer rc.Close()
		handler.Redis = rc
	}

	// Kafka producer (optional)
	var prod *kafkax.Producer
	if len(cfg.KafkaBrokers) > 0 {
		prod = kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderPlaced, 1024)
		prod.Start(ctx)
		handler.Producer = prod
	}

	router := httpx.NewRouter()
	handler.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Info("http listening", slog.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	cancel()
	if prod != nil {
		prod.WaitClosed()
	}
}

func pickPromo(ctx context.Context, cfg config.Config, reader catalog.Reader, log *slog.Logger) *orders.Promo {
	menu, err := reader.ListMenu(ctx)
	if err != nil {
		log.Warn("menu load failed, no pizza of the day", slog.String("error", err.Error()))
		return nil
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	potd := catalog.PickPizzaOfTheDay(menu, cfg.PizzaOfTheDay, rng)
	if potd == nil {
		log.Info("no eligible pizza of the day")
		return nil
	}
	log.Info("pizza of the day selected",
		slog.Int64("item_id", potd.ItemID),
		slog.String("name", potd.Name),
		slog.Float64("discount_percent", cfg.PotdDiscountPercent))
	return &orders.Promo{
		ItemID:  potd.ItemID,
		Percent: decimal.NewFromFloat(cfg.PotdDiscountPercent),
	}
}
