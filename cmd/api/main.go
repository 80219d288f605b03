package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vitacare/commerce/internal/commerce"
	"github.com/vitacare/commerce/internal/config"
	"github.com/vitacare/commerce/internal/httpx"
	kafkax "github.com/vitacare/commerce/internal/kafka"
	"github.com/vitacare/commerce/internal/postgres"
	"github.com/vitacare/commerce/internal/redisx"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer db.Close()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producers
	prodPaid := kafkax.NewProducer(cfg.KafkaBrokers, commerce.TopicOrderPaid, 1024)
	prodPaid.Start(ctx)
	prodTransfer := kafkax.NewProducer(cfg.KafkaBrokers, commerce.TopicEntitlementTransferred, 1024)
	prodTransfer.Start(ctx)

	// Repos & handlers
	router := httpx.NewRouter()
	oh := &httpx.OrdersHandler{
		Repo:          &commerce.Repo{DB: db},
		Producer:      prodPaid,
		Redis:         rdb,
		Service:       cfg.ServiceName,
		SettlementLoc: cfg.SettlementLocation,
	}
	oh.Register(router)

	bookings := &commerce.BookingRepo{DB: db}
	bh := &httpx.BookingsHandler{Repo: bookings}
	bh.Register(router)

	eh := &httpx.EntitlementsHandler{
		Repo:     &commerce.EntitlementRepo{DB: db},
		Bookings: bookings,
		Redis:    rdb,
		Producer: prodTransfer,
		Service:  cfg.ServiceName,
	}
	eh.Register(router)

	dh := &httpx.BindingsHandler{Repo: &commerce.BindingRepo{DB: db}}
	dh.Register(router)

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	// graceful shutdown
	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prodPaid.Close() // close inbox -> flush & close writer
	prodTransfer.Close()
	cancel() // stop producer loops
	prodPaid.WaitClosed()
	prodTransfer.WaitClosed()
}
