package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ariefcatur/smartpos/internal/app"
	"github.com/ariefcatur/smartpos/internal/config"
	"github.com/ariefcatur/smartpos/internal/gateway"
	kafkax "github.com/ariefcatur/smartpos/internal/kafka"
	"github.com/ariefcatur/smartpos/internal/pos"
	"github.com/ariefcatur/smartpos/internal/stockwatch"
)

func main() {
	_ = godotenv.Load()
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	service := cfg.ServiceName + "-stockwatch"
	log := logrus.WithField("service", service)
	if !cfg.EventsEnabled() {
		log.Fatal("KAFKA_BROKERS wajib diisi untuk stockwatch")
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps, err := app.Open(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("startup")
	}
	defer deps.Close()
	if err := deps.Redis.Ping(ctx).Err(); err != nil {
		log.WithError(err).Fatal("redis")
	}

	// Producer stock.low
	prod := kafkax.NewProducer(cfg.KafkaBrokers, pos.TopicStockLow, 1024, log)
	prod.Start(ctx)

	gw := deps.Gateway(gateway.Options{Logger: log, ServiceName: service})
	svc := &stockwatch.Service{
		Products:    gw.Products,
		Redis:       deps.Redis,
		Producer:    prod,
		Threshold:   cfg.LowStockThreshold,
		ServiceName: service,
		Log:         log,
	}

	// Consumer
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.StockwatchGroup, pos.TopicOrderCreated, cfg.StockwatchWorkers, log)
	done := make(chan struct{})
	go func() {
		defer close(done)
		log.WithFields(logrus.Fields{
			"group":   cfg.StockwatchGroup,
			"topic":   pos.TopicOrderCreated,
			"workers": cfg.StockwatchWorkers,
		}).Info("stockwatch consumer started")
		if err := cons.Start(ctx, svc.HandleOrderCreated); err != nil {
			log.WithError(err).Error("consumer exit")
			cancel()
		}
	}()

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}
	log.Info("shutting down consumer...")
	cancel()
	<-done
	prod.Close()
	prod.WaitClosed()
}
