package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ariefcatur/smartpos/internal/app"
	"github.com/ariefcatur/smartpos/internal/config"
	"github.com/ariefcatur/smartpos/internal/gateway"
	"github.com/ariefcatur/smartpos/internal/httpx"
	kafkax "github.com/ariefcatur/smartpos/internal/kafka"
	"github.com/ariefcatur/smartpos/internal/mirror"
	"github.com/ariefcatur/smartpos/internal/pos"
)

func main() {
	_ = godotenv.Load()
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	log := logrus.WithField("service", cfg.ServiceName)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Mirror + remote
	deps, err := app.Open(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("startup")
	}
	defer deps.Close()

	if cfg.SeedDefaults {
		seeded, err := mirror.Seed(ctx, deps.Mirror, pos.DefaultProducts(), pos.DefaultUsers())
		if err != nil {
			log.WithError(err).Fatal("seed mirror")
		}
		if len(seeded) > 0 {
			log.WithField("collections", seeded).Info("mirror di-seed dengan data default")
		}
	}

	// Kafka producer (opsional)
	opt := gateway.Options{Logger: log, ServiceName: cfg.ServiceName}
	var prod *kafkax.Producer
	if cfg.EventsEnabled() {
		prod = kafkax.NewProducer(cfg.KafkaBrokers, pos.TopicOrderCreated, 1024, log)
		prod.Start(ctx)
		opt.Publisher = prod
	} else {
		log.Info("KAFKA_BROKERS kosong, event order dimatikan")
	}

	gw := deps.Gateway(opt)
	router := httpx.NewRouter()
	h := &httpx.Handler{GW: gw, Tokens: httpx.Tokens{Secret: []byte(cfg.JWTSecret)}, Log: log}
	h.Register(router)

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("HTTP listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("listen")
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	if prod != nil {
		prod.Close()      // stop loop -> drain & close writer
		prod.WaitClosed() // tunggu flush
	}
}
