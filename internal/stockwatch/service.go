// Package stockwatch mendengarkan event OrderCreated dan mengumumkan produk
// yang stoknya turun di bawah ambang.
package stockwatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/ariefcatur/smartpos/internal/gateway"
	kafkax "github.com/ariefcatur/smartpos/internal/kafka"
	"github.com/ariefcatur/smartpos/internal/pos"
	"github.com/ariefcatur/smartpos/internal/redisx"
)

const DefaultThreshold = 10

type Products interface {
	List(ctx context.Context) (gateway.Result[pos.Product], error)
}

type Service struct {
	Products    Products
	Redis       *redis.Client
	Producer    gateway.Publisher // publish stock.low
	Threshold   int
	ServiceName string
	Log         *logrus.Entry
}

func (s *Service) threshold() int {
	if s.Threshold <= 0 {
		return DefaultThreshold
	}
	return s.Threshold
}

func (s *Service) logger() *logrus.Entry {
	if s.Log == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return s.Log
}

// HandleOrderCreated: dipasang sebagai handler consumer.
func (s *Service) HandleOrderCreated(ctx context.Context, m kafkago.Message) error {
	// 1) decode envelope
	var env pos.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}
	if env.EventType != pos.EventOrderCreated {
		return nil
	} // ignore

	// 2) dedup via Redis (pakai event_id)
	dkey := redisx.DedupKey(s.ServiceName, env.EventID)
	first, err := redisx.MarkOnce(ctx, s.Redis, dkey, redisx.TTLDedup)
	if err != nil {
		return err
	}
	if !first {
		return nil
	}

	published, err := s.process(ctx, env)
	if err != nil {
		// lepas dedup supaya pesan yang belum di-commit bisa diproses ulang
		if ferr := redisx.Forget(ctx, s.Redis, dkey); ferr != nil {
			s.logger().WithError(ferr).Warn("hapus dedup key gagal")
		}
		return err
	}
	if published > 0 {
		s.logger().WithFields(logrus.Fields{"order_id": env.CorrelationID, "low": published}).Info("stok rendah diumumkan")
	}
	return nil
}

func (s *Service) process(ctx context.Context, env pos.Envelope) (int, error) {
	// 3) decode payload
	p, err := kafkax.UnwrapPayload[pos.OrderCreatedPayload](env.Payload)
	if err != nil {
		return 0, err
	}

	// 4) stok terkini lewat gateway (remote, atau cache kalau remote mati)
	res, err := s.Products.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list products: %w", err)
	}
	if res.Degraded() {
		s.logger().WithError(res.Err).Warn("cek stok memakai cache")
	}

	low := LowStock(res.Data, p.Items, s.threshold())
	for _, pr := range low {
		s.publishLow(pr, p.OrderID, env.TraceID)
	}
	return len(low), nil
}

// LowStock mengembalikan produk di order yang stoknya < threshold.
// Produk yang muncul lebih dari sekali di order hanya dihitung sekali.
func LowStock(products []pos.Product, items []pos.ItemQty, threshold int) []pos.Product {
	byID := make(map[string]pos.Product, len(products))
	for _, pr := range products {
		byID[pr.ID] = pr
	}
	seen := map[string]bool{}
	var out []pos.Product
	for _, it := range items {
		pr, ok := byID[it.ProductID]
		if !ok || seen[pr.ID] {
			continue
		}
		seen[pr.ID] = true
		if pr.Stock < threshold {
			out = append(out, pr)
		}
	}
	return out
}

func (s *Service) publishLow(pr pos.Product, orderID, trace string) {
	ev := pos.Envelope{
		EventID:       uuid.NewString(),
		EventType:     pos.EventStockLow,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      s.ServiceName,
		TraceID:       trace,
		CorrelationID: orderID,
		Payload: kafkax.MustMarshal(pos.StockLowPayload{
			ProductID: pr.ID, Name: pr.Name, Stock: pr.Stock, Threshold: s.threshold(), OrderID: orderID,
		}),
	}
	s.Producer.Publish(pos.PartitionKey(pr.ID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(pos.EventStockLow)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
