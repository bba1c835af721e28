// Package gateway adalah remote data gateway: baca dari backend remote dengan
// fallback ke local mirror, tulis ke mirror dulu lalu sinkron best-effort.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	kafkax "github.com/ariefcatur/smartpos/internal/kafka"
	"github.com/ariefcatur/smartpos/internal/mirror"
	"github.com/ariefcatur/smartpos/internal/pos"
	"github.com/ariefcatur/smartpos/internal/remote"
)

// Publisher dipenuhi oleh *kafka.Producer.
type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

type Options struct {
	Remote      remote.Remote // nil = local-only
	Publisher   Publisher     // nil = event tidak dikirim
	Logger      *logrus.Entry
	ServiceName string
	Builder     pos.OrderBuilder
}

type Gateway struct {
	Products  *Collection[pos.Product]
	Users     *Collection[pos.User]
	Customers *Collection[pos.Customer]
	Orders    Lister[pos.Order]

	mu        sync.Mutex
	mirror    mirror.Store
	remote    remote.Remote
	publisher Publisher
	builder   pos.OrderBuilder
	service   string
	log       *logrus.Entry
}

// New: store dibuat sekali di main dan dioper ke sini.
func New(store mirror.Store, opt Options) *Gateway {
	log := opt.Logger
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	g := &Gateway{
		mirror:    store,
		remote:    opt.Remote,
		publisher: opt.Publisher,
		builder:   opt.Builder,
		service:   opt.ServiceName,
		log:       log.WithField("component", "gateway"),
	}
	g.Products = newCollection[pos.Product](pos.CollectionProducts, g)
	g.Users = newCollection[pos.User](pos.CollectionUsers, g)
	g.Customers = newCollection[pos.Customer](pos.CollectionCustomers, g)
	g.Orders = newCollection[pos.Order](pos.CollectionOrders, g)
	return g
}

func (g *Gateway) RemoteConfigured() bool { return g.remote != nil }

// CreateOrder menjalankan efek samping order secara berurutan, masing-masing
// best-effort: (1) kurangi stok mirror, (2) tambah total_spent customer,
// (3) prepend order ke mirror, (4) sinkron remote, (5) publish event.
// Yang dikembalikan hanya gabungan error lokal; kegagalan remote/event di-log.
func (g *Gateway) CreateOrder(ctx context.Context, o pos.Order) error {
	log := g.log.WithField("order_id", o.ID)
	var errs []error

	g.mu.Lock()
	if err := g.decrementStock(ctx, o.Items); err != nil {
		errs = append(errs, err)
	}
	spent, err := g.addCustomerSpend(ctx, o.CustomerID, o.TotalAmount)
	if err != nil {
		errs = append(errs, err)
	}
	if err := g.prependOrder(ctx, o); err != nil {
		errs = append(errs, err)
	}
	g.mu.Unlock()

	if g.remote != nil {
		if err := g.remote.CreateOrder(ctx, o, spent); err != nil {
			log.WithError(err).Warn("sinkron order ke remote gagal, state lokal tetap dipakai")
		}
	}
	g.publishOrderCreated(ctx, o)

	if len(errs) > 0 {
		log.WithError(errors.Join(errs...)).Error("efek samping order lokal tidak lengkap")
	}
	return errors.Join(errs...)
}

func (g *Gateway) decrementStock(ctx context.Context, items []pos.CartItem) error {
	products, err := mirror.Load[pos.Product](ctx, g.mirror, pos.CollectionProducts)
	if err != nil {
		return fmt.Errorf("stok: %w", err)
	}
	idx := make(map[string]int, len(products))
	for i, p := range products {
		idx[p.ID] = i
	}
	for _, it := range items {
		if i, ok := idx[it.ID]; ok {
			products[i].Stock -= it.Quantity // tanpa clamp, boleh negatif
		}
	}
	if err := mirror.Save(ctx, g.mirror, pos.CollectionProducts, products); err != nil {
		return fmt.Errorf("stok: %w", err)
	}
	return nil
}

// addCustomerSpend mengembalikan total_spent baru, nil kalau customer tidak ada.
func (g *Gateway) addCustomerSpend(ctx context.Context, customerID string, amount int) (*int, error) {
	if customerID == "" {
		return nil, nil
	}
	customers, err := mirror.Load[pos.Customer](ctx, g.mirror, pos.CollectionCustomers)
	if err != nil {
		return nil, fmt.Errorf("customer: %w", err)
	}
	var spent *int
	for i := range customers {
		if customers[i].ID == customerID {
			customers[i].TotalSpent += amount
			v := customers[i].TotalSpent
			spent = &v
			break
		}
	}
	if spent == nil {
		g.log.WithField("customer_id", customerID).Warn("customer tidak ditemukan di mirror")
		return nil, nil
	}
	if err := mirror.Save(ctx, g.mirror, pos.CollectionCustomers, customers); err != nil {
		return spent, fmt.Errorf("customer: %w", err)
	}
	return spent, nil
}

func (g *Gateway) prependOrder(ctx context.Context, o pos.Order) error {
	orders, err := mirror.Load[pos.Order](ctx, g.mirror, pos.CollectionOrders)
	if err != nil {
		return fmt.Errorf("order: %w", err)
	}
	orders = append([]pos.Order{o}, orders...)
	if err := mirror.Save(ctx, g.mirror, pos.CollectionOrders, orders); err != nil {
		return fmt.Errorf("order: %w", err)
	}
	return nil
}

func (g *Gateway) publishOrderCreated(ctx context.Context, o pos.Order) {
	if g.publisher == nil {
		return
	}
	ev := pos.Envelope{
		EventID:       uuid.NewString(),
		EventType:     pos.EventOrderCreated,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      g.service,
		TraceID:       TraceID(ctx),
		CorrelationID: o.ID,
		Payload:       kafkax.MustMarshal(pos.NewOrderCreatedPayload(o)),
	}
	g.publisher.Publish(pos.PartitionKey(o.ID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(pos.EventOrderCreated)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

// Checkout menyusun order dari keranjang (aturan domain) lalu CreateOrder.
// Actor Gudang ditolak dan tidak ada order yang dibuat.
func (g *Gateway) Checkout(ctx context.Context, actor pos.User, req pos.CheckoutRequest) (pos.Order, error) {
	o, err := g.builder.Build(actor, req)
	if err != nil {
		return pos.Order{}, err
	}
	if err := g.CreateOrder(ctx, o); err != nil {
		return o, fmt.Errorf("simpan order %s: %w", o.ID, err)
	}
	return o, nil
}

// BulkTransferCustomers memindahkan kepemilikan sekumpulan customer dalam satu pass.
func (g *Gateway) BulkTransferCustomers(ctx context.Context, ids []string, ownerID string, ownerRole pos.Role) error {
	if len(ids) == 0 {
		return nil
	}
	move := make(map[string]bool, len(ids))
	for _, id := range ids {
		move[id] = true
	}

	g.mu.Lock()
	customers, err := mirror.Load[pos.Customer](ctx, g.mirror, pos.CollectionCustomers)
	if err == nil {
		for i := range customers {
			if move[customers[i].ID] {
				customers[i].CreatedBy = ownerID
				customers[i].CreatedByRole = ownerRole
			}
		}
		err = mirror.Save(ctx, g.mirror, pos.CollectionCustomers, customers)
	}
	g.mu.Unlock()
	if err != nil {
		return err
	}

	if g.remote != nil {
		if err := g.remote.TransferCustomers(ctx, ids, ownerID, ownerRole); err != nil {
			g.log.WithError(err).WithField("ids", ids).Warn("remote transfer customer gagal")
		}
	}
	return nil
}

func (g *Gateway) BulkDeleteCustomers(ctx context.Context, ids []string) error {
	return g.Customers.Delete(ctx, ids...)
}
