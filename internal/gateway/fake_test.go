package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/ariefcatur/smartpos/internal/pos"
)

var errOffline = errors.New("remote offline")

// fakeRemote menyimpan baris sebagai JSON per koleksi.
type fakeRemote struct {
	mu       sync.Mutex
	rows     map[pos.Collection][]byte
	fail     bool
	orders   []pos.Order
	spent    []*int
	transfer []string
}

func newFakeRemote() *fakeRemote { return &fakeRemote{rows: map[pos.Collection][]byte{}} }

func (f *fakeRemote) Name() string { return "fake" }

func (f *fakeRemote) List(_ context.Context, c pos.Collection, dst any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errOffline
	}
	b, ok := f.rows[c]
	if !ok {
		b = []byte("[]")
	}
	return json.Unmarshal(b, dst)
}

func (f *fakeRemote) set(c pos.Collection, rows any) {
	b, _ := json.Marshal(rows)
	f.mu.Lock()
	f.rows[c] = b
	f.mu.Unlock()
}

func (f *fakeRemote) Upsert(context.Context, pos.Collection, any) error {
	if f.fail {
		return errOffline
	}
	return nil
}

func (f *fakeRemote) Delete(context.Context, pos.Collection, ...string) error {
	if f.fail {
		return errOffline
	}
	return nil
}

func (f *fakeRemote) TransferCustomers(_ context.Context, ids []string, _ string, _ pos.Role) error {
	if f.fail {
		return errOffline
	}
	f.transfer = append(f.transfer, ids...)
	return nil
}

func (f *fakeRemote) CreateOrder(_ context.Context, o pos.Order, spent *int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = append(f.orders, o)
	f.spent = append(f.spent, spent)
	if f.fail {
		return errOffline
	}
	return nil
}

type published struct {
	key, value []byte
	headers    []kafkago.Header
}

type fakePublisher struct {
	msgs []published
}

func (p *fakePublisher) Publish(key, value []byte, headers ...kafkago.Header) {
	p.msgs = append(p.msgs, published{key, value, headers})
}

// brokenStore selalu gagal menulis.
type brokenStore struct{}

func (brokenStore) Read(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (brokenStore) Write(context.Context, string, []byte) error      { return errors.New("disk full") }
func (brokenStore) Close() error                                     { return nil }
