package gateway

import (
	"context"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ariefcatur/smartpos/internal/mirror"
	"github.com/ariefcatur/smartpos/internal/pos"
	"github.com/ariefcatur/smartpos/internal/remote"
)

// Lister: koleksi read-only (orders tidak punya jalur update/delete).
type Lister[T pos.Record] interface {
	List(ctx context.Context) (Result[T], error)
}

// Collection: list/upsert/delete satu koleksi dengan fallback ke mirror.
type Collection[T pos.Record] struct {
	name   pos.Collection
	mirror mirror.Store
	remote remote.Remote // nil = local-only
	mu     *sync.Mutex   // dibagi dengan Gateway, menjaga read-modify-write mirror
	log    *logrus.Entry
}

func newCollection[T pos.Record](name pos.Collection, g *Gateway) *Collection[T] {
	return &Collection[T]{
		name:   name,
		mirror: g.mirror,
		remote: g.remote,
		mu:     &g.mu,
		log:    g.log.WithField("collection", string(name)),
	}
}

// List: coba remote dulu; sukses -> refresh mirror (best-effort). Gagal atau
// tidak dikonfigurasi -> snapshot terakhir di mirror (bisa kosong).
func (c *Collection[T]) List(ctx context.Context) (Result[T], error) {
	var remoteErr error
	if c.remote != nil {
		var rows []T
		err := c.remote.List(ctx, c.name, &rows)
		if err == nil {
			if rows == nil {
				rows = []T{}
			}
			c.mu.Lock()
			if err := mirror.Save(ctx, c.mirror, c.name, rows); err != nil {
				c.log.WithError(err).Warn("refresh mirror gagal")
			}
			c.mu.Unlock()
			return Result[T]{Source: SourceRemote, Data: rows}, nil
		}
		remoteErr = err
		c.log.WithError(err).Warn("remote list gagal, pakai cache")
	}

	rows, err := mirror.Load[T](ctx, c.mirror, c.name)
	return Result[T]{Source: SourceCache, Data: rows, Err: remoteErr}, err
}

// Upsert: tulis mirror dulu tanpa syarat, lalu remote. Error remote hanya di-log.
func (c *Collection[T]) Upsert(ctx context.Context, item T) error {
	c.mu.Lock()
	rows, err := mirror.Load[T](ctx, c.mirror, c.name)
	if err == nil {
		if i := slices.IndexFunc(rows, func(r T) bool { return r.GetID() == item.GetID() }); i >= 0 {
			rows[i] = item
		} else {
			rows = append(rows, item)
		}
		err = mirror.Save(ctx, c.mirror, c.name, rows)
	}
	c.mu.Unlock()
	if err != nil {
		return err
	}

	if c.remote != nil {
		if err := c.remote.Upsert(ctx, c.name, item); err != nil {
			c.log.WithError(err).WithField("id", item.GetID()).Warn("remote upsert gagal")
		}
	}
	return nil
}

// Delete menghapus satu atau beberapa id dalam satu pass.
func (c *Collection[T]) Delete(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	c.mu.Lock()
	rows, err := mirror.Load[T](ctx, c.mirror, c.name)
	if err == nil {
		rows = slices.DeleteFunc(rows, func(r T) bool { return drop[r.GetID()] })
		err = mirror.Save(ctx, c.mirror, c.name, rows)
	}
	c.mu.Unlock()
	if err != nil {
		return err
	}

	if c.remote != nil {
		if err := c.remote.Delete(ctx, c.name, ids...); err != nil {
			c.log.WithError(err).WithField("ids", ids).Warn("remote delete gagal")
		}
	}
	return nil
}
