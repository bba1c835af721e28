// Package mirror adalah local mirror store: snapshot JSON per koleksi,
// dipakai sebagai sumber offline dan cache best-effort dari remote.
package mirror

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ariefcatur/smartpos/internal/pos"
)

// Store: key/value murni, tanpa index, tanpa validasi skema.
type Store interface {
	Read(ctx context.Context, key string) (snapshot []byte, ok bool, err error)
	Write(ctx context.Context, key string, snapshot []byte) error
	Close() error
}

// Load membaca snapshot koleksi. Key yang belum ada -> slice kosong (bukan nil).
func Load[T any](ctx context.Context, s Store, c pos.Collection) ([]T, error) {
	b, ok, err := s.Read(ctx, c.MirrorKey())
	if err != nil {
		return []T{}, fmt.Errorf("mirror read %s: %w", c, err)
	}
	if !ok || len(b) == 0 {
		return []T{}, nil
	}
	out := []T{}
	if err := json.Unmarshal(b, &out); err != nil {
		return []T{}, fmt.Errorf("mirror decode %s: %w", c, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func Save[T any](ctx context.Context, s Store, c pos.Collection, rows []T) error {
	if rows == nil {
		rows = []T{}
	}
	b, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("mirror encode %s: %w", c, err)
	}
	if err := s.Write(ctx, c.MirrorKey(), b); err != nil {
		return fmt.Errorf("mirror write %s: %w", c, err)
	}
	return nil
}

// Seed menulis data default hanya untuk koleksi yang belum ada di mirror.
// Dipanggil eksplisit sekali saat startup.
func Seed(ctx context.Context, s Store, products []pos.Product, users []pos.User) (seeded []pos.Collection, err error) {
	seedOne := func(c pos.Collection, write func() error) error {
		_, ok, err := s.Read(ctx, c.MirrorKey())
		if err != nil {
			return fmt.Errorf("seed %s: %w", c, err)
		}
		if ok {
			return nil
		}
		if err := write(); err != nil {
			return err
		}
		seeded = append(seeded, c)
		return nil
	}

	if err := seedOne(pos.CollectionProducts, func() error {
		return Save(ctx, s, pos.CollectionProducts, products)
	}); err != nil {
		return seeded, err
	}
	if err := seedOne(pos.CollectionUsers, func() error {
		return Save(ctx, s, pos.CollectionUsers, users)
	}); err != nil {
		return seeded, err
	}
	return seeded, nil
}
