// Package app merakit dependensi bersama binary api dan stockwatch.
package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/ariefcatur/smartpos/internal/config"
	"github.com/ariefcatur/smartpos/internal/gateway"
	"github.com/ariefcatur/smartpos/internal/mirror"
	"github.com/ariefcatur/smartpos/internal/postgres"
	"github.com/ariefcatur/smartpos/internal/redisx"
	"github.com/ariefcatur/smartpos/internal/remote"
)

type Deps struct {
	Mirror mirror.Store
	Redis  *redis.Client
	Remote remote.Remote // nil = local-only

	closers []func()
}

// Open membuka mirror, redis, dan remote sesuai config.
// go-redis tidak dial sampai dipakai, jadi client selalu dibuat.
func Open(ctx context.Context, cfg config.Config, log *logrus.Entry) (*Deps, error) {
	d := &Deps{Redis: redisx.New(cfg.RedisAddr)}
	d.closers = append(d.closers, func() { _ = d.Redis.Close() })

	store, err := mirror.Open(cfg.MirrorDriver, cfg.MirrorPath, d.Redis)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("mirror: %w", err)
	}
	d.Mirror = store
	d.closers = append(d.closers, func() { _ = store.Close() })

	switch cfg.Remote() {
	case config.RemotePostgres:
		db, err := postgres.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("db connect: %w", err)
		}
		d.closers = append(d.closers, db.Close)
		if err := postgres.Migrate(ctx, db); err != nil {
			d.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		d.Remote = &remote.Postgres{DB: db}
	case config.RemoteSupabase:
		d.Remote = remote.NewSupabase(remote.SupabaseConfig{URL: cfg.SupabaseURL, AnonKey: cfg.SupabaseKey}, nil)
	default:
		log.Warn("remote backend tidak dikonfigurasi, jalan local-only")
	}
	if d.Remote != nil {
		log.WithField("remote", d.Remote.Name()).Info("remote backend aktif")
	}
	return d, nil
}

func (d *Deps) Gateway(opt gateway.Options) *gateway.Gateway {
	opt.Remote = d.Remote
	return gateway.New(d.Mirror, opt)
}

// Close menutup resource dalam urutan terbalik.
func (d *Deps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
	d.closers = nil
}
