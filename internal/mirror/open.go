package mirror

import (
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/ariefcatur/smartpos/internal/redisx"
)

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// Open memilih driver mirror. rdb hanya dipakai oleh driver redis.
func Open(driver, path string, rdb *redis.Client) (Store, error) {
	switch strings.ToLower(driver) {
	case DriverMemory:
		return NewMemory(), nil
	case "", DriverSQLite:
		return OpenSQLite(path)
	case DriverRedis:
		if rdb == nil {
			return nil, fmt.Errorf("mirror: redis driver needs a client")
		}
		return NewRedis(rdb, redisx.MirrorPrefix), nil
	}
	return nil, fmt.Errorf("mirror: unknown driver %q", driver)
}
