package mirror

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariefcatur/smartpos/internal/pos"
)

func drivers(t *testing.T) map[string]Store {
	t.Helper()

	sq, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = sq.Close() })

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": sq,
		"redis":  NewRedis(rdb, "test:"),
	}
}

func TestStoreContract(t *testing.T) {
	ctx := context.Background()
	for name, s := range drivers(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.Read(ctx, "pos_products")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Write(ctx, "pos_products", []byte(`[{"id":"1"}]`)))
			b, ok, err := s.Read(ctx, "pos_products")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.JSONEq(t, `[{"id":"1"}]`, string(b))

			require.NoError(t, s.Write(ctx, "pos_products", []byte(`[]`)))
			b, ok, err = s.Read(ctx, "pos_products")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "[]", string(b))
		})
	}
}

func TestLoadSave(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	empty, err := Load[pos.Product](ctx, s, pos.CollectionProducts)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	rows := []pos.Product{{ID: "1", Name: "Coffee", Stock: -2}}
	require.NoError(t, Save(ctx, s, pos.CollectionProducts, rows))

	got, err := Load[pos.Product](ctx, s, pos.CollectionProducts)
	require.NoError(t, err)
	assert.Equal(t, rows, got)

	require.NoError(t, Save[pos.Order](ctx, s, pos.CollectionOrders, nil))
	b, ok, err := s.Read(ctx, "pos_orders")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", string(b))
}

func TestLoadCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	require.NoError(t, s.Write(ctx, "pos_users", []byte("{not json")))

	got, err := Load[pos.User](ctx, s, pos.CollectionUsers)
	assert.Error(t, err)
	assert.Empty(t, got)
}

func TestSeedOnlyWhenAbsent(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	require.NoError(t, Save(ctx, s, pos.CollectionUsers, []pos.User{{ID: "only"}}))

	seeded, err := Seed(ctx, s, pos.DefaultProducts(), pos.DefaultUsers())
	require.NoError(t, err)
	assert.Equal(t, []pos.Collection{pos.CollectionProducts}, seeded)

	users, err := Load[pos.User](ctx, s, pos.CollectionUsers)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	products, err := Load[pos.Product](ctx, s, pos.CollectionProducts)
	require.NoError(t, err)
	assert.Len(t, products, 12)

	seeded, err = Seed(ctx, s, pos.DefaultProducts(), pos.DefaultUsers())
	require.NoError(t, err)
	assert.Empty(t, seeded)
}

func TestOpen(t *testing.T) {
	s, err := Open("memory", "", nil)
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	_, err = Open("redis", "", nil)
	assert.Error(t, err)

	_, err = Open("etcd", "", nil)
	assert.Error(t, err)
}
