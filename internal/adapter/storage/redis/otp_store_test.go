package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPStore_SetAndGetDel(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewOTPStore(client)
	ctx := context.Background()

	err := store.Set(ctx, "+84901234567", "482915", 5*time.Minute)
	require.NoError(t, err)

	code, err := store.GetDel(ctx, "+84901234567")
	require.NoError(t, err)
	assert.Equal(t, "482915", code)
}

func TestOTPStore_GetDel_SingleUse(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewOTPStore(client)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "+84901234567", "482915", 5*time.Minute))

	_, err := store.GetDel(ctx, "+84901234567")
	require.NoError(t, err)

	// Second read must come back empty
	code, err := store.GetDel(ctx, "+84901234567")
	require.NoError(t, err)
	assert.Empty(t, code, "consumed code should not be readable again")
}

func TestOTPStore_GetDel_Missing(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewOTPStore(client)

	code, err := store.GetDel(context.Background(), "+84000000000")
	require.NoError(t, err)
	assert.Empty(t, code)
}

func TestOTPStore_Expiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewOTPStore(client)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "+84901234567", "111111", 1*time.Minute))

	s.FastForward(2 * time.Minute)

	code, err := store.GetDel(ctx, "+84901234567")
	require.NoError(t, err)
	assert.Empty(t, code, "expired code should not be readable")
}

func TestOTPStore_Set_ReplacesPrevious(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewOTPStore(client)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "+84901234567", "111111", 5*time.Minute))
	require.NoError(t, store.Set(ctx, "+84901234567", "222222", 5*time.Minute))

	code, err := store.GetDel(ctx, "+84901234567")
	require.NoError(t, err)
	assert.Equal(t, "222222", code)
}
