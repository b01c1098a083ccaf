package backup

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbook/internal/config"
	"salonbook/internal/kv"
	"salonbook/internal/store"
)

func newTestService(t *testing.T) (*Service, *miniredis.Miniredis, string) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Backup.Enabled = true
	cfg.Backup.Path = dir

	logger := zerolog.Nop()
	return NewService(kv.NewRedisStore(client), cfg, &logger), mr, dir
}

func TestSnapshot_WritesBlob(t *testing.T) {
	svc, mr, dir := newTestService(t)
	require.NoError(t, mr.Set(store.BookingsKey, `[{"id":"1"}]`))

	require.NoError(t, svc.Snapshot(context.Background()))

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(filepath.Join(dir, files[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(data))
}

func TestSnapshot_EmptyStore(t *testing.T) {
	svc, _, dir := newTestService(t)

	require.NoError(t, svc.Snapshot(context.Background()))

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(filepath.Join(dir, files[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
