package configwatcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"physics_practice_backend/internal/config"
)

func writeConfig(t *testing.T, path, strategy string) {
	t.Helper()
	content := []byte(fmtConfig(strategy))
	require.NoError(t, os.WriteFile(path, content, 0o644))
}

func fmtConfig(strategy string) string {
	return "server:\n  port: \"8080\"\nstorage:\n  type: minio\nparser:\n  strategy: " + strategy + "\n"
}

func TestWatchConfigReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, "line")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *config.Config, 1)
	done := make(chan error, 1)
	go func() {
		done <- WatchConfig(ctx, path, func(cfg *config.Config) {
			select {
			case reloaded <- cfg:
			default:
			}
		})
	}()

	time.Sleep(200 * time.Millisecond)
	writeConfig(t, path, "block")

	select {
	case cfg := <-reloaded:
		assert.Equal(t, "block", cfg.Parser.Strategy)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchConfigMissingDir(t *testing.T) {
	err := WatchConfig(context.Background(), filepath.Join(t.TempDir(), "missing", "config.yaml"), func(*config.Config) {})
	assert.Error(t, err)
}
