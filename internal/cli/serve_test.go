package cli

import (
	"context"
	"testing"

	"github.com/calheat/calheat/pkg/cache"
)

func TestBuildCacheDisabled(t *testing.T) {
	c, err := buildCache(context.Background(), &serveOpts{noCache: true})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(*cache.NullCache); !ok {
		t.Errorf("cache = %T, want *cache.NullCache", c)
	}
}

func TestBuildCacheFile(t *testing.T) {
	dir := t.TempDir()
	c, err := buildCache(context.Background(), &serveOpts{cacheDir: dir})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if _, ok := c.(*cache.FileCache); !ok {
		t.Errorf("cache = %T, want *cache.FileCache", c)
	}

	if err := c.Set(context.Background(), "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := c.Get(context.Background(), "k"); !ok {
		t.Error("file cache did not round-trip")
	}
}
