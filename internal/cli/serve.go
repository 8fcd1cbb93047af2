package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/calheat/calheat/internal/server"
	"github.com/calheat/calheat/pkg/cache"
	"github.com/calheat/calheat/pkg/pipeline"
	"github.com/calheat/calheat/pkg/series"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string        // listen address
	cacheDir  string        // file cache directory ("" uses the default)
	redisAddr string        // redis address; overrides the file cache
	noCache   bool          // disable artifact caching entirely
	ttl       time.Duration // cache entry lifetime
	themePath string        // TOML theme file
	pngScale  float64       // raster scale factor for PNG output
	dateCol   string
	valueCol  string
	labelCol  string
}

// newServeCmd creates the serve command, which loads a dataset once and
// exposes its rendered years over HTTP until interrupted.
func newServeCmd() *cobra.Command {
	opts := serveOpts{
		addr:     ":8080",
		ttl:      24 * time.Hour,
		pngScale: pipeline.DefaultPNGScale,
	}

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve rendered heatmaps over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "artifact cache directory (default: user cache dir)")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "redis address (host:port); replaces the file cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable artifact caching")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", opts.ttl, "cache entry lifetime")
	cmd.Flags().StringVar(&opts.themePath, "theme", "", "TOML theme file")
	cmd.Flags().Float64Var(&opts.pngScale, "png-scale", opts.pngScale, "raster scale factor for PNG output")
	cmd.Flags().StringVar(&opts.dateCol, "date-col", "", "CSV date column name (default \"date\")")
	cmd.Flags().StringVar(&opts.valueCol, "value-col", "", "CSV value column name (default \"value\")")
	cmd.Flags().StringVar(&opts.labelCol, "label-col", "", "CSV label column name (default \"label\")")

	return cmd
}

// buildCache selects the artifact cache backend from the serve flags.
func buildCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redisAddr != "" {
		c, err := cache.NewRedisCache(ctx, opts.redisAddr)
		if err != nil {
			return nil, fmt.Errorf("connect redis %s: %w", opts.redisAddr, err)
		}
		return c, nil
	}
	dir := opts.cacheDir
	if dir == "" {
		var err error
		dir, err = defaultCacheDir()
		if err != nil {
			return nil, err
		}
	}
	return cache.NewFileCache(dir)
}

// runServe loads the dataset, wires the cache and metrics, and runs the
// HTTP server until ctx is cancelled.
func runServe(ctx context.Context, input string, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	t, err := loadTheme(&renderOpts{themePath: opts.themePath})
	if err != nil {
		return err
	}

	c, err := buildCache(ctx, opts)
	if err != nil {
		return err
	}
	defer c.Close()

	runner := pipeline.NewRunner(c, logger)
	s, datasetHash, err := runner.Load(input, series.Columns{Date: opts.dateCol, Value: opts.valueCol, Label: opts.labelCol})
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Addr:        opts.addr,
		Runner:      runner,
		Series:      s,
		DatasetHash: datasetHash,
		Options: pipeline.Options{
			Theme:    t,
			PNGScale: opts.pngScale,
			TTL:      opts.ttl,
		},
		Logger:  logger,
		Metrics: server.NewMetrics(),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	logger.Infof("Serving %d year(s) on %s", len(s.Years()), opts.addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
