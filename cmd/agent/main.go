package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hamed0406/endpointprobe/internal/config"
	"github.com/hamed0406/endpointprobe/internal/domain"
	"github.com/hamed0406/endpointprobe/internal/httpapi"
	"github.com/hamed0406/endpointprobe/internal/logging"
	"github.com/hamed0406/endpointprobe/internal/probe"
	"github.com/hamed0406/endpointprobe/internal/report"
	"github.com/hamed0406/endpointprobe/internal/scheduler"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher, err := config.NewWatcher(cfg.InstancesFile, logger)
	if err != nil {
		log.Fatal(err)
	}
	defaults := watcher.Defaults()
	logger.Info("instances_loaded",
		zap.String("path", cfg.InstancesFile),
		zap.Int("instances", len(watcher.Endpoints())),
		zap.Float64("default_timeout", defaults.DefaultTimeout),
		zap.Bool("tls_verify", defaults.TLSVerify),
	)
	go func() {
		if err := watcher.Run(ctx); err != nil {
			logger.Warn("instances_watch_stopped", zap.Error(err))
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	prom, err := report.NewPrometheus(reg)
	if err != nil {
		log.Fatal(err)
	}
	recorder := report.NewRecorder(cfg.EventBuffer)
	sink := report.Multi{recorder, prom, report.NewLog(logger)}

	// init_config is applied per instance by the watcher, so the probe
	// itself only carries the built-in defaults.
	p := probe.New(logger, sink, domain.Defaults{DefaultTimeout: domain.DefaultTimeout})
	runner := scheduler.NewRunner(logger, watcher, p, cfg.CheckInterval, cfg.MaxConcurrentChecks)
	go runner.Run(ctx)

	api := httpapi.NewServer(logger, recorder, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.Router(cfg.APIKeys),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("api_listen", zap.String("addr", cfg.Addr), zap.String("instances", cfg.InstancesFile))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
