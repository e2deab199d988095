package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"sentiment-dashboard/internal/bootstrap"
	"sentiment-dashboard/internal/config"
	"sentiment-dashboard/internal/pkg/logger"
	"sentiment-dashboard/internal/server"
	"sentiment-dashboard/internal/tracer"

	"golang.org/x/sync/errgroup"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	// 2. Tracer
	shutdownTracer := tracer.InitTracer(cfg.Tracing, sysLogger)

	// 3. Load artifacts and dataset before serving anything
	res, err := bootstrap.LoadResources(cfg, sysLogger)
	if err != nil {
		sysLogger.Error("MAIN", "startup failed", map[string]interface{}{"error": err})
		log.Fatalf("startup failed: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(cfg, res, sysLogger)
	if err != nil {
		log.Fatalf("bootstrap failed: %v", err)
	}

	// 5. Run Server until interrupted
	srv := server.New(cfg, container)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Run)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		sysLogger.Info("MAIN", "shutting down", nil)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return shutdownTracer(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		sysLogger.Error("MAIN", "server stopped with error", map[string]interface{}{"error": err})
		log.Fatal(err)
	}
}
