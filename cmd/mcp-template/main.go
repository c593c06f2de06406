// The mcp-template command runs the template MCP server over stdio
// (default) or streamable HTTP (-http).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/usestring/mcp-template/internal/config"
	"github.com/usestring/mcp-template/internal/logging"
	srvmcp "github.com/usestring/mcp-template/internal/mcp"
	"github.com/usestring/mcp-template/internal/mcp/tools"
	"github.com/usestring/mcp-template/internal/metrics"
	"github.com/usestring/mcp-template/internal/session"
)

var httpMode = flag.Bool("http", false, "serve streamable HTTP (port from PORT, default 3000) instead of stdio")

func main() {
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Configuration and logging come from environment variables
	// (PORT, LOG_LEVEL, LOG_FILE, TASK_STEP_MS; see internal/config).
	cfg := config.Load()
	cleanup, err := logging.Setup(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up logging:", err)
		os.Exit(1)
	}
	defer cleanup()

	// One bonus gate per process, shared by every server instance.
	deps := &tools.Deps{Config: cfg, Bonus: &tools.BonusGate{}}

	if *httpMode {
		err = runHTTP(ctx, cfg, deps)
	} else {
		err = runStdio(ctx, deps)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// runStdio serves a single implicit session over the process's standard
// input/output, terminating when the pipe closes.
func runStdio(ctx context.Context, deps *tools.Deps) error {
	server, err := srvmcp.NewServer(deps, nil)
	if err != nil {
		return err
	}

	slog.Info("starting mcp-template server on stdio")
	return server.Run(ctx)
}

// runHTTP serves the session transport manager on /mcp, with the health
// and metrics side endpoints next to it.
func runHTTP(ctx context.Context, cfg *config.Config, deps *tools.Deps) error {
	m := metrics.New()
	manager := session.NewManager(srvmcp.Factory(deps, m))
	m.TrackOpenSessions(manager.Count)

	mux := http.NewServeMux()
	mux.Handle("/mcp", manager)
	mux.Handle("/healthz", session.HealthHandler(srvmcp.ServerName, srvmcp.ServerVersion, manager))
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: mux,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("starting mcp-template server on HTTP", "addr", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		manager.CloseAll()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
