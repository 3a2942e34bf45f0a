package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/carelink-lab/carelink/pkg/cli/config"
	controller "github.com/carelink-lab/carelink/pkg/controller/http"
	"github.com/carelink-lab/carelink/pkg/domain/model"
	"github.com/carelink-lab/carelink/pkg/metrics"
	"github.com/carelink-lab/carelink/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		portalCfg    config.Portal
		backendCfg   config.Backend
		fixtureCfg   config.Fixture
		firestoreCfg config.Firestore
	)

	flags := slices.Concat(
		serverCfg.Flags(),
		portalCfg.Flags(),
		backendCfg.Flags(),
		fixtureCfg.Flags(),
		firestoreCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting carelink server",
				slog.Any("server", serverCfg),
				slog.Any("portal", portalCfg),
				slog.Any("backend", backendCfg),
				slog.Any("firestore", firestoreCfg),
			)

			// Create repository using config
			repo, err := firestoreCfg.Configure(ctx, &fixtureCfg)
			if err != nil {
				return err
			}
			defer repo.Close()

			// One menu drives the sidebar, shell events and page routes
			navItems := model.PatientNavItems()
			portalUC, err := portalCfg.Configure(repo, navItems)
			if err != nil {
				return err
			}

			m := metrics.New(metrics.WithRuntimeCollectors())
			proxy, err := backendCfg.Configure(m)
			if err != nil {
				return goerr.Wrap(err, "failed to configure backend proxy")
			}

			opts := []controller.Option{
				controller.WithMetrics(m),
				controller.WithNavItems(navItems),
			}
			if proxy != nil {
				opts = append(opts, controller.WithProxy(proxy))
			}

			useCases := controller.NewUseCases(
				portalUC,
				usecase.NewShell(navItems),
				usecase.NewOnboarding(),
			)

			// Create HTTP server
			server, err := controller.NewServer(ctx, serverCfg.Addr, useCases, opts...)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-errCh:
				return goerr.Wrap(err, "HTTP server error", goerr.V("addr", serverCfg.Addr))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
