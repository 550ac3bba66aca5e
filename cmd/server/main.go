package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frontier/backend/internal/config"
	"github.com/frontier/backend/internal/handler"
	"github.com/frontier/backend/internal/logging"
	"github.com/frontier/backend/internal/repository"
	"github.com/frontier/backend/internal/service"
	"github.com/spf13/cobra"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:          "server",
		Short:        "Frontier Web Development API server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			logging.Setup(cfg.LogLevel, cfg.LogFormat)

			ln, err := net.Listen("tcp", cfg.HTTPAddr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", cfg.HTTPAddr, err)
			}
			return run(cmd.Context(), cfg, ln)
		},
	}

	cmd.Flags().StringP("config", "c", "", "config file (yaml, json or toml)")
	cmd.Flags().StringP("addr", "a", ":8001", "address to bind the HTTP server")
	cmd.Flags().String("driver", repository.DriverPostgres, "store driver: postgres or sqlite")
	_ = v.BindPFlag(config.KeyHTTPAddr, cmd.Flags().Lookup("addr"))
	_ = v.BindPFlag(config.KeyStoreDriver, cmd.Flags().Lookup("driver"))

	return cmd
}

// run opens the store, serves HTTP on ln until ctx is cancelled, then drains
// in-flight requests and closes the store.
func run(ctx context.Context, cfg *config.Config, ln net.Listener) error {
	store, err := repository.OpenStore(ctx, cfg.StoreOptions())
	if err != nil {
		ln.Close()
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	router := handler.NewRouter(handler.Deps{
		DB:           store.DB,
		Contacts:     service.NewContactService(store.Contacts),
		StatusChecks: service.NewStatusCheckService(store.StatusChecks),
		Analytics:    service.NewAnalyticsService(store.Contacts),
		Catalog:      service.NewCatalogService(),
	})

	server := &http.Server{
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", ln.Addr().String())
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	slog.Info("Frontier Web Development API started successfully", "driver", store.Driver())

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	return nil
}
