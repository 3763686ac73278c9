package commands

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tbourn/go-games-backend/internal/config"
	httpapi "github.com/tbourn/go-games-backend/internal/http"
	"github.com/tbourn/go-games-backend/internal/observability"
	"github.com/tbourn/go-games-backend/internal/repo"
	"github.com/tbourn/go-games-backend/internal/seed"
)

// ServeCmd runs the HTTP API until SIGINT or SIGTERM.
func ServeCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the reviews API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			shutdownOTel, err := observability.Setup(ctx, cfg.OTEL, version)
			if err != nil {
				return fmt.Errorf("otel: %w", err)
			}
			defer func() {
				sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
				defer cancel()
				if err := shutdownOTel(sctx); err != nil {
					log.Warn().Err(err).Msg("otel shutdown")
				}
			}()

			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(); err != nil {
					log.Warn().Err(err).Msg("store close")
				}
			}()

			if err := prepareStore(ctx, store, cfg.Seed); err != nil {
				return err
			}

			gin.SetMode(cfg.GinMode)
			r := gin.New()
			httpapi.RegisterRoutes(r, store, cfg)

			ln, err := net.Listen("tcp", ":"+cfg.Port)
			if err != nil {
				return fmt.Errorf("listen: %w", err)
			}
			log.Info().
				Str("addr", ln.Addr().String()).
				Str("base_path", cfg.APIBasePath).
				Str("db_driver", cfg.DB.Driver).
				Str("version", version).
				Msg("serving")

			return serve(ctx, newServer(r, cfg), ln, cfg.ShutdownTimeout)
		},
	}
}

// prepareStore migrates the schema and, when configured, reloads a dataset.
func prepareStore(ctx context.Context, store *repo.Store, sc config.SeedConfig) error {
	if !sc.OnStart {
		if err := repo.AutoMigrate(store.DB.WithContext(ctx)); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		return nil
	}
	ds, err := seed.ByName(sc.Dataset)
	if err != nil {
		return err
	}
	if err := seed.Run(ctx, store.DB, ds); err != nil {
		return fmt.Errorf("seed %s: %w", sc.Dataset, err)
	}
	return nil
}

func newServer(h http.Handler, cfg config.Config) *http.Server {
	return &http.Server{
		Handler:           h,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}
}

// serve runs srv on ln until ctx is done, then drains in-flight requests for
// at most grace. A listener failure is returned as is.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, grace time.Duration) error {
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("grace", grace).Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
