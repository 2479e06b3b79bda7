package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/scythe504/partydeck-backend/internal/config"
	"github.com/scythe504/partydeck-backend/internal/dictionary"
	"github.com/scythe504/partydeck-backend/internal/server"
	"github.com/scythe504/partydeck-backend/internal/store"
)

const cleanupInterval = 5 * time.Minute

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg := config.Load()

	var st store.Store
	if cfg.DatabaseURL != "" {
		pg, err := store.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("postgres store init failed")
		}
		st = pg
		log.Info().Msg("using postgres store")
	} else {
		st = store.NewMemory()
		log.Info().Msg("DATABASE_URL not set, using in-memory store")
	}
	defer st.Close()

	go reapExpired(ctx, st)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.New(st, dictionary.New(cfg.DictionaryAPIURL), cfg.CORSOrigin).RegisterRoutes(),
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("partydeck server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server exited gracefully")
}

// reapExpired deletes finished and abandoned rooms on a fixed cadence.
func reapExpired(ctx context.Context, st store.Store) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := st.Cleanup(ctx, time.Now())
			if err != nil {
				log.Warn().Err(err).Msg("room cleanup failed")
				continue
			}
			if n > 0 {
				log.Info().Int("removed", n).Msg("expired rooms cleaned up")
			}
		}
	}
}
