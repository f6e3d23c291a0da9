package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	filetokenstore "github.com/triplinker/triplinker-api/internal/adapters/file/tokenstore"
	"github.com/triplinker/triplinker-api/internal/adapters/httpapi"
	memidempotency "github.com/triplinker/triplinker-api/internal/adapters/memory/idempotency"
	memtokenstore "github.com/triplinker/triplinker-api/internal/adapters/memory/tokenstore"
	mockauth "github.com/triplinker/triplinker-api/internal/adapters/mock/authprovider"
	mockfeed "github.com/triplinker/triplinker-api/internal/adapters/mock/feedprovider"
	mockitinerary "github.com/triplinker/triplinker-api/internal/adapters/mock/itineraryprovider"
	"github.com/triplinker/triplinker-api/internal/adapters/mock/latency"
	mockplace "github.com/triplinker/triplinker-api/internal/adapters/mock/placeprovider"
	mockstats "github.com/triplinker/triplinker-api/internal/adapters/mock/statsprovider"
	"github.com/triplinker/triplinker-api/internal/platform/auth/sessiontoken"
	platformclock "github.com/triplinker/triplinker-api/internal/platform/clock"
	"github.com/triplinker/triplinker-api/internal/platform/config"
	tokenstoreport "github.com/triplinker/triplinker-api/internal/ports/out/tokenstore"
	"github.com/triplinker/triplinker-api/internal/store"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	log = log.Level(level)

	clk := platformclock.NewSystemClock()
	sim := latency.NewSimulator(cfg.MockLatencyScale)

	var tokens tokenstoreport.Store
	switch cfg.TokenStore {
	case "file":
		fs, err := filetokenstore.NewStore(cfg.TokenStorePath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.TokenStorePath).Msg("open token store")
		}
		tokens = fs
	default:
		tokens = memtokenstore.NewStore()
	}

	signer := sessiontoken.New([]byte(cfg.SessionSigningKey), cfg.SessionTTL, clk)

	st := store.New(store.Providers{
		Auth:        mockauth.NewProvider(sim, clk),
		Feed:        mockfeed.NewProvider(sim),
		Places:      mockplace.NewProvider(sim),
		Itineraries: mockitinerary.NewProvider(sim, clk),
		Stats:       mockstats.NewProvider(sim),
		Tokens:      tokens,
		Sessions:    signer,
		Logger:      log,
	})

	handler := httpapi.NewRouter(httpapi.NewServer(st, memidempotency.NewStore()), httpapi.RouterOptions{
		AuthMiddleware: httpapi.NewAuthMiddleware(signer),
		CORSOrigins:    cfg.CORSOrigins,
		Logger:         &log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("port", cfg.Port).Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
