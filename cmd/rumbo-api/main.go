// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"rumbo/internal/ai"
	"rumbo/internal/config"
	httptransport "rumbo/internal/http"
	"rumbo/internal/infra"
	"rumbo/internal/modules/favorite"
	"rumbo/internal/modules/plan"
	"rumbo/internal/modules/quota"
	"rumbo/internal/modules/recent"
	"rumbo/internal/notify"
	"rumbo/internal/places"
	"rumbo/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := infra.NewLogger(cfg.IsProduction())
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.FirebaseProject == "" {
		logger.Fatal("FIREBASE_PROJECT_ID is required")
	}
	verifier, err := infra.NewFirebaseVerifier(ctx, cfg.FirebaseProject, cfg.FirebaseCreds)
	if err != nil {
		logger.Fatal("firebase init", zap.Error(err))
	}

	dbPool, err := infra.NewDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("db init", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.RedisAddr)

	googleProvider, err := places.NewGoogleProvider(cfg.GoogleMapsKey)
	if err != nil {
		logger.Fatal("maps init", zap.Error(err))
	}
	cacheTTL := time.Duration(cfg.Discovery.CacheTTLSeconds) * time.Second
	provider := places.NewCachedProvider(googleProvider, redisClient, cacheTTL, logger)

	recommender := service.NewRecommender(provider, cfg.Discovery.MaxCandidates, logger)

	var generator ai.ItineraryGenerator
	if cfg.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiGenerator(ctx, cfg.GeminiAPIKey)
		if err != nil {
			logger.Warn("gemini init failed, plans will use placeholder content", zap.Error(err))
		} else {
			defer gemini.Close()
			generator = gemini
		}
	}

	var notifier notify.Notifier
	fcm, err := notify.NewFCMNotifier(ctx, cfg.FirebaseProject, cfg.FirebaseCreds, logger)
	if err != nil {
		logger.Warn("fcm init failed, plan-ready pushes disabled", zap.Error(err))
	} else {
		notifier = fcm
	}

	quotaSvc := quota.NewService(quota.NewStore(dbPool))
	planSvc := plan.NewService(plan.NewStore(dbPool), quotaSvc, generator, notifier, logger)
	recentSvc := recent.NewService(recent.NewStore(dbPool))
	favoriteSvc := favorite.NewService(favorite.NewStore(dbPool))

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Recommender:     recommender,
		Plans:           planSvc,
		Recents:         recentSvc,
		Favorites:       favoriteSvc,
		Verifier:        verifier,
		Log:             logger,
		DefaultRadiusKm: cfg.Discovery.DefaultRadiusKm,
		DefaultLimit:    cfg.Discovery.MaxCandidates,
	})

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server", zap.Error(err))
	}
}
