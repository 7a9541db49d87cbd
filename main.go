package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/config"
	"hotel-frontdesk/controllers"
	"hotel-frontdesk/lifecycle"
	"hotel-frontdesk/routes"
	"hotel-frontdesk/services"
)

func main() {
	cfg, envLoaded := config.Load()
	log, logCloser := config.NewLogger(cfg)
	defer logCloser.Close()

	if !envLoaded {
		log.Warn().Msg(".env not found or couldn't load it; continuing with environment variables")
	}
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	policy, err := lifecycle.PolicyByName(cfg.StatusPolicy)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid STATUS_POLICY")
	}

	rooms, err := config.OpenRegistry(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("room store connect failed")
	}
	defer rooms.Close()
	log.Info().Str("driver", cfg.StoreDriver).Str("policy", policy.Name()).Msg("room store ready")

	desk := services.NewFrontDeskService(rooms, lifecycle.NewEngine(lifecycle.WithPolicy(policy)), log, cfg.DefaultRoomPrice)

	if cfg.SeedRooms {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		_, err := desk.Seed(ctx, services.DefaultInventory())
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("seeding rooms failed")
		}
	}

	var completer services.Completer
	if cfg.GeminiAPIKey != "" {
		completer = services.NewGeminiClient(cfg.GeminiEndpoint, cfg.GeminiModel, cfg.GeminiAPIKey, cfg.AdvisoryTimeout, log)
		log.Info().Str("model", cfg.GeminiModel).Msg("AI assistant enabled")
	} else {
		log.Warn().Msg("API_KEY not set; AI assistant will reply with a configuration hint")
	}

	checks := map[string]controllers.Pinger{"rooms": rooms}
	var cache services.AnswerCache
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisCache, err := services.NewRedisAnswerCache(ctx, cfg.RedisURL, cfg.AdvisoryCacheTTL)
		cancel()
		if err != nil {
			log.Warn().Err(err).Msg("advisory cache unavailable; answering without cache")
		} else {
			defer redisCache.Close()
			cache = redisCache
			checks["cache"] = redisCache
		}
	}
	advisor := services.NewAdvisoryService(desk, completer, cache, cfg.HotelName, cfg.AdvisoryTimeout, log)

	router, err := routes.SetupRouter(routes.Handlers{
		Rooms:     controllers.NewRoomController(desk, log),
		Assistant: controllers.NewAssistantController(advisor, log),
		Health:    controllers.NewHealthController(checks),
	}, cfg.CORSOrigins, log)
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		// assistant calls may take up to AdvisoryTimeout
		WriteTimeout: cfg.AdvisoryTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("ListenAndServe failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return
	}
	log.Info().Msg("server stopped gracefully")
}
