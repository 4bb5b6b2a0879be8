package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/talenthive/hr-assistant-go/internal/config"
	appHTTP "github.com/talenthive/hr-assistant-go/internal/handler/http"
	"github.com/talenthive/hr-assistant-go/internal/pkg/cache"
	"github.com/talenthive/hr-assistant-go/internal/pkg/hrapi"
	"github.com/talenthive/hr-assistant-go/internal/pkg/jwt"
	"github.com/talenthive/hr-assistant-go/internal/search"
	assistantService "github.com/talenthive/hr-assistant-go/internal/service/assistant"
	queryService "github.com/talenthive/hr-assistant-go/internal/service/query"
	reportService "github.com/talenthive/hr-assistant-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.App.LogLevel),
	})).With(slog.String("app", "hr-assistant"))

	ctx := context.Background()

	var store cache.Store
	if cfg.Cache.RedisAddr != "" {
		redisStore, err := cache.NewRedisStore(ctx, cfg.Cache.RedisAddr)
		if err != nil {
			logger.Error("failed to connect to redis", slog.Any("error", err))
			return
		}
		store = redisStore
	} else {
		store = cache.NewMemoryStore()
	}

	hrCache := cache.New(store, cache.TTLConfig{
		Token:            cfg.Cache.TokenTTL,
		Profile:          cfg.Cache.ProfileTTL,
		TeamRoster:       cfg.Cache.TeamTTL,
		AttendanceWindow: cfg.Cache.AttendanceTTL,
	}, logger)

	hrClient := hrapi.NewClient(hrapi.Config{
		BaseURL:         cfg.HRAPI.BaseURL,
		Timeout:         cfg.HRAPI.Timeout,
		JWTSecret:       cfg.HRAPI.JWTSecret,
		DefaultPassword: cfg.HRAPI.DefaultPassword,
		MACAddress:      cfg.HRAPI.MACAddress,
	})

	// The directory mirror is optional: without it the assistant still
	// resolves employees by explicit id.
	var directory *search.Service
	if cfg.Search.MongoURI != "" {
		directory, err = search.NewService(ctx, search.Config{
			URI:        cfg.Search.MongoURI,
			Database:   cfg.Search.Database,
			Collection: cfg.Search.Collection,
		}, logger)
		if err != nil {
			logger.Warn("directory search disabled", slog.Any("error", err))
			directory = nil
		} else {
			defer directory.Close(ctx)
		}
	}

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	parser := queryService.NewService()
	reports := reportService.NewService()
	assistant := assistantService.NewAssistantService(hrClient, hrCache, directory, parser, reports, logger, nil)

	authHandler := appHTTP.NewAuthHandler(hrClient, jwtSvc)
	assistantHandler := appHTTP.NewAssistantHandler(assistant)
	attendanceHandler := appHTTP.NewAttendanceHandler(assistant)
	reportHandler := appHTTP.NewReportHandler(assistant, reports)
	cacheHandler := appHTTP.NewCacheHandler(assistant)

	router := appHTTP.NewRouter(jwtSvc, authHandler, assistantHandler, attendanceHandler, reportHandler, cacheHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("starting server", slog.String("addr", addr), slog.String("env", cfg.App.Env))
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
