package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tamtam-chat/tokenizer/internal/config"
	"github.com/tamtam-chat/tokenizer/internal/httpapi"
	"github.com/tamtam-chat/tokenizer/internal/telemetry"

	tokenizer "github.com/tamtam-chat/tokenizer"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tokenizer HTTP gateway",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger, err := telemetry.New(telemetry.Config{
			Development: cfg.Log.Development,
			Level:       cfg.Log.Level,
		})
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		defer logger.Sync()

		var counter httpapi.Counter
		rc, err := httpapi.NewRedisCounter(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Warn("stats counter unavailable, continuing without it", zap.Error(err))
		} else {
			counter = rc
		}

		opts := tokenizer.DefaultOptions()
		opts.StickyLink = cfg.Tokenize.StickyLink

		router := httpapi.NewRouter(httpapi.Deps{
			Options:   opts,
			Counter:   counter,
			Logger:    logger,
			JWTSecret: cfg.Auth.SecretKey,
		})

		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		logger.Info("starting tokenizer gateway", zap.String("addr", addr))
		return http.ListenAndServe(addr, router)
	},
}
