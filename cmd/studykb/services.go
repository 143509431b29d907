package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/studykb/internal/config"
	"github.com/sandevgo/studykb/internal/providers/llm"
	"github.com/sandevgo/studykb/internal/service/answer"
	"github.com/sandevgo/studykb/internal/service/auth"
	"github.com/sandevgo/studykb/internal/storage/sqlite"
	"github.com/sandevgo/studykb/internal/transport/httpapi"
	"github.com/sandevgo/studykb/internal/transport/telegram"
	"github.com/sandevgo/studykb/pkg/log"
	"github.com/sandevgo/studykb/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	err := initEnv(ctx, config.GetRuntimePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	serverCfg := config.NewServerConfig(ctx)
	providersCfg := config.NewProvidersConfig(ctx)
	genCfg := config.NewGenerationConfig(ctx)

	// 2. Storage
	db, err := initStorage(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))

	qaRepo := sqlite.NewQARepo(db)
	replyRepo := sqlite.NewReplyRepo(db)
	userRepo := sqlite.NewUserRepo(db)
	sessionRepo := sqlite.NewSessionRepo(db)

	// 3. Answer pipeline
	providers := llm.NewChain(ctx, providersCfg)
	answerSvc := answer.NewService(
		answer.NewRetriever(qaRepo),
		answer.NewGenerator(providers, genCfg),
		answer.NewFormatter(genCfg.DefaultCodeLang),
	)

	// 4. Auth
	authSvc := auth.NewService(userRepo, sessionRepo, serverCfg.SessionTTL)
	services = append(services, auth.NewJanitor(authSvc, serverCfg.SessionCleanup))

	// 5. Transports
	if appCfg.IsHTTPSelected() {
		api := httpapi.NewServer(ctx, serverCfg, authSvc, answerSvc, qaRepo, replyRepo, userRepo, sessionRepo)
		services = append(services, api)
	}

	if appCfg.IsTelegramSelected() {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, answerSvc)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize telegram bot")
		}
		services = append(services, bot)
	}

	return services
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (*sql.DB, error) {
	return sqlite.NewDB(ctx, cfg.GetDatabasePath())
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
