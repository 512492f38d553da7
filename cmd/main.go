package main

import (
	"log"

	"github.com/arsenstet/quizzy-cards-bot/internal/bot"
	"github.com/arsenstet/quizzy-cards-bot/internal/client"
	"github.com/arsenstet/quizzy-cards-bot/internal/config"
	"github.com/arsenstet/quizzy-cards-bot/internal/repository"
	"github.com/arsenstet/quizzy-cards-bot/internal/service"
	"github.com/arsenstet/quizzy-cards-bot/internal/storage/db"
	"github.com/arsenstet/quizzy-cards-bot/internal/storage/session"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)

	database, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}

	if err := db.Migrate(database, cfg.App.MigrationsPath); err != nil {
		logger.Fatal("failed to apply migrations", zap.Error(err))
	}

	repos := repository.NewRepository(database)
	clients := client.InitClients()
	sessions := session.NewStore()

	services := service.InitServices(clients, repos, sessions, cfg.Quiz, logger)

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, cfg.App.Timeout, services, logger)
	if err != nil {
		logger.Fatal(err.Error())
		return
	}

	handler.Start()
}
