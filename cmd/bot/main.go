package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/Pablo751/3mchatbot/internal/catalog"
	"github.com/Pablo751/3mchatbot/internal/chatbot"
	"github.com/Pablo751/3mchatbot/internal/config"
	"github.com/Pablo751/3mchatbot/internal/llm"
	"github.com/Pablo751/3mchatbot/internal/scheduler"
	"github.com/Pablo751/3mchatbot/internal/storage"
	"github.com/Pablo751/3mchatbot/internal/telegram"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("failed to load product catalog: %v", err)
	}
	log.Printf("catalog loaded: %d products from %s", cat.Count(), cfg.CatalogPath)

	factory := &llm.Factory{
		OpenAIAPIKey:     cfg.OpenAIAPIKey,
		OpenAIBaseURL:    cfg.OpenAIBaseURL,
		YandexOAuthToken: cfg.YandexOAuthToken,
		YandexFolderID:   cfg.YandexFolderID,
	}
	selector, err := factory.CreateClient(string(cfg.LLMProvider), cfg.SelectionModel, cfg.SelectionTemperature)
	if err != nil {
		log.Fatalf("failed to create selection client: %v", err)
	}
	generator, err := factory.CreateClient(string(cfg.LLMProvider), cfg.GenerationModel, cfg.GenerationTemperature)
	if err != nil {
		log.Fatalf("failed to create generation client: %v", err)
	}

	var rec storage.Recorder
	if cfg.LogFilePath != "" {
		fr, err := storage.NewFileRecorder(cfg.LogFilePath)
		if err != nil {
			log.Printf("failed to init file recorder: %v", err)
		} else {
			rec = fr
		}
	}

	sessions := chatbot.NewManager(cat, chatbot.NewGateway(selector, generator))

	bot, err := telegram.New(cfg.TelegramBotToken, sessions, rec, cfg.AdminUserID)
	if err != nil {
		log.Fatalf("failed to create telegram bot: %v", err)
	}

	sched := scheduler.New()
	sched.SetReportFunction(bot.SendDailyReport)
	if err := sched.Start(); err != nil {
		log.Printf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	bot.Start(context.Background())
}
