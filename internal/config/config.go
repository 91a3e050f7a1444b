package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderYandex LLMProvider = "yandex"
)

type Config struct {
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN,required"`
	AdminUserID      int64  `env:"ADMIN_USER"`

	// LLM settings
	LLMProvider      LLMProvider `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey     string      `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string      `env:"OPENAI_BASE_URL"`
	YandexOAuthToken string      `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string      `env:"YANDEX_FOLDER_ID"`

	// The pipeline makes two calls per query with different needs: a cheap
	// near-deterministic model to pick a catalog row, a stronger one to
	// write the answer.
	SelectionModel        string  `env:"SELECTION_MODEL" envDefault:"gpt-3.5-turbo"`
	SelectionTemperature  float32 `env:"SELECTION_TEMPERATURE" envDefault:"0.1"`
	GenerationModel       string  `env:"GENERATION_MODEL" envDefault:"gpt-4o-mini"`
	GenerationTemperature float32 `env:"GENERATION_TEMPERATURE" envDefault:"0.7"`

	// Data
	CatalogPath string `env:"CATALOG_PATH" envDefault:"data/productos.csv"`

	// Storage
	LogFilePath string `env:"LOG_FILE_PATH" envDefault:"logs/interactions.jsonl"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
