package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string

	// HTTP server
	Port string

	// Where uploaded CV documents are stored
	UploadsDir string

	// Default shortlist filtering mode; requests may override per call
	StrictFiltering bool

	// LLM Configuration
	LLMProvider string // "openai", "ollama", "groq", or "none"
	LLMModel    string // "gpt-4o-mini", "gpt-4o", "llama-3.3-70b-versatile"
	LLMAPIKey   string // OpenAI or Groq API key
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
		log.Println("Attempting to load from parent directory...")
		err = godotenv.Load("../../.env")
		if err != nil {
			log.Println("Warning: Could not load .env file, using environment variables")
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "uploads"
	}

	strict := false
	if v := os.Getenv("STRICT_FILTERING"); v != "" {
		strict, err = strconv.ParseBool(v)
		if err != nil {
			log.Printf("Warning: invalid STRICT_FILTERING value %q, defaulting to false", v)
			strict = false
		}
	}

	// LLM configuration
	llmProvider := os.Getenv("LLM_PROVIDER")
	if llmProvider == "" {
		llmProvider = "none" // organization scoring falls back to rules
	}

	llmModel := os.Getenv("LLM_MODEL")
	if llmModel == "" {
		llmModel = "gpt-4o-mini" // default model
	}

	// Get API key based on provider
	llmAPIKey := ""
	if llmProvider == "openai" {
		llmAPIKey = os.Getenv("OPENAI_API_KEY")
	} else if llmProvider == "groq" {
		llmAPIKey = os.Getenv("GROQ_API_KEY")
	}

	return &Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		Port:            port,
		UploadsDir:      uploadsDir,
		StrictFiltering: strict,
		LLMProvider:     llmProvider,
		LLMModel:        llmModel,
		LLMAPIKey:       llmAPIKey,
	}
}
