package main

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the CLI configuration loaded from environment variables.
type Config struct {
	// Provider selects the image-generation backend: google, openai.
	Provider string
	// Enhancer selects the prompt-enhancement backend: google, openai,
	// anthropic. Defaults to Provider.
	Enhancer string

	// API keys
	GoogleKey    string
	OpenAIKey    string
	AnthropicKey string

	// HistoryPath is the gallery persistence file.
	HistoryPath string
	// OutputDir is where decoded images are written.
	OutputDir string
	// Count is the default number of variations per generation.
	Count int
}

// LoadConfig loads configuration from environment variables.
// It loads a .env file if present (silent fail if not found).
func LoadConfig() *Config {
	godotenv.Load() // Load .env file if present

	cfg := &Config{
		Provider:     getEnvOrDefault("IMAGINE_PROVIDER", "google"),
		Enhancer:     os.Getenv("IMAGINE_ENHANCER"),
		GoogleKey:    os.Getenv("GOOGLE_API_KEY"),
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
		HistoryPath:  getEnvOrDefault("IMAGINE_HISTORY", defaultHistoryPath()),
		OutputDir:    getEnvOrDefault("IMAGINE_OUTPUT", "."),
		Count:        getEnvIntOrDefault("IMAGINE_COUNT", 4),
	}
	if cfg.Enhancer == "" {
		cfg.Enhancer = cfg.Provider
	}
	return cfg
}

// defaultHistoryPath places the gallery record under the user config
// directory, falling back to the working directory.
func defaultHistoryPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "imagine-history.json"
	}
	return filepath.Join(dir, "imagine", "history.json")
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
