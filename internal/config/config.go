package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds the complete application configuration. Flags override
// environment values; the environment overrides these defaults.
type AppConfig struct {
	// DataPath points at the JSON issue export to analyze.
	DataPath string
	LogDir   string
	// TopN bounds ranked output when no flag is given.
	TopN int
	// Window is the default named time window.
	Window              string
	EnableMermaidCharts bool
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory (highest priority for MCP servers)
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	dataPath := os.Getenv("ISSUES_DATA_PATH")
	if dataPath == "" {
		dataPath = filepath.Join(".", "issues.json")
	}

	logDir := os.Getenv("LOGS_FOLDER")
	if logDir == "" {
		base := exeDir
		if base == "" {
			base = "."
		}
		logDir = filepath.Join(base, "logs")
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", logDir).Msg("Failed to create log directory")
	}

	topN, err := strconv.Atoi(getEnv("TOP_N", "10"))
	if err != nil || topN <= 0 {
		topN = 10
	}

	cfg := &AppConfig{
		DataPath:            dataPath,
		LogDir:              logDir,
		TopN:                topN,
		Window:              getEnv("DEFAULT_WINDOW", "all-time"),
		EnableMermaidCharts: getEnvBool("ENABLE_MERMAID_CHARTS", true),
	}

	return cfg, nil
}

// getEnv treats a variable set to the empty string as unset, so an empty
// override can never produce an unusable configuration value.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
