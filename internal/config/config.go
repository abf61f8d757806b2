package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	GinMode         string
	FrontendURL     string
	AllowedOrigins  []string
	StaticDir       string
	WSReadTimeout   time.Duration
	WSPingInterval  time.Duration
	WSWriteTimeout  time.Duration
	ShutdownTimeout time.Duration
	IdleResetAfter  time.Duration // 0 keeps finished boards until someone resets
	CleanupInterval time.Duration
}

// LoadEnv reads .env from the working directory, then from its parent.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}
}

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:"+port)
	allowedOriginsStr := GetEnv("ALLOWED_ORIGINS", "")

	// Frontend URL + local dev server + CSV values
	allowedOrigins := []string{
		frontendURL,
		"http://localhost:5173",
	}
	if allowedOriginsStr != "" {
		for _, origin := range strings.Split(allowedOriginsStr, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	return &Config{
		Port:            port,
		GinMode:         GetEnv("GIN_MODE", "release"),
		FrontendURL:     frontendURL,
		AllowedOrigins:  allowedOrigins,
		StaticDir:       GetEnv("STATIC_DIR", "./static"),
		WSReadTimeout:   time.Duration(GetEnvAsInt("WS_READ_TIMEOUT_SECONDS", 60)) * time.Second,
		WSPingInterval:  time.Duration(GetEnvAsInt("WS_PING_INTERVAL_SECONDS", 30)) * time.Second,
		WSWriteTimeout:  time.Duration(GetEnvAsInt("WS_WRITE_TIMEOUT_SECONDS", 10)) * time.Second,
		ShutdownTimeout: time.Duration(GetEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 30)) * time.Second,
		IdleResetAfter:  time.Duration(GetEnvAsInt("IDLE_RESET_MINUTES", 0)) * time.Minute,
		CleanupInterval: time.Duration(GetEnvAsInt("CLEANUP_INTERVAL_SECONDS", 60)) * time.Second,
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
