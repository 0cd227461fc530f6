package config

import (
	"os"
	"strings"
)

type Config struct {
	MongoURI       string
	Port           string
	UploadDir      string
	AllowedOrigins []string // CORS origins; defaults to * (public mobile client)
}

func Load() *Config {
	return &Config{
		MongoURI:       getEnv("DATABASE_URL", "mongodb://localhost:27017"),
		Port:           getEnv("PORT", "8080"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "*")),
	}
}

func parseOrigins(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		out = []string{"*"}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
