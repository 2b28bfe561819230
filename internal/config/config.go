package config

import (
	"os"
	"strings"
)

type Config struct {
	MongoURI       string
	MongoDB        string
	JWTSecret      string
	Port           string
	AllowedOrigins []string // CORS: from ALLOWED_ORIGINS or FRONTEND_URL
}

// Load reads configuration from the environment. Every value has a
// development default; none of the defaults are suitable for production.
func Load() *Config {
	allowedOrigins := parseOrigins(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{getEnv("FRONTEND_URL", "http://localhost:3000")}
	}

	return &Config{
		MongoURI:       getEnv("MONGODB_URI", getEnv("MONGO_URI", "mongodb://127.0.0.1:27017/pricebite")),
		MongoDB:        getEnv("MONGO_DB", "pricebite"),
		JWTSecret:      getEnv("JWT_SECRET", "pricebite-secret-key"),
		Port:           getEnv("PORT", "5001"),
		AllowedOrigins: allowedOrigins,
	}
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
