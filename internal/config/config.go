package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	BaseURL    string
	MySQLDSN   string
	RedisAddr  string
	RedisDB    int
	RedisPass  string

	// SecureCookie controls the Secure attribute on the session cookie.
	// Enable whenever the service is served over HTTPS.
	SecureCookie bool

	// RecheckSuspension makes the auth middleware reload the user row on
	// every request and reject suspended accounts immediately, instead of
	// only checking suspension at login time.
	RecheckSuspension bool

	SMTPServer   string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "5000"),
		BaseURL:           getEnv("APP_BASE_URL", "http://localhost:5000"),
		MySQLDSN:          getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/netdash?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		SecureCookie:      getEnvBool("SESSION_SECURE_COOKIE", false),
		RecheckSuspension: getEnvBool("AUTH_RECHECK_SUSPENSION", false),
		SMTPServer:        getEnv("SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:          getEnvInt("SMTP_PORT", 587),
		SMTPUsername:      os.Getenv("SMTP_USERNAME"),
		SMTPPassword:      os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:          getEnv("SMTP_FROM", "noreply@netdash.com"),
		SwaggerHost:       os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
