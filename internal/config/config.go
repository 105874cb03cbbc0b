package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN      string
	ServerPort string

	JWTSecret string
	JWTTTL    time.Duration

	AdminEmail string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	BootstrapAdminUser string
	BootstrapAdminPass string

	// максимум учётных записей; при достижении регистрация блокируется
	UserLimit int
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:              os.Getenv("DB_DSN"),
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		AdminEmail:         getEnv("ADMIN_EMAIL", "admin@example.com"),
		SMTPHost:           os.Getenv("SMTP_HOST"),
		SMTPUser:           os.Getenv("SMTP_USER"),
		SMTPPass:           os.Getenv("SMTP_PASS"),
		BootstrapAdminUser: getEnv("BOOTSTRAP_ADMIN_USER", "admin"),
		BootstrapAdminPass: getEnv("BOOTSTRAP_ADMIN_PASS", "admin123"),
	}

	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN is not set")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	cfg.JWTTTL = 168 * time.Hour
	if v := os.Getenv("JWT_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("invalid JWT_TTL: %v", err)
		}
		cfg.JWTTTL = ttl
	}

	cfg.SMTPPort = 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid SMTP_PORT: %v", err)
		}
		cfg.SMTPPort = port
	}

	cfg.UserLimit = 200
	if v := os.Getenv("USER_LIMIT"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid USER_LIMIT: %v", err)
		}
		cfg.UserLimit = limit
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
