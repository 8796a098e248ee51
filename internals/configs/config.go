package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

/* =======================
   App Config
======================= */

// Config is built once at startup and passed by reference to every
// component that needs it. Nothing reads the environment at call sites
// after LoadConfig returns.
type Config struct {
	Port string

	// Postgres
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string

	// Auth
	JWTSecret string
	JWTExpiry time.Duration

	// Payment gateway (Edviron-compatible collect API)
	PGBaseURL string // e.g. https://dev-vanilla.edviron.com
	PGKey     string // secret used to sign collect-request tokens
	PGAPIKey  string // bearer key for the gateway REST API
	BaseURL   string // public base URL of this service (callback target)

	// Midtrans (optional secondary provider)
	MidtransServerKey string
	MidtransProdEnv   bool

	// Startup seeding (admin bootstrap); both empty disables the seed
	AdminEmail    string
	AdminPassword string
}

// LoadConfig loads .env (when present) and builds the process-wide config.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file found, using system environment")
	}

	cfg := &Config{
		Port: GetEnv("PORT", "3000"),

		DBUser:     GetEnv("DB_USER"),
		DBPassword: GetEnv("DB_PASSWORD"),
		DBHost:     GetEnv("DB_HOST", "localhost"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBName:     GetEnv("DB_NAME", "schoolpay"),
		DBSSLMode:  GetEnv("DB_SSLMODE", "require"),

		JWTSecret: GetEnv("JWT_SECRET"),
		JWTExpiry: parseDuration(GetEnv("JWT_EXPIRY", "24h"), 24*time.Hour),

		PGBaseURL: GetEnv("PG_BASE_URL", "https://dev-vanilla.edviron.com"),
		PGKey:     GetEnv("PG_KEY"),
		PGAPIKey:  GetEnv("API_KEY"),
		BaseURL:   GetEnv("BASE_URL", "http://localhost:3000"),

		MidtransServerKey: GetEnv("MIDTRANS_SERVER_KEY"),
		MidtransProdEnv:   GetEnv("MIDTRANS_ENV") == "production",

		AdminEmail:    GetEnv("ADMIN_EMAIL"),
		AdminPassword: GetEnv("ADMIN_PASSWORD"),
	}

	if cfg.JWTSecret == "" {
		log.Println("[WARNING] JWT_SECRET is not set")
	}
	if cfg.PGKey == "" {
		log.Println("[WARNING] PG_KEY is not set, gateway signing will fail")
	}

	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func parseDuration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
