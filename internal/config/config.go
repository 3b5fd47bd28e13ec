package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config 应用配置
type Config struct {
	Port            string
	DBPath          string
	JWTSecret       string
	GoogleAPIKey    string
	AdminUser       string
	AdminPassHash   string // bcrypt hash of the admin password
	RateLimit       int    // 每个时间窗口允许的请求数
	RateLimitWindow time.Duration
	TokenTTL        time.Duration
}

// Load 加载配置
func Load() *Config {
	// .env is optional; deployments set real environment variables
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/places/places.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	googleAPIKey := os.Getenv("GOOGLE_API_KEY")

	adminUser := os.Getenv("ADMIN_USER")
	if adminUser == "" {
		adminUser = "admin"
	}

	// No pre-computed hash means the hash is derived from ADMIN_PASSWORD,
	// falling back to "admin" (dev only)
	adminPassHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminPassHash == "" {
		adminPass := os.Getenv("ADMIN_PASSWORD")
		if adminPass == "" {
			adminPass = "admin"
			log.Printf("[Config] ADMIN_PASSWORD_HASH not set, using default credentials %s/admin", adminUser)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("[Config] failed to hash admin password: %v", err)
		}
		adminPassHash = string(hash)
	}

	return &Config{
		Port:            port,
		DBPath:          dbPath,
		JWTSecret:       jwtSecret,
		GoogleAPIKey:    googleAPIKey,
		AdminUser:       adminUser,
		AdminPassHash:   adminPassHash,
		RateLimit:       120, // 每分钟 120 个请求
		RateLimitWindow: time.Minute,
		TokenTTL:        24 * time.Hour,
	}
}
