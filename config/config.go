// file: config/config.go
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr    string
	MySQLDSN      string
	RedisAddr     string
	RedisPassword string
	JWTSecret     string

	CloudinaryCloudName    string
	CloudinaryUploadPreset string
	// CloudinaryBaseURL is overridable so tests can point the uploader at a
	// local server. Defaults to the real API host.
	CloudinaryBaseURL string
}

// Load reads .env (if present) and then the environment. Missing optional
// values fall back to development defaults; the Cloudinary credentials have no
// sane default and are validated at upload time instead.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	return &Config{
		ListenAddr:             getEnv("LISTEN_ADDR", ":8080"),
		MySQLDSN:               getEnv("MYSQL_DSN", "root:123456@tcp(localhost:3306)/roborace?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:          getEnv("REDIS_PASSWORD", ""),
		JWTSecret:              getEnv("JWT_SECRET", "change-me-in-production"),
		CloudinaryCloudName:    getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryUploadPreset: getEnv("CLOUDINARY_UPLOAD_PRESET", ""),
		CloudinaryBaseURL:      getEnv("CLOUDINARY_BASE_URL", "https://api.cloudinary.com"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
