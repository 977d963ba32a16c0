package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config gom toàn bộ cấu hình đọc từ môi trường. An empty APIBaseURL is the
// single switch that selects demo mode.
type Config struct {
	APIBaseURL  string
	Port        string
	StorageDir  string
	RedisAddr   string
	DatabaseURL string
	LogLevel    string
}

// LoadEnv nạp biến môi trường từ tệp `.env` nếu có.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}
}

// GetEnv lấy biến môi trường theo key.
func GetEnv(key string) string {
	return os.Getenv(key)
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load đọc cấu hình từ môi trường với các giá trị mặc định cho demo mode.
func Load() *Config {
	return &Config{
		APIBaseURL:  os.Getenv("API_BASE_URL"),
		Port:        getEnvDefault("PORT", "8083"),
		StorageDir:  getEnvDefault("STORAGE_DIR", ".brf-data"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    getEnvDefault("LOG_LEVEL", "info"),
	}
}

// DemoMode cho biết client có chạy ở chế độ demo (không có backend) hay không.
func (c *Config) DemoMode() bool {
	return c.APIBaseURL == ""
}
