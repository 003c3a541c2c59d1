package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	GinMode             string
	PopularDefaultCount int // GET /films/popular 未携带 count 时的默认条数
}

func Load() *Config {
	// 加载 .env 文件
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	popularDefaultCount, err := strconv.Atoi(getEnv("POPULAR_DEFAULT_COUNT", "10"))
	if err != nil || popularDefaultCount <= 0 {
		popularDefaultCount = 10
	}

	return &Config{
		Port:                getEnv("PORT", "8080"),
		GinMode:             getEnv("GIN_MODE", "release"),
		PopularDefaultCount: popularDefaultCount,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
