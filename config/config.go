package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Store   StoreConfig
	DB      DBConfig
	Canteen CanteenConfig
}

type StoreConfig struct {
	Backend string // "sqlite", "postgres" or "memory"
	Path    string // sqlite database file
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type CanteenConfig struct {
	DeliveryFee int64         // flat fee added to every order, in rupees
	APIDelay    time.Duration // simulated network latency for service calls
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	fee, _ := strconv.ParseInt(getEnv("DELIVERY_FEE", "20"), 10, 64)
	delayMS, _ := strconv.Atoi(getEnv("API_DELAY_MS", "0"))

	return &Config{
		Store: StoreConfig{
			Backend: getEnv("STORE_BACKEND", "sqlite"),
			Path:    getEnv("STORE_PATH", "canteenmate.db"),
		},
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "canteen"),
		},
		Canteen: CanteenConfig{
			DeliveryFee: fee,
			APIDelay:    time.Duration(delayMS) * time.Millisecond,
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
