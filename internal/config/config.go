package config

import (
	"flag"
	"regexp"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress  string        `env:"RUN_ADDRESS"`
	DatabaseDSN string        `env:"DATABASE_URI"`
	AuthSecret  string        `env:"AUTH_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "адрес и порт сервера")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres:// или путь к файлу SQLite)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи токенов")
	flag.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "срок жизни токена")

	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = "bucketlist.db"
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Hour
	}
	// validate RunAddress: должен быть "address:port" (без схемы и пути)
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.RunAddress) {
		cfg.RunAddress = "localhost:8080"
	}

	return cfg
}
