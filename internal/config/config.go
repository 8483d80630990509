package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения.
// Таблицы весов и пороги счета намеренно вынесены в конфигурацию,
// чтобы политику можно было менять без правки кода.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Окно агрегатора статусов (в днях) и пороги меток
	StatusWindowDays int     `env:"STATUS_WINDOW_DAYS" envDefault:"7"`
	GoodThreshold    float64 `env:"GOOD_THRESHOLD" envDefault:"0.66"`
	PoorThreshold    float64 `env:"POOR_THRESHOLD" envDefault:"0.33"`

	// Окно живого пульса (в минутах)
	PulseWindowMinutes int `env:"PULSE_WINDOW_MINUTES" envDefault:"60"`

	// Теплокарта: порог "полной истории" и защитный потолок выборки
	HeatmapFullHistoryHours int `env:"HEATMAP_FULL_HISTORY_HOURS" envDefault:"720"`
	HeatmapMaxFeatures      int `env:"HEATMAP_MAX_FEATURES" envDefault:"5000"`

	// Таблицы категория->вес для слоев problems и coverage
	CategoryWeights       map[string]float64
	DefaultCategoryWeight float64 `env:"DEFAULT_CATEGORY_WEIGHT" envDefault:"0.2"`
	AssetWeights          map[string]float64
	DefaultAssetWeight    float64 `env:"DEFAULT_ASSET_WEIGHT" envDefault:"0.2"`

	// Кеши и расписание фонового пересчета
	ZoneCacheTTL    time.Duration `env:"ZONE_CACHE_TTL" envDefault:"5m"`
	StatusCacheTTL  time.Duration `env:"STATUS_CACHE_TTL" envDefault:"10m"`
	RefreshCronSpec string        `env:"REFRESH_CRON_SPEC" envDefault:"@every 15m"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// defaultCategoryWeights - веса категорий жалоб: критичные коммунальные
// категории весят больше всего, информационные - меньше всего
var defaultCategoryWeights = map[string]float64{
	"electricity":    1.0,
	"water":          1.0,
	"sanitation":     0.8,
	"safety":         0.9,
	"communication":  0.6,
	"infrastructure": 0.7,
	"road":           0.7,
	"other":          0.3,
}

// defaultAssetWeights - веса типов инфраструктуры для слоя покрытия
var defaultAssetWeights = map[string]float64{
	"health_center":   1.0,
	"well":            0.9,
	"water_point":     0.9,
	"school":          0.8,
	"transformer":     0.8,
	"public_building": 0.6,
	"lighting":        0.4,
	"park":            0.3,
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:             os.Getenv("DATABASE_URL"),
		HTTPPort:                getEnv("HTTP_PORT", "8080"),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		RedisAddr:               getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:               os.Getenv("REDIS_PASSWORD"),
		RedisDB:                 getEnvAsInt("REDIS_DB", 0),
		StatusWindowDays:        getEnvAsInt("STATUS_WINDOW_DAYS", 7),
		GoodThreshold:           getEnvAsFloat("GOOD_THRESHOLD", 0.66),
		PoorThreshold:           getEnvAsFloat("POOR_THRESHOLD", 0.33),
		PulseWindowMinutes:      getEnvAsInt("PULSE_WINDOW_MINUTES", 60),
		HeatmapFullHistoryHours: getEnvAsInt("HEATMAP_FULL_HISTORY_HOURS", 720),
		HeatmapMaxFeatures:      getEnvAsInt("HEATMAP_MAX_FEATURES", 5000),
		DefaultCategoryWeight:   getEnvAsFloat("DEFAULT_CATEGORY_WEIGHT", 0.2),
		DefaultAssetWeight:      getEnvAsFloat("DEFAULT_ASSET_WEIGHT", 0.2),
		ZoneCacheTTL:            getEnvAsDuration("ZONE_CACHE_TTL", 5*time.Minute),
		StatusCacheTTL:          getEnvAsDuration("STATUS_CACHE_TTL", 10*time.Minute),
		RefreshCronSpec:         getEnv("REFRESH_CRON_SPEC", "@every 15m"),
	}

	var err error
	if cfg.CategoryWeights, err = getEnvAsWeights("CATEGORY_WEIGHTS_JSON", defaultCategoryWeights); err != nil {
		return nil, err
	}
	if cfg.AssetWeights, err = getEnvAsWeights("ASSET_WEIGHTS_JSON", defaultAssetWeights); err != nil {
		return nil, err
	}

	if cfg.PoorThreshold > cfg.GoodThreshold {
		return nil, fmt.Errorf("POOR_THRESHOLD must not exceed GOOD_THRESHOLD")
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsWeights читает JSON-таблицу весов из переменной окружения,
// иначе возвращает копию таблицы по умолчанию
func getEnvAsWeights(key string, defaults map[string]float64) (map[string]float64, error) {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		weights := make(map[string]float64)
		if err := json.Unmarshal([]byte(value), &weights); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", key, err)
		}
		return weights, nil
	}
	weights := make(map[string]float64, len(defaults))
	for k, v := range defaults {
		weights[k] = v
	}
	return weights, nil
}
