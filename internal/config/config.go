package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shenikar/atoa_simulation/internal/models"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr   string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass   string        `env:"REDIS_PASSWORD"`
	RedisDB     int           `env:"REDIS_DB" envDefault:"0"`
	SnapshotTTL time.Duration `env:"SNAPSHOT_TTL" envDefault:"30m"`

	// Webhook Config (голосовой оповещатель)
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"500ms"`

	// Ограничение числа тиков за один запрос
	MaxTicksPerStep int `env:"MAX_TICKS_PER_STEP" envDefault:"500"`

	// Параметры симуляции по умолчанию
	Simulation SimulationDefaults

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// SimulationDefaults - значения параметров прогона, если клиент их не задал
type SimulationDefaults struct {
	Params   models.SimulationParams
	FogLevel float64 `env:"SIM_FOG_LEVEL" envDefault:"70"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	cfg, err := loadBase()
	if err != nil {
		return nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	return cfg, nil
}

// LoadLocalConfig загружает конфигурацию для запуска без базы данных (cmd/simulate)
func LoadLocalConfig() (*Config, error) {
	return loadBase()
}

func loadBase() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		SnapshotTTL:       getEnvAsDuration("SNAPSHOT_TTL", 30*time.Minute),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", 500*time.Millisecond),
		MaxTicksPerStep:   getEnvAsInt("MAX_TICKS_PER_STEP", 500),
		Simulation: SimulationDefaults{
			FogLevel: getEnvAsFloat("SIM_FOG_LEVEL", 70),
			Params: models.SimulationParams{
				RoadLength:          getEnvAsFloat("SIM_ROAD_LENGTH", 100),
				Topology:            models.Topology(getEnv("SIM_TOPOLOGY", string(models.TopologyLooping))),
				VehicleCount:        getEnvAsInt("SIM_VEHICLE_COUNT", 3),
				VehicleSpacing:      getEnvAsFloat("SIM_VEHICLE_SPACING", 20),
				BaseVisibility:      getEnvAsFloat("SIM_BASE_VISIBILITY", 50),
				BrakingDistance:     getEnvAsFloat("SIM_BRAKING_DISTANCE", 15),
				FollowBuffer:        getEnvAsFloat("SIM_FOLLOW_BUFFER", 5),
				StopMargin:          getEnvAsFloat("SIM_STOP_MARGIN", 5),
				SpawnMargin:         getEnvAsFloat("SIM_SPAWN_MARGIN", 10),
				NormalSpeed:         getEnvAsFloat("SIM_NORMAL_SPEED", 2),
				BrakingSpeed:        getEnvAsFloat("SIM_BRAKING_SPEED", 1),
				AccidentProbability: getEnvAsFloat("SIM_ACCIDENT_PROBABILITY", 0.05),
				HazardDuration:      getEnvAsInt("SIM_HAZARD_DURATION", 20),
				Seed:                int64(getEnvAsInt("SIM_SEED", 0)),
			},
		},
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	// Хотя бы одна попытка доставки
	if cfg.WebhookMaxRetries < 1 {
		cfg.WebhookMaxRetries = 1
	}
	if cfg.MaxTicksPerStep < 1 {
		return nil, fmt.Errorf("MAX_TICKS_PER_STEP must be positive, got %d", cfg.MaxTicksPerStep)
	}
	if fog := cfg.Simulation.FogLevel; fog < 0 || fog > 90 {
		return nil, fmt.Errorf("SIM_FOG_LEVEL must be within [0,90], got %v", fog)
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
