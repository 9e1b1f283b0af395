package configs

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Conf struct {
	ServiceName       string        `mapstructure:"SERVICE_NAME"`
	Environment       string        `mapstructure:"ENVIRONMENT"`
	DBDriver          string        `mapstructure:"DB_DRIVER"`
	DBHost            string        `mapstructure:"DB_HOST"`
	DBPort            string        `mapstructure:"DB_PORT"`
	DBUser            string        `mapstructure:"DB_USER"`
	DBPassword        string        `mapstructure:"DB_PASSWORD"`
	DBName            string        `mapstructure:"DB_NAME"`
	DBSSLMode         string        `mapstructure:"DB_SSLMODE"`
	RedisHost         string        `mapstructure:"REDIS_HOST"`
	RedisPort         string        `mapstructure:"REDIS_PORT"`
	AMQPURL           string        `mapstructure:"AMQP_URL"`
	LocationExchange  string        `mapstructure:"LOCATION_EXCHANGE"`
	OtelCollectorAddr string        `mapstructure:"OTEL_COLLECTOR_ADDR"`
	WebServerPort     string        `mapstructure:"WEB_SERVER_PORT"`
	GRPCPort          string        `mapstructure:"GRPC_PORT"`
	SearchRadiusKm    float64       `mapstructure:"SEARCH_RADIUS_KM"`
	PhoneRegion       string        `mapstructure:"PHONE_REGION"`
	RequestTimeout    time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	LockTTL           time.Duration `mapstructure:"LOCK_TTL"`
	RateLimitRPS      int           `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst    int           `mapstructure:"RATE_LIMIT_BURST"`
}

var defaults = map[string]any{
	"SERVICE_NAME":        "gorider",
	"ENVIRONMENT":         "development",
	"DB_DRIVER":           "postgres",
	"DB_HOST":             "localhost",
	"DB_PORT":             "5432",
	"DB_USER":             "postgres",
	"DB_PASSWORD":         "postgres",
	"DB_NAME":             "gorider",
	"DB_SSLMODE":          "disable",
	"REDIS_HOST":          "",
	"REDIS_PORT":          "6379",
	"AMQP_URL":            "",
	"LOCATION_EXCHANGE":   "gorider.events",
	"OTEL_COLLECTOR_ADDR": "",
	"WEB_SERVER_PORT":     "8080",
	"GRPC_PORT":           "50051",
	"SEARCH_RADIUS_KM":    5.0,
	"PHONE_REGION":        "TH",
	"REQUEST_TIMEOUT":     "10s",
	"LOCK_TTL":            "5s",
	"RATE_LIMIT_RPS":      50,
	"RATE_LIMIT_BURST":    100,
}

// LoadConfig reads path/.env when present; environment variables win over it.
func LoadConfig(path string) (*Conf, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Conf
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.SearchRadiusKm <= 0 {
		return nil, fmt.Errorf("SEARCH_RADIUS_KM must be positive, got %v", cfg.SearchRadiusKm)
	}
	return &cfg, nil
}

func (c *Conf) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func (c *Conf) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}

func (c *Conf) IsProd() bool {
	return c.Environment == "production"
}
