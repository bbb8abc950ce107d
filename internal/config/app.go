package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultConfigFile = "config.yaml"

var ErrJWTSecretRequired = errors.New("auth.jwt_secret is required")

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
	// AutoMigrate applies the embedded migrations on startup.
	AutoMigrate bool `mapstructure:"auto_migrate"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable pool_max_conns=10",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type Logging struct {
	Level string `mapstructure:"level"`
}

// Auth holds the signing secret of the hosted auth service tokens.
type Auth struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	Issuer    string `mapstructure:"issuer"`
	Audience  string `mapstructure:"audience"`
}

type Rates struct {
	Buy  float64 `mapstructure:"buy"`
	Sell float64 `mapstructure:"sell"`
}

type Limits struct {
	BaseMinimum   float64 `mapstructure:"base_minimum"`
	MinimumPolicy string  `mapstructure:"minimum_policy"`
}

type Wizard struct {
	TTLSeconds int   `mapstructure:"ttl_seconds"`
	MaxItems   int64 `mapstructure:"max_items"`
}

type Scheduler struct {
	AlertsIntervalSec int `mapstructure:"alerts_interval_sec"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	DbServer   DbServer   `mapstructure:"db_server"`
	Logging    Logging    `mapstructure:"logging"`
	Auth       Auth       `mapstructure:"auth"`
	Rates      Rates      `mapstructure:"rates"`
	Limits     Limits     `mapstructure:"limits"`
	Wizard     Wizard     `mapstructure:"wizard"`
	Scheduler  Scheduler  `mapstructure:"scheduler"`
}

func Init() (*AppConfig, error) {
	// .env is optional, deployments set the variables directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}
	return Load(defaultConfigFile)
}

// Load reads configFile and overlays the bound environment variables.
func Load(configFile string) (*AppConfig, error) {
	var cfg AppConfig
	v := viper.New()

	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetDefault("http_server.port", "8080")
	v.SetDefault("db_server.max_conns", 10)
	v.SetDefault("logging.level", "info")
	v.SetDefault("auth.audience", "authenticated")
	v.SetDefault("rates.buy", 3.72)
	v.SetDefault("rates.sell", 3.78)
	v.SetDefault("limits.base_minimum", 100)
	v.SetDefault("limits.minimum_policy", "usd_equivalent")
	v.SetDefault("wizard.ttl_seconds", 1800)
	v.SetDefault("wizard.max_items", 10_000)
	v.SetDefault("scheduler.alerts_interval_sec", 60)

	// http server env vars
	_ = v.BindEnv("http_server.port", "HTTP_PORT")

	// db server env vars
	_ = v.BindEnv("db_server.host", "DB_HOST")
	_ = v.BindEnv("db_server.port", "DB_PORT")
	_ = v.BindEnv("db_server.user", "DB_USER")
	_ = v.BindEnv("db_server.pass", "DB_PASS")
	_ = v.BindEnv("db_server.name", "DB_NAME")
	_ = v.BindEnv("db_server.max_conns", "DB_MAX_CONNS")
	_ = v.BindEnv("db_server.auto_migrate", "DB_AUTO_MIGRATE")

	_ = v.BindEnv("logging.level", "LOG_LEVEL")

	// auth env vars
	_ = v.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")
	_ = v.BindEnv("auth.issuer", "AUTH_ISSUER")
	_ = v.BindEnv("auth.audience", "AUTH_AUDIENCE")

	// exchange env vars
	_ = v.BindEnv("rates.buy", "RATES_BUY")
	_ = v.BindEnv("rates.sell", "RATES_SELL")
	_ = v.BindEnv("limits.base_minimum", "LIMITS_BASE_MINIMUM")
	_ = v.BindEnv("limits.minimum_policy", "LIMITS_MINIMUM_POLICY")
	_ = v.BindEnv("wizard.ttl_seconds", "WIZARD_TTL_SECONDS")
	_ = v.BindEnv("wizard.max_items", "WIZARD_MAX_ITEMS")
	_ = v.BindEnv("scheduler.alerts_interval_sec", "SCHEDULER_ALERTS_INTERVAL_SEC")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, ErrJWTSecretRequired
	}
	return &cfg, nil
}
