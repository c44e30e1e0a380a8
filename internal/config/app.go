package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

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
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// RapidAPI holds credentials and hosts for the authenticated price feeds.
// An empty key is allowed: upstream calls will fail and the price sources
// serve their static fallback snapshots instead.
type RapidAPI struct {
	Key        string `mapstructure:"key"`
	HaremHost  string `mapstructure:"harem_host"`
	GoldFXHost string `mapstructure:"goldfx_host"`
}

type PriceSource struct {
	Provider string `mapstructure:"provider"` // "harem" or "goldfx"
}

type ExchangeRate struct {
	BaseURL         string `mapstructure:"base_url"`
	TimeoutSeconds  int    `mapstructure:"timeout_seconds"`
	CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds"`
}

type Recorder struct {
	Enabled         bool `mapstructure:"enabled"`
	IntervalSeconds int  `mapstructure:"interval_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	HTTPServer   HTTPServer   `mapstructure:"http_server"`
	DbServer     DbServer     `mapstructure:"db_server"`
	HTTPClient   HTTPClient   `mapstructure:"http_client"`
	RapidAPI     RapidAPI     `mapstructure:"rapidapi"`
	PriceSource  PriceSource  `mapstructure:"price_source"`
	ExchangeRate ExchangeRate `mapstructure:"exchange_rate"`
	Recorder     Recorder     `mapstructure:"recorder"`
	Logging      Logging      `mapstructure:"logging"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file loaded: %v", err)
	}

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	viper.SetDefault("db_server.max_conns", 10)
	viper.SetDefault("http_client.timeout_seconds", 10)
	viper.SetDefault("rapidapi.harem_host", "harem-altin-live-gold-price-data.p.rapidapi.com")
	viper.SetDefault("rapidapi.goldfx_host", "gold-and-foreign-exchange-information-from-turkish-companies.p.rapidapi.com")
	viper.SetDefault("price_source.provider", "harem")
	viper.SetDefault("exchange_rate.base_url", "https://api.exchangerate-api.com/v4/latest")
	viper.SetDefault("exchange_rate.timeout_seconds", 5)
	viper.SetDefault("exchange_rate.cache_ttl_seconds", 60)
	viper.SetDefault("recorder.enabled", true)
	viper.SetDefault("recorder.interval_seconds", 300)
	viper.SetDefault("logging.level", "info")

	// http server env vars
	_ = viper.BindEnv("http_server.port", "PORT")

	// db server env vars
	_ = viper.BindEnv("db_server.host", "DB_HOST")
	_ = viper.BindEnv("db_server.port", "DB_PORT")
	_ = viper.BindEnv("db_server.user", "DB_USER")
	_ = viper.BindEnv("db_server.pass", "DB_PASS")
	_ = viper.BindEnv("db_server.name", "DB_NAME")
	_ = viper.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// upstream feed env vars
	_ = viper.BindEnv("rapidapi.key", "RAPIDAPI_KEY")
	_ = viper.BindEnv("rapidapi.harem_host", "RAPIDAPI_HAREM_HOST")
	_ = viper.BindEnv("rapidapi.goldfx_host", "RAPIDAPI_GOLDFX_HOST")
	_ = viper.BindEnv("price_source.provider", "PRICE_SOURCE_PROVIDER")

	// http client env vars
	_ = viper.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
