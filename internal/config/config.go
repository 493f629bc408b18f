package config

import (
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Shopify ShopifyConfig
	Costs   CostConfig
	Cache   CacheConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

// ShopifyConfig carries the connection settings for the Shopify Admin API.
// An empty StoreURL or AccessToken puts the whole service into
// disconnected mode: fetches return empty, explicitly-flagged results.
type ShopifyConfig struct {
	StoreURL     string
	AccessToken  string
	APIVersion   string
	PageLimit    int
	PageDelay    time.Duration
	ProbeLimit   int
	PollInterval time.Duration
}

// CostConfig holds the per-category cost assumptions used to derive
// profit. Values are whole currency units.
type CostConfig struct {
	HoodieBaseCost int `json:"hoodie_base_cost"`
	TShirtBaseCost int `json:"tshirt_base_cost"`
	AdditionalCost int `json:"additional_cost"`
}

type CacheConfig struct {
	Enabled           bool
	RedisURL          string
	RedisHost         string
	RedisPort         string
	RedisPassword     string
	RedisDB           int
	SummaryTTLSeconds int
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("SHOPIFY_STORE_URL", "")
		viper.SetDefault("SHOPIFY_ACCESS_TOKEN", "")
		viper.SetDefault("SHOPIFY_API_VERSION", "2023-10")
		viper.SetDefault("SHOPIFY_PAGE_LIMIT", 250)
		viper.SetDefault("SHOPIFY_PAGE_DELAY_MS", 500)
		viper.SetDefault("SHOPIFY_PROBE_LIMIT", 5)
		viper.SetDefault("SHOPIFY_POLL_INTERVAL_SECONDS", 300)
		viper.SetDefault("COST_HOODIE_BASE", 500)
		viper.SetDefault("COST_TSHIRT_BASE", 210)
		viper.SetDefault("COST_ADDITIONAL", 370)
		viper.SetDefault("CACHE_ENABLED", false)
		viper.SetDefault("REDIS_URL", "")
		viper.SetDefault("REDIS_HOST", "127.0.0.1")
		viper.SetDefault("REDIS_PORT", "6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("CACHE_SUMMARY_TTL_SECONDS", 60)

		// Read from environment variables
		viper.AutomaticEnv()

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			Shopify: ShopifyConfig{
				StoreURL:     viper.GetString("SHOPIFY_STORE_URL"),
				AccessToken:  viper.GetString("SHOPIFY_ACCESS_TOKEN"),
				APIVersion:   viper.GetString("SHOPIFY_API_VERSION"),
				PageLimit:    viper.GetInt("SHOPIFY_PAGE_LIMIT"),
				PageDelay:    time.Duration(viper.GetInt("SHOPIFY_PAGE_DELAY_MS")) * time.Millisecond,
				ProbeLimit:   viper.GetInt("SHOPIFY_PROBE_LIMIT"),
				PollInterval: time.Duration(viper.GetInt("SHOPIFY_POLL_INTERVAL_SECONDS")) * time.Second,
			},
			Costs: CostConfig{
				HoodieBaseCost: viper.GetInt("COST_HOODIE_BASE"),
				TShirtBaseCost: viper.GetInt("COST_TSHIRT_BASE"),
				AdditionalCost: viper.GetInt("COST_ADDITIONAL"),
			},
			Cache: CacheConfig{
				Enabled:           viper.GetBool("CACHE_ENABLED"),
				RedisURL:          viper.GetString("REDIS_URL"),
				RedisHost:         viper.GetString("REDIS_HOST"),
				RedisPort:         viper.GetString("REDIS_PORT"),
				RedisPassword:     viper.GetString("REDIS_PASSWORD"),
				RedisDB:           viper.GetInt("REDIS_DB"),
				SummaryTTLSeconds: viper.GetInt("CACHE_SUMMARY_TTL_SECONDS"),
			},
		}
	})

	return instance
}

// Connected reports whether Shopify credentials are present.
func (c ShopifyConfig) Connected() bool {
	return c.StoreURL != "" && c.AccessToken != ""
}
