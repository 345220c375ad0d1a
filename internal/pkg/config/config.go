package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (remote API location)
// - default: Values common across all environments (timeouts, debounce window, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	StoreAPI StoreAPIConfig
	Search   SearchConfig
	Cart     CartConfig
	Checkout CheckoutConfig
	Session  SessionConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8090"`
}

type StoreAPIConfig struct {
	BaseURL            string        `envconfig:"STORE_API_BASE_URL" required:"true"`
	Timeout            time.Duration `envconfig:"STORE_API_TIMEOUT" default:"10s"`
	BreakerFailures    uint32        `envconfig:"STORE_API_BREAKER_FAILURES" default:"5"`
	BreakerOpenTimeout time.Duration `envconfig:"STORE_API_BREAKER_OPEN_TIMEOUT" default:"30s"`
}

type SearchConfig struct {
	SettleWindow  time.Duration `envconfig:"SEARCH_SETTLE_WINDOW" default:"500ms"`
	OnlyAvailable bool          `envconfig:"SEARCH_ONLY_AVAILABLE" default:"true"`
}

type CartConfig struct {
	MaxLineQuantity int    `envconfig:"CART_MAX_LINE_QUANTITY" default:"10"`
	TaxRate         string `envconfig:"CART_TAX_RATE" default:"0.08"`
}

type CheckoutConfig struct {
	PurchaseTimeout time.Duration `envconfig:"CHECKOUT_PURCHASE_TIMEOUT" default:"10s"`
}

type SessionConfig struct {
	AccessToken string `envconfig:"SESSION_ACCESS_TOKEN"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

func (c CartConfig) Tax() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(c.TaxRate)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid CART_TAX_RATE %q: %w", c.TaxRate, err)
	}
	if rate.IsNegative() {
		return decimal.Zero, fmt.Errorf("CART_TAX_RATE must not be negative: %s", c.TaxRate)
	}
	return rate, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Cart.MaxLineQuantity < 1 {
		return Config{}, fmt.Errorf("CART_MAX_LINE_QUANTITY must be at least 1, got %d", cfg.Cart.MaxLineQuantity)
	}
	if _, err := cfg.Cart.Tax(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8899", // Test port
		},
		StoreAPI: StoreAPIConfig{
			BaseURL:            "http://localhost:18080",
			Timeout:            2 * time.Second,
			BreakerFailures:    5,
			BreakerOpenTimeout: 30 * time.Second,
		},
		Search: SearchConfig{
			SettleWindow:  500 * time.Millisecond,
			OnlyAvailable: true,
		},
		Cart: CartConfig{
			MaxLineQuantity: 10,
			TaxRate:         "0.08",
		},
		Checkout: CheckoutConfig{
			PurchaseTimeout: 2 * time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}
