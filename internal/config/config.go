package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is loaded once at startup and handed to constructors. Nothing reads
// the environment after Load returns.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Pricing  PricingConfig
	Stripe   StripeConfig
	PayHere  PayHereConfig
	CORS     CORSConfig
	AWS      AWSConfig
}

type ServerConfig struct {
	Port        string
	Environment string // development, production
}

type DatabaseConfig struct {
	URL string
}

type JWTConfig struct {
	Secret   string
	TokenTTL time.Duration
}

// PricingConfig carries the source-to-local currency multiplier. It is
// applied exactly once, at booking creation, to server-computed totals only;
// caller-supplied totals and stored totals are never rescaled.
type PricingConfig struct {
	Currency           string
	CurrencyMultiplier float64
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
}

type PayHereConfig struct {
	MerchantID     string
	MerchantSecret string
	CheckoutURL    string
	ReturnURL      string
	CancelURL      string
	NotifyURL      string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	BaseURL         string
	LocalUploadDir  string
}

// Load reads .env if present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		JWT: JWTConfig{
			Secret:   os.Getenv("JWT_SECRET"),
			TokenTTL: getDurationEnv("JWT_TOKEN_TTL", time.Hour),
		},
		Pricing: PricingConfig{
			Currency:           getEnv("PRICING_CURRENCY", "LKR"),
			CurrencyMultiplier: getFloatEnv("PRICING_CURRENCY_MULTIPLIER", 1),
		},
		Stripe: StripeConfig{
			SecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
			WebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		},
		PayHere: PayHereConfig{
			MerchantID:     os.Getenv("PAYHERE_MERCHANT_ID"),
			MerchantSecret: os.Getenv("PAYHERE_MERCHANT_SECRET"),
			CheckoutURL:    getEnv("PAYHERE_CHECKOUT_URL", "https://sandbox.payhere.lk/pay/checkout"),
			ReturnURL:      os.Getenv("PAYHERE_RETURN_URL"),
			CancelURL:      os.Getenv("PAYHERE_CANCEL_URL"),
			NotifyURL:      os.Getenv("PAYHERE_NOTIFY_URL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getSliceEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
		},
		AWS: AWSConfig{
			Region:          os.Getenv("AWS_REGION"),
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			Bucket:          os.Getenv("AWS_S3_BUCKET"),
			BaseURL:         getEnv("UPLOAD_BASE_URL", "http://localhost:8080"),
			LocalUploadDir:  getEnv("UPLOAD_DIR", "uploads"),
		},
	}

	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.Pricing.CurrencyMultiplier <= 0 {
		return nil, fmt.Errorf("PRICING_CURRENCY_MULTIPLIER must be positive")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getFloatEnv(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getSliceEnv(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
