package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Addr    string `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
	BaseURL string `yaml:"base_url" env:"BASE_URL" env-default:"http://localhost:8080"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER" env-required:"true"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD" env-required:"true"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME" env-required:"true"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"PG_MAX_OPEN_CONNS" env-default:"20"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"PG_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"PG_CONN_MAX_LIFETIME" env-default:"30m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env:"PG_CONN_MAX_IDLE_TIME" env-default:"5m"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER" env-default:"default"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type RateConfig struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE" env:"WINDOW_SIZE" env-default:"15m"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"24h"`
	SessionTTL time.Duration `yaml:"session_ttl" env:"SESSION_TTL" env-default:"6h"`
}

type Security struct {
	JWTKey         string `yaml:"JWT_KEY" env:"JWT_KEY" env-required:"true"`
	JWTExpiryHours int    `yaml:"JWT_EXPIRY_HOURS" env:"JWT_EXPIRY_HOURS" env-default:"12"`
}

// Gateway selects how checkout obtains a signed payment payload.
//   - "redsys": sign locally with the merchant secret.
//   - "remote": delegate signing to CreateURL.
//   - "stripe": hosted Stripe Checkout session.
type Gateway struct {
	Provider        string `yaml:"provider" env:"GATEWAY_PROVIDER" env-default:"redsys"`
	CreateURL       string `yaml:"create_url" env:"GATEWAY_CREATE_URL"`
	FormURL         string `yaml:"form_url" env:"GATEWAY_FORM_URL" env-default:"https://sis-t.redsys.es:25443/sis/realizarPago"`
	MerchantCode    string `yaml:"merchant_code" env:"GATEWAY_MERCHANT_CODE"`
	Terminal        string `yaml:"terminal" env:"GATEWAY_TERMINAL" env-default:"1"`
	Currency        string `yaml:"currency" env:"GATEWAY_CURRENCY" env-default:"978"`
	TransactionType string `yaml:"transaction_type" env:"GATEWAY_TRANSACTION_TYPE" env-default:"0"`
	SecretKey       string `yaml:"secret_key" env:"GATEWAY_SECRET_KEY"`
	MerchantName    string `yaml:"merchant_name" env:"GATEWAY_MERCHANT_NAME" env-default:"Supplements Store"`
	Description     string `yaml:"description" env:"GATEWAY_DESCRIPTION" env-default:"Online order"`
}

type Stripe struct {
	APIKey   string `yaml:"STRIPE_API_KEY" env:"STRIPE_API_KEY" env-default:""`
	Currency string `yaml:"STRIPE_CURRENCY" env:"STRIPE_CURRENCY" env-default:"eur"`
}

type SendGrid struct {
	APIKey               string `yaml:"API_KEY" env:"SENDGRID_API_KEY"`
	FromEmail            string `yaml:"FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:"pedidos@example.com"`
	FromName             string `yaml:"FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"Supplements Store"`
	ReceiptTemplateID    string `yaml:"RECEIPT_TEMPLATE_ID" env:"SENDGRID_RECEIPT_TEMPLATE_ID"`
	CommercialTemplateID string `yaml:"COMMERCIAL_TEMPLATE_ID" env:"SENDGRID_COMMERCIAL_TEMPLATE_ID"`
	OrdersInbox          string `yaml:"ORDERS_INBOX" env:"SENDGRID_ORDERS_INBOX" env-default:"pedidos@example.com"`
}

type Catalog struct {
	APIURL        string        `yaml:"api_url" env:"CATALOG_API_URL"`
	StaticPath    string        `yaml:"static_path" env:"CATALOG_STATIC_PATH"`
	Locales       []string      `yaml:"locales" env:"CATALOG_LOCALES" env-default:"es,en,ca"`
	DefaultLocale string        `yaml:"default_locale" env:"CATALOG_DEFAULT_LOCALE" env-default:"es"`
	Timeout       time.Duration `yaml:"timeout" env:"CATALOG_TIMEOUT" env-default:"10s"`
}

type Checkout struct {
	ReceiptThrottle time.Duration `yaml:"receipt_throttle" env:"CHECKOUT_RECEIPT_THROTTLE" env-default:"120s"`
	SuccessPath     string        `yaml:"success_path" env:"CHECKOUT_SUCCESS_PATH" env-default:"/pago-ok"`
	FailurePath     string        `yaml:"failure_path" env:"CHECKOUT_FAILURE_PATH" env-default:"/pago-ko"`
}

type OpenAI struct {
	BaseURL string `yaml:"base_url" env:"OPENAI_BASE_URL"`
	APIKey  string `yaml:"api_key" env:"OPENAI_API_KEY"`
	Model   string `yaml:"model" env:"OPENAI_MODEL" env-default:"gpt-4o-mini"`
}

type Chat struct {
	Provider        string        `yaml:"provider" env:"CHAT_PROVIDER" env-default:"http"`
	EndpointURL     string        `yaml:"endpoint_url" env:"CHAT_ENDPOINT_URL"`
	Timeout         time.Duration `yaml:"timeout" env:"CHAT_TIMEOUT" env-default:"20s"`
	MaxProducts     int           `yaml:"max_products" env:"CHAT_MAX_PRODUCTS" env-default:"30"`
	ContactEmail    string        `yaml:"contact_email" env:"CHAT_CONTACT_EMAIL" env-default:"info@example.com"`
	ContactPhone    string        `yaml:"contact_phone" env:"CHAT_CONTACT_PHONE"`
	ReturnPolicy    string        `yaml:"return_policy" env:"CHAT_RETURN_POLICY" env-default:"Returns accepted within 14 days for unopened products."`
	PaymentProvider string        `yaml:"payment_provider" env:"CHAT_PAYMENT_PROVIDER" env-default:"Redsys"`
	KnownDomains    []string      `yaml:"known_domains" env:"CHAT_KNOWN_DOMAINS" env-default:"amazon.es,amazon.com"`
	OpenAI          OpenAI        `yaml:"openai"`
}

// Partners covers both the collaborator portal and the commercial agents tool.
type Partners struct {
	CollaboratorsURL     string  `yaml:"collaborators_url" env:"COLLABORATORS_URL"`
	CollaboratorsPath    string  `yaml:"collaborators_path" env:"COLLABORATORS_PATH"`
	AgentsURL            string  `yaml:"agents_url" env:"AGENTS_URL"`
	AgentsPath           string  `yaml:"agents_path" env:"AGENTS_PATH"`
	FallbackUsername     string  `yaml:"fallback_username" env:"PARTNER_FALLBACK_USERNAME"`
	FallbackPasswordHash string  `yaml:"fallback_password_hash" env:"PARTNER_FALLBACK_PASSWORD_HASH"`
	FallbackName         string  `yaml:"fallback_name" env:"PARTNER_FALLBACK_NAME" env-default:"Backoffice"`
	VATRate              float64 `yaml:"vat_rate" env:"COMMERCIAL_VAT_RATE" env-default:"0.21"`
	MaxDiscountPercent   float64 `yaml:"max_discount_percent" env:"COMMERCIAL_MAX_DISCOUNT" env-default:"30"`
}

type Carousel struct {
	Interval time.Duration `yaml:"interval" env:"CAROUSEL_INTERVAL" env-default:"5s"`
	Visible  int           `yaml:"visible" env:"CAROUSEL_VISIBLE" env-default:"4"`
}

type Kafka struct {
	Brokers   []string `yaml:"brokers" env:"KAFKA_BROKERS"`
	Topic     string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"storefront.events"`
	Async     bool     `yaml:"async" env:"KAFKA_ASYNC" env-default:"true"`
	QueueSize int      `yaml:"queue_size" env:"KAFKA_QUEUE_SIZE" env-default:"256"`
}

type Telemetry struct {
	Enabled          bool   `yaml:"ENABLED" env:"OTEL_ENABLED" env-default:"false"`
	ServiceName      string `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"supplements-storefront"`
	ExporterEndpoint string `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_ENDPOINT" env-default:"localhost:4318"`
}

type Config struct {
	Env string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer   `yaml:"http_server"`
	Database     Database     `yaml:"database"`
	RedisConnect RedisConnect `yaml:"redis"`
	RateConfig   RateConfig   `yaml:"rateConfig"`
	Cache        CacheConfig  `yaml:"cache"`
	Security     Security     `yaml:"security"`
	Gateway      Gateway      `yaml:"gateway"`
	Stripe       Stripe       `yaml:"stripe"`
	SendGrid     SendGrid     `yaml:"sendgrid"`
	Catalog      Catalog      `yaml:"catalog"`
	Checkout     Checkout     `yaml:"checkout"`
	Chat         Chat         `yaml:"chat"`
	Partners     Partners     `yaml:"partners"`
	Carousel     Carousel     `yaml:"carousel"`
	Kafka        Kafka        `yaml:"kafka"`
	Telemetry    Telemetry    `yaml:"otel"`
}

func MustLoad() *Config {

	// .env is optional, real environment variables win
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			configPath = "config/local.yaml"
		}

	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return cfg

}

func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s/%d", r.Username, r.Password, r.Host, r.Port, r.DB)
}
