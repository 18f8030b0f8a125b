package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Site     SiteConfig
	DB       DBConfig
	Redis    RedisConfig
	Commerce CommerceConfig
	Webhook  WebhookConfig
	CORS     CORSConfig
	Log      LogConfig
	Session  SessionConfig
	Cookie   CookieConfig
	Cache    CacheConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type SiteConfig struct {
	// Public origin of the storefront; used for the post-checkout return URL
	URL string `envconfig:"SITE_URL" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
}

type RedisConfig struct {
	// Empty address keeps session state in process memory
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CommerceConfig struct {
	StoreDomain string        `envconfig:"COMMERCE_STORE_DOMAIN" required:"true"`
	AccessToken string        `envconfig:"COMMERCE_ACCESS_TOKEN" required:"true"`
	APIVersion  string        `envconfig:"COMMERCE_API_VERSION" default:"2025-01"`
	Timeout     time.Duration `envconfig:"COMMERCE_TIMEOUT" default:"10s"`
}

type WebhookConfig struct {
	// Empty secret disables signature verification (platform test deliveries are unsigned)
	Secret string `envconfig:"WEBHOOK_SECRET" default:""`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type SessionConfig struct {
	Secret   string `envconfig:"SESSION_SECRET" required:"true"`
	Duration string `envconfig:"SESSION_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type CacheConfig struct {
	CatalogTTL time.Duration `envconfig:"CACHE_CATALOG_TTL" default:"5m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *CommerceConfig) GraphQLEndpoint() string {
	return fmt.Sprintf("https://%s/api/%s/graphql.json", c.StoreDomain, c.APIVersion)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Site: SiteConfig{
			URL: "https://storefront.example",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
		},
		Commerce: CommerceConfig{
			StoreDomain: "test-shop.example",
			AccessToken: "test-token",
			APIVersion:  "2025-01",
			Timeout:     5 * time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Session: SessionConfig{
			Secret:   "test-session-secret",
			Duration: "24h",
		},
		Cache: CacheConfig{
			CatalogTTL: 5 * time.Minute,
		},
	}
}
