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
	Server ServerConfig
	DB     DBConfig
	Redis  RedisConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Mpesa  MpesaConfig
	Sweep  SweepConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Africa/Nairobi"`
}

type RedisConfig struct {
	Addr            string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password        string        `envconfig:"REDIS_PASSWORD" default:""`
	DB              int           `envconfig:"REDIS_DB" default:"0"`
	AvailabilityTTL time.Duration `envconfig:"REDIS_AVAILABILITY_TTL" default:"5s"`
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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Africa/Nairobi"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"10800"` // 3*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// MpesaConfig carries Daraja STK push credentials. The callback URL must be
// publicly reachable by the gateway.
type MpesaConfig struct {
	BaseURL        string        `envconfig:"MPESA_BASE_URL" default:"https://sandbox.safaricom.co.ke"`
	ConsumerKey    string        `envconfig:"MPESA_CONSUMER_KEY" required:"true"`
	ConsumerSecret string        `envconfig:"MPESA_CONSUMER_SECRET" required:"true"`
	ShortCode      string        `envconfig:"MPESA_SHORT_CODE" required:"true"`
	Passkey        string        `envconfig:"MPESA_PASSKEY" required:"true"`
	CallbackURL    string        `envconfig:"MPESA_CALLBACK_URL" required:"true"`
	Timeout        time.Duration `envconfig:"MPESA_TIMEOUT" default:"30s"`
}

type SweepConfig struct {
	Interval       time.Duration `envconfig:"SWEEP_INTERVAL" default:"5m"`
	PendingTimeout time.Duration `envconfig:"SWEEP_PENDING_TIMEOUT" default:"2h"`
	CallbackGrace  time.Duration `envconfig:"SWEEP_CALLBACK_GRACE" default:"1m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
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
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Africa/Nairobi",
		},
		Redis: RedisConfig{
			Addr:            "localhost:16379",
			AvailabilityTTL: time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Africa/Nairobi",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 10800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Mpesa: MpesaConfig{
			BaseURL:     "http://localhost:18080",
			ShortCode:   "174379",
			CallbackURL: "http://localhost:8889/api/payments/mpesa/callback",
			Timeout:     5 * time.Second,
		},
		Sweep: SweepConfig{
			Interval:       time.Minute,
			PendingTimeout: time.Hour,
			CallbackGrace:  time.Second,
		},
	}
}
