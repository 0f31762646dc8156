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
// - optional credentials (mail, SMS, broker, cache) leave the dependent component disabled when empty
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Mail      MailConfig
	SMS       SMSConfig
	Reminder  ReminderConfig
	Outbox    OutboxConfig
	Site      SiteConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	AMQP      AMQPConfig
	AdminSeed AdminSeedConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"5000"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName      string `envconfig:"DB_NAME" required:"true"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
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

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// MailConfig mirrors the classic MAIL_* variables of the outbound SMTP relay.
type MailConfig struct {
	Server        string        `envconfig:"MAIL_SERVER" default:"smtp.gmail.com"`
	Port          int           `envconfig:"MAIL_PORT" default:"587"`
	UseTLS        bool          `envconfig:"MAIL_USE_TLS" default:"true"`
	UseSSL        bool          `envconfig:"MAIL_USE_SSL" default:"false"`
	Username      string        `envconfig:"MAIL_USERNAME"`
	Password      string        `envconfig:"MAIL_PASSWORD"`
	DefaultSender string        `envconfig:"MAIL_DEFAULT_SENDER" default:"noreply@holisticweb.com"`
	Timeout       time.Duration `envconfig:"MAIL_TIMEOUT" default:"10s"`
}

func (c MailConfig) Configured() bool {
	return c.Server != "" && c.Username != "" && c.Password != ""
}

type SMSConfig struct {
	AccountSID  string `envconfig:"TWILIO_SID"`
	AuthToken   string `envconfig:"TWILIO_AUTH_TOKEN"`
	FromNumber  string `envconfig:"TWILIO_PHONE"`
	CountryCode string `envconfig:"SMS_DEFAULT_COUNTRY_CODE" default:"1"`
}

func (c SMSConfig) Configured() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != ""
}

type ReminderConfig struct {
	Enabled  bool          `envconfig:"REMINDER_ENABLED" default:"true"`
	Interval time.Duration `envconfig:"REMINDER_INTERVAL" default:"5m"`
	Lead     time.Duration `envconfig:"REMINDER_LEAD" default:"20m"`
	Slop     time.Duration `envconfig:"REMINDER_SLOP" default:"5m"`
}

type OutboxConfig struct {
	Enabled      bool          `envconfig:"OUTBOX_ENABLED" default:"true"`
	PollInterval time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"5s"`
	BatchSize    int32         `envconfig:"OUTBOX_BATCH_SIZE" default:"20"`
	Concurrency  int           `envconfig:"OUTBOX_CONCURRENCY" default:"4"`
	MaxAttempts  int32         `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"3"`
	RetryBackoff time.Duration `envconfig:"OUTBOX_RETRY_BACKOFF" default:"1m"`
	// how often jobs stuck in processing are requeued
	RecoverInterval time.Duration `envconfig:"OUTBOX_RECOVER_INTERVAL" default:"1m"`
}

type SiteConfig struct {
	Name            string `envconfig:"SITE_NAME" default:"HolisticWeb"`
	AdminEmail      string `envconfig:"ADMIN_EMAIL" default:""`
	DisplayTimeZone string `envconfig:"DISPLAY_TIMEZONE" default:"America/New_York"`
	DefaultLanguage string `envconfig:"DEFAULT_LANGUAGE" default:"ENG"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type RateLimitConfig struct {
	Enabled        bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Capacity       int           `envconfig:"RATE_LIMIT_CAPACITY" default:"10"`
	RefillTokens   int           `envconfig:"RATE_LIMIT_REFILL_TOKENS" default:"1"`
	RefillInterval time.Duration `envconfig:"RATE_LIMIT_REFILL_INTERVAL" default:"6s"`
	TTL            time.Duration `envconfig:"RATE_LIMIT_TTL" default:"10m"`
	Prefix         string        `envconfig:"RATE_LIMIT_PREFIX" default:"rl"`
}

type AMQPConfig struct {
	URL   string `envconfig:"AMQP_URL" default:""`
	Queue string `envconfig:"AMQP_BOOKING_QUEUE" default:"booking.created"`
}

// AdminSeedConfig creates the first admin account at startup when all fields are set.
type AdminSeedConfig struct {
	Username string `envconfig:"ADMIN_SEED_USERNAME" default:"admin"`
	Email    string `envconfig:"ADMIN_SEED_EMAIL" default:""`
	Password string `envconfig:"ADMIN_SEED_PASSWORD" default:""`
}

func (c AdminSeedConfig) Configured() bool {
	return c.Username != "" && c.Email != "" && c.Password != ""
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
			TimeZone: "UTC",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Mail: MailConfig{
			DefaultSender: "noreply@holisticweb.com",
			Timeout:       10 * time.Second,
		},
		SMS: SMSConfig{CountryCode: "1"},
		Reminder: ReminderConfig{
			Interval: 5 * time.Minute,
			Lead:     20 * time.Minute,
			Slop:     5 * time.Minute,
		},
		Outbox: OutboxConfig{
			PollInterval:    time.Second,
			BatchSize:       10,
			Concurrency:     2,
			MaxAttempts:     3,
			RetryBackoff:    time.Second,
			RecoverInterval: time.Minute,
		},
		Site: SiteConfig{
			Name:            "HolisticWeb",
			AdminEmail:      "admin@holisticweb.com",
			DisplayTimeZone: "America/New_York",
			DefaultLanguage: "ENG",
		},
	}
}
