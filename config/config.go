package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Govind-619/OrderLadder/utils"
)

// Store drivers
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Port        string `mapstructure:"PORT"`
	Env         string `mapstructure:"ENV"`
	StoreDriver string `mapstructure:"STORE_DRIVER"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSSLMode  string `mapstructure:"DB_SSLMODE"`

	RazorpayKey    string `mapstructure:"RAZORPAY_KEY"`
	RazorpaySecret string `mapstructure:"RAZORPAY_SECRET"`
	Currency       string `mapstructure:"CURRENCY"`
	UnitPrice      int64  `mapstructure:"UNIT_PRICE"`

	JWTSecret         string `mapstructure:"JWT_SECRET"`
	SessionSecret     string `mapstructure:"SESSION_SECRET"`
	AdminEmail        string `mapstructure:"ADMIN_EMAIL"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`

	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`
	NotifyEmail  string `mapstructure:"NOTIFY_EMAIL"`

	NATSURL     string `mapstructure:"NATS_URL"`
	NATSSubject string `mapstructure:"NATS_SUBJECT"`

	LogDir        string `mapstructure:"LOG_DIR"`
	LogDebug      bool   `mapstructure:"LOG_DEBUG"`
	AllowedOrigin string `mapstructure:"ALLOWED_ORIGIN"`
}

var defaults = map[string]interface{}{
	"PORT":                "8080",
	"ENV":                 "development",
	"STORE_DRIVER":        StorePostgres,
	"DB_HOST":             "localhost",
	"DB_PORT":             "5432",
	"DB_USER":             "postgres",
	"DB_PASSWORD":         "postgres",
	"DB_NAME":             "orderladder",
	"DB_SSLMODE":          "disable",
	"RAZORPAY_KEY":        "",
	"RAZORPAY_SECRET":     "",
	"CURRENCY":            "INR",
	"UNIT_PRICE":          10,
	"JWT_SECRET":          "",
	"SESSION_SECRET":      "",
	"ADMIN_EMAIL":         "",
	"ADMIN_PASSWORD_HASH": "",
	"SMTP_HOST":           "",
	"SMTP_PORT":           587,
	"SMTP_USERNAME":       "",
	"SMTP_PASSWORD":       "",
	"SMTP_FROM":           "",
	"NOTIFY_EMAIL":        "",
	"NATS_URL":            "",
	"NATS_SUBJECT":        "payments.recorded",
	"LOG_DIR":             "logs",
	"LOG_DEBUG":           false,
	"ALLOWED_ORIGIN":      "*",
}

// LoadConfig loads configuration from an optional .env file and the environment
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %v", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %v", err)
	}
	cfg.StoreDriver = strings.ToLower(cfg.StoreDriver)
	return cfg, nil
}

// Validate checks the settings the server cannot start without
func (c *Config) Validate() error {
	var missing []string
	if c.RazorpayKey == "" {
		missing = append(missing, "RAZORPAY_KEY")
	}
	if c.RazorpaySecret == "" {
		missing = append(missing, "RAZORPAY_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required settings: %s", strings.Join(missing, ", "))
	}
	if c.UnitPrice <= 0 {
		return fmt.Errorf("UNIT_PRICE must be positive, got %d", c.UnitPrice)
	}
	if c.StoreDriver != StorePostgres && c.StoreDriver != StoreMemory {
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	return nil
}

// AdminEnabled reports whether the admin routes can be served
func (c *Config) AdminEnabled() bool {
	return c.JWTSecret != "" && c.AdminEmail != "" && c.AdminPasswordHash != ""
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DSN returns the PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// Email returns the SMTP settings
func (c *Config) Email() utils.EmailConfig {
	return utils.EmailConfig{
		Host:     c.SMTPHost,
		Port:     c.SMTPPort,
		Username: c.SMTPUsername,
		Password: c.SMTPPassword,
		From:     c.SMTPFrom,
	}
}
