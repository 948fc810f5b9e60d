package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the reconciler.
type Config struct {
	PaymentAPI PaymentAPIConfig `mapstructure:"payment_api"`
	OrderAPI   OrderAPIConfig   `mapstructure:"order_api"`
	Login      LoginConfig      `mapstructure:"login"`
	Token      TokenConfig      `mapstructure:"token"`
	Report     ReportConfig     `mapstructure:"report"`
	Email      EmailConfig      `mapstructure:"email"`
	Retry      RetryConfig      `mapstructure:"retry"`
	Log        LogConfig        `mapstructure:"log"`
}

// PaymentAPIConfig holds payment API settings.
type PaymentAPIConfig struct {
	URL      string        `mapstructure:"url" validate:"required,url"`
	Token    string        `mapstructure:"token" validate:"required"`
	PageSize int           `mapstructure:"page_size" validate:"gt=0"`
	MaxPages int           `mapstructure:"max_pages" validate:"gt=0"`
	Gateways string        `mapstructure:"gateways"`
	Statuses string        `mapstructure:"statuses"`
	DaysBack int           `mapstructure:"days_back" validate:"gte=0"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// OrderAPIConfig holds order-management API settings.
type OrderAPIConfig struct {
	URL      string        `mapstructure:"url" validate:"required,url"`
	Token    string        `mapstructure:"token" validate:"required"`
	AuthType string        `mapstructure:"auth_type" validate:"oneof=Bearer Basic"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// LoginConfig holds the browser login settings used to refresh the token.
type LoginConfig struct {
	URL           string        `mapstructure:"url" validate:"required,url"`
	User          string        `mapstructure:"user" validate:"required"`
	Password      string        `mapstructure:"password" validate:"required"`
	UserXPath     string        `mapstructure:"user_xpath" validate:"required"`
	PasswordXPath string        `mapstructure:"password_xpath" validate:"required"`
	Headless      bool          `mapstructure:"headless"`
	Timeout       time.Duration `mapstructure:"timeout"`
	PollAttempts  int           `mapstructure:"poll_attempts" validate:"gt=0"`
	PollInterval  time.Duration `mapstructure:"poll_interval"`
}

// TokenConfig tells where a refreshed token is persisted.
type TokenConfig struct {
	EnvPath string `mapstructure:"env_path"`
	EnvKey  string `mapstructure:"env_key"`
}

// ReportConfig holds report output settings.
type ReportConfig struct {
	Dir string `mapstructure:"dir"`
}

// EmailConfig holds SMTP settings.
type EmailConfig struct {
	Host     string   `mapstructure:"host"`
	Port     int      `mapstructure:"port"`
	Username string   `mapstructure:"username"`
	Password string   `mapstructure:"password"`
	From     string   `mapstructure:"from"`
	To       []string `mapstructure:"to"`
}

// RetryConfig holds exponential backoff settings for API calls.
type RetryConfig struct {
	MaxRetries        uint64        `mapstructure:"max_retries"`
	InitialInterval   time.Duration `mapstructure:"initial_interval"`
	MaxBackoffTime    time.Duration `mapstructure:"max_backoff_time"`
	BackoffMultiplier float64       `mapstructure:"backoff_multiplier"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
	Dir   string `mapstructure:"dir"`
}

// Environment variable names kept from the deployment .env files.
var legacyEnv = map[string]string{
	"payment_api.url":      "MAXPAYMENT_API_URL",
	"payment_api.token":    "MAXIMA_AUTH_TOKEN",
	"order_api.url":        "WINTHOR_API_URL",
	"order_api.token":      "WINTHOR_AUTH_TOKEN",
	"login.url":            "MAXIMA_URL",
	"login.user":           "MAXIMA_USER",
	"login.password":       "MAXIMA_PASS",
	"login.user_xpath":     "XPATH_USER",
	"login.password_xpath": "XPATH_PASS",
}

const envPrefix = "RECONCILER"

// Load reads configuration from defaults, an optional config file, the .env
// file and the environment. An explicit configPath must exist.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	envPath := v.GetString("token.env_path")
	if p := os.Getenv(envPrefix + "_TOKEN_ENV_PATH"); p != "" {
		envPath = p
	}
	// Real environment variables win over the .env file, except for the
	// stored token (see applyStoredToken).
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file %s: %w", envPath, err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range legacyEnv {
		if err := v.BindEnv(key, envPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Token.EnvPath = envPath

	if err := applyStoredToken(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyStoredToken makes the token last written to the .env file win over the
// process environment and the config file, so a refreshed token is used even
// when a stale one is still exported in the shell.
func applyStoredToken(cfg *Config) error {
	stored, err := godotenv.Read(cfg.Token.EnvPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read env file %s: %w", cfg.Token.EnvPath, err)
	}
	if token := stored[cfg.Token.EnvKey]; token != "" {
		cfg.PaymentAPI.Token = token
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("payment_api.page_size", 100)
	v.SetDefault("payment_api.max_pages", 50)
	v.SetDefault("payment_api.gateways", "3")
	v.SetDefault("payment_api.statuses", "5")
	v.SetDefault("payment_api.days_back", 0)
	v.SetDefault("payment_api.timeout", 30*time.Second)

	v.SetDefault("order_api.auth_type", "Bearer")
	v.SetDefault("order_api.timeout", 30*time.Second)

	v.SetDefault("login.headless", true)
	v.SetDefault("login.timeout", 60*time.Second)
	v.SetDefault("login.poll_attempts", 20)
	v.SetDefault("login.poll_interval", 500*time.Millisecond)

	v.SetDefault("token.env_path", ".env")
	v.SetDefault("token.env_key", "MAXIMA_AUTH_TOKEN")

	v.SetDefault("report.dir", "logs")

	v.SetDefault("email.host", "smtp.gmail.com")
	v.SetDefault("email.port", 587)
	v.SetDefault("email.username", "")
	v.SetDefault("email.password", "")
	v.SetDefault("email.from", "")
	v.SetDefault("email.to", []string{})

	v.SetDefault("retry.max_retries", 3)
	v.SetDefault("retry.initial_interval", 500*time.Millisecond)
	v.SetDefault("retry.max_backoff_time", 2*time.Minute)
	v.SetDefault("retry.backoff_multiplier", 1.5)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "logs")
}

var validate = validator.New()

// ValidateReconcile checks the settings a reconciliation run needs.
func (c *Config) ValidateReconcile() error {
	if err := validate.Struct(c.PaymentAPI); err != nil {
		return fmt.Errorf("invalid payment_api config: %w", err)
	}
	if err := validate.Struct(c.OrderAPI); err != nil {
		return fmt.Errorf("invalid order_api config: %w", err)
	}
	return nil
}

// ValidateLogin checks the settings a token refresh needs.
func (c *Config) ValidateLogin() error {
	if err := validate.Struct(c.Login); err != nil {
		return fmt.Errorf("invalid login config: %w", err)
	}
	return nil
}

// ValidateOrderAPI checks the settings an order lookup needs.
func (c *Config) ValidateOrderAPI() error {
	if err := validate.Struct(c.OrderAPI); err != nil {
		return fmt.Errorf("invalid order_api config: %w", err)
	}
	return nil
}
