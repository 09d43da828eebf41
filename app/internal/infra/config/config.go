package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"example.com/naturemart/app/internal/domain/currency"
)

const envPrefix = "NATUREMART"

// DefaultJWTSecret is only fit for local development.
const DefaultJWTSecret = "dev-secret-change-me"

type Config struct {
	HTTPAddr      string             `mapstructure:"http_addr"`
	LogLevel      string             `mapstructure:"log_level"`
	JWTSecret     string             `mapstructure:"jwt_secret"`
	JWTTTL        time.Duration      `mapstructure:"jwt_ttl"`
	BcryptCost    int                `mapstructure:"bcrypt_cost"`
	FeaturedLimit int                `mapstructure:"featured_limit"`
	Rates         map[string]float64 `mapstructure:"rates"`

	// CartMaxSessions and CartSessionTTL bound the anonymous cart registry.
	CartMaxSessions int           `mapstructure:"cart_max_sessions"`
	CartSessionTTL  time.Duration `mapstructure:"cart_session_ttl"`

	// SMTPAddr is the relay for newsletter mail; empty logs mail instead.
	SMTPAddr string `mapstructure:"smtp_addr"`
	MailFrom string `mapstructure:"mail_from"`
}

// Load reads configuration from defaults, an optional config file,
// NATUREMART_* environment variables and command line flags, in increasing
// order of precedence.
func Load(args []string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	flags := pflag.NewFlagSet("naturemart", pflag.ContinueOnError)
	configFile := flags.String("config", "", "path to a YAML/TOML/JSON config file")
	flags.String("http-addr", v.GetString("http_addr"), "HTTP listen address")
	flags.String("log-level", v.GetString("log_level"), "log level (debug, info, warn, error)")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	if err := v.BindPFlag("http_addr", flags.Lookup("http-addr")); err != nil {
		return Config{}, err
	}
	if err := v.BindPFlag("log_level", flags.Lookup("log-level")); err != nil {
		return Config{}, err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", *configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("jwt_secret", DefaultJWTSecret)
	v.SetDefault("jwt_ttl", 24*time.Hour)
	v.SetDefault("bcrypt_cost", 10)
	v.SetDefault("featured_limit", 8)
	v.SetDefault("cart_max_sessions", 10000)
	v.SetDefault("cart_session_ttl", 24*time.Hour)
	v.SetDefault("smtp_addr", "")
	v.SetDefault("mail_from", "hello@ceylonnaturemart.example")
	for c, rate := range currency.DefaultRates() {
		v.SetDefault("rates."+strings.ToLower(string(c)), rate)
	}
}

func (c Config) Validate() error {
	if c.HTTPAddr == "" {
		return errors.New("http_addr is required")
	}
	if c.JWTSecret == "" {
		return errors.New("jwt_secret is required")
	}
	if c.SMTPAddr != "" && c.MailFrom == "" {
		return errors.New("mail_from is required when smtp_addr is set")
	}
	if c.CartMaxSessions < 0 || c.CartSessionTTL < 0 {
		return errors.New("cart_max_sessions and cart_session_ttl must not be negative")
	}
	if c.JWTTTL <= 0 {
		return errors.New("jwt_ttl must be positive")
	}
	if _, err := c.ExchangeRates(); err != nil {
		return err
	}
	return nil
}

// ExchangeRates converts the configured rate table into currency.Rates.
func (c Config) ExchangeRates() (currency.Rates, error) {
	rates := make(currency.Rates, len(c.Rates))
	for code, rate := range c.Rates {
		cur, err := currency.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("rates.%s: %w", code, err)
		}
		rates[cur] = rate
	}
	if err := rates.Validate(); err != nil {
		return nil, fmt.Errorf("rates: %w", err)
	}
	return rates, nil
}

// UsesDefaultJWTSecret reports whether tokens are signed with the
// development secret.
func (c Config) UsesDefaultJWTSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}
