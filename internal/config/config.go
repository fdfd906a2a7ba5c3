package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

type Config struct {
	HospitalName   string `mapstructure:"HOSPITAL_NAME"`
	Env            string `mapstructure:"ENV"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	SeedData       bool   `mapstructure:"SEED_DATA"`
	Locale         string `mapstructure:"LOCALE"`
	CurrencySymbol string `mapstructure:"CURRENCY_SYMBOL"`
	PageSize       int    `mapstructure:"PAGE_SIZE"`
	DemoPassword   string `mapstructure:"DEMO_PASSWORD"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("HOSPITAL_NAME", "City General Hospital")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SEED_DATA", true)
	v.SetDefault("LOCALE", "en-US")
	v.SetDefault("CURRENCY_SYMBOL", "$")
	v.SetDefault("PAGE_SIZE", 20)
	v.SetDefault("DEMO_PASSWORD", "changeme")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("HOSPITAL_NAME")
	v.BindEnv("ENV")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("SEED_DATA")
	v.BindEnv("LOCALE")
	v.BindEnv("CURRENCY_SYMBOL")
	v.BindEnv("PAGE_SIZE")
	v.BindEnv("DEMO_PASSWORD")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Level returns the parsed LOG_LEVEL, falling back to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// Tag returns the parsed LOCALE, falling back to American English.
func (c *Config) Tag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

// Validate checks the values a console session depends on.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level: %w", c.LogLevel, err)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("LOCALE %q is not a valid BCP 47 tag: %w", c.Locale, err)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	if c.HospitalName == "" {
		return fmt.Errorf("HOSPITAL_NAME is required")
	}
	return nil
}
