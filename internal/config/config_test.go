package config

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HospitalName != "City General Hospital" {
		t.Errorf("expected default hospital name, got %s", cfg.HospitalName)
	}
	if cfg.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Env)
	}
	if !cfg.SeedData {
		t.Error("expected SEED_DATA to default to true")
	}
	if cfg.PageSize != 20 {
		t.Errorf("expected default page size 20, got %d", cfg.PageSize)
	}
	if cfg.CurrencySymbol != "$" {
		t.Errorf("expected default currency $, got %s", cfg.CurrencySymbol)
	}
	if cfg.DemoPassword != "changeme" {
		t.Errorf("expected default demo password, got %s", cfg.DemoPassword)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HOSPITAL_NAME", "St. Mary")
	t.Setenv("SEED_DATA", "false")
	t.Setenv("PAGE_SIZE", "5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HospitalName != "St. Mary" {
		t.Errorf("HospitalName = %q, want St. Mary", cfg.HospitalName)
	}
	if cfg.SeedData {
		t.Error("expected SEED_DATA=false to disable seeding")
	}
	if cfg.PageSize != 5 {
		t.Errorf("PageSize = %d, want 5", cfg.PageSize)
	}
	if cfg.Level() != zerolog.DebugLevel {
		t.Errorf("Level() = %v, want debug", cfg.Level())
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
}

func validConfig() *Config {
	return &Config{
		HospitalName: "Test",
		LogLevel:     "info",
		Locale:       "en-US",
		PageSize:     10,
	}
}

func TestValidate_LogLevel(t *testing.T) {
	c := validConfig()
	c.LogLevel = "loud"
	err := c.Validate()
	if err == nil || !strings.Contains(err.Error(), "LOG_LEVEL") {
		t.Errorf("expected LOG_LEVEL error, got %v", err)
	}
}

func TestValidate_Locale(t *testing.T) {
	c := validConfig()
	c.Locale = "not a locale!"
	err := c.Validate()
	if err == nil || !strings.Contains(err.Error(), "LOCALE") {
		t.Errorf("expected LOCALE error, got %v", err)
	}
}

func TestValidate_PageSize(t *testing.T) {
	c := validConfig()
	c.PageSize = 0
	err := c.Validate()
	if err == nil || !strings.Contains(err.Error(), "PAGE_SIZE") {
		t.Errorf("expected PAGE_SIZE error, got %v", err)
	}
}

func TestValidate_HospitalName(t *testing.T) {
	c := validConfig()
	c.HospitalName = ""
	if err := c.Validate(); err == nil {
		t.Error("expected error for empty HOSPITAL_NAME")
	}
}

func TestConfig_Tag(t *testing.T) {
	c := validConfig()
	c.Locale = "de-DE"
	if c.Tag() != language.MustParse("de-DE") {
		t.Errorf("Tag() = %v, want de-DE", c.Tag())
	}
	c.Locale = "!!"
	if c.Tag() != language.AmericanEnglish {
		t.Errorf("Tag() = %v, want en-US fallback", c.Tag())
	}
}

func TestConfig_Level_Fallback(t *testing.T) {
	c := validConfig()
	c.LogLevel = ""
	if c.Level() != zerolog.InfoLevel {
		t.Errorf("Level() = %v, want info", c.Level())
	}
}
