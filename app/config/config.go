package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration. Reminder email credentials
// are not config-file material; the user enters them on the settings
// page at runtime.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Notify   NotifyConfig   `yaml:"notify"`
	Calendar CalendarConfig `yaml:"calendar"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type SMTPConfig struct {
	Host           string        `yaml:"host"`
	Port           int           `yaml:"port"`
	TimeoutSeconds int           `yaml:"timeout_seconds"`
	Timeout        time.Duration `yaml:"-"`
}

type NotifyConfig struct {
	HorizonDays int `yaml:"horizon_days"`
}

type CalendarConfig struct {
	CellCap int `yaml:"cell_cap"`
}

var AppConfig *Config

// Load reads config.yaml (path overridable via CONFIG_FILE), applies
// environment overrides and fills in defaults. A missing file is not
// an error; defaults apply.
func Load() (*Config, error) {
	cfg := &Config{
		Server:   ServerConfig{Addr: ":8080"},
		SMTP:     SMTPConfig{Host: "smtp.gmail.com", Port: 465, TimeoutSeconds: 10},
		Notify:   NotifyConfig{HorizonDays: 2},
		Calendar: CalendarConfig{CellCap: 6},
	}

	path := getEnv("CONFIG_FILE", "config.yaml")
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		log.Printf("Loaded configuration from %s", path)
	case os.IsNotExist(err):
		log.Printf("No %s found, using defaults", path)
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	overrideFromEnv(cfg)

	if cfg.Notify.HorizonDays <= 0 {
		cfg.Notify.HorizonDays = 2
	}
	if cfg.Calendar.CellCap <= 0 {
		cfg.Calendar.CellCap = 6
	}
	if cfg.SMTP.TimeoutSeconds <= 0 {
		cfg.SMTP.TimeoutSeconds = 10
	}
	cfg.SMTP.Timeout = time.Duration(cfg.SMTP.TimeoutSeconds) * time.Second

	AppConfig = cfg
	return cfg, nil
}

func overrideFromEnv(cfg *Config) {
	cfg.Server.Addr = getEnv("ADDR", cfg.Server.Addr)
	cfg.SMTP.Host = getEnv("SMTP_HOST", cfg.SMTP.Host)
	cfg.SMTP.Port = getEnvInt("SMTP_PORT", cfg.SMTP.Port)
	cfg.SMTP.TimeoutSeconds = getEnvInt("SMTP_TIMEOUT_SECONDS", cfg.SMTP.TimeoutSeconds)
	cfg.Notify.HorizonDays = getEnvInt("NOTIFY_HORIZON_DAYS", cfg.Notify.HorizonDays)
	cfg.Calendar.CellCap = getEnvInt("CALENDAR_CELL_CAP", cfg.Calendar.CellCap)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Ignoring invalid %s=%q: %v", key, v, err)
		return fallback
	}
	return n
}
