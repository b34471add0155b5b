package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	envPort             = "PORT"
	envBusinessTimezone = "BUSINESS_TIMEZONE"
	envPricingFile      = "PRICING_FILE"
	envRedisAddr        = "REDIS_ADDR"
	envRedisPassword    = "REDIS_PASSWORD"
	envRedisDB          = "REDIS_DB"
	envAutoCreateTables = "DYNAMODB_AUTO_CREATE"
	envLogLevel         = "LOG_LEVEL"

	defaultTimezone = "America/Chicago"
)

// Settings is the process configuration read from the environment (and .env,
// which godotenv/autoload merges in before main runs).
type Settings struct {
	Port             int
	Location         *time.Location
	PricingFile      string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	AutoCreateTables bool
	LogLevel         string
}

func LoadSettings() (Settings, error) {
	s := Settings{
		PricingFile:   strings.TrimSpace(os.Getenv(envPricingFile)),
		RedisAddr:     getenvDefault(envRedisAddr, "localhost:6379"),
		RedisPassword: os.Getenv(envRedisPassword),
		LogLevel:      getenvDefault(envLogLevel, "info"),
	}

	var err error
	if s.Port, err = strconv.Atoi(getenvDefault(envPort, "8080")); err != nil {
		return Settings{}, fmt.Errorf("%s must be int value: %w", envPort, err)
	}
	if s.RedisDB, err = strconv.Atoi(getenvDefault(envRedisDB, "0")); err != nil {
		return Settings{}, fmt.Errorf("%s must be int value: %w", envRedisDB, err)
	}
	if s.Location, err = LoadLocation(os.Getenv(envBusinessTimezone)); err != nil {
		return Settings{}, err
	}
	s.AutoCreateTables, _ = strconv.ParseBool(os.Getenv(envAutoCreateTables))
	return s, nil
}

// LoadLocation resolves the business timezone used for month bucketing.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", envBusinessTimezone, name, err)
	}
	return loc, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
