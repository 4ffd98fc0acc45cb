package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port       int    `yaml:"port"`
	GinMode    string `yaml:"gin_mode"`
	APIVersion string `yaml:"api_version"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
	TTL    string `yaml:"ttl"`
}

type SubscriptionConfig struct {
	TTL string `yaml:"ttl"`
}

type ConfigFile struct {
	App          AppConfig          `yaml:"app"`
	Database     DatabaseConfig     `yaml:"database"`
	Redis        RedisConfig        `yaml:"redis"`
	JWT          JWTConfig          `yaml:"jwt"`
	Subscription SubscriptionConfig `yaml:"subscription"`
}

// Config holds the resolved runtime configuration. The JWT secret is
// loaded once here and never mutated for the process lifetime.
type Config struct {
	Port            string
	GinMode         string
	APIVersion      string
	DSN             string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	JWTSecret       string
	JWTIssuer       string
	TokenTTL        time.Duration
	SubscriptionTTL time.Duration
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads the yaml config file at path and applies environment
// overrides (PORT, DATABASE_DSN, REDIS_ADDR, JWT_SECRET).
func Load(path string) (*Config, error) {
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	tokenTTL, err := time.ParseDuration(env("JWT_TTL", configFile.JWT.TTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT TTL: %w", err)
	}

	subTTL := configFile.Subscription.TTL
	if subTTL == "" {
		subTTL = "720h"
	}
	subscriptionTTL, err := time.ParseDuration(subTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid subscription TTL: %w", err)
	}

	apiVersion := configFile.App.APIVersion
	if apiVersion == "" {
		apiVersion = "v1"
	}

	redisDB := configFile.Redis.DB
	if v := os.Getenv("REDIS_DB"); v != "" {
		redisDB, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
	}

	cfg := &Config{
		Port:            env("PORT", fmt.Sprintf("%d", configFile.App.Port)),
		GinMode:         env("GIN_MODE", configFile.App.GinMode),
		APIVersion:      apiVersion,
		DSN:             env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:       env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:   env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:         redisDB,
		JWTSecret:       env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:       env("JWT_ISSUER", configFile.JWT.Issuer),
		TokenTTL:        tokenTTL,
		SubscriptionTTL: subscriptionTTL,
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is required (jwt.secret or JWT_SECRET)")
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
