package config

import "time"

// AppConfig is the process-wide application configuration, set by Load.
var AppConfig *Config

type Config struct {
	Environment string
	HTTPPort    string
	Auth        AuthConfig
	Database    DatabaseConfig
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}
