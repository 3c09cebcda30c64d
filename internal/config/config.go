package config

// Supported values for DatabaseConfig.Driver.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// ShutdownTimeoutSeconds bounds graceful shutdown of in-flight requests.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`

	RateLimitRPS   int `mapstructure:"rate_limit_rps"   validate:"gte=0"`
	RateLimitBurst int `mapstructure:"rate_limit_burst" validate:"gte=0"`

	// CORSAllowedOrigins is a comma separated list of origins, "*" allows all.
	CORSAllowedOrigins string `mapstructure:"cors_allowed_origins"`
}

// DatabaseConfig contains all persistence-related configuration settings.
type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"         validate:"required,oneof=postgres memory"`
	URL          string `mapstructure:"url"            validate:"required_if=Driver postgres"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns int    `mapstructure:"max_idle_conns" validate:"gte=0"`

	// AutoMigrate applies pending migrations on start-up.
	AutoMigrate bool `mapstructure:"auto_migrate"`
}
