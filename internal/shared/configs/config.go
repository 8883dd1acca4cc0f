package configs

import "time"

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Reports  ReportsConfig  `mapstructure:"reports" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// DatabaseConfig holds the MySQL connection settings. Credentials may also be
// supplied through METRICS_REPORT_DATABASE_* environment variables, which
// take precedence over the file.
type DatabaseConfig struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name" validate:"required"`

	MaxOpenConns    int `mapstructure:"max_open_conns" validate:"required,min=1"`
	MaxIdleConns    int `mapstructure:"max_idle_conns" validate:"required,min=1"`
	ConnMaxLifetime int `mapstructure:"conn_max_lifetime" validate:"required,min=1"` // minutes

	ConnectAttempts   int `mapstructure:"connect_attempts" validate:"required,min=1"`
	ConnectRetryDelay int `mapstructure:"connect_retry_delay" validate:"required,min=1"` // seconds
}

// ConnMaxLifetimeDuration returns the maximum lifetime of a pooled connection.
func (c DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(c.ConnMaxLifetime) * time.Minute
}

// ConnectRetryDelayDuration returns the fixed delay between connect attempts.
func (c DatabaseConfig) ConnectRetryDelayDuration() time.Duration {
	return time.Duration(c.ConnectRetryDelay) * time.Second
}

// ReportsConfig maps project ids to the MySQL tables their metric rows live
// in. DefaultProject names the catalog entry served by the unscoped /metrics
// routes and must be one of the Projects keys.
type ReportsConfig struct {
	DefaultProject string            `mapstructure:"default_project" validate:"required"`
	Projects       map[string]string `mapstructure:"projects" validate:"required,min=1"`
}
