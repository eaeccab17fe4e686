package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Retry    RetryConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	TLSCertFile     string
	TLSKeyFile      string
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver         string // "postgres" or "sqlserver"
	Host           string
	Port           int
	Username       string
	Password       string
	Database       string
	SSLMode        string
	ConnectTimeout int // in seconds
}

// RetryConfig contains connection retry configuration
type RetryConfig struct {
	MaxRetries  int
	BaseDelayMs int
	MaxDelayMs  int
	Multiplier  float64
	Jitter      bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
