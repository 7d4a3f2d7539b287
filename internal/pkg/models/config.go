package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Admin     AdminConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	OTP       OTPConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
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
	ReadTimeout     int // in seconds
	WriteTimeout    int // in seconds
	ShutdownTimeout int // in seconds
}

// AdminConfig contains configuration for the admin dashboard API
type AdminConfig struct {
	Port int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver      string
	Host        string
	Port        int
	Username    string
	Password    string
	Database    string
	SSLMode     string
	MaxConns    int
	IdleConns   int
	AutoMigrate bool
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig contains the nsqd address used for outbound OTP delivery
type NSQConfig struct {
	Address string
}

// JWTConfig contains session token configuration.
// Tokens are RS256 signed; a component that only verifies needs PublicKeyPath.
type JWTConfig struct {
	PrivateKeyPath       string
	PrivateKeyPassphrase string
	PublicKeyPath        string
	Expiration           int // in minutes
	Issuer               string
}

// OTPConfig contains one-time passcode configuration
type OTPConfig struct {
	TTLSeconds int
	HashCost   int
}

// CacheConfig contains read-through cache configuration
type CacheConfig struct {
	ListingTTLSeconds int
}

// RateLimitConfig contains limits applied to OTP request endpoints
type RateLimitConfig struct {
	OTPPerMinute int
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
