package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	JWT       JWTConfig       `yaml:"jwt"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Auth      AuthConfig      `yaml:"auth"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StorageConfig selects and configures the persistence backend
type StorageConfig struct {
	Backend  string         `yaml:"backend"`  // "file", "postgres" or "redis"
	DataDir  string         `yaml:"data_dir"` // for the file backend
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
}

// PostgresConfig contains PostgreSQL connection settings
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// RedisConfig contains redis connection settings
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// JWTConfig contains access token settings
type JWTConfig struct {
	Secret            string `yaml:"secret"`
	AccessTokenExpiry int    `yaml:"access_token_expiry_minutes"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	Enabled       bool   `yaml:"enabled"`
	StateSnapshot string `yaml:"state_snapshot"`
}

// Credential is one entry of the demo sign-in table. The table is seed
// data injected through configuration, not a security mechanism: passwords
// may be bcrypt hashes but plaintext is accepted for demo parity.
type Credential struct {
	ID       string `yaml:"id"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

// AuthConfig carries the credential table
type AuthConfig struct {
	Credentials []Credential `yaml:"credentials"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	if val := os.Getenv("STORAGE_BACKEND"); val != "" {
		c.Storage.Backend = val
	}
	if val := os.Getenv("STORAGE_DATA_DIR"); val != "" {
		c.Storage.DataDir = val
	}

	if val := os.Getenv("DB_HOST"); val != "" {
		c.Storage.Postgres.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Storage.Postgres.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Storage.Postgres.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Storage.Postgres.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Storage.Postgres.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Storage.Postgres.SSLMode = val
	}

	if val := os.Getenv("REDIS_ADDR"); val != "" {
		c.Storage.Redis.Addr = val
	}
	if val := os.Getenv("REDIS_PASSWORD"); val != "" {
		c.Storage.Redis.Password = val
	}

	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.JWT.Secret = val
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
}

// Validate checks the configuration and fills in defaults
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Storage.Backend {
	case "", "file":
		c.Storage.Backend = "file"
		if c.Storage.DataDir == "" {
			c.Storage.DataDir = "data"
		}
	case "postgres":
		if c.Storage.Postgres.Host == "" {
			return fmt.Errorf("postgres host is required")
		}
		if c.Storage.Postgres.User == "" {
			return fmt.Errorf("postgres user is required")
		}
		if c.Storage.Postgres.Database == "" {
			return fmt.Errorf("postgres database name is required")
		}
		if c.Storage.Postgres.SSLMode == "" {
			c.Storage.Postgres.SSLMode = "disable"
		}
	case "redis":
		if c.Storage.Redis.Addr == "" {
			return fmt.Errorf("redis addr is required")
		}
	default:
		return fmt.Errorf("unknown storage backend: %s", c.Storage.Backend)
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}
	if c.JWT.AccessTokenExpiry <= 0 {
		c.JWT.AccessTokenExpiry = 60
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.Scheduler.StateSnapshot == "" {
		c.Scheduler.StateSnapshot = "0 0 1 * * *" // 1 AM UTC
	}

	if len(c.Auth.Credentials) == 0 {
		c.Auth.Credentials = DemoCredentials()
	}
	for i, cred := range c.Auth.Credentials {
		if cred.Email == "" || cred.Password == "" {
			return fmt.Errorf("credential %d is missing email or password", i)
		}
		switch cred.Role {
		case "Admin", "Staff", "Customer":
		default:
			return fmt.Errorf("credential %s has unknown role: %s", cred.Email, cred.Role)
		}
	}

	return nil
}

// DemoCredentials returns the built-in demo sign-in table, used when no
// credentials are configured.
func DemoCredentials() []Credential {
	return []Credential{
		{ID: "1", Email: "admin@entnt.in", Password: "admin123", Role: "Admin"},
		{ID: "2", Email: "staff@entnt.in", Password: "staff123", Role: "Staff"},
		{ID: "3", Email: "customer@entnt.in", Password: "cust123", Role: "Customer"},
	}
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Storage.Postgres.User,
		c.Storage.Postgres.Password,
		c.Storage.Postgres.Host,
		c.Storage.Postgres.Port,
		c.Storage.Postgres.Database,
		c.Storage.Postgres.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
