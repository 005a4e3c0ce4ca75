package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort       = 3000
	defaultEnv        = "development"
	defaultTokenHours = 24
	defaultImageDir   = "img"

	defaultDBHost     = "127.0.0.1"
	defaultDBPort     = 3306
	defaultDBUser     = "root"
	defaultDBPassword = "password"
	defaultDBName     = "landing"
	defaultDBCharset  = "utf8mb4"
	defaultDBLoc      = "Local"

	defaultSeedAdminPassword = "password"
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port              int            `yaml:"port"`
	Env               string         `yaml:"env"` // "development" | "production"
	DSN               string         `yaml:"dsn"` // overrides the database block when set
	Database          DatabaseConfig `yaml:"database"`
	JWTSecret         string         `yaml:"jwt_secret"`
	TokenTTLHours     int            `yaml:"token_ttl_hours"`
	ImageDir          string         `yaml:"image_dir"`
	RedisURL          string         `yaml:"redis_url"` // optional, enables login rate limiting
	AllowedOrigins    []string       `yaml:"allowed_origins"`
	SeedAdminPassword string         `yaml:"seed_admin_password"`
}

// DatabaseConfig describes the MySQL connection when no full DSN is given.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Charset  string `yaml:"charset"`
	Loc      string `yaml:"loc"`
}

// Load reads and validates the YAML config file at path.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	cfg := defaultAppConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d in %q, expected 1-65535", cfg.Port, path)
	}
	if cfg.Database.Port < 1 || cfg.Database.Port > 65535 {
		return nil, fmt.Errorf("invalid database.port %d in %q, expected 1-65535", cfg.Database.Port, path)
	}
	if cfg.TokenTTLHours < 1 {
		return nil, fmt.Errorf("invalid token_ttl_hours %d in %q, expected >= 1", cfg.TokenTTLHours, path)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required in %q", path)
	}

	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port:          defaultPort,
		Env:           defaultEnv,
		TokenTTLHours: defaultTokenHours,
		ImageDir:      defaultImageDir,
		Database: DatabaseConfig{
			Host:     defaultDBHost,
			Port:     defaultDBPort,
			User:     defaultDBUser,
			Password: defaultDBPassword,
			Name:     defaultDBName,
			Charset:  defaultDBCharset,
			Loc:      defaultDBLoc,
		},
		SeedAdminPassword: defaultSeedAdminPassword,
	}
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "development")
}

// TokenTTL returns the configured JWT lifetime.
func (c *AppConfig) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

// ResolveDSN returns the explicit DSN when set, otherwise builds one from the
// database block.
func (c *AppConfig) ResolveDSN() string {
	if strings.TrimSpace(c.DSN) != "" {
		return c.DSN
	}
	d := c.Database
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.Charset, d.Loc)
}
