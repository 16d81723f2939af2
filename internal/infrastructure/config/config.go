// Package config loads application configuration from config.toml and
// IARE_-prefixed environment variables, with sane development defaults.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Log      LogConfig
	HTTP     HTTPConfig
	Cache    CacheConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// AppConfig holds application-specific settings.
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // minutes
	ConnMaxIdleTime int // minutes
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret                 string
	RefreshSecret          string
	AccessTokenExpiration  time.Duration
	RefreshTokenExpiration time.Duration
	Issuer                 string
	MaxRefreshCount        int
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	ReadTimeout           time.Duration
	WriteTimeout          time.Duration
	IdleTimeout           time.Duration
	MaxHeaderBytes        int
	MaxBodySize           int64
	RateLimitEnabled      bool
	RateLimitRequests     int
	RateLimitWindow       time.Duration
	AuthRateLimitEnabled  bool
	AuthRateLimitRequests int
	AuthRateLimitWindow   time.Duration
	CORSAllowOrigins      []string
	CORSAllowMethods      []string
	CORSAllowHeaders      []string
	TrustedProxies        []string
}

// CacheConfig holds dashboard summary cache configuration.
type CacheConfig struct {
	SummaryTTL            time.Duration
	AllowInMemoryFallback bool
}

// Load reads configuration in priority order:
//  1. environment variables with the IARE_ prefix (IARE_DATABASE_PASSWORD)
//  2. config.toml in the working directory
//  3. built-in defaults
//
// A bare PORT environment variable additionally overrides app.port, for
// container platforms that inject it without a prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// Missing config.toml is fine, env vars and defaults cover it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("IARE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App:      appSection(v),
		Database: databaseSection(v),
		Redis:    redisSection(v),
		JWT:      jwtSection(v),
		Log:      logSection(v),
		HTTP:     httpSection(v),
		Cache:    cacheSection(v),
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.App.Port = port
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func appSection(v *viper.Viper) AppConfig {
	return AppConfig{
		Name: v.GetString("app.name"),
		Env:  v.GetString("app.env"),
		Port: v.GetString("app.port"),
	}
}

func databaseSection(v *viper.Viper) DatabaseConfig {
	return DatabaseConfig{
		Host:            v.GetString("database.host"),
		Port:            v.GetInt("database.port"),
		User:            v.GetString("database.user"),
		Password:        v.GetString("database.password"),
		DBName:          v.GetString("database.dbname"),
		SSLMode:         v.GetString("database.sslmode"),
		MaxOpenConns:    v.GetInt("database.max_open_conns"),
		MaxIdleConns:    v.GetInt("database.max_idle_conns"),
		ConnMaxLifetime: v.GetInt("database.conn_max_lifetime"),
		ConnMaxIdleTime: v.GetInt("database.conn_max_idle_time"),
	}
}

func redisSection(v *viper.Viper) RedisConfig {
	return RedisConfig{
		Host:     v.GetString("redis.host"),
		Port:     v.GetInt("redis.port"),
		Password: v.GetString("redis.password"),
		DB:       v.GetInt("redis.db"),
	}
}

func jwtSection(v *viper.Viper) JWTConfig {
	return JWTConfig{
		Secret:                 v.GetString("jwt.secret"),
		RefreshSecret:          v.GetString("jwt.refresh_secret"),
		AccessTokenExpiration:  v.GetDuration("jwt.access_token_expiration"),
		RefreshTokenExpiration: v.GetDuration("jwt.refresh_token_expiration"),
		Issuer:                 v.GetString("jwt.issuer"),
		MaxRefreshCount:        v.GetInt("jwt.max_refresh_count"),
	}
}

func logSection(v *viper.Viper) LogConfig {
	return LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
		Output: v.GetString("log.output"),
	}
}

func httpSection(v *viper.Viper) HTTPConfig {
	return HTTPConfig{
		ReadTimeout:           v.GetDuration("http.read_timeout"),
		WriteTimeout:          v.GetDuration("http.write_timeout"),
		IdleTimeout:           v.GetDuration("http.idle_timeout"),
		MaxHeaderBytes:        v.GetInt("http.max_header_bytes"),
		MaxBodySize:           v.GetInt64("http.max_body_size"),
		RateLimitEnabled:      v.GetBool("http.rate_limit_enabled"),
		RateLimitRequests:     v.GetInt("http.rate_limit_requests"),
		RateLimitWindow:       v.GetDuration("http.rate_limit_window"),
		AuthRateLimitEnabled:  v.GetBool("http.auth_rate_limit_enabled"),
		AuthRateLimitRequests: v.GetInt("http.auth_rate_limit_requests"),
		AuthRateLimitWindow:   v.GetDuration("http.auth_rate_limit_window"),
		CORSAllowOrigins:      v.GetStringSlice("http.cors_allow_origins"),
		CORSAllowMethods:      v.GetStringSlice("http.cors_allow_methods"),
		CORSAllowHeaders:      v.GetStringSlice("http.cors_allow_headers"),
		TrustedProxies:        v.GetStringSlice("http.trusted_proxies"),
	}
}

func cacheSection(v *viper.Viper) CacheConfig {
	return CacheConfig{
		SummaryTTL:            v.GetDuration("cache.summary_ttl"),
		AllowInMemoryFallback: v.GetBool("cache.allow_in_memory_fallback"),
	}
}

// fallback fills p with def when p holds the zero value.
func fallback[T comparable](p *T, def T) {
	var zero T
	if *p == zero {
		*p = def
	}
}

// applyDefaults fills every unset field with its development default.
func applyDefaults(cfg *Config) {
	fallback(&cfg.App.Name, "placement-api")
	fallback(&cfg.App.Env, "development")
	fallback(&cfg.App.Port, "5000")

	fallback(&cfg.Database.Host, "localhost")
	fallback(&cfg.Database.Port, 5432)
	fallback(&cfg.Database.User, "postgres")
	fallback(&cfg.Database.DBName, "placement")
	fallback(&cfg.Database.SSLMode, "disable")
	fallback(&cfg.Database.MaxOpenConns, 25)
	fallback(&cfg.Database.MaxIdleConns, 5)
	fallback(&cfg.Database.ConnMaxLifetime, 60)
	fallback(&cfg.Database.ConnMaxIdleTime, 30)

	fallback(&cfg.Redis.Host, "localhost")
	fallback(&cfg.Redis.Port, 6379)

	fallback(&cfg.JWT.AccessTokenExpiration, 15*time.Minute)
	fallback(&cfg.JWT.RefreshTokenExpiration, 168*time.Hour)
	fallback(&cfg.JWT.Issuer, "placement-api")
	fallback(&cfg.JWT.MaxRefreshCount, 10)

	fallback(&cfg.Log.Level, "info")
	fallback(&cfg.Log.Format, "console")
	fallback(&cfg.Log.Output, "stdout")

	fallback(&cfg.HTTP.ReadTimeout, 15*time.Second)
	fallback(&cfg.HTTP.WriteTimeout, 15*time.Second)
	fallback(&cfg.HTTP.IdleTimeout, 60*time.Second)
	fallback(&cfg.HTTP.MaxHeaderBytes, 1<<20)
	fallback(&cfg.HTTP.MaxBodySize, int64(10<<20))
	fallback(&cfg.HTTP.RateLimitRequests, 100)
	fallback(&cfg.HTTP.RateLimitWindow, time.Minute)

	// Credential endpoints get a much tighter budget to slow brute force.
	fallback(&cfg.HTTP.AuthRateLimitRequests, 5)
	fallback(&cfg.HTTP.AuthRateLimitWindow, time.Minute)

	// CORS origins deliberately have no fallback: an empty list allows no
	// cross-origin requests until origins are configured.
	if len(cfg.HTTP.CORSAllowMethods) == 0 {
		cfg.HTTP.CORSAllowMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}
	}
	if len(cfg.HTTP.CORSAllowHeaders) == 0 {
		cfg.HTTP.CORSAllowHeaders = []string{"Content-Type", "Authorization", "X-Request-ID"}
	}

	fallback(&cfg.Cache.SummaryTTL, 30*time.Second)
}

func (c *Config) validate() error {
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be positive")
	}
	if c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database.max_idle_conns cannot be negative")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}

	if c.App.Env != "production" {
		return nil
	}

	// Settings that are forgiving in development are hard requirements
	// in production.
	switch {
	case c.JWT.Secret == "":
		return fmt.Errorf("jwt.secret is required in production")
	case len(c.JWT.Secret) < 32:
		return fmt.Errorf("jwt.secret must be at least 32 characters in production")
	case c.Database.Password == "":
		return fmt.Errorf("database.password is required in production")
	case c.Database.SSLMode == "disable":
		return fmt.Errorf("database.sslmode cannot be 'disable' in production")
	}
	for _, origin := range c.HTTP.CORSAllowOrigins {
		if origin == "*" {
			return fmt.Errorf("cors_allow_origins cannot be '*' in production (use specific origins)")
		}
	}
	return nil
}

// DSN returns the postgres connection URL with escaped credentials.
func (d *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.DBName,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}
