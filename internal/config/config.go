package config

import (
	"errors"
	"fmt"
	"math"
	"net"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

type Config struct {
	AppHost       string
	AppPort       string
	AllowExternal bool

	// Only origin allowed to call /api/* from a browser context.
	CORSOrigin string

	// Empty RedisAddr keeps the rate limiter in-process.
	RedisAddr string
	RedisDB   int

	// RateLimitRPS == 0 disables rate limiting.
	RateLimitRPS   float64
	RateLimitBurst int

	DBDriver   string
	SQLitePath string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	LogSQL bool
}

// env names are kept flat (APP_PORT, REDIS_ADDR, ...) so deployments don't need a prefix.
var envKeys = map[string]string{
	"app.host":           "APP_HOST",
	"app.port":           "APP_PORT",
	"app.allow_external": "APP_ALLOW_EXTERNAL",
	"cors.origin":        "CORS_ORIGIN",
	"redis.addr":         "REDIS_ADDR",
	"redis.db":           "REDIS_DB",
	"rate_limit.rps":     "RATE_LIMIT_RPS",
	"rate_limit.burst":   "RATE_LIMIT_BURST",
	"db.driver":          "DB_DRIVER",
	"db.sqlite_path":     "SQLITE_PATH",
	"mysql.host":         "MYSQL_HOST",
	"mysql.port":         "MYSQL_PORT",
	"mysql.db":           "MYSQL_DB",
	"mysql.user":         "MYSQL_USER",
	"mysql.pass":         "MYSQL_PASS",
	"log.sql":            "LOG_SQL",
}

// NewViper returns a viper instance with defaults and env bindings applied.
// Callers may bind CLI flags on top before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("app.host", "127.0.0.1")
	v.SetDefault("app.port", "8082")
	v.SetDefault("app.allow_external", false)
	v.SetDefault("cors.origin", "http://tauri.localhost")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("rate_limit.rps", 0)
	v.SetDefault("rate_limit.burst", 0)
	v.SetDefault("db.driver", DriverSQLite)
	v.SetDefault("db.sqlite_path", "file:fingolf?mode=memory&cache=shared")
	v.SetDefault("mysql.host", "mysql")
	v.SetDefault("mysql.port", "3306")
	v.SetDefault("mysql.db", "fingolf")
	v.SetDefault("mysql.user", "fingolf")
	v.SetDefault("mysql.pass", "fingolf")
	v.SetDefault("log.sql", false)

	for key, env := range envKeys {
		_ = v.BindEnv(key, env)
	}
	return v
}

// Load reads the optional config file at path into v and builds a Config.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	c := &Config{
		AppHost:        strings.TrimSpace(v.GetString("app.host")),
		AppPort:        strings.TrimSpace(v.GetString("app.port")),
		AllowExternal:  v.GetBool("app.allow_external"),
		CORSOrigin:     strings.TrimSpace(v.GetString("cors.origin")),
		RedisAddr:      strings.TrimSpace(v.GetString("redis.addr")),
		RedisDB:        v.GetInt("redis.db"),
		RateLimitRPS:   v.GetFloat64("rate_limit.rps"),
		RateLimitBurst: v.GetInt("rate_limit.burst"),
		DBDriver:       strings.ToLower(strings.TrimSpace(v.GetString("db.driver"))),
		SQLitePath:     v.GetString("db.sqlite_path"),
		MySQLHost:      v.GetString("mysql.host"),
		MySQLPort:      v.GetString("mysql.port"),
		MySQLDB:        v.GetString("mysql.db"),
		MySQLUser:      v.GetString("mysql.user"),
		MySQLPass:      v.GetString("mysql.pass"),
		LogSQL:         v.GetBool("log.sql"),
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst == 0 {
		c.RateLimitBurst = int(math.Ceil(c.RateLimitRPS))
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if _, err := net.LookupPort("tcp", c.AppPort); err != nil {
		return fmt.Errorf("invalid APP_PORT %q: %w", c.AppPort, err)
	}
	if c.AppHost == "" {
		return errors.New("missing APP_HOST")
	}
	if !c.AllowExternal && !isLoopback(c.AppHost) {
		return fmt.Errorf("APP_HOST %q is not a loopback address (set APP_ALLOW_EXTERNAL to override)", c.AppHost)
	}
	if c.CORSOrigin == "" {
		return errors.New("missing CORS_ORIGIN")
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must not be negative")
	}

	switch c.DBDriver {
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("missing SQLITE_PATH")
		}
	case DriverMySQL:
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	return nil
}

func (c *Config) Addr() string { return net.JoinHostPort(c.AppHost, c.AppPort) }

func (c *Config) RateLimitEnabled() bool { return c.RateLimitRPS > 0 }

// RateLimitWindow is the fixed window in which RateLimitBurst requests are
// allowed, so the shared Redis limiter averages RateLimitRPS like the
// in-process token bucket does.
func (c *Config) RateLimitWindow() time.Duration {
	if !c.RateLimitEnabled() || c.RateLimitBurst <= 0 {
		return time.Second
	}
	w := time.Duration(float64(c.RateLimitBurst) / c.RateLimitRPS * float64(time.Second)).Round(time.Millisecond)
	if w < time.Millisecond {
		w = time.Millisecond
	}
	return w
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == DriverMySQL {
		return c.MySQLDSN()
	}
	return c.SQLitePath
}

func isLoopback(host string) bool {
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
