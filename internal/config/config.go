package config

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultConfigFile = "configs/local.yaml"
	defaultEnvFile    = ".env/local_pg.env"
	searchDepth       = 8
)

type Config struct {
	Env       string          `mapstructure:"env"`
	Server    ServerConfig    `mapstructure:"http_server"`
	Pg        PgConfig        `mapstructure:"postgres"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

type ServerConfig struct {
	Host        string        `mapstructure:"host"`
	Port        int           `mapstructure:"port"`
	Timeout     time.Duration `mapstructure:"timeout"`
	CORSOrigins []string      `mapstructure:"cors_origins"`
}

type PgConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Db       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DSN - connection string accepted by pgxpool and golang-migrate
func (p PgConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.Db, p.SSLMode)
}

type AuthConfig struct {
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

type SchedulerConfig struct {
	// RollSpec - cron spec of the overdue payment roll-forward
	RollSpec string `mapstructure:"roll_spec"`
	// PurgeSpec - cron spec of the expired session cleanup
	PurgeSpec string `mapstructure:"purge_spec"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("http_server.host", "localhost")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.timeout", 5*time.Second)
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("auth.session_ttl", 7*24*time.Hour)
	v.SetDefault("scheduler.roll_spec", "@daily")
	v.SetDefault("scheduler.purge_spec", "@hourly")
}

func resolvePath(cwd, p string) string {
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		return p
	}
	if up, ok := findUp(cwd, p, searchDepth); ok {
		return up
	}
	return filepath.Join(cwd, p)
}

// findUp looks for rel in start and its parents, so tests run from package dirs find repo files
func findUp(start, rel string, max int) (string, bool) {
	dir := start
	for i := 0; i <= max; i++ {
		p := filepath.Join(dir, rel)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}

// Load reads the .env file (ENV_FILE) into the process environment, then the
// YAML config (CONFIG_PATH) with ${VAR} references expanded.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getwd: %w", err)
	}

	envPath := os.Getenv("ENV_FILE")
	if envPath == "" {
		if up, ok := findUp(cwd, defaultEnvFile, searchDepth); ok {
			envPath = up
		}
	} else {
		envPath = resolvePath(cwd, envPath)
	}
	if envPath != "" {
		if err := godotenv.Overload(envPath); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envPath, err)
		}
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		up, ok := findUp(cwd, defaultConfigFile, searchDepth)
		if !ok {
			return nil, errors.New("CONFIG_PATH not set and " + defaultConfigFile + " not found")
		}
		path = up
	} else {
		path = resolvePath(cwd, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	if err := v.ReadConfig(bytes.NewBufferString(os.ExpandEnv(string(raw)))); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func LoadConfig() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}
