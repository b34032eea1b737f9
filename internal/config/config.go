package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the immutable startup configuration of the API server.
type Config struct {
	DB          DBConfig
	API         APIConfig
	Log         LogConfig
	Legacy      LegacyConfig
	CORSOrigins []string
}

type DBConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	DialTimeout     time.Duration
}

type APIConfig struct {
	Host string
	Port int
}

// Addr returns the listen address of the HTTP server.
func (c APIConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type LogConfig struct {
	Level    string
	FilePath string
}

// LegacyConfig toggles behaviors carried over from the first version of
// the API that are known to be wrong.
type LegacyConfig struct {
	// OrderJoin keeps the join report's order join on e.E_ID = po.Order_ID.
	OrderJoin bool
	// FunctionInterpolation splices db function inputs into the SQL text.
	FunctionInterpolation bool
}

var defaults = map[string]any{
	"MYSQL_HOST":                    "localhost",
	"MYSQL_PORT":                    3306,
	"MYSQL_USER":                    "root",
	"MYSQL_PASSWORD":                "",
	"MYSQL_DATABASE":                "FactoryManagement",
	"DB_MAX_OPEN_CONNS":             25,
	"DB_MAX_IDLE_CONNS":             5,
	"DB_CONN_MAX_LIFETIME":          "20m",
	"DB_DIAL_TIMEOUT":               "5s",
	"API_HOST":                      "localhost",
	"API_PORT":                      5000,
	"LOG_LEVEL":                     "info",
	"LOG_FILE_PATH":                 "",
	"LEGACY_ORDER_JOIN":             true,
	"LEGACY_FUNCTION_INTERPOLATION": false,
	"CORS_ALLOWED_ORIGINS":          "*",
}

// Load reads an optional .env file and the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	var err error

	cfg.DB.Host = v.GetString("MYSQL_HOST")
	cfg.DB.User = v.GetString("MYSQL_USER")
	cfg.DB.Password = v.GetString("MYSQL_PASSWORD")
	cfg.DB.Name = v.GetString("MYSQL_DATABASE")
	if cfg.DB.Name == "" {
		cfg.DB.Name = "FactoryManagement"
	}

	if cfg.DB.Port, err = intValue(v, "MYSQL_PORT"); err != nil {
		return Config{}, err
	}
	if cfg.DB.MaxOpenConns, err = intValue(v, "DB_MAX_OPEN_CONNS"); err != nil {
		return Config{}, err
	}
	if cfg.DB.MaxIdleConns, err = intValue(v, "DB_MAX_IDLE_CONNS"); err != nil {
		return Config{}, err
	}
	if cfg.DB.ConnMaxLifetime, err = durationValue(v, "DB_CONN_MAX_LIFETIME"); err != nil {
		return Config{}, err
	}
	if cfg.DB.DialTimeout, err = durationValue(v, "DB_DIAL_TIMEOUT"); err != nil {
		return Config{}, err
	}

	cfg.API.Host = v.GetString("API_HOST")
	if cfg.API.Port, err = intValue(v, "API_PORT"); err != nil {
		return Config{}, err
	}

	cfg.Log.Level = v.GetString("LOG_LEVEL")
	cfg.Log.FilePath = v.GetString("LOG_FILE_PATH")

	if cfg.Legacy.OrderJoin, err = boolValue(v, "LEGACY_ORDER_JOIN"); err != nil {
		return Config{}, err
	}
	if cfg.Legacy.FunctionInterpolation, err = boolValue(v, "LEGACY_FUNCTION_INTERPOLATION"); err != nil {
		return Config{}, err
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	return cfg, nil
}

// The viper Get* helpers swallow parse errors, so values are parsed by hand
// to reject typos like MYSQL_PORT=33o6.
func intValue(v *viper.Viper, key string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v.GetString(key), err)
	}
	return n, nil
}

func durationValue(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v.GetString(key), err)
	}
	return d, nil
}

func boolValue(v *viper.Viper, key string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v.GetString(key))) {
	case "1", "t", "true", "yes", "on":
		return true, nil
	case "0", "f", "false", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid %s %q", key, v.GetString(key))
}
