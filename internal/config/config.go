// Package config loads server configuration from an optional config.yaml
// plus environment variables, with a .env file picked up first. Environment
// variables win over the file; defaults cover local development.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type SMTP struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	User string `mapstructure:"user"`
	Pass string `mapstructure:"pass"`
	To   string `mapstructure:"to"`
}

type Telegram struct {
	Token  string `mapstructure:"token"`
	ChatID int64  `mapstructure:"chat_id"`
}

type Config struct {
	ListenAddr string `mapstructure:"listen_addr"`

	// Backend selects the entity store: sqlite (default), file or mongo.
	Backend       string `mapstructure:"backend"`
	SQLitePath    string `mapstructure:"sqlite_path"`
	DataDir       string `mapstructure:"data_dir"`
	MongoURI      string `mapstructure:"mongo_uri"`
	MongoDatabase string `mapstructure:"mongo_database"`

	AdminUsername string `mapstructure:"admin_username"`
	AdminPassword string `mapstructure:"admin_password"`
	// AdminPasswordHash, when set, takes precedence over AdminPassword and
	// is compared with bcrypt.
	AdminPasswordHash string `mapstructure:"admin_password_hash"`
	JWTSecret         string `mapstructure:"jwt_secret"`

	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AdminDir       string   `mapstructure:"admin_dir"`

	SMTP     SMTP     `mapstructure:"smtp"`
	Telegram Telegram `mapstructure:"telegram"`
}

// envBindings maps config keys to the environment variables the deployment
// scripts have always used.
var envBindings = map[string]string{
	"listen_addr":         "LISTEN_ADDR",
	"backend":             "BACKEND",
	"sqlite_path":         "SQLITE_PATH",
	"data_dir":            "DATA_DIR",
	"mongo_uri":           "MONGODB_URI",
	"mongo_database":      "MONGODB_DATABASE",
	"admin_username":      "ADMIN_USERNAME",
	"admin_password":      "ADMIN_PASSWORD",
	"admin_password_hash": "ADMIN_PASSWORD_HASH",
	"jwt_secret":          "JWT_SECRET",
	"admin_dir":           "ADMIN_DIR",
	"smtp.host":           "SMTP_HOST",
	"smtp.port":           "SMTP_PORT",
	"smtp.user":           "SMTP_USER",
	"smtp.pass":           "SMTP_PASS",
	"smtp.to":             "TO_EMAIL",
	"telegram.token":      "TELEGRAM_BOT_TOKEN",
	"telegram.chat_id":    "TELEGRAM_CHAT_ID",
}

// Load reads configuration. path names a config file explicitly; when
// empty, config.yaml in the working directory is used if present.
func Load(path string) (*Config, error) {
	// A .env next to the binary is a convenience, not a requirement.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("listen_addr", ":8081")
	v.SetDefault("backend", "sqlite")
	v.SetDefault("sqlite_path", "portfolio.db")
	v.SetDefault("data_dir", "data")
	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("mongo_database", "portfolio")
	v.SetDefault("admin_username", "admin")
	v.SetDefault("admin_dir", "web/admin")

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// FRONTEND_URL / FRONTEND_URL2 predate the allowed_origins list and
	// are still honored.
	for _, env := range []string{"FRONTEND_URL", "FRONTEND_URL2"} {
		if url := os.Getenv(env); url != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, url)
		}
	}

	switch cfg.Backend {
	case "sqlite", "file", "mongo":
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
	return cfg, nil
}

// Origins returns the CORS allow-list, defaulting to the local dev
// frontend when nothing is configured.
func (c *Config) Origins() []string {
	if len(c.AllowedOrigins) == 0 {
		return []string{"http://localhost:3000"}
	}
	out := make([]string, 0, len(c.AllowedOrigins))
	for _, origin := range c.AllowedOrigins {
		out = append(out, strings.TrimRight(origin, "/"))
	}
	return out
}
