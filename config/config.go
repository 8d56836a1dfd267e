package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Host string
	Port int
	User string
	Pass string
	Name string
}

type Redis struct {
	Addr string
	DB   int
}

type JWT struct {
	Secret string
	Issuer string
	ExpMin int
}

type Master struct {
	Email    string
	Password string
}

type RateLimit struct {
	AuthMax    int64
	AuthWindow time.Duration
	APIMax     int64
	APIWindow  time.Duration
}

type Config struct {
	HTTP      HTTP
	DB        DB
	Redis     Redis
	JWT       JWT
	Master    Master
	RateLimit RateLimit
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "boardhub")
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "dev-secret")
	v.SetDefault("jwt.issuer", "boardhub")
	v.SetDefault("jwt.exp_min", 60)
	v.SetDefault("master.email", "master@boardhub.local")
	v.SetDefault("master.password", "ChangeMe123")
	// auth: 5 attempts per 15 minutes; api: 100 requests per minute
	v.SetDefault("ratelimit.auth_max", 5)
	v.SetDefault("ratelimit.auth_window_min", 15)
	v.SetDefault("ratelimit.api_max", 100)
	v.SetDefault("ratelimit.api_window_sec", 60)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("server.host"), Port: v.GetInt("server.port")},
		DB: DB{
			Host: v.GetString("db.host"), Port: v.GetInt("db.port"),
			User: v.GetString("db.user"), Pass: v.GetString("db.pass"), Name: v.GetString("db.name"),
		},
		Redis:  Redis{Addr: v.GetString("redis.addr"), DB: v.GetInt("redis.db")},
		JWT:    JWT{Secret: v.GetString("jwt.secret"), Issuer: v.GetString("jwt.issuer"), ExpMin: v.GetInt("jwt.exp_min")},
		Master: Master{Email: v.GetString("master.email"), Password: v.GetString("master.password")},
		RateLimit: RateLimit{
			AuthMax:    v.GetInt64("ratelimit.auth_max"),
			AuthWindow: time.Duration(v.GetInt("ratelimit.auth_window_min")) * time.Minute,
			APIMax:     v.GetInt64("ratelimit.api_max"),
			APIWindow:  time.Duration(v.GetInt("ratelimit.api_window_sec")) * time.Second,
		},
	}
	if cfg.JWT.ExpMin <= 0 {
		cfg.JWT.ExpMin = 60
	}
	return cfg, nil
}
