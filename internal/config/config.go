package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env    string
	Server ServerConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	Log    LogConfig
	Search SearchConfig
	Game   GameConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type MongoConfig struct {
	URI         string
	Database    string
	PingTimeout time.Duration
}

// RedisConfig configures the search cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type LogConfig struct {
	Level string
}

type SearchConfig struct {
	CacheTTL time.Duration
}

type GameConfig struct {
	RequireReadyForLive bool
}

type CORSConfig struct {
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

// Load reads configuration from an optional YAML file and the environment.
// Environment variables use the key path in upper case with dots replaced
// by underscores (mongo.uri -> MONGO_URI); a few short aliases are bound
// explicitly.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("server.port", "PORT")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("log.level", "LOG_LEVEL")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Env: v.GetString("env"),
		Server: ServerConfig{
			Port:            v.GetString("server.port"),
			ReadTimeout:     v.GetDuration("server.read_timeout"),
			WriteTimeout:    v.GetDuration("server.write_timeout"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		Mongo: MongoConfig{
			URI:         v.GetString("mongo.uri"),
			Database:    v.GetString("mongo.database"),
			PingTimeout: v.GetDuration("mongo.ping_timeout"),
		},
		Redis: RedisConfig{
			Addr:     strings.TrimPrefix(v.GetString("redis.addr"), "redis://"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
		},
		Search: SearchConfig{
			CacheTTL: v.GetDuration("search.cache_ttl"),
		},
		Game: GameConfig{
			RequireReadyForLive: v.GetBool("game.require_ready_for_live"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetString("cors.allowed_origins"),
			AllowedMethods: v.GetString("cors.allowed_methods"),
			AllowedHeaders: v.GetString("cors.allowed_headers"),
		},
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "quiz-app")
	v.SetDefault("mongo.ping_timeout", 5*time.Second)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("search.cache_ttl", time.Minute)
	v.SetDefault("game.require_ready_for_live", false)
	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("cors.allowed_methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
	v.SetDefault("cors.allowed_headers", "Content-Type, Authorization")
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
