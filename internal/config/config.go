package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type AppConfig struct {
	Env       string `mapstructure:"env"`
	Port      int    `mapstructure:"port"`
	JWTSecret string `mapstructure:"jwt_secret"`
	TokenTTL  int    `mapstructure:"token_ttl_hours"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type KafkaConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

type MailConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	APIKey      string `mapstructure:"api_key"`
	SenderEmail string `mapstructure:"sender_email"`
	SenderName  string `mapstructure:"sender_name"`
}

type Config struct {
	App   AppConfig   `mapstructure:"app"`
	Mongo MongoConfig `mapstructure:"mongodb"`
	Redis RedisConfig `mapstructure:"redis"`
	Kafka KafkaConfig `mapstructure:"kafka"`
	Mail  MailConfig  `mapstructure:"mail"`

	// derived
	RequestTimeout time.Duration
	TokenTTL       time.Duration
}

// Load reads config.yaml if present and lets APP_* environment variables
// override individual keys. Every knob has a default so the server starts
// with no config file at all.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", 8880)
	v.SetDefault("app.jwt_secret", "dev-secret-change-me")
	v.SetDefault("app.token_ttl_hours", 168)
	v.SetDefault("mongodb.uri", "mongodb://localhost:27017")
	v.SetDefault("mongodb.database", "careerconnect")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.prefix", "cc")
	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "message.sent")
	v.SetDefault("mail.enabled", false)
	v.SetDefault("mail.sender_email", "noreply@careerconnect.local")
	v.SetDefault("mail.sender_name", "CareerConnect")

	// config file is optional, defaults + env apply without one
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}

	c.RequestTimeout = 10 * time.Second
	c.TokenTTL = time.Duration(c.App.TokenTTL) * time.Hour
	return &c, nil
}
