package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime settings. Values come from the environment
// (optionally seeded from a .env file loaded in main).
type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	JWTSecret     string
	TokenTTL      time.Duration
	AdminSecret   string
	BcryptCost    int
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
	KafkaBrokers  []string
	KafkaTopic    string
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_DATABASE", "BookingSystem")
	v.SetDefault("TOKEN_TTL", "120h")
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("CACHE_TTL", "30s")
	v.SetDefault("KAFKA_TOPIC", "bookings")

	cfg := &Config{
		Port:          v.GetString("PORT"),
		MongoURI:      v.GetString("MONGODB_URI"),
		MongoDatabase: v.GetString("MONGODB_DATABASE"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		TokenTTL:      v.GetDuration("TOKEN_TTL"),
		AdminSecret:   v.GetString("ADMIN_SECRET"),
		BcryptCost:    v.GetInt("BCRYPT_COST"),
		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),
		CacheTTL:      v.GetDuration("CACHE_TTL"),
		KafkaBrokers:  splitList(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:    v.GetString("KAFKA_TOPIC"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
