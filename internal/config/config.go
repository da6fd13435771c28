package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName                string
	AppEnv                 string
	AppPort                string
	DatabaseURL            string
	RedisURL               string
	NatsURL                string
	JWTSecret              string
	InviteSecret           string
	InviteTTL              time.Duration
	ResultadosCacheTTL     time.Duration
	CloudinaryCloudName    string
	CloudinaryAPIKey       string
	CloudinaryAPISecret    string
	CloudinaryUploadFolder string
	SMTPHost               string
	SMTPPort               string
	SMTPUser               string
	SMTPPassword           string
	SMTPFrom               string
	InviteBaseURL          string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and an
// optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("GAMEJAM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "GameJam API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("invite.ttl", "72h")
	v.SetDefault("resultados.cache_ttl", "5m")
	v.SetDefault("cloudinary.folder", "gamejam/portadas")
	v.SetDefault("smtp.port", "587")

	inviteTTL, err := time.ParseDuration(v.GetString("invite.ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid invite ttl: %w", err)
	}

	cacheTTL, err := time.ParseDuration(v.GetString("resultados.cache_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid resultados cache ttl: %w", err)
	}

	cfg := Config{
		AppName:                v.GetString("app.name"),
		AppEnv:                 v.GetString("app.env"),
		AppPort:                v.GetString("app.port"),
		DatabaseURL:            v.GetString("database.url"),
		RedisURL:               v.GetString("redis.url"),
		NatsURL:                v.GetString("nats.url"),
		JWTSecret:              v.GetString("jwt.secret"),
		InviteSecret:           v.GetString("invite.secret"),
		InviteTTL:              inviteTTL,
		ResultadosCacheTTL:     cacheTTL,
		CloudinaryCloudName:    v.GetString("cloudinary.cloud_name"),
		CloudinaryAPIKey:       v.GetString("cloudinary.api_key"),
		CloudinaryAPISecret:    v.GetString("cloudinary.api_secret"),
		CloudinaryUploadFolder: v.GetString("cloudinary.folder"),
		SMTPHost:               v.GetString("smtp.host"),
		SMTPPort:               v.GetString("smtp.port"),
		SMTPUser:               v.GetString("smtp.user"),
		SMTPPassword:           v.GetString("smtp.password"),
		SMTPFrom:               v.GetString("smtp.from"),
		InviteBaseURL:          v.GetString("invite.base_url"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	if cfg.InviteSecret == "" {
		cfg.InviteSecret = cfg.JWTSecret
	}

	return cfg, nil
}
