package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration, sourced from the environment.
type Config struct {
	Port        string
	Env         string
	DatabaseURL string

	LogLevel  string
	LogFormat string

	LLMProvider  string
	LLMModel     string
	OpenAIAPIKey string
	ScoreTimeout time.Duration

	ObjectStoreType string
	LocalStoreDir   string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string

	MailProvider string
	MailFrom     string
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string

	CORSAllowOrigin []string
}

// Load reads configuration from environment variables (and .env for local
// development), applying defaults where unset.
func Load() Config {
	loadDotenv()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("LLM_PROVIDER", "openai")
	v.SetDefault("LLM_MODEL", "gpt-4o-mini")
	v.SetDefault("SCORE_TIMEOUT_SECONDS", 60)
	v.SetDefault("OBJECT_STORE", "local")
	v.SetDefault("LOCAL_STORE_DIR", "./data/uploads")
	v.SetDefault("MAIL_PROVIDER", "log")
	v.SetDefault("MAIL_FROM", "All About Resume <noreply@allaboutresume.com>")
	v.SetDefault("SMTP_PORT", 587)

	cfg := Config{
		Port:            v.GetString("PORT"),
		Env:             normalizeEnv(v.GetString("ENV")),
		DatabaseURL:     v.GetString("DATABASE_URL"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogFormat:       v.GetString("LOG_FORMAT"),
		LLMProvider:     v.GetString("LLM_PROVIDER"),
		LLMModel:        v.GetString("LLM_MODEL"),
		OpenAIAPIKey:    v.GetString("OPENAI_API_KEY"),
		ScoreTimeout:    time.Duration(v.GetInt("SCORE_TIMEOUT_SECONDS")) * time.Second,
		ObjectStoreType: v.GetString("OBJECT_STORE"),
		LocalStoreDir:   v.GetString("LOCAL_STORE_DIR"),
		AWSRegion:       v.GetString("AWS_REGION"),
		S3Bucket:        v.GetString("S3_BUCKET"),
		S3Prefix:        v.GetString("S3_PREFIX"),
		MailProvider:    v.GetString("MAIL_PROVIDER"),
		MailFrom:        v.GetString("MAIL_FROM"),
		SMTPHost:        v.GetString("SMTP_HOST"),
		SMTPPort:        v.GetInt("SMTP_PORT"),
		SMTPUsername:    v.GetString("SMTP_USERNAME"),
		SMTPPassword:    v.GetString("SMTP_PASSWORD"),
		CORSAllowOrigin: splitOrigins(v.GetString("CORS_ALLOW_ORIGIN")),
	}

	if cfg.Env == "prod" && cfg.ScoreTimeout <= 0 {
		log.Printf("config: SCORE_TIMEOUT_SECONDS must be positive; using 60s")
		cfg.ScoreTimeout = 60 * time.Second
	}

	return cfg
}

// IsDevLike reports whether the environment allows degraded local fallbacks.
func (c Config) IsDevLike() bool {
	switch c.Env {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "prod"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func splitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
