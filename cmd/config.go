package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// config is the whole application configuration, read from the environment.
type config struct {
	AppHost     string
	AppPort     string
	AppEnv      string
	FrontendURL string
	CORSOrigins []string

	LogLevel      string
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExp          time.Duration

	JWTSecretKey string
	JWTExp       time.Duration

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	KafkaBrokers []string
	KafkaTopic   string

	S3Region     string
	S3AccessKey  string
	S3SecretKey  string
	S3Endpoint   string
	S3Bucket     string
	S3PresignExp time.Duration

	GRPCHost       string
	GRPCPort       string
	HealthInterval time.Duration

	VerificationTokenTTL time.Duration
	ResetTokenTTL        time.Duration
	ResetTokenPurge      bool
}

// debugTokens reports whether tokens may be echoed in API responses.
func (c *config) debugTokens() bool {
	return c.AppEnv == "development"
}

// parseConfig loads environment variables from a file and returns the
// application configuration. Variables already set in the environment win.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var err error
	getInt := func(key string, defaultValue int) int {
		if err != nil {
			return 0
		}
		var v int
		if v, err = strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue))); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return v
	}
	getSeconds := func(key string, defaultValue int) time.Duration {
		return time.Duration(getInt(key, defaultValue)) * time.Second
	}
	getBool := func(key string, defaultValue bool) bool {
		if err != nil {
			return false
		}
		var v bool
		if v, err = strconv.ParseBool(getEnv(key, strconv.FormatBool(defaultValue))); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return v
	}

	cfg := &config{
		// Application config
		AppHost:     getEnv("APP_HOST", "localhost"),
		AppPort:     getEnv("APP_PORT", "8080"),
		AppEnv:      getEnv("APP_ENV", "production"),
		FrontendURL: getEnv("APP_FRONTEND_URL", "http://localhost:3000"),
		CORSOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),

		// Logging config
		LogLevel:      getEnv("APP_LOG_LEVEL", "info"),
		LogFile:       getEnv("APP_LOG_FILE", ""),
		LogMaxSizeMB:  getInt("APP_LOG_MAX_SIZE_MB", 100),
		LogMaxBackups: getInt("APP_LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getInt("APP_LOG_MAX_AGE_DAYS", 28),

		// PostgreSQL config
		PGHost:         getEnv("POSTGRES_HOST", "localhost"),
		PGPort:         getInt("POSTGRES_PORT", 5432),
		PGUser:         getEnv("POSTGRES_USER", "user"),
		PGPassword:     getEnv("POSTGRES_PASSWORD", "password"),
		PGDB:           getEnv("POSTGRES_DB", "techlinker"),
		PGMaxOpenConns: getInt("POSTGRES_MAX_OPEN_CONNS", 16),
		PGMaxIdleConns: getInt("POSTGRES_MAX_IDLE_CONNS", 8),

		// Redis config
		RedisHost:         getEnv("REDIS_HOST", "localhost"),
		RedisPort:         getInt("REDIS_PORT", 6379),
		RedisDB:           getInt("REDIS_DB", 0),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisPoolSize:     getInt("REDIS_POOL_SIZE", 10),
		RedisMinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", 2),
		RedisExp:          getSeconds("REDIS_EXP_SECOND", 300),

		// JWT config
		JWTSecretKey: getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
		JWTExp:       getSeconds("JWT_EXP_SECOND", 86400),

		// SMTP config, empty host logs links instead of sending
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", ""),

		// Kafka config, no brokers disables publishing
		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "user-events"),

		// S3 config, no bucket disables picture uploads
		S3Region:     getEnv("S3_REGION", "us-east-1"),
		S3AccessKey:  getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:  getEnv("S3_SECRET_KEY", ""),
		S3Endpoint:   getEnv("S3_ENDPOINT", ""),
		S3Bucket:     getEnv("S3_BUCKET", ""),
		S3PresignExp: getSeconds("S3_PRESIGN_EXP_SECOND", 900),

		// gRPC health config
		GRPCHost:       getEnv("GRPC_HOST", "localhost"),
		GRPCPort:       getEnv("GRPC_PORT", "50051"),
		HealthInterval: getSeconds("GRPC_HEALTH_INTERVAL_SECOND", 10),

		// Token config
		VerificationTokenTTL: getSeconds("TOKEN_VERIFICATION_TTL_SECOND", 86400),
		ResetTokenTTL:        getSeconds("TOKEN_RESET_TTL_SECOND", 3600),
		ResetTokenPurge:      getBool("TOKEN_RESET_PURGE", false),
	}
	if err != nil {
		return nil, err
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
