package config

import (
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"log"
	"os"
	"strconv"
	"time"
)

type DB struct {
	DbHOST     string `validate:"required"`
	DbPORT     string `validate:"required"`
	DbUSER     string `validate:"required"`
	DbPASSWORD string `validate:"required"`
	DbNAME     string `validate:"required"`
	DbSSLMODE  string
}

type MinIO struct {
	Endpoint   string `validate:"required"`
	AccessKey  string `validate:"required"`
	SecretKey  string `validate:"required"`
	BucketName string `validate:"required"`
	UseSSL     bool
	Region     string
	PublicURL  string `validate:"required"`
}

type Config struct {
	Environment   string
	ServerPort    int    `validate:"required"`
	DB            DB     `validate:"required"`
	MinIO         MinIO  `validate:"required"`
	JWTSecretKey  string `validate:"required"`
	JWTExpiration time.Duration
	MaxUploadSize int64
	RateLimit     int
	RateWindow    time.Duration
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 10 * 1024 * 1024
	}
	return size
}

func LoadDB() DB {
	return DB{
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "rentservice"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", ""),
		SecretKey:  getEnv("MINIO_SECRET_KEY", ""),
		BucketName: getEnv("MINIO_BUCKET_NAME", "rents"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		Region:     getEnv("MINIO_REGION", "us-east-1"),
		PublicURL:  getEnv("MINIO_PUBLIC_URL", "http://localhost:9000"),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		Environment:   getEnv("ENVIRONMENT", "dev"),
		ServerPort:    getEnvAsInt("SERVER_PORT", 8080),
		DB:            LoadDB(),
		MinIO:         LoadMinIO(),
		JWTSecretKey:  getEnv("JWT_SECRET_KEY", ""),
		JWTExpiration: parseDuration(getEnv("JWT_EXPIRATION", "168h"), 168*time.Hour),
		MaxUploadSize: parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "10485760")),
		RateLimit:     getEnvAsInt("RATE_LIMIT", 4),
		RateWindow:    parseDuration(getEnv("RATE_WINDOW", "10s"), 10*time.Second),
	}
}

// Validate проверяет, что все обязательные переменные окружения заданы.
// Вызывается один раз при старте процесса, при ошибке запуск прерывается.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("конфигурация не прошла проверку: %w", err)
	}
	return nil
}
