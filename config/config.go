package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func GetEnvAsBool(key string, fallback bool) bool {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}

// GetEnvAsDuration menerima format time.ParseDuration ("15s", "2m").
func GetEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return fallback
}

type Config struct {
	Port   string
	Origin string // Origin aplikasi, dipakai untuk <base href> dokumen cetak
	DSN    string

	JWTSecret string
	TokenTTL  time.Duration

	// Backend REST eksternal. Kosong = surat disimpan di penyimpanan lokal.
	BackendBaseURL string
	BackendTimeout time.Duration
	BackendRetries int

	LocalStoreDir string
	RedisURL      string

	UploadDir string
	S3        S3Config

	SMTP SMTPConfig

	LogLevel  string
	LogFormat string

	// Segmen tetap nomor surat, contoh "Kw.18.01,KP.01.1"
	KodeSurat       []string
	PrintStylesheet string
}

type S3Config struct {
	Bucket       string
	Region       string
	Endpoint     string
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
}

func (s S3Config) Enabled() bool {
	return s.Bucket != ""
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func (s SMTPConfig) Enabled() bool {
	return s.Host != ""
}

// Load membaca seluruh konfigurasi dari environment (setelah godotenv.Load di main).
func Load() Config {
	port := GetEnv("APP_PORT", "3000")
	return Config{
		Port:      port,
		Origin:    strings.TrimRight(GetEnv("APP_ORIGIN", "http://localhost:"+port), "/"),
		DSN:       GetEnv("DB_DSN", "root:@tcp(127.0.0.1:3306)/sipensiun?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret: GetEnv("JWT_SECRET", "rahasia_negara"),
		TokenTTL:  GetEnvAsDuration("JWT_TTL", 24*time.Hour),

		BackendBaseURL: strings.TrimRight(GetEnv("BACKEND_BASE_URL", ""), "/"),
		BackendTimeout: GetEnvAsDuration("BACKEND_TIMEOUT", 15*time.Second),
		BackendRetries: GetEnvAsInt("BACKEND_RETRIES", 2),

		LocalStoreDir: GetEnv("LOCAL_STORE_DIR", "./data"),
		RedisURL:      GetEnv("REDIS_URL", ""),

		UploadDir: GetEnv("UPLOAD_DIR", "./uploads"),
		S3: S3Config{
			Bucket:       GetEnv("S3_BUCKET", ""),
			Region:       GetEnv("S3_REGION", "us-east-1"),
			Endpoint:     GetEnv("S3_ENDPOINT", ""),
			AccessKey:    GetEnv("S3_ACCESS_KEY", ""),
			SecretKey:    GetEnv("S3_SECRET_KEY", ""),
			UsePathStyle: GetEnvAsBool("S3_PATH_STYLE", true),
		},

		SMTP: SMTPConfig{
			Host:     GetEnv("SMTP_HOST", ""),
			Port:     GetEnvAsInt("SMTP_PORT", 587),
			User:     GetEnv("SMTP_USER", ""),
			Password: GetEnv("SMTP_PASSWORD", ""),
			From:     GetEnv("SMTP_FROM", "noreply@sipensiun.local"),
		},

		LogLevel:  GetEnv("LOG_LEVEL", "info"),
		LogFormat: GetEnv("LOG_FORMAT", "json"),

		KodeSurat:       splitList(GetEnv("INSTANSI_KODE", "Kw.18.01,KP.01.1")),
		PrintStylesheet: GetEnv("PRINT_STYLESHEET", "/static/print.css"),
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
