package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Admin credentials & session cookie
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string // bcrypt hash, takes precedence over AdminPassword
	SessionSecret     string
	SessionMaxAge     int // seconds

	// AWS S3 / CloudFront
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	S3Bucket           string
	CloudFrontDomain   string

	// SMTP
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string
	ContactEmail  string // studio inbox that receives contact notifications

	// Redis (rate limiter store)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Kafka (page revalidation events)
	KafkaBrokers    []string
	RevalidateTopic string

	// Rendering layer (Next.js frontend)
	FrontendURL      string
	RevalidateSecret string
	AllowedOrigins   []string

	// Optional JSON overrides for the landing filter -> service name map
	LandingFilterMap string

	MaxUploadSizeMB int
}

const (
	defaultSessionMaxAge = 8 * 60 * 60
	defaultMaxUploadMB   = 50
)

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	sessionMaxAge, _ := strconv.Atoi(os.Getenv("ADMIN_SESSION_MAX_AGE"))
	if sessionMaxAge <= 0 {
		sessionMaxAge = defaultSessionMaxAge
	}

	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	maxUpload, _ := strconv.Atoi(os.Getenv("MAX_UPLOAD_SIZE_MB"))
	if maxUpload <= 0 {
		maxUpload = defaultMaxUploadMB
	}

	origins := splitAndTrim(os.Getenv("ALLOWED_ORIGINS"))
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}

	topic := os.Getenv("REVALIDATE_TOPIC")
	if topic == "" {
		topic = "page-revalidations"
	}

	return &Config{
		Port: getDefault("PORT", "8080"),
		Env:  getDefault("APP_ENV", "development"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getDefault("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSSLMode:  getDefault("DB_SSLMODE", "disable"),

		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		SessionSecret:     os.Getenv("ADMIN_SESSION_SECRET"),
		SessionMaxAge:     sessionMaxAge,

		AWSRegion:          os.Getenv("AWS_REGION"),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		S3Bucket:           os.Getenv("AWS_S3_BUCKET"),
		CloudFrontDomain:   os.Getenv("AWS_CLOUDFRONT_DOMAIN"),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getDefault("SMTP_PORT", "587"),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  getDefault("SMTP_FROM_NAME", "F Production"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),
		ContactEmail:  os.Getenv("CONTACT_EMAIL"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		KafkaBrokers:    splitAndTrim(os.Getenv("KAFKA_BROKERS")),
		RevalidateTopic: topic,

		FrontendURL:      getDefault("FRONTEND_URL", "http://localhost:3000"),
		RevalidateSecret: os.Getenv("REVALIDATE_SECRET"),
		AllowedOrigins:   origins,

		LandingFilterMap: os.Getenv("LANDING_FILTER_MAP"),

		MaxUploadSizeMB: maxUpload,
	}
}

// IsProduction controls the Secure flag on the session cookie.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// ValidateAdmin rejects a configuration that cannot authenticate anyone.
// Without a username, a password (or hash) and a session secret the token
// would be derived from empty strings, which anyone can compute.
func (c *Config) ValidateAdmin() error {
	missing := []string{}
	if c.AdminUsername == "" {
		missing = append(missing, "ADMIN_USERNAME")
	}
	if c.AdminPassword == "" && c.AdminPasswordHash == "" {
		missing = append(missing, "ADMIN_PASSWORD or ADMIN_PASSWORD_HASH")
	}
	if c.SessionSecret == "" {
		missing = append(missing, "ADMIN_SESSION_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required admin auth config: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
