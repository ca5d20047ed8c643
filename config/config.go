package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// Environment identifies the deployment environment. Production takes
// precedence over preview; anything else is development.
type Environment string

const (
	Development Environment = "development"
	Preview     Environment = "preview"
	Production  Environment = "production"
)

var defaultAPIURLs = map[Environment]string{
	Development: "http://localhost:8080/api",
	Preview:     "https://preview.gulshan-laundry.vercel.app/api",
	Production:  "https://gulshan-laundry.vercel.app/api",
}

// LoadEnv reads a .env file if one is present. Missing files are fine.
func LoadEnv() {
	_ = godotenv.Load()
}

// ResolveEnvironment maps the APP_ENV variable to one of the three known
// environments, defaulting to development.
func ResolveEnvironment() Environment {
	switch os.Getenv("APP_ENV") {
	case "production":
		return Production
	case "preview":
		return Preview
	default:
		return Development
	}
}

// APIBaseURL returns the base URL for the given environment, honoring the
// API_URL override.
func APIBaseURL(env Environment) string {
	if url := os.Getenv("API_URL"); url != "" {
		return url
	}
	return defaultAPIURLs[env]
}

// MocksEnabled reports whether the client should fabricate responses instead
// of issuing network calls. Mocks are never used in production.
func MocksEnabled(env Environment) bool {
	if env == Production {
		return false
	}
	v := os.Getenv("USE_MOCKS")
	return v == "1" || v == "true"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// AdminCredentials returns the configured back-office credential pair.
func AdminCredentials() (email, password string) {
	return getEnv("ADMIN_EMAIL", "admin@example.com"), getEnv("ADMIN_PASSWORD", "password123")
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(os.Getenv("KAFKA_BROKER")),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}
