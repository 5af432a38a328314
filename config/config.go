package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	StorefrontAddr   string
	AnalyticsAddr    string
	GatewayAddr      string
	StorefrontSvcURL string
	AnalyticsSvcURL  string
	PublicBaseURL    string
	FrontendDir      string
	StorageBackend   string
	KafkaEnabled     bool
	SimulateLatency  bool
	MockPassword     string
}

// Load reads .env when present and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("WARNING: failed to read .env: %v", err)
	}
	return Config{
		StorefrontAddr:   getEnv("STOREFRONT_ADDR", ":8081"),
		AnalyticsAddr:    getEnv("ANALYTICS_ADDR", ":8083"),
		GatewayAddr:      getEnv("GATEWAY_ADDR", ":8080"),
		StorefrontSvcURL: getEnv("STOREFRONT_SVC_URL", "http://localhost:8081"),
		AnalyticsSvcURL:  getEnv("ANALYTICS_SVC_URL", "http://localhost:8083"),
		PublicBaseURL:    getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		FrontendDir:      os.Getenv("FRONTEND_DIR"),
		StorageBackend:   getEnv("STORAGE_BACKEND", BackendMemory),
		KafkaEnabled:     os.Getenv("KAFKA_BROKER") != "",
		SimulateLatency:  getEnvBool("SIMULATE_LATENCY", true),
		MockPassword:     getEnv("MOCK_PASSWORD", "password"),
	}
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
		Addr: getEnv("REDIS_HOST", "localhost") + ":" + getEnv("REDIS_PORT", "6379"),
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

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
