package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"turfbook/internal/cache"
	"turfbook/internal/database"
	"turfbook/internal/external"
	"turfbook/internal/messaging"
	"turfbook/internal/search"
)

type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	LogFormat      string
	RequestTimeout time.Duration

	JWTSecret string

	Database      database.Config
	NATS          messaging.Config
	Redis         cache.Config
	Elasticsearch search.Config
	WhatsApp      external.WhatsAppConfig
	Razorpay      external.RazorpayConfig
	PayGlocal     external.PayGlocalConfig
}

// Load reads configuration from the environment. A local .env file is
// applied first when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SEC", 30)) * time.Second,

		JWTSecret: getEnv("JWT_SECRET", ""),

		Database: database.Config{
			Host:               getEnv("DB_HOST", "localhost"),
			Port:               getEnvInt("DB_PORT", 5432),
			User:               getEnv("DB_USER", "turfbook"),
			Password:           getEnv("DB_PASSWORD", "turfbook123"),
			DBName:             getEnv("DB_NAME", "turfbook"),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 50),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetimeMin: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 5),
			ConnMaxIdleTimeMin: getEnvInt("DB_CONN_MAX_IDLE_TIME_MIN", 1),
		},

		NATS: messaging.Config{
			URL:       getEnv("NATS_URL", "nats://localhost:4222"),
			ClusterID: getEnv("NATS_CLUSTER_ID", "turfbook"),
			ClientID:  getEnv("NATS_CLIENT_ID", "turfbook-api"),
		},

		Redis: cache.Config{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      time.Duration(getEnvInt("REDIS_AVAILABILITY_TTL_SEC", 60)) * time.Second,
		},

		Elasticsearch: search.Config{
			URL:        getEnv("ELASTICSEARCH_URL", "http://localhost:9200"),
			Username:   getEnv("ELASTICSEARCH_USERNAME", ""),
			Password:   getEnv("ELASTICSEARCH_PASSWORD", ""),
			Index:      getEnv("ELASTICSEARCH_TURF_INDEX", "turfs"),
			MaxRetries: getEnvInt("ELASTICSEARCH_MAX_RETRIES", 3),
		},

		WhatsApp: external.WhatsAppConfig{
			BaseURL:     getEnv("WHATSAPP_BASE_URL", "https://graph.facebook.com/v19.0"),
			PhoneID:     getEnv("WHATSAPP_PHONE_ID", ""),
			AccessToken: getEnv("WHATSAPP_ACCESS_TOKEN", ""),
			Region:      getEnv("WHATSAPP_DEFAULT_REGION", "IN"),
			Timeout:     time.Duration(getEnvInt("WHATSAPP_TIMEOUT_SEC", 30)) * time.Second,
		},

		Razorpay: external.RazorpayConfig{
			BaseURL:   getEnv("RAZORPAY_BASE_URL", "https://api.razorpay.com"),
			KeyID:     getEnv("RAZORPAY_KEY_ID", ""),
			KeySecret: getEnv("RAZORPAY_KEY_SECRET", ""),
			Timeout:   time.Duration(getEnvInt("RAZORPAY_TIMEOUT_SEC", 30)) * time.Second,
		},

		PayGlocal: external.PayGlocalConfig{
			BaseURL:    getEnv("PAYGLOCAL_BASE_URL", "https://api.uat.payglocal.in"),
			MerchantID: getEnv("PAYGLOCAL_MERCHANT_ID", ""),
			APISecret:  getEnv("PAYGLOCAL_API_SECRET", ""),
			Timeout:    time.Duration(getEnvInt("PAYGLOCAL_TIMEOUT_SEC", 30)) * time.Second,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
