package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port               int      `mapstructure:"port"`
		CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
		CorsAllowedMethods []string `mapstructure:"cors_allowed_methods"`
		CorsAllowedHeaders []string `mapstructure:"cors_allowed_headers"`
	} `mapstructure:"server"`

	Database struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`

	JWT struct {
		Secret          string `mapstructure:"secret"`
		ExpirationHours int    `mapstructure:"expiration_hours"`
		Issuer          string `mapstructure:"issuer"`
	} `mapstructure:"jwt"`

	Listings struct {
		BaseURL         string `mapstructure:"base_url"`
		APIKey          string `mapstructure:"api_key"`
		CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds"`
	} `mapstructure:"listings"`

	Razorpay struct {
		KeyID         string `mapstructure:"key_id"`
		KeySecret     string `mapstructure:"key_secret"`
		WebhookSecret string `mapstructure:"webhook_secret"`
	} `mapstructure:"razorpay"`

	Kafka struct {
		Brokers string `mapstructure:"brokers"`
		Topic   string `mapstructure:"topic"`
	} `mapstructure:"kafka"`

	Photos struct {
		Endpoint  string `mapstructure:"endpoint"`
		Region    string `mapstructure:"region"`
		Bucket    string `mapstructure:"bucket"`
		AccessKey string `mapstructure:"access_key"`
		SecretKey string `mapstructure:"secret_key"`
	} `mapstructure:"photos"`
}

func Load() *Config {
	// Load .env file if exists (ignore error in production)
	godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")

	// Auto bind environment variables
	v.AutomaticEnv()

	// Set sensible defaults (binary works without config file)
	v.SetDefault("server.port", 8080)
	v.SetDefault("jwt.expiration_hours", 24)
	v.SetDefault("jwt.issuer", "rently-backend")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.name", "rently_db")
	v.SetDefault("listings.cache_ttl_seconds", 300)
	v.SetDefault("kafka.topic", "ledger-entries")

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		log.Printf("[Config] No config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("config unmarshal error: %v", err)
	}

	// Override database settings from DB_* environment variables
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.Database.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil && n > 0 {
			cfg.Database.Port = n
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.Database.User = user
	}
	if pass := os.Getenv("DB_PASSWORD"); pass != "" {
		cfg.Database.Password = pass
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.Database.Name = name
	}

	// Override JWT secret from environment if not set
	if cfg.JWT.Secret == "" || cfg.JWT.Secret == "${JWT_SECRET}" {
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		if cfg.JWT.Secret == "" {
			log.Fatal("JWT_SECRET not found in environment or config")
		}
	}

	// Listings provider credentials live in the environment
	if base := os.Getenv("LISTINGS_BASE_URL"); base != "" {
		cfg.Listings.BaseURL = base
	}
	if key := os.Getenv("LISTINGS_API_KEY"); key != "" {
		cfg.Listings.APIKey = key
	}

	// Load Razorpay config from environment variables
	if keyID := os.Getenv("RAZORPAY_KEY_ID"); keyID != "" {
		cfg.Razorpay.KeyID = keyID
	}
	if keySecret := os.Getenv("RAZORPAY_KEY_SECRET"); keySecret != "" {
		cfg.Razorpay.KeySecret = keySecret
	}
	if webhookSecret := os.Getenv("RAZORPAY_WEBHOOK_SECRET"); webhookSecret != "" {
		cfg.Razorpay.WebhookSecret = webhookSecret
	}

	// Kafka is optional; publishing stays off without brokers
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.Kafka.Brokers = brokers
	}

	// Photo storage (S3-compatible, e.g. R2)
	if endpoint := os.Getenv("PHOTOS_S3_ENDPOINT"); endpoint != "" {
		cfg.Photos.Endpoint = endpoint
	}
	if bucket := os.Getenv("PHOTOS_S3_BUCKET"); bucket != "" {
		cfg.Photos.Bucket = bucket
	}
	if key := os.Getenv("PHOTOS_S3_ACCESS_KEY"); key != "" {
		cfg.Photos.AccessKey = key
	}
	if secret := os.Getenv("PHOTOS_S3_SECRET_KEY"); secret != "" {
		cfg.Photos.SecretKey = secret
	}
	if region := os.Getenv("PHOTOS_S3_REGION"); region != "" {
		cfg.Photos.Region = region
	}

	return &cfg
}
