package config

import (
	"fmt"
	"log"
	"os"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/texcare/storefront/internal/models"
)

type Config struct {
	PORT                     string
	LOG_LEVEL                string
	DB_DRIVER                string
	DB_HOST                  string
	DB_PORT                  string
	DB_USER                  string
	DB_PASSWORD              string
	DB_NAME                  string
	SHOPIFY_STORE_DOMAIN     string
	SHOPIFY_API_VERSION      string
	SHOPIFY_STOREFRONT_TOKEN string
	SHOPIFY_ADMIN_TOKEN      string
	RECAPTCHA_SECRET         string
	SMTP_HOST                string
	SMTP_PORT                string
	SMTP_USER                string
	SMTP_PASSWORD            string
	SMTP_FROM                string
	CONTACT_RECIPIENT        string
	ES_URL                   string
	ES_USER                  string
	ES_PASSWORD              string
	KAFKA_ADDRESS            string
	SESSION_SECRET           string
	ADMIN_KEY_HASH           string
	CONTENT_FILE             string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		PORT:                     getenv("PORT", "8080"),
		LOG_LEVEL:                getenv("LOG_LEVEL", "info"),
		DB_DRIVER:                getenv("DB_DRIVER", "postgres"),
		DB_HOST:                  os.Getenv("DB_HOST"),
		DB_PORT:                  os.Getenv("DB_PORT"),
		DB_USER:                  os.Getenv("DB_USER"),
		DB_PASSWORD:              os.Getenv("DB_PASSWORD"),
		DB_NAME:                  os.Getenv("DB_NAME"),
		SHOPIFY_STORE_DOMAIN:     os.Getenv("SHOPIFY_STORE_DOMAIN"),
		SHOPIFY_API_VERSION:      getenv("SHOPIFY_API_VERSION", "2024-07"),
		SHOPIFY_STOREFRONT_TOKEN: os.Getenv("SHOPIFY_STOREFRONT_TOKEN"),
		SHOPIFY_ADMIN_TOKEN:      os.Getenv("SHOPIFY_ADMIN_TOKEN"),
		RECAPTCHA_SECRET:         os.Getenv("RECAPTCHA_SECRET"),
		SMTP_HOST:                os.Getenv("SMTP_HOST"),
		SMTP_PORT:                getenv("SMTP_PORT", "587"),
		SMTP_USER:                os.Getenv("SMTP_USER"),
		SMTP_PASSWORD:            os.Getenv("SMTP_PASSWORD"),
		SMTP_FROM:                os.Getenv("SMTP_FROM"),
		CONTACT_RECIPIENT:        os.Getenv("CONTACT_RECIPIENT"),
		ES_URL:                   os.Getenv("ES_URL"),
		ES_USER:                  os.Getenv("ES_USER"),
		ES_PASSWORD:              os.Getenv("ES_PASSWORD"),
		KAFKA_ADDRESS:            os.Getenv("KAFKA_ADDRESS"),
		SESSION_SECRET:           os.Getenv("SESSION_SECRET"),
		ADMIN_KEY_HASH:           os.Getenv("ADMIN_KEY_HASH"),
		CONTENT_FILE:             getenv("CONTENT_FILE", "content/articles.json"),
	}

	return config, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func InitDB(configuration *Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch configuration.DB_DRIVER {
	case "sqlite":
		name := configuration.DB_NAME
		if name == "" {
			name = "storefront.db"
		}
		db, err = gorm.Open(sqlite.Open(name), &gorm.Config{})
	default:
		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=disable",
			configuration.DB_USER, configuration.DB_PASSWORD,
			configuration.DB_HOST, configuration.DB_PORT, configuration.DB_NAME,
		)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	if err := db.AutoMigrate(&models.ContactSubmission{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}
