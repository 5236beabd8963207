package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI        string
	DBName          string
	Port            string
	JWTSecret       string
	StripeSecretKey string
}

// LoadConfig reads configuration from the environment, pulling in a .env
// file first when one is present.
func LoadConfig() *Config {
	// Missing .env is fine in production; env vars win either way.
	_ = godotenv.Load()

	return &Config{
		MongoURI:        getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:          getEnv("DB_NAME", "bistrobd"),
		Port:            getEnv("PORT", "5000"),
		JWTSecret:       getEnv("ACCESS_TOKEN_SECRET", "bistro_super_secret_2024"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
