package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort string
	JWTKey  []byte
	JWTExp  time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MongoURI      string
	MongoDatabase string

	IdentityBackend  string // "google" or "local"
	IdentityEndpoint string
	TokenEndpoint    string
	IdentityAPIKey   string

	CodeforcesAPIURL string
	LeetcodeAPIURL   string

	ContestCacheTTL        time.Duration
	ContestRefreshInterval time.Duration
	RegistryCacheTTL       time.Duration

	FeedEndpointURL string
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = &Config{
		APIPort: getEnv("API_PORT", "8080"),
		JWTKey:  []byte(getEnv("JWT_SECRET", "defaultsecret")),
		JWTExp:  time.Duration(getEnvAsInt("JWT_EXPIRATION_HOURS", 72)) * time.Hour,

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DB", "canonforces"),

		IdentityBackend:  getEnv("IDENTITY_BACKEND", "local"),
		IdentityEndpoint: getEnv("IDENTITY_ENDPOINT", "https://identitytoolkit.googleapis.com"),
		TokenEndpoint:    getEnv("TOKEN_ENDPOINT", "https://securetoken.googleapis.com"),
		IdentityAPIKey:   getEnv("IDENTITY_API_KEY", ""),

		CodeforcesAPIURL: getEnv("CODEFORCES_API_URL", "https://codeforces.com/api"),
		LeetcodeAPIURL:   getEnv("LEETCODE_API_URL", "https://leetcode.com/graphql"),

		ContestCacheTTL:        time.Duration(getEnvAsInt("CONTEST_CACHE_TTL_SECONDS", 600)) * time.Second,
		ContestRefreshInterval: time.Duration(getEnvAsInt("CONTEST_REFRESH_INTERVAL_SECONDS", 900)) * time.Second,
		RegistryCacheTTL:       time.Duration(getEnvAsInt("REGISTRY_CACHE_TTL_SECONDS", 3600)) * time.Second,

		FeedEndpointURL: getEnv("FEED_ENDPOINT_URL", "http://localhost:8080/api/v1/contests"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
