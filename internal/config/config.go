package config

import "os"

// Config holds the service-level settings read from the environment.
type Config struct {
	Port        string
	MongoURI    string
	MongoDB     string
	RedisAddr   string
	JWTSecret   string
	StoreDriver string // "memory" or "redis"
}

// Load reads the configuration from environment variables, falling back
// to development defaults.
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "homework_coach"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		StoreDriver: getEnv("SESSION_STORE", "memory"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
