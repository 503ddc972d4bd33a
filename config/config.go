package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	ServerPort  string
	GinMode     string
	CORSOrigins []string

	// Occupancy
	RandomSeed           uint64
	DefaultOccupancyRate float64
	HighlightDuration    time.Duration

	// Events
	NATSURL     string
	NATSSubject string
}

// Load loads configuration from environment variables
func Load() *Config {
	// Try to load .env file (optional for local development)
	_ = godotenv.Load()

	config := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "release"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),

		RandomSeed:           getUint("RANDOM_SEED", 0),
		DefaultOccupancyRate: getFloat("DEFAULT_OCCUPANCY_RATE", 0.4),
		HighlightDuration:    getDuration("HIGHLIGHT_DURATION", 3*time.Second),

		NATSURL:     os.Getenv("NATS_URL"),
		NATSSubject: getEnv("NATS_SUBJECT", "hotel.events"),
	}

	// Validate occupancy configuration
	if config.DefaultOccupancyRate < 0 || config.DefaultOccupancyRate > 1 {
		log.Printf("WARNING: DEFAULT_OCCUPANCY_RATE %v out of range [0,1] (using 0.4)\n", config.DefaultOccupancyRate)
		config.DefaultOccupancyRate = 0.4
	}
	if config.HighlightDuration < 0 {
		log.Printf("WARNING: negative HIGHLIGHT_DURATION (using 3s)\n")
		config.HighlightDuration = 3 * time.Second
	}
	if config.NATSURL == "" {
		log.Println("NATS_URL not set, occupancy events disabled")
	}

	return config
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getUint(key string, defaultValue uint64) uint64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		log.Printf("WARNING: invalid %s %q: %v\n", key, value, err)
		return defaultValue
	}
	return n
}

func getFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("WARNING: invalid %s %q: %v\n", key, value, err)
		return defaultValue
	}
	return f
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("WARNING: invalid %s %q: %v\n", key, value, err)
		return defaultValue
	}
	return d
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
