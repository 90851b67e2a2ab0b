package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrInvalidPort    = errors.New("PORT must be between 1 and 65535")
	ErrWildcardOrigin = errors.New("CORS_ALLOW_ORIGINS cannot contain * because credentials are allowed")
)

// Config holds the server settings read from the environment.
type Config struct {
	Port               int
	Env                string
	LogLevel           string
	ModelPath          string
	CORSAllowOrigins   []string
	FraudThreshold     float64
	RequireProbability bool
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	IdleTimeout        time.Duration
	ShutdownTimeout    time.Duration
}

// Load reads the configuration with defaults for local development.
func Load() Config {
	return Config{
		Port:               GetIntEnv("PORT", 8000),
		Env:                GetEnv("ENV", "development"),
		LogLevel:           GetEnv("LOG_LEVEL", "info"),
		ModelPath:          GetEnv("MODEL_PATH", "fraud_model.json"),
		CORSAllowOrigins:   GetListEnv("CORS_ALLOW_ORIGINS", []string{"http://localhost:5173", "http://127.0.0.1:5173"}),
		FraudThreshold:     GetFloatEnv("FRAUD_THRESHOLD", 0.1),
		RequireProbability: GetBoolEnv("REQUIRE_PROBABILITY", false),
		ReadTimeout:        GetDurationEnv("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:       GetDurationEnv("WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:        GetDurationEnv("IDLE_TIMEOUT", 120*time.Second),
		ShutdownTimeout:    GetDurationEnv("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

// Address returns the listen address.
func (c Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate reports settings the server cannot start with.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Port)
	}
	for _, origin := range c.CORSAllowOrigins {
		// credentialed CORS requires explicit origins
		if origin == "*" {
			return ErrWildcardOrigin
		}
	}
	return nil
}

// IsProduction checks if the app runs in production mode.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetFloatEnv returns a float environment variable or a default value.
func GetFloatEnv(key string, defaultVal float64) float64 {
	if val, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

// GetBoolEnv returns a bool environment variable or a default value.
func GetBoolEnv(key string, defaultVal bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// GetListEnv returns a comma separated environment variable or a default value.
func GetListEnv(key string, defaultVal []string) []string {
	val, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	var out []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
