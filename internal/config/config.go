package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	App        AppConfig
	Attendance AttendanceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// AttendanceConfig holds the shift policy used to derive lateness and
// overtime, plus the fallback for unrecorded weekdays in monthly grids.
type AttendanceConfig struct {
	ShiftStart       string  // "HH:MM", local shift start
	GraceMinutes     int     // late grace window after shift start
	StandardHours    float64 // baseline shift length for overtime
	UnrecordedPolicy string  // absent | present | blank
	SeedDefaultCodes bool    // insert the default code catalog on startup
}

func Load() (*Config, error) {
	// A missing .env file is fine when the environment is injected directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "timekeeper"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
	}

	// Attendance policy; these were hard-coded literals historically and are
	// configurable per deployment now.
	graceMinutes, err := strconv.Atoi(getEnv("GRACE_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid GRACE_MINUTES: %w", err)
	}

	standardHours, err := strconv.ParseFloat(getEnv("STANDARD_HOURS", "8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid STANDARD_HOURS: %w", err)
	}

	config.Attendance = AttendanceConfig{
		ShiftStart:       getEnv("SHIFT_START", "09:00"),
		GraceMinutes:     graceMinutes,
		StandardHours:    standardHours,
		UnrecordedPolicy: getEnv("UNRECORDED_POLICY", "absent"),
		SeedDefaultCodes: getEnv("SEED_DEFAULT_CODES", "true") == "true",
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if _, err := time.Parse("15:04", c.Attendance.ShiftStart); err != nil {
		return fmt.Errorf("SHIFT_START must be in HH:MM format: %w", err)
	}
	if c.Attendance.GraceMinutes < 0 {
		return fmt.Errorf("GRACE_MINUTES must not be negative")
	}
	if c.Attendance.StandardHours <= 0 {
		return fmt.Errorf("STANDARD_HOURS must be positive")
	}
	switch c.Attendance.UnrecordedPolicy {
	case "absent", "present", "blank":
	default:
		return fmt.Errorf("UNRECORDED_POLICY must be one of: absent, present, blank")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
