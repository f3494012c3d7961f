package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

type Config struct {
	Addr               string
	DatabaseURL        string
	JWTSecret          string
	APITokenHash       string
	Environment        string
	RunMigrations      bool
	RunSeed            bool
	MaxBodyBytes       int64
	RateLimitPerMinute int
	MetricsEnabled     bool

	// ExpectedDocTypes drives compliance gap detection; it is configuration,
	// not logic.
	ExpectedDocTypes []string

	// SalaryBands holds ascending CTC thresholds separating the report bands.
	SalaryBands []float64

	// OnboardingChecklist is instantiated per employee at creation time.
	OnboardingChecklist []string
}

func Load() Config {
	return Config{
		Addr:                getEnv("APP_ADDR", ":8080"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		APITokenHash:        getEnv("API_TOKEN_HASH", ""),
		Environment:         getEnv("APP_ENV", "development"),
		RunMigrations:       getEnvBool("RUN_MIGRATIONS", true),
		RunSeed:             getEnvBool("RUN_SEED", false),
		MaxBodyBytes:        int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		RateLimitPerMinute:  getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		MetricsEnabled:      getEnvBool("METRICS_ENABLED", true),
		ExpectedDocTypes:    getEnvList("EXPECTED_DOC_TYPES", []string{"PAN", "AADHAAR", "BANK_PROOF"}),
		SalaryBands:         getEnvFloats("SALARY_BANDS", []float64{500000, 1000000, 2000000}),
		OnboardingChecklist: getEnvList("ONBOARDING_CHECKLIST", []string{"ID Proof Submitted", "Address Proof Submitted", "Signed Offer Letter"}),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func getEnvFloats(key string, fallback []float64) []float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var out []float64
	for _, part := range strings.Split(value, ",") {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return fallback
		}
		out = append(out, parsed)
	}
	sort.Float64s(out)
	return out
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Environment == "production" && strings.TrimSpace(c.JWTSecret) == "" && strings.TrimSpace(c.APITokenHash) == "" {
		return fmt.Errorf("JWT_SECRET or API_TOKEN_HASH must be set in production")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if len(c.ExpectedDocTypes) == 0 {
		return fmt.Errorf("EXPECTED_DOC_TYPES must not be empty")
	}
	for i := 1; i < len(c.SalaryBands); i++ {
		if c.SalaryBands[i] <= c.SalaryBands[i-1] {
			return fmt.Errorf("SALARY_BANDS must be strictly ascending")
		}
	}
	return nil
}
