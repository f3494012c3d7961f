package config

import "testing"

func validConfig() Config {
	return Config{
		Addr:                ":8080",
		DatabaseURL:         "postgres://localhost/hrcore",
		Environment:         "development",
		MaxBodyBytes:        1048576,
		RateLimitPerMinute:  120,
		ExpectedDocTypes:    []string{"PAN"},
		SalaryBands:         []float64{500000, 1000000},
		OnboardingChecklist: []string{"ID Proof Submitted"},
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateRequiresDatabaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.DatabaseURL = "  "
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing DATABASE_URL")
	}
}

func TestValidateRequiresCredentialInProduction(t *testing.T) {
	cfg := validConfig()
	cfg.Environment = "production"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for production without credentials")
	}

	cfg.JWTSecret = "secret"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid production config, got %v", err)
	}
}

func TestValidateRejectsUnorderedBands(t *testing.T) {
	cfg := validConfig()
	cfg.SalaryBands = []float64{1000000, 500000}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unordered salary bands")
	}
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("HRCORE_TEST_LIST", "PAN, AADHAAR ,BANK_PROOF,")
	got := getEnvList("HRCORE_TEST_LIST", nil)
	if len(got) != 3 || got[0] != "PAN" || got[2] != "BANK_PROOF" {
		t.Fatalf("unexpected list: %v", got)
	}
}

func TestGetEnvFloatsSorts(t *testing.T) {
	t.Setenv("HRCORE_TEST_BANDS", "2000000,500000,1000000")
	got := getEnvFloats("HRCORE_TEST_BANDS", nil)
	if len(got) != 3 || got[0] != 500000 || got[2] != 2000000 {
		t.Fatalf("unexpected bands: %v", got)
	}
}
