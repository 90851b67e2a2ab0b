package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "MODEL_PATH", "CORS_ALLOW_ORIGINS", "FRAUD_THRESHOLD", "REQUIRE_PROBABILITY", "READ_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, 8000, cfg.Port)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, ":8000", cfg.Address())
	assert.Equal(t, "fraud_model.json", cfg.ModelPath)
	assert.Equal(t, []string{"http://localhost:5173", "http://127.0.0.1:5173"}, cfg.CORSAllowOrigins)
	assert.Equal(t, 0.1, cfg.FraudThreshold)
	assert.False(t, cfg.RequireProbability)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("MODEL_PATH", "/models/fraud.json")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.example , https://b.example,")
	t.Setenv("FRAUD_THRESHOLD", "0.25")
	t.Setenv("REQUIRE_PROBABILITY", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, ":9090", cfg.Address())
	assert.NoError(t, cfg.Validate())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/models/fraud.json", cfg.ModelPath)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigins)
	assert.Equal(t, 0.25, cfg.FraudThreshold)
	assert.True(t, cfg.RequireProbability)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestTypedGetters_FallBackOnGarbage(t *testing.T) {
	t.Setenv("X_INT", "ten")
	t.Setenv("X_FLOAT", "abc")
	t.Setenv("X_BOOL", "maybe")
	t.Setenv("X_DURATION", "soon")
	t.Setenv("X_LIST", " , ")

	assert.Equal(t, 10, GetIntEnv("X_INT", 10))
	assert.Equal(t, 0.5, GetFloatEnv("X_FLOAT", 0.5))
	assert.True(t, GetBoolEnv("X_BOOL", true))
	assert.Equal(t, time.Minute, GetDurationEnv("X_DURATION", time.Minute))
	assert.Equal(t, []string{"x"}, GetListEnv("X_LIST", []string{"x"}))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		origins string
		want    error
	}{
		{"wildcard origin", "8000", "*", ErrWildcardOrigin},
		{"wildcard among origins", "8000", "http://localhost:5173, *", ErrWildcardOrigin},
		{"port too large", "70000", "http://localhost:5173", ErrInvalidPort},
		{"port zero", "0", "http://localhost:5173", ErrInvalidPort},
		{"unparsable port uses default", "http", "http://localhost:5173", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.port)
			t.Setenv("CORS_ALLOW_ORIGINS", tt.origins)

			err := Load().Validate()

			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
