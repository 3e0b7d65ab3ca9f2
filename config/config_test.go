package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected bool
	}{
		{
			name: "development environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "development"},
			},
			expected: true,
		},
		{
			name: "debug gin mode",
			config: &Config{
				Server: ServerConfig{GinMode: "debug"},
			},
			expected: true,
		},
		{
			name: "production environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "production"},
			},
			expected: false,
		},
		{
			name: "release mode",
			config: &Config{
				Server: ServerConfig{GinMode: "release", AppEnv: "production"},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.IsDevelopment()
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_IsProduction(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected bool
	}{
		{
			name: "production environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "production"},
			},
			expected: true,
		},
		{
			name: "development environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "development"},
			},
			expected: false,
		},
		{
			name: "staging environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "staging"},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.IsProduction()
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      *Config
		expectError bool
		errorMsg    string
	}{
		{
			name: "valid config",
			config: &Config{
				Database: DatabaseConfig{URL: "postgres://localhost:5432/skillforge"},
				Session: SessionConfig{
					JWTSecret: "0123456789abcdef0123456789abcdef",
				},
			},
			expectError: false,
		},
		{
			name: "missing database URL",
			config: &Config{
				Session: SessionConfig{
					JWTSecret: "0123456789abcdef0123456789abcdef",
				},
			},
			expectError: true,
			errorMsg:    "DATABASE_URL is required",
		},
		{
			name: "missing JWT secret",
			config: &Config{
				Database: DatabaseConfig{URL: "postgres://localhost:5432/skillforge"},
			},
			expectError: true,
			errorMsg:    "JWT_SECRET is required",
		},
		{
			name: "short JWT secret",
			config: &Config{
				Database: DatabaseConfig{URL: "postgres://localhost:5432/skillforge"},
				Session: SessionConfig{
					JWTSecret: "too-short",
				},
			},
			expectError: true,
			errorMsg:    "JWT_SECRET must be at least 32 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	os.Clearenv()

	// Set only required fields
	os.Setenv("DATABASE_URL", "postgres://localhost:5432/skillforge")
	os.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	// Check defaults
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, "production", cfg.Server.AppEnv)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "/app/logs", cfg.Logging.Dir)
	assert.Equal(t, "skillforge_session", cfg.Session.CookieName)
	assert.Equal(t, 168, cfg.Session.TTLHours)
	assert.Equal(t, 12, cfg.Session.BcryptCost)
	assert.Equal(t, "skillforge-api", cfg.Observability.ServiceName)
}

func TestLoad_WithEnvironmentVariables(t *testing.T) {
	os.Clearenv()

	os.Setenv("DATABASE_URL", "postgres://db:5432/app")
	os.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	os.Setenv("PORT", "9000")
	os.Setenv("APP_ENV", "development")
	os.Setenv("SESSION_TTL_HOURS", "24")
	os.Setenv("ALLOWED_CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.AppEnv)
	assert.Equal(t, 24, cfg.Session.TTLHours)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.AllowedOrigins)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Clearenv()

	_, err := Load()
	assert.Error(t, err)
}
