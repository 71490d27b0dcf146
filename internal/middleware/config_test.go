package middleware

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("returns value when set", func(t *testing.T) {
		os.Setenv("MW_TEST_VAR", "set")
		defer os.Unsetenv("MW_TEST_VAR")

		assert.Equal(t, "set", getEnv("MW_TEST_VAR", "default"))
	})

	t.Run("returns default when not set", func(t *testing.T) {
		assert.Equal(t, "default", getEnv("MW_TEST_MISSING", "default"))
	})
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		defaultValue bool
		expected     bool
	}{
		{"true value", "true", false, true},
		{"false value", "false", true, false},
		{"numeric true", "1", false, true},
		{"invalid falls back to default", "maybe", true, true},
		{"empty falls back to default", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				os.Setenv("MW_TEST_BOOL", tt.value)
				defer os.Unsetenv("MW_TEST_BOOL")
			} else {
				os.Unsetenv("MW_TEST_BOOL")
			}

			assert.Equal(t, tt.expected, getEnvBool("MW_TEST_BOOL", tt.defaultValue))
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		defaultValue int
		expected     int
	}{
		{"valid number", "42", 0, 42},
		{"negative number", "-7", 0, -7},
		{"invalid falls back to default", "abc", 10, 10},
		{"empty falls back to default", "", 99, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				os.Setenv("MW_TEST_INT", tt.value)
				defer os.Unsetenv("MW_TEST_INT")
			} else {
				os.Unsetenv("MW_TEST_INT")
			}

			assert.Equal(t, tt.expected, getEnvInt("MW_TEST_INT", tt.defaultValue))
		})
	}
}
