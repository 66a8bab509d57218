package gopaypal

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfigDefaults(t *testing.T) {
	config := NewConfig()

	assert.Equal(t, EnvironmentSandbox, config.Environment)
	assert.Equal(t, "https://api-3t.sandbox.paypal.com/nvp", config.Endpoint)
	assert.Equal(t, "98.0", config.APIVersion)
	assert.Equal(t, 30*time.Second, config.Timeout)
	assert.Equal(t, "SUCCESS", config.SuccessAck())
	assert.Equal(t, "SUCCESSWITHWARNING", config.SuccessWithWarningAck())
	assert.NoError(t, config.Validate())
}

func TestNewConfigOptions(t *testing.T) {
	config := NewConfig(
		WithEnvironment(EnvironmentProduction),
		WithCredentials("seller_api1.example.com", "secret", "A1b2C3"),
		WithAPIVersion("124.0"),
		WithTimeout(10*time.Second),
	)

	assert.Equal(t, EnvironmentProduction, config.Environment)
	assert.Equal(t, "https://api-3t.paypal.com/nvp", config.Endpoint)
	assert.Equal(t, "seller_api1.example.com", config.APIUsername)
	assert.Equal(t, "secret", config.APIPassword)
	assert.Equal(t, "A1b2C3", config.APISignature)
	assert.Equal(t, "124.0", config.APIVersion)
	assert.Equal(t, 10*time.Second, config.Timeout)
	assert.NoError(t, config.Validate())
}

func TestConfigSatisfiesSuccessCodes(t *testing.T) {
	var codes SuccessCodes = NewConfig(WithSuccessAcks("OK", "OKWITHWARNING"))

	assert.Equal(t, "OK", codes.SuccessAck())
	assert.Equal(t, "OKWITHWARNING", codes.SuccessWithWarningAck())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      *Config
		expectError bool
	}{
		{
			name:        "defaults are valid",
			config:      NewConfig(),
			expectError: false,
		},
		{
			name:        "unknown environment",
			config:      NewConfig(WithEnvironment("staging")),
			expectError: true,
		},
		{
			name:        "partial credentials",
			config:      NewConfig(WithCredentials("seller_api1.example.com", "", "")),
			expectError: true,
		},
		{
			name:        "complete credentials",
			config:      NewConfig(WithCredentials("seller_api1.example.com", "secret", "A1b2C3")),
			expectError: false,
		},
		{
			name:        "empty success tokens",
			config:      NewConfig(WithSuccessAcks("", "")),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()

			if tt.expectError {
				assert.Error(t, err)
				var configErr *ConfigError
				assert.True(t, errors.As(err, &configErr))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWithEnvironmentUnknownKeepsEndpoint(t *testing.T) {
	config := NewConfig(WithEnvironment("staging"))

	// An unknown environment fails validation rather than clearing the
	// endpoint out from under the caller
	assert.Equal(t, "https://api-3t.sandbox.paypal.com/nvp", config.Endpoint)
	assert.Error(t, config.Validate())
}
