package gopaypal

import (
	"fmt"
	"time"
)

// SuccessCodes supplies the ACK tokens the NVP API uses to mark a call as
// successful. Response only depends on this capability, so callers with
// their own configuration layer can satisfy it directly.
type SuccessCodes interface {
	SuccessAck() string
	SuccessWithWarningAck() string
}

// Canonical ACK success tokens recognized by the NVP API.
const (
	AckSuccess            = "SUCCESS"
	AckSuccessWithWarning = "SUCCESSWITHWARNING"
)

// Environment selects which PayPal API endpoint a caller talks to.
type Environment string

const (
	EnvironmentSandbox    Environment = "sandbox"
	EnvironmentProduction Environment = "production"
)

var nvpEndpoints = map[Environment]string{
	EnvironmentSandbox:    "https://api-3t.sandbox.paypal.com/nvp",
	EnvironmentProduction: "https://api-3t.paypal.com/nvp",
}

// Config describes a caller's PayPal API setup: environment, 3-token API
// credentials, and the ACK tokens treated as success. The transport that
// sends requests lives with the caller; Config only carries its settings
// and satisfies SuccessCodes for response parsing.
type Config struct {
	Environment Environment
	Endpoint    string
	APIVersion  string

	APIUsername  string
	APIPassword  string
	APISignature string

	Timeout time.Duration

	ACKSuccess            string
	ACKSuccessWithWarning string
}

// ConfigOption configures a Config.
type ConfigOption func(*Config)

// WithEnvironment selects the API environment and its NVP endpoint
func WithEnvironment(env Environment) ConfigOption {
	return func(c *Config) {
		c.Environment = env
		if endpoint, exists := nvpEndpoints[env]; exists {
			c.Endpoint = endpoint
		}
	}
}

// WithCredentials sets the 3-token API credentials
func WithCredentials(username, password, signature string) ConfigOption {
	return func(c *Config) {
		c.APIUsername = username
		c.APIPassword = password
		c.APISignature = signature
	}
}

// WithAPIVersion sets the NVP API version sent with requests
func WithAPIVersion(version string) ConfigOption {
	return func(c *Config) {
		c.APIVersion = version
	}
}

// WithTimeout sets the HTTP timeout the caller's transport should use
func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithSuccessAcks overrides the ACK tokens treated as success. Tokens are
// compared against the already-uppercased response value, so they must be
// uppercase themselves.
func WithSuccessAcks(success, successWithWarning string) ConfigOption {
	return func(c *Config) {
		c.ACKSuccess = success
		c.ACKSuccessWithWarning = successWithWarning
	}
}

// NewConfig returns a Config for the sandbox environment with the canonical
// success tokens, adjusted by opts.
func NewConfig(opts ...ConfigOption) *Config {
	config := &Config{
		Environment:           EnvironmentSandbox,
		Endpoint:              nvpEndpoints[EnvironmentSandbox],
		APIVersion:            "98.0",
		Timeout:               30 * time.Second,
		ACKSuccess:            AckSuccess,
		ACKSuccessWithWarning: AckSuccessWithWarning,
	}

	for _, opt := range opts {
		opt(config)
	}

	return config
}

func (c *Config) SuccessAck() string {
	return c.ACKSuccess
}

func (c *Config) SuccessWithWarningAck() string {
	return c.ACKSuccessWithWarning
}

// Validate checks that the Config describes a usable setup. Partial
// credentials are the usual copy-paste mistake, so all three tokens must be
// set together or not at all.
func (c *Config) Validate() error {
	if _, exists := nvpEndpoints[c.Environment]; !exists {
		return NewConfigError(fmt.Sprintf("unknown environment %q", c.Environment), nil)
	}

	provided := 0
	for _, credential := range []string{c.APIUsername, c.APIPassword, c.APISignature} {
		if credential != "" {
			provided++
		}
	}
	if provided != 0 && provided != 3 {
		return NewConfigError("incomplete API credentials: username, password and signature must all be set", nil)
	}

	if c.ACKSuccess == "" || c.ACKSuccessWithWarning == "" {
		return NewConfigError("success ACK tokens must not be empty", nil)
	}

	return nil
}
