package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Schema cache policies understood by the decoder.
const (
	SchemaCacheKeyed  = "keyed"
	SchemaCacheSingle = "single"
)

// MaxBatchSize is the most events the Pub/Sub API will deliver per fetch request.
const MaxBatchSize = 100

// MaxCompositeRows is the most graphs one composite graph call may carry.
const MaxCompositeRows = 75

// Config represents the complete report-stream configuration file
type Config struct {
	Auth          Auth          `yaml:"auth"`
	PubSub        PubSub        `yaml:"pubsub"`
	Composite     Composite     `yaml:"composite"`
	Report        Report        `yaml:"report"`
	Observability Observability `yaml:"observability"`
}

// Auth holds the password-grant credentials
type Auth struct {
	LoginURL     string `yaml:"login_url"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
}

// PubSub configures the event bus subscription
type PubSub struct {
	Endpoint    string    `yaml:"endpoint"`
	Topic       string    `yaml:"topic"`
	BatchSize   int       `yaml:"batch_size"`    // events requested per fetch
	MaxInFlight int       `yaml:"max_in_flight"` // outstanding fetch requests
	Insecure    bool      `yaml:"insecure"`
	SchemaCache string    `yaml:"schema_cache"` // "keyed" or "single"
	Reconnect   Reconnect `yaml:"reconnect"`
}

// Reconnect configures stream resumption after transport failures
type Reconnect struct {
	Enabled        *bool         `yaml:"enabled"`
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

// IsEnabled reports whether reconnect is on. Unset means enabled.
func (r Reconnect) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

// Composite configures the composite graph REST call
type Composite struct {
	APIVersion string        `yaml:"api_version"`
	MaxRows    int           `yaml:"max_rows"`
	Timeout    time.Duration `yaml:"timeout"`
}

// Report configures where report lines are written
type Report struct {
	Stdout      *bool  `yaml:"stdout"`
	PostgresDSN string `yaml:"postgres_dsn"`
	Table       string `yaml:"table"`
}

// StdoutEnabled reports whether lines go to standard output. Unset means enabled.
func (r Report) StdoutEnabled() bool {
	return r.Stdout == nil || *r.Stdout
}

// Observability configures logging and the health server
type Observability struct {
	HealthPort int    `yaml:"health_port"`
	LogLevel   string `yaml:"log_level"`
}

// Load reads the YAML file at path (if any), applies environment overrides and
// defaults, then validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{Observability: Observability{HealthPort: -1}}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config file %s", path)
		}
	}

	cfg.ApplyEnv()
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides file values with any environment variables that are set.
func (c *Config) ApplyEnv() {
	c.Auth.LoginURL = getEnvOrDefault("SF_LOGIN_URL", c.Auth.LoginURL)
	c.Auth.ClientID = getEnvOrDefault("SF_CLIENT_ID", c.Auth.ClientID)
	c.Auth.ClientSecret = getEnvOrDefault("SF_CLIENT_SECRET", c.Auth.ClientSecret)
	c.Auth.Username = getEnvOrDefault("SF_USERNAME", c.Auth.Username)
	c.Auth.Password = getEnvOrDefault("SF_PASSWORD", c.Auth.Password)

	c.PubSub.Endpoint = getEnvOrDefault("PUBSUB_ENDPOINT", c.PubSub.Endpoint)
	c.PubSub.Topic = getEnvOrDefault("PUBSUB_TOPIC", c.PubSub.Topic)
	c.PubSub.BatchSize = getIntEnv("PUBSUB_BATCH_SIZE", c.PubSub.BatchSize)
	c.PubSub.Insecure = getBoolEnv("PUBSUB_INSECURE", c.PubSub.Insecure)
	c.PubSub.SchemaCache = getEnvOrDefault("PUBSUB_SCHEMA_CACHE", c.PubSub.SchemaCache)
	if v, ok := os.LookupEnv("PUBSUB_RECONNECT"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.PubSub.Reconnect.Enabled = &b
		}
	}

	c.Composite.APIVersion = getEnvOrDefault("SF_API_VERSION", c.Composite.APIVersion)

	c.Report.PostgresDSN = getEnvOrDefault("REPORT_POSTGRES_DSN", c.Report.PostgresDSN)

	c.Observability.HealthPort = getIntEnv("HEALTH_PORT", c.Observability.HealthPort)
	c.Observability.LogLevel = getEnvOrDefault("LOG_LEVEL", c.Observability.LogLevel)
}

// ApplyDefaults fills in anything left unset.
func (c *Config) ApplyDefaults() {
	if c.Auth.LoginURL == "" {
		c.Auth.LoginURL = "https://login.salesforce.com"
	}
	c.Auth.LoginURL = strings.TrimRight(c.Auth.LoginURL, "/")

	if c.PubSub.Endpoint == "" {
		c.PubSub.Endpoint = "api.pubsub.salesforce.com:7443"
	}
	if c.PubSub.Topic == "" {
		c.PubSub.Topic = "/event/ReportEventStream"
	}
	if c.PubSub.BatchSize == 0 {
		c.PubSub.BatchSize = 4
	}
	if c.PubSub.MaxInFlight == 0 {
		c.PubSub.MaxInFlight = 1
	}
	if c.PubSub.SchemaCache == "" {
		c.PubSub.SchemaCache = SchemaCacheKeyed
	}
	if c.PubSub.Reconnect.MaxAttempts == 0 {
		c.PubSub.Reconnect.MaxAttempts = 10
	}
	if c.PubSub.Reconnect.InitialBackoff == 0 {
		c.PubSub.Reconnect.InitialBackoff = 1 * time.Second
	}
	if c.PubSub.Reconnect.MaxBackoff == 0 {
		c.PubSub.Reconnect.MaxBackoff = 30 * time.Second
	}

	if c.Composite.APIVersion == "" {
		c.Composite.APIVersion = "v57.0"
	}
	if c.Composite.MaxRows == 0 {
		c.Composite.MaxRows = MaxCompositeRows
	}
	if c.Composite.Timeout == 0 {
		c.Composite.Timeout = 30 * time.Second
	}

	if c.Report.Table == "" {
		c.Report.Table = "report_lines"
	}

	if c.Observability.HealthPort < 0 {
		c.Observability.HealthPort = 8088
	}
	if c.Observability.LogLevel == "" {
		c.Observability.LogLevel = "info"
	}
}

// Validate checks required fields and value ranges.
func (c *Config) Validate() error {
	missing := []string{}
	if c.Auth.ClientID == "" {
		missing = append(missing, "auth.client_id (SF_CLIENT_ID)")
	}
	if c.Auth.ClientSecret == "" {
		missing = append(missing, "auth.client_secret (SF_CLIENT_SECRET)")
	}
	if c.Auth.Username == "" {
		missing = append(missing, "auth.username (SF_USERNAME)")
	}
	if c.Auth.Password == "" {
		missing = append(missing, "auth.password (SF_PASSWORD)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if c.PubSub.BatchSize < 1 || c.PubSub.BatchSize > MaxBatchSize {
		return fmt.Errorf("pubsub.batch_size must be between 1 and %d, got %d", MaxBatchSize, c.PubSub.BatchSize)
	}
	if c.PubSub.MaxInFlight < 1 {
		return fmt.Errorf("pubsub.max_in_flight must be positive, got %d", c.PubSub.MaxInFlight)
	}
	switch c.PubSub.SchemaCache {
	case SchemaCacheKeyed, SchemaCacheSingle:
	default:
		return fmt.Errorf("pubsub.schema_cache must be %q or %q, got %q",
			SchemaCacheKeyed, SchemaCacheSingle, c.PubSub.SchemaCache)
	}
	if c.PubSub.Reconnect.MaxBackoff < c.PubSub.Reconnect.InitialBackoff {
		return fmt.Errorf("pubsub.reconnect.max_backoff (%s) is below initial_backoff (%s)",
			c.PubSub.Reconnect.MaxBackoff, c.PubSub.Reconnect.InitialBackoff)
	}
	if c.Composite.MaxRows < 1 || c.Composite.MaxRows > MaxCompositeRows {
		return fmt.Errorf("composite.max_rows must be between 1 and %d, got %d", MaxCompositeRows, c.Composite.MaxRows)
	}
	if !c.Report.StdoutEnabled() && c.Report.PostgresDSN == "" {
		return fmt.Errorf("no report sink configured: enable report.stdout or set report.postgres_dsn")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return result
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	result, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return result
}
