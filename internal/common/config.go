package common

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverSupabase = "supabase"
)

// Config holds all application configuration
type Config struct {
	Store    StoreConfig
	LLM      LLMConfig
	Browser  BrowserConfig
	Fetch    FetchConfig
	Pipeline PipelineConfig
	Log      LogConfig
}

// StoreConfig holds record store configuration
type StoreConfig struct {
	Driver           string
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
	SupabaseURL      string
	SupabaseKey      string
}

// LLMConfig holds inference endpoint configuration
type LLMConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	VisionModel string
	Timeout     time.Duration
}

// BrowserConfig holds page rendering configuration
type BrowserConfig struct {
	NavigationTimeout time.Duration
	Settle            time.Duration
	MaxChars          int
	Headless          bool
	ExecPath          string
}

// FetchConfig holds HTTP fetch configuration
type FetchConfig struct {
	UserAgent string
	Timeout   time.Duration
	MaxBytes  int64
}

// PipelineConfig holds run configuration
type PipelineConfig struct {
	VenuesFile  string
	Workers     int
	MetricsFile string
}

// LogConfig holds logger configuration
type LogConfig struct {
	Format string
	Level  string
}

const (
	DefaultLLMBaseURL   = "https://api.groq.com/openai/v1"
	DefaultTextModel    = "llama-3.3-70b-versatile"
	DefaultVisionModel  = "meta-llama/llama-4-scout-17b-16e-instruct"
	DefaultUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	DefaultMaxPageChars = 25000
)

// LoadConfig loads configuration from environment variables. Values from the
// given .env files (default ".env") fill in variables not already set.
func LoadConfig(envFiles ...string) (*Config, error) {
	if err := loadDotEnv(envFiles...); err != nil {
		return nil, ConfigError("load .env", err)
	}

	return &Config{
		Store: StoreConfig{
			Driver:           inferDriver(),
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 10),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 1),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 5*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
			SupabaseURL:      getEnv("SUPABASE_URL", ""),
			SupabaseKey:      getEnv("SUPABASE_KEY", ""),
		},
		LLM: LLMConfig{
			BaseURL:     getEnv("LLM_BASE_URL", DefaultLLMBaseURL),
			APIKey:      firstEnv("LLM_API_KEY", "GROQ_API_KEY", "OPENAI_API_KEY"),
			Model:       getEnv("LLM_MODEL", DefaultTextModel),
			VisionModel: getEnv("LLM_VISION_MODEL", DefaultVisionModel),
			Timeout:     getEnvAsDuration("LLM_TIMEOUT", 60*time.Second),
		},
		Browser: BrowserConfig{
			NavigationTimeout: getEnvAsDuration("BROWSER_NAV_TIMEOUT", 60*time.Second),
			Settle:            getEnvAsDuration("BROWSER_SETTLE", 4*time.Second),
			MaxChars:          getEnvAsInt("BROWSER_MAX_CHARS", DefaultMaxPageChars),
			Headless:          getEnvAsBool("BROWSER_HEADLESS", true),
			ExecPath:          getEnv("CHROME_PATH", ""),
		},
		Fetch: FetchConfig{
			UserAgent: getEnv("FETCH_USER_AGENT", DefaultUserAgent),
			Timeout:   getEnvAsDuration("FETCH_TIMEOUT", 30*time.Second),
			MaxBytes:  int64(getEnvAsInt("FETCH_MAX_BYTES", 25<<20)),
		},
		Pipeline: PipelineConfig{
			VenuesFile:  getEnv("VENUES_FILE", "configs/venues.yaml"),
			Workers:     getEnvAsInt("PIPELINE_WORKERS", 1),
			MetricsFile: getEnv("METRICS_FILE", ""),
		},
		Log: LogConfig{
			Format: getEnv("LOG_FORMAT", "text"),
			Level:  getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// inferDriver honours STORE_DRIVER, else picks the backend whose credentials are present.
func inferDriver() string {
	if d := strings.ToLower(getEnv("STORE_DRIVER", "")); d != "" {
		return d
	}
	if os.Getenv("DB_URL") != "" {
		return DriverPostgres
	}
	if os.Getenv("SUPABASE_URL") != "" {
		return DriverSupabase
	}
	return ""
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate checks that everything needed before the first venue runs is present.
func (c *Config) Validate() error {
	if err := c.ValidateLLM(); err != nil {
		return err
	}
	if err := c.ValidateStore(); err != nil {
		return err
	}
	v := NewValidator().
		Field("PIPELINE_WORKERS", c.Pipeline.Workers, Positive).
		Field("BROWSER_MAX_CHARS", c.Browser.MaxChars, Positive)
	if v.HasErrors() {
		return ConfigError(v.ErrorMessage(), nil)
	}
	return nil
}

// ValidateLLM checks the inference endpoint credentials and models.
func (c *Config) ValidateLLM() error {
	if c.LLM.APIKey == "" {
		return ConfigError("LLM_API_KEY (or GROQ_API_KEY) is required", nil)
	}
	if c.LLM.Model == "" || c.LLM.VisionModel == "" {
		return ConfigError("LLM_MODEL and LLM_VISION_MODEL must not be empty", nil)
	}
	return nil
}

// ValidateStore checks the store section on its own, for commands that only touch the store.
func (c *Config) ValidateStore() error {
	switch c.Store.Driver {
	case DriverPostgres:
		if c.Store.DSN == "" {
			return ConfigError("DB_URL is required for the postgres store", nil)
		}
	case DriverSupabase:
		if c.Store.SupabaseURL == "" || c.Store.SupabaseKey == "" {
			return ConfigError("SUPABASE_URL and SUPABASE_KEY are required for the supabase store", nil)
		}
	case DriverSQLite:
		if c.Store.DSN == "" {
			c.Store.DSN = ":memory:"
		}
	case "":
		return ConfigError("no store configured: set STORE_DRIVER, DB_URL or SUPABASE_URL", nil)
	default:
		return ConfigError("unknown STORE_DRIVER "+strconv.Quote(c.Store.Driver), nil)
	}
	return nil
}
