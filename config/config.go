package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Config holds all application configuration. Values come from built-in
// defaults, then an optional YAML file (PPR_CONFIG_FILE), then environment
// variables, each layer overriding the previous one.
type Config struct {
	InputPath    string `yaml:"input_path" validate:"required"`
	SummaryPath  string `yaml:"summary_path" validate:"required"`
	WorkbookPath string `yaml:"workbook_path"`

	// RowCap is the number of lines to process; 0 means ask (interactive)
	// or process everything.
	RowCap      int    `yaml:"row_cap" validate:"omitempty,min=2"`
	Strict      bool   `yaml:"strict"`
	Interactive bool   `yaml:"interactive"`
	LogLevel    string `yaml:"log_level" validate:"oneof=debug info warn error"`

	PostgresEnabled  bool   `yaml:"postgres_enabled"`
	PostgresHost     string `yaml:"postgres_host" validate:"required_if=PostgresEnabled true"`
	PostgresPort     string `yaml:"postgres_port" validate:"required_if=PostgresEnabled true"`
	PostgresUser     string `yaml:"postgres_user"`
	PostgresPassword string `yaml:"postgres_password"`
	PostgresDB       string `yaml:"postgres_db" validate:"required_if=PostgresEnabled true"`
	PostgresSSLMode  string `yaml:"postgres_sslmode" validate:"oneof=disable allow prefer require verify-ca verify-full"`

	MaxRetries int `yaml:"max_retries" validate:"min=1"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		InputPath:    "PPR_ALL.csv",
		SummaryPath:  "PPR_OUT.csv",
		WorkbookPath: "PPR_STATS.xlsx",
		Strict:       true,
		Interactive:  true,
		LogLevel:     "info",

		PostgresHost:     "localhost",
		PostgresPort:     "5432",
		PostgresUser:     "ppr",
		PostgresPassword: "ppr123",
		PostgresDB:       "ppr_db",
		PostgresSSLMode:  "disable",

		MaxRetries: 3,
	}
}

// Load reads the .env file, the optional YAML file and the environment,
// and returns a validated Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	cfg := Default()
	if path := os.Getenv("PPR_CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFile overlays the keys present in the YAML file at path.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %q: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.InputPath = getEnv("INPUT_PATH", c.InputPath)
	c.SummaryPath = getEnv("SUMMARY_PATH", c.SummaryPath)
	c.WorkbookPath = getEnv("WORKBOOK_PATH", c.WorkbookPath)
	c.RowCap = getEnvInt("ROW_CAP", c.RowCap)
	c.Strict = getEnvBool("STRICT", c.Strict)
	c.Interactive = getEnvBool("INTERACTIVE", c.Interactive)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)

	c.PostgresEnabled = getEnvBool("POSTGRES_ENABLED", c.PostgresEnabled)
	c.PostgresHost = getEnv("POSTGRES_HOST", c.PostgresHost)
	c.PostgresPort = getEnv("POSTGRES_PORT", c.PostgresPort)
	c.PostgresUser = getEnv("POSTGRES_USER", c.PostgresUser)
	c.PostgresPassword = getEnv("POSTGRES_PASSWORD", c.PostgresPassword)
	c.PostgresDB = getEnv("POSTGRES_DB", c.PostgresDB)
	c.PostgresSSLMode = getEnv("POSTGRES_SSLMODE", c.PostgresSSLMode)

	c.MaxRetries = getEnvInt("MAX_RETRIES", c.MaxRetries)
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: validate: %w", err)
	}
	return nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
