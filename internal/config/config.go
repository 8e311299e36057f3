// Package config loads the server configuration.
//
// Values are resolved in increasing precedence: built-in defaults, the YAML
// file named by --config, environment variables, then command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Store backends
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config is the server configuration
type Config struct {
	Store    string `yaml:"store"`
	GRPCAddr string `yaml:"grpc_addr"`
	OpsAddr  string `yaml:"ops_addr"`
	APIToken string `yaml:"api_token"`
	LogLevel string `yaml:"log_level"`

	// Development switches to the human readable zap encoder
	Development bool `yaml:"development"`

	Database  DatabaseConfig  `yaml:"database"`
	Paystack  PaystackConfig  `yaml:"paystack"`
	Reconcile ReconcileConfig `yaml:"reconcile"`
}

// DatabaseConfig configures the Postgres store
type DatabaseConfig struct {
	// ConnStr wins over the individual fields when set
	ConnStr  string `yaml:"conn_str"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`

	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	// LockTimeout bounds how long a settlement waits on a row lock
	LockTimeout time.Duration `yaml:"lock_timeout"`
}

// PaystackConfig configures the payment provider client
type PaystackConfig struct {
	SecretKey              string        `yaml:"secret_key"`
	BaseURL                string        `yaml:"base_url"`
	CallbackURL            string        `yaml:"callback_url"`
	Timeout                time.Duration `yaml:"timeout"`
	MaxConsecutiveFailures uint32        `yaml:"max_consecutive_failures"`
	OpenTimeout            time.Duration `yaml:"open_timeout"`
}

// ReconcileConfig configures the reconciliation engine
type ReconcileConfig struct {
	OracleTimeout     time.Duration `yaml:"oracle_timeout"`
	CommitTimeout     time.Duration `yaml:"commit_timeout"`
	MaxAttempts       int           `yaml:"max_attempts"`
	RetryBackoff      time.Duration `yaml:"retry_backoff"`
	StrictAmountCheck bool          `yaml:"strict_amount_check"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Store:    StorePostgres,
		GRPCAddr: ":8080",
		OpsAddr:  ":9090",
		APIToken: "dev-token",
		LogLevel: "info",
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            "5432",
			User:            "postgres",
			Password:        "postgres",
			Name:            "dreambox",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
			LockTimeout:     2 * time.Second,
		},
		Paystack: PaystackConfig{
			BaseURL:                "https://api.paystack.co",
			Timeout:                10 * time.Second,
			MaxConsecutiveFailures: 5,
			OpenTimeout:            30 * time.Second,
		},
		Reconcile: ReconcileConfig{
			OracleTimeout: 10 * time.Second,
			CommitTimeout: 5 * time.Second,
			MaxAttempts:   3,
			RetryBackoff:  50 * time.Millisecond,
		},
	}
}

// Load resolves the configuration from args (without the program name) and the environment.
// getenv is usually os.Getenv.
func Load(args []string, getenv func(string) string) (*Config, error) {
	cfg := Default()

	flagSet := pflag.NewFlagSet("dreambox-server", pflag.ContinueOnError)
	configPath := flagSet.String("config", "", "path to a YAML configuration file")
	store := flagSet.String("store", cfg.Store, "storage backend: postgres or memory")
	grpcAddr := flagSet.String("grpc-addr", cfg.GRPCAddr, "gRPC listen address")
	opsAddr := flagSet.String("ops-addr", cfg.OpsAddr, "health and metrics listen address")
	logLevel := flagSet.String("log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	development := flagSet.Bool("development", cfg.Development, "human readable logs")
	connStr := flagSet.String("db-conn-str", "", "Postgres connection string")
	strict := flagSet.Bool("strict-amount-check", cfg.Reconcile.StrictAmountCheck, "reject payments whose verified amount differs from the deposit")

	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}

	// 1. File
	if *configPath != "" {
		if err := cfg.loadFile(*configPath); err != nil {
			return nil, err
		}
	}

	// 2. Environment
	if err := cfg.applyEnv(getenv); err != nil {
		return nil, err
	}

	// 3. Flags, only those given explicitly
	if flagSet.Changed("store") {
		cfg.Store = *store
	}
	if flagSet.Changed("grpc-addr") {
		cfg.GRPCAddr = *grpcAddr
	}
	if flagSet.Changed("ops-addr") {
		cfg.OpsAddr = *opsAddr
	}
	if flagSet.Changed("log-level") {
		cfg.LogLevel = *logLevel
	}
	if flagSet.Changed("development") {
		cfg.Development = *development
	}
	if flagSet.Changed("db-conn-str") {
		cfg.Database.ConnStr = *connStr
	}
	if flagSet.Changed("strict-amount-check") {
		cfg.Reconcile.StrictAmountCheck = *strict
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	setString := func(key string, dst *string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}

	setString("STORE", &c.Store)
	setString("GRPC_ADDR", &c.GRPCAddr)
	setString("OPS_ADDR", &c.OpsAddr)
	setString("API_TOKEN", &c.APIToken)
	setString("LOG_LEVEL", &c.LogLevel)

	setString("DB_CONN_STR", &c.Database.ConnStr)
	setString("DB_HOST", &c.Database.Host)
	setString("DB_PORT", &c.Database.Port)
	setString("DB_USER", &c.Database.User)
	setString("DB_PASSWORD", &c.Database.Password)
	setString("DB_NAME", &c.Database.Name)

	setString("PAYSTACK_SECRET_KEY", &c.Paystack.SecretKey)
	setString("PAYSTACK_BASE_URL", &c.Paystack.BaseURL)
	setString("PAYSTACK_CALLBACK_URL", &c.Paystack.CallbackURL)

	if v := getenv("STRICT_AMOUNT_CHECK"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid STRICT_AMOUNT_CHECK: %w", err)
		}
		c.Reconcile.StrictAmountCheck = strict
	}
	return nil
}

// Validate checks the resolved configuration
func (c *Config) Validate() error {
	var errs []error

	switch c.Store {
	case StorePostgres, StoreMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown store %q", c.Store))
	}
	if c.GRPCAddr == "" {
		errs = append(errs, errors.New("grpc_addr is required"))
	}
	if c.APIToken == "" {
		errs = append(errs, errors.New("api_token is required"))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid log_level: %w", err))
	}
	if c.Paystack.SecretKey == "" {
		errs = append(errs, errors.New("paystack secret key is required (PAYSTACK_SECRET_KEY)"))
	}
	if c.Reconcile.MaxAttempts < 1 {
		errs = append(errs, errors.New("reconcile.max_attempts must be at least 1"))
	}
	if c.Reconcile.OracleTimeout <= 0 || c.Reconcile.CommitTimeout <= 0 {
		errs = append(errs, errors.New("reconcile timeouts must be positive"))
	}
	if c.Database.LockTimeout <= 0 {
		errs = append(errs, errors.New("database.lock_timeout must be positive"))
	}

	return errors.Join(errs...)
}

// ConnString returns the Postgres connection string
func (d DatabaseConfig) ConnString() string {
	if d.ConnStr != "" {
		return d.ConnStr
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

// Level returns the parsed log level
func (c *Config) Level() zapcore.Level {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}
