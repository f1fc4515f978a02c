// Package config provides configuration management for the notification report tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"consultapje/internal/models"
)

// Configuration errors.
var (
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrInvalidEnvValue = errors.New("invalid environment value")
)

// Environment variables that override file values.
const (
	EnvEndpoint  = "PJE_ENDPOINT"
	EnvBarNumber = "PJE_NUMERO_OAB"
	EnvBarState  = "PJE_UF_OAB"
	EnvPageSize  = "PJE_ITENS_POR_PAGINA"
	EnvOutputDir = "PJE_OUTPUT_DIR"
	EnvLogLevel  = "PJE_LOG_LEVEL"
	EnvLogFile   = "PJE_LOG_FILE"
)

// Config represents the complete tool configuration.
type Config struct {
	Query   QueryConfig   `yaml:"query" validate:"required"`
	Output  OutputConfig  `yaml:"output" validate:"required"`
	Logging LoggingConfig `yaml:"logging" validate:"required"`
}

// QueryConfig holds the API endpoint and the fixed query identity.
type QueryConfig struct {
	Endpoint   string `yaml:"endpoint" validate:"required,url"`
	BarNumber  string `yaml:"numero_oab" validate:"required,numeric"`
	BarState   string `yaml:"uf_oab" validate:"required,len=2,alpha,uppercase"`
	UserAgent  string `yaml:"user_agent"`
	PageSize   int    `yaml:"itens_por_pagina" validate:"min=1"`
	TimeoutSec int    `yaml:"timeout_sec" validate:"min=0"`
}

// OutputConfig defines where and how the report is written.
type OutputConfig struct {
	Dir            string `yaml:"dir" validate:"required"`
	Prefix         string `yaml:"prefix" validate:"required,excludesall=/\\"`
	Extension      string `yaml:"extension" validate:"required,oneof=xlsx xlsm"`
	SheetName      string `yaml:"sheet_name" validate:"required,max=31,excludesall=:\\/?*[]"`
	HeaderColor    string `yaml:"header_color" validate:"required,len=6,hexadecimal"`
	MaxColumnWidth int    `yaml:"max_column_width" validate:"min=1,max=255"`
	ColumnPadding  int    `yaml:"column_padding" validate:"min=0"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	File  string `yaml:"file"`
}

// DefaultConfig returns the configuration of the reference run.
func DefaultConfig() *Config {
	return &Config{
		Query: QueryConfig{
			Endpoint:   "https://comunicaapi.pje.jus.br/api/v1/comunicacao",
			BarNumber:  "46470",
			BarState:   "PR",
			PageSize:   100,
			TimeoutSec: 30,
			UserAgent:  "consulta-pje/1.0",
		},
		Output: OutputConfig{
			Dir:            "consulta_pje",
			Prefix:         "consulta_pje",
			Extension:      "xlsx",
			SheetName:      "Consulta PJe",
			HeaderColor:    "4F81BD",
			MaxColumnWidth: 50,
			ColumnPadding:  2,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "consulta_pje.log",
		},
	}
}

// LoadConfig loads configuration from a YAML file layered over the defaults.
// An empty path yields the defaults.
func LoadConfig(filepath string) (*Config, error) {
	cfg := DefaultConfig()

	if filepath != "" {
		data, err := os.ReadFile(filepath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadEnvFile loads variables from a .env file without overriding ones already set.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}

	return nil
}

// ApplyEnv overrides configuration values from PJE_* environment variables.
func (c *Config) ApplyEnv() error {
	overrides := map[string]*string{
		EnvEndpoint:  &c.Query.Endpoint,
		EnvBarNumber: &c.Query.BarNumber,
		EnvBarState:  &c.Query.BarState,
		EnvOutputDir: &c.Output.Dir,
		EnvLogLevel:  &c.Logging.Level,
		EnvLogFile:   &c.Logging.File,
	}

	for key, target := range overrides {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*target = v
		}
	}

	if v, ok := os.LookupEnv(EnvPageSize); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnvValue, EnvPageSize, v)
		}

		c.Query.PageSize = n
	}

	return nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Identity returns the query identity described by the configuration.
func (c *Config) Identity() models.QueryIdentity {
	return models.QueryIdentity{
		BarNumber: c.Query.BarNumber,
		BarState:  c.Query.BarState,
		PageSize:  c.Query.PageSize,
	}
}

// GetTimeout returns the request timeout. Zero means no client-side timeout.
func (q *QueryConfig) GetTimeout() time.Duration {
	return time.Duration(q.TimeoutSec) * time.Second
}

// Init performs the process-wide setup: the output directory is created if absent.
func (c *Config) Init() error {
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", c.Output.Dir, err)
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{OAB: %s/%s, PageSize: %d, Output: %s}",
		c.Query.BarNumber,
		c.Query.BarState,
		c.Query.PageSize,
		c.Output.Dir,
	)
}
