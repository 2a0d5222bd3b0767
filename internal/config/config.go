package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/billcraft/billcraft/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Upstream   UpstreamConfig   `validate:"required"`
	Invoice    InvoiceConfig
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

// UpstreamConfig points at the invoicing REST API that owns persistence.
type UpstreamConfig struct {
	BaseURL string `validate:"required"`
	APIKey  string
	Timeout time.Duration
}

// InvoiceConfig holds the numbering defaults for new proforma invoices.
type InvoiceConfig struct {
	NumberPrefix       string
	NumberSuffixLength int
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/billcraft")

	v.SetEnvPrefix("BILLCRAFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	v.SetDefault("server.address", ":8080")
	v.SetDefault("upstream.timeout", 30*time.Second)
	v.SetDefault("invoice.numberprefix", "INV")
	v.SetDefault("invoice.numbersuffixlength", 5)

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Error reading config file: %v\n", err)
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development
// and tests that never reach the upstream API.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Server:     ServerConfig{Address: ":8080"},
		Upstream:   UpstreamConfig{BaseURL: "http://localhost:8000/api", Timeout: 30 * time.Second},
		Invoice:    InvoiceConfig{NumberPrefix: "INV", NumberSuffixLength: 5},
	}
}
