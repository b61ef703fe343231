// Copyright 2026 The OpenTrusty Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the issuer configuration.
//
// Values come from an optional TOML file (config.toml in the working
// directory, or the file named by OIDC_SERVER_CONFIG_FILE) and are overridden
// by environment variables prefixed with OIDC_SERVER_. Nested keys use an
// underscore, e.g. server.port is OIDC_SERVER_SERVER_PORT.
//
//	OIDC_SERVER_ISSUER=https://auth.example.com
//	OIDC_SERVER_PUBLIC_KEY="$(cat signing.pub)"
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "OIDC_SERVER"

	configFileEnv = EnvPrefix + "_CONFIG_FILE"
)

// Config holds all application configuration
type Config struct {
	Issuer        string              `mapstructure:"issuer"`
	PublicKey     string              `mapstructure:"public_key"`
	Server        ServerConfig        `mapstructure:"server"`
	Observability ObservabilityConfig `mapstructure:"observability"`
	KeyStore      KeyStoreConfig      `mapstructure:"key_store"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// ObservabilityConfig holds logging and tracing configuration
type ObservabilityConfig struct {
	LogLevel       string `mapstructure:"log_level"`
	LogFormat      string `mapstructure:"log_format"`
	OTELEnabled    bool   `mapstructure:"otel_enabled"`
	ServiceName    string `mapstructure:"service_name"`
	ServiceVersion string `mapstructure:"service_version"`
}

// KeyStoreConfig points at the optional database of additional published
// keys. An empty DSN disables it.
type KeyStoreConfig struct {
	DSN         string        `mapstructure:"dsn"`
	MaxConns    int           `mapstructure:"max_conns"`
	LoadTimeout time.Duration `mapstructure:"load_timeout"`
}

// Enabled reports whether a key store is configured.
func (k KeyStoreConfig) Enabled() bool {
	return k.DSN != ""
}

// ConfigurationError reports a missing or malformed setting.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

var defaults = map[string]any{
	"issuer":                        "",
	"public_key":                    "",
	"server.host":                   "0.0.0.0",
	"server.port":                   "8000",
	"server.read_timeout":           "15s",
	"server.write_timeout":          "15s",
	"server.idle_timeout":           "60s",
	"observability.log_level":       "info",
	"observability.log_format":      "json",
	"observability.otel_enabled":    false,
	"observability.service_name":    "oidc-discovery",
	"observability.service_version": "0.1.0",
	"key_store.dsn":                 "",
	"key_store.max_conns":           4,
	"key_store.load_timeout":        "10s",
}

// Load loads configuration from the config file and environment variables
func Load() (*Config, error) {
	return LoadFrom(viper.New())
}

// LoadFrom loads configuration into v. Values already set on v take
// precedence over the file and the environment.
func LoadFrom(v *viper.Viper) (*Config, error) {
	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadKeyStore loads only the key store settings. It is used by tooling that
// does not serve documents and so needs no issuer or key.
func LoadKeyStore(v *viper.Viper) (KeyStoreConfig, error) {
	cfg, err := decode(v)
	if err != nil {
		return KeyStoreConfig{}, err
	}
	if !cfg.KeyStore.Enabled() {
		return KeyStoreConfig{}, &ConfigurationError{Field: "key_store.dsn", Reason: "is required"}
	}
	return cfg.KeyStore, nil
}

func decode(v *viper.Viper) (*Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return &cfg, nil
}

func readConfigFile(v *viper.Viper) error {
	if path := os.Getenv(configFileEnv); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return &ConfigurationError{Field: configFileEnv, Reason: err.Error()}
		}
		return nil
	}

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return &ConfigurationError{Field: "config.toml", Reason: err.Error()}
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validateIssuer(c.Issuer); err != nil {
		return err
	}
	if strings.TrimSpace(c.PublicKey) == "" {
		return &ConfigurationError{Field: "public_key", Reason: "is required"}
	}

	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return &ConfigurationError{Field: "server.port", Reason: fmt.Sprintf("invalid port %q", c.Server.Port)}
	}

	switch c.Observability.LogFormat {
	case "json", "text":
	default:
		return &ConfigurationError{Field: "observability.log_format", Reason: "must be json or text"}
	}

	if c.KeyStore.Enabled() && c.KeyStore.MaxConns < 1 {
		return &ConfigurationError{Field: "key_store.max_conns", Reason: "must be at least 1"}
	}
	if c.KeyStore.Enabled() && c.KeyStore.LoadTimeout <= 0 {
		return &ConfigurationError{Field: "key_store.load_timeout", Reason: "must be positive"}
	}

	return nil
}

// validateIssuer enforces OIDC Discovery Section 3 issuer rules. A trailing
// slash is refused because jwks_uri is built by appending a path to it.
func validateIssuer(issuer string) error {
	if issuer == "" {
		return &ConfigurationError{Field: "issuer", Reason: "is required"}
	}

	u, err := url.Parse(issuer)
	if err != nil {
		return &ConfigurationError{Field: "issuer", Reason: err.Error()}
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return &ConfigurationError{Field: "issuer", Reason: "must be an absolute http(s) URL"}
	}
	if u.Host == "" {
		return &ConfigurationError{Field: "issuer", Reason: "must include a host"}
	}
	if u.RawQuery != "" || u.ForceQuery || u.Fragment != "" || strings.Contains(issuer, "#") {
		return &ConfigurationError{Field: "issuer", Reason: "must not contain a query or fragment"}
	}
	if strings.HasSuffix(issuer, "/") {
		return &ConfigurationError{Field: "issuer", Reason: "must not end with a slash"}
	}

	return nil
}
