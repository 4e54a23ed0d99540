package domain

import "cosmossdk.io/math"

// Config defines the config for the donation hook server.
type Config struct {
	// Storage defines the optional redis host and port for the donation
	// config store. When empty, an in-memory store is used.
	StorageHost string `mapstructure:"db-host"`
	StoragePort string `mapstructure:"db-port"`

	// Defines the web server configuration.
	ServerAddress string `mapstructure:"server-address"`

	// Defines the logger configuration.
	LoggerFilename     string `mapstructure:"logger-filename"`
	LoggerIsProduction bool   `mapstructure:"logger-is-production"`
	LoggerLevel        string `mapstructure:"logger-level"`

	// CORS encapsulates the CORS middleware config.
	CORS *CORSConfig `mapstructure:"cors"`

	// Donation encapsulates the donation hook config.
	Donation *DonationConfig `mapstructure:"donation"`

	OTEL *OTELConfig `mapstructure:"otel"`
}

// CORSConfig defines the CORS headers set by the middleware.
type CORSConfig struct {
	AllowedOrigin  string `mapstructure:"allowed-origin"`
	AllowedHeaders string `mapstructure:"allowed-headers"`
	AllowedMethods string `mapstructure:"allowed-methods"`
}

// DonationConfig defines the global donation defaults and the governance
// role membership. Role assignment lifecycle is external configuration;
// the server only reads it at startup.
type DonationConfig struct {
	// CharityAddress is the global default recipient for pools that have
	// not overridden it.
	CharityAddress string `mapstructure:"charity-address"`

	// DefaultDonationBps overrides the built-in default rate when non-zero.
	DefaultDonationBps uint64 `mapstructure:"default-donation-bps"`

	// DefaultMinDonationAmount overrides the built-in dust threshold when non-zero.
	DefaultMinDonationAmount int64 `mapstructure:"default-min-donation-amount"`

	// DonationManagers hold the donation-manager role.
	DonationManagers []string `mapstructure:"donation-managers"`

	// Guardians hold the guardian role.
	Guardians []string `mapstructure:"guardians"`
}

// OTELConfig is the OTEL configuration.
type OTELConfig struct {
	DSN                string  `mapstructure:"dsn"`
	SampleRate         float64 `mapstructure:"sample-rate"`
	EnableTracing      bool    `mapstructure:"enable-tracing"`
	ProfilesSampleRate float64 `mapstructure:"profiles-sample-rate"`
	Environment        string  `mapstructure:"environment"`
}

// DefaultPoolConfig builds the global default pool donation config from
// this server config, falling back to the built-in defaults for any
// unset field.
func (c *DonationConfig) DefaultPoolConfig() PoolDonationConfig {
	cfg := NewDefaultPoolDonationConfig(Address(c.CharityAddress))
	if c.DefaultDonationBps != 0 {
		cfg.DonationBps = c.DefaultDonationBps
	}
	if c.DefaultMinDonationAmount != 0 {
		cfg.MinDonationAmount = math.NewInt(c.DefaultMinDonationAmount)
	}
	return cfg
}
