package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/joho/godotenv"
)

// LoadEnvFile exports the variables of a dotenv file without overriding the
// process environment. A missing file is only an error when required is set.
func LoadEnvFile(path string, required bool) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// NewConnConfig builds an HTTP POST mode connection config for rawURL.
func NewConnConfig(rawURL string, creds Credentials) (*rpcclient.ConnConfig, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme %q, use http or https", ErrUnsupportedRPCURL, parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("%w: missing host", ErrUnsupportedRPCURL)
	}
	if parsed.Path != "" && parsed.Path != "/" {
		return nil, fmt.Errorf("%w: path %q, wallet endpoints are not supported", ErrUnsupportedRPCURL, parsed.Path)
	}
	if parsed.User != nil {
		return nil, fmt.Errorf("%w: pass credentials with --rpc-user/--rpc-password", ErrUnsupportedRPCURL)
	}

	cfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		HTTPPostMode: true,
		DisableTLS:   parsed.Scheme == "http",
	}
	creds.apply(cfg)
	return cfg, nil
}
