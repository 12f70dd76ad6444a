package database

import (
	"fmt"
	"net/url"
)

// SSLConfig holds TLS settings for the postgres connection
type SSLConfig struct {
	// Mode is the libpq sslmode: disable, require, verify-ca, verify-full
	Mode string
	// CertPath is the client certificate (verify-full)
	CertPath string
	// KeyPath is the client private key (verify-full)
	KeyPath string
	// RootCertPath is the CA bundle used to verify the server
	RootCertPath string
}

// BuildConnectionString applies the SSL configuration to a base postgres
// URL, overriding any sslmode already present. A nil config returns the
// base URL untouched.
func BuildConnectionString(baseURL string, sslCfg *SSLConfig) (string, error) {
	if sslCfg == nil {
		return baseURL, nil
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid database URL: %w", err)
	}

	q := u.Query()

	mode := sslCfg.Mode
	if mode == "" {
		mode = "disable"
	}
	q.Set("sslmode", mode)

	if sslCfg.CertPath != "" {
		q.Set("sslcert", sslCfg.CertPath)
	}
	if sslCfg.KeyPath != "" {
		q.Set("sslkey", sslCfg.KeyPath)
	}
	if sslCfg.RootCertPath != "" {
		q.Set("sslrootcert", sslCfg.RootCertPath)
	}

	u.RawQuery = q.Encode()
	return u.String(), nil
}
