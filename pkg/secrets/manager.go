package secrets

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
)

// Manager is the secrets access interface. Both backends cache lookups for
// Config.CacheDuration so hot paths never hammer the backing store.
type Manager interface {
	GetSecret(ctx context.Context, key string) (string, error)

	// GetSecretJSON retrieves a secret and unmarshals it into dest.
	GetSecretJSON(ctx context.Context, key string, dest interface{}) error

	// RefreshCache drops all cached values.
	RefreshCache(ctx context.Context) error

	Close() error
}

// Config selects and tunes the secrets backend.
type Config struct {
	Backend        string        // "env" or "aws-secrets-manager"
	AWSRegion      string
	CacheDuration  time.Duration
	RefreshOnStart bool
}

// DefaultConfig returns the development defaults (env backend).
func DefaultConfig() Config {
	return Config{
		Backend:       "env",
		AWSRegion:     "us-east-1",
		CacheDuration: 5 * time.Minute,
	}
}

// NewManager creates the manager for the configured backend.
func NewManager(cfg Config) (Manager, error) {
	switch cfg.Backend {
	case "aws-secrets-manager", "aws":
		log.Printf("🔐 Initializing AWS Secrets Manager (region: %s)", cfg.AWSRegion)
		return NewAWSSecretsManager(cfg)
	case "env", "environment":
		log.Printf("🔐 Using environment variables for secrets (development mode)")
		return NewEnvironmentManager(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported secrets backend: %s", cfg.Backend)
	}
}

// secretCache is the per-key TTL cache shared by both backends.
type secretCache struct {
	mu      sync.RWMutex
	entries map[string]cachedSecret
	ttl     time.Duration
}

type cachedSecret struct {
	value     string
	expiresAt time.Time
}

func newSecretCache(ttl time.Duration) *secretCache {
	return &secretCache{entries: make(map[string]cachedSecret), ttl: ttl}
}

func (c *secretCache) get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return "", false
	}
	return entry.value, true
}

func (c *secretCache) set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cachedSecret{value: value, expiresAt: time.Now().Add(c.ttl)}
}

func (c *secretCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cachedSecret)
}

// EnvironmentManager reads secrets from environment variables.
type EnvironmentManager struct {
	cache *secretCache
}

// NewEnvironmentManager creates the env-backed manager.
func NewEnvironmentManager(cfg Config) *EnvironmentManager {
	return &EnvironmentManager{cache: newSecretCache(cfg.CacheDuration)}
}

// GetSecret reads the variable named key. An unset or empty variable is an
// error so required secrets fail loudly instead of propagating "".
func (m *EnvironmentManager) GetSecret(ctx context.Context, key string) (string, error) {
	if value, ok := m.cache.get(key); ok {
		return value, nil
	}

	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("secret not found: %s", key)
	}

	m.cache.set(key, value)
	return value, nil
}

// GetSecretJSON reads and unmarshals a JSON-valued secret.
func (m *EnvironmentManager) GetSecretJSON(ctx context.Context, key string, dest interface{}) error {
	value, err := m.GetSecret(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(value), dest)
}

// RefreshCache drops cached values; the next access re-reads the environment.
func (m *EnvironmentManager) RefreshCache(ctx context.Context) error {
	m.cache.clear()
	return nil
}

// Close is a no-op for the env backend.
func (m *EnvironmentManager) Close() error { return nil }

// AWSSecretsManager reads secrets from AWS Secrets Manager.
type AWSSecretsManager struct {
	client *secretsmanager.SecretsManager
	cache  *secretCache
}

// NewAWSSecretsManager creates the AWS-backed manager.
func NewAWSSecretsManager(cfg Config) (*AWSSecretsManager, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWSRegion),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	manager := &AWSSecretsManager{
		client: secretsmanager.New(sess),
		cache:  newSecretCache(cfg.CacheDuration),
	}

	if cfg.RefreshOnStart {
		if err := manager.RefreshCache(context.Background()); err != nil {
			log.Printf("⚠️  Failed to refresh secrets cache on startup: %v", err)
		}
	}

	log.Printf("✅ AWS Secrets Manager initialized (cache duration: %s)", cfg.CacheDuration)
	return manager, nil
}

// GetSecret fetches the secret's string value, serving from cache when fresh.
func (m *AWSSecretsManager) GetSecret(ctx context.Context, key string) (string, error) {
	if value, ok := m.cache.get(key); ok {
		return value, nil
	}

	result, err := m.client.GetSecretValueWithContext(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get secret %s: %w", key, err)
	}
	if result.SecretString == nil {
		return "", fmt.Errorf("secret %s has no string value", key)
	}

	m.cache.set(key, *result.SecretString)
	return *result.SecretString, nil
}

// GetSecretJSON fetches and unmarshals a JSON-valued secret.
func (m *AWSSecretsManager) GetSecretJSON(ctx context.Context, key string, dest interface{}) error {
	value, err := m.GetSecret(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(value), dest)
}

// RefreshCache drops all cached values.
func (m *AWSSecretsManager) RefreshCache(ctx context.Context) error {
	m.cache.clear()
	return nil
}

// Close is a no-op; AWS SDK sessions need no explicit cleanup.
func (m *AWSSecretsManager) Close() error { return nil }
