package googlesheets

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ServiceAccountKey is the structure of a service account JSON key
// file.
type ServiceAccountKey struct {
	Type                    string `json:"type"`
	ProjectID               string `json:"project_id"`
	PrivateKeyID            string `json:"private_key_id"`
	PrivateKey              string `json:"private_key"`
	ClientEmail             string `json:"client_email"`
	ClientID                string `json:"client_id"`
	AuthURI                 string `json:"auth_uri"`
	TokenURI                string `json:"token_uri"`
	AuthProviderX509CertURL string `json:"auth_provider_x509_cert_url"`
	ClientX509CertURL       string `json:"client_x509_cert_url"`
}

func (c *Config) scope() string {
	if c.ReadOnly {
		return sheets.SpreadsheetsReadonlyScope
	}
	return sheets.SpreadsheetsScope
}

// NewWithJSONKeyFile creates a transport authenticated by a JSON key
// file. An empty path falls back to GOOGLE_APPLICATION_CREDENTIALS.
func NewWithJSONKeyFile(ctx context.Context, config Config, jsonPath string) (*Transport, error) {
	if jsonPath == "" {
		jsonPath = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
		if jsonPath == "" {
			return nil, fmt.Errorf("no JSON key file path provided and GOOGLE_APPLICATION_CREDENTIALS not set")
		}
	}

	jsonData, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON key file: %w", err)
	}
	return NewWithJSONKeyData(ctx, config, jsonData)
}

// NewWithJSONKeyData creates a transport authenticated by JSON key
// data.
func NewWithJSONKeyData(ctx context.Context, config Config, jsonData []byte) (*Transport, error) {
	creds, err := google.CredentialsFromJSON(ctx, jsonData, config.scope())
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}
	return New(ctx, config, option.WithCredentials(creds))
}

// NewWithServiceAccountKey creates a transport authenticated by a
// service account email and private key.
func NewWithServiceAccountKey(ctx context.Context, config Config, email string, privateKey string) (*Transport, error) {
	jwtConfig := &jwt.Config{
		Email:      email,
		PrivateKey: []byte(privateKey),
		Scopes:     []string{config.scope()},
		TokenURL:   google.JWTTokenURL,
	}
	return New(ctx, config, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
}

// NewWithDefaultCredentials creates a transport using Application
// Default Credentials: GOOGLE_APPLICATION_CREDENTIALS, gcloud user
// credentials, or the GCE metadata service, in that order.
func NewWithDefaultCredentials(ctx context.Context, config Config) (*Transport, error) {
	tokenSource, err := google.DefaultTokenSource(ctx, config.scope())
	if err != nil {
		return nil, fmt.Errorf("failed to get default token source: %w", err)
	}
	return New(ctx, config, option.WithTokenSource(tokenSource))
}

// ParseServiceAccountJSON parses and validates service account key
// data.
func ParseServiceAccountJSON(jsonData []byte) (*ServiceAccountKey, error) {
	var key ServiceAccountKey
	if err := json.Unmarshal(jsonData, &key); err != nil {
		return nil, fmt.Errorf("failed to parse service account JSON: %w", err)
	}
	if key.Type != "service_account" {
		return nil, fmt.Errorf("invalid key type: %s (expected: service_account)", key.Type)
	}
	if key.ClientEmail == "" || key.PrivateKey == "" {
		return nil, fmt.Errorf("missing required fields in service account key")
	}
	return &key, nil
}

// TokenSource builds an oauth2.TokenSource from a parsed service
// account key.
func (k *ServiceAccountKey) TokenSource(ctx context.Context, scopes ...string) oauth2.TokenSource {
	jwtConfig := &jwt.Config{
		Email:      k.ClientEmail,
		PrivateKey: []byte(k.PrivateKey),
		Scopes:     scopes,
		TokenURL:   google.JWTTokenURL,
	}
	return jwtConfig.TokenSource(ctx)
}
