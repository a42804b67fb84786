package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey:  "secret",
			TokenIssuer:   "legaldoc-server",
			TokenDuration: 24 * time.Hour,
		},
		Storage: Storage{
			DB: DB{DSN: "postgres://localhost/legaldoc"},
		},
		Server: Server{
			HTTPAddress: "localhost:8080",
		},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validConfig().validate())
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{
			name:    "missing sign key",
			mutate:  func(c *StructuredConfig) { c.Auth.TokenSignKey = "" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "missing issuer",
			mutate:  func(c *StructuredConfig) { c.Auth.TokenIssuer = "" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "zero token duration",
			mutate:  func(c *StructuredConfig) { c.Auth.TokenDuration = 0 },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "missing DSN",
			mutate:  func(c *StructuredConfig) { c.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing listen address",
			mutate:  func(c *StructuredConfig) { c.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}
