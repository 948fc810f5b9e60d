package gateway

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestEnvTokenStore_SaveToken(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		want     map[string]string
	}{
		{
			name: "creates the file",
			want: map[string]string{"MAXIMA_AUTH_TOKEN": "new-token"},
		},
		{
			name:     "replaces the key and keeps other entries",
			existing: "MAXIMA_AUTH_TOKEN=old\nWINTHOR_API_URL=https://orders.example.com\n",
			want: map[string]string{
				"MAXIMA_AUTH_TOKEN": "new-token",
				"WINTHOR_API_URL":   "https://orders.example.com",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ".env")
			if tt.existing != "" {
				assert.NoError(t, os.WriteFile(path, []byte(tt.existing), 0o600))
			}

			err := NewEnvTokenStore(path, "MAXIMA_AUTH_TOKEN").SaveToken(context.Background(), "new-token")
			assert.NoError(t, err)

			got, err := godotenv.Read(path)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnvTokenStore_SaveTokenUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", ".env")

	err := NewEnvTokenStore(path, "MAXIMA_AUTH_TOKEN").SaveToken(context.Background(), "tok")
	assert.Error(t, err)
}
