package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheets_LoadCredentialsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"type":"service_account"}`), 0o600))

	tests := []struct {
		name     string
		sheets   Sheets
		expected string
		wantErr  bool
	}{
		{
			name:     "Lê o arquivo quando não há JSON inline",
			sheets:   Sheets{CredentialsFile: path},
			expected: `{"type":"service_account"}`,
		},
		{
			name:     "JSON inline tem prioridade",
			sheets:   Sheets{CredentialsJSON: `{"inline":true}`, CredentialsFile: path},
			expected: `{"inline":true}`,
		},
		{
			name:   "Sem credenciais",
			sheets: Sheets{},
		},
		{
			name:    "Arquivo inexistente",
			sheets:  Sheets{CredentialsFile: filepath.Join(dir, "nao-existe.json")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sheets.loadCredentialsFile()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tt.sheets.CredentialsJSON)
		})
	}
}
