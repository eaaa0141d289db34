package config

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecretStorage struct {
	secrets map[string]string
	err     error
	calls   int
}

func (f *fakeSecretStorage) ListSecrets(_ context.Context, serviceID string) (map[string]string, error) {
	f.calls++
	return f.secrets, f.err
}

func TestNormalize(t *testing.T) {
	cfg := &Config{
		Database: Database{
			Driver:   "postgres",
			User:     "crm",
			Password: "secret",
			URL:      "db:5432/crm?sslmode=disable",
		},
		CorsAllowedOrigins: []string{" http://localhost:5173 ", "", "http://localhost:3000"},
	}

	cfg.normalize()

	assert.Equal(t, "postgres://crm:secret@db:5432/crm?sslmode=disable", cfg.Database.DSN)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.CorsAllowedOrigins)
	assert.Equal(t, "v1", cfg.App.APIVersion)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 1024, cfg.LLM.MaxTokens)
	assert.Equal(t, 1, cfg.LeadScoringSync.MaxConcurrentJobs)
	assert.Equal(t, 50, cfg.LeadScoringSync.BatchSize)
}

func TestApplySecrets(t *testing.T) {
	tests := []struct {
		name          string
		cfg           Config
		storage       *fakeSecretStorage
		expectedKey   string
		expectedJWT   string
		expectedCalls int
		expectErr     bool
	}{
		{
			name:          "sem service id não consulta o Render",
			cfg:           Config{},
			storage:       &fakeSecretStorage{},
			expectedCalls: 0,
		},
		{
			name:          "valores já definidos por variável de ambiente",
			cfg:           Config{Render: Render{ServiceID: "srv"}, LLM: LLM{APIKey: "env-key"}, SecretKey: "env-jwt"},
			storage:       &fakeSecretStorage{secrets: map[string]string{"anthropic_api_key": "render-key"}},
			expectedKey:   "env-key",
			expectedJWT:   "env-jwt",
			expectedCalls: 0,
		},
		{
			name: "chave e segredo carregados dos secret files",
			cfg:  Config{Render: Render{ServiceID: "srv"}, SecretKey: defaultSecretKey},
			storage: &fakeSecretStorage{secrets: map[string]string{
				"anthropic_api_key": " render-key\n",
				"secret_key":        "render-jwt",
			}},
			expectedKey:   "render-key",
			expectedJWT:   "render-jwt",
			expectedCalls: 1,
		},
		{
			name:          "secret vazio não sobrescreve",
			cfg:           Config{Render: Render{ServiceID: "srv"}, SecretKey: defaultSecretKey},
			storage:       &fakeSecretStorage{secrets: map[string]string{"secret_key": "  "}},
			expectedJWT:   defaultSecretKey,
			expectedCalls: 1,
		},
		{
			name:          "erro do Render é propagado",
			cfg:           Config{Render: Render{ServiceID: "srv"}},
			storage:       &fakeSecretStorage{err: errors.New("boom")},
			expectedCalls: 1,
			expectErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.ApplySecrets(context.Background(), tt.storage)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedKey, cfg.LLM.APIKey)
				assert.Equal(t, tt.expectedJWT, cfg.SecretKey)
			}
			assert.Equal(t, tt.expectedCalls, tt.storage.calls)
		})
	}
}

func TestRenderClient_ListSecrets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/services/srv-1/secret-files", r.URL.Path)
		assert.Equal(t, "Bearer render-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"secretFile":{"name":"anthropic_api_key","content":"sk-test"},"cursor":"a"}]`))
	}))
	defer srv.Close()

	client := NewRenderClient(&Config{Render: Render{APIKey: "render-token"}})
	client.BaseURL = srv.URL

	secrets, err := client.ListSecrets(context.Background(), "srv-1")
	require.NoError(t, err)
	assert.Equal(t, "sk-test", secrets["anthropic_api_key"])
}

func TestRenderClient_ListSecrets_FollowsCursor(t *testing.T) {
	var cursors []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cursor := r.URL.Query().Get("cursor")
		cursors = append(cursors, cursor)

		w.Header().Set("Content-Type", "application/json")
		if cursor != "" {
			_, _ = w.Write([]byte(`[{"secretFile":{"name":"secret_key","content":"jwt"},"cursor":"fim"}]`))
			return
		}

		// primeira página cheia força a busca da próxima
		_, _ = w.Write([]byte("["))
		for i := 0; i < renderPageSize; i++ {
			if i > 0 {
				_, _ = w.Write([]byte(","))
			}
			_, _ = fmt.Fprintf(w, `{"secretFile":{"name":"file_%d","content":"x"},"cursor":"c%d"}`, i, i)
		}
		_, _ = w.Write([]byte("]"))
	}))
	defer srv.Close()

	client := NewRenderClient(&Config{})
	client.BaseURL = srv.URL

	secrets, err := client.ListSecrets(context.Background(), "srv-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"", fmt.Sprintf("c%d", renderPageSize-1)}, cursors)
	assert.Equal(t, "jwt", secrets["secret_key"])
	assert.Len(t, secrets, renderPageSize+1)
}

func TestRenderClient_ListSecrets_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewRenderClient(&Config{})
	client.BaseURL = srv.URL

	_, err := client.ListSecrets(context.Background(), "srv-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
