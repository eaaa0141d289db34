package config

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	renderBaseURL  = "https://api.render.com/v1"
	renderPageSize = 100
	// evita laço infinito se a API repetir o cursor
	renderMaxPages = 20
)

// SecretStorage devolve os secret files de um serviço indexados pelo nome
type SecretStorage interface {
	ListSecrets(ctx context.Context, serviceID string) (map[string]string, error)
}

type RenderClient struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

type renderSecretPage []struct {
	SecretFile struct {
		Name    string `json:"name"`
		Content string `json:"content"`
	} `json:"secretFile"`
	Cursor string `json:"cursor"`
}

func NewRenderClient(config *Config) *RenderClient {
	return &RenderClient{
		APIKey:     config.Render.APIKey,
		BaseURL:    renderBaseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// ListSecrets percorre as páginas de secret files do serviço seguindo o cursor
func (c *RenderClient) ListSecrets(ctx context.Context, serviceID string) (map[string]string, error) {
	secrets := make(map[string]string)

	cursor := ""
	for page := 0; page < renderMaxPages; page++ {
		items, err := c.fetchSecretPage(ctx, serviceID, cursor)
		if err != nil {
			return nil, err
		}

		for _, item := range items {
			secrets[item.SecretFile.Name] = item.SecretFile.Content
		}

		if len(items) < renderPageSize {
			return secrets, nil
		}
		next := items[len(items)-1].Cursor
		if next == "" || next == cursor {
			return secrets, nil
		}
		cursor = next
	}

	return secrets, nil
}

func (c *RenderClient) fetchSecretPage(ctx context.Context, serviceID, cursor string) (renderSecretPage, error) {
	query := url.Values{"limit": {fmt.Sprint(renderPageSize)}}
	if cursor != "" {
		query.Set("cursor", cursor)
	}
	endpoint := fmt.Sprintf("%s/services/%s/secret-files?%s", c.BaseURL, url.PathEscape(serviceID), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "config: montando requisição ao Render")
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "config: consultando secret files")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, errors.Errorf("config: Render respondeu %d: %s", resp.StatusCode, body)
	}

	var items renderSecretPage
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, errors.Wrap(err, "config: decodificando secret files")
	}
	return items, nil
}
