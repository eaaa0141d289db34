package llmclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	llmdomain "github.com/vfg2006/crm-api/infrastructure/integrator/llm/domain"
	"github.com/vfg2006/crm-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const messagesPath = "/v1/messages"

//go:generate mockgen -source=client.go -destination=../mocks/client.go -package=mocks

type Client interface {
	CreateMessage(ctx context.Context, req *llmdomain.MessageRequest) (*llmdomain.MessageResponse, error)
	Enabled() bool
}

type LLMClient struct {
	Cfg        config.LLM
	HTTPClient *http.Client
}

func NewClient(cfg config.LLM) Client {
	return &LLMClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Enabled indica se há chave configurada para o provedor
func (c *LLMClient) Enabled() bool {
	return c.Cfg.APIKey != ""
}

func (c *LLMClient) CreateMessage(ctx context.Context, req *llmdomain.MessageRequest) (*llmdomain.MessageResponse, error) {
	if req.Model == "" {
		req.Model = c.Cfg.Model
	}
	if req.MaxTokens <= 0 {
		req.MaxTokens = c.Cfg.MaxTokens
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	url := strings.TrimRight(c.Cfg.BaseURL, "/") + messagesPath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição para o provedor de IA")
		return nil, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.Cfg.APIKey)
	httpReq.Header.Set("anthropic-version", c.Cfg.Version)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição para o provedor de IA")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta do provedor de IA: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parseError(resp.StatusCode, body)
	}

	var message llmdomain.MessageResponse
	if err := json.Unmarshal(body, &message); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON do provedor de IA")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"model":         message.Model,
		"stop_reason":   message.StopReason,
		"input_tokens":  message.Usage.InputTokens,
		"output_tokens": message.Usage.OutputTokens,
	}).Debug("Resposta recebida do provedor de IA")

	return &message, nil
}

func parseError(status int, body []byte) error {
	apiErr := &llmdomain.APIError{StatusCode: status, Type: "http_error", Message: http.StatusText(status)}

	var errResp llmdomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		apiErr.Type = errResp.Error.Type
		apiErr.Message = errResp.Error.Message
	}

	logrus.WithFields(logrus.Fields{
		"status": status,
		"type":   apiErr.Type,
	}).Warn("Provedor de IA retornou erro")

	return apiErr
}
