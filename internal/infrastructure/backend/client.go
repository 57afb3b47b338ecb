package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/hugohenrick/armazem/pkg/logger"
)

// Config contém as configurações do cliente do backend
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	MaxAttempts int
	Backoff     time.Duration
}

// Client acessa a API REST do backend de armazenagem
type Client struct {
	baseURL     string
	http        *http.Client
	timeout     time.Duration
	maxAttempts int
	backoff     time.Duration
	logger      logger.Logger
}

// NewClient cria uma nova instância de Client
func NewClient(cfg Config, log logger.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = 200 * time.Millisecond
	}

	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		http:        &http.Client{},
		timeout:     cfg.Timeout,
		maxAttempts: cfg.MaxAttempts,
		backoff:     cfg.Backoff,
		logger:      log,
	}
}

// Get busca um recurso e decodifica a resposta em out. Falhas transitórias
// são repetidas com backoff exponencial dentro do mesmo timeout.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.call(ctx, http.MethodGet, path, nil, out, true)
}

// Post cria um recurso
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.call(ctx, http.MethodPost, path, body, out, false)
}

// Put atualiza um recurso
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.call(ctx, http.MethodPut, path, body, out, false)
}

// Delete remove um recurso
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.call(ctx, http.MethodDelete, path, nil, nil, false)
}

// Ping verifica se o backend está respondendo
func (c *Client) Ping(ctx context.Context) error {
	return c.call(ctx, http.MethodGet, "/health", nil, nil, false)
}

func (c *Client) call(ctx context.Context, method, path string, body, out interface{}, retry bool) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("falha ao serializar requisição: %w", err)
		}
	}

	attempts := 1
	if retry {
		attempts = c.maxAttempts
	}

	backoff := c.backoff
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		raw, err := c.do(ctx, method, path, payload)
		if err == nil {
			return decode(raw, out)
		}
		lastErr = err

		if attempt == attempts || !retryable(err) {
			break
		}

		c.logger.Warn("repetindo requisição ao backend", "method", method, "path", path, "attempt", attempt, "error", err)

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
		case <-timer.C:
		}
		backoff *= 2
	}

	return lastErr
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("erro de conexão com o backend", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: falha ao ler resposta: %v", ErrUnavailable, err)
	}

	c.logger.Debug("requisição ao backend", "method", method, "path", path, "status", resp.StatusCode, "duration", time.Since(start).String())

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp.StatusCode, raw)}
	}

	if !isJSON(resp.Header.Get("Content-Type")) {
		return nil, nil
	}
	return raw, nil
}

func retryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, ErrUnavailable)
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func decode(raw []byte, out interface{}) error {
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	normalized, err := NormalizeKeys(raw)
	if err != nil {
		return fmt.Errorf("falha ao normalizar resposta: %w", err)
	}
	if err := json.Unmarshal(normalized, out); err != nil {
		return fmt.Errorf("falha ao decodificar resposta: %w", err)
	}
	return nil
}

func errorMessage(status int, raw []byte) string {
	switch {
	case status == http.StatusNotFound:
		return "Recurso não encontrado"
	case status >= http.StatusInternalServerError:
		return "Serviço temporariamente indisponível"
	}

	var body struct {
		Message interface{} `json:"message"`
		Error   interface{} `json:"error"`
	}
	if json.Unmarshal(raw, &body) == nil {
		for _, candidate := range []interface{}{body.Message, body.Error} {
			switch v := candidate.(type) {
			case string:
				if v != "" {
					return v
				}
			case []interface{}:
				parts := make([]string, 0, len(v))
				for _, item := range v {
					parts = append(parts, fmt.Sprint(item))
				}
				if len(parts) > 0 {
					return strings.Join(parts, "; ")
				}
			}
		}
	}
	return http.StatusText(status)
}
