// Package upstream talks to the Moto Manager REST API (os-service-api).
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/domain/entities"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/usecase/interfaces"
	"go.uber.org/zap"
)

var (
	ErrAuthFailure       = errors.New("moto manager authentication failed")
	ErrOrderFetchFailure = errors.New("moto manager service order fetch failed")
)

const (
	loginPath       = "/auth/login"
	findOrderPath   = "/service-orders/find-by-id/"
	defaultTimeout  = 10 * time.Second
	maxErrorBodyLen = 512
)

// Config locates the upstream API.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Credentials are the username/password pair sent to /auth/login.
type Credentials struct {
	Username string
	Password string
}

// CredentialsProvider supplies login credentials per request so they can be rotated
// without rebuilding the client.
type CredentialsProvider interface {
	Credentials(ctx context.Context) (Credentials, error)
}

// StaticCredentials is a CredentialsProvider backed by fixed configuration values.
type StaticCredentials Credentials

func (s StaticCredentials) Credentials(context.Context) (Credentials, error) {
	return Credentials(s), nil
}

type Client struct {
	baseURL     string
	http        *http.Client
	credentials CredentialsProvider
	logger      *zap.Logger
}

var _ interfaces.IServiceOrderFetcher = (*Client)(nil)

func NewClient(cfg Config, credentials CredentialsProvider, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		http:        &http.Client{Timeout: timeout},
		credentials: credentials,
		logger:      logger.Named("upstream.client"),
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Authenticate posts the credentials to /auth/login. The API answers 200 with the bare
// token as body; a JSON object carrying a "token" field is accepted too.
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	if c.credentials == nil {
		return "", fmt.Errorf("%w: no credentials configured", ErrAuthFailure)
	}
	creds, err := c.credentials.Credentials(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuthFailure, err)
	}

	body, err := json.Marshal(loginRequest{Username: creds.Username, Password: creds.Password})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuthFailure, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuthFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("login request failed", zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrAuthFailure, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuthFailure, err)
	}
	c.logger.Debug("login response", zap.Int("status", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("login rejected", zap.Int("status", resp.StatusCode), zap.String("body", truncate(raw)))
		return "", fmt.Errorf("%w: status %d", ErrAuthFailure, resp.StatusCode)
	}

	token := parseToken(raw)
	if token == "" {
		return "", fmt.Errorf("%w: empty token", ErrAuthFailure)
	}
	return token, nil
}

// FetchOrder loads a service order with a bearer token. Numbers are decoded as
// json.Number so prices keep their exact textual value.
func (c *Client) FetchOrder(ctx context.Context, token string, orderID int64) (entities.Record, error) {
	url := c.baseURL + findOrderPath + strconv.FormatInt(orderID, 10)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOrderFetchFailure, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	log := c.logger.With(zap.Int64("order_id", orderID))

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("order request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrOrderFetchFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		log.Warn("order fetch rejected", zap.Int("status", resp.StatusCode), zap.String("body", truncate(raw)))
		return nil, fmt.Errorf("%w: status %d", ErrOrderFetchFailure, resp.StatusCode)
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()

	var record entities.Record
	if err := dec.Decode(&record); err != nil {
		log.Warn("order payload invalid", zap.Error(err))
		return nil, fmt.Errorf("%w: decode: %w", ErrOrderFetchFailure, err)
	}
	if record == nil {
		return nil, fmt.Errorf("%w: empty payload", ErrOrderFetchFailure)
	}
	return record, nil
}

func parseToken(raw []byte) string {
	text := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(text, "{") {
		return strings.Trim(text, `"`)
	}

	var payload struct {
		Token       string `json:"token"`
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return ""
	}
	if payload.Token != "" {
		return payload.Token
	}
	return payload.AccessToken
}

func truncate(b []byte) string {
	if len(b) > maxErrorBodyLen {
		b = b[:maxErrorBodyLen]
	}
	return string(b)
}
