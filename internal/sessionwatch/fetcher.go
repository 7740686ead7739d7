package sessionwatch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"leads-admin-service/internal/auth"
)

// HTTPFetcher читает GET /auth/session с токеном клиента.
type HTTPFetcher struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPFetcher создаёт сборщик. При client == nil используется клиент с таймаутом 10s.
func NewHTTPFetcher(baseURL, token string, client *http.Client) *HTTPFetcher {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  client,
	}
}

// FetchSession возвращает ErrNoSession на 401, прочие не-200 ответы считаются сбоем.
func (f *HTTPFetcher) FetchSession(ctx context.Context) (auth.Principal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/auth/session", nil)
	if err != nil {
		return auth.Principal{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+f.token)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return auth.Principal{}, fmt.Errorf("fetch session: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return auth.Principal{}, ErrNoSession
	default:
		return auth.Principal{}, fmt.Errorf("fetch session: unexpected status %d", resp.StatusCode)
	}

	var p auth.Principal
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return auth.Principal{}, fmt.Errorf("decode session: %w", err)
	}
	return p, nil
}
