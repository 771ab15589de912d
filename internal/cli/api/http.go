package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// BasicAuth — учётные данные для заголовка Authorization: Basic.
// Пустой Username означает запрос без авторизации.
type BasicAuth struct {
	Username string
	Password string
}

// PostJSON sends a JSON POST request and returns the response with its fully read body.
// The response body is already closed when PostJSON returns.
func PostJSON(ctx context.Context, client *http.Client, url string, payload any, auth BasicAuth) (*http.Response, []byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if auth.Username != "" {
		req.SetBasicAuth(auth.Username, auth.Password)
	}
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, fmt.Errorf("read response body: %w", err)
	}
	return resp, body, nil
}

// DecodeBody пытается разобрать тело как JSON, иначе возвращает его как текст.
func DecodeBody(body []byte) any {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return string(body)
	}
	return v
}
