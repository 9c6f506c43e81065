package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/luzbrill/pos-terminal/internal/infrastructure/metrics"
	"github.com/luzbrill/pos-terminal/pkg/apperror"
)

// upstreamError covers the two error body shapes the remote services emit.
type upstreamError struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// api is the shared HTTP plumbing for the upstream clients. Timeouts live on
// the http.Client; there are no retries, a failed attempt is terminal and the
// operator retries manually.
type api struct {
	httpClient *http.Client
	baseURL    string
	service    string
}

func newAPI(baseURL, service string, timeout time.Duration) *api {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &api{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		service:    service,
	}
}

// do issues one request and decodes a 2xx JSON body into out. Non-2xx
// responses become AppErrors carrying the upstream status and message
// verbatim; transport failures map to ErrUpstreamTransport.
func (a *api) do(ctx context.Context, method, path, operation string, body interface{}, out interface{}, headers map[string]string) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s request: %w", operation, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building %s request: %w", operation, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := a.httpClient.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(a.service, operation).Observe(time.Since(start).Seconds())
	if err != nil {
		return apperror.ErrUpstreamTransport
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.ErrUpstreamTransport
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var ue upstreamError
		msg := ""
		if json.Unmarshal(respBody, &ue) == nil {
			if ue.Message != "" {
				msg = ue.Message
			} else {
				msg = ue.Detail
			}
		}
		if msg == "" {
			msg = string(respBody)
		}
		return apperror.NewUpstreamError(resp.StatusCode, msg)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding %s response from %s: %w", operation, a.service, err)
	}
	return nil
}
