package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/JustJay7/court-viewer/internal/config"
	"github.com/JustJay7/court-viewer/pkg/logger"
)

// Recorder observes every provider call.
type Recorder interface {
	ObserveUpstream(operation string, err error, took time.Duration)
}

// StatusError is returned when a provider answers with a non-2xx status.
type StatusError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: provider returned %d: %s", e.Operation, e.StatusCode, e.Body)
}

// IsNotFound reports whether err is a provider 404.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}

// Options configures the HTTP plumbing shared by all provider clients.
type Options struct {
	Timeout    time.Duration
	HTTPClient *http.Client
	Breaker    *Breaker
	Recorder   Recorder
	Logger     *logger.Logger
}

type client struct {
	endpoint config.ServiceEndpoint
	http     *http.Client
	breaker  *Breaker
	recorder Recorder
	logger   *logger.Logger
}

func newClient(endpoint config.ServiceEndpoint, opts Options) *client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &client{
		endpoint: endpoint,
		http:     httpClient,
		breaker:  opts.Breaker,
		recorder: opts.Recorder,
		logger:   log,
	}
}

// getJSON issues a GET against the provider and decodes the JSON body into out.
func (c *client) getJSON(ctx context.Context, operation, path string, query url.Values, out interface{}) error {
	start := time.Now()
	err := c.breaker.Execute(ctx, operation, func(ctx context.Context) error {
		return c.do(ctx, operation, path, query, out)
	})
	took := time.Since(start)

	if c.recorder != nil {
		c.recorder.ObserveUpstream(operation, err, took)
	}
	if err != nil {
		c.logger.Error("Upstream call failed", "operation", operation, "path", path, "latency", took.String(), "error", err)
		return err
	}
	c.logger.Debug("Upstream call", "operation", operation, "path", path, "latency", took.String())
	return nil
}

func (c *client) do(ctx context.Context, operation, path string, query url.Values, out interface{}) error {
	endpoint := strings.TrimRight(c.endpoint.URL, "/") + path
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", operation, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.endpoint.Username != "" {
		req.SetBasicAuth(c.endpoint.Username, c.endpoint.Password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: request failed: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Operation: operation, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: failed to decode response: %w", operation, err)
	}
	return nil
}

// params builds query values, dropping empty entries.
func params(kv ...string) url.Values {
	values := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			values.Set(kv[i], kv[i+1])
		}
	}
	return values
}

func yesNo(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}
