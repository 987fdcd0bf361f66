package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

const userAgent = "ptrains (+https://github.com/ptrains/ptrains-cli)"

// Requester performs GET requests against fully-formed URLs
type Requester interface {
	Get(ctx context.Context, rawURL string) ([]byte, error)
}

// HTTPRequester is the net/http backed Requester shared by all services
type HTTPRequester struct {
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewHTTPRequester creates a requester around hc. A nil hc uses a client
// with the default timeout.
func NewHTTPRequester(hc *http.Client, logger zerolog.Logger) *HTTPRequester {
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	return &HTTPRequester{httpClient: hc, logger: logger}
}

// Get fetches rawURL and returns the body of a 2xx response. Failures are
// reported as *NetworkError.
func (r *HTTPRequester) Get(ctx context.Context, rawURL string) ([]byte, error) {
	start := time.Now()
	body, status, err := r.do(ctx, rawURL)

	ev := r.logger.Debug()
	if err != nil {
		ev = r.logger.Warn().Err(err)
	}
	ev.Str("url", rawURL).
		Int("status", status).
		Dur("elapsed", time.Since(start)).
		Msg("GET")

	return body, err
}

// GetAsync runs Get on its own goroutine and calls completion exactly once
// with the result.
func (r *HTTPRequester) GetAsync(ctx context.Context, rawURL string, completion func([]byte, error)) {
	goAsync(ctx, func(ctx context.Context) ([]byte, error) {
		return r.Get(ctx, rawURL)
	}, completion)
}

func (r *HTTPRequester) do(ctx context.Context, rawURL string) ([]byte, int, error) {
	u, err := parseRequestURL(rawURL)
	if err != nil {
		return nil, 0, &NetworkError{Kind: NetInvalidURL, URL: rawURL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, 0, &NetworkError{Kind: NetInvalidURL, URL: rawURL, Err: err}
	}
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("User-Agent", userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, 0, &NetworkError{Kind: NetUnknown, URL: rawURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	code := resp.StatusCode
	if code < 100 || code > 999 {
		return nil, code, &NetworkError{Kind: NetInvalidResponse, URL: rawURL}
	}
	if code < 200 || code > 299 {
		return nil, code, &NetworkError{Kind: NetHTTPCode, StatusCode: code, URL: rawURL}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, code, &NetworkError{Kind: NetUnknown, URL: rawURL, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	return body, code, nil
}

// parseRequestURL accepts only absolute http(s) URLs with a host
func parseRequestURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, errors.New("missing host")
	}
	return u, nil
}

// goAsync is the callback adapter over a blocking call
func goAsync[T any](ctx context.Context, call func(context.Context) (T, error), completion func(T, error)) {
	go func() {
		v, err := call(ctx)
		if completion != nil {
			completion(v, err)
		}
	}()
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// extractEndpoint extracts the endpoint path from a full URL
func extractEndpoint(fullURL string) string {
	u, err := url.Parse(fullURL)
	if err != nil {
		return fullURL
	}
	return u.EscapedPath()
}
