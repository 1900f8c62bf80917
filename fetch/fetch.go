// Package fetch provides a minimal network-backed provider: the identifier
// is a URL and the resolved value its raw response body. It exists as the
// leaf of a composed pipeline; compose caching, dedup and fallbacks on top.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/unkn0wn-root/resolvex"
	"github.com/unkn0wn-root/resolvex/internal/util"
)

const defaultMaxBody = 32 << 20 // 32 MiB

type Config struct {
	HTTPClient *http.Client    // nil => http.DefaultClient
	UserAgent  string          // optional
	MaxBody    int64           // response body cap in bytes; 0 => 32 MiB, negative => unlimited
	Logger     resolvex.Logger // nil => NopLogger
}

// Client implements resolvex.ConcurrentProviderContext[string, []byte].
type Client struct {
	hc        *http.Client
	userAgent string
	maxBody   int64
	log       resolvex.Logger
}

var _ resolvex.ConcurrentProviderContext[string, []byte] = (*Client)(nil)

func New(cfg Config) *Client {
	maxBody := cfg.MaxBody
	if maxBody == 0 {
		maxBody = defaultMaxBody
	}
	return &Client{
		hc:        util.Coalesce(cfg.HTTPClient, http.DefaultClient),
		userAgent: cfg.UserAgent,
		maxBody:   maxBody,
		log:       util.Coalesce[resolvex.Logger](cfg.Logger, resolvex.NopLogger{}),
	}
}

// ResolveContext GETs the identifier URL and returns the body. Non-2xx
// responses fail with *StatusError.
func (c *Client) ResolveContext(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		c.log.Debug("fetch non-2xx", resolvex.Fields{"url": url, "status": resp.StatusCode})
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	var r io.Reader = resp.Body
	if c.maxBody > 0 {
		r = io.LimitReader(resp.Body, c.maxBody+1)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: read body: %w", url, err)
	}
	if c.maxBody > 0 && int64(len(b)) > c.maxBody {
		return nil, fmt.Errorf("fetch %s: body exceeds %d bytes", url, c.maxBody)
	}
	return b, nil
}

func (*Client) ConcurrencySafe() {}

// StatusError reports a non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

// NotFound reports whether the failure was a 404.
func (e *StatusError) NotFound() bool { return e.StatusCode == http.StatusNotFound }
