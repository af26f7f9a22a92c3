package engine

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// FetchPage retrieves a rendered HTML document as a string. The caller
// gets either the complete 2xx body or an error — transport failures and
// bad statuses stay distinguishable from the extraction layer's
// "payload not found", so a network blip is never mistaken for YouTube
// changing its markup.
func FetchPage(ctx context.Context, rawURL string) (string, error) {
	metrics.PageFetches.Add(1)

	doc, err := fetchPage(ctx, rawURL)
	if err != nil {
		metrics.FetchErrors.Add(1)
		return "", err
	}
	return doc, nil
}

func fetchPage(ctx context.Context, rawURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	if cfg.FetchLimiter != nil {
		if err := cfg.FetchLimiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	if cfg.BrowserClient != nil {
		return fetchPageBrowser(ctx, rawURL)
	}

	resp, err := RetryHTTP(ctx, DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", RandomUserAgent())
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")
		// Pre-accepted consent skips the EU interstitial page.
		req.Header.Set("Cookie", "CONSENT=YES+cb; SOCS=CAI")
		return cfg.HTTPClient.Do(req)
	})
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return "", fmt.Errorf("fetch %s: HTTP %d: %s", rawURL, resp.StatusCode, snippet)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, cfg.MaxPageBytes))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", rawURL, err)
	}
	return string(body), nil
}

func fetchPageBrowser(ctx context.Context, rawURL string) (string, error) {
	type result struct {
		body   []byte
		status int
		err    error
	}
	// tls-client requests carry their own timeout; honor ctx cancellation
	// without leaking the goroutine's result.
	ch := make(chan result, 1)
	go func() {
		headers := ChromeHeaders()
		headers["cookie"] = "CONSENT=YES+cb; SOCS=CAI"
		body, status, err := cfg.BrowserClient.Get(rawURL, headers)
		ch <- result{body, status, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		if r.err != nil {
			return "", fmt.Errorf("fetch %s: %w", rawURL, r.err)
		}
		if r.status != http.StatusOK {
			return "", fmt.Errorf("fetch %s: HTTP %d", rawURL, r.status)
		}
		return string(r.body), nil
	}
}
