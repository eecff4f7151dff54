// Package netx transfers bytes against pre-authorized object-store URLs.
package netx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// Transfer issues the request described by method, url and headers with
// data as the body. Any 2xx status is success.
func Transfer(ctx context.Context, client *http.Client, method, url string, headers map[string]string, data []byte) error {
	if client == nil {
		client = http.DefaultClient
	}
	if method == "" {
		method = http.MethodPut
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.ContentLength = int64(len(data))
	for k, v := range headers {
		// Content-Length is derived from the body.
		if http.CanonicalHeaderKey(k) == "Content-Length" {
			continue
		}
		req.Header.Set(k, v)
	}
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/octet-stream")
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("transfer failed: %s; body: %s", resp.Status, string(b))
	}
	return nil
}

// Fetch downloads the body served at url.
func Fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("fetch failed: %s; body: %s", resp.Status, string(b))
	}
	return io.ReadAll(resp.Body)
}
