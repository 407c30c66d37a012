package services

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/canghafiz/xsell-bff/config"
)

// UpstreamResponse is the raw result of one forwarded call. Body is the
// verbatim upstream payload; callers decide whether to pass it through or
// reshape it.
type UpstreamResponse struct {
	Status int
	Body   []byte
}

// ForwardOptions describes one upstream call. Query and Headers may be nil.
type ForwardOptions struct {
	Method  string
	Path    string // upstream path, e.g. "member/product/category"
	Query   url.Values
	Body    []byte
	Headers map[string]string
}

// Forward issues one call against the upstream API. Transport-level failures
// come back as the error; upstream HTTP errors come back as a normal
// UpstreamResponse with the upstream status.
//
// Responses are never cached: the listing contract depends on every page
// reflecting the latest backend state.
func Forward(ctx context.Context, opts ForwardOptions) (*UpstreamResponse, error) {
	target, err := config.BackendURL(opts.Path)
	if err != nil {
		return nil, err
	}
	if len(opts.Query) > 0 {
		target += "?" + opts.Query.Encode()
	}

	var body io.Reader
	if opts.Body != nil {
		body = bytes.NewReader(opts.Body)
	}

	req, err := http.NewRequestWithContext(ctx, opts.Method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	if opts.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	res, err := config.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	return &UpstreamResponse{Status: res.StatusCode, Body: raw}, nil
}
