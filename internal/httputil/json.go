// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across the pipeline.
package httputil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// MaxBodySize caps how much of a response body GetJSON reads.
const MaxBodySize = 10 * 1024 * 1024

// DecodeError reports a response body that could not be parsed as JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse json: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// GetJSON issues a single GET to rawURL with the given headers and decodes
// the body into a generic JSON value (map[string]any, []any, string,
// float64, bool or nil).
//
// The status code is returned alongside the value and is not interpreted:
// error bodies are decoded like any other. There is no retry. A body that is
// not valid JSON, or that exceeds MaxBodySize, yields a *DecodeError.
func GetJSON(ctx context.Context, client *http.Client, rawURL string, header http.Header) (int, any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("creating request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("reading response body: %w", err)
	}
	if len(body) > MaxBodySize {
		return resp.StatusCode, nil, &DecodeError{Err: fmt.Errorf("response exceeds %d bytes", MaxBodySize)}
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return resp.StatusCode, nil, &DecodeError{Err: err}
	}
	return resp.StatusCode, v, nil
}
