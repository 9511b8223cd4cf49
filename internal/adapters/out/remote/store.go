// Package remote talks to the thin backend that stores one JSON document per atelier.
package remote

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"atelier/internal/adapters/out/document"
	"atelier/internal/core/domain/model/atelier"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

var _ ports.AtelierStore = (*Store)(nil)

// StatusError is returned for a non-2xx answer of the backend.
type StatusError struct {
	Method string
	URL    string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.URL, e.Code, e.Body)
}

// Store implements ports.AtelierStore over HTTP:
//
//	GET  {baseURL}/atelier/{id}       full aggregate
//	PUT  {baseURL}/atelier/{id}/data  full aggregate, replace semantics
type Store struct {
	baseURL string
	client  *http.Client
}

// NewStore creates a store. A nil client gets a default one with a 10s timeout.
func NewStore(baseURL string, client *http.Client) (*Store, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", err)
	}
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Store{baseURL: baseURL, client: client}, nil
}

func (s *Store) Fetch(ctx context.Context, atelierID string) (*atelier.Atelier, error) {
	endpoint := s.baseURL + "/atelier/" + url.PathEscape(atelierID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errs.NewObjectNotFoundError("atelierId", atelierID)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &StatusError{Method: http.MethodGet, URL: endpoint, Code: resp.StatusCode, Body: snippet(body)}
	}

	return document.Unmarshal(body, atelierID)
}

func (s *Store) Replace(ctx context.Context, a *atelier.Atelier) error {
	body, err := document.Marshal(a)
	if err != nil {
		return err
	}
	endpoint := s.baseURL + "/atelier/" + url.PathEscape(a.ID()) + "/data"

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Method: http.MethodPut, URL: endpoint, Code: resp.StatusCode, Body: snippet(msg)}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func snippet(b []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(b))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
