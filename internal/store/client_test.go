package store

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewClientValidation(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"missing url", Config{AnonKey: "key"}},
		{"missing key", Config{URL: "https://example.supabase.co"}},
		{"bad url", Config{URL: "://not-a-url", AnonKey: "key"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewClient(tc.cfg); err == nil {
				t.Errorf("expected error for %s", tc.name)
			}
		})
	}

	if _, err := NewClient(Config{URL: "https://example.supabase.co", AnonKey: "key"}); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

func TestSelectRequestShape(t *testing.T) {
	var gotPath, gotQuery, gotKey, gotAuth, gotPrefer string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		gotPrefer = r.Header.Get("Prefer")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{URL: srv.URL, AnonKey: "anon-key"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	data, err := client.Select(context.Background(), "users", "id=eq.7&limit=1")
	if err != nil {
		t.Fatalf("Select: %v", err)
	}

	if gotPath != "/rest/v1/users" {
		t.Errorf("expected path /rest/v1/users, got %s", gotPath)
	}
	if gotQuery != "id=eq.7&limit=1" {
		t.Errorf("expected query id=eq.7&limit=1, got %s", gotQuery)
	}
	if gotKey != "anon-key" {
		t.Errorf("expected apikey header anon-key, got %s", gotKey)
	}
	if gotAuth != "Bearer anon-key" {
		t.Errorf("expected Authorization Bearer anon-key, got %s", gotAuth)
	}
	if gotPrefer != "return=representation" {
		t.Errorf("expected Prefer return=representation, got %s", gotPrefer)
	}
	if string(data) != `[]` {
		t.Errorf("expected body [], got %s", data)
	}
}

func TestErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"code":"23505","message":"duplicate key value"}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{URL: srv.URL, AnonKey: "key"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.Insert(context.Background(), "users", map[string]string{"name": "x"})
	if err == nil {
		t.Fatal("expected error for 409 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Errorf("expected status 409, got %d", apiErr.StatusCode)
	}
	if apiErr.Code != "23505" {
		t.Errorf("expected code 23505, got %s", apiErr.Code)
	}
	if apiErr.Message != "duplicate key value" {
		t.Errorf("expected message 'duplicate key value', got %s", apiErr.Message)
	}
}

func TestErrorResponseUnparsableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream fell over`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{URL: srv.URL, AnonKey: "key"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.Select(context.Background(), "users", "")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Errorf("expected status 502, got %d", apiErr.StatusCode)
	}
}

func TestContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client, err := NewClient(Config{URL: srv.URL, AnonKey: "key"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Select(ctx, "users", ""); err == nil {
		t.Error("expected error for cancelled context")
	}
}
