package common

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestHTTPClient_PostForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/tapi" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("Content-Type = %q", ct)
		}
		if r.Header.Get("Key") != "k" {
			t.Errorf("Key = %q", r.Header.Get("Key"))
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != "method=getInfo&nonce=1" {
			t.Errorf("body = %q", body)
		}
		_, _ = w.Write([]byte(`{"success":1}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL + "/tapi/")
	resp, err := c.PostForm(context.Background(), "", "method=getInfo&nonce=1", map[string]string{"Key": "k"})
	if err != nil {
		t.Fatalf("PostForm: %v", err)
	}
	if string(resp) != `{"success":1}` {
		t.Fatalf("resp = %q", resp)
	}
}

func TestHTTPClient_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	_, err := c.Get(context.Background(), "/ticker/eth_btc")
	if err == nil || !strings.Contains(err.Error(), "http error 429") {
		t.Fatalf("error = %v", err)
	}
}

func TestHTTPClient_SetProxy(t *testing.T) {
	c := NewHTTPClient("https://api.tidex.com/api/3")
	if err := c.SetProxy("http://127.0.0.1:8080"); err != nil {
		t.Fatalf("SetProxy: %v", err)
	}
	if c.GetProxy() != "http://127.0.0.1:8080" {
		t.Fatalf("GetProxy() = %q", c.GetProxy())
	}
	if err := c.SetProxy("://bad"); err == nil {
		t.Fatal("expected error for invalid proxy")
	}
}

func TestHTTPClient_SetHTTPClientKeepsCallerClient(t *testing.T) {
	shared := &http.Client{Timeout: 5 * time.Second}

	c := NewHTTPClient("https://api.tidex.com/api/3")
	c.SetHTTPClient(shared)
	c.SetTimeout(time.Second)
	if err := c.SetProxy("http://127.0.0.1:8080"); err != nil {
		t.Fatalf("SetProxy: %v", err)
	}

	if shared.Timeout != 5*time.Second {
		t.Fatalf("caller timeout = %s, want 5s", shared.Timeout)
	}
	if shared.Transport != nil {
		t.Fatalf("caller transport modified: %T", shared.Transport)
	}
}
