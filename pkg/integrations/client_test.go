package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewClient(t *testing.T) {
	client := NewClient(map[string]string{"Authorization": "Bearer token"})
	if client.http == nil {
		t.Error("NewClient() http client is nil")
	}
	if client.http.Timeout != httpTimeout {
		t.Errorf("timeout = %v, want %v", client.http.Timeout, httpTimeout)
	}
	if client.headers["Authorization"] != "Bearer token" {
		t.Error("NewClient() headers not set correctly")
	}
}

func TestClientGet(t *testing.T) {
	type response struct {
		Message string `json:"message"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if ua := r.Header.Get("User-Agent"); !strings.HasPrefix(ua, "meetgraph/") {
			t.Errorf("User-Agent = %q", ua)
		}
		json.NewEncoder(w).Encode(response{Message: "hello"})
	}))
	defer server.Close()

	client := NewClient(nil).WithHTTPClient(server.Client())

	var resp response
	if err := client.Get(context.Background(), server.URL, &resp); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if resp.Message != "hello" {
		t.Errorf("Get() message = %q, want %q", resp.Message, "hello")
	}
}

func TestClientGetWithHeadersOverridesDefaults(t *testing.T) {
	var override, custom string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		override = r.Header.Get("X-Override")
		custom = r.Header.Get("X-Custom")
		w.Header().Set("Link", `<next>; rel="next"`)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	client := NewClient(map[string]string{"X-Override": "default"}).WithHTTPClient(server.Client())

	var resp map[string]string
	h, err := client.GetWithHeaders(context.Background(), server.URL,
		map[string]string{"X-Override": "overridden", "X-Custom": "custom"}, &resp)
	if err != nil {
		t.Fatalf("GetWithHeaders() error: %v", err)
	}
	if override != "overridden" || custom != "custom" {
		t.Errorf("headers = %q, %q", override, custom)
	}
	if h.Get("Link") == "" {
		t.Error("response headers should be returned")
	}
}

func TestClientGetBytes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"workgroup":"A"}]`))
	}))
	defer server.Close()

	data, err := NewClient(nil).WithHTTPClient(server.Client()).GetBytes(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("GetBytes() error: %v", err)
	}
	if string(data) != `[{"workgroup":"A"}]` {
		t.Errorf("GetBytes() = %q", data)
	}
}

func TestClientStatusErrors(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{http.StatusNotFound, ErrNotFound},
		{http.StatusInternalServerError, ErrHTTPStatus},
		{http.StatusForbidden, ErrHTTPStatus},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			calls := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.code)
			}))
			defer server.Close()

			_, err := NewClient(nil).WithHTTPClient(server.Client()).GetBytes(context.Background(), server.URL)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if calls != 1 {
				t.Errorf("server called %d times, want exactly 1", calls)
			}
		})
	}
}

func TestClientNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient(nil).GetBytes(context.Background(), url)
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("error = %v, want ErrNetwork", err)
	}
}

func TestCheckStatus(t *testing.T) {
	tests := []struct {
		name string
		code int
		want error
	}{
		{"200 OK", 200, nil},
		{"204 No Content", 204, nil},
		{"404 Not Found", 404, ErrNotFound},
		{"400 Bad Request", 400, ErrHTTPStatus},
		{"503 Service Unavailable", 503, ErrHTTPStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkStatus(tt.code)
			if tt.want == nil {
				if err != nil {
					t.Errorf("checkStatus() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("checkStatus() error = %v, want %v", err, tt.want)
			}
		})
	}
}
