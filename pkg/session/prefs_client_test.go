package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestPrefsClient_Fetch 测试进度读取与用户名转义
func TestPrefsClient_Fetch(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"tour_completed": true, "tour_step": 4})
	}))
	defer server.Close()

	client := NewPrefsClient(server.URL, "li wei")
	progress, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if want := (TourProgress{Completed: true, Step: 4}); progress != want {
		t.Errorf("Fetch = %+v, want %+v", progress, want)
	}
	if want := "/api/v1/users/li%20wei/tour"; gotPath != want {
		t.Errorf("Request path = %q, want %q", gotPath, want)
	}
}

// TestPrefsClient_FetchServerError 测试非 2xx 响应被视为读取失败
func TestPrefsClient_FetchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewPrefsClient(server.URL, "demo")
	if _, err := client.Fetch(context.Background()); err == nil {
		t.Fatal("Expected error for 502 response, got nil")
	}
}

// TestPrefsClient_FetchConnectionRefused 测试网络错误被视为读取失败
func TestPrefsClient_FetchConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // 立刻关掉，让连接被拒绝

	client := NewPrefsClient(server.URL, "demo")
	if _, err := client.Fetch(context.Background()); err == nil {
		t.Fatal("Expected error for refused connection, got nil")
	}
}

// TestPrefsClient_Save 测试进度写入：POST JSON，两个字段都发送
func TestPrefsClient_Save(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected JSON content type, got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("Failed to decode request body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewPrefsClient(server.URL, "demo")
	if err := client.Save(context.Background(), TourProgress{Completed: false, Step: 2}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if completed, ok := gotBody["tour_completed"].(bool); !ok || completed {
		t.Errorf("Expected tour_completed=false in body, got %v", gotBody["tour_completed"])
	}
	if step, ok := gotBody["tour_step"].(float64); !ok || step != 2 {
		t.Errorf("Expected tour_step=2 in body, got %v", gotBody["tour_step"])
	}
}

// TestPrefsClient_SaveServerError 测试写入失败返回错误（由上层决定吞掉）
func TestPrefsClient_SaveServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewPrefsClient(server.URL, "demo")
	if err := client.Save(context.Background(), TourProgress{Completed: true, Step: 1}); err == nil {
		t.Fatal("Expected error for 400 response, got nil")
	}
}
