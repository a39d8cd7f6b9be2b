package prefsvc

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestServer 启动一个带临时 sqlite 存储的测试服务
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(NewServer(openTestStore(t)).Router())
	t.Cleanup(server.Close)
	return server
}

// getProgress 读取用户进度并解码响应
func getProgress(t *testing.T, server *httptest.Server, user string) progressResponse {
	t.Helper()
	resp, err := http.Get(server.URL + "/api/v1/users/" + user + "/tour")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET status = %d, want 200", resp.StatusCode)
	}

	var body progressResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return body
}

// postProgress 写入用户进度，返回响应状态码
func postProgress(t *testing.T, server *httptest.Server, user, body string) int {
	t.Helper()
	resp, err := http.Post(server.URL+"/api/v1/users/"+user+"/tour",
		"application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

// TestServer_Healthz 测试健康检查端点
func TestServer_Healthz(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Status = %d, want 200", resp.StatusCode)
	}
}

// TestServer_GetDefaultProgress 测试首次读取返回默认进度
func TestServer_GetDefaultProgress(t *testing.T) {
	server := newTestServer(t)

	body := getProgress(t, server, "newuser")
	if body.Completed || body.Step != 0 {
		t.Errorf("Expected default progress, got %+v", body)
	}
}

// TestServer_PostThenGet 测试完整写入后读回
func TestServer_PostThenGet(t *testing.T) {
	server := newTestServer(t)

	status := postProgress(t, server, "demo", `{"tour_completed": false, "tour_step": 3}`)
	if status != http.StatusOK {
		t.Fatalf("POST status = %d, want 200", status)
	}

	body := getProgress(t, server, "demo")
	if body.Completed || body.Step != 3 {
		t.Errorf("Expected {false, 3}, got %+v", body)
	}
}

// TestServer_PartialUpdate 测试部分更新：缺省字段保持原值
func TestServer_PartialUpdate(t *testing.T) {
	server := newTestServer(t)

	if status := postProgress(t, server, "demo", `{"tour_completed": false, "tour_step": 4}`); status != http.StatusOK {
		t.Fatalf("POST status = %d, want 200", status)
	}

	// 只更新 tour_completed，tour_step 保持 4
	if status := postProgress(t, server, "demo", `{"tour_completed": true}`); status != http.StatusOK {
		t.Fatalf("POST status = %d, want 200", status)
	}

	body := getProgress(t, server, "demo")
	if !body.Completed || body.Step != 4 {
		t.Errorf("Expected {true, 4} after partial update, got %+v", body)
	}

	// 只更新 tour_step，tour_completed 保持 true
	if status := postProgress(t, server, "demo", `{"tour_step": 5}`); status != http.StatusOK {
		t.Fatalf("POST status = %d, want 200", status)
	}
	body = getProgress(t, server, "demo")
	if !body.Completed || body.Step != 5 {
		t.Errorf("Expected {true, 5} after partial update, got %+v", body)
	}
}

// TestServer_PostInvalid 测试非法请求体被拒绝
func TestServer_PostInvalid(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"非法JSON", `{tour_completed`},
		{"负的步骤索引", `{"tour_step": -1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if status := postProgress(t, server, "demo", tt.body); status != http.StatusBadRequest {
				t.Errorf("Status = %d, want 400", status)
			}
		})
	}

	// 非法请求不得污染已有进度
	body := getProgress(t, server, "demo")
	if body.Completed || body.Step != 0 {
		t.Errorf("Invalid POST must not change progress, got %+v", body)
	}
}

// TestServer_UsersIsolated 测试进度按用户隔离
func TestServer_UsersIsolated(t *testing.T) {
	server := newTestServer(t)

	if status := postProgress(t, server, "alice", `{"tour_completed": true, "tour_step": 6}`); status != http.StatusOK {
		t.Fatalf("POST status = %d, want 200", status)
	}

	body := getProgress(t, server, "bob")
	if body.Completed || body.Step != 0 {
		t.Errorf("Expected default progress for bob, got %+v", body)
	}
}
