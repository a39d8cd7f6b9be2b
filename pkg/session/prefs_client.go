package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// PrefsClient 偏好服务的进度存储客户端
//
// Story 21.4: 进度持久化
//
// 协议：
//   - GET  /api/v1/users/{user}/tour -> {tour_completed, tour_step}
//   - POST /api/v1/users/{user}/tour {tour_completed?, tour_step?} -> ack
//
// 任何非 2xx 响应或网络错误都视为失败，交由 ProgressManager
// 决定语义（读失败保持 Idle，写失败吞掉）。
type PrefsClient struct {
	baseURL  string
	userName string
	client   *http.Client
}

// NewPrefsClient 创建偏好服务客户端
//
// 参数：
//   - baseURL: 偏好服务地址，如 "http://localhost:8391"
//   - userName: 当前用户名（进度按用户存储）
func NewPrefsClient(baseURL, userName string) *PrefsClient {
	return &PrefsClient{
		baseURL:  baseURL,
		userName: userName,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

// progressURL 拼接当前用户的进度端点
func (c *PrefsClient) progressURL() string {
	return c.baseURL + "/api/v1/users/" + url.PathEscape(c.userName) + "/tour"
}

// Fetch 读取持久化的引导进度
func (c *PrefsClient) Fetch(ctx context.Context) (TourProgress, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.progressURL(), nil)
	if err != nil {
		return TourProgress{}, fmt.Errorf("create progress request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return TourProgress{}, fmt.Errorf("fetch tour progress: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4*1024))
		return TourProgress{}, fmt.Errorf("fetch tour progress rejected: status=%d body=%s", resp.StatusCode, bytes.TrimSpace(body))
	}

	var progress TourProgress
	if err := json.NewDecoder(resp.Body).Decode(&progress); err != nil {
		return TourProgress{}, fmt.Errorf("decode tour progress: %w", err)
	}
	return progress, nil
}

// Save 写入引导进度
// 两个字段都发送：引擎侧的写入总是完整的（部分更新语义留给其他调用方）
func (c *PrefsClient) Save(ctx context.Context, progress TourProgress) error {
	body, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("marshal tour progress: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.progressURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create progress request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("save tour progress: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4*1024))
		return fmt.Errorf("save tour progress rejected: status=%d body=%s", resp.StatusCode, bytes.TrimSpace(respBody))
	}
	return nil
}
