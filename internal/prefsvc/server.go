// Package prefsvc 实现门户偏好服务（引导进度部分）
//
// 引导引擎眼中的外部协作方：
//   - GET  /api/v1/users/{user}/tour -> {tour_completed, tour_step}
//   - POST /api/v1/users/{user}/tour {tour_completed?, tour_step?} -> ack
//
// POST 是部分更新：缺省的字段保持原值（两个字段都是可选的）。
package prefsvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server 偏好服务
type Server struct {
	store *Store
}

// NewServer 创建偏好服务
func NewServer(store *Store) *Server {
	return &Server{store: store}
}

// Router 构建 HTTP 路由
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", healthzHandler)
	r.Get("/api/v1/users/{user}/tour", s.getProgressHandler)
	r.Post("/api/v1/users/{user}/tour", s.postProgressHandler)

	return r
}

// Run 启动服务并阻塞直到 ctx 取消
func Run(ctx context.Context, addr, dbPath string) error {
	store, err := OpenStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           NewServer(store).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[PrefSvc] started on %s (db=%s)", addr, dbPath)
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown server: %w", err)
		}
		log.Printf("[PrefSvc] stopped")
		return nil
	case err := <-errCh:
		return err
	}
}

func healthzHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// progressResponse 进度端点的响应体
type progressResponse struct {
	Completed bool `json:"tour_completed"`
	Step      int  `json:"tour_step"`
}

// progressUpdate POST 请求体，两个字段都可选（部分更新）
type progressUpdate struct {
	Completed *bool `json:"tour_completed"`
	Step      *int  `json:"tour_step"`
}

// getProgressHandler 读取用户的引导进度
// 不存在的用户返回默认进度（首次读取时隐式创建的语义）
func (s *Server) getProgressHandler(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "user")
	if username == "" {
		writeError(w, http.StatusBadRequest, "user is required")
		return
	}

	progress, err := s.store.GetProgress(r.Context(), username)
	if err != nil {
		log.Printf("[PrefSvc] get progress for %q failed: %v", username, err)
		writeError(w, http.StatusInternalServerError, "failed to read progress")
		return
	}
	writeJSON(w, http.StatusOK, progressResponse{Completed: progress.Completed, Step: progress.Step})
}

// postProgressHandler 部分更新用户的引导进度
func (s *Server) postProgressHandler(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "user")
	if username == "" {
		writeError(w, http.StatusBadRequest, "user is required")
		return
	}

	var update progressUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if update.Step != nil && *update.Step < 0 {
		writeError(w, http.StatusBadRequest, "tour_step must be >= 0")
		return
	}

	// 读改写：缺省字段保持原值
	progress, err := s.store.GetProgress(r.Context(), username)
	if err != nil {
		log.Printf("[PrefSvc] get progress for %q failed: %v", username, err)
		writeError(w, http.StatusInternalServerError, "failed to read progress")
		return
	}
	if update.Completed != nil {
		progress.Completed = *update.Completed
	}
	if update.Step != nil {
		progress.Step = *update.Step
	}

	if err := s.store.UpsertProgress(r.Context(), username, progress); err != nil {
		log.Printf("[PrefSvc] save progress for %q failed: %v", username, err)
		writeError(w, http.StatusInternalServerError, "failed to save progress")
		return
	}
	writeJSON(w, http.StatusOK, progressResponse{Completed: progress.Completed, Step: progress.Step})
}

// writeJSON 写 JSON 响应
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[PrefSvc] encode JSON response failed: %v", err)
	}
}

// writeError 写错误响应
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
