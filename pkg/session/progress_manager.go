package session

import (
	"context"
	"log"
	"time"
)

// TourProgress 持久化的引导进度
//
// 数据归属于偏好服务（或本地存储），引擎只引用不拥有：
// 首次读取时隐式创建（默认未完成），前进导航和跳过/完成时更新，
// 引擎从不删除。
type TourProgress struct {
	Completed bool `json:"tour_completed" yaml:"tour_completed"` // 引导是否已完成（或被跳过）
	Step      int  `json:"tour_step" yaml:"tour_step"`           // 最后确认的前进步骤索引
}

// ProgressStore 进度存储接口
//
// 两个实现：PrefsClient（偏好服务 HTTP 客户端）和
// LocalStore（gdata 本地存储，离线/桌面模式）。
type ProgressStore interface {
	// Fetch 读取当前用户的引导进度
	// 记录不存在时返回默认进度（未完成），不返回错误
	Fetch(ctx context.Context) (TourProgress, error)

	// Save 写入当前用户的引导进度
	Save(ctx context.Context, progress TourProgress) error
}

// 持久化调用的超时时间
// 引导是非关键增强功能，不值得让用户等太久
const progressWriteTimeout = 3 * time.Second

// ProgressManager 进度持久化适配器
//
// Story 21.4: 进度持久化
//
// 封装两种写入语义：
//   - SaveAsync: 尽力而为的副作用，结果忽略、失败吞掉、不重试
//     （中间步骤的前进写入，丢了也只是下次会话从更早的步骤恢复）
//   - SaveAndWait: 等待写入返回后才继续
//     （跳过/完成这两个终态转换；丢掉这次写入会让欢迎框永远重现）
//
// 任何失败都不向最终用户暴露：UI 状态是本会话的权威，
// 持久化状态只是跨会话的尽力而为记忆。
type ProgressManager struct {
	store ProgressStore
}

// NewProgressManager 创建进度持久化适配器
func NewProgressManager(store ProgressStore) *ProgressManager {
	return &ProgressManager{store: store}
}

// Fetch 读取持久化的引导进度
// 失败时返回错误，由调用方决定语义（状态机的选择是保持 Idle）
func (m *ProgressManager) Fetch(ctx context.Context) (TourProgress, error) {
	return m.store.Fetch(ctx)
}

// SaveAsync 异步写入进度（fire-and-forget）
// 在独立 goroutine 中执行，错误只记录日志
func (m *ProgressManager) SaveAsync(progress TourProgress) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), progressWriteTimeout)
		defer cancel()
		if err := m.store.Save(ctx, progress); err != nil {
			log.Printf("[ProgressManager] Warning: async progress write failed: %v (ignored)", err)
		}
	}()
}

// SaveAndWait 同步写入进度，等待结果后返回
// 错误同样被吞掉（只记录日志）：写入失败不阻止 UI 转换完成，
// 唯一的用户可见后果是引导可能在之后的会话中重新出现
func (m *ProgressManager) SaveAndWait(progress TourProgress) {
	ctx, cancel := context.WithTimeout(context.Background(), progressWriteTimeout)
	defer cancel()
	if err := m.store.Save(ctx, progress); err != nil {
		log.Printf("[ProgressManager] Warning: progress write failed: %v (tour may reappear next session)", err)
	}
}
