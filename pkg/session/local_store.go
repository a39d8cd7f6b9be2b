package session

import (
	"context"
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// gdata 存储路径常量
const tourProgressObject = "tour_progress"

// LocalStore 基于 gdata 的本地进度存储
//
// Story 21.4: 进度持久化
//
// 未配置偏好服务时（离线/单机桌面模式）使用：
// 进度按用户名存为 gdata 对象属性，内容为 YAML（与项目其他存档格式一致）。
//
// 降级模式：gdataManager 为 nil 时进度只存在于内存中，
// 读取返回默认值、写入静默成功（不报错，与 SettingsManager 行为一致）。
type LocalStore struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存进度）
	userName     string
}

// NewLocalStore 创建本地进度存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
//   - userName: 当前用户名（进度按用户存储）
func NewLocalStore(gdataManager *gdata.Manager, userName string) *LocalStore {
	if gdataManager == nil {
		log.Printf("[LocalStore] Warning: no gdata manager, tour progress will not persist")
	}
	return &LocalStore{
		gdataManager: gdataManager,
		userName:     userName,
	}
}

// Fetch 读取本地保存的引导进度
// 记录不存在时返回默认进度（未完成、第 0 步）
func (s *LocalStore) Fetch(_ context.Context) (TourProgress, error) {
	// 降级模式：无持久化，返回默认进度
	if s.gdataManager == nil {
		return TourProgress{}, nil
	}

	if !s.gdataManager.ObjectPropExists(tourProgressObject, s.userName) {
		// 首次读取：隐式的默认记录（未完成）
		return TourProgress{}, nil
	}

	data, err := s.gdataManager.LoadObjectProp(tourProgressObject, s.userName)
	if err != nil {
		return TourProgress{}, fmt.Errorf("failed to load tour progress: %w", err)
	}

	var progress TourProgress
	if err := yaml.Unmarshal(data, &progress); err != nil {
		return TourProgress{}, fmt.Errorf("failed to unmarshal tour progress: %w", err)
	}
	return progress, nil
}

// Save 保存引导进度到 gdata
// 降级模式下返回 nil（不报错）
func (s *LocalStore) Save(_ context.Context, progress TourProgress) error {
	if s.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(progress)
	if err != nil {
		return fmt.Errorf("failed to marshal tour progress: %w", err)
	}

	if err := s.gdataManager.SaveObjectProp(tourProgressObject, s.userName, data); err != nil {
		return fmt.Errorf("failed to save tour progress: %w", err)
	}
	return nil
}
