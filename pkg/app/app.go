// Package app 提供门户客户端的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来，使其可以被主程序和
// cmd/verify_tour 验证工具共用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/portaltour/pkg/config"
	"github.com/decker502/portaltour/pkg/scenes"
	"github.com/decker502/portaltour/pkg/session"
	"github.com/decker502/portaltour/pkg/systems"
)

// 逻辑屏幕的初始尺寸
const (
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 640
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool

	// UserName 当前用户的显示名
	UserName string
	// Role 当前用户的角色标签
	Role string

	// StartImmediate 跳过欢迎框和完成状态检查，直接重播引导
	StartImmediate bool

	// PrefsURL 偏好服务地址；为空时进度保存在本地（gdata）
	PrefsURL string

	// DisablePersistence 完全禁用进度持久化（验证工具使用，
	// 进度只存在于内存中，等价于 gdata 降级模式）
	DisablePersistence bool
}

// App 门户客户端的核心包装器，实现 ebiten.Game 接口
type App struct {
	scene *scenes.PortalScene

	tourSystem    *systems.TourSystem
	tourInput     *systems.TourInputSystem
	overlayRender *systems.OverlayRenderSystem
	tooltipRender *systems.TooltipRenderSystem
	welcomeRender *systems.WelcomeRenderSystem
}

// NewApp 创建并初始化门户客户端
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载引导步骤目录并按角色选择
	catalogs, err := config.LoadTourCatalogs()
	if err != nil {
		return nil, fmt.Errorf("failed to load tour catalogs: %w", err)
	}
	catalog := catalogs.GetStepsForRole(cfg.Role)
	log.Printf("[App] Selected tour catalog %q for role %q (%d steps)", catalog.Role, cfg.Role, catalog.Len())

	// 选择进度存储：偏好服务 > gdata 本地存储 > 内存（降级）
	store := newProgressStore(cfg)

	scene := scenes.NewPortalScene(cfg.Role, DefaultWindowWidth, DefaultWindowHeight)

	sess := &session.SessionState{
		UserName:       cfg.UserName,
		Role:           cfg.Role,
		StartImmediate: cfg.StartImmediate,
		OnComplete: func() {
			log.Printf("[App] Tour ended, portal interactive again")
		},
	}

	tourSystem := systems.NewTourSystem(sess, catalog, scene, session.NewProgressManager(store))

	return &App{
		scene:         scene,
		tourSystem:    tourSystem,
		tourInput:     systems.NewTourInputSystem(tourSystem, scene),
		overlayRender: systems.NewOverlayRenderSystem(tourSystem, scene),
		tooltipRender: systems.NewTooltipRenderSystem(tourSystem, scene),
		welcomeRender: systems.NewWelcomeRenderSystem(tourSystem, scene),
	}, nil
}

// newProgressStore 根据配置选择进度存储实现
func newProgressStore(cfg Config) session.ProgressStore {
	if cfg.DisablePersistence {
		return session.NewLocalStore(nil, cfg.UserName)
	}
	if cfg.PrefsURL != "" {
		log.Printf("[App] Using preference service at %s", cfg.PrefsURL)
		return session.NewPrefsClient(cfg.PrefsURL, cfg.UserName)
	}

	// 本地模式：gdata 打开失败时降级为仅内存进度
	manager, err := gdata.Open(gdata.Config{AppName: "portaltour"})
	if err != nil {
		log.Printf("[App] Warning: failed to open gdata storage: %v (progress will not persist)", err)
		manager = nil
	}
	return session.NewLocalStore(manager, cfg.UserName)
}

// Update 更新应用逻辑，每 tick 调用一次
func (a *App) Update() error {
	const dt = 1.0 / 60.0

	a.scene.Update(dt)
	a.tourInput.Update()
	a.tourSystem.Update(dt)
	return nil
}

// Draw 渲染一帧：先画宿主界面，再叠加引导覆盖层
func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
	a.overlayRender.Draw(screen)
	a.tooltipRender.Draw(screen)
	a.welcomeRender.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
// 跟随窗口尺寸，让视口变化能触发几何重算
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return DefaultWindowWidth, DefaultWindowHeight
	}
	a.scene.SetViewportSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
