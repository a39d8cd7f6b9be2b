package systems

import (
	"context"
	"log"
	"time"

	"github.com/decker502/portaltour/pkg/components"
	"github.com/decker502/portaltour/pkg/config"
	"github.com/decker502/portaltour/pkg/session"
)

// 进度读取的超时时间
const progressFetchTimeout = 5 * time.Second

// fetchResult 初始进度读取的结果
type fetchResult struct {
	progress session.TourProgress
	err      error
}

// TourSystem 引导之旅状态机
//
// Story 21.1: 引导之旅状态机
//
// 职责：
//   - 管理顶层阶段转换 Idle -> Welcome -> Tour(step) -> Idle
//   - 导航操作（next/back/skip/finish）的守卫与执行
//   - 每次步骤切换和视口变化时触发几何解析、位置规划与自动滚动
//   - 通过 ProgressManager 持久化前进进度和终态
//
// 并发模型：所有状态变更都发生在 UI 帧循环里（Update 与导航方法），
// 仅初始进度读取在独立 goroutine 中执行，结果经 channel 在 Update 中消费。
// 导航由用户点击触发，同步状态更新应用完之前不会有第二次导航输入，
// 因此不存在相互冲突的写入者。
type TourSystem struct {
	session    *session.SessionState
	catalog    config.StepCatalog
	geometry   *GeometrySystem
	autoscroll *AutoscrollSystem
	surface    session.Surface
	progress   *session.ProgressManager

	tour      *components.TourComponent
	tooltip   *components.TourTooltipComponent
	welcome   *components.WelcomeDialogComponent
	highlight *components.HighlightRect

	// resumeStep 持久化进度里最后确认的前进步骤（欢迎框确认后从这里续播）
	resumeStep int

	fetchCh chan fetchResult

	// lastViewport 上一帧的视口快照，用于检测尺寸/滚动变化
	lastViewport session.Viewport
}

// NewTourSystem 创建引导之旅状态机
//
// 构造即挂载：
//   - StartImmediate 为 true 时完全绕过完成状态检查，不发起任何进度读取，
//     立即进入第 0 步（显式的重播请求）
//   - 否则异步读取持久化进度，结果在 Update 中消费后决定初始阶段
//     （未完成 -> Welcome；已完成或读取失败 -> 保持 Idle）
func NewTourSystem(
	sess *session.SessionState,
	catalog config.StepCatalog,
	surface session.Surface,
	progress *session.ProgressManager,
) *TourSystem {
	s := &TourSystem{
		session:    sess,
		catalog:    catalog,
		geometry:   NewGeometrySystem(surface),
		autoscroll: NewAutoscrollSystem(surface),
		surface:    surface,
		progress:   progress,
		tour:       &components.TourComponent{Phase: components.TourPhaseIdle},
		tooltip:    components.NewTourTooltipComponent(),
		welcome: &components.WelcomeDialogComponent{
			UserName:  sess.UserName,
			RoleLabel: components.RoleDisplayLabel(sess.Role),
		},
	}

	if sess.StartImmediate {
		s.enterStep(0)
		log.Printf("[TourSystem] Started immediately (replay), role=%s catalog=%s", sess.Role, catalog.Role)
		return s
	}

	s.beginProgressFetch()
	return s
}

// beginProgressFetch 异步读取持久化进度
// 结果写入带缓冲的 channel，由 Update 在 UI 帧循环中消费
func (s *TourSystem) beginProgressFetch() {
	s.fetchCh = make(chan fetchResult, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), progressFetchTimeout)
		defer cancel()
		progress, err := s.progress.Fetch(ctx)
		s.fetchCh <- fetchResult{progress: progress, err: err}
	}()
}

// Update 每帧驱动状态机
//
//   - 消费待处理的初始进度读取结果
//   - Tour 阶段中检测视口尺寸/滚动变化，变化时重新计算几何与位置
//     （帧循环等价于 resize/scroll 监听：只在带高亮目标的步骤激活时比较快照，
//     阶段或步骤离开后自然停止，不存在监听器累积问题）
func (s *TourSystem) Update(_ float64) {
	s.consumeFetchResult()

	if s.tour.Phase != components.TourPhaseTour {
		return
	}

	vp := s.surface.Viewport()
	if vp != s.lastViewport {
		s.refreshStep()
	}
}

// consumeFetchResult 非阻塞地消费初始进度读取结果并决定初始阶段
func (s *TourSystem) consumeFetchResult() {
	if s.fetchCh == nil {
		return
	}

	select {
	case result := <-s.fetchCh:
		s.fetchCh = nil
		if result.err != nil {
			// 读取失败：默认不打扰用户，保持 Idle
			// （避免因瞬时故障反复打断用户，胜过猜测）
			log.Printf("[TourSystem] Warning: progress fetch failed: %v (staying idle)", result.err)
			return
		}
		if result.progress.Completed {
			return
		}
		s.resumeStep = result.progress.Step
		s.welcome.IsVisible = true
		s.tour.Phase = components.TourPhaseWelcome
	default:
	}
}

// StartTour 欢迎框确认：Welcome -> Tour
// 从持久化进度的最后前进步骤续播（新用户为第 0 步）；
// 目录在两次会话之间可能变短，索引越界时回到第 0 步
func (s *TourSystem) StartTour() {
	if s.tour.Phase != components.TourPhaseWelcome {
		return
	}
	s.welcome.IsVisible = false

	step := s.resumeStep
	if step < 0 || step >= s.catalog.Len() {
		step = 0
	}
	s.enterStep(step)
}

// SkipWelcome 欢迎框跳过：Welcome -> Idle
// 写入 {completed: true, step: 0} 并等待返回后才离开该阶段
// （这是唯一会让欢迎框永远重现的丢失写入，必须等待而非尽力而为）
func (s *TourSystem) SkipWelcome() {
	if s.tour.Phase != components.TourPhaseWelcome {
		return
	}
	s.progress.SaveAndWait(session.TourProgress{Completed: true, Step: 0})
	s.leaveTour()
}

// Next 前进到下一步，仅当 i+1 < 目录长度时允许
// 进度写入为 fire-and-forget
func (s *TourSystem) Next() {
	if s.tour.Phase != components.TourPhaseTour {
		return
	}
	next := s.tour.StepIndex + 1
	if next >= s.catalog.Len() {
		return
	}
	s.enterStep(next)
	s.progress.SaveAsync(session.TourProgress{Completed: false, Step: next})
}

// Back 回退到上一步，仅当 i > 0 时允许
// 不写入进度：回退不被持久记忆，只有前进进度和终态会被记住
func (s *TourSystem) Back() {
	if s.tour.Phase != components.TourPhaseTour {
		return
	}
	if s.tour.StepIndex <= 0 {
		return
	}
	s.enterStep(s.tour.StepIndex - 1)
}

// Skip 任意步骤跳过整个引导：Tour -> Idle
// 等待写入 {completed: true, step: 当前步骤} 后离开
func (s *TourSystem) Skip() {
	if s.tour.Phase != components.TourPhaseTour {
		return
	}
	s.progress.SaveAndWait(session.TourProgress{Completed: true, Step: s.tour.StepIndex})
	s.leaveTour()
}

// Finish 最后一步完成引导：Tour -> Idle
// 仅在最后一步允许；等待写入 {completed: true, step: 最后一步} 后离开
func (s *TourSystem) Finish() {
	if s.tour.Phase != components.TourPhaseTour {
		return
	}
	if !s.IsLastStep() {
		return
	}
	s.progress.SaveAndWait(session.TourProgress{Completed: true, Step: s.tour.StepIndex})
	s.leaveTour()
}

// enterStep 进入指定步骤并刷新几何/位置/滚动
// 对同一索引的重复进入只做重新计算，不构成阶段转换
func (s *TourSystem) enterStep(index int) {
	s.tour.Phase = components.TourPhaseTour
	s.tour.StepIndex = index
	s.refreshStep()
}

// refreshStep 重新计算当前步骤的高亮矩形、提示框位置与自动滚动
// 步骤切换、视口尺寸变化、滚动偏移变化时都会调用
func (s *TourSystem) refreshStep() {
	step := s.catalog.Steps[s.tour.StepIndex]

	s.highlight = s.geometry.Resolve(step.Target)

	vp := s.surface.Viewport()
	s.tooltip.IsVisible = true
	s.tooltip.Title = step.Title
	s.tooltip.Description = step.Description
	s.tooltip.StepNumber = s.tour.StepIndex + 1
	s.tooltip.StepCount = s.catalog.Len()
	s.tooltip.Position = PlanTooltip(s.highlight, step.Placement, vp)

	s.autoscroll.MaybeScrollIntoView(s.highlight)
	s.lastViewport = vp
}

// leaveTour 回到 Idle 并通知宿主
// 任何用户主动的终态转换（完成、跳过、欢迎框跳过）都会触发 OnComplete
func (s *TourSystem) leaveTour() {
	s.tour.Phase = components.TourPhaseIdle
	s.tooltip.IsVisible = false
	s.welcome.IsVisible = false
	s.highlight = nil
	if s.session.OnComplete != nil {
		s.session.OnComplete()
	}
}

// Phase 返回当前阶段
func (s *TourSystem) Phase() components.TourPhase {
	return s.tour.Phase
}

// StepIndex 返回当前步骤索引（仅 Tour 阶段有意义）
func (s *TourSystem) StepIndex() int {
	return s.tour.StepIndex
}

// IsLastStep 返回当前是否处于目录的最后一步
func (s *TourSystem) IsLastStep() bool {
	return s.tour.StepIndex == s.catalog.Len()-1
}

// Tooltip 返回提示框组件（渲染与输入系统读取）
func (s *TourSystem) Tooltip() *components.TourTooltipComponent {
	return s.tooltip
}

// Welcome 返回欢迎对话框组件（渲染与输入系统读取）
func (s *TourSystem) Welcome() *components.WelcomeDialogComponent {
	return s.welcome
}

// Highlight 返回当前高亮矩形，无高亮时为 nil
func (s *TourSystem) Highlight() *components.HighlightRect {
	return s.highlight
}
