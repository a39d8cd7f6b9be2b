package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/portaltour/pkg/components"
	"github.com/decker502/portaltour/pkg/session"
)

// TourInputSystem 引导覆盖层的输入处理系统
//
// Story 21.1: 引导之旅状态机
//
// 把鼠标点击和键盘快捷键翻译为状态机的导航操作：
//   - Welcome 阶段: 开始/跳过按钮，Enter = 开始，Esc = 跳过
//   - Tour 阶段: 上一步/下一步/完成/跳过按钮，
//     左右方向键导航，Enter = 下一步（最后一步为完成），Esc = 跳过
//
// 命中矩形与渲染系统共享同一份布局计算（tour_layout.go）。
type TourInputSystem struct {
	tour    *TourSystem
	surface session.Surface
}

// NewTourInputSystem 创建输入处理系统
func NewTourInputSystem(tour *TourSystem, surface session.Surface) *TourInputSystem {
	return &TourInputSystem{tour: tour, surface: surface}
}

// Update 每帧处理输入
// Idle 阶段不消费任何输入（引导对宿主应用完全透明）
func (s *TourInputSystem) Update() {
	switch s.tour.Phase() {
	case components.TourPhaseWelcome:
		s.updateWelcome()
	case components.TourPhaseTour:
		s.updateTour()
	}
}

// updateWelcome 处理欢迎对话框的输入
func (s *TourInputSystem) updateWelcome() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.tour.StartTour()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.tour.SkipWelcome()
		return
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	layout := ComputeWelcomeLayout(s.surface.Viewport())

	switch {
	case layout.StartBtn.Contains(float64(mx), float64(my)):
		s.tour.StartTour()
	case layout.SkipBtn.Contains(float64(mx), float64(my)):
		s.tour.SkipWelcome()
	}
}

// updateTour 处理导览步骤的输入
func (s *TourInputSystem) updateTour() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.tour.Skip()
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		s.tour.Back()
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		s.tour.Next()
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if s.tour.IsLastStep() {
			s.tour.Finish()
		} else {
			s.tour.Next()
		}
		return
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}

	// 提示框布局是文档坐标，鼠标是视口坐标：命中检测前加上滚动偏移
	mx, my := ebiten.CursorPosition()
	scrollY := s.surface.Viewport().ScrollY
	docX, docY := float64(mx), float64(my)+scrollY

	layout := ComputeTooltipLayout(s.tour.Tooltip())
	switch {
	case layout.NextBtn.Contains(docX, docY):
		if layout.IsLast {
			s.tour.Finish()
		} else {
			s.tour.Next()
		}
	case layout.ShowBack && layout.BackBtn.Contains(docX, docY):
		s.tour.Back()
	case layout.SkipBtn.Contains(docX, docY):
		s.tour.Skip()
	}
}
