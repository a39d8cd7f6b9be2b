package systems

import (
	"github.com/decker502/portaltour/pkg/components"
	"github.com/decker502/portaltour/pkg/config"
	"github.com/decker502/portaltour/pkg/session"
)

// AutoscrollSystem 自动滚动控制系统
//
// Story 21.3: 覆盖层与提示框布局
//
// 职责：步骤切换后，如果高亮目标离视口上下边缘过近（或不可见），
// 请求宿主表面平滑滚动到能看到目标的位置。
// 必须幂等：目标已经带边距可见时，重复调用不会再触发滚动
// （由可见性判定在发出滚动请求前拦截）。
type AutoscrollSystem struct {
	surface session.Surface
}

// NewAutoscrollSystem 创建自动滚动控制系统
func NewAutoscrollSystem(surface session.Surface) *AutoscrollSystem {
	return &AutoscrollSystem{surface: surface}
}

// MaybeScrollIntoView 必要时把高亮矩形滚动进视口
// rect 为 nil（居中步骤）时不做任何事
func (s *AutoscrollSystem) MaybeScrollIntoView(rect *components.HighlightRect) {
	if rect == nil {
		return
	}

	vp := s.surface.Viewport()
	target, needed := ScrollTarget(rect, vp.ScrollY, float64(vp.Height))
	if !needed {
		return
	}
	s.surface.SmoothScrollTo(target)
}

// ScrollTarget 可见性判定（纯函数）
//
// 视口上下各有一条 ScrollEdgeMargin 宽的"过近"判定带：
// 矩形顶部高于 scrollY+margin、或底部低于 scrollY+viewportHeight-margin
// 时视为需要滚动。
//
// 返回：
//   - target: 建议的滚动目标 max(0, rect.Top - ScrollRevealOffset)
//   - needed: 是否需要滚动；false 时矩形已带边距可见
func ScrollTarget(rect *components.HighlightRect, scrollY, viewportHeight float64) (target float64, needed bool) {
	tooHigh := rect.Top < scrollY+config.ScrollEdgeMargin
	tooLow := rect.Bottom() > scrollY+viewportHeight-config.ScrollEdgeMargin
	if !tooHigh && !tooLow {
		return 0, false
	}

	target = rect.Top - config.ScrollRevealOffset
	if target < 0 {
		target = 0
	}
	return target, true
}
