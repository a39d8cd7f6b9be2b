package systems

import (
	"github.com/decker502/portaltour/pkg/components"
	"github.com/decker502/portaltour/pkg/config"
	"github.com/decker502/portaltour/pkg/session"
)

// GeometrySystem 目标几何解析系统
//
// Story 21.3: 覆盖层与提示框布局
//
// 职责：把步骤的目标定位符解析为当前的高亮矩形。
// 布局会在两次调用之间变化（异步内容加载、滚动、窗口尺寸变化），
// 因此每次步骤切换以及视口/滚动变化时都必须重新解析。
type GeometrySystem struct {
	surface session.Surface
}

// NewGeometrySystem 创建目标几何解析系统
func NewGeometrySystem(surface session.Surface) *GeometrySystem {
	return &GeometrySystem{surface: surface}
}

// Resolve 把目标定位符解析为高亮矩形
//
// 返回高亮矩形（文档坐标，已按 HighlightPadding 向四周扩展），
// 定位符为空或无匹配时返回 nil —— 调用方应按居中步骤处理，绝不报错。
func (s *GeometrySystem) Resolve(locator string) *components.HighlightRect {
	if locator == "" {
		return nil
	}

	bounds, ok := s.surface.LocateRegion(locator)
	if !ok {
		// 定位失败不是错误：宿主界面演进后定位符可能失效，
		// 降级为无高亮的居中步骤
		return nil
	}

	// 视口坐标 -> 文档坐标（加上当前垂直滚动偏移），并向外扩展内边距
	scrollY := s.surface.Viewport().ScrollY
	return &components.HighlightRect{
		Top:    float64(bounds.Min.Y) + scrollY - config.HighlightPadding,
		Left:   float64(bounds.Min.X) - config.HighlightPadding,
		Width:  float64(bounds.Dx()) + config.HighlightPadding*2,
		Height: float64(bounds.Dy()) + config.HighlightPadding*2,
	}
}
