package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/decker502/portaltour/pkg/components"
	"github.com/decker502/portaltour/pkg/config"
	"github.com/decker502/portaltour/pkg/session"
)

// OverlayRenderSystem 遮罩层渲染系统
//
// Story 21.3: 覆盖层与提示框布局
//
// 在宿主界面之上绘制半透明遮罩。带高亮目标的步骤绘制四条遮罩带
// （上/下/左/右），中间留出高亮矩形的镂空区域；
// 居中步骤和欢迎阶段整屏变暗。
type OverlayRenderSystem struct {
	tour    *TourSystem
	surface session.Surface
}

// NewOverlayRenderSystem 创建遮罩层渲染系统
func NewOverlayRenderSystem(tour *TourSystem, surface session.Surface) *OverlayRenderSystem {
	return &OverlayRenderSystem{tour: tour, surface: surface}
}

// overlayColor 遮罩颜色
var overlayColor = color.RGBA{R: 0, G: 0, B: 0, A: config.OverlayAlpha}

// Draw 绘制遮罩层
// Idle 阶段不绘制任何内容
func (s *OverlayRenderSystem) Draw(screen *ebiten.Image) {
	phase := s.tour.Phase()
	if phase == components.TourPhaseIdle {
		return
	}

	vp := s.surface.Viewport()
	vw := float64(vp.Width)
	vh := float64(vp.Height)

	highlight := s.tour.Highlight()
	if phase != components.TourPhaseTour || highlight == nil {
		// 欢迎阶段或无高亮目标：整屏变暗
		ebitenutil.DrawRect(screen, 0, 0, vw, vh, overlayColor)
		return
	}

	// 文档坐标 -> 屏幕坐标
	top := highlight.Top - vp.ScrollY
	bottom := highlight.Bottom() - vp.ScrollY

	// 四条遮罩带，中间留出高亮镂空
	if top > 0 {
		ebitenutil.DrawRect(screen, 0, 0, vw, top, overlayColor)
	}
	if bottom < vh {
		ebitenutil.DrawRect(screen, 0, bottom, vw, vh-bottom, overlayColor)
	}
	if highlight.Left > 0 {
		ebitenutil.DrawRect(screen, 0, top, highlight.Left, highlight.Height, overlayColor)
	}
	if highlight.Right() < vw {
		ebitenutil.DrawRect(screen, highlight.Right(), top, vw-highlight.Right(), highlight.Height, overlayColor)
	}

	// 高亮边框（1px，让镂空区域更醒目）
	border := color.RGBA{R: 255, G: 255, B: 255, A: 220}
	ebitenutil.DrawRect(screen, highlight.Left, top, highlight.Width, 1, border)
	ebitenutil.DrawRect(screen, highlight.Left, bottom-1, highlight.Width, 1, border)
	ebitenutil.DrawRect(screen, highlight.Left, top, 1, highlight.Height, border)
	ebitenutil.DrawRect(screen, highlight.Right()-1, top, 1, highlight.Height, border)
}
