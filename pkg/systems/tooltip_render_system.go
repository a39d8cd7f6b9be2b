package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/portaltour/pkg/components"
	"github.com/decker502/portaltour/pkg/config"
	"github.com/decker502/portaltour/pkg/session"
)

// TooltipRenderSystem 引导提示框渲染系统
//
// Story 21.3: 覆盖层与提示框布局
//
// 渲染层只读取 PlacementPlanner 的输出，不做任何几何计算
// （纯计算层与渲染层分离，渲染内容：主体、边框、指示箭头、
// 标题、正文、步骤进度和导航按钮）。
type TooltipRenderSystem struct {
	tour    *TourSystem
	surface session.Surface
}

// NewTooltipRenderSystem 创建提示框渲染系统
func NewTooltipRenderSystem(tour *TourSystem, surface session.Surface) *TooltipRenderSystem {
	return &TooltipRenderSystem{tour: tour, surface: surface}
}

// 按钮颜色
var (
	buttonFillColor   = color.RGBA{R: 36, G: 104, B: 200, A: 255}
	buttonTextColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	buttonMutedColor  = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	stepCounterColor  = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	arrowNotchPadding = 2.0
)

// Draw 绘制提示框
func (s *TooltipRenderSystem) Draw(screen *ebiten.Image) {
	tooltip := s.tour.Tooltip()
	if s.tour.Phase() != components.TourPhaseTour || !tooltip.IsVisible {
		return
	}

	scrollY := s.surface.Viewport().ScrollY
	layout := ComputeTooltipLayout(tooltip)

	// 文档坐标 -> 屏幕坐标
	box := layout.Box
	box.Y -= scrollY

	// 主体与边框
	ebitenutil.DrawRect(screen, box.X-1, box.Y-1, box.W+2, box.H+2, tooltip.BorderColor)
	ebitenutil.DrawRect(screen, box.X, box.Y, box.W, box.H, tooltip.BackgroundColor)

	s.drawArrow(screen, tooltip, box)

	titleFace := tourFace(16)
	bodyFace := tourFace(13)
	if titleFace == nil || bodyFace == nil {
		return
	}

	textX := box.X + config.TooltipPadding
	textY := box.Y + config.TooltipPadding

	// 标题
	drawTextAt(screen, tooltip.Title, titleFace, textX, textY, tooltip.TitleColor)
	textY += 26

	// 正文（按提示框内宽折行）
	maxWidth := box.W - config.TooltipPadding*2
	for _, line := range wrapText(bodyFace, tooltip.Description, maxWidth) {
		drawTextAt(screen, line, bodyFace, textX, textY, tooltip.TextColor)
		textY += 18
	}

	// 步骤进度 "2 / 6"（按钮行上方）
	counter := fmt.Sprintf("%d / %d", tooltip.StepNumber, tooltip.StepCount)
	counterW, _ := text.Measure(counter, bodyFace, 0)
	drawTextAt(screen, counter, bodyFace,
		box.X+box.W-config.TooltipPadding-counterW,
		layout.NextBtn.Y-scrollY-22, stepCounterColor)

	// 导航按钮
	nextLabel := "Next"
	if layout.IsLast {
		nextLabel = "Finish"
	}
	s.drawButton(screen, layout.NextBtn, scrollY, nextLabel, buttonFillColor, buttonTextColor, bodyFace)
	if layout.ShowBack {
		s.drawButton(screen, layout.BackBtn, scrollY, "Back", color.RGBA{R: 230, G: 230, B: 230, A: 255}, tooltip.TitleColor, bodyFace)
	}
	s.drawButton(screen, layout.SkipBtn, scrollY, "Skip", tooltip.BackgroundColor, buttonMutedColor, bodyFace)
}

// drawArrow 在提示框最靠近目标的边上绘制指示箭头
// 用小方块缺口代替三角形（项目统一用 ebitenutil.DrawRect 绘制纯色图元）
func (s *TooltipRenderSystem) drawArrow(screen *ebiten.Image, tooltip *components.TourTooltipComponent, box Rect) {
	size := config.TooltipArrowSize
	half := size / 2

	switch tooltip.Position.ArrowSide {
	case components.ArrowSideTop:
		ebitenutil.DrawRect(screen, box.X+box.W/2-half, box.Y-half-arrowNotchPadding, size, size, tooltip.BorderColor)
	case components.ArrowSideBottom:
		ebitenutil.DrawRect(screen, box.X+box.W/2-half, box.Y+box.H-half+arrowNotchPadding, size, size, tooltip.BorderColor)
	case components.ArrowSideLeft:
		ebitenutil.DrawRect(screen, box.X-half-arrowNotchPadding, box.Y+box.H/2-half, size, size, tooltip.BorderColor)
	case components.ArrowSideRight:
		ebitenutil.DrawRect(screen, box.X+box.W-half+arrowNotchPadding, box.Y+box.H/2-half, size, size, tooltip.BorderColor)
	}
}

// drawButton 绘制一个按钮（文档坐标矩形 + 滚动偏移转换）
func (s *TooltipRenderSystem) drawButton(screen *ebiten.Image, btn Rect, scrollY float64, label string, fill, textColor color.Color, face *text.GoTextFace) {
	y := btn.Y - scrollY
	ebitenutil.DrawRect(screen, btn.X, y, btn.W, btn.H, fill)

	labelW, labelH := text.Measure(label, face, 0)
	drawTextAt(screen, label, face, btn.X+(btn.W-labelW)/2, y+(btn.H-labelH)/2, textColor)
}

// drawTextAt 在指定屏幕位置绘制单行文本
func drawTextAt(screen *ebiten.Image, content string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, content, face, op)
}
