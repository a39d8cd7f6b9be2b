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

// WelcomeRenderSystem 欢迎对话框渲染系统
//
// Story 21.5: 角色品牌化的欢迎对话框
//
// 居中的入口对话框：角色标签、用户名欢迎语和开始/跳过按钮。
// 刻意简单 —— 它只是阶段机 welcome 阶段的呈现。
type WelcomeRenderSystem struct {
	tour    *TourSystem
	surface session.Surface
}

// NewWelcomeRenderSystem 创建欢迎对话框渲染系统
func NewWelcomeRenderSystem(tour *TourSystem, surface session.Surface) *WelcomeRenderSystem {
	return &WelcomeRenderSystem{tour: tour, surface: surface}
}

// Draw 绘制欢迎对话框
func (s *WelcomeRenderSystem) Draw(screen *ebiten.Image) {
	welcome := s.tour.Welcome()
	if s.tour.Phase() != components.TourPhaseWelcome || !welcome.IsVisible {
		return
	}

	layout := ComputeWelcomeLayout(s.surface.Viewport())
	box := layout.Box

	// 主体与边框
	ebitenutil.DrawRect(screen, box.X-1, box.Y-1, box.W+2, box.H+2, color.RGBA{R: 60, G: 60, B: 60, A: 255})
	ebitenutil.DrawRect(screen, box.X, box.Y, box.W, box.H, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	// 角色标签横条（角色品牌化：不同角色组的视觉入口）
	ebitenutil.DrawRect(screen, box.X, box.Y, box.W, 34, buttonFillColor)

	titleFace := tourFace(16)
	bodyFace := tourFace(13)
	if titleFace == nil || bodyFace == nil {
		return
	}

	drawTextAt(screen, welcome.RoleLabel, titleFace, box.X+config.TooltipPadding, box.Y+7, buttonTextColor)

	textX := box.X + config.TooltipPadding
	textY := box.Y + 34 + config.TooltipPadding
	drawTextAt(screen, fmt.Sprintf("Welcome, %s!", welcome.UserName), titleFace, textX, textY, color.RGBA{A: 255})
	textY += 30

	intro := "New here? Take a short guided tour of the portal. You can skip it and never see it again."
	for _, line := range wrapText(bodyFace, intro, box.W-config.TooltipPadding*2) {
		drawTextAt(screen, line, bodyFace, textX, textY, color.RGBA{R: 60, G: 60, B: 60, A: 255})
		textY += 18
	}

	// 按钮（欢迎框用视口坐标，无滚动偏移）
	s.drawWelcomeButton(screen, layout.StartBtn, "Start tour", buttonFillColor, buttonTextColor, bodyFace)
	s.drawWelcomeButton(screen, layout.SkipBtn, "Skip", color.RGBA{R: 255, G: 255, B: 255, A: 255}, buttonMutedColor, bodyFace)
}

// drawWelcomeButton 绘制欢迎框按钮（视口坐标）
func (s *WelcomeRenderSystem) drawWelcomeButton(screen *ebiten.Image, btn Rect, label string, fill, textColor color.Color, face *text.GoTextFace) {
	ebitenutil.DrawRect(screen, btn.X, btn.Y, btn.W, btn.H, fill)

	labelW, labelH := text.Measure(label, face, 0)
	drawTextAt(screen, label, face, btn.X+(btn.W-labelW)/2, btn.Y+(btn.H-labelH)/2, textColor)
}
