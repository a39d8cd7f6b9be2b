// Package scenes 提供演示用的宿主门户界面
//
// 引导引擎本身不关心宿主界面长什么样，只通过 session.Surface 访问。
// PortalScene 是一个最小的可滚动宿主表面：按角色布置若干可定位的
// 界面区域（导航条、考勤面板、任务看板等），供引导之旅高亮。
// 真实门户的 CRUD 面板不在本仓库范围内。
package scenes

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/decker502/portaltour/pkg/config"
	"github.com/decker502/portaltour/pkg/session"
)

// portalRegion 门户界面上一个可定位的区域
type portalRegion struct {
	Locator string          // 定位符，如 "panel.attendance"
	Label   string          // 展示标签
	Bounds  image.Rectangle // 文档坐标包围盒
	Fill    color.RGBA      // 填充色（演示用的色块）
}

// 滚轮每格的滚动距离（像素）
const wheelScrollStep = 40.0

// 滚动动画到达判定阈值（像素），与镜头动画的到达判定一致
const scrollArriveThreshold = 4.0

// PortalScene 演示门户场景，实现 session.Surface
//
// 滚动模型：内容高度大于视口高度，scrollY 在 [0, content-viewport]
// 内取值。平滑滚动把 scrollY 以固定速度移向目标值；
// 用户滚轮输入会立即中断进行中的动画。
type PortalScene struct {
	regions       []portalRegion
	viewportW     int
	viewportH     int
	contentHeight float64

	scrollY float64

	// 平滑滚动动画状态
	scrollTarget    float64
	scrollAnimating bool
}

// NewPortalScene 按角色创建演示门户场景
//
// 不同角色组看到的面板不同（管理端多出账号与安全面板），
// 这也让定位符失效的降级路径在真实界面差异下可见。
func NewPortalScene(role string, viewportW, viewportH int) *PortalScene {
	s := &PortalScene{
		viewportW: viewportW,
		viewportH: viewportH,
	}
	s.buildRegions(role)
	return s
}

// buildRegions 布置当前角色可见的界面区域
func (s *PortalScene) buildRegions(role string) {
	admin := role == "admin" || role == "superadmin"

	s.regions = []portalRegion{
		{Locator: "nav.dashboard", Label: "Dashboard", Bounds: image.Rect(20, 16, 220, 64), Fill: color.RGBA{R: 52, G: 120, B: 212, A: 255}},
		{Locator: "panel.attendance", Label: "Attendance", Bounds: image.Rect(20, 100, 480, 320), Fill: color.RGBA{R: 235, G: 240, B: 248, A: 255}},
	}

	if admin {
		s.regions = append(s.regions,
			portalRegion{Locator: "panel.accounts", Label: "Accounts", Bounds: image.Rect(520, 100, 960, 320), Fill: color.RGBA{R: 248, G: 238, B: 228, A: 255}},
			portalRegion{Locator: "panel.security", Label: "Security", Bounds: image.Rect(520, 360, 960, 560), Fill: color.RGBA{R: 240, G: 232, B: 244, A: 255}},
		)
	} else {
		s.regions = append(s.regions,
			portalRegion{Locator: "panel.tasks", Label: "Task board", Bounds: image.Rect(520, 100, 960, 420), Fill: color.RGBA{R: 232, G: 244, B: 234, A: 255}},
		)
	}

	// 版本历史面板在首屏之下，用于演示自动滚动
	s.regions = append(s.regions,
		portalRegion{Locator: "panel.versions", Label: "Version history", Bounds: image.Rect(20, 700, 960, 920), Fill: color.RGBA{R: 244, G: 244, B: 236, A: 255}},
	)

	s.contentHeight = 1000
}

// Update 每帧更新：处理滚轮输入并推进平滑滚动动画
func (s *PortalScene) Update(dt float64) {
	// 滚轮输入：立即滚动并中断进行中的动画
	_, wheelY := ebiten.Wheel()
	if wheelY != 0 {
		s.scrollAnimating = false
		s.setScroll(s.scrollY - wheelY*wheelScrollStep)
	}

	s.advanceScroll(dt)
}

// advanceScroll 推进平滑滚动动画一帧
func (s *PortalScene) advanceScroll(dt float64) {
	if !s.scrollAnimating {
		return
	}

	// 以固定速度移向目标，剩余距离不足一帧步长时直接落到目标
	// （步长大于到达阈值，靠阈值判定会在目标两侧来回越过）
	distance := s.scrollTarget - s.scrollY
	step := config.ScrollAnimationSpeed * dt
	if math.Abs(distance) <= step || math.Abs(distance) < scrollArriveThreshold {
		s.setScroll(s.scrollTarget)
		s.scrollAnimating = false
		return
	}

	direction := 1.0
	if distance < 0 {
		direction = -1.0
	}
	s.setScroll(s.scrollY + step*direction)
}

// setScroll 设置滚动偏移并钳制到合法范围
func (s *PortalScene) setScroll(y float64) {
	maxScroll := s.contentHeight - float64(s.viewportH)
	if maxScroll < 0 {
		maxScroll = 0
	}
	s.scrollY = math.Max(0, math.Min(maxScroll, y))
}

// Draw 绘制门户界面（区域色块 + 标签）
func (s *PortalScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 250, G: 250, B: 252, A: 255})

	for _, region := range s.regions {
		y := float64(region.Bounds.Min.Y) - s.scrollY
		ebitenutil.DrawRect(screen,
			float64(region.Bounds.Min.X), y,
			float64(region.Bounds.Dx()), float64(region.Bounds.Dy()),
			region.Fill)
		ebitenutil.DebugPrintAt(screen, region.Label, region.Bounds.Min.X+8, int(y)+8)
	}
}

// SetViewportSize 窗口尺寸变化时由 App.Layout 调用
func (s *PortalScene) SetViewportSize(w, h int) {
	if w == s.viewportW && h == s.viewportH {
		return
	}
	s.viewportW = w
	s.viewportH = h
	// 视口变矮后滚动偏移可能越界，重新钳制
	s.setScroll(s.scrollY)
}

// LocateRegion 实现 session.Surface
// 返回区域的视口坐标包围盒（文档坐标减去滚动偏移）
func (s *PortalScene) LocateRegion(locator string) (image.Rectangle, bool) {
	for _, region := range s.regions {
		if region.Locator == locator {
			offset := int(math.Round(s.scrollY))
			return region.Bounds.Sub(image.Pt(0, offset)), true
		}
	}
	return image.Rectangle{}, false
}

// Viewport 实现 session.Surface
func (s *PortalScene) Viewport() session.Viewport {
	return session.Viewport{
		Width:   s.viewportW,
		Height:  s.viewportH,
		ScrollY: s.scrollY,
	}
}

// SmoothScrollTo 实现 session.Surface
// 对同一目标的重复请求是幂等的：已在滚向该目标时不重置动画
func (s *PortalScene) SmoothScrollTo(y float64) {
	maxScroll := s.contentHeight - float64(s.viewportH)
	if maxScroll < 0 {
		maxScroll = 0
	}
	target := math.Max(0, math.Min(maxScroll, y))

	if s.scrollAnimating && math.Abs(s.scrollTarget-target) < scrollArriveThreshold {
		return
	}
	if math.Abs(s.scrollY-target) < scrollArriveThreshold {
		return
	}

	s.scrollTarget = target
	s.scrollAnimating = true
}

// IsScrolling 返回平滑滚动动画是否进行中
func (s *PortalScene) IsScrolling() bool {
	return s.scrollAnimating
}
