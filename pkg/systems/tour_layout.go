package systems

import (
	"github.com/decker502/portaltour/pkg/components"
	"github.com/decker502/portaltour/pkg/config"
	"github.com/decker502/portaltour/pkg/session"
)

// 覆盖层控件的布局计算
//
// 纯计算：渲染系统和输入系统共享同一份按钮矩形，
// 保证画出来的按钮和可点击区域永远一致。

// Rect 浮点矩形（布局与命中检测共用）
type Rect struct {
	X, Y, W, H float64
}

// Contains 判断点是否落在矩形内
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// 按钮尺寸常量
const (
	tourButtonWidth  = 76.0
	tourButtonHeight = 28.0
	tourButtonGap    = 8.0
)

// TooltipLayout 提示框的完整布局（文档坐标）
type TooltipLayout struct {
	Box     Rect // 提示框主体
	SkipBtn Rect // 跳过按钮（左下角）
	BackBtn Rect // 上一步按钮（右下角，Next 左侧）
	NextBtn Rect // 下一步/完成按钮（右下角）

	ShowBack bool // 第 0 步不显示上一步
	IsLast   bool // 最后一步时 NextBtn 的含义是"完成"
}

// ComputeTooltipLayout 根据提示框位置计算主体与按钮矩形
func ComputeTooltipLayout(tooltip *components.TourTooltipComponent) TooltipLayout {
	box := Rect{
		X: tooltip.Position.Left,
		Y: tooltip.Position.Top,
		W: config.TooltipWidth,
		H: config.TooltipHeightEstimate,
	}

	bottomY := box.Y + box.H - config.TooltipPadding - tourButtonHeight

	layout := TooltipLayout{
		Box:      box,
		ShowBack: tooltip.StepNumber > 1,
		IsLast:   tooltip.StepNumber == tooltip.StepCount,
	}

	layout.NextBtn = Rect{
		X: box.X + box.W - config.TooltipPadding - tourButtonWidth,
		Y: bottomY,
		W: tourButtonWidth,
		H: tourButtonHeight,
	}
	layout.BackBtn = Rect{
		X: layout.NextBtn.X - tourButtonGap - tourButtonWidth,
		Y: bottomY,
		W: tourButtonWidth,
		H: tourButtonHeight,
	}
	layout.SkipBtn = Rect{
		X: box.X + config.TooltipPadding,
		Y: bottomY,
		W: tourButtonWidth,
		H: tourButtonHeight,
	}
	return layout
}

// 欢迎对话框尺寸常量
const (
	welcomeDialogWidth  = 400.0
	welcomeDialogHeight = 230.0
)

// WelcomeLayout 欢迎对话框的布局（视口坐标，对话框不随滚动移动）
type WelcomeLayout struct {
	Box      Rect // 对话框主体
	StartBtn Rect // 开始导览
	SkipBtn  Rect // 跳过
}

// ComputeWelcomeLayout 在当前视口内居中欢迎对话框
func ComputeWelcomeLayout(vp session.Viewport) WelcomeLayout {
	box := Rect{
		X: (float64(vp.Width) - welcomeDialogWidth) / 2,
		Y: (float64(vp.Height) - welcomeDialogHeight) / 2,
		W: welcomeDialogWidth,
		H: welcomeDialogHeight,
	}

	bottomY := box.Y + box.H - config.TooltipPadding - tourButtonHeight
	return WelcomeLayout{
		Box: box,
		StartBtn: Rect{
			X: box.X + box.W - config.TooltipPadding - tourButtonWidth*1.5,
			Y: bottomY,
			W: tourButtonWidth * 1.5,
			H: tourButtonHeight,
		},
		SkipBtn: Rect{
			X: box.X + config.TooltipPadding,
			Y: bottomY,
			W: tourButtonWidth,
			H: tourButtonHeight,
		},
	}
}
