package components

import "image/color"

// ArrowSide 提示框指示箭头所在的边
// 即提示框上最靠近高亮目标的那条边；居中展示时没有箭头
type ArrowSide string

const (
	ArrowSideNone   ArrowSide = ""       // 居中展示，无箭头
	ArrowSideTop    ArrowSide = "top"    // 箭头在提示框上边（目标在上方）
	ArrowSideBottom ArrowSide = "bottom" // 箭头在提示框下边
	ArrowSideLeft   ArrowSide = "left"   // 箭头在提示框左边
	ArrowSideRight  ArrowSide = "right"  // 箭头在提示框右边
)

// TooltipPosition 提示框的计算位置（文档坐标系）
//
// Story 21.3: 覆盖层与提示框布局
//
// 由 PlacementPlanner 根据高亮矩形和首选位置计算得出。
// 钳制保证：提示框任何一边都不会渲染到视口之外。
type TooltipPosition struct {
	Top       float64   // 提示框上边缘（文档坐标）
	Left      float64   // 提示框左边缘（文档坐标）
	ArrowSide ArrowSide // 箭头所在边；ArrowSideNone 表示居中展示
}

// TourTooltipComponent 引导提示框组件（纯数据，无方法）
//
// 内容来自步骤目录，位置由 PlacementPlanner 计算，
// 并带有步骤进度（第 N 步 / 共 M 步）和导航按钮。
type TourTooltipComponent struct {
	// IsVisible 是否显示提示框
	IsVisible bool

	// 文本内容（来自当前 TourStep）
	Title       string // 标题
	Description string // 正文

	// StepNumber 当前步骤序号（从 1 开始，用于 "2 / 6" 进度显示）
	StepNumber int
	// StepCount 目录总步骤数
	StepCount int

	// Position 计算后的位置与箭头边
	Position TooltipPosition

	// 样式
	BackgroundColor color.Color // 背景色
	BorderColor     color.Color // 边框色
	TitleColor      color.Color // 标题颜色
	TextColor       color.Color // 正文颜色
}

// NewTourTooltipComponent 创建引导提示框组件
// 返回一个初始化好的 TourTooltipComponent，使用默认颜色
func NewTourTooltipComponent() *TourTooltipComponent {
	return &TourTooltipComponent{
		IsVisible:       false,
		BackgroundColor: color.RGBA{R: 255, G: 255, B: 255, A: 255}, // 白色
		BorderColor:     color.RGBA{R: 60, G: 60, B: 60, A: 255},    // 深灰
		TitleColor:      color.RGBA{R: 0, G: 0, B: 0, A: 255},       // 黑色
		TextColor:       color.RGBA{R: 60, G: 60, B: 60, A: 255},    // 深灰
	}
}
