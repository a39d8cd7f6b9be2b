package config

// 引导覆盖层的布局常量
// 包括提示框尺寸、边距、高亮内边距和自动滚动参数
//
// Story 21.3: 覆盖层与提示框布局

const (
	// TooltipWidth 提示框固定宽度（像素）
	TooltipWidth = 320.0

	// TooltipHeightEstimate 提示框高度估计值（像素）
	// 真实高度取决于正文排版后的行数，布局前无法得知；
	// top 位置的垂直偏移因此存在可接受的视觉误差
	TooltipHeightEstimate = 170.0

	// TooltipMargin 提示框与高亮目标、视口边缘之间的最小间距（像素）
	// 位置钳制的核心常量：提示框任何一边都不得越过
	// [TooltipMargin, viewport - TooltipMargin] 的范围
	TooltipMargin = 16.0

	// HighlightPadding 高亮矩形相对元素原始包围盒向外扩展的内边距（像素）
	HighlightPadding = 8.0
)

const (
	// ScrollEdgeMargin 视口上下边缘的"过近"判定带宽度（像素）
	// 高亮矩形进入该带内时触发自动滚动
	ScrollEdgeMargin = 80.0

	// ScrollRevealOffset 自动滚动后目标顶部距视口顶部的预留空间（像素）
	ScrollRevealOffset = 120.0

	// ScrollAnimationSpeed 平滑滚动速度（像素/秒）
	ScrollAnimationSpeed = 900.0
)

const (
	// OverlayAlpha 遮罩层不透明度（0-255）
	OverlayAlpha = 160

	// TooltipArrowSize 提示框指示箭头的边长（像素）
	TooltipArrowSize = 12.0

	// TooltipPadding 提示框内边距（像素）
	TooltipPadding = 14.0
)
