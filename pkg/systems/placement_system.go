package systems

import (
	"github.com/decker502/portaltour/pkg/components"
	"github.com/decker502/portaltour/pkg/config"
	"github.com/decker502/portaltour/pkg/session"
)

// 提示框位置规划
//
// Story 21.3: 覆盖层与提示框布局
//
// 纯计算层：输入高亮矩形与首选位置，输出提示框的文档坐标位置和箭头边。
// 核心正确性约束：无论目标离视口边缘多近，
// 提示框都不得有任何部分渲染到视口之外（钳制到边距范围内）。

// PlanTooltip 计算提示框位置
//
// 参数：
//   - rect: 高亮矩形（文档坐标），nil 表示无高亮目标
//   - placement: 首选位置；未识别的取值按 bottom 处理
//   - vp: 当前视口快照
//
// 返回：
//   - TooltipPosition: 提示框左上角的文档坐标与箭头边
func PlanTooltip(rect *components.HighlightRect, placement config.Placement, vp session.Viewport) components.TooltipPosition {
	vw := float64(vp.Width)
	vh := float64(vp.Height)

	// 无高亮目标或显式居中：提示框在当前视口内水平垂直居中
	// （转换为文档坐标需要加上滚动偏移），无箭头
	if rect == nil || placement == config.PlacementCenter {
		return components.TooltipPosition{
			Top:       vp.ScrollY + (vh-config.TooltipHeightEstimate)/2,
			Left:      (vw - config.TooltipWidth) / 2,
			ArrowSide: components.ArrowSideNone,
		}
	}

	switch placement {
	case config.PlacementTop:
		return components.TooltipPosition{
			Top:       rect.Top - config.TooltipHeightEstimate - config.TooltipMargin,
			Left:      clampTooltipLeft(rect.CenterX(), vw),
			ArrowSide: components.ArrowSideBottom,
		}

	case config.PlacementRight:
		return components.TooltipPosition{
			Top:       clampTooltipTop(rect.CenterY(), vp.ScrollY, vh),
			Left:      rect.Right() + config.TooltipMargin,
			ArrowSide: components.ArrowSideLeft,
		}

	case config.PlacementLeft:
		return components.TooltipPosition{
			Top:       clampTooltipTop(rect.CenterY(), vp.ScrollY, vh),
			Left:      rect.Left - config.TooltipWidth - config.TooltipMargin,
			ArrowSide: components.ArrowSideRight,
		}

	default:
		// bottom，以及所有未识别的 placement 取值
		return components.TooltipPosition{
			Top:       rect.Bottom() + config.TooltipMargin,
			Left:      clampTooltipLeft(rect.CenterX(), vw),
			ArrowSide: components.ArrowSideTop,
		}
	}
}

// clampTooltipLeft 水平钳制：提示框左边缘不得越过
// [TooltipMargin, viewportWidth - TooltipWidth - TooltipMargin]
func clampTooltipLeft(centerX, viewportWidth float64) float64 {
	left := centerX - config.TooltipWidth/2
	minLeft := config.TooltipMargin
	maxLeft := viewportWidth - config.TooltipWidth - config.TooltipMargin
	if left < minLeft {
		return minLeft
	}
	if left > maxLeft {
		return maxLeft
	}
	return left
}

// clampTooltipTop 垂直钳制（left/right 位置使用）：
// 提示框上边缘不得越过视口内的
// [TooltipMargin, viewportHeight - TooltipHeightEstimate - TooltipMargin]
// 文档坐标下需要加上滚动偏移
func clampTooltipTop(centerY, scrollY, viewportHeight float64) float64 {
	top := centerY - config.TooltipHeightEstimate/2
	minTop := scrollY + config.TooltipMargin
	maxTop := scrollY + viewportHeight - config.TooltipHeightEstimate - config.TooltipMargin
	if top < minTop {
		return minTop
	}
	if top > maxTop {
		return maxTop
	}
	return top
}
