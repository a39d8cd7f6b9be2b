package systems

import (
	"testing"

	"github.com/decker502/portaltour/pkg/components"
	"github.com/decker502/portaltour/pkg/config"
	"github.com/decker502/portaltour/pkg/session"
)

// TestPlanTooltip_Center 测试无目标与显式居中步骤
func TestPlanTooltip_Center(t *testing.T) {
	vp := session.Viewport{Width: 800, Height: 600, ScrollY: 0}

	// 无高亮目标
	pos := PlanTooltip(nil, config.PlacementBottom, vp)
	wantLeft := (800.0 - config.TooltipWidth) / 2
	wantTop := (600.0 - config.TooltipHeightEstimate) / 2
	if pos.Left != wantLeft {
		t.Errorf("Expected centered left %.1f, got %.1f", wantLeft, pos.Left)
	}
	if pos.Top != wantTop {
		t.Errorf("Expected centered top %.1f, got %.1f", wantTop, pos.Top)
	}
	if pos.ArrowSide != components.ArrowSideNone {
		t.Errorf("Expected no arrow for centered tooltip, got %q", pos.ArrowSide)
	}

	// 显式居中覆盖高亮矩形
	rect := &components.HighlightRect{Top: 100, Left: 100, Width: 200, Height: 100}
	pos = PlanTooltip(rect, config.PlacementCenter, vp)
	if pos.Left != wantLeft || pos.ArrowSide != components.ArrowSideNone {
		t.Errorf("Explicit center should ignore rect, got left=%.1f arrow=%q", pos.Left, pos.ArrowSide)
	}

	// 滚动后的居中：文档坐标需要加上滚动偏移
	vp.ScrollY = 250
	pos = PlanTooltip(nil, config.PlacementCenter, vp)
	if pos.Top != 250+wantTop {
		t.Errorf("Expected scrolled centered top %.1f, got %.1f", 250+wantTop, pos.Top)
	}
}

// TestPlanTooltip_ClampNearCorner 测试视口角落目标的水平钳制
//
// 目标在视口坐标 (10,10)，尺寸 100x40，视口 800x600：
// 内边距扩展后矩形中心在 x=60，提示框理想左缘 60-160=-100，
// 必须钳回到左边距 16，且不得超出右边界。
func TestPlanTooltip_ClampNearCorner(t *testing.T) {
	vp := session.Viewport{Width: 800, Height: 600, ScrollY: 0}
	rect := &components.HighlightRect{
		Top:    10 - config.HighlightPadding,
		Left:   10 - config.HighlightPadding,
		Width:  100 + config.HighlightPadding*2,
		Height: 40 + config.HighlightPadding*2,
	}

	pos := PlanTooltip(rect, config.PlacementBottom, vp)

	if pos.Left != config.TooltipMargin {
		t.Errorf("Expected left clamped to margin %.1f, got %.1f", config.TooltipMargin, pos.Left)
	}
	if pos.Left+config.TooltipWidth > float64(vp.Width)-config.TooltipMargin {
		t.Errorf("Tooltip right edge %.1f exceeds viewport bound", pos.Left+config.TooltipWidth)
	}
	if pos.ArrowSide != components.ArrowSideTop {
		t.Errorf("Expected arrow side top for bottom placement, got %q", pos.ArrowSide)
	}
	if wantTop := rect.Bottom() + config.TooltipMargin; pos.Top != wantTop {
		t.Errorf("Expected top %.1f, got %.1f", wantTop, pos.Top)
	}
}

// TestPlanTooltip_Placements 测试各朝向的位置与箭头边
func TestPlanTooltip_Placements(t *testing.T) {
	vp := session.Viewport{Width: 800, Height: 600, ScrollY: 0}
	// 视口中央附近的目标，不触发任何钳制
	rect := &components.HighlightRect{Top: 250, Left: 350, Width: 100, Height: 60}

	tests := []struct {
		name      string
		placement config.Placement
		wantTop   float64
		wantLeft  float64
		wantArrow components.ArrowSide
	}{
		{
			name:      "top",
			placement: config.PlacementTop,
			wantTop:   250 - config.TooltipHeightEstimate - config.TooltipMargin,
			wantLeft:  400 - config.TooltipWidth/2,
			wantArrow: components.ArrowSideBottom,
		},
		{
			name:      "bottom",
			placement: config.PlacementBottom,
			wantTop:   310 + config.TooltipMargin,
			wantLeft:  400 - config.TooltipWidth/2,
			wantArrow: components.ArrowSideTop,
		},
		{
			name:      "right",
			placement: config.PlacementRight,
			wantTop:   280 - config.TooltipHeightEstimate/2,
			wantLeft:  450 + config.TooltipMargin,
			wantArrow: components.ArrowSideLeft,
		},
		{
			name:      "left",
			placement: config.PlacementLeft,
			wantTop:   280 - config.TooltipHeightEstimate/2,
			wantLeft:  350 - config.TooltipWidth - config.TooltipMargin,
			wantArrow: components.ArrowSideRight,
		},
		{
			name:      "未识别的取值按bottom处理",
			placement: config.Placement("diagonal"),
			wantTop:   310 + config.TooltipMargin,
			wantLeft:  400 - config.TooltipWidth/2,
			wantArrow: components.ArrowSideTop,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := PlanTooltip(rect, tt.placement, vp)
			if pos.Top != tt.wantTop {
				t.Errorf("Top = %.1f, want %.1f", pos.Top, tt.wantTop)
			}
			if pos.Left != tt.wantLeft {
				t.Errorf("Left = %.1f, want %.1f", pos.Left, tt.wantLeft)
			}
			if pos.ArrowSide != tt.wantArrow {
				t.Errorf("ArrowSide = %q, want %q", pos.ArrowSide, tt.wantArrow)
			}
		})
	}
}

// TestPlanTooltip_ClampBounds 测试钳制约束对边缘目标全部成立
//
// 核心约束：top/bottom 朝向下水平方向、left/right 朝向下垂直方向，
// 提示框都不得超出视口边距范围。
func TestPlanTooltip_ClampBounds(t *testing.T) {
	vp := session.Viewport{Width: 800, Height: 600, ScrollY: 300}

	rects := []*components.HighlightRect{
		{Top: 300, Left: 0, Width: 40, Height: 40},    // 贴左缘
		{Top: 300, Left: 760, Width: 40, Height: 40},  // 贴右缘
		{Top: 300, Left: 380, Width: 40, Height: 40},  // 贴上缘
		{Top: 860, Left: 380, Width: 40, Height: 40},  // 贴下缘
		{Top: 305, Left: 5, Width: 20, Height: 20},    // 左上角
		{Top: 870, Left: 770, Width: 25, Height: 25},  // 右下角
		{Top: 550, Left: 350, Width: 100, Height: 60}, // 视口中央
	}

	minLeft := config.TooltipMargin
	maxLeft := float64(vp.Width) - config.TooltipWidth - config.TooltipMargin
	minTop := vp.ScrollY + config.TooltipMargin
	maxTop := vp.ScrollY + float64(vp.Height) - config.TooltipHeightEstimate - config.TooltipMargin

	for _, rect := range rects {
		for _, placement := range []config.Placement{config.PlacementTop, config.PlacementBottom} {
			pos := PlanTooltip(rect, placement, vp)
			if pos.Left < minLeft || pos.Left > maxLeft {
				t.Errorf("placement %q rect %+v: left %.1f outside [%.1f, %.1f]",
					placement, *rect, pos.Left, minLeft, maxLeft)
			}
		}
		for _, placement := range []config.Placement{config.PlacementLeft, config.PlacementRight} {
			pos := PlanTooltip(rect, placement, vp)
			if pos.Top < minTop || pos.Top > maxTop {
				t.Errorf("placement %q rect %+v: top %.1f outside [%.1f, %.1f]",
					placement, *rect, pos.Top, minTop, maxTop)
			}
		}
	}
}
