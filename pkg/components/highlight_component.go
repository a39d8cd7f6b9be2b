package components

// HighlightRect 高亮矩形（文档坐标系）
//
// Story 21.3: 覆盖层与提示框布局
//
// 从目标元素的可视包围盒向外扩展固定内边距后得到，
// 用于在遮罩层上挖出不变暗的镂空区域。
// 坐标为文档坐标（视口坐标 + 垂直滚动偏移），
// 步骤、视口尺寸或滚动偏移变化时都需要重新计算。
//
// 居中步骤（target 为空）或定位符无匹配时没有高亮矩形（nil）。
type HighlightRect struct {
	Top    float64 // 矩形上边缘（文档坐标）
	Left   float64 // 矩形左边缘（文档坐标）
	Width  float64 // 矩形宽度
	Height float64 // 矩形高度
}

// Bottom 返回矩形下边缘的文档坐标
func (r HighlightRect) Bottom() float64 {
	return r.Top + r.Height
}

// Right 返回矩形右边缘的文档坐标
func (r HighlightRect) Right() float64 {
	return r.Left + r.Width
}

// CenterX 返回矩形水平中心的文档坐标
func (r HighlightRect) CenterX() float64 {
	return r.Left + r.Width/2
}

// CenterY 返回矩形垂直中心的文档坐标
func (r HighlightRect) CenterY() float64 {
	return r.Top + r.Height/2
}
