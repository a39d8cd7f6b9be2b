package components

// TourPhase 引导之旅的顶层阶段枚举
type TourPhase int

const (
	// TourPhaseIdle 静默状态（不渲染任何内容，初始状态或引导结束后）
	TourPhaseIdle TourPhase = iota

	// TourPhaseWelcome 显示欢迎对话框，等待用户选择开始或跳过
	TourPhaseWelcome

	// TourPhaseTour 正在逐步引导，StepIndex 指向当前步骤
	TourPhaseTour
)

// String 返回 TourPhase 的字符串表示
func (p TourPhase) String() string {
	switch p {
	case TourPhaseIdle:
		return "Idle"
	case TourPhaseWelcome:
		return "Welcome"
	case TourPhaseTour:
		return "Tour"
	default:
		return "Unknown"
	}
}

// TourComponent 引导之旅状态组件（纯数据，无方法）
//
// Story 21.1: 引导之旅状态机
//
// 设计目的:
//
//	存储引导之旅的顶层阶段和当前步骤索引。
//	该组件是本会话内引导状态的唯一权威来源；
//	持久化的进度（TourProgress）只是跨会话的尽力而为记忆。
//
// 生命周期:
//  1. TourSystem 构造时创建
//  2. 所有阶段转换逻辑在 TourSystem 中实现
//  3. 阶段回到 Idle 后组件保留（可通过 startImmediate 重播）
type TourComponent struct {
	// Phase 当前阶段（Idle/Welcome/Tour）
	Phase TourPhase

	// StepIndex 当前步骤索引（从 0 开始）
	// 仅在 Phase == TourPhaseTour 时有意义
	StepIndex int
}
