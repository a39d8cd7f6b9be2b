package components

// WelcomeDialogComponent 引导欢迎对话框组件（纯数据，无方法）
//
// Story 21.5: 角色品牌化的欢迎对话框
//
// 引导之旅的入口对话框：按角色组显示不同的欢迎语，
// 提供"开始导览"和"跳过"两个操作。
// 刻意保持简单，存在的意义是补全阶段机（welcome 阶段的呈现）。
type WelcomeDialogComponent struct {
	// IsVisible 对话框是否可见（Phase == TourPhaseWelcome 时为 true）
	IsVisible bool

	// UserName 当前用户的显示名（来自宿主应用的入参）
	UserName string

	// RoleLabel 角色组的展示标签，如 "Admin console" / "Instructor" / "Student"
	RoleLabel string
}

// RoleDisplayLabel 返回角色组的展示标签
// 与 GetStepsForRole 的分组规则保持一致：未识别的角色按教师端展示
func RoleDisplayLabel(role string) string {
	switch role {
	case "admin", "superadmin":
		return "Admin console"
	case "student":
		return "Student"
	default:
		return "Instructor"
	}
}
