package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/decker502/portaltour/pkg/embedded"
)

// TourStepsConfigPath 引导步骤配置文件路径（嵌入资源）
const TourStepsConfigPath = "assets/config/tour_steps.yaml"

// Placement 提示框相对于高亮目标的首选位置
type Placement string

const (
	PlacementTop    Placement = "top"
	PlacementBottom Placement = "bottom"
	PlacementLeft   Placement = "left"
	PlacementRight  Placement = "right"
	PlacementCenter Placement = "center"
)

// TourStep 单个引导步骤
//
// Story 21.2: 角色分组的引导步骤目录
//
// Target 为空字符串表示无高亮目标：该步骤强制居中展示，
// 忽略 Placement 的取值。
type TourStep struct {
	Target      string    `yaml:"target"`      // 目标定位符，如 "panel.attendance"；空表示居中步骤
	Title       string    `yaml:"title"`       // 提示框标题
	Description string    `yaml:"description"` // 提示框正文
	Placement   Placement `yaml:"placement"`   // 首选位置；未识别的取值按 bottom 处理
}

// StepCatalog 一个角色组的有序步骤列表
type StepCatalog struct {
	Role  string     // 目录所属角色组："admin" / "instructor" / "student"
	Steps []TourStep // 有序步骤，非空，首个步骤 Target 必须为空
}

// Len 返回目录中的步骤数量
func (c StepCatalog) Len() int {
	return len(c.Steps)
}

// tourStepsFile tour_steps.yaml 的文件结构
type tourStepsFile struct {
	Catalogs struct {
		Admin      []TourStep `yaml:"admin"`
		Instructor []TourStep `yaml:"instructor"`
		Student    []TourStep `yaml:"student"`
	} `yaml:"catalogs"`
}

// TourCatalogs 三个角色组的步骤目录集合
type TourCatalogs struct {
	admin      StepCatalog
	instructor StepCatalog
	student    StepCatalog
}

// LoadTourCatalogs 从嵌入的 yaml 配置加载引导步骤目录
//
// 返回：
//   - *TourCatalogs: 加载并验证通过的目录集合
//   - error: 文件读取、解析或验证失败
func LoadTourCatalogs() (*TourCatalogs, error) {
	data, err := embedded.ReadFile(TourStepsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tour steps config %s: %w", TourStepsConfigPath, err)
	}
	return ParseTourCatalogs(data)
}

// ParseTourCatalogs 解析并验证引导步骤配置
// 与 LoadTourCatalogs 分离，便于测试时直接传入 yaml 数据
func ParseTourCatalogs(data []byte) (*TourCatalogs, error) {
	var file tourStepsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse tour steps YAML: %w", err)
	}

	catalogs := &TourCatalogs{
		admin:      StepCatalog{Role: "admin", Steps: file.Catalogs.Admin},
		instructor: StepCatalog{Role: "instructor", Steps: file.Catalogs.Instructor},
		student:    StepCatalog{Role: "student", Steps: file.Catalogs.Student},
	}

	for _, catalog := range []StepCatalog{catalogs.admin, catalogs.instructor, catalogs.student} {
		if err := validateStepCatalog(catalog); err != nil {
			return nil, fmt.Errorf("invalid tour catalog %q: %w", catalog.Role, err)
		}
	}

	return catalogs, nil
}

// validateStepCatalog 验证单个步骤目录的完整性
//
// 约束：
//   - 目录非空
//   - 首个步骤 Target 为空（居中欢迎步骤，无高亮）
//   - 每个步骤必须有标题
//
// 注意：未识别的 placement 不在此处拒绝，由 PlacementPlanner 按 bottom 兜底
func validateStepCatalog(catalog StepCatalog) error {
	if len(catalog.Steps) == 0 {
		return fmt.Errorf("catalog must contain at least one step")
	}
	if catalog.Steps[0].Target != "" {
		return fmt.Errorf("first step must have an empty target (centered welcome step), got %q", catalog.Steps[0].Target)
	}
	for i, step := range catalog.Steps {
		if step.Title == "" {
			return fmt.Errorf("step %d: title is required", i)
		}
	}
	return nil
}

// GetStepsForRole 根据角色标签选择步骤目录
//
// 全函数：对任意输入字符串都返回一个有效目录，绝不失败。
// 映射规则：
//   - "admin" / "superadmin" -> 管理端目录
//   - "student"              -> 学生端目录
//   - 其他任何标签（含未识别的角色）-> 教师端目录
func (c *TourCatalogs) GetStepsForRole(role string) StepCatalog {
	switch role {
	case "admin", "superadmin":
		return c.admin
	case "student":
		return c.student
	default:
		return c.instructor
	}
}
