package model

import "strings"

// 岗位名称分类规则
//
// 所有分类均为大小写不敏感的子串匹配，按声明顺序优先匹配（先命中者生效）。
// 关键词表是对外契约的一部分，不做任何"更聪明"的语义匹配。

// hourlyPositions 默认按小时计薪的岗位关键词
var hourlyPositions = []string{
	"boarding agent",
	"runner",
	"ops admin clerk",
	"accounting clerk",
	"document clerk",
	"hr clerk",
}

// IsHourlyPosition 判断岗位是否默认按小时计薪
func IsHourlyPosition(position string) bool {
	p := strings.ToLower(position)
	for _, kw := range hourlyPositions {
		if strings.Contains(p, kw) {
			return true
		}
	}
	return false
}

// OfficeRole 办公面积分类
type OfficeRole int

const (
	OfficeRoleStaff     OfficeRole = iota // 普通员工：75 sqft/人
	OfficeRoleManager                     // 经理层：100 sqft/人
	OfficeRoleExecutive                   // 高管层：150 sqft/人
)

// SqftPerPerson 该分类的人均办公面积
func (r OfficeRole) SqftPerPerson() float64 {
	switch r {
	case OfficeRoleExecutive:
		return 150
	case OfficeRoleManager:
		return 100
	default:
		return 75
	}
}

var executiveKeywords = []string{"ceo", "president", "cfo", "vp"}
var managerKeywords = []string{"manager", "controller", "supervisor"}

// ClassifyCorporateOfficeRole 企业职能岗位的办公面积分类
// 优先级：高管关键词 > 经理关键词 > 普通员工。
func ClassifyCorporateOfficeRole(position string) OfficeRole {
	p := strings.ToLower(position)
	for _, kw := range executiveKeywords {
		if strings.Contains(p, kw) {
			return OfficeRoleExecutive
		}
	}
	for _, kw := range managerKeywords {
		if strings.Contains(p, kw) {
			return OfficeRoleManager
		}
	}
	return OfficeRoleStaff
}

// ClassifyPortOfficeRole 港口作业岗位的办公面积分类
// 港口侧只区分经理/普通员工。
func ClassifyPortOfficeRole(position string) OfficeRole {
	if strings.Contains(strings.ToLower(position), "manager") {
		return OfficeRoleManager
	}
	return OfficeRoleStaff
}

// AgentRole 港口工作量模型中的角色分类
type AgentRole int

const (
	AgentRoleOther         AgentRole = iota // 不计入产能
	AgentRoleShipAgent                      // 船代：100% 产能
	AgentRoleOpsManager                     // 作业经理：50% 产能（管理职责占用）
	AgentRoleBoardingAgent                  // 登轮员/跑腿员：仅计人数，不计产能
)

// CapacityFactor 该角色的单人产能系数
func (r AgentRole) CapacityFactor() float64 {
	switch r {
	case AgentRoleShipAgent:
		return 1.0
	case AgentRoleOpsManager:
		return 0.50
	default:
		return 0
	}
}

// ClassifyAgentRole 工作量分析的角色分类
// 检查顺序：船代 -> 作业经理 -> 登轮员/跑腿员，每个岗位条目至多命中一类。
func ClassifyAgentRole(position string) AgentRole {
	p := strings.ToLower(position)
	if strings.Contains(p, "ship agent") {
		return AgentRoleShipAgent
	}
	if strings.Contains(p, "port ops manager") || strings.Contains(p, "asst ops manager") {
		return AgentRoleOpsManager
	}
	if strings.Contains(p, "boarding agent") || strings.Contains(p, "runner") {
		return AgentRoleBoardingAgent
	}
	return AgentRoleOther
}

// orgRule 组织架构图分类规则
type orgRule struct {
	keywords []string
	level    int
	function string
}

// orgRules 按优先级排列的组织架构分类规则表
var orgRules = []orgRule{
	{[]string{"ceo", "president"}, 0, "Executive"},
	{[]string{"cfo"}, 1, "Finance"},
	{[]string{"vp ops", "vp operations"}, 1, "Operations"},
	{[]string{"vp commercial", "vp sales"}, 1, "Commercial"},
	{[]string{"controller"}, 2, "Finance"},
	{[]string{"regional manager"}, 2, "Operations"},
	{[]string{"commercial manager", "marketing manager"}, 2, "Commercial"},
	{[]string{"hr manager"}, 2, "HR"},
	{[]string{"it manager"}, 2, "IT"},
	{[]string{"accounting manager"}, 2, "Finance"},
	{[]string{"documentation manager"}, 2, "Operations"},
	{[]string{"port ops manager"}, 3, "Operations"},
	{[]string{"asst ops manager"}, 4, "Operations"},
	{[]string{"accounting supervisor"}, 3, "Finance"},
	{[]string{"ship agent"}, 5, "Operations"},
	{[]string{"boarding agent", "runner"}, 6, "Operations"},
	{[]string{"accounting clerk"}, 4, "Finance"},
	{[]string{"document clerk"}, 4, "Operations"},
	{[]string{"ops admin clerk"}, 6, "Operations"},
	{[]string{"hr clerk", "payroll"}, 3, "HR"},
	{[]string{"desktop support"}, 3, "IT"},
	{[]string{"executive admin"}, 2, "Executive"},
}

// ClassifyOrgPosition 组织架构图分类：返回层级(0-6)与职能
// 未命中任何规则时归入 Operations 层级 5。
func ClassifyOrgPosition(position string) (level int, function string) {
	p := strings.ToLower(position)
	for _, rule := range orgRules {
		for _, kw := range rule.keywords {
			if strings.Contains(p, kw) {
				return rule.level, rule.function
			}
		}
	}
	return 5, "Operations"
}
