package model

// StaffRoster 员工名册类型（企业职能 / 港口作业）
type StaffRoster string

const (
	RosterCorporate StaffRoster = "corporate" // 企业职能员工
	RosterPort      StaffRoster = "port"      // 港口作业员工
)

// StaffMember 单个岗位的员工条目（已规范化，所有字段均有值）
type StaffMember struct {
	Position      string  `json:"position"`      // 岗位名称（自由文本）
	Salary        float64 `json:"salary"`        // 年薪；小时工为时薪
	Count         int     `json:"count"`         // 该岗位人数
	IsHourly      bool    `json:"isHourly"`      // 是否按小时计薪
	AnnualHours   float64 `json:"annualHours"`   // 年工时（默认 2080）
	OvertimeHours float64 `json:"overtimeHours"` // 加班工时（按 1.5 倍计薪）
	BonusPercent  float64 `json:"bonusPercent"`  // 奖金比例（默认 10%）
	Enabled       bool    `json:"enabled"`       // 停用的岗位不计入任何汇总
}

// StaffInput 员工条目的部分输入（构造/导入时使用，缺省字段按默认值补全）
type StaffInput struct {
	Position      string   `json:"position"`
	Salary        float64  `json:"salary"`
	Count         int      `json:"count"`
	IsHourly      *bool    `json:"isHourly"`
	AnnualHours   float64  `json:"annualHours"`
	OvertimeHours float64  `json:"overtimeHours"`
	BonusPercent  *float64 `json:"bonusPercent"`
	Enabled       *bool    `json:"enabled"`
}

// NormalizeStaff 规范化员工条目
// 缺省数值按默认值补全；isHourly 未显式指定时按岗位关键词推断。
// 幂等：对已规范化的条目再次调用结果不变。
func NormalizeStaff(in StaffInput) StaffMember {
	position := in.Position
	if position == "" {
		position = "Unknown Position"
	}

	count := in.Count
	if count == 0 {
		count = 1
	}

	annualHours := in.AnnualHours
	if annualHours == 0 {
		annualHours = 2080
	}

	isHourly := IsHourlyPosition(position)
	if in.IsHourly != nil {
		isHourly = *in.IsHourly
	}

	return StaffMember{
		Position:      position,
		Salary:        in.Salary,
		Count:         count,
		IsHourly:      isHourly,
		AnnualHours:   annualHours,
		OvertimeHours: in.OvertimeHours,
		BonusPercent:  floatOr(in.BonusPercent, 10),
		Enabled:       boolOr(in.Enabled, true),
	}
}

// BasePay 年度基础薪酬（不含奖金、不乘人数）
func (s *StaffMember) BasePay() float64 {
	if s.IsHourly {
		regular := s.Salary * s.AnnualHours
		overtime := s.Salary * 1.5 * s.OvertimeHours
		return regular + overtime
	}
	return s.Salary
}

// TotalCost 岗位年度总薪酬（基础薪酬 + 奖金，乘以人数）
func (s *StaffMember) TotalCost() float64 {
	base := s.BasePay()
	return base * (1 + s.BonusPercent/100) * float64(s.Count)
}

// Input 转回部分输入形式（用于再次规范化）
func (s *StaffMember) Input() StaffInput {
	isHourly := s.IsHourly
	bonus := s.BonusPercent
	enabled := s.Enabled
	return StaffInput{
		Position:      s.Position,
		Salary:        s.Salary,
		Count:         s.Count,
		IsHourly:      &isHourly,
		AnnualHours:   s.AnnualHours,
		OvertimeHours: s.OvertimeHours,
		BonusPercent:  &bonus,
		Enabled:       &enabled,
	}
}

func floatOr(p *float64, def float64) float64 {
	if p != nil {
		return *p
	}
	return def
}

func boolOr(p *bool, def bool) bool {
	if p != nil {
		return *p
	}
	return def
}

func stringOr(s, def string) string {
	if s != "" {
		return s
	}
	return def
}
