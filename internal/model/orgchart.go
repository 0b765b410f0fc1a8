package model

import "sort"

// OrgNode 组织架构图中的一个岗位节点
type OrgNode struct {
	Position string      `json:"position"`
	Count    int         `json:"count"`
	Salary   float64     `json:"salary"`
	Level    int         `json:"level"`
	Function string      `json:"function"`
	Type     StaffRoster `json:"type"` // corporate / port
}

// FunctionHeadcount 按职能汇总的人数
type FunctionHeadcount struct {
	Function  string `json:"function"`
	Headcount int    `json:"headcount"`
}

// OrgSummary 组织架构汇总
type OrgSummary struct {
	TotalPositions int                 `json:"totalPositions"`
	TotalHeadcount int                 `json:"totalHeadcount"`
	ByFunction     []FunctionHeadcount `json:"byFunction"`
}

// OrgChart 组织架构图数据
type OrgChart struct {
	Hierarchical []OrgNode            `json:"hierarchical"`
	Functional   map[string][]OrgNode `json:"functional"`
	Summary      OrgSummary           `json:"summary"`
}

// BuildOrgChart 由当前员工构成生成组织架构图
// 纯读取转换，不缓存；每次调用基于最新名册重算。
// 节点按（层级升序，同层级薪资降序）排列。
func (l *Location) BuildOrgChart() OrgChart {
	nodes := make([]OrgNode, 0, len(l.CorporateStaff)+len(l.PortStaff))

	appendStaff := func(staff []StaffMember, roster StaffRoster) {
		for _, s := range staff {
			level, function := ClassifyOrgPosition(s.Position)
			count := s.Count
			if count == 0 {
				count = 1
			}
			nodes = append(nodes, OrgNode{
				Position: s.Position,
				Count:    count,
				Salary:   s.Salary,
				Level:    level,
				Function: function,
				Type:     roster,
			})
		}
	}
	appendStaff(l.CorporateStaff, RosterCorporate)
	appendStaff(l.PortStaff, RosterPort)

	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].Level != nodes[j].Level {
			return nodes[i].Level < nodes[j].Level
		}
		return nodes[i].Salary > nodes[j].Salary
	})

	// 按职能分组，分组顺序为排序后节点中职能首次出现的顺序
	functional := make(map[string][]OrgNode)
	var functionOrder []string
	for _, n := range nodes {
		if _, seen := functional[n.Function]; !seen {
			functionOrder = append(functionOrder, n.Function)
		}
		functional[n.Function] = append(functional[n.Function], n)
	}

	totalHeadcount := 0
	for _, n := range nodes {
		totalHeadcount += n.Count
	}

	byFunction := make([]FunctionHeadcount, 0, len(functionOrder))
	for _, fn := range functionOrder {
		headcount := 0
		for _, n := range functional[fn] {
			headcount += n.Count
		}
		byFunction = append(byFunction, FunctionHeadcount{Function: fn, Headcount: headcount})
	}

	return OrgChart{
		Hierarchical: nodes,
		Functional:   functional,
		Summary: OrgSummary{
			TotalPositions: len(nodes),
			TotalHeadcount: totalHeadcount,
			ByFunction:     byFunction,
		},
	}
}
