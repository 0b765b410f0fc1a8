package model

import "testing"

func TestBuildOrgChart(t *testing.T) {
	loc := NewLocation(LocationConfig{
		CorporateStaff: []StaffInput{
			{Position: "Controller", Salary: 165000},
			{Position: "CEO / President", Salary: 350000},
			{Position: "CFO", Salary: 275000},
			{Position: "Executive Admin", Salary: 85000},
		},
		PortStaff: []StaffInput{
			{Position: "Ship Agent", Salary: 107500, Count: 4},
			{Position: "Port Ops Manager", Salary: 142500},
		},
	})

	chart := loc.BuildOrgChart()

	if chart.Summary.TotalPositions != 6 {
		t.Fatalf("岗位数应为 6，实际 %d", chart.Summary.TotalPositions)
	}
	if chart.Summary.TotalHeadcount != 9 {
		t.Fatalf("总人数应为 9，实际 %d", chart.Summary.TotalHeadcount)
	}

	// 层级升序排列：CEO(0) -> CFO(1) -> 2 级两人（薪资降序）-> 3 级 -> 5 级
	wantOrder := []string{
		"CEO / President",
		"CFO",
		"Controller",
		"Executive Admin",
		"Port Ops Manager",
		"Ship Agent",
	}
	for i, want := range wantOrder {
		if chart.Hierarchical[i].Position != want {
			t.Fatalf("第 %d 个节点应为 %q，实际 %q", i, want, chart.Hierarchical[i].Position)
		}
	}

	if chart.Hierarchical[0].Type != RosterCorporate {
		t.Fatalf("CEO 节点应标记为企业职能名册")
	}
	if chart.Hierarchical[5].Type != RosterPort {
		t.Fatalf("船代节点应标记为港口名册")
	}

	// 职能分组顺序 = 排序后首次出现顺序
	wantFunctions := []FunctionHeadcount{
		{Function: "Executive", Headcount: 2},
		{Function: "Finance", Headcount: 2},
		{Function: "Operations", Headcount: 5},
	}
	if len(chart.Summary.ByFunction) != len(wantFunctions) {
		t.Fatalf("职能分组数不符: %+v", chart.Summary.ByFunction)
	}
	for i, want := range wantFunctions {
		if chart.Summary.ByFunction[i] != want {
			t.Fatalf("职能分组 %d 应为 %+v，实际 %+v", i, want, chart.Summary.ByFunction[i])
		}
	}
	if len(chart.Functional["Operations"]) != 2 {
		t.Fatalf("Operations 分组应含 2 个岗位节点")
	}
}

func TestBuildOrgChartZeroCount(t *testing.T) {
	loc := NewLocation(LocationConfig{})
	loc.CorporateStaff = append(loc.CorporateStaff, StaffMember{
		Position: "Controller", Salary: 165000, Count: 0,
	})
	chart := loc.BuildOrgChart()
	if chart.Hierarchical[0].Count != 1 {
		t.Fatalf("人数为 0 的条目在架构图中按 1 统计，实际 %d", chart.Hierarchical[0].Count)
	}
	if chart.Summary.TotalHeadcount != 1 {
		t.Fatalf("总人数应为 1，实际 %d", chart.Summary.TotalHeadcount)
	}
}
