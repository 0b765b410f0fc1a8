package model

import "testing"

func TestGetBenchmarkOverheadTiers(t *testing.T) {
	small := GetBenchmarkOverhead(5)
	if small.Size != "Small (1-10 employees)" {
		t.Fatalf("5 人应落入小规模档，实际 %q", small.Size)
	}
	if small.Technology["erpNetSuite"] != 0 {
		t.Fatalf("小规模档不应配置 ERP 预算")
	}

	medium := GetBenchmarkOverhead(11)
	if medium.Size != "Medium (11-50 employees)" {
		t.Fatalf("11 人应落入中规模档，实际 %q", medium.Size)
	}
	if medium.ProfessionalServices["accounting"] != 25000 {
		t.Fatalf("中规模档会计预算应为 25000，实际 %v", medium.ProfessionalServices["accounting"])
	}

	large := GetBenchmarkOverhead(51)
	if large.Size != "Large (51-125 employees)" {
		t.Fatalf("51 人应落入大规模档，实际 %q", large.Size)
	}
	if large.Insurance["healthInsurancePerEmployee"] != 14000 {
		t.Fatalf("大规模档人均医保应为 14000，实际 %v", large.Insurance["healthInsurancePerEmployee"])
	}

	// 档位边界
	if GetBenchmarkOverhead(10).Size != "Small (1-10 employees)" {
		t.Fatalf("10 人仍应落入小规模档")
	}
	if GetBenchmarkOverhead(50).Size != "Medium (11-50 employees)" {
		t.Fatalf("50 人仍应落入中规模档")
	}
}

func TestApplyBenchmarkOverhead(t *testing.T) {
	disabled := false
	loc := NewLocation(LocationConfig{
		CorporateStaff: []StaffInput{
			{Position: "Controller", Salary: 165000, Count: 8},
			// 选档按名册总容量计，停用条目也参与
			{Position: "Accounting Clerk", Salary: 30, Count: 4, Enabled: &disabled},
		},
	})
	loc.AddOverheadItem("insurance", "cyberLiability", 9000)
	loc.AddOverheadItem("technology", "portCommunity", 4800)
	officeSpaceBefore := loc.Overhead.OfficeSpace
	variableBefore := loc.Overhead.VariableCosts

	loc.ApplyBenchmarkOverhead()

	// 12 人 → 中规模档
	if loc.Overhead.Categories["professionalServices"]["accounting"] != 25000 {
		t.Fatalf("应整体替换为中规模档基准，实际 %v",
			loc.Overhead.Categories["professionalServices"])
	}
	if loc.Overhead.Categories["vehicleTransport"]["vehicleMaintenance"] != 12000 {
		t.Fatalf("车辆类目应整体替换")
	}

	// 保险/技术类目仅覆盖基准命名条目，用户自建条目保留
	if loc.Overhead.Categories["insurance"]["cyberLiability"] != 9000 {
		t.Fatalf("用户自建保险条目不应被清除")
	}
	if loc.Overhead.Categories["insurance"]["errorsOmissions"] != 50000 {
		t.Fatalf("基准命名的保险条目应被覆盖")
	}
	if loc.Overhead.Categories["technology"]["portCommunity"] != 4800 {
		t.Fatalf("用户自建技术条目不应被清除")
	}
	if loc.Overhead.Categories["technology"]["erpNetSuite"] != 50000 {
		t.Fatalf("中规模档 ERP 预算应为 50000")
	}
	// 全局假设不落到机构层
	if _, exists := loc.Overhead.Categories["insurance"]["healthInsurancePerEmployee"]; exists {
		t.Fatalf("人均医保属于全局假设，不应写入机构保险类目")
	}

	if loc.Overhead.OfficeSpace != officeSpaceBefore {
		t.Fatalf("基准覆盖不应改动办公场地")
	}
	if loc.Overhead.VariableCosts != variableBefore {
		t.Fatalf("基准覆盖不应改动变动成本")
	}
}
