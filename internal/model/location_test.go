package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNewLocationDefaults(t *testing.T) {
	loc := NewLocation(LocationConfig{})
	if loc.ID == "" {
		t.Fatalf("新机构应分配 id")
	}
	if loc.Name != "New Location" {
		t.Fatalf("默认名称应为 New Location，实际 %q", loc.Name)
	}
	if loc.Type != LocationPortOffice {
		t.Fatalf("默认类型应为 port-office，实际 %q", loc.Type)
	}
	if !loc.Active {
		t.Fatalf("新机构默认应启用")
	}
	if !loc.Revenue.Husbandry.Enabled || loc.Revenue.Husbandry.MarginPercent != 9 {
		t.Fatalf("船舶服务费默认应启用且比例 9%%，实际 %+v", loc.Revenue.Husbandry)
	}
	if !loc.Revenue.Commission.Enabled || loc.Revenue.Commission.MarginPercent != 1.5 {
		t.Fatalf("佣金默认应启用且比例 1.5%%，实际 %+v", loc.Revenue.Commission)
	}
	if loc.Overhead.OfficeSpace.Sqft != 2500 || loc.Overhead.OfficeSpace.RentClass != RentClassB ||
		loc.Overhead.OfficeSpace.CostPerSqft != 20 {
		t.Fatalf("办公场地默认值不符: %+v", loc.Overhead.OfficeSpace)
	}
	// 25 英里 × 公司轿车 0.55/英里
	if loc.Overhead.VariableCosts.CostPerCall != 13.75 {
		t.Fatalf("单航次变动成本应在构造时补算为 13.75，实际 %v", loc.Overhead.VariableCosts.CostPerCall)
	}
	if len(loc.Overhead.Categories) == 0 {
		t.Fatalf("缺省配置应带默认管理费用类目")
	}
	if loc.Overhead.Categories["insurance"]["errorsOmissions"] != 50000 {
		t.Fatalf("默认保险类目金额不符")
	}
}

func TestUpdateVariableCostPerCall(t *testing.T) {
	loc := NewLocation(LocationConfig{})
	loc.Overhead.VariableCosts.MilesPerCall = 40
	loc.Overhead.VariableCosts.VehicleType = VehicleCompanySUV
	loc.UpdateVariableCostPerCall()
	if got := loc.Overhead.VariableCosts.CostPerCall; got != 30 {
		t.Fatalf("40 英里 × 0.75 应为 30，实际 %v", got)
	}

	loc.Overhead.VariableCosts.VehicleType = "horse-drawn-carriage"
	loc.UpdateVariableCostPerCall()
	// 未知车型按 IRS 标准里程费率
	if got := loc.Overhead.VariableCosts.CostPerCall; got != 40*0.67 {
		t.Fatalf("未知车型应按 0.67/英里，实际 %v", got)
	}
}

func TestCalculateRecommendedSqft(t *testing.T) {
	loc := NewLocation(LocationConfig{
		CorporateStaff: []StaffInput{
			{Position: "CEO / President", Count: 1},    // 150
			{Position: "Accounting Manager", Count: 1}, // 100
			{Position: "Accounting Clerk", Count: 2},   // 150
		},
		PortStaff: []StaffInput{
			{Position: "Port Ops Manager", Count: 1}, // 100
			{Position: "Ship Agent", Count: 4},       // 300
		},
	})
	rec := loc.CalculateRecommendedSqft()
	if rec.WorkspaceSqft != 800 {
		t.Fatalf("工位面积应为 800，实际 %d", rec.WorkspaceSqft)
	}
	if rec.CommonAreaSqft != 320 {
		t.Fatalf("公共区域应为工位面积的 40%% = 320，实际 %d", rec.CommonAreaSqft)
	}
	if rec.TotalSqft != 1120 {
		t.Fatalf("推荐总面积应为 1120，实际 %d", rec.TotalSqft)
	}
	if rec.EmployeeCount != 9 {
		t.Fatalf("人数应为 9，实际 %d", rec.EmployeeCount)
	}

	loc.AutoScaleOfficeSqft()
	if loc.Overhead.OfficeSpace.Sqft != 1120 {
		t.Fatalf("AutoScaleOfficeSqft 应写入推荐总面积，实际 %v", loc.Overhead.OfficeSpace.Sqft)
	}
}

func TestRentRanges(t *testing.T) {
	loc := NewLocation(LocationConfig{})
	r := loc.GetTypicalRentPerSqft(RentClassA)
	if r.Min != 30 || r.Typical != 40 || r.Max != 50 {
		t.Fatalf("甲级租金区间不符: %+v", r)
	}
	// 空参数取机构当前等级（默认乙级）
	r = loc.GetTypicalRentPerSqft("")
	if r.Typical != 20 {
		t.Fatalf("默认等级典型租金应为 20，实际 %v", r.Typical)
	}

	loc.Overhead.OfficeSpace.CostPerSqft = 99
	loc.UpdateRentPerSqft()
	if loc.Overhead.OfficeSpace.CostPerSqft != 20 {
		t.Fatalf("UpdateRentPerSqft 应以典型值覆盖手工输入，实际 %v", loc.Overhead.OfficeSpace.CostPerSqft)
	}
}

func TestStaffRosterOps(t *testing.T) {
	loc := NewLocation(LocationConfig{})
	loc.AddStaff(RosterCorporate, StaffInput{Position: "Controller", Salary: 165000})
	loc.AddStaff(RosterPort, StaffInput{Position: "Ship Agent", Salary: 107500, Count: 3})
	disabled := false
	loc.AddStaff(RosterPort, StaffInput{Position: "Boarding Agent / Runner", Salary: 25, Count: 2, Enabled: &disabled})

	if loc.GetTotalEmployeeCount() != 4 {
		t.Fatalf("停用条目不应计入总人数，期望 4，实际 %d", loc.GetTotalEmployeeCount())
	}

	loc.RemoveStaff(RosterPort, 0)
	if len(loc.PortStaff) != 1 || loc.PortStaff[0].Position != "Boarding Agent / Runner" {
		t.Fatalf("移除后名册不符: %+v", loc.PortStaff)
	}

	// 越界下标不产生任何效果
	loc.RemoveStaff(RosterPort, 5)
	loc.RemoveStaff(RosterCorporate, -1)
	if len(loc.PortStaff) != 1 || len(loc.CorporateStaff) != 1 {
		t.Fatalf("越界移除不应改变名册")
	}
}

func TestOverheadCategoryOps(t *testing.T) {
	loc := NewLocation(LocationConfig{})

	if loc.AddOverheadCategory("officeSpace", "Office Space") {
		t.Fatalf("不能新增受保护类目")
	}
	if loc.AddOverheadCategory("insurance", "Insurance") {
		t.Fatalf("不能重复新增已有类目")
	}
	if !loc.AddOverheadCategory("marketing", "Marketing") {
		t.Fatalf("新增动态类目应成功")
	}
	if !loc.AddOverheadItem("marketing", "tradeShows", 20000) {
		t.Fatalf("向新类目添加条目应成功")
	}
	if loc.Overhead.Categories["marketing"]["tradeShows"] != 20000 {
		t.Fatalf("条目金额未写入")
	}
	if !loc.UpdateOverheadItem("marketing", "tradeShows", 25000) {
		t.Fatalf("更新条目应成功")
	}
	if loc.Overhead.Categories["marketing"].Total() != 25000 {
		t.Fatalf("类目合计不符: %v", loc.Overhead.Categories["marketing"].Total())
	}
	if !loc.RemoveOverheadItem("marketing", "tradeShows") {
		t.Fatalf("删除条目应成功")
	}
	if loc.AddOverheadItem("variableCosts", "fuel", 100) {
		t.Fatalf("受保护类目不接受通用条目操作")
	}
	if loc.AddOverheadItem("noSuchCategory", "x", 1) {
		t.Fatalf("不存在的类目应返回 false")
	}
	if loc.RemoveOverheadCategory("officeSpace") {
		t.Fatalf("不能删除受保护类目")
	}
	if !loc.RemoveOverheadCategory("marketing") {
		t.Fatalf("删除动态类目应成功")
	}
	if _, exists := loc.Overhead.Categories["marketing"]; exists {
		t.Fatalf("类目删除后不应残留")
	}
}

func TestShipTypeOps(t *testing.T) {
	loc := NewLocation(LocationConfig{})
	loc.AddShipType("Container", 120, 500, 5000)
	loc.AddShipType("Grain", 40, 12000, 135000)
	loc.Revenue.ShipTypes = append(loc.Revenue.ShipTypes, ShipTypeRevenueLine{
		Type: "Coal", Calls: 99, FeePerCall: 9800, Enabled: false,
	})

	if loc.GetTotalCalls() != 160 {
		t.Fatalf("停用船型不计入挂靠量，期望 160，实际 %d", loc.GetTotalCalls())
	}

	loc.RemoveShipType(0)
	if len(loc.Revenue.ShipTypes) != 2 || loc.Revenue.ShipTypes[0].Type != "Grain" {
		t.Fatalf("移除后船型列表不符: %+v", loc.Revenue.ShipTypes)
	}
	loc.RemoveShipType(10)
	if len(loc.Revenue.ShipTypes) != 2 {
		t.Fatalf("越界移除不应改变列表")
	}
}

func TestLocationClone(t *testing.T) {
	loc := NewLocation(LocationConfig{Name: "Houston HQ", Type: LocationHQ, State: "TX"})
	loc.AddStaff(RosterPort, StaffInput{Position: "Ship Agent", Salary: 107500})
	loc.AddShipType("Grain", 40, 12000, 135000)

	clone := loc.Clone()
	if clone.ID == loc.ID {
		t.Fatalf("副本应分配新 id")
	}
	if clone.Name != "Houston HQ (Copy)" {
		t.Fatalf("副本名称应追加 (Copy)，实际 %q", clone.Name)
	}
	if clone.Type != LocationHQ || clone.State != "TX" {
		t.Fatalf("副本应保留类型与州: %+v", clone)
	}

	// 修改副本不得影响原机构
	clone.PortStaff[0].Salary = 1
	clone.Revenue.ShipTypes[0].Calls = 999
	clone.Overhead.Categories["insurance"]["longshoremen"] = 1
	if loc.PortStaff[0].Salary != 107500 {
		t.Fatalf("副本员工修改泄漏到原机构")
	}
	if loc.Revenue.ShipTypes[0].Calls != 40 {
		t.Fatalf("副本船型修改泄漏到原机构")
	}
	if loc.Overhead.Categories["insurance"]["longshoremen"] != 25000 {
		t.Fatalf("副本管理费用修改泄漏到原机构")
	}
}

func TestLocationJSONRoundTrip(t *testing.T) {
	loc := NewLocation(LocationConfig{Name: "Savannah", State: "GA"})
	loc.AddStaff(RosterPort, StaffInput{Position: "Ship Agent", Salary: 107500, Count: 2})
	loc.AddShipType("Container", 120, 500, 5000)
	loc.RemoveOverheadCategory("other")
	loc.UpdateOverheadItem("technology", "erpNetSuite", 50000)

	data, err := json.Marshal(loc)
	if err != nil {
		t.Fatalf("序列化机构: %v", err)
	}
	restored, err := LocationFromJSON(data)
	if err != nil {
		t.Fatalf("还原机构: %v", err)
	}

	if restored.ID != loc.ID {
		t.Fatalf("往返后 id 应不变: %q != %q", restored.ID, loc.ID)
	}
	if !reflect.DeepEqual(restored, loc) {
		t.Fatalf("往返后机构应逐字段相等\n原值: %+v\n还原: %+v", loc, restored)
	}
	// 删除过的类目不得在还原时被默认值复活
	if _, exists := restored.Overhead.Categories["other"]; exists {
		t.Fatalf("已删除的类目不应在往返后复活")
	}
}
