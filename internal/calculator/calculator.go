// Package calculator 财务计算引擎：收入、成本与 KPI 公式
// 引擎本身无状态，所有函数都是纯计算，不修改传入的模型对象
// （ApplyAIReductions 除外，它返回新方案）。
package calculator

import (
	"sort"

	"shipagency/internal/model"
)

// RevenueResult 机构收入计算结果
type RevenueResult struct {
	BaseAgencyFees       float64 `json:"baseAgencyFees"`
	HusbandryRevenue     float64 `json:"husbandryRevenue"`
	CommissionRevenue    float64 `json:"commissionRevenue"`
	DocumentationRevenue float64 `json:"documentationRevenue"`
	Total                float64 `json:"total"`
	FundsFlow            float64 `json:"fundsFlow"` // 代垫资金流水，不计入收入
}

// CostsResult 机构成本计算结果
type CostsResult struct {
	CorporatePayroll       float64            `json:"corporatePayroll"`
	PortPayroll            float64            `json:"portPayroll"`
	TotalPayroll           float64            `json:"totalPayroll"`
	EmployeeCount          int                `json:"employeeCount"`
	CorporateEmployeeCount int                `json:"corporateEmployeeCount"`
	PortEmployeeCount      int                `json:"portEmployeeCount"`
	Retirement401k         float64            `json:"retirement401k"`
	HealthInsurance        float64            `json:"healthInsurance"`
	TotalBenefits          float64            `json:"totalBenefits"`
	CorporateBenefits      float64            `json:"corporateBenefits"`
	PortBenefits           float64            `json:"portBenefits"`
	OfficeSpaceCost        float64            `json:"officeSpaceCost"`
	CategoryCosts          map[string]float64 `json:"categoryCosts"` // 动态类目小计
	TotalOverhead          float64            `json:"totalOverhead"`
	VariableCostPerCall    float64            `json:"variableCostPerCall"`
	TotalVariableCosts     float64            `json:"totalVariableCosts"`
	DirectCosts            float64            `json:"directCosts"`
	CorporateOverhead      float64            `json:"corporateOverhead"`
	Total                  float64            `json:"total"`
}

// KPIs 单位经济指标
type KPIs struct {
	RevenuePerCall     float64 `json:"revenuePerCall"`
	TotalCostPerCall   float64 `json:"totalCostPerCall"`
	TotalDeltaPerCall  float64 `json:"totalDeltaPerCall"`
	DirectCostPerCall  float64 `json:"directCostPerCall"`
	DirectDeltaPerCall float64 `json:"directDeltaPerCall"` // 核心指标：毛收入 vs 港口直接成本
	EBITDA             float64 `json:"ebitda"`
	EBITDAMargin       float64 `json:"ebitdaMargin"`
	BreakEvenCalls     float64 `json:"breakEvenCalls"`
}

// LocationResult 单机构完整计算结果
type LocationResult struct {
	LocationID   string             `json:"locationId"`
	LocationName string             `json:"locationName"`
	LocationType model.LocationType `json:"locationType"`
	Revenue      RevenueResult      `json:"revenue"`
	Costs        CostsResult        `json:"costs"`
	TotalCalls   int                `json:"totalCalls"`
	KPIs
}

// CorporateIndirectBreakdown 企业级间接费用明细
type CorporateIndirectBreakdown struct {
	ExecutiveCompensation float64              `json:"executiveCompensation"`
	CorporateLegal        float64              `json:"corporateLegal"`
	CorporateAccounting   float64              `json:"corporateAccounting"`
	CorporateInsurance    float64              `json:"corporateInsurance"`
	CorporateTechnology   float64              `json:"corporateTechnology"`
	CustomTETotal         float64              `json:"customTETotal"`
	CustomTEItems         []model.CustomTEItem `json:"customTEItems"`
}

// ConsolidatedResult 方案级合并结果
type ConsolidatedResult struct {
	TotalRevenue               float64                    `json:"totalRevenue"`
	HusbandryRevenue           float64                    `json:"husbandryRevenue"`
	CommissionRevenue          float64                    `json:"commissionRevenue"`
	DocumentationRevenue       float64                    `json:"documentationRevenue"`
	TotalCosts                 float64                    `json:"totalCosts"`     // 含企业级间接费用
	LocationCosts              float64                    `json:"locationCosts"`  // 仅机构层面成本
	CorporateIndirectTotal     float64                    `json:"corporateIndirectTotal"`
	CorporateIndirectBreakdown CorporateIndirectBreakdown `json:"corporateIndirectBreakdown"`
	CorporatePayroll           float64                    `json:"corporatePayroll"`
	PortPayroll                float64                    `json:"portPayroll"`
	TotalBenefits              float64                    `json:"totalBenefits"`
	TotalOverhead              float64                    `json:"totalOverhead"`
	TotalVariableCosts         float64                    `json:"totalVariableCosts"`
	TotalDirectCosts           float64                    `json:"totalDirectCosts"`
	TotalCalls                 int                        `json:"totalCalls"`
	TotalEmployees             int                        `json:"totalEmployees"`
	TotalFundsFlow             float64                    `json:"totalFundsFlow"`
	KPIs
}

// ScenarioResult 方案计算结果：逐机构明细 + 合并汇总
type ScenarioResult struct {
	LocationResults []LocationResult   `json:"locationResults"`
	Consolidated    ConsolidatedResult `json:"consolidated"`
}

// CalculateLocation 计算单机构全部财务指标
// 停用机构返回全零结果（仅保留标识字段），不参与任何汇总。
func CalculateLocation(loc *model.Location, ga model.GlobalAssumptions) LocationResult {
	result := LocationResult{
		LocationID:   loc.ID,
		LocationName: loc.Name,
		LocationType: loc.Type,
	}
	result.Costs.CategoryCosts = map[string]float64{}
	if !loc.Active {
		return result
	}

	result.Revenue = CalculateRevenue(loc)
	result.Costs = CalculateCosts(loc, ga)
	result.TotalCalls = loc.GetTotalCalls()
	result.KPIs = CalculateKPIs(result.Revenue.Total, result.Costs.Total,
		result.Costs.DirectCosts, result.TotalCalls)
	return result
}

// CalculateRevenue 计算机构收入
// 代理费 = Σ(启用船型 calls × feePerCall)；
// 船舶服务费按代理费加成，佣金按（代理费 + 服务费）加成。
func CalculateRevenue(loc *model.Location) RevenueResult {
	var baseAgencyFees, fundsFlow float64
	for _, st := range loc.Revenue.ShipTypes {
		if !st.Enabled {
			continue
		}
		baseAgencyFees += float64(st.Calls) * st.FeePerCall
		fundsFlow += float64(st.Calls) * st.FundsPerCall
	}

	var husbandry float64
	if loc.Revenue.Husbandry.Enabled {
		husbandry = baseAgencyFees * loc.Revenue.Husbandry.MarginPercent / 100
	}

	var commission float64
	if loc.Revenue.Commission.Enabled {
		commission = (baseAgencyFees + husbandry) * loc.Revenue.Commission.MarginPercent / 100
	}

	documentation := loc.Revenue.Documentation.ManualAmount

	return RevenueResult{
		BaseAgencyFees:       baseAgencyFees,
		HusbandryRevenue:     husbandry,
		CommissionRevenue:    commission,
		DocumentationRevenue: documentation,
		Total:                baseAgencyFees + husbandry + commission + documentation,
		FundsFlow:            fundsFlow,
	}
}

// CalculateCosts 计算机构成本
// 直接成本 = 港口薪酬 + 港口福利 + 变动成本；
// 企业分摊 = 企业薪酬 + 企业福利 + 全部管理费用。
func CalculateCosts(loc *model.Location, ga model.GlobalAssumptions) CostsResult {
	var corporatePayroll, portPayroll float64
	var corporateCount, portCount int

	for i := range loc.CorporateStaff {
		s := &loc.CorporateStaff[i]
		if !s.Enabled {
			continue
		}
		corporatePayroll += s.TotalCost()
		corporateCount += s.Count
	}
	for i := range loc.PortStaff {
		s := &loc.PortStaff[i]
		if !s.Enabled {
			continue
		}
		portPayroll += s.TotalCost()
		portCount += s.Count
	}

	totalPayroll := corporatePayroll + portPayroll
	employeeCount := corporateCount + portCount

	retirement := totalPayroll * ga.Retirement401kPercent / 100
	health := float64(employeeCount) * ga.HealthInsurancePerEmployee

	portBenefits := portPayroll*ga.Retirement401kPercent/100 +
		float64(portCount)*ga.HealthInsurancePerEmployee
	corporateBenefits := corporatePayroll*ga.Retirement401kPercent/100 +
		float64(corporateCount)*ga.HealthInsurancePerEmployee

	officeSpaceCost := loc.Overhead.OfficeSpace.Sqft * loc.Overhead.OfficeSpace.CostPerSqft

	categoryCosts := make(map[string]float64, len(loc.Overhead.Categories))
	totalOverhead := officeSpaceCost
	for key, cat := range loc.Overhead.Categories {
		sub := cat.Total()
		categoryCosts[key] = sub
		totalOverhead += sub
	}

	totalCalls := loc.GetTotalCalls()
	variablePerCall := loc.Overhead.VariableCosts.CostPerCall
	totalVariable := float64(totalCalls) * variablePerCall

	directCosts := portPayroll + portBenefits + totalVariable
	corporateOverhead := corporatePayroll + corporateBenefits + totalOverhead

	return CostsResult{
		CorporatePayroll:       corporatePayroll,
		PortPayroll:            portPayroll,
		TotalPayroll:           totalPayroll,
		EmployeeCount:          employeeCount,
		CorporateEmployeeCount: corporateCount,
		PortEmployeeCount:      portCount,
		Retirement401k:         retirement,
		HealthInsurance:        health,
		TotalBenefits:          retirement + health,
		CorporateBenefits:      corporateBenefits,
		PortBenefits:           portBenefits,
		OfficeSpaceCost:        officeSpaceCost,
		CategoryCosts:          categoryCosts,
		TotalOverhead:          totalOverhead,
		VariableCostPerCall:    variablePerCall,
		TotalVariableCosts:     totalVariable,
		DirectCosts:            directCosts,
		CorporateOverhead:      corporateOverhead,
		Total:                  totalPayroll + retirement + health + totalOverhead + totalVariable,
	}
}

// CalculateKPIs 计算单位经济指标，挂靠量为零时比率全部归零
func CalculateKPIs(totalRevenue, totalCosts, directCosts float64, totalCalls int) KPIs {
	var k KPIs
	if totalCalls > 0 {
		calls := float64(totalCalls)
		k.RevenuePerCall = totalRevenue / calls
		k.TotalCostPerCall = totalCosts / calls
		k.DirectCostPerCall = directCosts / calls
	}
	k.TotalDeltaPerCall = k.RevenuePerCall - k.TotalCostPerCall
	k.DirectDeltaPerCall = k.RevenuePerCall - k.DirectCostPerCall
	k.EBITDA = totalRevenue - totalCosts
	if totalRevenue > 0 {
		k.EBITDAMargin = k.EBITDA / totalRevenue * 100
	}
	if k.RevenuePerCall > 0 {
		k.BreakEvenCalls = totalCosts / k.RevenuePerCall
	}
	return k
}

// CalculateScenario 计算整个方案：逐启用机构计算后汇总，
// 再叠加方案级企业间接费用得到合并成本。
func CalculateScenario(s *model.Scenario) ScenarioResult {
	active := s.GetActiveLocations()
	locationResults := make([]LocationResult, 0, len(active))
	for _, loc := range active {
		locationResults = append(locationResults, CalculateLocation(loc, s.GlobalAssumptions))
	}

	var c ConsolidatedResult
	for _, lr := range locationResults {
		c.TotalRevenue += lr.Revenue.Total
		c.HusbandryRevenue += lr.Revenue.HusbandryRevenue
		c.CommissionRevenue += lr.Revenue.CommissionRevenue
		c.DocumentationRevenue += lr.Revenue.DocumentationRevenue
		c.LocationCosts += lr.Costs.Total
		c.TotalDirectCosts += lr.Costs.DirectCosts
		c.CorporatePayroll += lr.Costs.CorporatePayroll
		c.PortPayroll += lr.Costs.PortPayroll
		c.TotalBenefits += lr.Costs.TotalBenefits
		c.TotalOverhead += lr.Costs.TotalOverhead
		c.TotalVariableCosts += lr.Costs.TotalVariableCosts
		c.TotalCalls += lr.TotalCalls
		c.TotalEmployees += lr.Costs.EmployeeCount
		c.TotalFundsFlow += lr.Revenue.FundsFlow
	}

	co := s.CorporateIndirectOverhead
	var customTotal float64
	for _, item := range co.CustomTEItems {
		customTotal += item.Amount
	}
	c.CorporateIndirectTotal = co.Total()
	c.CorporateIndirectBreakdown = CorporateIndirectBreakdown{
		ExecutiveCompensation: co.ExecutiveCompensation,
		CorporateLegal:        co.CorporateLegal,
		CorporateAccounting:   co.CorporateAccounting,
		CorporateInsurance:    co.CorporateInsurance,
		CorporateTechnology:   co.CorporateTechnology,
		CustomTETotal:         customTotal,
		CustomTEItems:         append([]model.CustomTEItem{}, co.CustomTEItems...),
	}

	c.TotalCosts = c.LocationCosts + c.CorporateIndirectTotal
	c.KPIs = CalculateKPIs(c.TotalRevenue, c.TotalCosts, c.TotalDirectCosts, c.TotalCalls)

	return ScenarioResult{LocationResults: locationResults, Consolidated: c}
}

// ConsolidatedPatch 将合并结果转为可写回方案的快照补丁
func (r ScenarioResult) ConsolidatedPatch() model.ConsolidatedPatch {
	c := r.Consolidated
	return model.ConsolidatedPatch{
		TotalRevenue:   &c.TotalRevenue,
		TotalCosts:     &c.TotalCosts,
		TotalCalls:     &c.TotalCalls,
		RevenuePerCall: &c.RevenuePerCall,
		CostPerCall:    &c.TotalCostPerCall,
		DeltaPerCall:   &c.TotalDeltaPerCall,
		EBITDA:         &c.EBITDA,
		EBITDAMargin:   &c.EBITDAMargin,
		BreakEvenCalls: &c.BreakEvenCalls,
	}
}

// SortedCategoryKeys 类目小计的稳定遍历顺序（导出与展示用）
func SortedCategoryKeys(costs CostsResult) []string {
	keys := make([]string, 0, len(costs.CategoryCosts))
	for k := range costs.CategoryCosts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
