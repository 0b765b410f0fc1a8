package calculator

import (
	"math"
	"strings"

	"shipagency/internal/model"
)

// ApplyAIReductions 以传统方案为底版生成 AI 增效方案
// 按全局缩减系数压缩单证/会计/作业行政岗位人数（向上取整，保底后仍为整数），
// 并为总部追加 AI 系统技术投入。原方案不受影响。
func ApplyAIReductions(traditional *model.Scenario) (*model.Scenario, error) {
	ai, err := traditional.Clone(traditional.Name + " - AI Enabled")
	if err != nil {
		return nil, err
	}
	ai.ModelType = model.ModelAIEnabled
	// 克隆会重置企业级间接费用，对比时两方案须采用同一套数字
	ai.CorporateIndirectOverhead = traditional.CorporateIndirectOverhead
	ai.CorporateIndirectOverhead.CustomTEItems = append([]model.CustomTEItem{},
		traditional.CorporateIndirectOverhead.CustomTEItems...)

	factors := ai.GlobalAssumptions.AIReductionFactors

	for _, loc := range ai.Locations {
		for i := range loc.CorporateStaff {
			s := &loc.CorporateStaff[i]
			lower := strings.ToLower(s.Position)
			switch {
			case strings.Contains(lower, "document"):
				s.Count = reduceHeadcount(s.Count, factors.DocumentationStaff)
			case strings.Contains(lower, "accounting clerk"):
				s.Count = reduceHeadcount(s.Count, factors.AccountingClerks)
			}
		}
		for i := range loc.PortStaff {
			s := &loc.PortStaff[i]
			if strings.Contains(strings.ToLower(s.Position), "ops admin clerk") {
				s.Count = reduceHeadcount(s.Count, factors.OpsAdminClerks)
			}
		}

		if loc.Type == model.LocationHQ {
			tech, ok := loc.Overhead.Categories["technology"]
			if !ok {
				tech = model.OverheadCategory{}
				loc.Overhead.Categories["technology"] = tech
			}
			tech["specializedSaaS"] += factors.TechnologyIncrease
		}
	}

	return ai, nil
}

func reduceHeadcount(count int, factor float64) int {
	return int(math.Ceil(float64(count) * (1 - factor)))
}

// ScenarioSummary 对比结果中的方案摘要
type ScenarioSummary struct {
	Name      string          `json:"name"`
	ModelType model.ModelType `json:"modelType"`
	Results   ScenarioResult  `json:"results"`
}

// ComparisonDeltas 两方案合并指标的绝对差值（方案二减方案一）
type ComparisonDeltas struct {
	TotalRevenue       float64 `json:"totalRevenue"`
	TotalCosts         float64 `json:"totalCosts"`
	TotalCalls         int     `json:"totalCalls"`
	TotalEmployees     int     `json:"totalEmployees"`
	RevenuePerCall     float64 `json:"revenuePerCall"`
	TotalCostPerCall   float64 `json:"totalCostPerCall"`
	TotalDeltaPerCall  float64 `json:"totalDeltaPerCall"`
	DirectCostPerCall  float64 `json:"directCostPerCall"`
	DirectDeltaPerCall float64 `json:"directDeltaPerCall"`
	EBITDA             float64 `json:"ebitda"`
	EBITDAMargin       float64 `json:"ebitdaMargin"`
}

// ComparisonPercents 两方案合并指标的百分比变化
type ComparisonPercents struct {
	TotalRevenue       float64 `json:"totalRevenue"`
	TotalCosts         float64 `json:"totalCosts"`
	TotalEmployees     float64 `json:"totalEmployees"`
	RevenuePerCall     float64 `json:"revenuePerCall"`
	TotalCostPerCall   float64 `json:"totalCostPerCall"`
	TotalDeltaPerCall  float64 `json:"totalDeltaPerCall"`
	DirectCostPerCall  float64 `json:"directCostPerCall"`
	DirectDeltaPerCall float64 `json:"directDeltaPerCall"`
	EBITDA             float64 `json:"ebitda"`
}

// ComparisonResult 双方案对比结果
type ComparisonResult struct {
	Scenario1      ScenarioSummary    `json:"scenario1"`
	Scenario2      ScenarioSummary    `json:"scenario2"`
	Deltas         ComparisonDeltas   `json:"deltas"`
	PercentChanges ComparisonPercents `json:"percentChanges"`
}

// CompareScenarios 对比两个方案（通常为传统 vs AI 增效）
func CompareScenarios(s1, s2 *model.Scenario) ComparisonResult {
	r1 := CalculateScenario(s1)
	r2 := CalculateScenario(s2)
	c1, c2 := r1.Consolidated, r2.Consolidated

	return ComparisonResult{
		Scenario1: ScenarioSummary{Name: s1.Name, ModelType: s1.ModelType, Results: r1},
		Scenario2: ScenarioSummary{Name: s2.Name, ModelType: s2.ModelType, Results: r2},
		Deltas: ComparisonDeltas{
			TotalRevenue:       c2.TotalRevenue - c1.TotalRevenue,
			TotalCosts:         c2.TotalCosts - c1.TotalCosts,
			TotalCalls:         c2.TotalCalls - c1.TotalCalls,
			TotalEmployees:     c2.TotalEmployees - c1.TotalEmployees,
			RevenuePerCall:     c2.RevenuePerCall - c1.RevenuePerCall,
			TotalCostPerCall:   c2.TotalCostPerCall - c1.TotalCostPerCall,
			TotalDeltaPerCall:  c2.TotalDeltaPerCall - c1.TotalDeltaPerCall,
			DirectCostPerCall:  c2.DirectCostPerCall - c1.DirectCostPerCall,
			DirectDeltaPerCall: c2.DirectDeltaPerCall - c1.DirectDeltaPerCall,
			EBITDA:             c2.EBITDA - c1.EBITDA,
			EBITDAMargin:       c2.EBITDAMargin - c1.EBITDAMargin,
		},
		PercentChanges: ComparisonPercents{
			TotalRevenue:       PercentChange(c1.TotalRevenue, c2.TotalRevenue),
			TotalCosts:         PercentChange(c1.TotalCosts, c2.TotalCosts),
			TotalEmployees:     PercentChange(float64(c1.TotalEmployees), float64(c2.TotalEmployees)),
			RevenuePerCall:     PercentChange(c1.RevenuePerCall, c2.RevenuePerCall),
			TotalCostPerCall:   PercentChange(c1.TotalCostPerCall, c2.TotalCostPerCall),
			TotalDeltaPerCall:  PercentChange(c1.TotalDeltaPerCall, c2.TotalDeltaPerCall),
			DirectCostPerCall:  PercentChange(c1.DirectCostPerCall, c2.DirectCostPerCall),
			DirectDeltaPerCall: PercentChange(c1.DirectDeltaPerCall, c2.DirectDeltaPerCall),
			EBITDA:             PercentChange(c1.EBITDA, c2.EBITDA),
		},
	}
}

// PercentChange 百分比变化，基数为零且新值非零时约定为 100
func PercentChange(oldValue, newValue float64) float64 {
	if oldValue == 0 {
		if newValue == 0 {
			return 0
		}
		return 100
	}
	return (newValue - oldValue) / math.Abs(oldValue) * 100
}
