package calculator

import "shipagency/internal/model"

// DefaultInterestRate 年化利率默认值
const DefaultInterestRate = 0.02

// DefaultCycleDays 现金周期基准天数（当前实际水平）
const DefaultCycleDays = 71

// CycleScenario 单一现金周期档位的浮存收益
type CycleScenario struct {
	Name              string  `json:"name"`
	CycleDays         int     `json:"cycleDays"`
	AverageFloat      float64 `json:"averageFloat"`
	AnnualIncome      float64 `json:"annualIncome"`
	MonthlyIncome     float64 `json:"monthlyIncome"`
	InterestRate      float64 `json:"interestRate"`
	IncomeVsBaseline  float64 `json:"incomeVsBaseline"`
	PercentVsBaseline float64 `json:"percentVsBaseline"`
}

// CycleSensitivityResult 现金周期敏感性分析结果
type CycleSensitivityResult struct {
	Scenarios      []CycleScenario `json:"scenarios"`
	Baseline       CycleScenario   `json:"baseline"`
	InterestRate   float64         `json:"interestRate"`
	TotalFundsFlow float64         `json:"totalFundsFlow"`
}

// 周期档位按天数递增排列，基准为 71 天
var cycleTiers = []struct {
	name string
	days int
}{
	{"instant_1_day", 1},
	{"aggressive_30_days", 30},
	{"optimized_45_days", 45},
	{"current_71_days", DefaultCycleDays},
	{"slow_90_days", 90},
	{"very_slow_120_days", 120},
}

// CalculateCycleTimeSensitivity 现金周期敏感性分析
// 时间加权浮存 = 年度资金流水 × (持有天数 / 365)，
// 各档位收益与 71 天基准档位比较。interestRate 为零时取默认利率。
func CalculateCycleTimeSensitivity(totalFundsFlow, interestRate float64) CycleSensitivityResult {
	if interestRate == 0 {
		interestRate = DefaultInterestRate
	}

	scenarios := make([]CycleScenario, 0, len(cycleTiers))
	var baseline CycleScenario
	for _, tier := range cycleTiers {
		avgFloat := totalFundsFlow * float64(tier.days) / 365
		annual := avgFloat * interestRate
		sc := CycleScenario{
			Name:          tier.name,
			CycleDays:     tier.days,
			AverageFloat:  avgFloat,
			AnnualIncome:  annual,
			MonthlyIncome: annual / 12,
			InterestRate:  interestRate,
		}
		scenarios = append(scenarios, sc)
		if tier.days == DefaultCycleDays {
			baseline = sc
		}
	}

	for i := range scenarios {
		sc := &scenarios[i]
		sc.IncomeVsBaseline = sc.AnnualIncome - baseline.AnnualIncome
		if baseline.AnnualIncome > 0 {
			sc.PercentVsBaseline = (sc.AnnualIncome - baseline.AnnualIncome) / baseline.AnnualIncome * 100
		}
	}

	return CycleSensitivityResult{
		Scenarios:      scenarios,
		Baseline:       baseline,
		InterestRate:   interestRate,
		TotalFundsFlow: totalFundsFlow,
	}
}

// FloatIncomeResult 指定周期下的浮存收益
type FloatIncomeResult struct {
	TotalFundsFlow  float64        `json:"totalFundsFlow"`
	CycleDays       int            `json:"cycleDays"`
	AverageFloat    float64        `json:"averageFloat"`
	InterestRate    float64        `json:"interestRate"`
	AnnualIncome    float64        `json:"annualIncome"`
	MonthlyIncome   float64        `json:"monthlyIncome"`
	IncomePerCall   float64        `json:"incomePerCall"`
	TotalCalls      int            `json:"totalCalls"`
	ScenarioResults ScenarioResult `json:"scenarioResults"`
}

// CalculateFloatIncome 按指定现金周期计算方案的浮存收益
// cycleDays 为零时取 71 天基准，interestRate 为零时取默认利率。
func CalculateFloatIncome(s *model.Scenario, cycleDays int, interestRate float64) FloatIncomeResult {
	if cycleDays == 0 {
		cycleDays = DefaultCycleDays
	}
	if interestRate == 0 {
		interestRate = DefaultInterestRate
	}

	results := CalculateScenario(s)
	fundsFlow := results.Consolidated.TotalFundsFlow

	avgFloat := fundsFlow * float64(cycleDays) / 365
	annual := avgFloat * interestRate

	var perCall float64
	totalCalls := results.Consolidated.TotalCalls
	if totalCalls > 0 {
		perCall = annual / float64(totalCalls)
	}

	return FloatIncomeResult{
		TotalFundsFlow:  fundsFlow,
		CycleDays:       cycleDays,
		AverageFloat:    avgFloat,
		InterestRate:    interestRate,
		AnnualIncome:    annual,
		MonthlyIncome:   annual / 12,
		IncomePerCall:   perCall,
		TotalCalls:      totalCalls,
		ScenarioResults: results,
	}
}
