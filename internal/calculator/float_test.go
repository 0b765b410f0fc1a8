package calculator

import (
	"testing"

	"shipagency/internal/model"
)

func TestCalculateCycleTimeSensitivity(t *testing.T) {
	r := CalculateCycleTimeSensitivity(365000, 0)

	if r.InterestRate != DefaultInterestRate {
		t.Fatalf("零利率入参应回落到默认利率，实际 %v", r.InterestRate)
	}
	if r.TotalFundsFlow != 365000 {
		t.Fatalf("资金流水应原样返回，实际 %v", r.TotalFundsFlow)
	}
	if len(r.Scenarios) != 6 {
		t.Fatalf("应有 6 个周期档位，实际 %d", len(r.Scenarios))
	}

	// 档位按天数递增
	for i := 1; i < len(r.Scenarios); i++ {
		if r.Scenarios[i].CycleDays <= r.Scenarios[i-1].CycleDays {
			t.Fatalf("档位应按天数递增: %+v", r.Scenarios)
		}
	}

	// 1 天档位：时间加权浮存 365000 × 1/365 = 1000
	first := r.Scenarios[0]
	if first.Name != "instant_1_day" || first.CycleDays != 1 {
		t.Fatalf("首档位不符: %+v", first)
	}
	if !almostEqual(first.AverageFloat, 1000) {
		t.Fatalf("1 天档位浮存应为 1000，实际 %v", first.AverageFloat)
	}
	if !almostEqual(first.AnnualIncome, 20) {
		t.Fatalf("1 天档位年收益应为 20，实际 %v", first.AnnualIncome)
	}

	// 基准为 71 天档位
	if r.Baseline.CycleDays != DefaultCycleDays {
		t.Fatalf("基准应为 71 天档位，实际 %d", r.Baseline.CycleDays)
	}
	if !almostEqual(r.Baseline.AverageFloat, 71000) {
		t.Fatalf("基准浮存应为 71000，实际 %v", r.Baseline.AverageFloat)
	}
	if r.Baseline.IncomeVsBaseline != 0 || r.Baseline.PercentVsBaseline != 0 {
		t.Fatalf("基准与自身比较应为零: %+v", r.Baseline)
	}
	if !almostEqual(first.IncomeVsBaseline, first.AnnualIncome-r.Baseline.AnnualIncome) {
		t.Fatalf("档位与基准的差值不符: %+v", first)
	}
	if first.IncomeVsBaseline >= 0 {
		t.Fatalf("更短的周期意味着更少的浮存收益，差值应为负")
	}
}

func TestCalculateCycleTimeSensitivityCustomRate(t *testing.T) {
	r := CalculateCycleTimeSensitivity(365000, 0.05)
	if r.InterestRate != 0.05 {
		t.Fatalf("自定义利率应生效，实际 %v", r.InterestRate)
	}
	if !almostEqual(r.Scenarios[0].AnnualIncome, 50) {
		t.Fatalf("1 天档位年收益应为 1000 × 0.05 = 50，实际 %v", r.Scenarios[0].AnnualIncome)
	}
}

func TestCalculateFloatIncome(t *testing.T) {
	s := model.NewScenario(model.ScenarioConfig{Name: "Float"})
	loc := model.NewLocation(model.LocationConfig{Name: "Gulf", Type: model.LocationPortOffice})
	loc.AddShipType("Grain", 100, 1000, 3650)
	s.AddLocation(loc)

	r := CalculateFloatIncome(s, 0, 0)

	if r.CycleDays != DefaultCycleDays {
		t.Fatalf("零周期入参应回落到 71 天，实际 %d", r.CycleDays)
	}
	if r.InterestRate != DefaultInterestRate {
		t.Fatalf("零利率入参应回落到默认利率，实际 %v", r.InterestRate)
	}
	if r.TotalFundsFlow != 365000 {
		t.Fatalf("资金流水应为 100 × 3650 = 365000，实际 %v", r.TotalFundsFlow)
	}
	if !almostEqual(r.AverageFloat, 71000) {
		t.Fatalf("浮存应为 365000 × 71/365 = 71000，实际 %v", r.AverageFloat)
	}
	if !almostEqual(r.AnnualIncome, 1420) {
		t.Fatalf("年收益应为 71000 × 0.02 = 1420，实际 %v", r.AnnualIncome)
	}
	if !almostEqual(r.MonthlyIncome, r.AnnualIncome/12) {
		t.Fatalf("月收益应为年收益的 1/12")
	}
	if r.TotalCalls != 100 {
		t.Fatalf("挂靠量应为 100，实际 %d", r.TotalCalls)
	}
	if !almostEqual(r.IncomePerCall, r.AnnualIncome/100) {
		t.Fatalf("单航次收益不符: %v", r.IncomePerCall)
	}
	if len(r.ScenarioResults.LocationResults) != 1 {
		t.Fatalf("完整方案结果应随浮存收益一并返回")
	}
}

func TestCalculateFloatIncomeCustomInputs(t *testing.T) {
	s := model.NewScenario(model.ScenarioConfig{Name: "Float"})
	loc := model.NewLocation(model.LocationConfig{Name: "Gulf"})
	loc.AddShipType("Grain", 10, 1000, 36500)
	s.AddLocation(loc)

	r := CalculateFloatIncome(s, 30, 0.05)
	if r.CycleDays != 30 || r.InterestRate != 0.05 {
		t.Fatalf("自定义入参应生效: %+v", r)
	}
	// 365000 × 30/365 = 30000，× 0.05 = 1500
	if !almostEqual(r.AnnualIncome, 1500) {
		t.Fatalf("年收益应为 1500，实际 %v", r.AnnualIncome)
	}
}
