package exporter

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"shipagency/internal/calculator"
	"shipagency/internal/model"
)

// 工作簿 sheet 名称
const (
	SheetDashboard = "Dashboard Summary"
	SheetStaffing  = "Staffing Detail"
	SheetRevenue   = "Revenue Detail"
	SheetOverhead  = "Overhead Detail"
	SheetLocations = "Location Breakdown"
)

// Exporter 方案工作簿导出器
// 每次导出生成全新工作簿，五个 sheet：仪表盘汇总、人员明细、
// 收入明细、管理费用明细、机构一览。
type Exporter struct{}

// NewExporter 创建导出器
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export 导出整份方案
// 计算结果在导出时现算，保证工作簿与模型数据一致。
func (e *Exporter) Export(sc *model.Scenario, progress func(ProgressEvent)) (*excelize.File, error) {
	result := calculator.CalculateScenario(sc)

	f := excelize.NewFile()
	styles, err := newSheetStyles(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("创建单元格样式失败: %w", err)
	}

	reportProgress(progress, 10, "准备工作簿")
	if err := e.buildDashboardSheet(f, styles, sc, result); err != nil {
		_ = f.Close()
		return nil, err
	}

	reportProgress(progress, 30, "写入人员明细")
	if err := e.buildStaffingSheet(f, styles, sc); err != nil {
		_ = f.Close()
		return nil, err
	}

	reportProgress(progress, 50, "写入收入明细")
	if err := e.buildRevenueSheet(f, styles, sc, result); err != nil {
		_ = f.Close()
		return nil, err
	}

	reportProgress(progress, 70, "写入管理费用明细")
	if err := e.buildOverheadSheet(f, styles, sc); err != nil {
		_ = f.Close()
		return nil, err
	}

	reportProgress(progress, 90, "写入机构一览")
	if err := e.buildLocationSheet(f, styles, sc, result); err != nil {
		_ = f.Close()
		return nil, err
	}

	// 删除默认 sheet，激活仪表盘
	_ = f.DeleteSheet("Sheet1")
	idx, err := f.GetSheetIndex(SheetDashboard)
	if err == nil && idx >= 0 {
		f.SetActiveSheet(idx)
	}

	reportProgress(progress, 100, "完成")
	return f, nil
}

// ExportFileName 导出文件名：方案名（空格转下划线）+ 时间戳
func ExportFileName(sc *model.Scenario) string {
	return fmt.Sprintf("%s_%d.xlsx", sanitizeFileName(sc.Name), time.Now().UnixMilli())
}

func (e *Exporter) buildDashboardSheet(f *excelize.File, styles *sheetStyles, sc *model.Scenario, result calculator.ScenarioResult) error {
	sheet := SheetDashboard
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("创建 %s 失败: %w", sheet, err)
	}

	c := result.Consolidated
	modelType := "Traditional"
	if sc.ModelType == model.ModelAIEnabled {
		modelType = "AI-Enabled"
	}

	setCell(f, sheet, "A1", "Ship Agency Financial Model - Dashboard Summary")
	setCell(f, sheet, "A2", "Scenario:")
	setCell(f, sheet, "B2", sc.Name)
	setCell(f, sheet, "A3", "Model Type:")
	setCell(f, sheet, "B3", modelType)
	setCell(f, sheet, "A4", "Export Date:")
	setCell(f, sheet, "B4", time.Now().Format("2006-01-02"))

	_ = f.SetCellStyle(sheet, "A1", "A1", styles.title)
	_ = f.SetCellStyle(sheet, "A2", "A4", styles.infoCell)

	row := 6

	// KPI 区块
	setCell(f, sheet, cell("A", row), "KEY PERFORMANCE INDICATORS")
	_ = f.MergeCell(sheet, cell("A", row), cell("C", row))
	_ = f.SetCellStyle(sheet, cell("A", row), cell("C", row), styles.sectionHeader)
	row++

	writeHeaderRow(f, sheet, styles, row, "Metric", "Value", "Unit")
	row++

	kpiRows := [][3]interface{}{
		{"Total Port Calls", c.TotalCalls, "calls"},
		{"Total Employees", c.TotalEmployees, "employees"},
		{"Revenue per Call", c.RevenuePerCall, "$/call"},
		{"Total Cost per Call", c.TotalCostPerCall, "$/call"},
		{"Delta per Call (Total)", c.TotalDeltaPerCall, "$/call"},
		{"Direct Delta per Call (KEY KPI)", c.DirectDeltaPerCall, "$/call"},
	}
	for _, r := range kpiRows {
		setCell(f, sheet, cell("A", row), r[0])
		setCell(f, sheet, cell("B", row), r[1])
		setCell(f, sheet, cell("C", row), r[2])
		_ = f.SetCellStyle(sheet, cell("A", row), cell("A", row), styles.dataCell)
		_ = f.SetCellStyle(sheet, cell("B", row), cell("B", row), styles.currency)
		_ = f.SetCellStyle(sheet, cell("C", row), cell("C", row), styles.dataCell)
		row++
	}
	row++

	// 财务汇总区块
	setCell(f, sheet, cell("A", row), "FINANCIAL SUMMARY")
	_ = f.MergeCell(sheet, cell("A", row), cell("B", row))
	_ = f.SetCellStyle(sheet, cell("A", row), cell("B", row), styles.sectionHeader)
	row++

	writeHeaderRow(f, sheet, styles, row, "Category", "Amount")
	row++

	type finRow struct {
		label string
		value float64
		style int
	}
	finRows := []finRow{
		{"Total Revenue", c.TotalRevenue, styles.currency},
		{"Total Costs", c.TotalCosts, styles.currency},
		{"  Corporate Payroll", c.CorporatePayroll, styles.currency},
		{"  Port Payroll", c.PortPayroll, styles.currency},
		{"  Benefits", c.TotalBenefits, styles.currency},
		{"  Overhead", c.TotalOverhead, styles.currency},
		{"  Variable Costs", c.TotalVariableCosts, styles.currency},
		{"  Corporate Indirect", c.CorporateIndirectTotal, styles.currency},
		{"EBITDA", c.EBITDA, styles.currency},
		{"EBITDA Margin (%)", c.EBITDAMargin / 100, styles.percent},
		{"Break-Even Calls", c.BreakEvenCalls, styles.number},
	}
	for _, r := range finRows {
		setCell(f, sheet, cell("A", row), r.label)
		setCell(f, sheet, cell("B", row), r.value)
		_ = f.SetCellStyle(sheet, cell("A", row), cell("A", row), styles.dataCell)
		_ = f.SetCellStyle(sheet, cell("B", row), cell("B", row), r.style)
		row++
	}
	row++

	// 全局假设区块
	setCell(f, sheet, cell("A", row), "GLOBAL ASSUMPTIONS")
	_ = f.MergeCell(sheet, cell("A", row), cell("B", row))
	_ = f.SetCellStyle(sheet, cell("A", row), cell("B", row), styles.sectionHeader)
	row++

	writeHeaderRow(f, sheet, styles, row, "Item", "Value")
	row++

	setCell(f, sheet, cell("A", row), "Health Insurance per Employee")
	setCell(f, sheet, cell("B", row), sc.GlobalAssumptions.HealthInsurancePerEmployee)
	_ = f.SetCellStyle(sheet, cell("A", row), cell("A", row), styles.dataCell)
	_ = f.SetCellStyle(sheet, cell("B", row), cell("B", row), styles.currency)
	row++
	setCell(f, sheet, cell("A", row), "401(k) Match (%)")
	setCell(f, sheet, cell("B", row), sc.GlobalAssumptions.Retirement401kPercent/100)
	_ = f.SetCellStyle(sheet, cell("A", row), cell("A", row), styles.dataCell)
	_ = f.SetCellStyle(sheet, cell("B", row), cell("B", row), styles.percent)

	_ = f.SetColWidth(sheet, "A", "A", 35)
	_ = f.SetColWidth(sheet, "B", "B", 18)
	_ = f.SetColWidth(sheet, "C", "C", 15)

	return freezeTopRow(f, sheet)
}
