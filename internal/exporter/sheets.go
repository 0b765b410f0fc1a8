package exporter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
	"shipagency/internal/calculator"
	"shipagency/internal/model"
	"shipagency/internal/util"
)

func (e *Exporter) buildStaffingSheet(f *excelize.File, styles *sheetStyles, sc *model.Scenario) error {
	sheet := SheetStaffing
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("创建 %s 失败: %w", sheet, err)
	}

	setCell(f, sheet, "A1", "Ship Agency Financial Model - Staffing Detail")
	_ = f.MergeCell(sheet, "A1", "H1")
	_ = f.SetCellStyle(sheet, "A1", "A1", styles.title)

	row := 3
	for _, loc := range sc.Locations {
		if !loc.Active {
			continue
		}

		setCell(f, sheet, cell("A", row), fmt.Sprintf("Location: %s (%s)", loc.Name, strings.ToUpper(string(loc.Type))))
		_ = f.MergeCell(sheet, cell("A", row), cell("H", row))
		_ = f.SetCellStyle(sheet, cell("A", row), cell("H", row), styles.locationHeader)
		row += 2

		row = e.writeStaffSection(f, styles, sheet, row, "CORPORATE STAFF", loc.CorporateStaff)
		row = e.writeStaffSection(f, styles, sheet, row, "PORT OPERATIONS STAFF", loc.PortStaff)
		row++
	}

	widths := []float64{25, 10, 15, 13, 10, 10, 8, 20}
	cols := "ABCDEFGH"
	for i, w := range widths {
		col := string(cols[i])
		_ = f.SetColWidth(sheet, col, col, w)
	}

	return freezeTopRow(f, sheet)
}

func (e *Exporter) writeStaffSection(f *excelize.File, styles *sheetStyles, sheet string, row int, title string, staff []model.StaffMember) int {
	if len(staff) == 0 {
		return row
	}

	setCell(f, sheet, cell("A", row), title)
	_ = f.MergeCell(sheet, cell("A", row), cell("H", row))
	_ = f.SetCellStyle(sheet, cell("A", row), cell("H", row), styles.sectionHeader)
	row++

	writeHeaderRow(f, sheet, styles, row,
		"Position", "Type", "Base Rate", "Annual Hours", "OT Hours", "Bonus %", "Count", "Total Compensation")
	row++

	for i := range staff {
		s := &staff[i]
		payType := "Salary"
		if s.IsHourly {
			payType = "Hourly"
		}

		setCell(f, sheet, cell("A", row), s.Position)
		setCell(f, sheet, cell("B", row), payType)
		setCell(f, sheet, cell("C", row), s.Salary)
		setCell(f, sheet, cell("D", row), s.AnnualHours)
		setCell(f, sheet, cell("E", row), s.OvertimeHours)
		setCell(f, sheet, cell("F", row), s.BonusPercent/100)
		setCell(f, sheet, cell("G", row), s.Count)
		setCell(f, sheet, cell("H", row), s.TotalCost())

		_ = f.SetCellStyle(sheet, cell("A", row), cell("B", row), styles.dataCell)
		_ = f.SetCellStyle(sheet, cell("C", row), cell("C", row), styles.currency)
		_ = f.SetCellStyle(sheet, cell("D", row), cell("E", row), styles.number)
		_ = f.SetCellStyle(sheet, cell("F", row), cell("F", row), styles.percent)
		_ = f.SetCellStyle(sheet, cell("G", row), cell("G", row), styles.number)
		_ = f.SetCellStyle(sheet, cell("H", row), cell("H", row), styles.currency)
		row++
	}

	return row + 1
}

func (e *Exporter) buildRevenueSheet(f *excelize.File, styles *sheetStyles, sc *model.Scenario, result calculator.ScenarioResult) error {
	sheet := SheetRevenue
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("创建 %s 失败: %w", sheet, err)
	}

	setCell(f, sheet, "A1", "Ship Agency Financial Model - Revenue Detail")
	_ = f.MergeCell(sheet, "A1", "E1")
	_ = f.SetCellStyle(sheet, "A1", "A1", styles.title)

	resultByID := make(map[string]calculator.LocationResult, len(result.LocationResults))
	for _, lr := range result.LocationResults {
		resultByID[lr.LocationID] = lr
	}

	row := 3
	for _, loc := range sc.Locations {
		if !loc.Active {
			continue
		}
		lr := resultByID[loc.ID]

		setCell(f, sheet, cell("A", row), "Location: "+loc.Name)
		_ = f.MergeCell(sheet, cell("A", row), cell("E", row))
		_ = f.SetCellStyle(sheet, cell("A", row), cell("E", row), styles.locationHeader)
		row += 2

		setCell(f, sheet, cell("A", row), "PORT CALLS BY SHIP TYPE")
		_ = f.MergeCell(sheet, cell("A", row), cell("E", row))
		_ = f.SetCellStyle(sheet, cell("A", row), cell("E", row), styles.sectionHeader)
		row++

		writeHeaderRow(f, sheet, styles, row, "Ship Type", "Calls", "Fee per Call", "Total Fees", "Funds per Call")
		row++

		for _, st := range loc.Revenue.ShipTypes {
			setCell(f, sheet, cell("A", row), st.Type)
			setCell(f, sheet, cell("B", row), st.Calls)
			setCell(f, sheet, cell("C", row), st.FeePerCall)
			setCell(f, sheet, cell("D", row), float64(st.Calls)*st.FeePerCall)
			setCell(f, sheet, cell("E", row), st.FundsPerCall)

			_ = f.SetCellStyle(sheet, cell("A", row), cell("A", row), styles.dataCell)
			_ = f.SetCellStyle(sheet, cell("B", row), cell("B", row), styles.number)
			_ = f.SetCellStyle(sheet, cell("C", row), cell("E", row), styles.currency)
			row++
		}
		row++

		setCell(f, sheet, cell("A", row), "REVENUE BREAKDOWN")
		_ = f.MergeCell(sheet, cell("A", row), cell("B", row))
		_ = f.SetCellStyle(sheet, cell("A", row), cell("B", row), styles.sectionHeader)
		row++

		writeHeaderRow(f, sheet, styles, row, "Category", "Amount")
		row++

		breakdown := [][2]interface{}{
			{"Base Agency Fees", lr.Revenue.BaseAgencyFees},
			{"Husbandry Revenue", lr.Revenue.HusbandryRevenue},
			{"Commission Revenue", lr.Revenue.CommissionRevenue},
			{"Documentation Revenue", lr.Revenue.DocumentationRevenue},
		}
		for _, b := range breakdown {
			setCell(f, sheet, cell("A", row), b[0])
			setCell(f, sheet, cell("B", row), b[1])
			_ = f.SetCellStyle(sheet, cell("A", row), cell("A", row), styles.dataCell)
			_ = f.SetCellStyle(sheet, cell("B", row), cell("B", row), styles.currency)
			row++
		}

		setCell(f, sheet, cell("A", row), "Total Revenue")
		setCell(f, sheet, cell("B", row), lr.Revenue.Total)
		_ = f.SetCellStyle(sheet, cell("A", row), cell("B", row), styles.totalRow)
		row += 3
	}

	widths := []float64{22, 12, 16, 16, 20}
	cols := "ABCDE"
	for i, w := range widths {
		col := string(cols[i])
		_ = f.SetColWidth(sheet, col, col, w)
	}

	return freezeTopRow(f, sheet)
}

func (e *Exporter) buildOverheadSheet(f *excelize.File, styles *sheetStyles, sc *model.Scenario) error {
	sheet := SheetOverhead
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("创建 %s 失败: %w", sheet, err)
	}

	setCell(f, sheet, "A1", "Ship Agency Financial Model - Overhead Detail")
	_ = f.MergeCell(sheet, "A1", "B1")
	_ = f.SetCellStyle(sheet, "A1", "A1", styles.title)

	row := 3
	for _, loc := range sc.Locations {
		if !loc.Active {
			continue
		}

		setCell(f, sheet, cell("A", row), "Location: "+loc.Name)
		_ = f.MergeCell(sheet, cell("A", row), cell("B", row))
		_ = f.SetCellStyle(sheet, cell("A", row), cell("B", row), styles.locationHeader)
		row += 2

		// 办公场地
		space := loc.Overhead.OfficeSpace
		row = e.writeSectionHeader(f, styles, sheet, row, "OFFICE SPACE")
		writeHeaderRow(f, sheet, styles, row, "Item", "Value")
		row++
		row = e.writeDataRow(f, styles, sheet, row, "Square Feet", space.Sqft, styles.dataCell)
		row = e.writeDataRow(f, styles, sheet, row, "Rent Class", string(space.RentClass), styles.dataCell)
		row = e.writeDataRow(f, styles, sheet, row, "Cost per Sqft", space.CostPerSqft, styles.currency)
		row = e.writeDataRow(f, styles, sheet, row, "Annual Rent", space.Sqft*space.CostPerSqft, styles.currency)
		row++

		// 动态类目按键名排序输出
		for _, key := range sortedKeys(loc.Overhead.Categories) {
			cat := loc.Overhead.Categories[key]
			row = e.writeSectionHeader(f, styles, sheet, row, strings.ToUpper(util.FormatLabel(key)))
			writeHeaderRow(f, sheet, styles, row, "Item", "Annual Cost")
			row++
			for _, item := range sortedKeys(cat) {
				row = e.writeDataRow(f, styles, sheet, row, util.FormatLabel(item), cat[item], styles.currency)
			}
			row++
		}

		// 变动成本
		vc := loc.Overhead.VariableCosts
		row = e.writeSectionHeader(f, styles, sheet, row, "VARIABLE COSTS PER CALL")
		writeHeaderRow(f, sheet, styles, row, "Item", "Value")
		row++
		row = e.writeDataRow(f, styles, sheet, row, "Miles per Call", vc.MilesPerCall, styles.dataCell)
		row = e.writeDataRow(f, styles, sheet, row, "Vehicle Type", string(vc.VehicleType), styles.dataCell)
		row = e.writeDataRow(f, styles, sheet, row, "Cost per Call", vc.CostPerCall, styles.currency)
		row += 2
	}

	_ = f.SetColWidth(sheet, "A", "A", 35)
	_ = f.SetColWidth(sheet, "B", "B", 18)

	return freezeTopRow(f, sheet)
}

func (e *Exporter) writeSectionHeader(f *excelize.File, styles *sheetStyles, sheet string, row int, title string) int {
	setCell(f, sheet, cell("A", row), title)
	_ = f.MergeCell(sheet, cell("A", row), cell("B", row))
	_ = f.SetCellStyle(sheet, cell("A", row), cell("B", row), styles.sectionHeader)
	return row + 1
}

func (e *Exporter) writeDataRow(f *excelize.File, styles *sheetStyles, sheet string, row int, label string, value interface{}, valueStyle int) int {
	setCell(f, sheet, cell("A", row), label)
	setCell(f, sheet, cell("B", row), value)
	_ = f.SetCellStyle(sheet, cell("A", row), cell("A", row), styles.dataCell)
	_ = f.SetCellStyle(sheet, cell("B", row), cell("B", row), valueStyle)
	return row + 1
}

func (e *Exporter) buildLocationSheet(f *excelize.File, styles *sheetStyles, sc *model.Scenario, result calculator.ScenarioResult) error {
	sheet := SheetLocations
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("创建 %s 失败: %w", sheet, err)
	}

	setCell(f, sheet, "A1", "Ship Agency Financial Model - Location Breakdown")
	_ = f.MergeCell(sheet, "A1", "H1")
	_ = f.SetCellStyle(sheet, "A1", "A1", styles.title)

	resultByID := make(map[string]calculator.LocationResult, len(result.LocationResults))
	for _, lr := range result.LocationResults {
		resultByID[lr.LocationID] = lr
	}

	writeHeaderRow(f, sheet, styles, 3, "Location", "Type", "State", "Active", "Calls", "Revenue", "Costs", "EBITDA")

	row := 4
	for _, loc := range sc.Locations {
		active := "No"
		if loc.Active {
			active = "Yes"
		}
		// 停用机构无计算结果，financials 为零
		lr := resultByID[loc.ID]

		setCell(f, sheet, cell("A", row), loc.Name)
		setCell(f, sheet, cell("B", row), strings.ToUpper(string(loc.Type)))
		setCell(f, sheet, cell("C", row), loc.State)
		setCell(f, sheet, cell("D", row), active)
		setCell(f, sheet, cell("E", row), loc.GetTotalCalls())
		setCell(f, sheet, cell("F", row), lr.Revenue.Total)
		setCell(f, sheet, cell("G", row), lr.Costs.Total)
		setCell(f, sheet, cell("H", row), lr.EBITDA)

		_ = f.SetCellStyle(sheet, cell("A", row), cell("D", row), styles.dataCell)
		_ = f.SetCellStyle(sheet, cell("E", row), cell("E", row), styles.number)
		_ = f.SetCellStyle(sheet, cell("F", row), cell("H", row), styles.currency)
		row++
	}

	_ = f.AutoFilter(sheet, fmt.Sprintf("A3:H%d", row-1), nil)

	widths := []float64{22, 10, 8, 10, 10, 16, 16, 16}
	cols := "ABCDEFGH"
	for i, w := range widths {
		col := string(cols[i])
		_ = f.SetColWidth(sheet, col, col, w)
	}

	return freezeTopRow(f, sheet)
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
