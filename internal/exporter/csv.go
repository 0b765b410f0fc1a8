package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"shipagency/internal/calculator"
	"shipagency/internal/model"
	"shipagency/internal/util"
)

// ExportCSV 导出机构一览 CSV（轻量导出，不含样式与明细 sheet）
// 一行一机构，末行为合并汇总。
func (e *Exporter) ExportCSV(sc *model.Scenario, w io.Writer) error {
	result := calculator.CalculateScenario(sc)

	resultByID := make(map[string]calculator.LocationResult, len(result.LocationResults))
	for _, lr := range result.LocationResults {
		resultByID[lr.LocationID] = lr
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"Location", "Type", "State", "Active", "Calls",
		"Revenue", "Costs", "EBITDA", "EBITDA Margin",
	}); err != nil {
		return fmt.Errorf("写入 CSV 表头失败: %w", err)
	}

	for _, loc := range sc.Locations {
		active := "no"
		if loc.Active {
			active = "yes"
		}
		lr := resultByID[loc.ID]

		record := []string{
			loc.Name,
			string(loc.Type),
			loc.State,
			active,
			strconv.Itoa(loc.GetTotalCalls()),
			util.FormatAmount(lr.Revenue.Total),
			util.FormatAmount(lr.Costs.Total),
			util.FormatAmount(lr.EBITDA),
			util.FormatAmount(lr.EBITDAMargin),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("写入机构 %s 失败: %w", loc.Name, err)
		}
	}

	c := result.Consolidated
	total := []string{
		"TOTAL", "", "", "",
		strconv.Itoa(c.TotalCalls),
		util.FormatAmount(c.TotalRevenue),
		util.FormatAmount(c.TotalCosts),
		util.FormatAmount(c.EBITDA),
		util.FormatAmount(c.EBITDAMargin),
	}
	if err := cw.Write(total); err != nil {
		return fmt.Errorf("写入汇总行失败: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSVFileName CSV 导出文件名
func ExportCSVFileName(sc *model.Scenario) string {
	return sanitizeFileName(sc.Name) + "_summary.csv"
}
