package exporter

import (
	"fmt"
	"regexp"

	"github.com/xuri/excelize/v2"
)

// sheetStyles 工作簿内复用的单元格样式 id
type sheetStyles struct {
	title          int
	sectionHeader  int
	tableHeader    int
	locationHeader int
	dataCell       int
	currency       int
	number         int
	percent        int
	totalRow       int
	infoCell       int
}

func thinBorders(color string) []excelize.Border {
	return []excelize.Border{
		{Type: "top", Color: color, Style: 1},
		{Type: "bottom", Color: color, Style: 1},
		{Type: "left", Color: color, Style: 1},
		{Type: "right", Color: color, Style: 1},
	}
}

func newSheetStyles(f *excelize.File) (*sheetStyles, error) {
	s := &sheetStyles{}
	var err error

	currencyFmt := "$#,##0.00"
	numberFmt := "#,##0"
	percentFmt := "0.0%"

	s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"0D3B66"}},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	s.sectionHeader, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"0070C0"}},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Border:    thinBorders("000000"),
	})
	if err != nil {
		return nil, err
	}

	s.tableHeader, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders("000000"),
	})
	if err != nil {
		return nil, err
	}

	s.locationHeader, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00B0F0"}},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Border:    thinBorders("000000"),
	})
	if err != nil {
		return nil, err
	}

	s.dataCell, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Border:    thinBorders("D0D0D0"),
	})
	if err != nil {
		return nil, err
	}

	s.currency, err = f.NewStyle(&excelize.Style{
		CustomNumFmt: &currencyFmt,
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:       thinBorders("D0D0D0"),
	})
	if err != nil {
		return nil, err
	}

	s.number, err = f.NewStyle(&excelize.Style{
		CustomNumFmt: &numberFmt,
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:       thinBorders("D0D0D0"),
	})
	if err != nil {
		return nil, err
	}

	s.percent, err = f.NewStyle(&excelize.Style{
		CustomNumFmt: &percentFmt,
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:       thinBorders("D0D0D0"),
	})
	if err != nil {
		return nil, err
	}

	s.totalRow, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		Fill:         excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFF2CC"}},
		CustomNumFmt: &currencyFmt,
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:       thinBorders("000000"),
	})
	if err != nil {
		return nil, err
	}

	s.infoCell, err = f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F2F2F2"}},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func setCell(f *excelize.File, sheet, axis string, value interface{}) {
	_ = f.SetCellValue(sheet, axis, value)
}

// writeHeaderRow 从 A 列起写一行表头并套用表头样式
func writeHeaderRow(f *excelize.File, sheet string, styles *sheetStyles, row int, headers ...string) {
	cols := "ABCDEFGHIJ"
	for i, h := range headers {
		axis := cell(string(cols[i]), row)
		setCell(f, sheet, axis, h)
		_ = f.SetCellStyle(sheet, axis, axis, styles.tableHeader)
	}
}

func freezeTopRow(f *excelize.File, sheet string) error {
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

var fileNameUnsafe = regexp.MustCompile(`\s+`)

func sanitizeFileName(name string) string {
	return fileNameUnsafe.ReplaceAllString(name, "_")
}
