package util

import (
	"fmt"
	"strings"
	"unicode"
)

// FormatPercent 格式化百分比
func FormatPercent(value float64) string {
	sign := ""
	if value > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, value*100)
}

// FormatAmount 格式化金额（两位小数，不带货币符号）
func FormatAmount(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

// FormatLabel 将 camelCase 键名转为可读标签
// "officeSupplies" -> "Office Supplies"
func FormatLabel(key string) string {
	if key == "" {
		return ""
	}

	var b strings.Builder
	for i, r := range key {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
