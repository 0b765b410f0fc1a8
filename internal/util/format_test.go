package util

import "testing"

func TestFormatPercent(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{0.1234, "+12.34%"},
		{-0.05, "-5.00%"},
		{0, "0.00%"},
	}
	for _, c := range cases {
		if got := FormatPercent(c.value); got != c.want {
			t.Fatalf("FormatPercent(%v) = %q，期望 %q", c.value, got, c.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(1234.567); got != "1234.57" {
		t.Fatalf("FormatAmount(1234.567) = %q", got)
	}
	if got := FormatAmount(0); got != "0.00" {
		t.Fatalf("FormatAmount(0) = %q", got)
	}
}

func TestFormatLabel(t *testing.T) {
	cases := []struct {
		key  string
		want string
	}{
		{"officeSupplies", "Office Supplies"},
		{"erpNetSuite", "Erp Net Suite"},
		{"insurance", "Insurance"},
		{"", ""},
	}
	for _, c := range cases {
		if got := FormatLabel(c.key); got != c.want {
			t.Fatalf("FormatLabel(%q) = %q，期望 %q", c.key, got, c.want)
		}
	}
}
