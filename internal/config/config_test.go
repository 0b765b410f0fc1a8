package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != 20371 {
		t.Fatalf("默认端口应为 20371，实际 %d", cfg.Server.Port)
	}
	if cfg.Server.DevMode {
		t.Fatalf("默认不应为开发模式")
	}
	if cfg.Data.DataDir != "data" || cfg.Data.DBFile != "shipagency.db" {
		t.Fatalf("默认数据配置不符: %+v", cfg.Data)
	}
	if cfg.Business.InterestRate != 0.02 || cfg.Business.DefaultCycleDays != 71 {
		t.Fatalf("默认业务配置不符: %+v", cfg.Business)
	}
}

func TestIsPortSpecifiedInToml(t *testing.T) {
	cases := []struct {
		name string
		toml string
		want bool
	}{
		{"指定端口", "[server]\nport = 8080\n", true},
		{"仅开发模式", "[server]\ndev_mode = true\n", false},
		{"无 server 段", "[data]\ndata_dir = \"data\"\n", false},
		{"空文件", "", false},
		{"非法 TOML", "[[[", false},
	}
	for _, c := range cases {
		if got := isPortSpecifiedInToml([]byte(c.toml)); got != c.want {
			t.Fatalf("%s: isPortSpecifiedInToml = %v，期望 %v", c.name, got, c.want)
		}
	}
}

func TestDBPath(t *testing.T) {
	cfg := DefaultConfig()
	got := DBPath(cfg, filepath.Join("some", "dir"))
	want := filepath.Join("some", "dir", "shipagency.db")
	if got != want {
		t.Fatalf("DBPath = %q，期望 %q", got, want)
	}
}
