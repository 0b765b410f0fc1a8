package model

import "testing"

func newWorkloadLocation(calls int, port []StaffInput) *Location {
	loc := NewLocation(LocationConfig{PortStaff: port})
	loc.AddShipType("Grain", calls, 12000, 135000)
	return loc
}

func TestCalculateWorkload(t *testing.T) {
	loc := newWorkloadLocation(720, []StaffInput{
		{Position: "Ship Agent", Salary: 107500, Count: 2},
		{Position: "Port Ops Manager", Salary: 142500, Count: 1},
		{Position: "Boarding Agent / Runner", Salary: 25, Count: 3},
		{Position: "Ops Admin Clerk", Salary: 22, Count: 1}, // 不计入产能
	})

	w := loc.CalculateWorkload()
	if w.TotalCalls != 720 {
		t.Fatalf("年挂靠量应为 720，实际 %d", w.TotalCalls)
	}
	if w.MonthlyCallsAvg != 60 {
		t.Fatalf("月均挂靠应为 60，实际 %d", w.MonthlyCallsAvg)
	}
	if w.AgentCount != 2 || w.OpsManagerCount != 1 || w.BoardingAgentCount != 3 {
		t.Fatalf("角色计数不符: %+v", w)
	}
	// 2 × 1.0 + 1 × 0.5
	if w.TotalAgentCapacity != 2.5 {
		t.Fatalf("总产能应为 2.5，实际 %v", w.TotalAgentCapacity)
	}
	// 60 / 2.5 = 24，落在 20-30 的最优区间
	if w.CallsPerAgentMonth != 24 {
		t.Fatalf("人均月挂靠应为 24，实际 %v", w.CallsPerAgentMonth)
	}
	if w.WorkloadStatus != WorkloadOptimal {
		t.Fatalf("状态应为 Optimal，实际 %q", w.WorkloadStatus)
	}
	if w.BenchmarkRange != "20-30 calls/agent/month" {
		t.Fatalf("基准区间不符: %q", w.BenchmarkRange)
	}
}

func TestCalculateWorkloadStatusThresholds(t *testing.T) {
	agent := []StaffInput{{Position: "Ship Agent", Salary: 107500, Count: 1}}
	cases := []struct {
		calls int
		want  WorkloadStatus
	}{
		{0, WorkloadNone},
		{120, WorkloadUnderutilized}, // 10/月
		{360, WorkloadOptimal},       // 30/月（上沿含）
		{420, WorkloadHigh},          // 35/月
		{600, WorkloadOverworked},    // 50/月
	}
	for _, c := range cases {
		w := newWorkloadLocation(c.calls, agent).CalculateWorkload()
		if w.WorkloadStatus != c.want {
			t.Fatalf("%d 次/年的状态应为 %q，实际 %q", c.calls, c.want, w.WorkloadStatus)
		}
	}
}

func TestCalculateWorkloadNoCapacity(t *testing.T) {
	// 只有登轮员：有挂靠量但产能为 0，不做除零
	loc := newWorkloadLocation(240, []StaffInput{
		{Position: "Boarding Agent / Runner", Salary: 25, Count: 2},
	})
	w := loc.CalculateWorkload()
	if w.TotalAgentCapacity != 0 || w.CallsPerAgentMonth != 0 {
		t.Fatalf("无产能时人均挂靠应为 0: %+v", w)
	}
	if w.WorkloadStatus != WorkloadNone {
		t.Fatalf("无产能时状态应为 No workload，实际 %q", w.WorkloadStatus)
	}
}

func TestCalculateWorkloadSkipsDisabled(t *testing.T) {
	disabled := false
	loc := newWorkloadLocation(240, []StaffInput{
		{Position: "Ship Agent", Salary: 107500, Count: 1},
		{Position: "Ship Agent", Salary: 107500, Count: 5, Enabled: &disabled},
	})
	w := loc.CalculateWorkload()
	if w.AgentCount != 1 || w.TotalAgentCapacity != 1 {
		t.Fatalf("停用条目不应计入产能: %+v", w)
	}
}
