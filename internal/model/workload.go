package model

import "math"

// WorkloadStatus 工作量状态（固定阈值分级）
type WorkloadStatus string

const (
	WorkloadNone          WorkloadStatus = "No workload"
	WorkloadUnderutilized WorkloadStatus = "Underutilized"
	WorkloadOptimal       WorkloadStatus = "Optimal"
	WorkloadHigh          WorkloadStatus = "High"
	WorkloadOverworked    WorkloadStatus = "Overworked"
)

// workloadBenchmarkRange 行业经验区间，随结果原样返回
const workloadBenchmarkRange = "20-30 calls/agent/month"

// Workload 港口作业工作量分析结果
// 数值字段已按展示口径取整（产能 2 位小数、人均挂靠 1 位小数、
// 月均挂靠取整），后续计算不应以这些字段为准。
type Workload struct {
	TotalCalls         int            `json:"totalCalls"`
	MonthlyCallsAvg    int            `json:"monthlyCallsAvg"`
	AgentCount         int            `json:"agentCount"`
	OpsManagerCount    int            `json:"opsManagerCount"`
	BoardingAgentCount int            `json:"boardingAgentCount"`
	TotalAgentCapacity float64        `json:"totalAgentCapacity"`
	CallsPerAgentMonth float64        `json:"callsPerAgentMonth"`
	WorkloadStatus     WorkloadStatus `json:"workloadStatus"`
	BenchmarkRange     string         `json:"benchmarkRange"`
}

// CalculateWorkload 港口人力产能与利用率分析
// 船代按 100% 产能计，作业经理按 50% 计（管理职责占用），
// 登轮员/跑腿员只计人数不计产能；仅统计启用的员工条目。
func (l *Location) CalculateWorkload() Workload {
	totalCalls := l.GetTotalCalls()
	monthlyCallsAvg := float64(totalCalls) / 12

	var totalCapacity float64
	var agentCount, opsManagerCount, boardingAgentCount int

	for _, s := range l.PortStaff {
		if !s.Enabled {
			continue
		}
		switch ClassifyAgentRole(s.Position) {
		case AgentRoleShipAgent:
			agentCount += s.Count
			totalCapacity += float64(s.Count) * AgentRoleShipAgent.CapacityFactor()
		case AgentRoleOpsManager:
			opsManagerCount += s.Count
			totalCapacity += float64(s.Count) * AgentRoleOpsManager.CapacityFactor()
		case AgentRoleBoardingAgent:
			boardingAgentCount += s.Count
		}
	}

	callsPerAgentMonth := 0.0
	if totalCapacity > 0 {
		callsPerAgentMonth = monthlyCallsAvg / totalCapacity
	}

	var status WorkloadStatus
	switch {
	case callsPerAgentMonth == 0:
		status = WorkloadNone
	case callsPerAgentMonth < 20:
		status = WorkloadUnderutilized
	case callsPerAgentMonth <= 30:
		status = WorkloadOptimal
	case callsPerAgentMonth <= 40:
		status = WorkloadHigh
	default:
		status = WorkloadOverworked
	}

	return Workload{
		TotalCalls:         totalCalls,
		MonthlyCallsAvg:    int(math.Round(monthlyCallsAvg)),
		AgentCount:         agentCount,
		OpsManagerCount:    opsManagerCount,
		BoardingAgentCount: boardingAgentCount,
		TotalAgentCapacity: math.Round(totalCapacity*100) / 100,
		CallsPerAgentMonth: math.Round(callsPerAgentMonth*10) / 10,
		WorkloadStatus:     status,
		BenchmarkRange:     workloadBenchmarkRange,
	}
}
