package v1

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"shipagency/internal/model"
)

func TestLocationLifecycleEndpoints(t *testing.T) {
	router, st := newTestRouter(t)
	sc := createScenario(t, router, gin.H{"name": "Ops"})

	// 追加机构
	w := doRequest(t, router, http.MethodPost, "/api/scenarios/"+sc.ID+"/locations", gin.H{
		"name": "Savannah", "type": "port-office", "state": "GA",
		"portStaff": []gin.H{
			{"position": "Ship Agent", "salary": 107500, "count": 2},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add location: status %d body %s", w.Code, w.Body.String())
	}
	var loc model.Location
	decodeBody(t, w, &loc)
	if loc.ID == "" || loc.Name != "Savannah" {
		t.Fatalf("追加结果不符: %+v", loc)
	}

	// 覆盖机构，id 以路径为准
	w = doRequest(t, router, http.MethodPut,
		"/api/scenarios/"+sc.ID+"/locations/"+loc.ID, gin.H{
			"id": "attempted-id-change", "name": "Savannah East", "state": "GA",
		})
	if w.Code != http.StatusOK {
		t.Fatalf("update location: status %d body %s", w.Code, w.Body.String())
	}
	var updated model.Location
	decodeBody(t, w, &updated)
	if updated.ID != loc.ID {
		t.Fatalf("覆盖不应改变机构 id: %q", updated.ID)
	}
	if updated.Name != "Savannah East" {
		t.Fatalf("覆盖结果不符: %+v", updated)
	}

	// 克隆机构
	w = doRequest(t, router, http.MethodPost,
		"/api/scenarios/"+sc.ID+"/locations/"+loc.ID+"/clone", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("clone location: status %d", w.Code)
	}
	var clone model.Location
	decodeBody(t, w, &clone)
	if clone.ID == loc.ID || clone.Name != "Savannah East (Copy)" {
		t.Fatalf("克隆结果不符: %+v", clone)
	}

	// 变更已持久化
	stored, err := st.GetScenario(sc.ID)
	if err != nil {
		t.Fatalf("get stored scenario: %v", err)
	}
	if len(stored.Locations) != 2 {
		t.Fatalf("应持久化 2 个机构，实际 %d", len(stored.Locations))
	}

	// 移除机构
	w = doRequest(t, router, http.MethodDelete,
		"/api/scenarios/"+sc.ID+"/locations/"+clone.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("remove location: status %d", w.Code)
	}
	stored, err = st.GetScenario(sc.ID)
	if err != nil {
		t.Fatalf("get stored scenario: %v", err)
	}
	if len(stored.Locations) != 1 || stored.Locations[0].ID != loc.ID {
		t.Fatalf("移除后存储不符: %+v", stored.Locations)
	}

	// 机构不存在
	w = doRequest(t, router, http.MethodDelete,
		"/api/scenarios/"+sc.ID+"/locations/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("不存在的机构应 404，实际 %d", w.Code)
	}
}

func TestLocationAnalysisEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)
	sc := createScenario(t, router, gin.H{
		"name": "Analysis",
		"locations": []gin.H{
			{
				"name": "Savannah", "type": "port-office",
				"portStaff": []gin.H{
					{"position": "Ship Agent", "salary": 107500, "count": 2},
					{"position": "Port Ops Manager", "salary": 142500},
				},
				"revenue": gin.H{
					"shipTypes": []gin.H{
						{"type": "Grain", "calls": 720, "feePerCall": 12000},
					},
				},
			},
		},
	})
	locID := sc.Locations[0].ID
	base := "/api/scenarios/" + sc.ID + "/locations/" + locID

	// 工作量分析
	w := doRequest(t, router, http.MethodGet, base+"/workload", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("workload: status %d", w.Code)
	}
	var workload model.Workload
	decodeBody(t, w, &workload)
	if workload.TotalCalls != 720 || workload.AgentCount != 2 {
		t.Fatalf("工作量分析不符: %+v", workload)
	}
	// 60/月 ÷ 2.5 产能 = 24
	if workload.WorkloadStatus != model.WorkloadOptimal {
		t.Fatalf("状态应为 Optimal，实际 %q", workload.WorkloadStatus)
	}

	// 组织架构
	w = doRequest(t, router, http.MethodGet, base+"/orgchart", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("orgchart: status %d", w.Code)
	}
	var chart model.OrgChart
	decodeBody(t, w, &chart)
	if chart.Summary.TotalHeadcount != 3 {
		t.Fatalf("架构图人数不符: %+v", chart.Summary)
	}

	// 推荐面积
	w = doRequest(t, router, http.MethodGet, base+"/recommended-sqft", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("recommended sqft: status %d", w.Code)
	}
	var sqft struct {
		Recommended model.RecommendedSqft `json:"recommended"`
		Current     model.OfficeSpace     `json:"current"`
		RentRange   model.RentRange       `json:"rentRange"`
	}
	decodeBody(t, w, &sqft)
	// 2 × 75 + 1 × 100 = 250 工位，×1.4 = 350
	if sqft.Recommended.TotalSqft != 350 {
		t.Fatalf("推荐面积应为 350，实际 %d", sqft.Recommended.TotalSqft)
	}
	if sqft.Current.Sqft != 2500 {
		t.Fatalf("当前面积应为默认 2500，实际 %v", sqft.Current.Sqft)
	}
	if sqft.RentRange.Typical != 20 {
		t.Fatalf("默认乙级典型租金应为 20，实际 %v", sqft.RentRange.Typical)
	}
}

func TestApplyBenchmarkOverheadEndpoint(t *testing.T) {
	router, st := newTestRouter(t)
	sc := createScenario(t, router, gin.H{
		"name": "Benchmark",
		"locations": []gin.H{
			{
				"name": "HQ", "type": "hq",
				"corporateStaff": []gin.H{
					{"position": "Controller", "salary": 165000, "count": 12},
				},
			},
		},
	})
	locID := sc.Locations[0].ID

	w := doRequest(t, router, http.MethodPost,
		"/api/scenarios/"+sc.ID+"/locations/"+locID+"/benchmark-overhead", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("benchmark overhead: status %d body %s", w.Code, w.Body.String())
	}

	// 12 人 → 中规模档，写回后应已持久化
	stored, err := st.GetScenario(sc.ID)
	if err != nil {
		t.Fatalf("get stored scenario: %v", err)
	}
	cat := stored.Locations[0].Overhead.Categories
	if cat["technology"]["erpNetSuite"] != 50000 {
		t.Fatalf("中规模档 ERP 预算应落库为 50000，实际 %v", cat["technology"]["erpNetSuite"])
	}
	if cat["professionalServices"]["accounting"] != 25000 {
		t.Fatalf("专业服务基准未落库: %+v", cat["professionalServices"])
	}
}
