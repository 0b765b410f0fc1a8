package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"shipagency/internal/model"
)

// loadScenarioLocation 读取方案与机构，任一不存在时写好错误响应并返回 nil
func (h *Handler) loadScenarioLocation(c *gin.Context) (*model.Scenario, *model.Location) {
	sc, err := h.store.GetScenario(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return nil, nil
	}

	loc := sc.GetLocation(c.Param("locationId"))
	if loc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "location not found: " + c.Param("locationId")})
		return nil, nil
	}
	return sc, loc
}

// AddLocation 向方案追加机构
// POST /api/scenarios/:id/locations
func (h *Handler) AddLocation(c *gin.Context) {
	sc, err := h.store.GetScenario(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var cfg model.LocationConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	loc := model.NewLocation(cfg)
	sc.AddLocation(loc)

	if err := h.store.SaveScenario(sc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, loc)
}

// UpdateLocation 整体覆盖机构（id 以路径为准）
// PUT /api/scenarios/:id/locations/:locationId
func (h *Handler) UpdateLocation(c *gin.Context) {
	sc, loc := h.loadScenarioLocation(c)
	if sc == nil {
		return
	}

	var cfg model.LocationConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	cfg.ID = loc.ID
	updated := model.NewLocation(cfg)
	*loc = *updated
	sc.UpdateLastModified()

	if err := h.store.SaveScenario(sc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, loc)
}

// RemoveLocation 移除机构
// DELETE /api/scenarios/:id/locations/:locationId
func (h *Handler) RemoveLocation(c *gin.Context) {
	sc, loc := h.loadScenarioLocation(c)
	if sc == nil {
		return
	}

	sc.RemoveLocation(loc.ID)
	if err := h.store.SaveScenario(sc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": loc.ID})
}

// CloneLocation 克隆机构（新 id，名称加 Copy 后缀）
// POST /api/scenarios/:id/locations/:locationId/clone
func (h *Handler) CloneLocation(c *gin.Context) {
	sc, loc := h.loadScenarioLocation(c)
	if sc == nil {
		return
	}

	clone := loc.Clone()
	sc.AddLocation(clone)

	if err := h.store.SaveScenario(sc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, clone)
}

// GetWorkload 机构工作负荷分析
// GET /api/scenarios/:id/locations/:locationId/workload
func (h *Handler) GetWorkload(c *gin.Context) {
	sc, loc := h.loadScenarioLocation(c)
	if sc == nil {
		return
	}
	c.JSON(http.StatusOK, loc.CalculateWorkload())
}

// GetOrgChart 机构组织架构
// GET /api/scenarios/:id/locations/:locationId/orgchart
func (h *Handler) GetOrgChart(c *gin.Context) {
	sc, loc := h.loadScenarioLocation(c)
	if sc == nil {
		return
	}
	c.JSON(http.StatusOK, loc.BuildOrgChart())
}

// GetRecommendedSqft 推荐办公面积
// GET /api/scenarios/:id/locations/:locationId/recommended-sqft
func (h *Handler) GetRecommendedSqft(c *gin.Context) {
	sc, loc := h.loadScenarioLocation(c)
	if sc == nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"recommended": loc.CalculateRecommendedSqft(),
		"current":     loc.Overhead.OfficeSpace,
		"rentRange":   loc.GetTypicalRentPerSqft(""),
	})
}

// ApplyBenchmarkOverhead 按机构规模套用行业基准管理费用
// POST /api/scenarios/:id/locations/:locationId/benchmark-overhead
func (h *Handler) ApplyBenchmarkOverhead(c *gin.Context) {
	sc, loc := h.loadScenarioLocation(c)
	if sc == nil {
		return
	}

	loc.ApplyBenchmarkOverhead()
	sc.UpdateLastModified()

	if err := h.store.SaveScenario(sc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, loc)
}
