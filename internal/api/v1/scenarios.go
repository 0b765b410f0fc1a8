package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"shipagency/internal/model"
	"shipagency/internal/store"
)

// ListScenarios 方案列表（按最后修改时间倒序）
// GET /api/scenarios
func (h *Handler) ListScenarios(c *gin.Context) {
	metas, err := h.store.ListScenarios()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if metas == nil {
		metas = []store.ScenarioMeta{}
	}
	c.JSON(http.StatusOK, gin.H{"items": metas, "total": len(metas)})
}

type createScenarioRequest struct {
	model.ScenarioConfig
	// SeedPredefined 按预置机构清单（休斯顿总部 + 12 港口）初始化机构
	SeedPredefined bool `json:"seedPredefined"`
}

// CreateScenario 创建新方案
// POST /api/scenarios
func (h *Handler) CreateScenario(c *gin.Context) {
	var req createScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	if req.SeedPredefined && len(req.Locations) == 0 {
		req.Locations = predefinedLocationConfigs()
	}

	sc := model.NewScenario(req.ScenarioConfig)
	if err := h.store.SaveScenario(sc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// 第一个方案自动设为当前方案
	if current, _ := h.store.GetCurrentScenarioID(); current == "" {
		_ = h.store.SetCurrentScenarioID(sc.ID)
	}

	c.JSON(http.StatusCreated, sc)
}

// predefinedLocationConfigs 预置机构转构造配置，船型费率按默认表初始化（挂靠量为零）
func predefinedLocationConfigs() []model.LocationConfig {
	shipTypes := make([]model.ShipTypeInput, 0, len(model.DefaultShipTypes))
	for _, st := range model.DefaultShipTypes {
		shipTypes = append(shipTypes, model.ShipTypeInput{
			Type:         st.Type,
			FeePerCall:   st.FeePerCall,
			FundsPerCall: st.FundsPerCall,
		})
	}

	cfgs := make([]model.LocationConfig, 0, len(model.PredefinedLocations))
	for _, pl := range model.PredefinedLocations {
		cfgs = append(cfgs, model.LocationConfig{
			ID:      pl.ID,
			Name:    pl.Name,
			Type:    pl.Type,
			State:   pl.State,
			Revenue: &model.RevenueConfig{ShipTypes: shipTypes},
		})
	}
	return cfgs
}

// GetScenario 读取方案
// GET /api/scenarios/:id
func (h *Handler) GetScenario(c *gin.Context) {
	sc, err := h.store.GetScenario(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sc)
}

// GetCurrentScenario 读取当前工作方案
// GET /api/scenarios/current
func (h *Handler) GetCurrentScenario(c *gin.Context) {
	id, err := h.store.GetCurrentScenarioID()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if id == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no current scenario selected"})
		return
	}

	sc, err := h.store.GetScenario(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sc)
}

// UpdateScenario 整体覆盖方案（id 以路径为准）
// PUT /api/scenarios/:id
func (h *Handler) UpdateScenario(c *gin.Context) {
	id := c.Param("id")

	existing, err := h.store.GetScenario(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var cfg model.ScenarioConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	cfg.ID = id
	if cfg.Created == "" {
		cfg.Created = existing.Created
	}

	sc := model.NewScenario(cfg)
	sc.UpdateLastModified()

	if err := h.store.SaveScenario(sc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sc)
}

// DeleteScenario 删除方案
// DELETE /api/scenarios/:id
func (h *Handler) DeleteScenario(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.DeleteScenario(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	// 删除的是当前方案时清空选择
	if current, _ := h.store.GetCurrentScenarioID(); current == id {
		_ = h.store.SetCurrentScenarioID("")
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// SelectScenario 设为当前工作方案
// POST /api/scenarios/:id/select
func (h *Handler) SelectScenario(c *gin.Context) {
	id := c.Param("id")
	exists, err := h.store.ScenarioExists(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "scenario not found: " + id})
		return
	}

	if err := h.store.SetCurrentScenarioID(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"currentScenarioId": id})
}

type cloneScenarioRequest struct {
	Name string `json:"name"`
}

// CloneScenario 克隆方案（合并结果与企业级间接费用重置）
// POST /api/scenarios/:id/clone
func (h *Handler) CloneScenario(c *gin.Context) {
	sc, err := h.store.GetScenario(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var req cloneScenarioRequest
	_ = c.ShouldBindJSON(&req)

	clone, err := sc.Clone(req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.SaveScenario(clone); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, clone)
}
