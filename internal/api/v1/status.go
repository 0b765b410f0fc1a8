package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"shipagency/internal/model"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Initialized       bool   `json:"initialized"`       // 是否已有方案数据
	ScenarioCount     int    `json:"scenarioCount"`     // 方案总数
	CurrentScenarioID string `json:"currentScenarioId"` // 当前工作方案 id
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	metas, err := h.store.ListScenarios()
	if err != nil {
		c.JSON(http.StatusOK, StatusResponse{Initialized: false})
		return
	}

	currentID, err := h.store.GetCurrentScenarioID()
	if err != nil {
		currentID = ""
	}

	c.JSON(http.StatusOK, StatusResponse{
		Initialized:       len(metas) > 0,
		ScenarioCount:     len(metas),
		CurrentScenarioID: currentID,
	})
}

// DefaultsResponse 预置默认值响应
type DefaultsResponse struct {
	ShipTypes           []model.ShipTypeDefault    `json:"shipTypes"`
	CorporatePositions  []model.PositionDefault    `json:"corporatePositions"`
	PortPositions       []model.PositionDefault    `json:"portPositions"`
	PredefinedLocations []model.PredefinedLocation `json:"predefinedLocations"`
}

// GetDefaults 获取行业默认值（前端建表单用）
// GET /api/defaults
func (h *Handler) GetDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, DefaultsResponse{
		ShipTypes:           model.DefaultShipTypes,
		CorporatePositions:  model.DefaultCorporatePositions,
		PortPositions:       model.DefaultPortPositions,
		PredefinedLocations: model.PredefinedLocations,
	})
}
