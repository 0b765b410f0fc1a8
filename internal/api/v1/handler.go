package v1

import (
	"github.com/gin-gonic/gin"
	"shipagency/internal/exporter"
	"shipagency/internal/store"
)

// Handler V1 API 处理器
type Handler struct {
	store      *store.Store
	exporter   *exporter.Exporter
	exportsDir string
	downloads  *exportDownloadStore
}

// NewHandler 创建 V1 API 处理器
func NewHandler(store *store.Store, exportsDir string) *Handler {
	return &Handler{
		store:      store,
		exporter:   exporter.NewExporter(),
		exportsDir: exportsDir,
		downloads:  newExportDownloadStore(),
	}
}

// RegisterRoutes 注册 V1 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)
	// 预置默认值（船型费率 / 岗位表 / 预置机构）
	router.GET("/defaults", h.GetDefaults)

	// 方案管理
	router.GET("/scenarios", h.ListScenarios)
	router.POST("/scenarios", h.CreateScenario)
	router.GET("/scenarios/current", h.GetCurrentScenario)
	router.GET("/scenarios/:id", h.GetScenario)
	router.PUT("/scenarios/:id", h.UpdateScenario)
	router.DELETE("/scenarios/:id", h.DeleteScenario)
	router.POST("/scenarios/:id/select", h.SelectScenario)
	router.POST("/scenarios/:id/clone", h.CloneScenario)

	// 计算与分析
	router.GET("/scenarios/:id/calculations", h.GetCalculations)
	router.POST("/scenarios/:id/ai-enabled", h.CreateAIEnabledScenario)
	router.GET("/scenarios/:id/float-income", h.GetFloatIncome)
	router.GET("/scenarios/:id/cycle-sensitivity", h.GetCycleSensitivity)
	router.GET("/compare", h.CompareScenarios)

	// 机构操作
	router.POST("/scenarios/:id/locations", h.AddLocation)
	router.PUT("/scenarios/:id/locations/:locationId", h.UpdateLocation)
	router.DELETE("/scenarios/:id/locations/:locationId", h.RemoveLocation)
	router.POST("/scenarios/:id/locations/:locationId/clone", h.CloneLocation)
	router.GET("/scenarios/:id/locations/:locationId/workload", h.GetWorkload)
	router.GET("/scenarios/:id/locations/:locationId/orgchart", h.GetOrgChart)
	router.GET("/scenarios/:id/locations/:locationId/recommended-sqft", h.GetRecommendedSqft)
	router.POST("/scenarios/:id/locations/:locationId/benchmark-overhead", h.ApplyBenchmarkOverhead)

	// 配置管理
	router.GET("/config", h.GetConfig)
	router.PATCH("/config", h.UpdateConfig)

	// 数据导出
	router.POST("/scenarios/:id/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)
	router.GET("/scenarios/:id/export/csv", h.ExportCSV)
}
