package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"shipagency/internal/calculator"
)

// GetCalculations 计算方案并把合并结果快照写回存储
// GET /api/scenarios/:id/calculations
func (h *Handler) GetCalculations(c *gin.Context) {
	sc, err := h.store.GetScenario(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	result := calculator.CalculateScenario(sc)

	// 合并结果是派生数据，但要落库供方案列表直接展示
	sc.UpdateConsolidated(result.ConsolidatedPatch())
	if err := h.store.SaveScenario(sc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateAIEnabledScenario 由传统方案派生 AI 增效方案并保存
// POST /api/scenarios/:id/ai-enabled
func (h *Handler) CreateAIEnabledScenario(c *gin.Context) {
	sc, err := h.store.GetScenario(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ai, err := calculator.ApplyAIReductions(sc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.SaveScenario(ai); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ai)
}

// CompareScenarios 双方案对比
// GET /api/compare?from=<id>&to=<id>
func (h *Handler) CompareScenarios(c *gin.Context) {
	fromID := c.Query("from")
	toID := c.Query("to")
	if fromID == "" || toID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query params 'from' and 'to' are required"})
		return
	}

	from, err := h.store.GetScenario(fromID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	to, err := h.store.GetScenario(toID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, calculator.CompareScenarios(from, to))
}

// GetFloatIncome 按现金周期计算浮存收益
// GET /api/scenarios/:id/float-income?cycleDays=71&interestRate=0.02
func (h *Handler) GetFloatIncome(c *gin.Context) {
	sc, err := h.store.GetScenario(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	cycleDays := parseIntWithDefault(c.Query("cycleDays"), 0)
	interestRate := parseFloatWithDefault(c.Query("interestRate"), 0)

	c.JSON(http.StatusOK, calculator.CalculateFloatIncome(sc, cycleDays, interestRate))
}

// GetCycleSensitivity 现金周期敏感性分析
// GET /api/scenarios/:id/cycle-sensitivity?interestRate=0.02
func (h *Handler) GetCycleSensitivity(c *gin.Context) {
	sc, err := h.store.GetScenario(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	interestRate := parseFloatWithDefault(c.Query("interestRate"), 0)
	fundsFlow := calculator.CalculateScenario(sc).Consolidated.TotalFundsFlow

	c.JSON(http.StatusOK, calculator.CalculateCycleTimeSensitivity(fundsFlow, interestRate))
}

func parseIntWithDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func parseFloatWithDefault(s string, def float64) float64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}
