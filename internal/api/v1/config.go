package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetConfig 获取全部应用状态配置
// GET /api/config
func (h *Handler) GetConfig(c *gin.Context) {
	config, err := h.store.GetAllConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, config)
}

// UpdateConfig 批量写入配置键值
// PATCH /api/config
func (h *Handler) UpdateConfig(c *gin.Context) {
	var updates map[string]string
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	for key, value := range updates {
		if err := h.store.SetConfig(key, value); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"updated": len(updates)})
}
