package v1

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"shipagency/internal/exporter"
)

// 导出下载链接的有效期
const exportDownloadTTL = 10 * time.Minute

// Export 导出方案工作簿，返回一次性下载 token
// POST /api/scenarios/:id/export
func (h *Handler) Export(c *gin.Context) {
	sc, err := h.store.GetScenario(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	f, err := h.exporter.Export(sc, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	if err := os.MkdirAll(h.exportsDir, 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	fileName := exporter.ExportFileName(sc)
	filePath := filepath.Join(h.exportsDir, fileName)
	if err := f.SaveAs(filePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token := h.downloads.put(filePath, sc.ID, exportDownloadTTL)
	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"fileName": fileName,
		"url":      "/api/export/download/" + token,
	})
}

// DownloadExport 按 token 下载导出文件（token 一次有效）
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")
	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "download token not found or expired"})
		return
	}
	h.downloads.delete(token)

	c.FileAttachment(item.filePath, filepath.Base(item.filePath))
}

// ExportCSV 导出机构一览 CSV（直接写响应流）
// GET /api/scenarios/:id/export/csv
func (h *Handler) ExportCSV(c *gin.Context) {
	sc, err := h.store.GetScenario(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+exporter.ExportCSVFileName(sc)+`"`)

	if err := h.exporter.ExportCSV(sc, c.Writer); err != nil {
		// 表头可能已写出，只能记录失败
		c.Status(http.StatusInternalServerError)
	}
}
