package handler

import (
	"errors"
	"net/http"
	"strconv"

	"NovelForge/internal/dto"
	"NovelForge/internal/service"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	svc *service.ImportExportService
}

func NewProjectHandler(svc *service.ImportExportService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// Export 导出项目为 JSON 文档
// GET /api/v1/projects/:id/export?include_history=false&include_styles=true
func (h *ProjectHandler) Export(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的项目ID"})
		return
	}

	// 历史记录默认不导出，风格默认导出
	includeHistory := c.Query("include_history") == "true"
	includeStyles := c.DefaultQuery("include_styles", "true") != "false"

	doc, err := h.svc.ExportProject(c.Request.Context(), uint(id), includeHistory, includeStyles)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": doc})
}

// ValidateImport 校验导入文档（不落库）
// POST /api/v1/projects/import/validate
func (h *ProjectHandler) ValidateImport(c *gin.Context) {
	var doc dto.ProjectExportData
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := service.ValidateImportData(&doc)
	c.JSON(http.StatusOK, gin.H{"data": result})
}

// Import 导入项目（单事务，失败全部回滚）
// POST /api/v1/projects/import
func (h *ProjectHandler) Import(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未登录"})
		return
	}

	var doc dto.ProjectExportData
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.svc.ImportProject(c.Request.Context(), &doc, userID)
	if !result.Success {
		c.JSON(http.StatusBadRequest, gin.H{"data": result})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}

// currentUserID 从请求头取当前用户（网关完成认证后注入）
func currentUserID(c *gin.Context) uint {
	idStr := c.GetHeader("X-User-Id")
	if idStr == "" {
		return 0
	}
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0
	}
	return uint(id)
}
