package handler

import (
	"net/http"

	"NovelForge/internal/dto"
	"NovelForge/internal/service"

	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	svc *service.PromptService
}

func NewTemplateHandler(svc *service.PromptService) *TemplateHandler {
	return &TemplateHandler{svc: svc}
}

// ListSystem 系统模板目录
// GET /api/v1/templates/system
func (h *TemplateHandler) ListSystem(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.svc.AllSystemTemplates()})
}

// GetSystem 单个系统模板
// GET /api/v1/templates/system/:key
func (h *TemplateHandler) GetSystem(c *gin.Context) {
	key := c.Param("key")

	info, err := h.svc.SystemTemplate(key)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": info})
}

// Render 渲染模板（含用户覆盖与参数替换）
// POST /api/v1/templates/render
func (h *TemplateHandler) Render(c *gin.Context) {
	var req dto.RenderTemplateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := currentUserID(c)

	prompt, err := h.svc.RenderTemplate(c.Request.Context(), req.TemplateKey, userID, req.Params)
	if err != nil {
		// 模板不存在或缺参数都属于调用方错误
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.RenderTemplateResp{
		TemplateKey: req.TemplateKey,
		Prompt:      prompt,
	}})
}
