package dto

// TemplateInfo 系统模板目录项（描述性元数据，不影响替换行为）
type TemplateInfo struct {
	TemplateKey  string   `json:"template_key"`
	TemplateName string   `json:"template_name"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Parameters   []string `json:"parameters"`
	Content      string   `json:"content"`
}

// RenderTemplateReq 模板渲染请求
type RenderTemplateReq struct {
	TemplateKey string         `json:"template_key" binding:"required"`
	Params      map[string]any `json:"params"`
}

// RenderTemplateResp 渲染结果
type RenderTemplateResp struct {
	TemplateKey string `json:"template_key"`
	Prompt      string `json:"prompt"`
}
