package model

// PromptTemplate 用户对系统提示词模板的覆盖
// 查找键为 (user_id, template_key)，is_active=false 时回落到系统默认模板
type PromptTemplate struct {
	BaseModel
	UserID uint `gorm:"index;not null" json:"user_id"`

	TemplateKey  string `gorm:"size:100;not null;index" json:"template_key"`
	TemplateName string `gorm:"size:100" json:"template_name"`

	TemplateContent string `gorm:"type:text;not null" json:"template_content"`

	IsActive bool `gorm:"default:true;index" json:"is_active"`
}
