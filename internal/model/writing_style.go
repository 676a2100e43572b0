package model

// WritingStyle 用户自定义写作风格（用户级资源，不挂在项目下）
type WritingStyle struct {
	BaseModel
	UserID uint `gorm:"index;not null" json:"user_id"`

	Name string `gorm:"size:100;not null" json:"name"`

	// custom / preset
	StyleType string `gorm:"size:20" json:"style_type"`

	// 基于哪个内置预设改的（可空）
	PresetID string `gorm:"size:50" json:"preset_id"`

	Description   string `gorm:"size:255" json:"description"`
	PromptContent string `gorm:"type:text" json:"prompt_content"`

	OrderIndex int `gorm:"default:0" json:"order_index"`
}
