package model

// Project 小说项目
type Project struct {
	BaseModel
	UserID uint `gorm:"index;not null" json:"user_id"`

	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Theme       string `gorm:"size:255" json:"theme"`
	Genre       string `gorm:"size:100" json:"genre"`

	// 字数目标与进度
	TargetWords  int `json:"target_words"`
	CurrentWords int `gorm:"default:0" json:"current_words"`

	// 状态机: planning -> writing -> completed
	Status string `gorm:"size:50;default:'planning'" json:"status"`

	// 世界观设定
	WorldTimePeriod string `gorm:"size:255" json:"world_time_period"`
	WorldLocation   string `gorm:"size:255" json:"world_location"`
	WorldAtmosphere string `gorm:"size:255" json:"world_atmosphere"`
	WorldRules      string `gorm:"type:text" json:"world_rules"`

	ChapterCount         int    `json:"chapter_count"`
	NarrativePerspective string `gorm:"size:50" json:"narrative_perspective"`
	CharacterCount       int    `json:"character_count"`

	// 大纲模式: one-to-one / one-to-many
	OutlineMode string `gorm:"size:20;default:'one-to-many'" json:"outline_mode"`

	// 创建向导进度（导入的项目直接标记完成）
	WizardStep   int    `gorm:"default:0" json:"wizard_step"`
	WizardStatus string `gorm:"size:20;default:'pending'" json:"wizard_status"`

	// 关联
	Chapters   []Chapter   `gorm:"foreignKey:ProjectID" json:"chapters,omitempty"`
	Characters []Character `gorm:"foreignKey:ProjectID" json:"characters,omitempty"`
	Outlines   []Outline   `gorm:"foreignKey:ProjectID" json:"outlines,omitempty"`
}
