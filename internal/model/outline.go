package model

// Outline 章节大纲节点
type Outline struct {
	BaseModel
	ProjectID uint `gorm:"index;not null" json:"project_id"`

	Title   string `gorm:"size:255;not null" json:"title"`
	Content string `gorm:"type:text" json:"content"`

	// 三幕/起承转合等结构标记
	Structure string `gorm:"size:100" json:"structure"`

	OrderIndex int `gorm:"index" json:"order_index"`
}
