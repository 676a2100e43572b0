package model

import "time"

// GenerationHistory 记录每一次章节生成的输入输出快照
type GenerationHistory struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	ProjectID uint  `gorm:"index;not null" json:"project_id"`
	ChapterID *uint `gorm:"index" json:"chapter_id"`

	Prompt           string `gorm:"type:text" json:"prompt"`
	GeneratedContent string `gorm:"type:text" json:"generated_content"`

	// 统计指标
	Model          string  `gorm:"size:100" json:"model"`
	TokensUsed     int     `json:"tokens_used"`
	GenerationTime float64 `json:"generation_time"`
}
